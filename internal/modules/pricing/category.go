// README: Closed vehicle category set and the per-category rate card.
package pricing

import (
	"errors"
	"strings"

	"transfer/internal/types"
)

var ErrUnknownCategory = errors.New("unknown vehicle category")

type VehicleCategory string

const (
	SedanStandard  VehicleCategory = "sedan-standard"
	SedanExecutive VehicleCategory = "sedan-executive"
	ArmoredPremium VehicleCategory = "armored-premium"
	VanStandard    VehicleCategory = "van-standard"
	VanArmored     VehicleCategory = "van-armored"
	Minibus        VehicleCategory = "minibus"
)

// Vehicle is the catalogue entry for a category. Rates are configuration
// constants, never derived.
type Vehicle struct {
	Category   VehicleCategory `json:"category"`
	Name       string          `json:"name"`
	Passengers int             `json:"passengers"`
	Luggage    int             `json:"luggage"`
	Armored    bool            `json:"armored"`
	Features   []string        `json:"features"`
	PerKm      types.Money     `json:"per_km"`
	Minimum    types.Money     `json:"minimum"`
	DailyRate  types.Money     `json:"daily_rate"`
}

// Catalog is in display order; multi-category quotes follow it.
var Catalog = []Vehicle{
	{
		Category: SedanStandard, Name: "Sedan Executivo", Passengers: 3, Luggage: 3,
		Features: []string{"ar-condicionado", "água", "wi-fi"},
		PerKm:    types.BRL(6.50), Minimum: types.BRL(180), DailyRate: types.BRL(1500),
	},
	{
		Category: SedanExecutive, Name: "Sedan Premium", Passengers: 3, Luggage: 3,
		Features: []string{"ar-condicionado", "água", "wi-fi", "motorista bilíngue"},
		PerKm:    types.BRL(8.50), Minimum: types.BRL(240), DailyRate: types.BRL(2000),
	},
	{
		Category: ArmoredPremium, Name: "Sedan Blindado", Passengers: 3, Luggage: 3, Armored: true,
		Features: []string{"blindagem nível III-A", "motorista com treinamento em direção defensiva", "wi-fi"},
		PerKm:    types.BRL(11.00), Minimum: types.BRL(350), DailyRate: types.BRL(2800),
	},
	{
		Category: VanStandard, Name: "Van Executiva", Passengers: 10, Luggage: 10,
		Features: []string{"ar-condicionado", "água", "bagageiro amplo"},
		PerKm:    types.BRL(9.50), Minimum: types.BRL(320), DailyRate: types.BRL(2400),
	},
	{
		Category: VanArmored, Name: "Van Blindada", Passengers: 8, Luggage: 8, Armored: true,
		Features: []string{"blindagem nível III-A", "ar-condicionado", "bagageiro amplo"},
		PerKm:    types.BRL(14.00), Minimum: types.BRL(480), DailyRate: types.BRL(3500),
	},
	{
		Category: Minibus, Name: "Micro-ônibus", Passengers: 20, Luggage: 20,
		Features: []string{"ar-condicionado", "bagageiro amplo", "microfone"},
		PerKm:    types.BRL(16.00), Minimum: types.BRL(650), DailyRate: types.BRL(4200),
	},
}

var catalogIndex = func() map[VehicleCategory]int {
	idx := make(map[VehicleCategory]int, len(Catalog))
	for i, v := range Catalog {
		idx[v.Category] = i
	}
	return idx
}()

// Categories returns every category in catalogue order.
func Categories() []VehicleCategory {
	out := make([]VehicleCategory, len(Catalog))
	for i, v := range Catalog {
		out[i] = v.Category
	}
	return out
}

// ParseCategory accepts the canonical key in any case.
func ParseCategory(s string) (VehicleCategory, error) {
	c := VehicleCategory(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := catalogIndex[c]; !ok {
		return "", ErrUnknownCategory
	}
	return c, nil
}

func (c VehicleCategory) Valid() bool {
	_, ok := catalogIndex[c]
	return ok
}

// Vehicle returns the catalogue entry. It panics on an invalid category; callers
// validate with ParseCategory first.
func (c VehicleCategory) Vehicle() Vehicle {
	i, ok := catalogIndex[c]
	if !ok {
		panic("pricing: invalid vehicle category " + string(c))
	}
	return Catalog[i]
}
