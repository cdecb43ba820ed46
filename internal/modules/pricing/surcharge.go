package pricing

import (
	"strings"

	"transfer/internal/modules/location"
)

// LocationType is ordered by surcharge, highest first.
type LocationType int

const (
	LocationOther LocationType = iota
	LocationShopping
	LocationHospital
	LocationBusStation
	LocationAirport
)

var surchargeFactors = map[LocationType]float64{
	LocationOther:      1.00,
	LocationShopping:   1.05,
	LocationHospital:   1.10,
	LocationBusStation: 1.15,
	LocationAirport:    1.20,
}

const (
	LongDistanceThresholdKm = 25.0
	LongDistanceMultiplier  = 1.15
)

func (t LocationType) Surcharge() float64 {
	return surchargeFactors[t]
}

func (t LocationType) String() string {
	switch t {
	case LocationAirport:
		return "airport"
	case LocationBusStation:
		return "bus_station"
	case LocationHospital:
		return "hospital"
	case LocationShopping:
		return "shopping"
	default:
		return "other"
	}
}

// locationKeywords is checked from the highest surcharge down.
var locationKeywords = []struct {
	kind     LocationType
	keywords []string
}{
	{LocationAirport, []string{"aeroporto", "airport", "congonhas", "cumbica", "viracopos", "gru", "cgh", "vcp"}},
	{LocationBusStation, []string{"rodoviaria", "terminal rodoviario", "terminal tiete", "terminal barra funda", "terminal jabaquara"}},
	{LocationHospital, []string{"hospital", "pronto socorro", "maternidade"}},
	{LocationShopping, []string{"shopping", "mall"}},
}

var postalLocationTypes = map[location.RegionKey]LocationType{
	"aeroporto-congonhas": LocationAirport,
	"aeroporto-guarulhos": LocationAirport,
	"aeroporto-viracopos": LocationAirport,
	"rodoviaria-tiete":    LocationBusStation,
}

// DetectLocationType classifies an address by keyword, falling back to
// facility postal codes.
func DetectLocationType(address string, postal *location.PostalResolver) LocationType {
	text := " " + location.NormalizeAddress(address) + " "
	for _, group := range locationKeywords {
		for _, kw := range group.keywords {
			if strings.Contains(text, " "+kw+" ") {
				return group.kind
			}
		}
	}
	if postal != nil {
		if region, ok := postal.Resolve(address); ok {
			if t, ok := postalLocationTypes[region.Key]; ok {
				return t
			}
		}
	}
	return LocationOther
}

// maxSurcharge returns the larger factor of the two endpoints. Surcharges never add up.
func maxSurcharge(a, b LocationType) float64 {
	if a.Surcharge() >= b.Surcharge() {
		return a.Surcharge()
	}
	return b.Surcharge()
}
