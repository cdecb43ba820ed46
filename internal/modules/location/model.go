// README: Region model shared by the postal-code and keyword identification tables.
package location

import (
	"time"

	"transfer/internal/types"
)

// RegionKey is the canonical identifier used as the unit of price-table lookup.
type RegionKey string

// PostalRange is an inclusive numeric CEP range (digits only, e.g. 1310000..1310999).
type PostalRange struct {
	Start int
	End   int
}

// Region is immutable static data. Exactly one identification rule is set:
// Exact, Ranges, or Aliases.
type Region struct {
	Key     RegionKey
	Name    string
	Exact   int
	Ranges  []PostalRange
	Aliases []string
}

// RangeContains reports whether code lies within r, bounds inclusive.
func RangeContains(code int, r PostalRange) bool {
	return code >= r.Start && code <= r.End
}

func (r Region) matchesPostal(code int) bool {
	if r.Exact != 0 {
		return r.Exact == code
	}
	for _, rg := range r.Ranges {
		if RangeContains(code, rg) {
			return true
		}
	}
	return false
}

// Entry is a user-selected address with its coordinates. Entries only come from an
// explicit suggestion pick, never from a geocoder guess.
type Entry struct {
	Address    string      `json:"address"`
	Point      types.Point `json:"point"`
	Geohash    string      `json:"geohash"`
	SelectedAt time.Time   `json:"selected_at"`
}

// Suggestion is a single autocomplete prediction.
type Suggestion struct {
	Description string `json:"description"`
	PlaceID     string `json:"place_id"`
}
