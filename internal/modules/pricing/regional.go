package pricing

import "transfer/internal/modules/location"

// MetropolitanRegions is the flat-price zone allow-list. Facilities and the
// central districts are deliberately absent so their route rules apply.
var MetropolitanRegions = map[location.RegionKey]bool{
	"zona-oeste":       true,
	"zona-sul":         true,
	"zona-norte":       true,
	"zona-leste":       true,
	"abc-paulista":     true,
	"osasco":           true,
	"guarulhos":        true,
	"grande-sao-paulo": true,
}

func IsMetropolitan(region location.RegionKey) bool {
	return MetropolitanRegions[region]
}

// RegionalFlatPrice applies to any pair of metropolitan regions, regardless of distance.
var RegionalFlatPrice = prices(350, 450, 600, 550, 800, 1000)
