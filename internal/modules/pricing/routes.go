package pricing

import (
	"transfer/internal/modules/location"
	"transfer/internal/types"
)

// RouteRule prices travel from Origin to any of Destinations.
type RouteRule struct {
	Origin       location.RegionKey
	Destinations []location.RegionKey
	Prices       PriceTable
}

func (r RouteRule) serves(origin, destination location.RegionKey) bool {
	if r.Origin != origin {
		return false
	}
	for _, d := range r.Destinations {
		if d == destination {
			return true
		}
	}
	return false
}

// RouteTable is scanned in declaration order.
type RouteTable []RouteRule

// FindRouteRule returns the price for origin->destination, trying the reversed
// pair when no rule covers the direct one. Lookup is therefore bidirectional
// whether or not the table lists both directions.
func (t RouteTable) FindRouteRule(origin, destination location.RegionKey, c VehicleCategory) (types.Money, bool) {
	if p, ok := t.find(origin, destination, c); ok {
		return p, true
	}
	return t.find(destination, origin, c)
}

func (t RouteTable) find(origin, destination location.RegionKey, c VehicleCategory) (types.Money, bool) {
	for _, r := range t {
		if r.serves(origin, destination) {
			p, ok := r.Prices[c]
			return p, ok
		}
	}
	return types.Money{}, false
}

func concat(tables ...RouteTable) RouteTable {
	var out RouteTable
	for _, t := range tables {
		out = append(out, t...)
	}
	return out
}

var (
	centralSP  = []location.RegionKey{"avenida-paulista", "jardins", "centro"}
	southwest  = []location.RegionKey{"itaim-bibi", "vila-olimpia", "brooklin-berrini", "moema"}
	allCentral = append(append([]location.RegionKey{}, centralSP...), southwest...)
)

// airportRoutes are shared by the postal and named tables.
// Price rows follow catalogue order: sedan-standard, sedan-executive,
// armored-premium, van-standard, van-armored, minibus.
var airportRoutes = RouteTable{
	{Origin: "aeroporto-congonhas", Destinations: centralSP, Prices: prices(240, 320, 450, 420, 620, 850)},
	{Origin: "aeroporto-congonhas", Destinations: southwest, Prices: prices(200, 270, 390, 360, 540, 750)},
	{Origin: "aeroporto-congonhas", Destinations: []location.RegionKey{"alphaville-barueri"}, Prices: prices(380, 490, 670, 610, 920, 1250)},
	{Origin: "aeroporto-guarulhos", Destinations: centralSP, Prices: prices(320, 420, 580, 520, 780, 1050)},
	{Origin: "aeroporto-guarulhos", Destinations: southwest, Prices: prices(360, 470, 640, 580, 860, 1150)},
	{Origin: "aeroporto-guarulhos", Destinations: []location.RegionKey{"aeroporto-congonhas"}, Prices: prices(350, 460, 620, 560, 840, 1100)},
	{Origin: "aeroporto-guarulhos", Destinations: []location.RegionKey{"alphaville-barueri"}, Prices: prices(450, 580, 780, 700, 1050, 1400)},
	{Origin: "aeroporto-viracopos", Destinations: allCentral, Prices: prices(750, 950, 1300, 1150, 1700, 2200)},
	{Origin: "aeroporto-viracopos", Destinations: []location.RegionKey{"campinas"}, Prices: prices(250, 330, 460, 420, 640, 880)},
	{Origin: "aeroporto-viracopos", Destinations: []location.RegionKey{"aeroporto-guarulhos"}, Prices: prices(850, 1080, 1450, 1300, 1900, 2450)},
	// Reverse entries kept from the published rate card; prices must match the forward rule.
	{Origin: "avenida-paulista", Destinations: []location.RegionKey{"aeroporto-congonhas"}, Prices: prices(240, 320, 450, 420, 620, 850)},
	{Origin: "avenida-paulista", Destinations: []location.RegionKey{"aeroporto-guarulhos"}, Prices: prices(320, 420, 580, 520, 780, 1050)},
}

var busStationRoutes = RouteTable{
	{Origin: "rodoviaria-tiete", Destinations: centralSP, Prices: prices(190, 250, 360, 330, 500, 700)},
	{Origin: "rodoviaria-tiete", Destinations: southwest, Prices: prices(220, 290, 410, 380, 570, 780)},
	{Origin: "rodoviaria-tiete", Destinations: []location.RegionKey{"aeroporto-guarulhos"}, Prices: prices(260, 340, 470, 430, 650, 880)},
	{Origin: "rodoviaria-tiete", Destinations: []location.RegionKey{"aeroporto-congonhas"}, Prices: prices(230, 300, 420, 390, 590, 800)},
}

var intercityRoutes = RouteTable{
	{Origin: "avenida-paulista", Destinations: []location.RegionKey{"baixada-santista"}, Prices: prices(650, 850, 1150, 1050, 1550, 2000)},
	{Origin: "avenida-paulista", Destinations: []location.RegionKey{"campinas"}, Prices: prices(700, 900, 1250, 1100, 1650, 2150)},
	{Origin: "avenida-paulista", Destinations: []location.RegionKey{"vale-paraiba"}, Prices: prices(850, 1100, 1500, 1350, 2000, 2600)},
	{Origin: "aeroporto-guarulhos", Destinations: []location.RegionKey{"baixada-santista"}, Prices: prices(780, 1000, 1350, 1250, 1850, 2400)},
	{Origin: "aeroporto-guarulhos", Destinations: []location.RegionKey{"vale-paraiba"}, Prices: prices(720, 930, 1280, 1150, 1700, 2250)},
	{Origin: "aeroporto-congonhas", Destinations: []location.RegionKey{"baixada-santista"}, Prices: prices(600, 780, 1060, 970, 1430, 1850)},
}

// PostalRoutes is consulted when both addresses carry a CEP.
var PostalRoutes = concat(airportRoutes, busStationRoutes, intercityRoutes)

// NamedRoutes is consulted with keyword-identified regions. It also covers
// destinations that have no postal range of their own.
var NamedRoutes = concat(airportRoutes, busStationRoutes, intercityRoutes, RouteTable{
	{Origin: "avenida-paulista", Destinations: []location.RegionKey{"campos-do-jordao"}, Prices: prices(1100, 1400, 1900, 1700, 2500, 3200)},
	{Origin: "aeroporto-guarulhos", Destinations: []location.RegionKey{"campos-do-jordao"}, Prices: prices(1000, 1300, 1750, 1600, 2350, 3000)},
})
