package location

// PostalRegions is tested in declaration order and the first match wins. Entries
// overlap on purpose: facility codes come first, then neighbourhood bands, then
// city bands, then the greater-metropolitan catch-all. Do not sort this table.
var PostalRegions = []Region{
	// Facilities.
	{Key: "aeroporto-congonhas", Name: "Aeroporto de Congonhas", Exact: 4626911},
	{Key: "aeroporto-guarulhos", Name: "Aeroporto Internacional de Guarulhos", Exact: 7190100},
	{Key: "aeroporto-viracopos", Name: "Aeroporto de Viracopos", Exact: 13052900},
	{Key: "rodoviaria-tiete", Name: "Terminal Rodoviário Tietê", Exact: 2031000},

	// Central neighbourhoods.
	{Key: "avenida-paulista", Name: "Avenida Paulista", Ranges: []PostalRange{
		{Start: 1310000, End: 1311999},
	}},
	{Key: "jardins", Name: "Jardins", Ranges: []PostalRange{
		{Start: 1401000, End: 1499999},
	}},
	{Key: "centro", Name: "Centro", Ranges: []PostalRange{
		{Start: 1001000, End: 1309999},
	}},
	{Key: "itaim-bibi", Name: "Itaim Bibi / Faria Lima", Ranges: []PostalRange{
		{Start: 4530000, End: 4544999},
	}},
	{Key: "vila-olimpia", Name: "Vila Olímpia", Ranges: []PostalRange{
		{Start: 4545000, End: 4559999},
	}},
	{Key: "brooklin-berrini", Name: "Brooklin / Berrini", Ranges: []PostalRange{
		{Start: 4560000, End: 4609999},
	}},
	{Key: "moema", Name: "Moema", Ranges: []PostalRange{
		{Start: 4077000, End: 4099999},
	}},

	// Neighbouring cities and regions.
	{Key: "alphaville-barueri", Name: "Alphaville / Barueri", Ranges: []PostalRange{
		{Start: 6400000, End: 6499999},
		{Start: 6500000, End: 6549999},
	}},
	{Key: "guarulhos", Name: "Guarulhos", Ranges: []PostalRange{
		{Start: 7000000, End: 7399999},
	}},
	{Key: "osasco", Name: "Osasco / Carapicuíba", Ranges: []PostalRange{
		{Start: 6000000, End: 6399999},
	}},
	{Key: "abc-paulista", Name: "ABC Paulista", Ranges: []PostalRange{
		{Start: 9000000, End: 9999999},
	}},
	{Key: "campinas", Name: "Campinas", Ranges: []PostalRange{
		{Start: 13000000, End: 13139999},
	}},
	{Key: "baixada-santista", Name: "Baixada Santista", Ranges: []PostalRange{
		{Start: 11000000, End: 11999999},
	}},
	{Key: "vale-paraiba", Name: "Vale do Paraíba", Ranges: []PostalRange{
		{Start: 12200000, End: 12249999},
		{Start: 12300000, End: 12349999},
	}},

	// City zones.
	{Key: "zona-oeste", Name: "Zona Oeste", Ranges: []PostalRange{
		{Start: 5000000, End: 5899999},
	}},
	{Key: "zona-sul", Name: "Zona Sul", Ranges: []PostalRange{
		{Start: 4000000, End: 4999999},
	}},
	{Key: "zona-norte", Name: "Zona Norte", Ranges: []PostalRange{
		{Start: 2000000, End: 2999999},
	}},
	{Key: "zona-leste", Name: "Zona Leste", Ranges: []PostalRange{
		{Start: 3000000, End: 3999999},
		{Start: 8000000, End: 8499999},
	}},

	// Catch-all band.
	{Key: "grande-sao-paulo", Name: "Grande São Paulo", Ranges: []PostalRange{
		{Start: 1000000, End: 9999999},
	}},
}

// RangeOverlap describes two declared postal rules whose codes intersect.
type RangeOverlap struct {
	First  RegionKey
	Second RegionKey
	Start  int
	End    int
}

// OverlappingRanges lists every intersection between rules declared in regions.
// Overlaps are resolved by declaration order at lookup time; this report exists so
// the data can be reviewed and cleaned up.
func OverlappingRanges(regions []Region) []RangeOverlap {
	var out []RangeOverlap
	for i := 0; i < len(regions); i++ {
		for j := i + 1; j < len(regions); j++ {
			for _, a := range postalSpans(regions[i]) {
				for _, b := range postalSpans(regions[j]) {
					lo, hi := max(a.Start, b.Start), min(a.End, b.End)
					if lo <= hi {
						out = append(out, RangeOverlap{First: regions[i].Key, Second: regions[j].Key, Start: lo, End: hi})
					}
				}
			}
		}
	}
	return out
}

func postalSpans(r Region) []PostalRange {
	if r.Exact != 0 {
		return []PostalRange{{Start: r.Exact, End: r.Exact}}
	}
	return r.Ranges
}
