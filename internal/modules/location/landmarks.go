package location

import "transfer/internal/types"

// Landmark is a well-known place with fixed coordinates used before calling an
// external geocoder.
type Landmark struct {
	Name    string
	Aliases []string
	Point   types.Point
}

var Landmarks = []Landmark{
	{Name: "Aeroporto Internacional de Guarulhos", Aliases: []string{"aeroporto de guarulhos", "aeroporto guarulhos", "cumbica", "gru airport"}, Point: types.Point{Lat: -23.4356, Lng: -46.4731}},
	{Name: "Aeroporto de Congonhas", Aliases: []string{"congonhas", "cgh"}, Point: types.Point{Lat: -23.6261, Lng: -46.6564}},
	{Name: "Aeroporto de Viracopos", Aliases: []string{"viracopos"}, Point: types.Point{Lat: -23.0074, Lng: -47.1345}},
	{Name: "Terminal Rodoviário Tietê", Aliases: []string{"rodoviaria tiete", "terminal tiete"}, Point: types.Point{Lat: -23.5163, Lng: -46.6252}},
	{Name: "Terminal Rodoviário Barra Funda", Aliases: []string{"terminal barra funda", "rodoviaria barra funda"}, Point: types.Point{Lat: -23.5256, Lng: -46.6667}},
	{Name: "Hospital Israelita Albert Einstein", Aliases: []string{"albert einstein", "hospital einstein"}, Point: types.Point{Lat: -23.5999, Lng: -46.7153}},
	{Name: "Hospital Sírio-Libanês", Aliases: []string{"sirio libanes"}, Point: types.Point{Lat: -23.5572, Lng: -46.6537}},
	{Name: "Shopping Iguatemi", Aliases: []string{"shopping iguatemi"}, Point: types.Point{Lat: -23.5773, Lng: -46.6874}},
	{Name: "Shopping JK Iguatemi", Aliases: []string{"jk iguatemi"}, Point: types.Point{Lat: -23.5917, Lng: -46.6896}},
	{Name: "Avenida Paulista", Aliases: []string{"avenida paulista", "av paulista", "masp"}, Point: types.Point{Lat: -23.5614, Lng: -46.6559}},
	{Name: "Faria Lima", Aliases: []string{"faria lima"}, Point: types.Point{Lat: -23.5784, Lng: -46.6866}},
	{Name: "Vila Olímpia", Aliases: []string{"vila olimpia"}, Point: types.Point{Lat: -23.5955, Lng: -46.6853}},
	{Name: "Berrini", Aliases: []string{"berrini"}, Point: types.Point{Lat: -23.6085, Lng: -46.6950}},
	{Name: "Alphaville", Aliases: []string{"alphaville"}, Point: types.Point{Lat: -23.4862, Lng: -46.8494}},
	{Name: "Butantã", Aliases: []string{"butanta"}, Point: types.Point{Lat: -23.5718, Lng: -46.7081}},
	{Name: "Rio Grande da Serra", Aliases: []string{"rio grande da serra"}, Point: types.Point{Lat: -23.7437, Lng: -46.3971}},
	{Name: "Santo André", Aliases: []string{"santo andre"}, Point: types.Point{Lat: -23.6639, Lng: -46.5383}},
	{Name: "São Bernardo do Campo", Aliases: []string{"sao bernardo do campo", "sao bernardo"}, Point: types.Point{Lat: -23.6914, Lng: -46.5646}},
	{Name: "Campinas", Aliases: []string{"campinas"}, Point: types.Point{Lat: -22.9099, Lng: -47.0626}},
	{Name: "Santos", Aliases: []string{"santos"}, Point: types.Point{Lat: -23.9608, Lng: -46.3336}},
	{Name: "Guarujá", Aliases: []string{"guaruja"}, Point: types.Point{Lat: -23.9931, Lng: -46.2564}},
	{Name: "São José dos Campos", Aliases: []string{"sao jose dos campos"}, Point: types.Point{Lat: -23.1896, Lng: -45.8841}},
	{Name: "Campos do Jordão", Aliases: []string{"campos do jordao"}, Point: types.Point{Lat: -22.7394, Lng: -45.5914}},
}

// LookupLandmark returns the first landmark whose alias appears in address.
func LookupLandmark(address string) (Landmark, bool) {
	text := NormalizeAddress(address)
	if text == "" {
		return Landmark{}, false
	}
	for _, l := range Landmarks {
		for _, a := range l.Aliases {
			if containsPhrase(text, a) {
				return l, true
			}
		}
	}
	return Landmark{}, false
}
