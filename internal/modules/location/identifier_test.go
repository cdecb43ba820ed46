package location

import "testing"

func TestIdentify_PostalCodes(t *testing.T) {
	id := DefaultIdentifier()
	tests := []struct {
		name  string
		input string
		want  RegionKey
	}{
		{name: "congonhas facility code", input: "04626-911", want: "aeroporto-congonhas"},
		{name: "paulista avenue", input: "01310-100", want: "avenida-paulista"},
		{name: "embedded cep", input: "Rua Heitor Penteado, 05437-000, São Paulo", want: "zona-oeste"},
		{name: "rio grande da serra band", input: "09450-000", want: "abc-paulista"},
		{name: "catch-all band", input: "06850-000", want: "grande-sao-paulo"},
		{name: "campinas", input: "13015-000", want: "campinas"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := id.Identify(tt.input)
			if !ok {
				t.Fatalf("Identify(%q) found nothing", tt.input)
			}
			if got.Key != tt.want {
				t.Errorf("Identify(%q) = %s, want %s", tt.input, got.Key, tt.want)
			}
		})
	}
}

func TestIdentify_FirstDeclaredRangeWins(t *testing.T) {
	// 07190-100 is inside both the airport facility code and the Guarulhos city
	// band; 04626-911 is inside the Zona Sul band too.
	regions := []Region{
		{Key: "wide", Ranges: []PostalRange{{Start: 1000000, End: 1999999}}},
		{Key: "narrow", Ranges: []PostalRange{{Start: 1310000, End: 1310999}}},
	}
	r := NewPostalResolver(regions)
	got, ok := r.ResolveCode(1310100)
	if !ok || got.Key != "wide" {
		t.Fatalf("ResolveCode() = %s, want wide (declared first, not narrowest)", got.Key)
	}

	id := DefaultIdentifier()
	if got, _ := id.Identify("07190-100"); got.Key != "aeroporto-guarulhos" {
		t.Errorf("Identify(07190-100) = %s, want aeroporto-guarulhos", got.Key)
	}
	if got, _ := id.Identify("07190-200"); got.Key != "guarulhos" {
		t.Errorf("Identify(07190-200) = %s, want guarulhos", got.Key)
	}
	if got, _ := id.Identify("04626-911"); got.Key != "aeroporto-congonhas" {
		t.Errorf("Identify(04626-911) = %s, want aeroporto-congonhas", got.Key)
	}
}

func TestRangeContains_Inclusive(t *testing.T) {
	r := PostalRange{Start: 100, End: 200}
	for code, want := range map[int]bool{99: false, 100: true, 150: true, 200: true, 201: false} {
		if got := RangeContains(code, r); got != want {
			t.Errorf("RangeContains(%d) = %v, want %v", code, got, want)
		}
	}
}

func TestIdentify_KeywordFallback(t *testing.T) {
	id := DefaultIdentifier()
	tests := []struct {
		input string
		want  RegionKey
	}{
		{input: "Rio Grande da Serra", want: "abc-paulista"},
		{input: "Butantã", want: "zona-oeste"},
		{input: "Aeroporto de Guarulhos - Terminal 3", want: "aeroporto-guarulhos"},
		{input: "Av. Paulista, 1578 - Bela Vista, São Paulo", want: "avenida-paulista"},
		{input: "Rua Augusta, São Paulo", want: "grande-sao-paulo"},
		{input: "Hotel em Guarulhos", want: "guarulhos"},
	}
	for _, tt := range tests {
		got, ok := id.Identify(tt.input)
		if !ok || got.Key != tt.want {
			t.Errorf("Identify(%q) = %s (%v), want %s", tt.input, got.Key, ok, tt.want)
		}
	}
}

func TestIdentify_Unresolvable(t *testing.T) {
	id := DefaultIdentifier()
	for _, in := range []string{"", "Rua Desconhecida 42, Cidade Nenhuma", "99999-999"} {
		if got, ok := id.Identify(in); ok {
			t.Errorf("Identify(%q) = %s, want no match", in, got.Key)
		}
	}
}

func TestIdentify_PostalBeatsKeyword(t *testing.T) {
	id := DefaultIdentifier()
	// Text mentions Butantã but the CEP belongs to Avenida Paulista.
	got, ok := id.Identify("Butantã office, CEP 01310-100")
	if !ok || got.Key != "avenida-paulista" {
		t.Errorf("Identify() = %s, want avenida-paulista", got.Key)
	}
}

func TestOverlappingRanges_ReportsKnownOverlaps(t *testing.T) {
	overlaps := OverlappingRanges(PostalRegions)
	if len(overlaps) == 0 {
		t.Fatal("expected the built-in table to contain overlaps")
	}
	found := false
	for _, o := range overlaps {
		if o.First == "aeroporto-guarulhos" && o.Second == "guarulhos" {
			found = true
			if o.Start != 7190100 || o.End != 7190100 {
				t.Errorf("unexpected overlap span %+v", o)
			}
		}
	}
	if !found {
		t.Error("expected airport/city overlap to be reported")
	}
}

func TestLookupLandmark(t *testing.T) {
	l, ok := LookupLandmark("Aeroporto de Congonhas, Av. Washington Luís")
	if !ok || l.Name != "Aeroporto de Congonhas" {
		t.Fatalf("LookupLandmark() = %+v, %v", l, ok)
	}
	if _, ok := LookupLandmark("Rua Qualquer 10"); ok {
		t.Error("expected no landmark")
	}
}
