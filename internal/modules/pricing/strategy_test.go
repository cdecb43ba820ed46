package pricing

import (
	"context"
	"testing"

	"transfer/internal/modules/distance"
	"transfer/internal/modules/location"
	"transfer/internal/types"
)

func dynamicFor(km float64) DynamicStrategy {
	return DynamicStrategy{
		Postal:   location.DefaultIdentifier().Postal,
		Distance: &fakeDistance{estimate: distance.Estimate{DistanceKm: km, Minutes: distance.MinutesFor(km), Source: distance.SourceOSRM}},
	}
}

func TestDynamicStrategy_Arithmetic(t *testing.T) {
	tests := []struct {
		name        string
		km          float64
		origin      string
		destination string
		category    VehicleCategory
		wantBase    types.Money
		wantFinal   types.Money
	}{
		{
			name: "short trip clamps to minimum", km: 10,
			origin: "Rua A 1", destination: "Rua B 2", category: SedanStandard,
			wantBase: types.BRL(65), wantFinal: types.BRL(180),
		},
		{
			name: "plain distance above minimum", km: 20,
			origin: "Rua A 1", destination: "Rua B 2", category: Minibus,
			wantBase: types.BRL(320), wantFinal: types.BRL(650),
		},
		{
			name: "largest surcharge wins, not the sum", km: 30,
			origin: "Aeroporto de Guarulhos", destination: "Terminal Rodoviário Tietê", category: SedanStandard,
			wantBase: types.BRL(195), wantFinal: types.BRL(269.10),
		},
		{
			name: "hospital and shopping over long distance", km: 40,
			origin: "Hospital Alpha", destination: "Shopping Beta", category: SedanStandard,
			wantBase: types.BRL(260), wantFinal: types.BRL(328.90),
		},
		{
			name: "airport postal code surcharge", km: 30,
			origin: "04626-911", destination: "Rua B 2", category: ArmoredPremium,
			wantBase: types.BRL(330), wantFinal: types.BRL(455.40),
		},
		{
			name: "threshold is exclusive", km: 25,
			origin: "Rua A 1", destination: "Rua B 2", category: VanArmored,
			wantBase: types.BRL(350), wantFinal: types.BRL(480),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, ok := dynamicFor(tt.km).TryResolve(context.Background(), Request{Origin: tt.origin, Destination: tt.destination, Category: tt.category})
			if !ok {
				t.Fatal("dynamic strategy must always resolve")
			}
			if q.BasePrice != tt.wantBase {
				t.Errorf("base = %s, want %s", q.BasePrice, tt.wantBase)
			}
			if q.FinalPrice != tt.wantFinal {
				t.Errorf("final = %s, want %s", q.FinalPrice, tt.wantFinal)
			}
			if q.Strategy != StrategyDynamic {
				t.Errorf("strategy = %s", q.Strategy)
			}
		})
	}
}

func TestDynamicStrategy_NeverBelowMinimum(t *testing.T) {
	for _, km := range []float64{0.1, 0.5, 1, 2.7, 5, 12.3, 25.1, 80, 400} {
		for _, c := range Categories() {
			q, _ := dynamicFor(km).TryResolve(context.Background(), Request{Origin: "Shopping Center Norte", Destination: "Rua C 3", Category: c})
			if q.FinalPrice.Amount < c.Vehicle().Minimum.Amount {
				t.Errorf("%v km %s: %s below minimum %s", km, c, q.FinalPrice, c.Vehicle().Minimum)
			}
		}
	}
}

func TestDynamicStrategy_SanitizesProviderValues(t *testing.T) {
	s := DynamicStrategy{Distance: &fakeDistance{estimate: distance.Estimate{DistanceKm: -4, Minutes: 0}}}
	q, _ := s.TryResolve(context.Background(), Request{Origin: "Rua A", Destination: "Rua B", Category: SedanStandard})
	if q.DistanceKm != distance.DefaultDistanceKm || q.EstimatedMinutes != 36 {
		t.Errorf("got %v km, %d min, want 15 km / 36 min", q.DistanceKm, q.EstimatedMinutes)
	}
	if q.BasePrice != types.BRL(97.50) {
		t.Errorf("base = %s, want R$97.50", q.BasePrice)
	}
}

func TestDynamicStrategy_MinimumDurationFloor(t *testing.T) {
	q, _ := dynamicFor(0.1).TryResolve(context.Background(), Request{Origin: "Rua A", Destination: "Rua B", Category: SedanStandard})
	if q.EstimatedMinutes != 15 {
		t.Errorf("minutes = %d, want 15", q.EstimatedMinutes)
	}
}

func TestStrategies_DeclineWhenNotApplicable(t *testing.T) {
	id := location.DefaultIdentifier()
	dist := &fakeDistance{estimate: cityTrip}
	req := Request{Origin: "Rua Inexistente 1", Destination: "Rua Inexistente 2", Category: SedanStandard}

	for _, s := range DefaultStrategies(id, dist)[:4] {
		if _, ok := s.TryResolve(context.Background(), req); ok {
			t.Errorf("%s resolved an unrecognized pair", s.Name())
		}
	}
	if dist.Calls() != 0 {
		t.Errorf("declining strategies looked up distance %d times", dist.Calls())
	}
}

func TestPostalRouteStrategy_RequiresBothPostalCodes(t *testing.T) {
	s := PostalRouteStrategy{Postal: location.DefaultIdentifier().Postal, Routes: PostalRoutes, Distance: &fakeDistance{estimate: cityTrip}}
	if _, ok := s.TryResolve(context.Background(), Request{Origin: "04626-911", Destination: "Avenida Paulista", Category: SedanStandard}); ok {
		t.Error("resolved without a destination postal code")
	}
}

func TestRegionalStrategy_SameForEveryMetropolitanPair(t *testing.T) {
	s := RegionalStrategy{Identifier: location.DefaultIdentifier(), Distance: &fakeDistance{estimate: cityTrip}}
	pairs := [][2]string{
		{"Tatuapé", "Pinheiros"},
		{"Osasco", "Diadema"},
		{"Guarulhos, centro", "Santo Amaro"},
		{"02460-000", "08230-000"},
	}
	for _, c := range Categories() {
		for _, p := range pairs {
			q, ok := s.TryResolve(context.Background(), Request{Origin: p[0], Destination: p[1], Category: c})
			if !ok {
				t.Errorf("%v not regional", p)
				continue
			}
			if q.FinalPrice != RegionalFlatPrice[c] {
				t.Errorf("%v %s: %s, want %s", p, c, q.FinalPrice, RegionalFlatPrice[c])
			}
		}
	}
}
