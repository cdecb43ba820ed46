package distance

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"transfer/internal/modules/location"
	"transfer/internal/types"
)

type stubRoutes struct {
	meters int
	dur    time.Duration
	err    error
}

func (s stubRoutes) Drive(context.Context, string, string) (int, time.Duration, error) {
	return s.meters, s.dur, s.err
}

func (s stubRoutes) Matrix(context.Context, string, string) (int, time.Duration, error) {
	return s.meters, s.dur, s.err
}

type stubGeocode map[string]types.Point

func (s stubGeocode) Geocode(_ context.Context, address string) (types.Point, error) {
	if p, ok := s[address]; ok {
		return p, nil
	}
	return types.Point{}, errors.New("zero results")
}

func TestDirectionsEstimator(t *testing.T) {
	e := NewDirectionsEstimator(stubRoutes{meters: 12_400, dur: 31*time.Minute + 40*time.Second})
	got, err := e.Estimate(context.Background(), "a", "b")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.DistanceKm != 12.4 || got.Minutes != 32 || got.Source != SourceDirections {
		t.Errorf("got %+v", got)
	}
}

func TestMatrixEstimator_Error(t *testing.T) {
	e := NewMatrixEstimator(stubRoutes{err: errors.New("OVER_QUERY_LIMIT")})
	if _, err := e.Estimate(context.Background(), "a", "b"); err == nil {
		t.Fatal("expected error")
	}
}

func TestGeocoder_Order(t *testing.T) {
	selections := location.NewMemoryCache()
	ctx := location.WithSession(context.Background(), "s1")
	picked := types.Point{Lat: -23.55, Lng: -46.63}
	if err := selections.Put(ctx, location.Entry{Address: "Rua Augusta 500", Point: picked}); err != nil {
		t.Fatalf("Put: %v", err)
	}
	api := stubGeocode{"Rua Augusta 500": {Lat: -1, Lng: -1}, "Rua Desconhecida 1": {Lat: -23.6, Lng: -46.7}}
	g := NewGeocoder(selections, api)

	if p, err := g.Locate(ctx, "rua augusta 500"); err != nil || p != picked {
		t.Errorf("selection not preferred: %v %v", p, err)
	}
	if p, err := g.Locate(ctx, "Aeroporto de Congonhas"); err != nil || p.Lat != -23.6261 {
		t.Errorf("landmark not used: %v %v", p, err)
	}
	if p, err := g.Locate(ctx, "Rua Desconhecida 1"); err != nil || p.Lat != -23.6 {
		t.Errorf("api not used: %v %v", p, err)
	}
	if _, err := NewGeocoder(nil, nil).Locate(ctx, "Rua Desconhecida 1"); !errors.Is(err, ErrUnknownAddress) {
		t.Errorf("err = %v, want ErrUnknownAddress", err)
	}
}

func TestHaversineEstimator_AppliesRoadFactor(t *testing.T) {
	e := NewHaversineEstimator(NewGeocoder(nil, nil))
	got, err := e.Estimate(context.Background(), "Congonhas", "Avenida Paulista")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	straight := location.HaversineKm(types.Point{Lat: -23.6261, Lng: -46.6564}, types.Point{Lat: -23.5614, Lng: -46.6559})
	if diff := got.DistanceKm - straight*RoadCorrectionFactor; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("distance = %v, want %v", got.DistanceKm, straight*RoadCorrectionFactor)
	}
	if got.Minutes != MinutesFor(got.DistanceKm) {
		t.Errorf("minutes = %d, want banded %d", got.Minutes, MinutesFor(got.DistanceKm))
	}
}

func TestOSRMEstimator(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		fmt.Fprint(w, `{"code":"Ok","routes":[{"distance":18250.5,"duration":1830}]}`)
	}))
	defer srv.Close()

	e := NewOSRMEstimator(NewGeocoder(nil, nil), srv.URL+"/", srv.Client())
	got, err := e.Estimate(context.Background(), "Congonhas", "Aeroporto de Guarulhos")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(gotPath, "/route/v1/driving/-46.656400,-23.626100;") {
		t.Errorf("path = %q", gotPath)
	}
	if got.DistanceKm != 18.2505 || got.Minutes != 31 || got.Source != SourceOSRM {
		t.Errorf("got %+v", got)
	}
}

func TestOSRMEstimator_NoRoute(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"code":"NoRoute","routes":[]}`)
	}))
	defer srv.Close()

	e := NewOSRMEstimator(NewGeocoder(nil, nil), srv.URL, nil)
	if _, err := e.Estimate(context.Background(), "Congonhas", "Santos"); err == nil {
		t.Fatal("expected error")
	}
}

func TestOSRMEstimator_UnknownAddress(t *testing.T) {
	e := NewOSRMEstimator(NewGeocoder(nil, nil), "http://127.0.0.1:0", nil)
	if _, err := e.Estimate(context.Background(), "Lugar Nenhum", "Santos"); !errors.Is(err, ErrUnknownAddress) {
		t.Fatalf("err = %v, want ErrUnknownAddress", err)
	}
}
