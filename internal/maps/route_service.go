package maps

import (
	"context"
	"errors"
	"fmt"
	"time"

	"googlemaps.github.io/maps"

	"transfer/internal/types"
)

var ErrNoRoute = errors.New("no route found")

// RouteService handles Directions, Distance Matrix and Geocoding calls.
type RouteService struct {
	client *maps.Client
}

func NewRouteService(client *maps.Client) *RouteService {
	return &RouteService{client: client}
}

// Drive returns the road distance and duration of the first driving route.
func (s *RouteService) Drive(ctx context.Context, origin, destination string) (int, time.Duration, error) {
	r := &maps.DirectionsRequest{
		Origin:      origin,
		Destination: destination,
		Mode:        maps.TravelModeDriving,
		Language:    "pt-BR",
		Region:      "br",
	}

	routes, _, err := s.client.Directions(ctx, r)
	if err != nil {
		return 0, 0, fmt.Errorf("maps api error: %w", err)
	}
	if len(routes) == 0 || len(routes[0].Legs) == 0 {
		return 0, 0, ErrNoRoute
	}

	var meters int
	var duration time.Duration
	for _, leg := range routes[0].Legs {
		meters += leg.Distance.Meters
		duration += leg.Duration
	}
	return meters, duration, nil
}

// Matrix returns distance and duration from a single-cell distance matrix.
func (s *RouteService) Matrix(ctx context.Context, origin, destination string) (int, time.Duration, error) {
	r := &maps.DistanceMatrixRequest{
		Origins:      []string{origin},
		Destinations: []string{destination},
		Mode:         maps.TravelModeDriving,
		Language:     "pt-BR",
	}

	resp, err := s.client.DistanceMatrix(ctx, r)
	if err != nil {
		return 0, 0, fmt.Errorf("distance matrix error: %w", err)
	}
	if len(resp.Rows) == 0 || len(resp.Rows[0].Elements) == 0 {
		return 0, 0, ErrNoRoute
	}
	el := resp.Rows[0].Elements[0]
	if el.Status != "OK" {
		return 0, 0, fmt.Errorf("distance matrix element status %s: %w", el.Status, ErrNoRoute)
	}
	return el.Distance.Meters, el.Duration, nil
}

// Geocode returns the coordinates of the best match for address.
func (s *RouteService) Geocode(ctx context.Context, address string) (types.Point, error) {
	results, err := s.client.Geocode(ctx, &maps.GeocodingRequest{
		Address:  address,
		Region:   "br",
		Language: "pt-BR",
	})
	if err != nil {
		return types.Point{}, fmt.Errorf("geocoding error: %w", err)
	}
	if len(results) == 0 {
		return types.Point{}, fmt.Errorf("no geocoding result for %q", address)
	}
	loc := results[0].Geometry.Location
	return types.Point{Lat: loc.Lat, Lng: loc.Lng}, nil
}
