// README: Distance/ETA estimate model and the estimator contract.
package distance

import (
	"context"
	"errors"
)

type Source string

const (
	SourceDirections Source = "directions"
	SourceMatrix     Source = "distance_matrix"
	SourceOSRM       Source = "osrm"
	SourceHaversine  Source = "haversine"
	SourceDefault    Source = "default"
	// SourceIncluded marks nominal values that come with a flat package, not a lookup.
	SourceIncluded Source = "included"
)

// ErrUnavailable is returned when every estimator in the chain failed.
var ErrUnavailable = errors.New("distance and duration unavailable")

// Estimate is an informational distance/ETA pair.
type Estimate struct {
	DistanceKm float64 `json:"distance_km"`
	Minutes    int     `json:"minutes"`
	Source     Source  `json:"source"`
}

// Estimator is one link of the provider chain.
type Estimator interface {
	Source() Source
	Estimate(ctx context.Context, origin, destination string) (Estimate, error)
}
