package distance

import (
	"context"
	"fmt"
	"time"
)

// RouteAPI is the driving-directions subset of the maps client.
type RouteAPI interface {
	Drive(ctx context.Context, origin, destination string) (int, time.Duration, error)
}

// MatrixAPI is the distance-matrix subset of the maps client.
type MatrixAPI interface {
	Matrix(ctx context.Context, origin, destination string) (int, time.Duration, error)
}

type DirectionsEstimator struct {
	api RouteAPI
}

func NewDirectionsEstimator(api RouteAPI) *DirectionsEstimator {
	return &DirectionsEstimator{api: api}
}

func (e *DirectionsEstimator) Source() Source { return SourceDirections }

func (e *DirectionsEstimator) Estimate(ctx context.Context, origin, destination string) (Estimate, error) {
	meters, dur, err := e.api.Drive(ctx, origin, destination)
	if err != nil {
		return Estimate{}, fmt.Errorf("directions: %w", err)
	}
	return fromMeters(meters, dur, SourceDirections), nil
}

type MatrixEstimator struct {
	api MatrixAPI
}

func NewMatrixEstimator(api MatrixAPI) *MatrixEstimator {
	return &MatrixEstimator{api: api}
}

func (e *MatrixEstimator) Source() Source { return SourceMatrix }

func (e *MatrixEstimator) Estimate(ctx context.Context, origin, destination string) (Estimate, error) {
	meters, dur, err := e.api.Matrix(ctx, origin, destination)
	if err != nil {
		return Estimate{}, fmt.Errorf("distance matrix: %w", err)
	}
	return fromMeters(meters, dur, SourceMatrix), nil
}

func fromMeters(meters int, dur time.Duration, source Source) Estimate {
	return Estimate{
		DistanceKm: float64(meters) / 1000,
		Minutes:    int(dur.Round(time.Minute) / time.Minute),
		Source:     source,
	}
}
