package distance

import (
	"context"

	"transfer/internal/modules/location"
)

// HaversineEstimator approximates road distance from great-circle distance.
type HaversineEstimator struct {
	geocoder *Geocoder
}

func NewHaversineEstimator(geocoder *Geocoder) *HaversineEstimator {
	return &HaversineEstimator{geocoder: geocoder}
}

func (e *HaversineEstimator) Source() Source { return SourceHaversine }

func (e *HaversineEstimator) Estimate(ctx context.Context, origin, destination string) (Estimate, error) {
	o, d, err := e.geocoder.locatePair(ctx, origin, destination)
	if err != nil {
		return Estimate{}, err
	}
	km := location.HaversineKm(o, d) * RoadCorrectionFactor
	return Estimate{DistanceKm: km, Minutes: MinutesFor(km), Source: SourceHaversine}, nil
}
