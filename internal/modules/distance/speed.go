package distance

import "math"

const (
	// DefaultDistanceKm replaces a missing or invalid distance.
	DefaultDistanceKm = 15.0
	// RoadCorrectionFactor converts straight-line distance to an approximate road distance.
	RoadCorrectionFactor = 1.3
	// MinMinutes floors every banded travel time.
	MinMinutes = 15
)

// SpeedBand is the average speed assumed for trips up to UpToKm.
type SpeedBand struct {
	UpToKm    float64
	KmPerHour float64
}

// SpeedBands must stay sorted by UpToKm. Shorter trips are slower (urban traffic).
var SpeedBands = []SpeedBand{
	{UpToKm: 5, KmPerHour: 20},
	{UpToKm: 15, KmPerHour: 25},
	{UpToKm: 30, KmPerHour: 35},
	{UpToKm: math.Inf(1), KmPerHour: 50},
}

func bandSpeed(distanceKm float64) float64 {
	for _, b := range SpeedBands {
		if distanceKm <= b.UpToKm {
			return b.KmPerHour
		}
	}
	return SpeedBands[len(SpeedBands)-1].KmPerHour
}

// MinutesFor derives travel time from distance using the speed bands, floored at MinMinutes.
func MinutesFor(distanceKm float64) int {
	if !validPositive(distanceKm) {
		distanceKm = DefaultDistanceKm
	}
	m := int(math.Round(distanceKm / bandSpeed(distanceKm) * 60))
	if m < MinMinutes {
		return MinMinutes
	}
	return m
}

// Default is the estimate used when no provider answered.
func Default() Estimate {
	return Estimate{DistanceKm: DefaultDistanceKm, Minutes: MinutesFor(DefaultDistanceKm), Source: SourceDefault}
}

// Sanitize replaces NaN, infinite or non-positive values before any arithmetic and
// rounds distance to one decimal place.
func Sanitize(e Estimate) Estimate {
	if !validPositive(e.DistanceKm) {
		e.DistanceKm = DefaultDistanceKm
		if e.Source == "" {
			e.Source = SourceDefault
		}
	}
	if e.Minutes <= 0 {
		e.Minutes = MinutesFor(e.DistanceKm)
	}
	e.DistanceKm = round1(e.DistanceKm)
	return e
}

func validPositive(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v > 0
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
