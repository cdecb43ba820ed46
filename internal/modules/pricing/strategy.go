// README: Resolution strategies, evaluated in declared order; first hit wins.
package pricing

import (
	"context"

	"transfer/internal/modules/distance"
	"transfer/internal/modules/location"
)

// DistanceProvider supplies informational distance/ETA. It never fails.
type DistanceProvider interface {
	EstimateOrDefault(ctx context.Context, origin, destination string) distance.Estimate
}

// Strategy returns false when it does not apply to the request.
type Strategy interface {
	Name() StrategyName
	TryResolve(ctx context.Context, req Request) (TripQuote, bool)
}

// DefaultStrategies is the production precedence: daily, regional, postal
// route, named route, dynamic.
func DefaultStrategies(identifier *location.Identifier, dist DistanceProvider) []Strategy {
	return []Strategy{
		DailyStrategy{},
		RegionalStrategy{Identifier: identifier, Distance: dist},
		PostalRouteStrategy{Postal: identifier.Postal, Routes: PostalRoutes, Distance: dist},
		NamedRouteStrategy{Identifier: identifier, Routes: NamedRoutes, Distance: dist},
		DynamicStrategy{Postal: identifier.Postal, Distance: dist},
	}
}

// DailyStrategy returns the category's daily rate with nominal included values.
// No distance lookup is performed.
type DailyStrategy struct{}

func (DailyStrategy) Name() StrategyName { return StrategyDaily }

func (DailyStrategy) TryResolve(_ context.Context, req Request) (TripQuote, bool) {
	if !IsDailyRequest(req.Origin) && !IsDailyRequest(req.Destination) {
		return TripQuote{}, false
	}
	rate := req.Category.Vehicle().DailyRate
	return fixedQuote(req, rate, distance.Estimate{
		DistanceKm: DailyIncludedKm,
		Minutes:    DailyIncludedMinutes,
		Source:     distance.SourceIncluded,
	}, StrategyDaily), true
}

// RegionalStrategy applies the flat price when both endpoints are metropolitan.
// Each endpoint is identified by postal code first, keyword second.
type RegionalStrategy struct {
	Identifier *location.Identifier
	Distance   DistanceProvider
}

func (RegionalStrategy) Name() StrategyName { return StrategyRegional }

func (s RegionalStrategy) TryResolve(ctx context.Context, req Request) (TripQuote, bool) {
	o, ok := s.Identifier.Identify(req.Origin)
	if !ok || !IsMetropolitan(o.Key) {
		return TripQuote{}, false
	}
	d, ok := s.Identifier.Identify(req.Destination)
	if !ok || !IsMetropolitan(d.Key) {
		return TripQuote{}, false
	}
	price, ok := RegionalFlatPrice[req.Category]
	if !ok {
		return TripQuote{}, false
	}
	est := s.Distance.EstimateOrDefault(ctx, req.Origin, req.Destination)
	return fixedQuote(req, price, est, StrategyRegional), true
}

// PostalRouteStrategy needs an extractable CEP on both addresses.
type PostalRouteStrategy struct {
	Postal   *location.PostalResolver
	Routes   RouteTable
	Distance DistanceProvider
}

func (PostalRouteStrategy) Name() StrategyName { return StrategyPostal }

func (s PostalRouteStrategy) TryResolve(ctx context.Context, req Request) (TripQuote, bool) {
	o, ok := s.Postal.Resolve(req.Origin)
	if !ok {
		return TripQuote{}, false
	}
	d, ok := s.Postal.Resolve(req.Destination)
	if !ok {
		return TripQuote{}, false
	}
	price, ok := s.Routes.FindRouteRule(o.Key, d.Key, req.Category)
	if !ok {
		return TripQuote{}, false
	}
	est := s.Distance.EstimateOrDefault(ctx, req.Origin, req.Destination)
	return fixedQuote(req, price, est, StrategyPostal), true
}

// NamedRouteStrategy identifies each endpoint by keyword aliases. An endpoint
// given only as a CEP falls back to its postal region so mixed input still
// resolves.
type NamedRouteStrategy struct {
	Identifier *location.Identifier
	Routes     RouteTable
	Distance   DistanceProvider
}

func (NamedRouteStrategy) Name() StrategyName { return StrategyNamedRoute }

func (s NamedRouteStrategy) TryResolve(ctx context.Context, req Request) (TripQuote, bool) {
	o, ok := s.region(req.Origin)
	if !ok {
		return TripQuote{}, false
	}
	d, ok := s.region(req.Destination)
	if !ok {
		return TripQuote{}, false
	}
	price, ok := s.Routes.FindRouteRule(o, d, req.Category)
	if !ok {
		return TripQuote{}, false
	}
	est := s.Distance.EstimateOrDefault(ctx, req.Origin, req.Destination)
	return fixedQuote(req, price, est, StrategyNamedRoute), true
}

func (s NamedRouteStrategy) region(address string) (location.RegionKey, bool) {
	if r, ok := s.Identifier.Keyword.Resolve(address); ok {
		return r.Key, true
	}
	if r, ok := s.Identifier.Postal.Resolve(address); ok {
		return r.Key, true
	}
	return "", false
}

// DynamicStrategy always resolves: distance times the per-km rate, the larger
// location surcharge of the two endpoints, the long-distance multiplier, then
// the category minimum.
type DynamicStrategy struct {
	Postal   *location.PostalResolver
	Distance DistanceProvider
}

func (DynamicStrategy) Name() StrategyName { return StrategyDynamic }

func (s DynamicStrategy) TryResolve(ctx context.Context, req Request) (TripQuote, bool) {
	est := distance.Sanitize(s.Distance.EstimateOrDefault(ctx, req.Origin, req.Destination))
	v := req.Category.Vehicle()

	base := v.PerKm.Scale(est.DistanceKm)
	factor := maxSurcharge(DetectLocationType(req.Origin, s.Postal), DetectLocationType(req.Destination, s.Postal))
	if est.DistanceKm > LongDistanceThresholdKm {
		factor *= LongDistanceMultiplier
	}
	final := base.Scale(factor).Max(v.Minimum)

	return TripQuote{
		Category:         req.Category,
		DistanceKm:       est.DistanceKm,
		EstimatedMinutes: est.Minutes,
		BasePrice:        base,
		FinalPrice:       final,
		Strategy:         StrategyDynamic,
		Source:           est.Source,
	}, true
}
