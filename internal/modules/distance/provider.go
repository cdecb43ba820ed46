package distance

import (
	"context"
	"time"

	"golang.org/x/sync/singleflight"

	"transfer/internal/logging"
	"transfer/internal/observability"
)

const DefaultTimeout = 4 * time.Second

type Options struct {
	Cache   RouteCache
	Timeout time.Duration
	Logger  logging.Logger
	Metrics *observability.Metrics
}

// Provider walks its estimators in order and returns the first valid answer.
// Each estimator call is bounded by Timeout.
type Provider struct {
	estimators []Estimator
	cache      RouteCache
	timeout    time.Duration
	log        logging.Logger
	metrics    *observability.Metrics
	flight     singleflight.Group
}

func NewProvider(opts Options, estimators ...Estimator) *Provider {
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.Logger == nil {
		opts.Logger = logging.Noop()
	}
	return &Provider{
		estimators: estimators,
		cache:      opts.Cache,
		timeout:    opts.Timeout,
		log:        opts.Logger,
		metrics:    opts.Metrics,
	}
}

// DistanceAndDuration returns ErrUnavailable when no estimator produced a usable result.
// Concurrent lookups for the same key share one walk of the chain.
func (p *Provider) DistanceAndDuration(ctx context.Context, origin, destination string) (Estimate, error) {
	key := CacheKey(ctx, origin, destination)
	if e, ok := p.cached(ctx, key); ok {
		return e, nil
	}
	v, err, _ := p.flight.Do(key, func() (any, error) {
		// A flight that finished between the miss above and Do already filled the cache.
		if e, ok := p.cached(ctx, key); ok {
			return e, nil
		}
		return p.lookup(ctx, key, origin, destination)
	})
	if err != nil {
		return Estimate{}, err
	}
	return v.(Estimate), nil
}

func (p *Provider) cached(ctx context.Context, key string) (Estimate, bool) {
	if p.cache == nil {
		return Estimate{}, false
	}
	e, ok, err := p.cache.Get(ctx, key)
	if err != nil {
		p.log.Warn(ctx, "route cache read failed", logging.Err(err))
		return Estimate{}, false
	}
	if ok {
		p.metrics.ObserveDistanceLookup(string(e.Source), "cache_hit")
	}
	return e, ok
}

// lookup walks the estimators. Only an unusable distance moves on to the next
// estimator; a bad duration is rebuilt from the distance by Sanitize.
func (p *Provider) lookup(ctx context.Context, key, origin, destination string) (Estimate, error) {
	for _, est := range p.estimators {
		e, err := p.try(ctx, est, origin, destination)
		if err != nil {
			p.metrics.ObserveDistanceLookup(string(est.Source()), "error")
			p.log.Debug(ctx, "distance estimator failed",
				logging.String("source", string(est.Source())), logging.Err(err))
			continue
		}
		if !validPositive(e.DistanceKm) {
			p.metrics.ObserveDistanceLookup(string(est.Source()), "invalid")
			continue
		}
		if e.Source == "" {
			e.Source = est.Source()
		}
		e = Sanitize(e)
		p.metrics.ObserveDistanceLookup(string(est.Source()), "ok")
		if p.cache != nil {
			if err := p.cache.Put(ctx, key, e); err != nil {
				p.log.Warn(ctx, "route cache write failed", logging.Err(err))
			}
		}
		return e, nil
	}
	return Estimate{}, ErrUnavailable
}

// EstimateOrDefault never fails: an unavailable lookup yields Default().
func (p *Provider) EstimateOrDefault(ctx context.Context, origin, destination string) Estimate {
	e, err := p.DistanceAndDuration(ctx, origin, destination)
	if err != nil {
		p.metrics.ObserveDistanceLookup(string(SourceDefault), "fallback")
		p.log.Info(ctx, "using default distance",
			logging.String("origin", origin), logging.String("destination", destination))
		return Default()
	}
	return Sanitize(e)
}

func (p *Provider) try(ctx context.Context, est Estimator, origin, destination string) (Estimate, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()
	return est.Estimate(ctx, origin, destination)
}
