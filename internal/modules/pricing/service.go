// README: Pricing service resolves trip quotes through the strategy chain.
package pricing

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/sync/errgroup"

	"transfer/internal/logging"
	"transfer/internal/modules/location"
	"transfer/internal/observability"
)

var (
	ErrInvalidInput = errors.New("origin and destination are required")
	ErrUnresolved   = errors.New("no pricing strategy applied")
)

type Service struct {
	strategies []Strategy
	log        logging.Logger
	metrics    *observability.Metrics
}

// NewService runs strategies in the given order.
func NewService(log logging.Logger, metrics *observability.Metrics, strategies ...Strategy) *Service {
	if log == nil {
		log = logging.Noop()
	}
	return &Service{strategies: strategies, log: log, metrics: metrics}
}

// NewDefaultService wires the production strategy chain.
func NewDefaultService(identifier *location.Identifier, dist DistanceProvider, log logging.Logger, metrics *observability.Metrics) *Service {
	return NewService(log, metrics, DefaultStrategies(identifier, dist)...)
}

func (s *Service) ResolvePrice(ctx context.Context, origin, destination string, category VehicleCategory) (TripQuote, error) {
	origin, destination = strings.TrimSpace(origin), strings.TrimSpace(destination)
	if origin == "" || destination == "" {
		return TripQuote{}, ErrInvalidInput
	}
	if !category.Valid() {
		return TripQuote{}, ErrUnknownCategory
	}

	req := Request{Origin: origin, Destination: destination, Category: category}
	for _, st := range s.strategies {
		q, ok := st.TryResolve(ctx, req)
		if !ok {
			continue
		}
		s.metrics.ObserveQuote(string(q.Strategy), string(category))
		s.log.Debug(ctx, "quote resolved",
			logging.String("strategy", string(q.Strategy)),
			logging.String("category", string(category)),
			logging.String("final_price", q.FinalPrice.String()))
		return q, nil
	}
	return TripQuote{}, ErrUnresolved
}

// QuoteAll resolves every category concurrently and joins the results in
// catalogue order, independent of completion order.
func (s *Service) QuoteAll(ctx context.Context, origin, destination string) ([]TripQuote, error) {
	categories := Categories()
	quotes := make([]TripQuote, len(categories))

	g, gctx := errgroup.WithContext(ctx)
	for i, c := range categories {
		g.Go(func() error {
			q, err := s.ResolvePrice(gctx, origin, destination, c)
			if err != nil {
				return err
			}
			quotes[i] = q
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return quotes, nil
}
