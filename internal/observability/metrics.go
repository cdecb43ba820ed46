// Package observability registers the Prometheus collectors used across the API.
package observability

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics bundles the service collectors. A nil *Metrics is valid and records nothing.
type Metrics struct {
	gatherer prometheus.Gatherer

	Quotes          *prometheus.CounterVec
	DistanceLookups *prometheus.CounterVec
	HTTPRequests    *prometheus.CounterVec
	HTTPDurations   *prometheus.HistogramVec
}

// NewMetrics registers collectors against reg, defaulting to the global registry.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	quotes, err := registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "transfer_quotes_total",
		Help: "Trip quotes produced, labeled by resolving strategy and vehicle category.",
	}, []string{"strategy", "category"}), "transfer_quotes_total")
	if err != nil {
		return nil, err
	}

	lookups, err := registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "transfer_distance_lookups_total",
		Help: "Distance/ETA lookups, labeled by source and outcome.",
	}, []string{"source", "outcome"}), "transfer_distance_lookups_total")
	if err != nil {
		return nil, err
	}

	requests, err := registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "transfer_http_requests_total",
		Help: "HTTP requests handled, labeled by route, method and status code.",
	}, []string{"route", "method", "code"}), "transfer_http_requests_total")
	if err != nil {
		return nil, err
	}

	durations, err := registerHistogramVec(reg, prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "transfer_http_request_duration_seconds",
		Help:    "HTTP request latency in seconds.",
		Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10},
	}, []string{"route", "method"}), "transfer_http_request_duration_seconds")
	if err != nil {
		return nil, err
	}

	return &Metrics{
		gatherer:        gatherer,
		Quotes:          quotes,
		DistanceLookups: lookups,
		HTTPRequests:    requests,
		HTTPDurations:   durations,
	}, nil
}

func (m *Metrics) ObserveQuote(strategy, category string) {
	if m == nil || m.Quotes == nil {
		return
	}
	m.Quotes.WithLabelValues(strategy, category).Inc()
}

func (m *Metrics) ObserveDistanceLookup(source, outcome string) {
	if m == nil || m.DistanceLookups == nil {
		return
	}
	m.DistanceLookups.WithLabelValues(source, outcome).Inc()
}

func (m *Metrics) ObserveHTTP(route, method string, code int, seconds float64) {
	if m == nil {
		return
	}
	if m.HTTPRequests != nil {
		m.HTTPRequests.WithLabelValues(route, method, fmt.Sprintf("%d", code)).Inc()
	}
	if m.HTTPDurations != nil {
		m.HTTPDurations.WithLabelValues(route, method).Observe(seconds)
	}
}

// Handler exposes a ready-to-use /metrics handler.
func (m *Metrics) Handler() http.Handler {
	gatherer := prometheus.DefaultGatherer
	if m != nil && m.gatherer != nil {
		gatherer = m.gatherer
	}
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

func registerCounterVec(reg prometheus.Registerer, vec *prometheus.CounterVec, name string) (*prometheus.CounterVec, error) {
	if err := reg.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return vec, nil
}

func registerHistogramVec(reg prometheus.Registerer, vec *prometheus.HistogramVec, name string) (*prometheus.HistogramVec, error) {
	if err := reg.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.HistogramVec); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return vec, nil
}
