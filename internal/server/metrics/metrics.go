// Package metrics defines the Prometheus collectors exported by the server.
package metrics

import (
	"strconv"
	"time"

	"github.com/dmitrijs2005/socialscribe/internal/common"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics groups every collector. A nil *Metrics is valid and records nothing.
type Metrics struct {
	HTTPRequests       *prometheus.CounterVec
	HTTPDuration       *prometheus.HistogramVec
	GenerationAttempts *prometheus.CounterVec
	PostOperations     *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		HTTPRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: common.ServiceName,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		HTTPDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: common.ServiceName,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request latency in seconds",
				Buckets:   []float64{0.005, 0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10, 30},
			},
			[]string{"method", "route"},
		),
		GenerationAttempts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: common.ServiceName,
				Name:      "generation_attempts_total",
				Help:      "Generation attempts per candidate model and outcome",
			},
			[]string{"model", "outcome"},
		),
		PostOperations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: common.ServiceName,
				Name:      "posts_total",
				Help:      "Completed post operations",
			},
			[]string{"operation"},
		),
	}

	reg.MustRegister(m.HTTPRequests, m.HTTPDuration, m.GenerationAttempts, m.PostOperations)

	return m
}

// ObserveRequest records one finished HTTP request.
func (m *Metrics) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	if route == "" {
		route = "unmatched"
	}
	m.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.HTTPDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// PostOperation counts a successful post operation (generate, update, ...).
func (m *Metrics) PostOperation(op string) {
	if m == nil {
		return
	}
	m.PostOperations.WithLabelValues(op).Inc()
}

// Attempts returns the generation attempt counter, or nil for a nil receiver.
func (m *Metrics) Attempts() *prometheus.CounterVec {
	if m == nil {
		return nil
	}
	return m.GenerationAttempts
}
