package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the server's Prometheus collectors.
//
//   - momentum_http_requests_total{method,route,status}
//   - momentum_http_request_duration_seconds{method,route}
//   - momentum_chat_chunks_total
type Metrics struct {
	Requests   *prometheus.CounterVec
	Duration   *prometheus.HistogramVec
	ChatChunks prometheus.Counter

	gatherer prometheus.Gatherer
}

// NewMetrics registers the collectors on reg.
func NewMetrics(reg *prometheus.Registry) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Requests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "momentum_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		Duration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "momentum_http_request_duration_seconds",
				Help:    "HTTP request latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		ChatChunks: factory.NewCounter(prometheus.CounterOpts{
			Name: "momentum_chat_chunks_total",
			Help: "Total number of assistant reply chunks relayed to clients",
		}),
		gatherer: reg,
	}
}
