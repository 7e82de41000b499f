package assistant

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts assistant traffic per request kind
type Metrics struct {
	Requests *prometheus.CounterVec
	Failures *prometheus.CounterVec
	Limited  *prometheus.CounterVec
	Duration *prometheus.HistogramVec
}

// NewMetrics creates the assistant collectors and registers them with reg
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "aiseek_assistant_requests_total",
				Help: "Total requests sent to the generation service",
			},
			[]string{"kind"},
		),
		Failures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "aiseek_assistant_failures_total",
				Help: "Total generation requests answered with the fallback text",
			},
			[]string{"kind"},
		),
		Limited: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "aiseek_assistant_limited_total",
				Help: "Total requests refused because the usage limit was reached",
			},
			[]string{"kind"},
		),
		Duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "aiseek_assistant_request_duration_seconds",
				Help:    "Latency of generation requests",
				Buckets: []float64{0.25, 0.5, 1, 2, 5, 10, 30, 60},
			},
			[]string{"kind"},
		),
	}

	reg.MustRegister(m.Requests, m.Failures, m.Limited, m.Duration)
	return m
}
