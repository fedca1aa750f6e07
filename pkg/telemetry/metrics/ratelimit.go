package metrics

import (
	"lexis-hq/proofread/pkg/config"

	"github.com/prometheus/client_golang/prometheus"
)

// RateLimitMetrics tracks the state of the per-client rate limiter.
//
// Metrics:
//   - proofread_api_ratelimit_tracked_clients: Client buckets currently held
type RateLimitMetrics struct {
	trackedClients prometheus.Gauge
}

// NewRateLimitMetrics creates and registers rate limit metrics with the provided registry.
func NewRateLimitMetrics(cfg *config.MetricsConfig, registry *prometheus.Registry) *RateLimitMetrics {
	rm := &RateLimitMetrics{
		trackedClients: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "ratelimit_tracked_clients",
				Help:      "Number of client buckets held by the rate limiter",
			},
		),
	}

	registry.MustRegister(rm.trackedClients)
	return rm
}

// SetTrackedClients sets the tracked client gauge.
func (rm *RateLimitMetrics) SetTrackedClients(n int) {
	rm.trackedClients.Set(float64(n))
}
