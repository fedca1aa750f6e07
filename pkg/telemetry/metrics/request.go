package metrics

import (
	"lexis-hq/proofread/pkg/config"

	"github.com/prometheus/client_golang/prometheus"
)

// RequestMetrics tracks metrics related to HTTP request processing.
//
// Metrics:
//   - proofread_api_requests_total: Total request count by endpoint
//   - proofread_api_errors_total: Rejected requests by failure kind
//   - proofread_api_requests_in_flight: Requests currently being served
type RequestMetrics struct {
	// Total request count
	requestsTotal *prometheus.CounterVec

	// Rejected request count
	errorsTotal *prometheus.CounterVec

	// Requests in flight
	inFlight prometheus.Gauge
}

// NewRequestMetrics creates and registers request metrics with the provided registry.
func NewRequestMetrics(cfg *config.MetricsConfig, registry *prometheus.Registry) *RequestMetrics {
	rm := &RequestMetrics{
		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "requests_total",
				Help:      "Total number of HTTP requests by endpoint",
			},
			[]string{"endpoint"},
		),

		errorsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "errors_total",
				Help:      "Total number of rejected requests by failure kind",
			},
			[]string{"kind"},
		),

		inFlight: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "requests_in_flight",
				Help:      "Number of HTTP requests currently being served",
			},
		),
	}

	// Register all metrics
	registry.MustRegister(
		rm.requestsTotal,
		rm.errorsTotal,
		rm.inFlight,
	)

	return rm
}

// RecordRequest increments the request counter for endpoint.
func (rm *RequestMetrics) RecordRequest(endpoint string) {
	rm.requestsTotal.WithLabelValues(endpoint).Inc()
}

// RecordError increments the error counter for kind.
func (rm *RequestMetrics) RecordError(kind string) {
	rm.errorsTotal.WithLabelValues(kind).Inc()
}
