package metrics

import (
	"time"

	"lexis-hq/proofread/pkg/config"

	"github.com/prometheus/client_golang/prometheus"
)

// CheckMetrics tracks metrics of the check endpoint.
//
// Metrics:
//   - proofread_api_check_duration_seconds: Pipeline duration histogram
//   - proofread_api_findings_total: Findings reported by category
//   - proofread_api_check_text_bytes: Size of analysed texts
type CheckMetrics struct {
	duration      prometheus.Histogram
	findingsTotal *prometheus.CounterVec
	textBytes     prometheus.Histogram
}

// NewCheckMetrics creates and registers check metrics with the provided registry.
func NewCheckMetrics(cfg *config.MetricsConfig, registry *prometheus.Registry) *CheckMetrics {
	cm := &CheckMetrics{
		duration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "check_duration_seconds",
				Help:      "Duration of text checks in seconds",
				Buckets:   cfg.CheckDurationBuckets,
			},
		),

		findingsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "findings_total",
				Help:      "Total number of findings reported by category",
			},
			[]string{"category"},
		),

		textBytes: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "check_text_bytes",
				Help:      "Size of checked texts in bytes",
				Buckets:   prometheus.ExponentialBuckets(64, 4, 7), // 64B to 256KB
			},
		),
	}

	registry.MustRegister(
		cm.duration,
		cm.findingsTotal,
		cm.textBytes,
	)

	return cm
}

// RecordCheck records one completed check.
func (cm *CheckMetrics) RecordCheck(duration time.Duration, textBytes int, findings map[string]int) {
	cm.duration.Observe(duration.Seconds())
	cm.textBytes.Observe(float64(textBytes))

	for category, n := range findings {
		if n > 0 {
			cm.findingsTotal.WithLabelValues(category).Add(float64(n))
		}
	}
}
