package metrics

import (
	"net/http"
	"time"

	"lexis-hq/proofread/pkg/config"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Collector is the main orchestrator for all Prometheus metrics in proofread.
// It manages metric registration on a private registry and provides a
// unified interface for recording metrics across the middleware chain and
// the check handler.
//
// All recording methods are safe for concurrent use; the underlying
// collectors are atomic.
type Collector struct {
	config   *config.MetricsConfig
	registry *prometheus.Registry

	// Request metrics
	requestMetrics *RequestMetrics

	// Check metrics
	checkMetrics *CheckMetrics

	// Rate limit metrics
	rateLimitMetrics *RateLimitMetrics
}

// NewCollector creates a new metrics collector with the specified configuration
// and Prometheus registry. If registry is nil, a fresh registry is used
// with the Go runtime and process collectors attached.
//
// Example:
//
//	cfg := &config.MetricsConfig{
//		Enabled:   true,
//		Namespace: "proofread",
//		Subsystem: "api",
//	}
//	collector := metrics.NewCollector(cfg, nil)
func NewCollector(cfg *config.MetricsConfig, registry *prometheus.Registry) *Collector {
	if registry == nil {
		registry = prometheus.NewRegistry()
		registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}

	// Set defaults if not specified
	if cfg.Namespace == "" {
		cfg.Namespace = config.DefaultMetricsNamespace
	}
	if cfg.Subsystem == "" {
		cfg.Subsystem = config.DefaultMetricsSubsystem
	}
	if cfg.Path == "" {
		cfg.Path = config.DefaultMetricsPath
	}
	if len(cfg.CheckDurationBuckets) == 0 {
		cfg.CheckDurationBuckets = config.DefaultCheckDurationBuckets
	}

	return &Collector{
		config:           cfg,
		registry:         registry,
		requestMetrics:   NewRequestMetrics(cfg, registry),
		checkMetrics:     NewCheckMetrics(cfg, registry),
		rateLimitMetrics: NewRateLimitMetrics(cfg, registry),
	}
}

// RecordRequest counts a request against its normalized endpoint.
func (c *Collector) RecordRequest(path string) {
	if !c.config.Enabled {
		return
	}

	c.requestMetrics.RecordRequest(NormalizeEndpoint(path, c.config.Path))
}

// RecordError counts a rejected request by failure kind
// (e.g., "payload_too_large", "unauthorized", "rate_limited").
func (c *Collector) RecordError(kind string) {
	if !c.config.Enabled {
		return
	}

	c.requestMetrics.RecordError(kind)
}

// RecordRejection counts a request that was rejected before reaching the
// metrics stage, together with its error.
func (c *Collector) RecordRejection(r *http.Request, kind string) {
	c.RecordRequest(r.URL.Path)
	c.RecordError(kind)
}

// TrackInFlight increments the in-flight gauge and returns the function
// that decrements it.
func (c *Collector) TrackInFlight() func() {
	if !c.config.Enabled {
		return func() {}
	}

	c.requestMetrics.inFlight.Inc()
	return c.requestMetrics.inFlight.Dec
}

// RecordCheck records a completed analysis.
//
// Parameters:
//   - duration: Wall clock time spent in the pipeline
//   - textBytes: Size of the analysed text
//   - findings: Number of findings by category ("spelling", "grammar")
//
// Example:
//
//	collector.RecordCheck(
//		12*time.Millisecond,
//		2048,
//		map[string]int{"spelling": 3, "grammar": 1},
//	)
func (c *Collector) RecordCheck(duration time.Duration, textBytes int, findings map[string]int) {
	if !c.config.Enabled {
		return
	}

	c.checkMetrics.RecordCheck(duration, textBytes, findings)
}

// SetTrackedClients updates the number of client buckets held by the
// rate limiter.
func (c *Collector) SetTrackedClients(n int) {
	if !c.config.Enabled {
		return
	}

	c.rateLimitMetrics.SetTrackedClients(n)
}

// Registry returns the Prometheus registry used by this collector.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}
