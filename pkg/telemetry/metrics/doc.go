// Package metrics provides Prometheus metrics collection for proofread.
//
// # Metrics
//
// With the default namespace "proofread" and subsystem "api":
//
//   - proofread_api_requests_total{endpoint}: every request, by normalized endpoint
//   - proofread_api_errors_total{kind}: every rejection, by failure kind
//   - proofread_api_requests_in_flight: requests currently being served
//   - proofread_api_check_duration_seconds: check pipeline duration
//   - proofread_api_findings_total{category}: findings by category
//   - proofread_api_check_text_bytes: size of checked texts
//   - proofread_api_ratelimit_tracked_clients: client buckets held
//
// Error kinds are payload_too_large, unauthorized, rate_limited,
// invalid_request, timeout and internal.
//
// # Usage
//
//	collector := metrics.NewCollector(&cfg.Telemetry.Metrics, nil)
//
//	collector.RecordRequest("/v1/check")
//	collector.RecordCheck(12*time.Millisecond, 2048, map[string]int{"spelling": 3})
//	collector.RecordError("rate_limited")
//
//	http.Handle("/metrics", collector.Handler())
//
// Metrics live on a private registry, never the global default one, so
// tests can build independent collectors.
package metrics
