// Package telemetry groups the observability packages of proofread.
//
//   - logging: slog construction, request-scoped fields and secret redaction
//   - metrics: Prometheus collectors on a private registry
//   - tracing: OpenTelemetry tracer provider, sampler and exporters
//   - health: liveness and readiness endpoints
//
// The packages are wired together in cmd/proofread and consumed by the
// HTTP middleware chain.
package telemetry
