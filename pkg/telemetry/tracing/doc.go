// Package tracing provides OpenTelemetry distributed tracing for proofread.
//
// # Overview
//
// The tracer wraps an OpenTelemetry SDK TracerProvider with a configurable
// sampler and exporter. Incoming W3C Trace Context headers are honored, so
// a check request joins the caller's trace when one is propagated:
//
//	traceparent: 00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-01
//
// # Exporters
//
//   - otlp: OTLP over gRPC to a collector (Jaeger, Tempo, the OTel collector)
//   - stdout: JSON spans written to stderr, for local debugging
//
// # Sampling Strategies
//
//   - always: Sample all traces
//   - never: Sample no traces
//   - ratio: Sample a fraction of new traces by trace ID hash
//
// All strategies are parent based.
//
// # Configuration
//
//	telemetry:
//	  tracing:
//	    enabled: true
//	    sampler: ratio
//	    sample_ratio: 0.1
//	    exporter: otlp
//	    endpoint: localhost:4317
//	    service_name: proofread
//	    otlp:
//	      insecure: true
//	      timeout: 10s
//
// # Usage
//
//	tracer, err := tracing.New(&cfg.Telemetry.Tracing, tracing.WithVersion(version))
//	if err != nil {
//		return err
//	}
//	defer tracer.Shutdown(context.Background())
//
//	ctx, span := tracer.Start(ctx, "check.analyze")
//	defer span.End()
//
// When tracing is disabled, New returns a tracer backed by a noop provider.
package tracing
