package middleware

import (
	"net/http"

	"lexis-hq/proofread/pkg/telemetry/tracing"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

// TracingMiddleware opens a server span per request. An inbound W3C
// traceparent header makes the span a child of the caller's trace.
func TracingMiddleware(provider trace.TracerProvider) func(http.Handler) http.Handler {
	instrument := otelhttp.NewMiddleware("proofread",
		otelhttp.WithTracerProvider(provider),
		otelhttp.WithPropagators(propagation.TraceContext{}),
		otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
			return r.Method + " " + r.URL.Path
		}),
	)

	return func(next http.Handler) http.Handler {
		return instrument(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			span := trace.SpanFromContext(r.Context())
			span.SetAttributes(tracing.RequestAttributes(r.Method, r.URL.Path, GetRequestID(r.Context()))...)
			next.ServeHTTP(w, r)
		}))
	}
}
