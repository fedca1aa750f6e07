package tracing

import (
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Span attribute keys. HTTP keys follow the OpenTelemetry semantic
// conventions; check keys live under "proofread.*".
const (
	AttrHTTPMethod = "http.request.method"
	AttrURLPath    = "url.path"
	AttrRequestID  = "request.id"

	AttrLanguage     = "proofread.language"
	AttrTextBytes    = "proofread.text.bytes"
	AttrMatches      = "proofread.matches"
	AttrMatchesSpell = "proofread.matches.spelling"
	AttrErrorKind    = "proofread.error.kind"
)

// RequestAttributes returns the attributes stamped on every server span.
func RequestAttributes(method, path, requestID string) []attribute.KeyValue {
	attrs := []attribute.KeyValue{
		attribute.String(AttrHTTPMethod, method),
		attribute.String(AttrURLPath, path),
	}
	if requestID != "" {
		attrs = append(attrs, attribute.String(AttrRequestID, requestID))
	}
	return attrs
}

// SetCheckAttributes records the outcome of a check on span.
func SetCheckAttributes(span trace.Span, language string, textBytes, matches, spelling int) {
	span.SetAttributes(
		attribute.String(AttrLanguage, language),
		attribute.Int(AttrTextBytes, textBytes),
		attribute.Int(AttrMatches, matches),
		attribute.Int(AttrMatchesSpell, spelling),
	)
}

// SetErrorKind tags span with the kind of a rejected request.
func SetErrorKind(span trace.Span, kind string) {
	span.SetAttributes(attribute.String(AttrErrorKind, kind))
}
