// Package types defines the error envelope shared by the HTTP handlers and
// the middleware chain.
//
// Every error response has the shape
//
//	{"error": "Text exceeds maximum size of 102400 bytes", "code": "PAYLOAD_TOO_LARGE"}
//
// APIError pairs the envelope with its HTTP status and the errors_total
// kind label. FromError maps the sentinel errors of package check:
//
//	check.ErrPayloadTooLarge  413 PAYLOAD_TOO_LARGE
//	check.ErrInvalidRequest   400 INVALID_REQUEST
//	check.ErrTimeout          503 TIMEOUT
//	anything else             500 INTERNAL_ERROR
//
// Authentication and rate limiting produce 401 UNAUTHORIZED and
// 429 RATE_LIMITED directly.
package types
