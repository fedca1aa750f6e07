// Package handlers provides the HTTP handler of the check endpoint.
//
// POST /v1/check decodes a check.Request, runs it through check.Service and
// writes the check.Response as JSON. Failures are mapped to the
// {"error", "code"} envelope by types.FromError:
//
//   - malformed JSON or missing text: 400 INVALID_REQUEST
//   - body or text over its bound: 413 PAYLOAD_TOO_LARGE
//   - check timeout: 503 TIMEOUT
//   - engine failure: 500 INTERNAL_ERROR
//
// When the client disconnects before the check finishes, nothing is
// written. The liveness and readiness handlers live in package health.
package handlers
