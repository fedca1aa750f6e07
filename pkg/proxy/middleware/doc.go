// Package middleware provides the HTTP middleware chain of the check service.
//
// # Middleware Chain
//
// The chain is an explicit ordered list of named stages, outermost first,
// mounted on the chi router with Use:
//
//  1. recovery: panic to 500 INTERNAL_ERROR
//  2. cors: origin allow-list, preflight answered with 204
//  3. request_id: X-Request-ID honored or generated
//  4. access_log: one structured line per request
//  5. trace: OpenTelemetry server span
//  6. rate_limit: per client IP token bucket, 429 with Retry-After
//  7. auth: Bearer shared secret (see package auth)
//  8. metrics: requests_total and in-flight gauge
//
// Stages that reject a request before the metrics stage report it through
// a Recorder so that every request is counted once.
//
// # Usage
//
//	chain := middleware.Chain{
//		{Name: middleware.StageRecovery, Wrap: middleware.RecoveryMiddleware(collector)},
//		{Name: middleware.StageRequestID, Wrap: middleware.RequestIDMiddleware},
//		// ...
//	}
//	r := chi.NewRouter()
//	chain.Mount(r)
package middleware
