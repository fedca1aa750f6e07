// Package auth implements shared-secret bearer authentication.
//
// When a secret is configured every request outside the exempt paths must
// carry
//
//	Authorization: Bearer <secret>
//
// The header is compared to the expected value in constant time. A
// missing or wrong header is rejected with 401 UNAUTHORIZED. With no
// secret configured the middleware passes every request through.
//
// Example usage:
//
//	validator := auth.NewSecretValidator(cfg.Auth.Secret)
//	mw := auth.NewMiddleware(validator, []string{"/health", "/metrics"}, recorder)
//	handler = mw.Handle(handler)
package auth
