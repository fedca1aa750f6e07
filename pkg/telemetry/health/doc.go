// Package health implements the liveness and readiness endpoints.
//
// GET /health answers the literal text "ok" whenever the process can serve
// HTTP. GET /ready runs the registered component checks (for proofread,
// that the dictionary is loaded) and answers 503 while any check fails or
// once shutdown has begun:
//
//	checker := health.New(2 * time.Second)
//	checker.RegisterCheck("dictionary", func(ctx context.Context) error {
//		if dict.Len() == 0 {
//			return errors.New("dictionary is empty")
//		}
//		return nil
//	})
//	r.Get("/health", health.LivenessHandler())
//	r.Get("/ready", checker.ReadinessHandler())
package health
