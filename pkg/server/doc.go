// Package server wires the check service into an HTTP server.
//
// NewRouter builds a chi router with the middleware chain of package
// middleware and the routes:
//
//	POST /v1/check   check.Service through handlers.CheckHandler
//	GET  /health     literal "ok"
//	GET  /ready      readiness report
//	GET  /metrics    Prometheus exposition
//
// Server binds first (Listen) so that an address in use fails before
// anything else starts, then serves until its context is canceled and
// drains in-flight requests within server.shutdown_timeout:
//
//	srv := server.New(&cfg.Server, server.NewRouter(deps), checker)
//	if err := srv.Listen(); err != nil {
//		return err
//	}
//	return srv.Start(ctx)
package server
