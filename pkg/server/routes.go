package server

import (
	"log/slog"
	"net/http"
	"slices"

	"lexis-hq/proofread/pkg/check"
	"lexis-hq/proofread/pkg/config"
	"lexis-hq/proofread/pkg/limits/ratelimit"
	"lexis-hq/proofread/pkg/proxy/handlers"
	"lexis-hq/proofread/pkg/proxy/middleware"
	"lexis-hq/proofread/pkg/security/auth"
	"lexis-hq/proofread/pkg/telemetry/health"
	"lexis-hq/proofread/pkg/telemetry/metrics"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel/trace"
)

// CheckPath is the route of the check endpoint.
const CheckPath = "/v1/check"

// Deps are the long-lived components the router is built from.
type Deps struct {
	Config  *config.Config
	Service *check.Service
	Metrics *metrics.Collector
	Health  *health.Checker
	Logger  *slog.Logger

	// Limiter is nil when rate limiting is disabled.
	Limiter *ratelimit.ClientLimiter

	// Tracer provides server spans. A noop provider disables them.
	Tracer trace.TracerProvider
}

// Routes that never require a credential.
const (
	HealthPath = "/health"
	ReadyPath  = "/ready"
)

// ExemptPaths returns the routes auth never checks: health, readiness and
// the configured metrics path, followed by any extra auth.exempt_paths.
func ExemptPaths(cfg *config.Config) []string {
	paths := []string{HealthPath, ReadyPath, cfg.Telemetry.Metrics.Path}
	for _, p := range cfg.Auth.ExemptPaths {
		if !slices.Contains(paths, p) {
			paths = append(paths, p)
		}
	}
	return paths
}

// BuildChain returns the middleware chain, outermost first.
func BuildChain(d Deps) middleware.Chain {
	cfg := d.Config

	chain := middleware.Chain{
		{Name: middleware.StageRecovery, Wrap: middleware.RecoveryMiddleware(d.Metrics)},
		{Name: middleware.StageCORS, Wrap: middleware.CORSMiddleware(&middleware.CORSConfig{
			AllowedOrigins:   cfg.CORS.AllowedOrigins,
			MaxAge:           cfg.CORS.MaxAge,
			AllowCredentials: cfg.CORS.AllowCredentials,
			Recorder:         d.Metrics,
		})},
		{Name: middleware.StageRequestID, Wrap: middleware.RequestIDMiddleware},
		{Name: middleware.StageAccessLog, Wrap: middleware.AccessLogMiddleware(d.Logger)},
		{Name: middleware.StageTrace, Wrap: middleware.TracingMiddleware(d.Tracer)},
	}

	if d.Limiter != nil {
		chain = append(chain, middleware.Stage{
			Name: middleware.StageRateLimit,
			Wrap: middleware.RateLimitMiddleware(middleware.RateLimitConfig{
				Limiter:           d.Limiter,
				TrustProxyHeaders: cfg.Server.TrustProxyHeaders,
				Recorder:          d.Metrics,
			}),
		})
	}

	authn := auth.NewMiddleware(auth.NewSecretValidator(cfg.Auth.Secret), ExemptPaths(cfg), d.Metrics)
	chain = append(chain,
		middleware.Stage{Name: middleware.StageAuth, Wrap: authn.Handle},
		middleware.Stage{Name: middleware.StageMetrics, Wrap: middleware.MetricsMiddleware(d.Metrics)},
	)

	return chain
}

// NewRouter mounts the middleware chain and the routes on a chi router.
func NewRouter(d Deps) http.Handler {
	if d.Logger == nil {
		d.Logger = slog.Default()
	}

	r := chi.NewRouter()
	BuildChain(d).Mount(r)

	r.Post(CheckPath, handlers.NewCheckHandler(d.Service, d.Metrics, d.Config.Server.MaxBodyBytes).ServeHTTP)
	r.Get(HealthPath, health.LivenessHandler())
	r.Get(ReadyPath, d.Health.ReadinessHandler())
	if d.Config.Telemetry.Metrics.Enabled {
		r.Handle(d.Config.Telemetry.Metrics.Path, d.Metrics.Handler())
	}

	return r
}
