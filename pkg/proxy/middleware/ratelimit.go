package middleware

import (
	"log/slog"
	"math"
	"net"
	"net/http"
	"strconv"

	"lexis-hq/proofread/pkg/limits/ratelimit"
	"lexis-hq/proofread/pkg/proxy/types"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// RateLimitConfig configures the rate limit stage.
type RateLimitConfig struct {
	// Limiter holds one token bucket per client IP.
	Limiter *ratelimit.ClientLimiter

	// TrustProxyHeaders takes the client IP from X-Forwarded-For,
	// X-Real-IP or True-Client-IP. Enable only behind a trusted proxy.
	TrustProxyHeaders bool

	// Recorder counts rejections. May be nil.
	Recorder Recorder
}

// RateLimitMiddleware rejects a request with 429 when its client's bucket is
// empty. Allowed responses carry X-RateLimit-Limit and X-RateLimit-Remaining.
func RateLimitMiddleware(config RateLimitConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		limit := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			result := config.Limiter.Allow(ClientIP(r))

			w.Header().Set("X-RateLimit-Limit", strconv.FormatInt(result.Limit, 10))
			w.Header().Set("X-RateLimit-Remaining", strconv.FormatInt(result.Remaining, 10))

			if result.Allowed {
				next.ServeHTTP(w, r)
				return
			}

			retryAfter := max(1, int(math.Ceil(result.RetryAfter.Seconds())))
			slog.DebugContext(r.Context(), "rate limit exceeded",
				"client", ClientIP(r),
				"retry_after_s", retryAfter,
			)

			apiErr := types.NewRateLimitedError("Rate limit exceeded")
			if config.Recorder != nil {
				config.Recorder.RecordRejection(r, apiErr.Kind)
			}
			w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
			types.WriteError(w, apiErr)
		})

		if config.TrustProxyHeaders {
			return chimw.RealIP(limit)
		}
		return limit
	}
}

// ClientIP returns the host part of the request's remote address.
func ClientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
