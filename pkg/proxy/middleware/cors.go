package middleware

import (
	"net/http"
	"slices"
	"strconv"
	"strings"
)

var (
	corsMethods = strings.Join([]string{http.MethodGet, http.MethodPost, http.MethodOptions}, ", ")
	corsHeaders = strings.Join([]string{"Content-Type", "Accept", "Authorization", RequestIDHeader}, ", ")
)

// CORSConfig contains configuration for CORS middleware.
type CORSConfig struct {
	// AllowedOrigins is the origin allow-list. Empty or containing "*"
	// allows every origin.
	AllowedOrigins []string

	// MaxAge is how long browsers may cache a preflight answer, in seconds.
	MaxAge int

	// AllowCredentials controls whether credentials are allowed.
	AllowCredentials bool

	// Recorder counts answered preflights. May be nil.
	Recorder RequestRecorder
}

func (c *CORSConfig) permissive() bool {
	return len(c.AllowedOrigins) == 0 || slices.Contains(c.AllowedOrigins, "*")
}

// CORSMiddleware adds Cross-Origin Resource Sharing (CORS) headers to responses.
// Allowed origins are reflected back, so credentials work in permissive
// mode too. Preflight OPTIONS requests are answered with 204 and never
// reach later stages; they are counted through Recorder.
//
// Example usage:
//
//	handler = CORSMiddleware(&CORSConfig{AllowedOrigins: []string{"https://example.com"}})(handler)
func CORSMiddleware(config *CORSConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origin == "" {
				next.ServeHTTP(w, r)
				return
			}

			h := w.Header()
			h.Add("Vary", "Origin")

			allowed := config.permissive() || slices.Contains(config.AllowedOrigins, origin)
			if allowed {
				h.Set("Access-Control-Allow-Origin", origin)
				h.Set("Access-Control-Expose-Headers", RequestIDHeader)
				if config.AllowCredentials {
					h.Set("Access-Control-Allow-Credentials", "true")
				}
			}

			if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
				if allowed {
					h.Set("Access-Control-Allow-Methods", corsMethods)
					h.Set("Access-Control-Allow-Headers", corsHeaders)
					if config.MaxAge > 0 {
						h.Set("Access-Control-Max-Age", strconv.Itoa(config.MaxAge))
					}
				}
				if config.Recorder != nil {
					config.Recorder.RecordRequest(r.URL.Path)
				}
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
