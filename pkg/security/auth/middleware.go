package auth

import (
	"errors"
	"log/slog"
	"net/http"

	"lexis-hq/proofread/pkg/proxy/types"
)

// Recorder counts requests rejected before they reach the metrics stage.
type Recorder interface {
	RecordRejection(r *http.Request, kind string)
}

// Middleware is HTTP middleware for shared-secret authentication.
type Middleware struct {
	validator *SecretValidator
	exempt    map[string]struct{}
	recorder  Recorder
}

// NewMiddleware creates authentication middleware. Requests to exempt
// paths are never checked. recorder may be nil.
func NewMiddleware(validator *SecretValidator, exemptPaths []string, recorder Recorder) *Middleware {
	exempt := make(map[string]struct{}, len(exemptPaths))
	for _, p := range exemptPaths {
		exempt[p] = struct{}{}
	}

	return &Middleware{
		validator: validator,
		exempt:    exempt,
		recorder:  recorder,
	}
}

// Handle wraps an HTTP handler with authentication.
func (m *Middleware) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !m.validator.Enabled() {
			next.ServeHTTP(w, r)
			return
		}
		if _, ok := m.exempt[r.URL.Path]; ok {
			next.ServeHTTP(w, r)
			return
		}

		if err := m.validator.Validate(r.Header.Get("Authorization")); err != nil {
			slog.WarnContext(r.Context(), "authentication failed",
				"error", err,
				"remote_addr", r.RemoteAddr,
				"path", r.URL.Path,
			)

			message := "Invalid API key"
			if errors.Is(err, ErrMissingCredential) {
				message = "Missing API key"
			}
			apiErr := types.NewUnauthorizedError(message)
			if m.recorder != nil {
				m.recorder.RecordRejection(r, apiErr.Kind)
			}
			w.Header().Set("WWW-Authenticate", `Bearer realm="proofread"`)
			types.WriteError(w, apiErr)
			return
		}

		next.ServeHTTP(w, r)
	})
}
