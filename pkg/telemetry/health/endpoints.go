package health

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
)

// LivenessBody is the body of a successful liveness check.
const LivenessBody = "ok"

// LivenessHandler answers GET /health with the literal text "ok".
// It performs no checks: a process able to serve it is alive.
func LivenessHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)

		if r.Method != http.MethodHead {
			_, _ = io.WriteString(w, LivenessBody)
		}
	}
}

// ReadinessHandler returns an HTTP handler for the readiness endpoint.
// It performs all registered component health checks.
//
// Returns:
//   - 200 OK: System is ready to serve traffic
//   - 503 Service Unavailable: A check failed or the server is draining
//
// Example response (ready):
//
//	{
//	    "status": "ready",
//	    "checks": {
//	        "dictionary": {"status": "ok", "duration_ms": 0.012}
//	    },
//	    "timestamp": "2026-01-20T10:30:00Z"
//	}
func (c *Checker) ReadinessHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := c.CheckReadiness(r.Context())

		w.Header().Set("Content-Type", "application/json")

		if status.Ready() {
			w.WriteHeader(http.StatusOK)
		} else {
			w.WriteHeader(http.StatusServiceUnavailable)
		}

		if r.Method == http.MethodHead {
			return
		}
		if err := json.NewEncoder(w).Encode(status); err != nil {
			slog.ErrorContext(r.Context(), "failed to write readiness response", "error", err)
		}
	}
}
