package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"runtime/debug"

	"lexis-hq/proofread/pkg/proxy/types"
)

// RecoveryMiddleware recovers from panics in later stages and handlers and
// returns a 500 INTERNAL_ERROR envelope. The panic value and stack are
// logged but never sent to the client. recorder may be nil.
func RecoveryMiddleware(recorder ErrorRecorder) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				// net/http uses this panic to abort a response on purpose.
				if err, ok := rec.(error); ok && errors.Is(err, http.ErrAbortHandler) {
					panic(rec)
				}

				slog.ErrorContext(r.Context(), "panic in handler",
					"panic", rec,
					"method", r.Method,
					"path", r.URL.Path,
					"stack", string(debug.Stack()),
				)

				apiErr := types.NewInternalError()
				if recorder != nil {
					recorder.RecordError(apiErr.Kind)
				}
				types.WriteError(w, apiErr)
			}()

			next.ServeHTTP(w, r)
		})
	}
}
