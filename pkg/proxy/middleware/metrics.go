package middleware

import (
	"net/http"
)

// RequestCounter is the part of the metrics collector used by the metrics stage.
type RequestCounter interface {
	RecordRequest(path string)
	TrackInFlight() func()
}

// MetricsMiddleware counts every request that reaches it and tracks the
// number in flight.
func MetricsMiddleware(counter RequestCounter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			counter.RecordRequest(r.URL.Path)
			done := counter.TrackInFlight()
			defer done()

			next.ServeHTTP(w, r)
		})
	}
}
