package middleware

import (
	"context"
	"net/http"

	"lexis-hq/proofread/pkg/telemetry/logging"
)

// Recorder counts requests rejected by a stage that runs before the
// metrics stage, so that they still appear in requests_total.
type Recorder interface {
	RecordRejection(r *http.Request, kind string)
}

// RequestRecorder counts a request that a stage answers itself before the
// metrics stage.
type RequestRecorder interface {
	RecordRequest(path string)
}

// ErrorRecorder counts failures of requests already counted.
type ErrorRecorder interface {
	RecordError(kind string)
}

// GetRequestID extracts the request ID from the context.
// Returns empty string if not found.
func GetRequestID(ctx context.Context) string {
	return logging.GetRequestID(ctx)
}
