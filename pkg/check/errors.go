package check

import "errors"

// Sentinel errors returned by the pipeline. Callers match them with
// errors.Is; the HTTP layer maps each one to a status and error code.
var (
	// ErrPayloadTooLarge is returned when the text exceeds MaxTextBytes.
	ErrPayloadTooLarge = errors.New("payload too large")

	// ErrInvalidRequest is returned for malformed bodies.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrTimeout is returned when analysis outlives the check timeout.
	ErrTimeout = errors.New("analysis timed out")

	// ErrInternal is returned when the engine fails unexpectedly.
	ErrInternal = errors.New("internal error")
)
