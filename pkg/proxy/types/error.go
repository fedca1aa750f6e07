package types

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"lexis-hq/proofread/pkg/check"
)

// ErrorResponse is the body of every error returned by the service.
type ErrorResponse struct {
	// Error is a human-readable message. It never carries stack traces.
	Error string `json:"error"`

	// Code is a machine-readable error code.
	Code string `json:"code"`
}

// Error code constants.
const (
	// CodePayloadTooLarge indicates the text or body exceeds its bound (413).
	CodePayloadTooLarge = "PAYLOAD_TOO_LARGE"

	// CodeUnauthorized indicates a missing or wrong credential (401).
	CodeUnauthorized = "UNAUTHORIZED"

	// CodeRateLimited indicates the client's bucket is empty (429).
	CodeRateLimited = "RATE_LIMITED"

	// CodeInternalError indicates an unexpected failure (500).
	CodeInternalError = "INTERNAL_ERROR"

	// CodeInvalidRequest indicates a malformed body (400).
	CodeInvalidRequest = "INVALID_REQUEST"

	// CodeTimeout indicates the analysis outlived the check timeout (503).
	CodeTimeout = "TIMEOUT"
)

// Error kinds used as the errors_total label.
const (
	KindPayloadTooLarge = "payload_too_large"
	KindUnauthorized    = "unauthorized"
	KindRateLimited     = "rate_limited"
	KindInvalidRequest  = "invalid_request"
	KindTimeout         = "timeout"
	KindInternal        = "internal"
)

// APIError is an error ready to be written to the client.
type APIError struct {
	// Status is the HTTP status code.
	Status int

	// Kind is the metrics label of the error.
	Kind string

	Response ErrorResponse
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return e.Response.Code + ": " + e.Response.Error
}

// NewAPIError creates an APIError.
func NewAPIError(status int, kind, code, message string) *APIError {
	return &APIError{
		Status:   status,
		Kind:     kind,
		Response: ErrorResponse{Error: message, Code: code},
	}
}

// NewPayloadTooLargeError creates a 413 error.
func NewPayloadTooLargeError(message string) *APIError {
	return NewAPIError(http.StatusRequestEntityTooLarge, KindPayloadTooLarge, CodePayloadTooLarge, message)
}

// NewUnauthorizedError creates a 401 error.
func NewUnauthorizedError(message string) *APIError {
	return NewAPIError(http.StatusUnauthorized, KindUnauthorized, CodeUnauthorized, message)
}

// NewRateLimitedError creates a 429 error.
func NewRateLimitedError(message string) *APIError {
	return NewAPIError(http.StatusTooManyRequests, KindRateLimited, CodeRateLimited, message)
}

// NewInvalidRequestError creates a 400 error.
func NewInvalidRequestError(message string) *APIError {
	return NewAPIError(http.StatusBadRequest, KindInvalidRequest, CodeInvalidRequest, message)
}

// NewTimeoutError creates a 503 error.
func NewTimeoutError(message string) *APIError {
	return NewAPIError(http.StatusServiceUnavailable, KindTimeout, CodeTimeout, message)
}

// NewInternalError creates a 500 error. The message is generic; details
// belong in logs.
func NewInternalError() *APIError {
	return NewAPIError(http.StatusInternalServerError, KindInternal, CodeInternalError, "Internal server error")
}

// FromError maps pipeline errors to API errors. Unknown errors become
// internal errors.
//
// Example usage:
//
//	if err != nil {
//	    types.WriteError(w, types.FromError(err))
//	    return
//	}
func FromError(err error) *APIError {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}

	switch {
	case errors.Is(err, check.ErrPayloadTooLarge):
		return NewPayloadTooLargeError(detail(err, check.ErrPayloadTooLarge))
	case errors.Is(err, check.ErrInvalidRequest):
		return NewInvalidRequestError(detail(err, check.ErrInvalidRequest))
	case errors.Is(err, check.ErrTimeout):
		return NewTimeoutError("Analysis timed out")
	default:
		return NewInternalError()
	}
}

// detail strips the sentinel prefix from a wrapped message.
func detail(err, sentinel error) string {
	msg := strings.TrimPrefix(err.Error(), sentinel.Error()+": ")
	if msg == "" {
		return sentinel.Error()
	}
	return msg
}

// WriteError writes e as a JSON error envelope.
func WriteError(w http.ResponseWriter, e *APIError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(e.Status)
	if err := json.NewEncoder(w).Encode(e.Response); err != nil {
		slog.Error("failed to write error response", "error", err)
	}
}
