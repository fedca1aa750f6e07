package types

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"lexis-hq/proofread/pkg/check"
)

func TestFromError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		code    string
		kind    string
		message string
	}{
		{
			name:    "payload too large",
			err:     fmt.Errorf("%w: Text exceeds maximum size of 102400 bytes", check.ErrPayloadTooLarge),
			status:  http.StatusRequestEntityTooLarge,
			code:    CodePayloadTooLarge,
			kind:    KindPayloadTooLarge,
			message: "Text exceeds maximum size of 102400 bytes",
		},
		{
			name:    "invalid request",
			err:     fmt.Errorf("%w: missing field `text`", check.ErrInvalidRequest),
			status:  http.StatusBadRequest,
			code:    CodeInvalidRequest,
			kind:    KindInvalidRequest,
			message: "missing field `text`",
		},
		{
			name:   "timeout",
			err:    fmt.Errorf("%w after 10s", check.ErrTimeout),
			status: http.StatusServiceUnavailable,
			code:   CodeTimeout,
			kind:   KindTimeout,
		},
		{
			name:    "engine failure",
			err:     fmt.Errorf("%w: engine failure: boom", check.ErrInternal),
			status:  http.StatusInternalServerError,
			code:    CodeInternalError,
			kind:    KindInternal,
			message: "Internal server error",
		},
		{
			name:    "unknown error",
			err:     errors.New("something else"),
			status:  http.StatusInternalServerError,
			code:    CodeInternalError,
			kind:    KindInternal,
			message: "Internal server error",
		},
		{
			name:    "api error passes through",
			err:     fmt.Errorf("wrapped: %w", NewUnauthorizedError("Missing credential")),
			status:  http.StatusUnauthorized,
			code:    CodeUnauthorized,
			kind:    KindUnauthorized,
			message: "Missing credential",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromError(tt.err)
			if got.Status != tt.status {
				t.Errorf("expected status %d, got %d", tt.status, got.Status)
			}
			if got.Response.Code != tt.code {
				t.Errorf("expected code %s, got %s", tt.code, got.Response.Code)
			}
			if got.Kind != tt.kind {
				t.Errorf("expected kind %s, got %s", tt.kind, got.Kind)
			}
			if tt.message != "" && got.Response.Error != tt.message {
				t.Errorf("expected message %q, got %q", tt.message, got.Response.Error)
			}
		})
	}
}

func TestWriteError(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteError(rec, NewRateLimitedError("Too many requests"))

	if rec.Code != http.StatusTooManyRequests {
		t.Errorf("expected status 429, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected JSON content type, got %q", ct)
	}

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if len(body) != 2 || body["code"] != CodeRateLimited || body["error"] != "Too many requests" {
		t.Errorf("unexpected body %v", body)
	}
}
