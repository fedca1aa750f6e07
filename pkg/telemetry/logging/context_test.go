package logging

import (
	"context"
	"testing"
)

func TestRequestID(t *testing.T) {
	ctx := context.Background()
	if got := GetRequestID(ctx); got != "" {
		t.Errorf("expected empty request id, got %q", got)
	}

	ctx = WithRequestID(ctx, "req-1")
	if got := GetRequestID(ctx); got != "req-1" {
		t.Errorf("expected req-1, got %q", got)
	}

	if got := GetRequestID(context.WithValue(context.Background(), RequestIDKey, 42)); got != "" {
		t.Errorf("expected non-string value to be ignored, got %q", got)
	}
}
