package logging

import (
	"errors"
	"log/slog"
	"testing"
)

func TestRedactor_RedactString(t *testing.T) {
	r := NewRedactor("hunter2", "")

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty", input: "", want: ""},
		{name: "plain", input: "nothing to hide", want: "nothing to hide"},
		{name: "bearer", input: "Authorization: Bearer abc123==", want: "Authorization: Bearer ***"},
		{name: "lowercase bearer", input: "bearer xyz", want: "Bearer ***"},
		{name: "secret literal", input: "got hunter2 from env", want: "got *** from env"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.RedactString(tt.input); got != tt.want {
				t.Errorf("RedactString(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestRedactor_ReplaceAttr(t *testing.T) {
	r := NewRedactor("hunter2")

	tests := []struct {
		name string
		attr slog.Attr
		want string
	}{
		{name: "sensitive key", attr: slog.String("Authorization", "Basic Zm9v"), want: "***"},
		{name: "sensitive key non-string", attr: slog.Int("token_count", 5), want: "***"},
		{name: "string value", attr: slog.String("detail", "hunter2"), want: "***"},
		{name: "error value", attr: slog.Any("err", errors.New("bad hunter2")), want: "bad ***"},
		{name: "untouched", attr: slog.Int("status", 200), want: "200"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.ReplaceAttr(nil, tt.attr).Value.String(); got != tt.want {
				t.Errorf("ReplaceAttr() = %q, want %q", got, tt.want)
			}
		})
	}
}
