package logging

import (
	"log/slog"
	"regexp"
	"strings"
)

const redacted = "***"

var bearerToken = regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9\-._~+/]+=*`)

// sensitiveKeys are attribute keys whose values are always masked.
var sensitiveKeys = []string{
	"authorization", "secret", "token", "password", "api_key", "apikey",
}

// Redactor masks credentials in log attributes.
type Redactor struct {
	secrets []string
}

// NewRedactor returns a redactor that masks bearer tokens, values of
// sensitive keys and every literal in secrets.
func NewRedactor(secrets ...string) *Redactor {
	r := &Redactor{}
	for _, s := range secrets {
		if s != "" {
			r.secrets = append(r.secrets, s)
		}
	}
	return r
}

// RedactString masks credentials in value.
func (r *Redactor) RedactString(value string) string {
	if value == "" {
		return value
	}
	for _, s := range r.secrets {
		value = strings.ReplaceAll(value, s, redacted)
	}
	return bearerToken.ReplaceAllString(value, "Bearer "+redacted)
}

// ReplaceAttr is a slog.HandlerOptions.ReplaceAttr hook.
func (r *Redactor) ReplaceAttr(_ []string, a slog.Attr) slog.Attr {
	if isSensitiveKey(a.Key) {
		return slog.String(a.Key, redacted)
	}

	switch a.Value.Kind() {
	case slog.KindString:
		return slog.String(a.Key, r.RedactString(a.Value.String()))
	case slog.KindAny:
		if err, ok := a.Value.Any().(error); ok {
			return slog.String(a.Key, r.RedactString(err.Error()))
		}
	}
	return a
}

func isSensitiveKey(key string) bool {
	lower := strings.ToLower(key)
	for _, s := range sensitiveKeys {
		if strings.Contains(lower, s) {
			return true
		}
	}
	return false
}
