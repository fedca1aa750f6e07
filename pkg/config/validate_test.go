package config

import (
	"errors"
	"strings"
	"testing"
)

func TestValidate_Defaults(t *testing.T) {
	if err := Validate(Default()); err != nil {
		t.Fatalf("default configuration should be valid: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		field  string
	}{
		{
			name:   "port out of range",
			modify: func(c *Config) { c.Server.Port = 70000 },
			field:  "server.port",
		},
		{
			name:   "body smaller than text bound",
			modify: func(c *Config) { c.Server.MaxBodyBytes = 1024 },
			field:  "server.max_body_bytes",
		},
		{
			name:   "origin without scheme",
			modify: func(c *Config) { c.CORS.AllowedOrigins = []string{"example.com"} },
			field:  "cors.allowed_origins",
		},
		{
			name:   "secret with whitespace",
			modify: func(c *Config) { c.Auth.Secret = " padded" },
			field:  "auth.secret",
		},
		{
			name:   "relative exempt path",
			modify: func(c *Config) { c.Auth.ExemptPaths = []string{"health"} },
			field:  "auth.exempt_paths",
		},
		{
			name:   "negative rate",
			modify: func(c *Config) { c.RateLimit.RequestsPerSecond = -1 },
			field:  "rate_limit.requests_per_second",
		},
		{
			name:   "bad sweep schedule",
			modify: func(c *Config) { c.RateLimit.SweepSchedule = "every minute" },
			field:  "rate_limit.sweep_schedule",
		},
		{
			name:   "unparseable dialect",
			modify: func(c *Config) { c.Engine.Dialect = "not a tag" },
			field:  "engine.dialect",
		},
		{
			name:   "non-English dialect",
			modify: func(c *Config) { c.Engine.Dialect = "fr-FR" },
			field:  "engine.dialect",
		},
		{
			name:   "bad log level",
			modify: func(c *Config) { c.Telemetry.Logging.Level = "verbose" },
			field:  "telemetry.logging.level",
		},
		{
			name: "otlp without endpoint",
			modify: func(c *Config) {
				c.Telemetry.Tracing.Enabled = true
				c.Telemetry.Tracing.Exporter = "otlp"
			},
			field: "telemetry.tracing.endpoint",
		},
		{
			name:   "unknown exporter",
			modify: func(c *Config) { c.Telemetry.Tracing.Exporter = "zipkin" },
			field:  "telemetry.tracing.exporter",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)

			err := Validate(cfg)
			if err == nil {
				t.Fatal("expected validation error")
			}

			var verr ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %T", err)
			}

			found := false
			for _, fe := range verr.Errors {
				if fe.Field == tt.field {
					found = true
				}
			}
			if !found {
				t.Errorf("expected error on %s, got %v", tt.field, err)
			}
		})
	}
}

func TestValidate_DisabledRateLimitSkipsChecks(t *testing.T) {
	cfg := Default()
	cfg.RateLimit.Enabled = false
	cfg.RateLimit.RequestsPerSecond = -1

	if err := Validate(cfg); err != nil {
		t.Errorf("disabled rate limiting should not be validated: %v", err)
	}
}

func TestValidationError_MultipleErrors(t *testing.T) {
	err := ValidationError{Errors: []FieldError{
		{Field: "a", Message: "first"},
		{Field: "b", Message: "second"},
	}}

	msg := err.Error()
	if !strings.Contains(msg, "2 errors") {
		t.Errorf("expected error count in message, got %q", msg)
	}
	if !strings.Contains(msg, "a: first") || !strings.Contains(msg, "b: second") {
		t.Errorf("expected both field errors in message, got %q", msg)
	}
}
