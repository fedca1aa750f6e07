package config

import (
	"fmt"
	"strings"

	"github.com/robfig/cron/v3"
	"golang.org/x/text/language"
)

// FieldError represents a validation error for a specific configuration field.
type FieldError struct {
	// Field is the dotted path to the configuration field (e.g., "server.port").
	Field string

	// Message is a human-readable error message.
	Message string
}

// Error returns the error message for this field error.
func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationError represents one or more validation errors in a configuration.
// It implements the error interface and provides access to all field errors.
type ValidationError struct {
	// Errors contains all validation errors found in the configuration.
	Errors []FieldError
}

// Error returns a formatted string containing all validation errors.
func (e ValidationError) Error() string {
	if len(e.Errors) == 0 {
		return "configuration validation failed"
	}
	if len(e.Errors) == 1 {
		return fmt.Sprintf("configuration validation failed: %s", e.Errors[0].Error())
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("configuration validation failed with %d errors:\n", len(e.Errors)))
	for _, err := range e.Errors {
		sb.WriteString(fmt.Sprintf("  - %s\n", err.Error()))
	}
	return sb.String()
}

// Validate validates the entire configuration and returns a ValidationError
// if any validation rules fail. It returns nil if the configuration is valid.
// All validation errors are collected and returned together.
func Validate(cfg *Config) error {
	var errs []FieldError

	errs = append(errs, validateServer(&cfg.Server)...)
	errs = append(errs, validateCORS(&cfg.CORS)...)
	errs = append(errs, validateAuth(&cfg.Auth)...)
	errs = append(errs, validateRateLimit(&cfg.RateLimit)...)
	errs = append(errs, validateEngine(&cfg.Engine)...)
	errs = append(errs, validateTelemetry(&cfg.Telemetry)...)

	if len(errs) > 0 {
		return ValidationError{Errors: errs}
	}

	return nil
}

// validateServer validates the HTTP server configuration.
func validateServer(cfg *ServerConfig) []FieldError {
	var errs []FieldError

	if cfg.Host == "" {
		errs = append(errs, FieldError{
			Field:   "server.host",
			Message: "host is required",
		})
	}
	if cfg.Port < 0 || cfg.Port > 65535 {
		errs = append(errs, FieldError{
			Field:   "server.port",
			Message: fmt.Sprintf("port %d is out of range", cfg.Port),
		})
	}

	if cfg.ReadTimeout < 0 {
		errs = append(errs, FieldError{
			Field:   "server.read_timeout",
			Message: "read timeout must be positive",
		})
	}
	if cfg.WriteTimeout < 0 {
		errs = append(errs, FieldError{
			Field:   "server.write_timeout",
			Message: "write timeout must be positive",
		})
	}
	if cfg.IdleTimeout < 0 {
		errs = append(errs, FieldError{
			Field:   "server.idle_timeout",
			Message: "idle timeout must be positive",
		})
	}
	if cfg.ShutdownTimeout <= 0 {
		errs = append(errs, FieldError{
			Field:   "server.shutdown_timeout",
			Message: "shutdown timeout must be positive",
		})
	}

	// The body has to be able to carry the largest accepted text.
	if cfg.MaxBodyBytes < 100*1024 {
		errs = append(errs, FieldError{
			Field:   "server.max_body_bytes",
			Message: "max body bytes must be at least 102400",
		})
	}

	return errs
}

// validateCORS validates the allowed origins list.
func validateCORS(cfg *CORSConfig) []FieldError {
	var errs []FieldError

	for _, origin := range cfg.AllowedOrigins {
		if origin == "*" {
			continue
		}
		if !strings.HasPrefix(origin, "http://") && !strings.HasPrefix(origin, "https://") {
			errs = append(errs, FieldError{
				Field:   "cors.allowed_origins",
				Message: fmt.Sprintf("origin %q must start with http:// or https://", origin),
			})
		}
	}
	if cfg.MaxAge < 0 {
		errs = append(errs, FieldError{
			Field:   "cors.max_age",
			Message: "max age must be non-negative",
		})
	}

	return errs
}

// validateAuth validates authentication configuration.
func validateAuth(cfg *AuthConfig) []FieldError {
	var errs []FieldError

	if cfg.Secret != strings.TrimSpace(cfg.Secret) {
		errs = append(errs, FieldError{
			Field:   "auth.secret",
			Message: "secret must not have leading or trailing whitespace",
		})
	}
	for _, path := range cfg.ExemptPaths {
		if !strings.HasPrefix(path, "/") {
			errs = append(errs, FieldError{
				Field:   "auth.exempt_paths",
				Message: fmt.Sprintf("path %q must start with /", path),
			})
		}
	}

	return errs
}

// validateRateLimit validates rate limiting configuration.
func validateRateLimit(cfg *RateLimitConfig) []FieldError {
	var errs []FieldError

	if !cfg.Enabled {
		return errs
	}

	if cfg.RequestsPerSecond <= 0 {
		errs = append(errs, FieldError{
			Field:   "rate_limit.requests_per_second",
			Message: "requests per second must be positive",
		})
	}
	if cfg.Burst < 1 {
		errs = append(errs, FieldError{
			Field:   "rate_limit.burst",
			Message: "burst must be at least 1",
		})
	}
	if cfg.MaxClients < 1 {
		errs = append(errs, FieldError{
			Field:   "rate_limit.max_clients",
			Message: "max clients must be at least 1",
		})
	}
	if cfg.IdleTTL <= 0 {
		errs = append(errs, FieldError{
			Field:   "rate_limit.idle_ttl",
			Message: "idle ttl must be positive",
		})
	}
	if _, err := cron.ParseStandard(cfg.SweepSchedule); err != nil {
		errs = append(errs, FieldError{
			Field:   "rate_limit.sweep_schedule",
			Message: fmt.Sprintf("invalid cron expression %q: %v", cfg.SweepSchedule, err),
		})
	}

	return errs
}

// validateEngine validates analysis engine configuration.
func validateEngine(cfg *EngineConfig) []FieldError {
	var errs []FieldError

	tag, err := language.Parse(cfg.Dialect)
	if err != nil {
		errs = append(errs, FieldError{
			Field:   "engine.dialect",
			Message: fmt.Sprintf("invalid language tag %q: %v", cfg.Dialect, err),
		})
		return errs
	}
	if base, _ := tag.Base(); base.String() != "en" {
		errs = append(errs, FieldError{
			Field:   "engine.dialect",
			Message: fmt.Sprintf("unsupported dialect %q: only English is curated", cfg.Dialect),
		})
	}

	return errs
}

// validateTelemetry validates telemetry configuration.
func validateTelemetry(cfg *TelemetryConfig) []FieldError {
	var errs []FieldError

	// Validate logging level
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[cfg.Logging.Level] {
		errs = append(errs, FieldError{
			Field:   "telemetry.logging.level",
			Message: fmt.Sprintf("invalid logging level %q: must be 'debug', 'info', 'warn', or 'error'", cfg.Logging.Level),
		})
	}

	// Validate logging format
	validFormats := map[string]bool{"json": true, "text": true}
	if !validFormats[cfg.Logging.Format] {
		errs = append(errs, FieldError{
			Field:   "telemetry.logging.format",
			Message: fmt.Sprintf("invalid logging format %q: must be 'json' or 'text'", cfg.Logging.Format),
		})
	}

	if cfg.Metrics.Enabled && !strings.HasPrefix(cfg.Metrics.Path, "/") {
		errs = append(errs, FieldError{
			Field:   "telemetry.metrics.path",
			Message: "metrics path must start with /",
		})
	}

	// Validate tracing configuration
	validSamplers := map[string]bool{"always": true, "never": true, "ratio": true}
	if !validSamplers[cfg.Tracing.Sampler] {
		errs = append(errs, FieldError{
			Field:   "telemetry.tracing.sampler",
			Message: fmt.Sprintf("invalid sampler %q: must be 'always', 'never', or 'ratio'", cfg.Tracing.Sampler),
		})
	}
	if cfg.Tracing.SampleRatio < 0 || cfg.Tracing.SampleRatio > 1.0 {
		errs = append(errs, FieldError{
			Field:   "telemetry.tracing.sample_ratio",
			Message: "sample ratio must be between 0.0 and 1.0",
		})
	}
	switch cfg.Tracing.Exporter {
	case "otlp":
		if cfg.Tracing.Enabled && cfg.Tracing.Endpoint == "" {
			errs = append(errs, FieldError{
				Field:   "telemetry.tracing.endpoint",
				Message: "tracing endpoint is required for the otlp exporter",
			})
		}
	case "stdout":
	default:
		errs = append(errs, FieldError{
			Field:   "telemetry.tracing.exporter",
			Message: fmt.Sprintf("invalid exporter %q: must be 'otlp' or 'stdout'", cfg.Tracing.Exporter),
		})
	}

	return errs
}
