package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// LoadConfig loads configuration from a YAML file at the specified path.
// The file is decoded on top of Default(), so absent keys keep their
// default values. An empty path yields the defaults alone.
// The configuration is not modified by environment variables; use
// LoadConfigWithEnvOverrides for that functionality.
func LoadConfig(path string) (*Config, error) {
	cfg, err := decodeFile(path)
	if err != nil {
		return nil, err
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// LoadConfigWithEnvOverrides loads configuration from a YAML file and applies
// environment variable overrides. Environment variables always take
// precedence over file-based configuration.
//
// The service surface is configured through the short names HOST, PORT,
// CORS_ORIGINS, API_KEY, RATE_LIMIT_PER_SECOND and RATE_LIMIT_BURST.
// Every other field follows PROOFREAD_SECTION_FIELD
// (e.g., PROOFREAD_TELEMETRY_LOGGING_LEVEL).
//
// The loading sequence is:
// 1. Start from defaults
// 2. Decode YAML from file (if any)
// 3. Apply environment variable overrides
// 4. Validate final configuration
//
// Validation runs once, on the merged result. An explicit zero from the
// environment is kept and validated as is.
func LoadConfigWithEnvOverrides(path string) (*Config, error) {
	cfg, err := decodeFile(path)
	if err != nil {
		return nil, err
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// decodeFile decodes path on top of the defaults without validating.
func decodeFile(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read configuration file %q: %w", path, err)
		}

		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse configuration file %q: %w", path, err)
		}
	}

	ApplyDefaults(cfg)
	return cfg, nil
}

// ResolvePath returns path unless it is the implicit default and does not
// exist, in which case it returns "" so that defaults and the environment
// apply on their own.
func ResolvePath(path string, explicit bool) (string, error) {
	if explicit {
		return path, nil
	}
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("failed to stat configuration file %q: %w", path, err)
	}
	return path, nil
}

// envParser accumulates parse failures so that a malformed variable is
// reported instead of silently ignored.
type envParser struct {
	errs []FieldError
}

func (p *envParser) str(name string, dst *string) {
	if val, ok := os.LookupEnv(name); ok && val != "" {
		*dst = val
	}
}

func (p *envParser) list(name string, dst *[]string) {
	val, ok := os.LookupEnv(name)
	if !ok {
		return
	}
	*dst = SplitList(val)
}

func (p *envParser) integer(name string, dst *int) {
	if val := os.Getenv(name); val != "" {
		i, err := strconv.Atoi(val)
		if err != nil {
			p.fail(name, val, "integer")
			return
		}
		*dst = i
	}
}

func (p *envParser) integer64(name string, dst *int64) {
	if val := os.Getenv(name); val != "" {
		i, err := strconv.ParseInt(val, 10, 64)
		if err != nil {
			p.fail(name, val, "integer")
			return
		}
		*dst = i
	}
}

func (p *envParser) float(name string, dst *float64) {
	if val := os.Getenv(name); val != "" {
		f, err := strconv.ParseFloat(val, 64)
		if err != nil {
			p.fail(name, val, "number")
			return
		}
		*dst = f
	}
}

func (p *envParser) boolean(name string, dst *bool) {
	if val := os.Getenv(name); val != "" {
		b, err := strconv.ParseBool(val)
		if err != nil {
			p.fail(name, val, "boolean")
			return
		}
		*dst = b
	}
}

func (p *envParser) duration(name string, dst *time.Duration) {
	if val := os.Getenv(name); val != "" {
		d, err := time.ParseDuration(val)
		if err != nil {
			p.fail(name, val, "duration")
			return
		}
		*dst = d
	}
}

func (p *envParser) fail(name, val, kind string) {
	p.errs = append(p.errs, FieldError{
		Field:   name,
		Message: fmt.Sprintf("invalid %s %q", kind, val),
	})
}

// applyEnvOverrides applies environment variable overrides to the configuration.
func applyEnvOverrides(cfg *Config) error {
	p := &envParser{}

	// Service surface
	p.str("HOST", &cfg.Server.Host)
	p.integer("PORT", &cfg.Server.Port)
	p.list("CORS_ORIGINS", &cfg.CORS.AllowedOrigins)
	p.str("API_KEY", &cfg.Auth.Secret)
	p.float("RATE_LIMIT_PER_SECOND", &cfg.RateLimit.RequestsPerSecond)
	p.integer64("RATE_LIMIT_BURST", &cfg.RateLimit.Burst)

	// Server overrides
	p.str("PROOFREAD_SERVER_HOST", &cfg.Server.Host)
	p.integer("PROOFREAD_SERVER_PORT", &cfg.Server.Port)
	p.duration("PROOFREAD_SERVER_READ_TIMEOUT", &cfg.Server.ReadTimeout)
	p.duration("PROOFREAD_SERVER_WRITE_TIMEOUT", &cfg.Server.WriteTimeout)
	p.duration("PROOFREAD_SERVER_IDLE_TIMEOUT", &cfg.Server.IdleTimeout)
	p.duration("PROOFREAD_SERVER_SHUTDOWN_TIMEOUT", &cfg.Server.ShutdownTimeout)
	p.duration("PROOFREAD_SERVER_CHECK_TIMEOUT", &cfg.Server.CheckTimeout)
	p.integer64("PROOFREAD_SERVER_MAX_BODY_BYTES", &cfg.Server.MaxBodyBytes)
	p.boolean("PROOFREAD_SERVER_TRUST_PROXY_HEADERS", &cfg.Server.TrustProxyHeaders)

	// CORS overrides
	p.list("PROOFREAD_CORS_ALLOWED_ORIGINS", &cfg.CORS.AllowedOrigins)
	p.integer("PROOFREAD_CORS_MAX_AGE", &cfg.CORS.MaxAge)
	p.boolean("PROOFREAD_CORS_ALLOW_CREDENTIALS", &cfg.CORS.AllowCredentials)

	// Auth overrides
	p.str("PROOFREAD_AUTH_SECRET", &cfg.Auth.Secret)
	p.list("PROOFREAD_AUTH_EXEMPT_PATHS", &cfg.Auth.ExemptPaths)

	// Rate limit overrides
	p.boolean("PROOFREAD_RATE_LIMIT_ENABLED", &cfg.RateLimit.Enabled)
	p.float("PROOFREAD_RATE_LIMIT_REQUESTS_PER_SECOND", &cfg.RateLimit.RequestsPerSecond)
	p.integer64("PROOFREAD_RATE_LIMIT_BURST", &cfg.RateLimit.Burst)
	p.integer("PROOFREAD_RATE_LIMIT_MAX_CLIENTS", &cfg.RateLimit.MaxClients)
	p.duration("PROOFREAD_RATE_LIMIT_IDLE_TTL", &cfg.RateLimit.IdleTTL)
	p.str("PROOFREAD_RATE_LIMIT_SWEEP_SCHEDULE", &cfg.RateLimit.SweepSchedule)

	// Engine overrides
	p.str("PROOFREAD_ENGINE_DIALECT", &cfg.Engine.Dialect)
	p.str("PROOFREAD_ENGINE_EXTRA_WORDS_PATH", &cfg.Engine.ExtraWordsPath)

	// Telemetry overrides
	p.str("PROOFREAD_TELEMETRY_LOGGING_LEVEL", &cfg.Telemetry.Logging.Level)
	p.str("PROOFREAD_TELEMETRY_LOGGING_FORMAT", &cfg.Telemetry.Logging.Format)
	p.boolean("PROOFREAD_TELEMETRY_LOGGING_ADD_SOURCE", &cfg.Telemetry.Logging.AddSource)
	p.boolean("PROOFREAD_TELEMETRY_LOGGING_REDACT_SECRETS", &cfg.Telemetry.Logging.RedactSecrets)
	p.boolean("PROOFREAD_TELEMETRY_METRICS_ENABLED", &cfg.Telemetry.Metrics.Enabled)
	p.str("PROOFREAD_TELEMETRY_METRICS_PATH", &cfg.Telemetry.Metrics.Path)
	p.boolean("PROOFREAD_TELEMETRY_TRACING_ENABLED", &cfg.Telemetry.Tracing.Enabled)
	p.str("PROOFREAD_TELEMETRY_TRACING_SAMPLER", &cfg.Telemetry.Tracing.Sampler)
	p.float("PROOFREAD_TELEMETRY_TRACING_SAMPLE_RATIO", &cfg.Telemetry.Tracing.SampleRatio)
	p.str("PROOFREAD_TELEMETRY_TRACING_EXPORTER", &cfg.Telemetry.Tracing.Exporter)
	p.str("PROOFREAD_TELEMETRY_TRACING_ENDPOINT", &cfg.Telemetry.Tracing.Endpoint)
	p.str("PROOFREAD_TELEMETRY_TRACING_SERVICE_NAME", &cfg.Telemetry.Tracing.ServiceName)
	p.boolean("PROOFREAD_TELEMETRY_TRACING_OTLP_INSECURE", &cfg.Telemetry.Tracing.OTLP.Insecure)

	if len(p.errs) > 0 {
		return ValidationError{Errors: p.errs}
	}
	return nil
}

// SplitList splits a comma-separated list, trimming blanks and dropping
// empty elements.
func SplitList(val string) []string {
	parts := strings.Split(val, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
