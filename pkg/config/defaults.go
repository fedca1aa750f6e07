package config

import "time"

// Default values for configuration fields.
const (
	// Server defaults
	DefaultHost            = "0.0.0.0"
	DefaultPort            = 8080
	DefaultReadTimeout     = 30 * time.Second
	DefaultWriteTimeout    = 30 * time.Second
	DefaultIdleTimeout     = 120 * time.Second
	DefaultShutdownTimeout = 30 * time.Second
	DefaultCheckTimeout    = 10 * time.Second
	DefaultMaxBodyBytes    = int64(1 << 20) // 1MB

	// CORS defaults
	DefaultCORSMaxAge = 3600 // 1 hour

	// Rate limit defaults
	DefaultRateLimitEnabled       = true
	DefaultRateLimitPerSecond     = 10.0
	DefaultRateLimitBurst         = int64(20)
	DefaultRateLimitMaxClients    = 10000
	DefaultRateLimitIdleTTL       = 10 * time.Minute
	DefaultRateLimitSweepSchedule = "@every 1m"

	// Engine defaults
	DefaultEngineDialect = "en-US"

	// Telemetry defaults
	DefaultLoggingLevel         = "info"
	DefaultLoggingFormat        = "json"
	DefaultLoggingRedactSecrets = true
	DefaultMetricsEnabled       = true
	DefaultMetricsPath          = "/metrics"
	DefaultMetricsNamespace     = "proofread"
	DefaultMetricsSubsystem     = "api"
	DefaultTracingEnabled       = false
	DefaultTracingSampler       = "ratio"
	DefaultTracingSampleRatio   = 0.1
	DefaultTracingExporter      = "otlp"
	DefaultTracingServiceName   = "proofread"
	DefaultOTLPTimeout          = 10 * time.Second
)

// DefaultCheckDurationBuckets covers sub-millisecond lint runs up to the
// slowest 100 KiB documents.
var DefaultCheckDurationBuckets = []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5}

// Default returns a configuration populated with every default, including
// the boolean fields whose zero value differs from their default. YAML is
// decoded on top of it so that absent keys keep their defaults.
func Default() *Config {
	cfg := &Config{}
	cfg.Server.CheckTimeout = DefaultCheckTimeout
	cfg.RateLimit.Enabled = DefaultRateLimitEnabled
	cfg.Telemetry.Logging.RedactSecrets = DefaultLoggingRedactSecrets
	cfg.Telemetry.Metrics.Enabled = DefaultMetricsEnabled
	cfg.Telemetry.Tracing.Enabled = DefaultTracingEnabled
	ApplyDefaults(cfg)
	return cfg
}

// ApplyDefaults applies default values to a Config struct.
// It sets defaults for any fields that have zero values.
// This function is idempotent and safe to call multiple times.
func ApplyDefaults(cfg *Config) {
	// Server defaults
	if cfg.Server.Host == "" {
		cfg.Server.Host = DefaultHost
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = DefaultPort
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = DefaultReadTimeout
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = DefaultWriteTimeout
	}
	if cfg.Server.IdleTimeout == 0 {
		cfg.Server.IdleTimeout = DefaultIdleTimeout
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = DefaultShutdownTimeout
	}
	if cfg.Server.MaxBodyBytes == 0 {
		cfg.Server.MaxBodyBytes = DefaultMaxBodyBytes
	}
	// CheckTimeout zero means disabled, so it only gets its default
	// through Default().
	if cfg.Server.CheckTimeout < 0 {
		cfg.Server.CheckTimeout = 0
	}

	// CORS defaults
	if cfg.CORS.MaxAge == 0 {
		cfg.CORS.MaxAge = DefaultCORSMaxAge
	}

	// Rate limit defaults
	if cfg.RateLimit.RequestsPerSecond == 0 {
		cfg.RateLimit.RequestsPerSecond = DefaultRateLimitPerSecond
	}
	if cfg.RateLimit.Burst == 0 {
		cfg.RateLimit.Burst = DefaultRateLimitBurst
	}
	if cfg.RateLimit.MaxClients == 0 {
		cfg.RateLimit.MaxClients = DefaultRateLimitMaxClients
	}
	if cfg.RateLimit.IdleTTL == 0 {
		cfg.RateLimit.IdleTTL = DefaultRateLimitIdleTTL
	}
	if cfg.RateLimit.SweepSchedule == "" {
		cfg.RateLimit.SweepSchedule = DefaultRateLimitSweepSchedule
	}

	// Engine defaults
	if cfg.Engine.Dialect == "" {
		cfg.Engine.Dialect = DefaultEngineDialect
	}

	// Logging defaults
	if cfg.Telemetry.Logging.Level == "" {
		cfg.Telemetry.Logging.Level = DefaultLoggingLevel
	}
	if cfg.Telemetry.Logging.Format == "" {
		cfg.Telemetry.Logging.Format = DefaultLoggingFormat
	}

	// Metrics defaults
	if cfg.Telemetry.Metrics.Path == "" {
		cfg.Telemetry.Metrics.Path = DefaultMetricsPath
	}
	if cfg.Telemetry.Metrics.Namespace == "" {
		cfg.Telemetry.Metrics.Namespace = DefaultMetricsNamespace
	}
	if cfg.Telemetry.Metrics.Subsystem == "" {
		cfg.Telemetry.Metrics.Subsystem = DefaultMetricsSubsystem
	}
	if len(cfg.Telemetry.Metrics.CheckDurationBuckets) == 0 {
		cfg.Telemetry.Metrics.CheckDurationBuckets = append([]float64(nil), DefaultCheckDurationBuckets...)
	}

	// Tracing defaults
	if cfg.Telemetry.Tracing.Sampler == "" {
		cfg.Telemetry.Tracing.Sampler = DefaultTracingSampler
	}
	if cfg.Telemetry.Tracing.SampleRatio == 0 && cfg.Telemetry.Tracing.Sampler == "ratio" {
		cfg.Telemetry.Tracing.SampleRatio = DefaultTracingSampleRatio
	}
	if cfg.Telemetry.Tracing.Exporter == "" {
		cfg.Telemetry.Tracing.Exporter = DefaultTracingExporter
	}
	if cfg.Telemetry.Tracing.ServiceName == "" {
		cfg.Telemetry.Tracing.ServiceName = DefaultTracingServiceName
	}
	if cfg.Telemetry.Tracing.OTLP.Timeout == 0 {
		cfg.Telemetry.Tracing.OTLP.Timeout = DefaultOTLPTimeout
	}
}
