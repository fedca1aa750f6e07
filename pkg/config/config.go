package config

import "time"

// Config is the root configuration structure for proofread.
// It contains all configuration sections for the HTTP server, the
// cross-cutting middleware stages, the analysis engine and telemetry.
type Config struct {
	// Server contains HTTP server configuration including the listen
	// address, timeouts, and request body limits.
	Server ServerConfig `yaml:"server"`

	// CORS contains Cross-Origin Resource Sharing configuration.
	CORS CORSConfig `yaml:"cors"`

	// Auth contains shared-secret authentication configuration.
	Auth AuthConfig `yaml:"auth"`

	// RateLimit contains per-client rate limiting configuration.
	RateLimit RateLimitConfig `yaml:"rate_limit"`

	// Engine contains configuration for the analysis engine.
	Engine EngineConfig `yaml:"engine"`

	// Telemetry contains configuration for observability including logging,
	// metrics, and distributed tracing.
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// ServerConfig contains configuration for the HTTP server.
type ServerConfig struct {
	// Host is the interface to bind.
	// Default: "0.0.0.0"
	Host string `yaml:"host"`

	// Port is the TCP port to bind. Zero is only valid in tests where the
	// kernel picks a free port.
	// Default: 8080
	Port int `yaml:"port"`

	// ReadTimeout is the maximum duration for reading the entire request,
	// including the body.
	// Default: 30s
	ReadTimeout time.Duration `yaml:"read_timeout"`

	// WriteTimeout is the maximum duration before timing out writes of the
	// response.
	// Default: 30s
	WriteTimeout time.Duration `yaml:"write_timeout"`

	// IdleTimeout is the maximum amount of time to wait for the next request
	// when keep-alives are enabled.
	// Default: 120s
	IdleTimeout time.Duration `yaml:"idle_timeout"`

	// ShutdownTimeout bounds the graceful drain of in-flight requests after
	// a termination signal.
	// Default: 30s
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`

	// CheckTimeout bounds a single engine invocation. The engine call is not
	// preempted; its result is discarded once the deadline passes.
	// Zero disables the bound.
	// Default: 10s
	CheckTimeout time.Duration `yaml:"check_timeout"`

	// MaxBodyBytes caps the raw request body read by the check handler.
	// The text field itself is bounded separately at 100 KiB.
	// Default: 1048576 (1MB)
	MaxBodyBytes int64 `yaml:"max_body_bytes"`

	// TrustProxyHeaders derives the client IP from X-Real-IP or
	// X-Forwarded-For. Enable only behind a trusted reverse proxy.
	// Default: false
	TrustProxyHeaders bool `yaml:"trust_proxy_headers"`
}

// CORSConfig contains CORS (Cross-Origin Resource Sharing) configuration.
type CORSConfig struct {
	// AllowedOrigins is the list of allowed origins. An empty list or ["*"]
	// is permissive and reflects any origin. Production deployments should
	// set an explicit list.
	// Default: [] (permissive)
	AllowedOrigins []string `yaml:"allowed_origins"`

	// MaxAge is the maximum age (in seconds) for the preflight cache.
	// Default: 3600 (1 hour)
	MaxAge int `yaml:"max_age"`

	// AllowCredentials controls whether credentials are allowed in CORS
	// requests. Ignored in permissive mode.
	// Default: false
	AllowCredentials bool `yaml:"allow_credentials"`
}

// AuthConfig contains shared-secret authentication configuration.
type AuthConfig struct {
	// Secret is the shared bearer credential. Empty disables authentication.
	// This should be loaded from the API_KEY environment variable rather
	// than committed to a config file.
	Secret string `yaml:"secret"`

	// ExemptPaths are extra routes that are never authenticated. The
	// health, readiness and metrics routes are always exempt.
	// Default: []
	ExemptPaths []string `yaml:"exempt_paths"`
}

// RateLimitConfig contains per-client-IP token bucket configuration.
type RateLimitConfig struct {
	// Enabled controls whether the rate limit stage rejects requests.
	// Default: true
	Enabled bool `yaml:"enabled"`

	// RequestsPerSecond is the sustained refill rate of each bucket.
	// Default: 10
	RequestsPerSecond float64 `yaml:"requests_per_second"`

	// Burst is the bucket capacity.
	// Default: 20
	Burst int64 `yaml:"burst"`

	// MaxClients caps the number of tracked client IPs. The least recently
	// seen client is evicted when the cap is reached.
	// Default: 10000
	MaxClients int `yaml:"max_clients"`

	// IdleTTL is how long a client may stay silent before its bucket is
	// swept.
	// Default: 10m
	IdleTTL time.Duration `yaml:"idle_ttl"`

	// SweepSchedule is the cron expression for the idle sweep.
	// Default: "@every 1m"
	SweepSchedule string `yaml:"sweep_schedule"`
}

// EngineConfig contains analysis engine configuration.
type EngineConfig struct {
	// Dialect is the BCP 47 tag of the language variety checked against.
	// Only American English is curated.
	// Default: "en-US"
	Dialect string `yaml:"dialect"`

	// ExtraWordsPath is an optional newline-separated word list merged into
	// the curated dictionary at startup.
	ExtraWordsPath string `yaml:"extra_words_path"`
}

// TelemetryConfig contains observability configuration.
type TelemetryConfig struct {
	// Logging contains logging configuration.
	Logging LoggingConfig `yaml:"logging"`

	// Metrics contains metrics collection configuration.
	Metrics MetricsConfig `yaml:"metrics"`

	// Tracing contains distributed tracing configuration.
	Tracing TracingConfig `yaml:"tracing"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	// Level is the minimum log level to emit.
	// Options: "debug", "info", "warn", "error"
	// Default: "info"
	Level string `yaml:"level"`

	// Format controls the log output format.
	// Options: "json", "text"
	// Default: "json"
	Format string `yaml:"format"`

	// AddSource includes file and line number in log entries.
	// Default: false
	AddSource bool `yaml:"add_source"`

	// RedactSecrets masks bearer tokens and the configured shared secret
	// in log attributes.
	// Default: true
	RedactSecrets bool `yaml:"redact_secrets"`
}

// MetricsConfig contains Prometheus metrics configuration.
type MetricsConfig struct {
	// Enabled controls whether metrics are collected and exposed.
	// Default: true
	Enabled bool `yaml:"enabled"`

	// Path is the HTTP path for the Prometheus metrics endpoint.
	// Default: "/metrics"
	Path string `yaml:"path"`

	// Namespace is the metric name prefix.
	// Default: "proofread"
	Namespace string `yaml:"namespace"`

	// Subsystem is the metric subsystem name.
	// Default: "api"
	Subsystem string `yaml:"subsystem"`

	// CheckDurationBuckets defines histogram buckets for check duration (seconds).
	// Default: [0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5]
	CheckDurationBuckets []float64 `yaml:"check_duration_buckets"`
}

// TracingConfig contains distributed tracing configuration.
type TracingConfig struct {
	// Enabled controls whether distributed tracing is active.
	// Default: false
	Enabled bool `yaml:"enabled"`

	// Sampler determines the sampling strategy.
	// Options: "always", "never", "ratio"
	// Default: "ratio"
	Sampler string `yaml:"sampler"`

	// SampleRatio is the fraction of traces to sample (0.0 to 1.0).
	// Only used when Sampler is "ratio".
	// Default: 0.1 (10%)
	SampleRatio float64 `yaml:"sample_ratio"`

	// Exporter determines the trace exporter to use.
	// Options: "otlp", "stdout"
	// Default: "otlp"
	Exporter string `yaml:"exporter"`

	// Endpoint is the OTLP collector endpoint.
	// Example: "localhost:4317"
	Endpoint string `yaml:"endpoint"`

	// ServiceName is the service name in traces.
	// Default: "proofread"
	ServiceName string `yaml:"service_name"`

	// OTLP contains OTLP exporter specific configuration.
	OTLP OTLPConfig `yaml:"otlp"`
}

// OTLPConfig contains OTLP exporter configuration.
type OTLPConfig struct {
	// Insecure disables TLS towards the collector.
	// Default: false
	Insecure bool `yaml:"insecure"`

	// Timeout is the export timeout.
	// Default: 10s
	Timeout time.Duration `yaml:"timeout"`
}
