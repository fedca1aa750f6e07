// Package config provides configuration management for proofread.
//
// Configuration is loaded from an optional YAML file, overlaid with
// environment variables, defaulted and validated. The result is read-only
// for the lifetime of the process.
//
// # Configuration Loading
//
//  1. From a YAML file only:
//     cfg, err := config.LoadConfig("config.yaml")
//
//  2. From a YAML file with environment variable overrides:
//     cfg, err := config.LoadConfigWithEnvOverrides("config.yaml")
//
// Passing an empty path yields defaults (plus environment, for the second
// form).
//
// # Environment Variable Overrides
//
// The externally documented service surface uses short names:
//
//   - HOST, PORT: listen address
//   - CORS_ORIGINS: comma-separated origin allow-list ("*" or empty is permissive)
//   - API_KEY: shared bearer secret (absent disables authentication)
//   - RATE_LIMIT_PER_SECOND, RATE_LIMIT_BURST: token bucket shape
//
// Every field is also reachable as PROOFREAD_SECTION_FIELD, for example
// PROOFREAD_TELEMETRY_LOGGING_LEVEL or PROOFREAD_SERVER_CHECK_TIMEOUT.
// Malformed numeric, boolean or duration values are reported as
// validation errors rather than ignored.
//
// # Configuration Precedence
//
//  1. Default values (defined in defaults.go)
//  2. Values from YAML file
//  3. Environment variable overrides
//  4. Validation (fails fast if invalid)
//
// # Example Configuration
//
//	server:
//	  host: "0.0.0.0"
//	  port: 8080
//	  shutdown_timeout: "30s"
//	  check_timeout: "10s"
//
//	cors:
//	  allowed_origins: ["https://app.example.com"]
//
//	rate_limit:
//	  requests_per_second: 10
//	  burst: 20
//
//	telemetry:
//	  logging:
//	    level: "info"
//	    format: "json"
//	  tracing:
//	    enabled: true
//	    exporter: "otlp"
//	    endpoint: "localhost:4317"
package config
