// Package logging builds the structured slog logger used across proofread.
//
// # Usage
//
//	logger, err := logging.New(logging.Config{
//		Level:         "info",
//		Format:        "json",
//		RedactSecrets: true,
//		Secrets:       []string{cfg.Auth.Secret},
//	})
//	slog.SetDefault(logger)
//
//	ctx = logging.WithRequestID(ctx, "req-123")
//	slog.InfoContext(ctx, "check completed", "matches", 3)
//
// Records logged with a context include request_id, and trace_id/span_id
// when a span is active.
//
// # Redaction
//
// With RedactSecrets enabled, "Bearer <token>" substrings, every configured
// secret literal and the values of keys such as "authorization" or
// "secret" are replaced with "***". Submitted text is never logged.
package logging
