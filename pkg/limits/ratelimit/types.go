package ratelimit

import "time"

// Clock returns the current time. Tests substitute a fake.
type Clock func() time.Time

// Config contains configuration for per-client rate limiting.
type Config struct {
	// RequestsPerSecond is the sustained refill rate of each bucket.
	RequestsPerSecond float64

	// Burst is the bucket capacity.
	Burst int64

	// MaxClients caps the number of tracked clients. The least recently
	// seen client is evicted first.
	MaxClients int

	// IdleTTL is how long a bucket may go unused before Sweep removes it.
	IdleTTL time.Duration

	// SweepSchedule is the cron expression the Sweeper runs on.
	SweepSchedule string
}

// CheckResult contains the result of a rate limit check.
// This is returned by ClientLimiter.Allow() to indicate if a request is allowed.
type CheckResult struct {
	// Allowed indicates if the request is permitted.
	Allowed bool

	// Limit is the bucket capacity.
	Limit int64

	// Remaining is how many whole tokens remain.
	Remaining int64

	// RetryAfter suggests how long to wait before retrying.
	RetryAfter time.Duration
}
