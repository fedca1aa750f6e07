// Package ratelimit implements per-client token bucket rate limiting.
//
// # Token Bucket Algorithm
//
// The token bucket algorithm allows bursts up to the bucket capacity while
// maintaining an average rate over time:
//
//	bucket := ratelimit.NewTokenBucket(20, 10) // 20 capacity, 10 refill/sec
//	if bucket.Take(1) {
//	    // Request allowed
//	} else {
//	    // Rate limit exceeded
//	}
//
// # Per-Client Limiting
//
// ClientLimiter keeps one bucket per client IP in a bounded LRU cache and
// reports how long a rejected client should wait:
//
//	limiter, err := ratelimit.NewClientLimiter(ratelimit.Config{
//	    RequestsPerSecond: 10,
//	    Burst:             20,
//	    MaxClients:        10000,
//	    IdleTTL:           10 * time.Minute,
//	    SweepSchedule:     "@every 1m",
//	})
//	result := limiter.Allow("203.0.113.7")
//	if !result.Allowed {
//	    // reply 429 with Retry-After: result.RetryAfter
//	}
//
// A Sweeper removes idle buckets on the cron schedule so that memory
// tracks active clients rather than every address ever seen.
//
// # Thread Safety
//
// All types are thread-safe and use per-bucket locking to minimize
// contention under high load.
package ratelimit
