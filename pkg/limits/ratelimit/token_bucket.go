package ratelimit

import (
	"math"
	"sync"
	"time"
)

// TokenBucket implements the token bucket rate limiting algorithm.
//
// The token bucket allows bursts up to the capacity while maintaining
// an average rate over time. Tokens are added continuously at the refill
// rate; fractional tokens accumulate so that rates below one per second
// work. Each request consumes one token.
//
// # Thread Safety
//
// TokenBucket is thread-safe using sync.Mutex for all operations.
type TokenBucket struct {
	capacity   float64   // Maximum tokens in bucket
	tokens     float64   // Current available tokens
	refillRate float64   // Tokens added per second
	lastRefill time.Time // Last time tokens were refilled
	lastUsed   time.Time // Last time a take was attempted
	now        Clock
	mu         sync.Mutex
}

// NewTokenBucket creates a new token bucket rate limiter.
//
// Parameters:
//   - capacity: Maximum number of tokens in the bucket (burst size)
//   - refillRate: Number of tokens added per second (average rate)
//
// Example:
//
//	// 10 requests/sec average, burst up to 20
//	bucket := NewTokenBucket(20, 10)
func NewTokenBucket(capacity int64, refillRate float64) *TokenBucket {
	return newTokenBucket(capacity, refillRate, time.Now)
}

func newTokenBucket(capacity int64, refillRate float64, now Clock) *TokenBucket {
	t := now()
	return &TokenBucket{
		capacity:   float64(capacity),
		tokens:     float64(capacity), // Start with full bucket
		refillRate: refillRate,
		lastRefill: t,
		lastUsed:   t,
		now:        now,
	}
}

// Take attempts to consume n tokens from the bucket.
// Returns true if tokens were available and consumed, false otherwise.
func (tb *TokenBucket) Take(n int64) bool {
	allowed, _, _ := tb.take(float64(n))
	return allowed
}

// take consumes n tokens when available and otherwise reports how long
// until they will be. It also returns the whole tokens left.
func (tb *TokenBucket) take(n float64) (allowed bool, wait time.Duration, remaining int64) {
	tb.mu.Lock()
	defer tb.mu.Unlock()

	now := tb.refillLocked()
	tb.lastUsed = now

	if tb.tokens >= n {
		tb.tokens -= n
		return true, 0, int64(tb.tokens)
	}

	return false, tb.waitLocked(n), int64(tb.tokens)
}

// Remaining returns the number of whole tokens currently available.
func (tb *TokenBucket) Remaining() int64 {
	tb.mu.Lock()
	defer tb.mu.Unlock()

	tb.refillLocked()
	return int64(tb.tokens)
}

// Capacity returns the maximum bucket capacity.
func (tb *TokenBucket) Capacity() int64 {
	tb.mu.Lock()
	defer tb.mu.Unlock()
	return int64(tb.capacity)
}

// Reset resets the bucket to full capacity.
func (tb *TokenBucket) Reset() {
	tb.mu.Lock()
	defer tb.mu.Unlock()

	tb.tokens = tb.capacity
	tb.lastRefill = tb.now()
}

// TimeUntilAvailable returns how long until n tokens will be available.
// Returns 0 if tokens are immediately available.
func (tb *TokenBucket) TimeUntilAvailable(n int64) time.Duration {
	tb.mu.Lock()
	defer tb.mu.Unlock()

	tb.refillLocked()
	if tb.tokens >= float64(n) {
		return 0
	}
	return tb.waitLocked(float64(n))
}

// LastUsed returns when a take was last attempted.
func (tb *TokenBucket) LastUsed() time.Time {
	tb.mu.Lock()
	defer tb.mu.Unlock()
	return tb.lastUsed
}

// waitLocked returns the refill time for the missing tokens.
// Caller must hold lock.
func (tb *TokenBucket) waitLocked(n float64) time.Duration {
	if tb.refillRate <= 0 {
		return time.Duration(math.MaxInt64)
	}
	seconds := (n - tb.tokens) / tb.refillRate
	return time.Duration(seconds * float64(time.Second))
}

// refillLocked adds tokens based on elapsed time since last refill and
// returns the current time. Caller must hold lock.
func (tb *TokenBucket) refillLocked() time.Time {
	now := tb.now()
	elapsed := now.Sub(tb.lastRefill)
	if elapsed <= 0 {
		return now
	}

	tb.tokens = math.Min(tb.capacity, tb.tokens+elapsed.Seconds()*tb.refillRate)
	tb.lastRefill = now
	return now
}
