package ratelimit

import (
	"fmt"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

// ClientLimiter keeps one token bucket per client IP.
//
// Buckets live in a bounded LRU cache: when MaxClients is reached the
// least recently seen client is forgotten and will start again with a
// full bucket. Sweep removes buckets idle for longer than IdleTTL.
//
// ClientLimiter is safe for concurrent use. The cache has its own lock and
// each bucket is guarded by its own mutex, so requests from different
// clients never contend on a bucket.
type ClientLimiter struct {
	buckets *lru.Cache[string, *TokenBucket]
	config  Config
	now     Clock
}

// Option configures a ClientLimiter.
type Option func(*ClientLimiter)

// WithClock overrides the time source.
func WithClock(now Clock) Option {
	return func(l *ClientLimiter) {
		l.now = now
	}
}

// NewClientLimiter creates a limiter from config.
func NewClientLimiter(config Config, opts ...Option) (*ClientLimiter, error) {
	if config.RequestsPerSecond <= 0 {
		return nil, fmt.Errorf("requests per second must be positive, got %v", config.RequestsPerSecond)
	}
	if config.Burst < 1 {
		return nil, fmt.Errorf("burst must be at least 1, got %d", config.Burst)
	}

	buckets, err := lru.New[string, *TokenBucket](config.MaxClients)
	if err != nil {
		return nil, fmt.Errorf("failed to create client cache: %w", err)
	}

	l := &ClientLimiter{
		buckets: buckets,
		config:  config,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l, nil
}

// Allow takes one token from the bucket of client.
func (l *ClientLimiter) Allow(client string) CheckResult {
	allowed, wait, remaining := l.bucket(client).take(1)

	result := CheckResult{
		Allowed:   allowed,
		Limit:     l.config.Burst,
		Remaining: remaining,
	}
	if !allowed {
		result.RetryAfter = wait
	}
	return result
}

// bucket returns the bucket of client, creating it on first sight.
func (l *ClientLimiter) bucket(client string) *TokenBucket {
	if b, ok := l.buckets.Get(client); ok {
		return b
	}

	b := newTokenBucket(l.config.Burst, l.config.RequestsPerSecond, l.now)
	if prev, ok, _ := l.buckets.PeekOrAdd(client, b); ok {
		return prev
	}
	return b
}

// Sweep removes buckets unused for longer than IdleTTL and returns how many
// were removed. A zero IdleTTL disables sweeping.
func (l *ClientLimiter) Sweep() int {
	if l.config.IdleTTL <= 0 {
		return 0
	}

	cutoff := l.now().Add(-l.config.IdleTTL)
	removed := 0
	for _, client := range l.buckets.Keys() {
		b, ok := l.buckets.Peek(client)
		if !ok || b.LastUsed().After(cutoff) {
			continue
		}
		if l.buckets.Remove(client) {
			removed++
		}
	}
	return removed
}

// Len returns the number of tracked clients.
func (l *ClientLimiter) Len() int {
	return l.buckets.Len()
}
