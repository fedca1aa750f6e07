package ratelimit

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

// Sweeper evicts idle client buckets on a cron schedule.
type Sweeper struct {
	limiter  *ClientLimiter
	schedule string
	cron     *cron.Cron
	mu       sync.Mutex
	logger   *slog.Logger
	running  bool

	// onSweep is called after each sweep with the number of tracked clients.
	onSweep func(tracked int)
}

// NewSweeper creates a sweeper for limiter using the limiter's schedule.
// onSweep may be nil.
func NewSweeper(limiter *ClientLimiter, onSweep func(tracked int)) *Sweeper {
	return &Sweeper{
		limiter:  limiter,
		schedule: limiter.config.SweepSchedule,
		cron:     cron.New(),
		logger:   slog.Default().With("component", "ratelimit.sweeper"),
		onSweep:  onSweep,
	}
}

// Start schedules the sweep. Common expressions are "@every 1m" or
// "*/5 * * * *". An empty schedule disables the sweeper.
//
// The sweeper stops when ctx is cancelled.
func (s *Sweeper) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.schedule == "" {
		s.logger.Info("sweep schedule not configured, idle buckets are only evicted by capacity")
		return nil
	}

	if _, err := s.cron.AddFunc(s.schedule, s.sweep); err != nil {
		return fmt.Errorf("invalid sweep schedule %q: %w", s.schedule, err)
	}

	s.cron.Start()
	s.running = true

	s.logger.Info("rate limit sweeper started",
		"schedule", s.schedule,
		"idle_ttl", s.limiter.config.IdleTTL,
		"max_clients", s.limiter.config.MaxClients,
	)

	go func() {
		<-ctx.Done()
		s.Stop()
	}()

	return nil
}

func (s *Sweeper) sweep() {
	removed := s.limiter.Sweep()
	tracked := s.limiter.Len()

	if removed > 0 {
		s.logger.Debug("swept idle rate limit buckets",
			"removed", removed,
			"tracked", tracked,
		)
	}
	if s.onSweep != nil {
		s.onSweep(tracked)
	}
}

// Stop stops the sweeper and waits for a running sweep to complete.
func (s *Sweeper) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		<-s.cron.Stop().Done()
		s.running = false
		s.logger.Info("rate limit sweeper stopped")
	}
}

// IsRunning returns true if the sweeper is running.
func (s *Sweeper) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// NextRun returns the next scheduled sweep, or nil when not scheduled.
func (s *Sweeper) NextRun() *time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := s.cron.Entries()
	if len(entries) == 0 {
		return nil
	}

	next := entries[0].Next
	return &next
}
