package check

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// Engine produces raw findings for a text. Implementations must be safe
// for concurrent use.
type Engine interface {
	Analyze(text string) ([]Finding, error)
}

// Service runs the full pipeline for one request.
type Service struct {
	engine  Engine
	timeout time.Duration
	logger  *slog.Logger
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithTimeout bounds each engine call. The call is not preempted; once the
// deadline passes its result is discarded and ErrTimeout is returned.
// Zero disables the bound.
func WithTimeout(d time.Duration) ServiceOption {
	return func(s *Service) {
		s.timeout = d
	}
}

// WithLogger sets the logger used for pipeline events.
func WithLogger(logger *slog.Logger) ServiceOption {
	return func(s *Service) {
		s.logger = logger
	}
}

// NewService returns a Service backed by engine.
func NewService(engine Engine, opts ...ServiceOption) *Service {
	s := &Service{
		engine: engine,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

type analysis struct {
	findings []Finding
	err      error
}

// Check validates req, runs the engine and assembles the response.
//
// Cancellation of ctx stops the wait but never the engine call, which
// completes in the background and is dropped.
func (s *Service) Check(ctx context.Context, req *Request) (*Response, error) {
	if err := Validate(req); err != nil {
		return nil, err
	}

	start := time.Now()
	done := make(chan analysis, 1)
	go func() {
		findings, err := s.engine.Analyze(req.Text)
		done <- analysis{findings: findings, err: err}
	}()

	var deadline <-chan time.Time
	if s.timeout > 0 {
		timer := time.NewTimer(s.timeout)
		defer timer.Stop()
		deadline = timer.C
	}

	select {
	case res := <-done:
		if res.err != nil {
			return nil, res.err
		}
		return Assemble(req.Text, res.findings, req.Options, time.Since(start)), nil

	case <-deadline:
		s.logger.WarnContext(ctx, "analysis exceeded check timeout",
			"timeout", s.timeout,
			"text_bytes", len(req.Text),
		)
		return nil, fmt.Errorf("%w after %s", ErrTimeout, s.timeout)

	case <-ctx.Done():
		return nil, fmt.Errorf("check abandoned: %w", ctx.Err())
	}
}
