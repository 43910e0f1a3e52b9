// Package scheduler runs the background loops of the inventory service.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	appinv "github.com/restopos/backend/internal/application/inventory"
	"github.com/restopos/backend/internal/infrastructure/telemetry"
	"go.uber.org/zap"
)

// PendingDecisionExpirer wastes cancelled items whose decision window has passed
type PendingDecisionExpirer interface {
	ExpirePendingDecisions(ctx context.Context, now time.Time) (*appinv.ExpirationStats, error)
}

// SweepRecorder receives the outcome of each sweep
type SweepRecorder interface {
	RecordSweep(ctx context.Context, d time.Duration, wasted, failed int)
}

// DecisionSweeperConfig holds configuration for the pending decision sweep
type DecisionSweeperConfig struct {
	Enabled bool

	// Interval between sweeps
	Interval time.Duration

	// RunTimeout bounds a single sweep
	RunTimeout time.Duration
}

// DefaultDecisionSweeperConfig returns default configuration
func DefaultDecisionSweeperConfig() DecisionSweeperConfig {
	return DecisionSweeperConfig{
		Enabled:    true,
		Interval:   time.Minute,
		RunTimeout: 30 * time.Second,
	}
}

// Validate checks the configuration
func (c DecisionSweeperConfig) Validate() error {
	if c.Interval < time.Second {
		return fmt.Errorf("%w: interval must be at least 1s, got %s", ErrInvalidConfig, c.Interval)
	}
	if c.RunTimeout <= 0 {
		return fmt.Errorf("%w: run timeout must be positive", ErrInvalidConfig)
	}
	return nil
}

// DecisionSweeper periodically auto-wastes cancelled, prepared items whose
// waste-or-return decision was never made. It is the only background loop
// of the service; sweeps never overlap.
type DecisionSweeper struct {
	expirer  PendingDecisionExpirer
	recorder SweepRecorder
	logger   *zap.Logger
	config   DecisionSweeperConfig
	now      func() time.Time

	running atomic.Bool
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	mu      sync.Mutex
	started bool
}

// SweeperOption configures a DecisionSweeper
type SweeperOption func(*DecisionSweeper)

// WithSweepRecorder reports every sweep to r
func WithSweepRecorder(r SweepRecorder) SweeperOption {
	return func(s *DecisionSweeper) {
		s.recorder = r
	}
}

// WithClock replaces time.Now
func WithClock(now func() time.Time) SweeperOption {
	return func(s *DecisionSweeper) {
		s.now = now
	}
}

// NewDecisionSweeper creates a sweeper. It does nothing until Start.
func NewDecisionSweeper(expirer PendingDecisionExpirer, config DecisionSweeperConfig, logger *zap.Logger, opts ...SweeperOption) (*DecisionSweeper, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	s := &DecisionSweeper{
		expirer: expirer,
		logger:  logger,
		config:  config,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Start launches the sweep loop
func (s *DecisionSweeper) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}
	if !s.config.Enabled {
		s.logger.Info("Pending decision sweeper is disabled")
		return nil
	}

	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.started = true

	s.wg.Add(1)
	go s.loop(ctx)

	s.logger.Info("Pending decision sweeper started", zap.Duration("interval", s.config.Interval))
	return nil
}

// Stop cancels the loop and waits for an in-flight sweep, bounded by ctx
func (s *DecisionSweeper) Stop(ctx context.Context) error {
	s.mu.Lock()
	if !s.started {
		s.mu.Unlock()
		return nil
	}
	s.started = false
	s.cancel()
	s.mu.Unlock()

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		s.logger.Info("Pending decision sweeper stopped gracefully")
		return nil
	case <-ctx.Done():
		s.logger.Warn("Pending decision sweeper stop timed out")
		return ctx.Err()
	}
}

func (s *DecisionSweeper) loop(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.config.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := s.RunOnce(ctx); err != nil && ctx.Err() == nil {
				s.logger.Error("Pending decision sweep failed", zap.Error(err))
			}
		}
	}
}

// RunOnce performs one sweep. It fails with ErrSweepInProgress instead of
// running concurrently with another sweep.
func (s *DecisionSweeper) RunOnce(ctx context.Context) (*appinv.ExpirationStats, error) {
	if !s.running.CompareAndSwap(false, true) {
		return nil, ErrSweepInProgress
	}
	defer s.running.Store(false)

	ctx, cancel := context.WithTimeout(ctx, s.config.RunTimeout)
	defer cancel()

	ctx, span := telemetry.StartSpan(ctx, "decision_sweep.run")
	defer span.End()

	started := time.Now()
	stats, err := s.expirer.ExpirePendingDecisions(ctx, s.now())
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	telemetry.SetAttributes(span,
		"expired", stats.TotalExpired,
		"wasted", stats.Wasted,
		"failed", stats.Failed,
	)
	if s.recorder != nil {
		s.recorder.RecordSweep(ctx, time.Since(started), stats.Wasted, stats.Failed)
	}
	return stats, nil
}
