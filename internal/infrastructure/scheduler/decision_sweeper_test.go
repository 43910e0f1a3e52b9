package scheduler

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	appinv "github.com/restopos/backend/internal/application/inventory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type fakeExpirer struct {
	calls   atomic.Int32
	lastNow atomic.Value
	stats   *appinv.ExpirationStats
	err     error
	block   chan struct{}
}

func (f *fakeExpirer) ExpirePendingDecisions(ctx context.Context, now time.Time) (*appinv.ExpirationStats, error) {
	f.calls.Add(1)
	f.lastNow.Store(now)
	if f.block != nil {
		select {
		case <-f.block:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if f.err != nil {
		return nil, f.err
	}
	return f.stats, nil
}

type fakeRecorder struct {
	mu     sync.Mutex
	wasted int
	failed int
	runs   int
}

func (r *fakeRecorder) RecordSweep(_ context.Context, _ time.Duration, wasted, failed int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.runs++
	r.wasted += wasted
	r.failed += failed
}

func testConfig() DecisionSweeperConfig {
	return DecisionSweeperConfig{Enabled: true, Interval: time.Second, RunTimeout: time.Second}
}

func TestDecisionSweeperConfig_Validate(t *testing.T) {
	assert.NoError(t, DefaultDecisionSweeperConfig().Validate())

	cfg := DefaultDecisionSweeperConfig()
	cfg.Interval = 10 * time.Millisecond
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)

	cfg = DefaultDecisionSweeperConfig()
	cfg.RunTimeout = 0
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)

	_, err := NewDecisionSweeper(&fakeExpirer{}, cfg, zaptest.NewLogger(t))
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestDecisionSweeper_RunOnce(t *testing.T) {
	fixed := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	expirer := &fakeExpirer{stats: &appinv.ExpirationStats{TotalExpired: 3, Wasted: 2, Failed: 1}}
	recorder := &fakeRecorder{}

	s, err := NewDecisionSweeper(expirer, testConfig(), zaptest.NewLogger(t),
		WithSweepRecorder(recorder),
		WithClock(func() time.Time { return fixed }),
	)
	require.NoError(t, err)

	stats, err := s.RunOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Wasted)
	assert.Equal(t, fixed, expirer.lastNow.Load())
	assert.Equal(t, 1, recorder.runs)
	assert.Equal(t, 2, recorder.wasted)
	assert.Equal(t, 1, recorder.failed)
}

func TestDecisionSweeper_RunOnceError(t *testing.T) {
	boom := errors.New("db down")
	recorder := &fakeRecorder{}
	s, err := NewDecisionSweeper(&fakeExpirer{err: boom}, testConfig(), zaptest.NewLogger(t), WithSweepRecorder(recorder))
	require.NoError(t, err)

	_, err = s.RunOnce(context.Background())
	assert.ErrorIs(t, err, boom)
	assert.Zero(t, recorder.runs)
}

func TestDecisionSweeper_NoOverlap(t *testing.T) {
	expirer := &fakeExpirer{stats: &appinv.ExpirationStats{}, block: make(chan struct{})}
	s, err := NewDecisionSweeper(expirer, testConfig(), zaptest.NewLogger(t))
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() {
		_, err := s.RunOnce(context.Background())
		done <- err
	}()
	require.Eventually(t, func() bool { return expirer.calls.Load() == 1 }, time.Second, 5*time.Millisecond)

	_, err = s.RunOnce(context.Background())
	assert.ErrorIs(t, err, ErrSweepInProgress)

	close(expirer.block)
	assert.NoError(t, <-done)
}

func TestDecisionSweeper_StartStop(t *testing.T) {
	expirer := &fakeExpirer{stats: &appinv.ExpirationStats{}}
	s, err := NewDecisionSweeper(expirer, testConfig(), zaptest.NewLogger(t))
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, s.Start(ctx))
	require.NoError(t, s.Start(ctx))

	assert.Eventually(t, func() bool { return expirer.calls.Load() >= 1 }, 3*time.Second, 20*time.Millisecond)

	stopCtx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()
	require.NoError(t, s.Stop(stopCtx))
	require.NoError(t, s.Stop(stopCtx))
}

func TestDecisionSweeper_Disabled(t *testing.T) {
	cfg := testConfig()
	cfg.Enabled = false
	expirer := &fakeExpirer{stats: &appinv.ExpirationStats{}}
	s, err := NewDecisionSweeper(expirer, cfg, zaptest.NewLogger(t))
	require.NoError(t, err)

	require.NoError(t, s.Start(context.Background()))
	require.NoError(t, s.Stop(context.Background()))
	assert.Zero(t, expirer.calls.Load())
}
