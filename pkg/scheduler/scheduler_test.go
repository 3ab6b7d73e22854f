package scheduler

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/credlens/pundit/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRunner struct {
	mu     sync.Mutex
	calls  int
	err    error
	passed chan struct{}
}

func newStubRunner(err error) *stubRunner {
	return &stubRunner{err: err, passed: make(chan struct{}, 16)}
}

func (r *stubRunner) RunPass(ctx context.Context) error {
	r.mu.Lock()
	r.calls++
	r.mu.Unlock()
	select {
	case r.passed <- struct{}{}:
	default:
	}
	return r.err
}

func (r *stubRunner) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calls
}

type stubPoller struct {
	mu    sync.Mutex
	calls int
	err   error
}

func (p *stubPoller) PollDue(ctx context.Context) error {
	p.mu.Lock()
	p.calls++
	p.mu.Unlock()
	return p.err
}

func (p *stubPoller) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls
}

func waitForPass(t *testing.T, r *stubRunner) {
	t.Helper()
	select {
	case <-r.passed:
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for a pass")
	}
}

func TestScheduler_RunOnce(t *testing.T) {
	runner := newStubRunner(nil)
	poller := &stubPoller{}
	s := New(runner, poller, nil)

	require.NoError(t, s.RunOnce(context.Background()))
	assert.Equal(t, 1, runner.count())
	assert.Equal(t, 1, poller.count())
}

func TestScheduler_RunOnceWithoutPoller(t *testing.T) {
	runner := newStubRunner(nil)
	s := New(runner, nil, nil)

	require.NoError(t, s.RunOnce(context.Background()))
	assert.Equal(t, 1, runner.count())
}

func TestScheduler_PollFailureStillRunsPass(t *testing.T) {
	runner := newStubRunner(nil)
	poller := &stubPoller{err: errors.New("upstream down")}
	s := New(runner, poller, nil)

	require.NoError(t, s.RunOnce(context.Background()))
	assert.Equal(t, 1, runner.count())
}

func TestScheduler_RunOnceReturnsPassError(t *testing.T) {
	passErr := errors.New("pass aborted")
	runner := newStubRunner(passErr)
	s := New(runner, nil, nil)

	assert.ErrorIs(t, s.RunOnce(context.Background()), passErr)
}

func TestScheduler_TriggerBypassesInitialDelay(t *testing.T) {
	runner := newStubRunner(nil)
	cfg := config.DefaultSchedulerConfig()
	cfg.Interval = time.Hour
	cfg.InitialDelay = time.Hour
	s := New(runner, nil, cfg)

	s.Start(context.Background())
	defer s.Stop()

	s.Trigger()
	waitForPass(t, runner)
	assert.GreaterOrEqual(t, runner.count(), 1)
}

func TestScheduler_TickerKeepsPassing(t *testing.T) {
	runner := newStubRunner(nil)
	cfg := config.DefaultSchedulerConfig()
	cfg.Interval = 10 * time.Millisecond
	cfg.InitialDelay = time.Millisecond
	s := New(runner, nil, cfg)

	s.Start(context.Background())
	waitForPass(t, runner)
	waitForPass(t, runner)
	s.Stop()

	// Stopped means stopped: no passes accumulate afterwards.
	settled := runner.count()
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, settled, runner.count())
}

func TestScheduler_StopWithoutStart(t *testing.T) {
	s := New(newStubRunner(nil), nil, nil)
	s.Stop()
}

func TestScheduler_DoubleStartIsNoop(t *testing.T) {
	runner := newStubRunner(nil)
	cfg := config.DefaultSchedulerConfig()
	cfg.Interval = time.Hour
	cfg.InitialDelay = time.Hour
	s := New(runner, nil, cfg)

	s.Start(context.Background())
	s.Start(context.Background())
	s.Stop()
}
