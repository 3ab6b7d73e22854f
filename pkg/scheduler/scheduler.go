// Package scheduler drives the verification pipeline on a fixed interval.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/credlens/pundit/pkg/config"
)

// runner is the pass the scheduler drives each tick.
type runner interface {
	RunPass(ctx context.Context) error
}

// poller refreshes monitored sources before a pass. Optional.
type poller interface {
	PollDue(ctx context.Context) error
}

// Scheduler runs source polling plus one verification pass per tick. A
// manual trigger squeezes an extra pass in between ticks; triggers arriving
// while a pass is running collapse into one.
type Scheduler struct {
	runner  runner
	poller  poller
	cfg     *config.SchedulerConfig
	trigger chan struct{}

	cancel context.CancelFunc
	done   chan struct{}
}

func New(r runner, p poller, cfg *config.SchedulerConfig) *Scheduler {
	if cfg == nil {
		cfg = config.DefaultSchedulerConfig()
	}
	return &Scheduler{
		runner:  r,
		poller:  p,
		cfg:     cfg,
		trigger: make(chan struct{}, 1),
	}
}

// Start launches the background loop. The first pass waits out the initial
// delay so the HTTP server is up before any model spend happens.
func (s *Scheduler) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Scheduler started",
		"interval", s.cfg.Interval,
		"initial_delay", s.cfg.InitialDelay)
}

// Stop signals the loop to exit and waits for the in-flight pass to finish.
func (s *Scheduler) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Scheduler stopped")
}

// Trigger requests an immediate pass without waiting for the next tick.
func (s *Scheduler) Trigger() {
	select {
	case s.trigger <- struct{}{}:
	default:
	}
}

// RunOnce executes a single poll-plus-pass cycle and returns its error.
// Worker one-shot mode uses this directly, without Start.
func (s *Scheduler) RunOnce(ctx context.Context) error {
	if s.poller != nil {
		if err := s.poller.PollDue(ctx); err != nil {
			slog.Error("Source polling failed, running the pass anyway", "error", err)
		}
	}
	return s.runner.RunPass(ctx)
}

func (s *Scheduler) run(ctx context.Context) {
	defer close(s.done)

	delay := time.NewTimer(s.cfg.InitialDelay)
	defer delay.Stop()
	select {
	case <-ctx.Done():
		return
	case <-delay.C:
	case <-s.trigger:
	}
	s.pass(ctx)

	ticker := time.NewTicker(s.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.pass(ctx)
		case <-s.trigger:
			s.pass(ctx)
		}
	}
}

func (s *Scheduler) pass(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}
	if err := s.RunOnce(ctx); err != nil {
		slog.Error("Scheduled pass aborted", "error", err)
	}
}
