package pipeline

import (
	"context"
	"log/slog"
	"time"

	"github.com/accessly/docpipeline/internal/repository"
)

// Monitor is the background sweep that detects stalled workers. It runs
// across the whole job store, independent of any document's lifecycle:
// every RUNNING job whose heartbeat went stale (missedBeats intervals) or
// whose total running time exceeded its execution timeout is reclaimed
// to TIMEOUT and handed to the retry controller as a failure.
type Monitor struct {
	jobs        repository.JobRepository
	retry       *RetryController
	interval    time.Duration
	missedBeats int
	now         Clock
	logger      *slog.Logger
}

func NewMonitor(jobs repository.JobRepository, retry *RetryController, interval time.Duration, missedBeats int, logger *slog.Logger) *Monitor {
	if missedBeats < 1 {
		missedBeats = 3
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Monitor{
		jobs:        jobs,
		retry:       retry,
		interval:    interval,
		missedBeats: missedBeats,
		now:         systemClock,
		logger:      logger,
	}
}

// WithClock overrides the monitor clock; used by tests.
func (m *Monitor) WithClock(c Clock) *Monitor {
	m.now = c
	return m
}

// Sweep reclaims expired running jobs once and routes each through the
// retry controller. Reclaiming is idempotent: a second sweep over the
// same stale job is a no-op because the store transition is conditional
// on status RUNNING.
func (m *Monitor) Sweep(ctx context.Context) (int, error) {
	reclaimed, err := m.jobs.ReclaimExpired(ctx, m.now(), m.missedBeats)
	if err != nil {
		return 0, err
	}
	for _, job := range reclaimed {
		if err := m.retry.HandleFailure(ctx, job); err != nil {
			m.logger.Error("reclaim handoff failed", "job_id", job.ID, "error", err)
		}
	}
	return len(reclaimed), nil
}

// Run sweeps on the configured cadence until ctx is cancelled.
func (m *Monitor) Run(ctx context.Context) error {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()
	m.logger.Info("timeout monitor started", "interval", m.interval, "missed_beats", m.missedBeats)
	for {
		select {
		case <-ctx.Done():
			m.logger.Info("timeout monitor stopped")
			return ctx.Err()
		case <-ticker.C:
			if n, err := m.Sweep(ctx); err != nil {
				m.logger.Error("monitor sweep failed", "error", err)
			} else if n > 0 {
				m.logger.Warn("jobs reclaimed", "count", n)
			}
		}
	}
}
