package pipeline

import (
	"context"
	"log/slog"
	"math"
	"math/rand"
	"time"

	"github.com/accessly/docpipeline/constants"
	"github.com/accessly/docpipeline/internal/entity"
	"github.com/accessly/docpipeline/internal/repository"
)

// RetryController decides whether a failed-this-attempt job gets another
// try and when. The delay is persisted as retry_at, so scheduled retries
// survive process restarts; a periodic sweep releases due jobs back to
// PENDING.
type RetryController struct {
	jobs       repository.JobRepository
	router     *Router
	interval   time.Duration
	jitterFrac float64
	now        Clock
	rng        *rand.Rand
	logger     *slog.Logger
}

func NewRetryController(jobs repository.JobRepository, router *Router, interval time.Duration, jitterFrac float64, logger *slog.Logger) *RetryController {
	if logger == nil {
		logger = slog.Default()
	}
	return &RetryController{
		jobs:       jobs,
		router:     router,
		interval:   interval,
		jitterFrac: jitterFrac,
		now:        systemClock,
		rng:        rand.New(rand.NewSource(time.Now().UnixNano())),
		logger:     logger,
	}
}

// WithClock overrides the controller clock; used by tests.
func (c *RetryController) WithClock(clock Clock) *RetryController {
	c.now = clock
	return c
}

// HandleFailure is called with a job in FAILED or TIMEOUT. A retryable
// job is scheduled for another attempt; an exhausted one becomes a
// terminal failure and the router finalizes the document. A reclaimed
// job counts toward max_attempts exactly like a worker-reported failure.
func (c *RetryController) HandleFailure(ctx context.Context, job *entity.Job) error {
	if job.Retryable() {
		delay := Backoff(job.Retry, job.Attempts)
		if c.jitterFrac > 0 {
			delay += time.Duration(c.rng.Float64() * c.jitterFrac * float64(delay))
		}
		retryAt := c.now().Add(delay)
		if err := c.jobs.ScheduleRetry(ctx, job.ID, job.Status, retryAt); err != nil {
			return err
		}
		_ = c.jobs.AppendLog(ctx, job.ID, entity.LogEntry{
			At: c.now(), Attempt: job.Attempts, Event: "retry_scheduled", Detail: "delay " + delay.String(),
		})
		c.logger.Info("retry scheduled", "job_id", job.ID, "step", job.Step, "attempt", job.Attempts, "max_attempts", job.MaxAttempts, "delay", delay)
		return nil
	}

	if job.Status == constants.JobTimeout {
		finished, err := c.jobs.MarkExhausted(ctx, job.ID, c.now())
		if err != nil {
			return err
		}
		job = finished
	}
	c.logger.Warn("retries exhausted", "job_id", job.ID, "step", job.Step, "attempts", job.Attempts)
	return c.router.OnJobFailedTerminal(ctx, job)
}

// Sweep releases every RETRY job whose retry_at has elapsed back to
// PENDING. Returns the number released.
func (c *RetryController) Sweep(ctx context.Context) (int, error) {
	released, err := c.jobs.ReleaseDueRetries(ctx, c.now())
	if err != nil {
		return 0, err
	}
	return len(released), nil
}

// Run sweeps on the configured cadence until ctx is cancelled.
func (c *RetryController) Run(ctx context.Context) error {
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()
	c.logger.Info("retry sweep started", "interval", c.interval)
	for {
		select {
		case <-ctx.Done():
			c.logger.Info("retry sweep stopped")
			return ctx.Err()
		case <-ticker.C:
			if n, err := c.Sweep(ctx); err != nil {
				c.logger.Error("retry sweep failed", "error", err)
			} else if n > 0 {
				c.logger.Info("retries released", "count", n)
			}
		}
	}
}

// Backoff computes the deterministic retry delay after the given attempt
// count: min(initial * multiplier^(attempts-1), max).
func Backoff(p entity.RetryPolicy, attempts int) time.Duration {
	if attempts < 1 {
		attempts = 1
	}
	initial := float64(p.InitialDelaySecs)
	delay := initial * math.Pow(p.BackoffMultiplier, float64(attempts-1))
	if maxDelay := float64(p.MaxDelaySecs); delay > maxDelay {
		delay = maxDelay
	}
	return time.Duration(delay * float64(time.Second))
}
