package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/accessly/docpipeline/constants"
	"github.com/accessly/docpipeline/internal/common"
	"github.com/accessly/docpipeline/internal/entity"
	"github.com/accessly/docpipeline/internal/repository"
)

// Scheduler binds pending jobs to workers and accepts their results. It
// is a stateless layer over the job store: the store's conditional
// updates carry all the atomicity, so any number of scheduler instances
// may run concurrently.
type Scheduler struct {
	jobs   repository.JobRepository
	router *Router
	retry  *RetryController
	now    Clock
	logger *slog.Logger
}

func NewScheduler(jobs repository.JobRepository, router *Router, retry *RetryController, logger *slog.Logger) *Scheduler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Scheduler{
		jobs:   jobs,
		router: router,
		retry:  retry,
		now:    systemClock,
		logger: logger,
	}
}

// WithClock overrides the scheduler clock; used by tests.
func (s *Scheduler) WithClock(c Clock) *Scheduler {
	s.now = c
	return s
}

// DispatchNext claims the highest-priority eligible pending job whose
// step the worker can run. FIFO within a priority. Returns (nil, nil)
// when no job is eligible; callers poll with backoff. If two calls race
// for the same job, exactly one receives it and the other gets the next
// candidate or nil.
func (s *Scheduler) DispatchNext(ctx context.Context, workerID string, caps []constants.Step) (*entity.Job, error) {
	if workerID == "" {
		return nil, fmt.Errorf("%w: worker id is required", common.ErrInvalidInput)
	}
	if len(caps) == 0 {
		caps = constants.PipelineOrder
	}
	job, err := s.jobs.ClaimNext(ctx, caps, workerID, s.now())
	if err != nil || job == nil {
		return nil, err
	}
	_ = s.jobs.AppendLog(ctx, job.ID, entity.LogEntry{
		At: s.now(), Attempt: job.Attempts, Event: "dispatched", Detail: "worker " + workerID,
	})
	return job, nil
}

// Heartbeat refreshes the worker's claim on a running job.
func (s *Scheduler) Heartbeat(ctx context.Context, jobID uuid.UUID, workerID string) error {
	return s.jobs.Heartbeat(ctx, jobID, workerID, s.now())
}

// ReportResult records a worker's outcome for a job it owns. A worker
// that lost its claim (reclaimed by the monitor, or finished elsewhere)
// gets common.ErrStaleJob and its result is discarded without mutation.
// Success hands the job to the router; failure hands it to the retry
// controller.
func (s *Scheduler) ReportResult(ctx context.Context, jobID uuid.UUID, workerID string, res entity.StepResult) error {
	now := s.now()
	if res.Completed {
		job, err := s.jobs.Complete(ctx, jobID, workerID, res.Output, now)
		if err != nil {
			s.logResultRejected(jobID, workerID, err)
			return err
		}
		_ = s.jobs.AppendLog(ctx, job.ID, entity.LogEntry{
			At: now, Attempt: job.Attempts, Event: "completed",
		})
		return s.router.OnJobCompleted(ctx, job)
	}

	jobErr := entity.JobError{Kind: constants.ErrorKindStepExecution, Message: "step failed"}
	if res.Error != nil {
		jobErr = *res.Error
		if jobErr.Kind == "" {
			jobErr.Kind = constants.ErrorKindStepExecution
		}
	}
	job, err := s.jobs.Fail(ctx, jobID, workerID, jobErr, now)
	if err != nil {
		s.logResultRejected(jobID, workerID, err)
		return err
	}
	_ = s.jobs.AppendLog(ctx, job.ID, entity.LogEntry{
		At: now, Attempt: job.Attempts, Event: "failed", Detail: jobErr.Message,
	})
	return s.retry.HandleFailure(ctx, job)
}

func (s *Scheduler) logResultRejected(jobID uuid.UUID, workerID string, err error) {
	s.logger.Warn("result rejected", "job_id", jobID, "worker_id", workerID, "error", err)
}
