package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/accessly/docpipeline/constants"
	"github.com/accessly/docpipeline/internal/entity"
)

// DocumentRepository is the durable record of a document's lifecycle and
// aggregate outputs. The router is the sole writer of document status.
type DocumentRepository interface {
	Create(ctx context.Context, d *entity.Document) (*entity.Document, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.Document, error)
	List(ctx context.Context, ownerID string, statuses []constants.DocumentStatus, limit int) ([]*entity.Document, error)

	// SetProcessing moves PENDING -> PROCESSING. A no-op error
	// (common.ErrDocumentTerminal) is returned if the document already
	// left PENDING.
	SetProcessing(ctx context.Context, id uuid.UUID) error

	// SetTerminal moves a non-terminal document into a terminal status.
	SetTerminal(ctx context.Context, id uuid.UUID, status constants.DocumentStatus, errorMessage string, now time.Time) error

	// MergeOutputs applies a step's decoded output to the document
	// aggregate fields. Merging is per-key; a retried step's values
	// replace the prior attempt's values (last-write-wins).
	MergeOutputs(ctx context.Context, id uuid.UUID, patch entity.DocumentPatch) error

	// SetCancelled flags the document so the router stops creating jobs
	// and discards late results.
	SetCancelled(ctx context.Context, id uuid.UUID) error
}

// JobRepository is the execution ledger. Every forward/backward status
// transition is a single conditional update matching the expected prior
// status, so concurrent scheduler/monitor/retry actors stay correct.
type JobRepository interface {
	// Create persists a new PENDING job. It rejects a second in-flight
	// job for the same (document, step) with common.ErrDuplicateJob.
	Create(ctx context.Context, j *entity.Job) (*entity.Job, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.Job, error)
	ListByDocument(ctx context.Context, docID uuid.UUID) ([]*entity.Job, error)

	// ClaimNext atomically claims the best eligible PENDING job whose
	// step is in caps, ordered by (priority desc, created_at asc):
	// PENDING -> RUNNING, attempts++, worker fields set. Returns
	// (nil, nil) when no job is eligible.
	ClaimNext(ctx context.Context, caps []constants.Step, workerID string, now time.Time) (*entity.Job, error)

	// Heartbeat refreshes last_heartbeat. common.ErrStaleJob if the job
	// is not RUNNING under workerID.
	Heartbeat(ctx context.Context, jobID uuid.UUID, workerID string, now time.Time) error

	// Complete moves RUNNING -> COMPLETED for the owning worker and
	// records output. common.ErrStaleJob on ownership/status mismatch.
	Complete(ctx context.Context, jobID uuid.UUID, workerID string, output json.RawMessage, now time.Time) (*entity.Job, error)

	// Fail moves RUNNING -> FAILED for the owning worker and records the
	// error. common.ErrStaleJob on ownership/status mismatch.
	Fail(ctx context.Context, jobID uuid.UUID, workerID string, jobErr entity.JobError, now time.Time) (*entity.Job, error)

	// ReclaimExpired moves every RUNNING job with a stale heartbeat or an
	// exceeded execution timeout to TIMEOUT, clears the worker claim and
	// synthesizes a timeout error. Idempotent: a job already reclaimed is
	// not matched again.
	ReclaimExpired(ctx context.Context, now time.Time, missedBeats int) ([]*entity.Job, error)

	// ScheduleRetry moves FAILED or TIMEOUT -> RETRY with a persisted
	// retry_at, so retries survive process restarts.
	ScheduleRetry(ctx context.Context, jobID uuid.UUID, from constants.JobStatus, retryAt time.Time) error

	// MarkExhausted moves TIMEOUT -> FAILED once attempts reached
	// max_attempts, making the failure terminal.
	MarkExhausted(ctx context.Context, jobID uuid.UUID, now time.Time) (*entity.Job, error)

	// ReleaseDueRetries moves every RETRY job with retry_at <= now back
	// to PENDING, re-eligible for dispatch with its original input.
	ReleaseDueRetries(ctx context.Context, now time.Time) ([]*entity.Job, error)

	// AppendLog appends one audit entry to the job log.
	AppendLog(ctx context.Context, jobID uuid.UUID, e entity.LogEntry) error
}
