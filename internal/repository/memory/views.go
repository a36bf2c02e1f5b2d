package memory

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/accessly/docpipeline/constants"
	"github.com/accessly/docpipeline/internal/entity"
	"github.com/accessly/docpipeline/internal/repository"
)

// Documents exposes the store as a repository.DocumentRepository.
func (s *Store) Documents() repository.DocumentRepository { return s }

// Jobs exposes the store as a repository.JobRepository.
func (s *Store) Jobs() repository.JobRepository { return jobsView{s} }

// jobsView adapts the job methods to the JobRepository method set, whose
// Create/Get names collide with the document side on a single type.
type jobsView struct{ s *Store }

func (v jobsView) Create(ctx context.Context, j *entity.Job) (*entity.Job, error) {
	return v.s.CreateJob(ctx, j)
}

func (v jobsView) Get(ctx context.Context, id uuid.UUID) (*entity.Job, error) {
	return v.s.GetJob(ctx, id)
}

func (v jobsView) ListByDocument(ctx context.Context, docID uuid.UUID) ([]*entity.Job, error) {
	return v.s.ListByDocument(ctx, docID)
}

func (v jobsView) ClaimNext(ctx context.Context, caps []constants.Step, workerID string, now time.Time) (*entity.Job, error) {
	return v.s.ClaimNext(ctx, caps, workerID, now)
}

func (v jobsView) Heartbeat(ctx context.Context, jobID uuid.UUID, workerID string, now time.Time) error {
	return v.s.Heartbeat(ctx, jobID, workerID, now)
}

func (v jobsView) Complete(ctx context.Context, jobID uuid.UUID, workerID string, output json.RawMessage, now time.Time) (*entity.Job, error) {
	return v.s.Complete(ctx, jobID, workerID, output, now)
}

func (v jobsView) Fail(ctx context.Context, jobID uuid.UUID, workerID string, jobErr entity.JobError, now time.Time) (*entity.Job, error) {
	return v.s.Fail(ctx, jobID, workerID, jobErr, now)
}

func (v jobsView) ReclaimExpired(ctx context.Context, now time.Time, missedBeats int) ([]*entity.Job, error) {
	return v.s.ReclaimExpired(ctx, now, missedBeats)
}

func (v jobsView) ScheduleRetry(ctx context.Context, jobID uuid.UUID, from constants.JobStatus, retryAt time.Time) error {
	return v.s.ScheduleRetry(ctx, jobID, from, retryAt)
}

func (v jobsView) MarkExhausted(ctx context.Context, jobID uuid.UUID, now time.Time) (*entity.Job, error) {
	return v.s.MarkExhausted(ctx, jobID, now)
}

func (v jobsView) ReleaseDueRetries(ctx context.Context, now time.Time) ([]*entity.Job, error) {
	return v.s.ReleaseDueRetries(ctx, now)
}

func (v jobsView) AppendLog(ctx context.Context, jobID uuid.UUID, e entity.LogEntry) error {
	return v.s.AppendLog(ctx, jobID, e)
}
