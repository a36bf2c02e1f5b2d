package repository

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/accessly/docpipeline/constants"
	"github.com/accessly/docpipeline/gen/ent"
	"github.com/accessly/docpipeline/gen/ent/job"
	"github.com/accessly/docpipeline/internal/common"
	"github.com/accessly/docpipeline/internal/entity"
)

// claimCandidates bounds how many dispatch candidates are CAS-raced per
// ClaimNext call before reporting an empty queue.
const claimCandidates = 8

type jobRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewJobRepository(entc *ent.Client, log *slog.Logger) JobRepository {
	return &jobRepo{ent: entc, log: log}
}

func (r *jobRepo) Create(ctx context.Context, j *entity.Job) (*entity.Job, error) {
	// Guard the (document, step) in-flight uniqueness invariant. The
	// router is the only job creator and only creates the next step after
	// the prior one completed, so this check cannot race with itself.
	n, err := r.ent.Job.Query().
		Where(
			job.DocumentIDEQ(j.DocumentID),
			job.StepEQ(string(j.Step)),
			job.StatusIn(
				string(constants.JobPending),
				string(constants.JobRunning),
				string(constants.JobRetry),
			),
		).
		Count(ctx)
	if err != nil {
		return nil, common.WrapError(err, "create job: in-flight check")
	}
	if n > 0 {
		return nil, common.ErrDuplicateJob
	}

	create := r.ent.Job.
		Create().
		SetDocumentID(j.DocumentID).
		SetStep(string(j.Step)).
		SetStatus(string(constants.JobPending)).
		SetPriority(j.Priority).
		SetMaxAttempts(j.MaxAttempts).
		SetRetryEnabled(j.Retry.Enabled).
		SetBackoffMultiplier(j.Retry.BackoffMultiplier).
		SetInitialDelaySeconds(j.Retry.InitialDelaySecs).
		SetMaxDelaySeconds(j.Retry.MaxDelaySecs).
		SetExecutionTimeoutSeconds(j.Timeout.ExecutionTimeoutSecs).
		SetHeartbeatIntervalSeconds(j.Timeout.HeartbeatIntervalSecs)
	if len(j.Input) > 0 {
		create.SetInput(j.Input)
	}

	row, err := create.Save(ctx)
	if err != nil {
		r.log.Error("job create failed", "doc_id", j.DocumentID, "step", j.Step, "err", err)
		return nil, common.WrapError(err, "create job")
	}
	r.log.Info("job created", "job_id", row.ID, "doc_id", j.DocumentID, "step", j.Step, "priority", j.Priority)
	return toJob(row), nil
}

func (r *jobRepo) Get(ctx context.Context, id uuid.UUID) (*entity.Job, error) {
	row, err := r.ent.Job.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		return nil, common.WrapError(err, "get job")
	}
	return toJob(row), nil
}

func (r *jobRepo) ListByDocument(ctx context.Context, docID uuid.UUID) ([]*entity.Job, error) {
	rows, err := r.ent.Job.Query().
		Where(job.DocumentIDEQ(docID)).
		Order(ent.Asc(job.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, common.WrapError(err, "list jobs")
	}
	out := make([]*entity.Job, 0, len(rows))
	for _, row := range rows {
		out = append(out, toJob(row))
	}
	return out, nil
}

func (r *jobRepo) ClaimNext(ctx context.Context, caps []constants.Step, workerID string, now time.Time) (*entity.Job, error) {
	steps := make([]string, 0, len(caps))
	for _, s := range caps {
		steps = append(steps, string(s))
	}
	candidates, err := r.ent.Job.Query().
		Where(
			job.StatusEQ(string(constants.JobPending)),
			job.StepIn(steps...),
		).
		Order(ent.Desc(job.FieldPriority), ent.Asc(job.FieldCreatedAt)).
		Limit(claimCandidates).
		All(ctx)
	if err != nil {
		return nil, common.WrapError(err, "claim next: query")
	}

	// CAS each candidate in dispatch order; the status predicate makes a
	// concurrent claim of the same row lose cleanly.
	for _, c := range candidates {
		n, err := r.ent.Job.Update().
			Where(
				job.IDEQ(c.ID),
				job.StatusEQ(string(constants.JobPending)),
			).
			SetStatus(string(constants.JobRunning)).
			SetWorkerID(workerID).
			SetStartedAt(now).
			SetLastHeartbeat(now).
			AddAttempts(1).
			Save(ctx)
		if err != nil {
			return nil, common.WrapError(err, "claim next: claim")
		}
		if n == 0 {
			continue // lost the race, try the next candidate
		}
		row, err := r.ent.Job.Get(ctx, c.ID)
		if err != nil {
			return nil, common.WrapError(err, "claim next: reload")
		}
		r.log.Info("job claimed", "job_id", row.ID, "step", row.Step, "worker_id", workerID, "attempt", row.Attempts)
		return toJob(row), nil
	}
	return nil, nil
}

func (r *jobRepo) Heartbeat(ctx context.Context, jobID uuid.UUID, workerID string, now time.Time) error {
	n, err := r.ent.Job.Update().
		Where(
			job.IDEQ(jobID),
			job.StatusEQ(string(constants.JobRunning)),
			job.WorkerIDEQ(workerID),
		).
		SetLastHeartbeat(now).
		Save(ctx)
	if err != nil {
		return common.WrapError(err, "heartbeat")
	}
	if n == 0 {
		return common.ErrStaleJob
	}
	return nil
}

func (r *jobRepo) Complete(ctx context.Context, jobID uuid.UUID, workerID string, output json.RawMessage, now time.Time) (*entity.Job, error) {
	upd := r.ent.Job.Update().
		Where(
			job.IDEQ(jobID),
			job.StatusEQ(string(constants.JobRunning)),
			job.WorkerIDEQ(workerID),
		).
		SetStatus(string(constants.JobCompleted)).
		SetFinishedAt(now).
		ClearErrorKind().
		ClearErrorMessage()
	if len(output) > 0 {
		upd.SetOutput(output)
	}
	n, err := upd.Save(ctx)
	if err != nil {
		return nil, common.WrapError(err, "complete job")
	}
	if n == 0 {
		return nil, common.ErrStaleJob
	}
	return r.Get(ctx, jobID)
}

func (r *jobRepo) Fail(ctx context.Context, jobID uuid.UUID, workerID string, jobErr entity.JobError, now time.Time) (*entity.Job, error) {
	n, err := r.ent.Job.Update().
		Where(
			job.IDEQ(jobID),
			job.StatusEQ(string(constants.JobRunning)),
			job.WorkerIDEQ(workerID),
		).
		SetStatus(string(constants.JobFailed)).
		SetErrorKind(string(jobErr.Kind)).
		SetErrorMessage(jobErr.Message).
		SetFinishedAt(now).
		Save(ctx)
	if err != nil {
		return nil, common.WrapError(err, "fail job")
	}
	if n == 0 {
		return nil, common.ErrStaleJob
	}
	return r.Get(ctx, jobID)
}

func (r *jobRepo) ReclaimExpired(ctx context.Context, now time.Time, missedBeats int) ([]*entity.Job, error) {
	// Heartbeat and execution deadlines vary per job, so the sweep loads
	// RUNNING rows and applies the per-row threshold in Go. Each
	// transition is still its own CAS: a row something else already moved
	// is simply skipped.
	rows, err := r.ent.Job.Query().
		Where(job.StatusEQ(string(constants.JobRunning))).
		All(ctx)
	if err != nil {
		return nil, common.WrapError(err, "reclaim: query")
	}

	var reclaimed []*entity.Job
	for _, row := range rows {
		j := toJob(row)
		if !expired(j, now, missedBeats) {
			continue
		}
		n, err := r.ent.Job.Update().
			Where(
				job.IDEQ(j.ID),
				job.StatusEQ(string(constants.JobRunning)),
			).
			SetStatus(string(constants.JobTimeout)).
			ClearWorkerID().
			ClearLastHeartbeat().
			SetErrorKind(string(constants.ErrorKindTimeout)).
			SetErrorMessage("heartbeat/timeout exceeded").
			Save(ctx)
		if err != nil {
			return reclaimed, common.WrapError(err, "reclaim: transition")
		}
		if n == 0 {
			continue
		}
		got, err := r.Get(ctx, j.ID)
		if err != nil {
			return reclaimed, err
		}
		r.log.Warn("job reclaimed", "job_id", j.ID, "step", j.Step, "worker_id", j.WorkerID, "attempt", j.Attempts)
		reclaimed = append(reclaimed, got)
	}
	return reclaimed, nil
}

// expired applies the reclaim policy: missed heartbeats beyond the
// threshold, or total running time beyond the execution timeout.
func expired(j *entity.Job, now time.Time, missedBeats int) bool {
	if j.LastHeartbeat != nil {
		stale := time.Duration(missedBeats) * j.Timeout.HeartbeatInterval()
		if now.Sub(*j.LastHeartbeat) > stale {
			return true
		}
	}
	if j.StartedAt != nil && now.Sub(*j.StartedAt) > j.Timeout.ExecutionTimeout() {
		return true
	}
	return false
}

func (r *jobRepo) ScheduleRetry(ctx context.Context, jobID uuid.UUID, from constants.JobStatus, retryAt time.Time) error {
	n, err := r.ent.Job.Update().
		Where(
			job.IDEQ(jobID),
			job.StatusEQ(string(from)),
		).
		SetStatus(string(constants.JobRetry)).
		SetRetryAt(retryAt).
		Save(ctx)
	if err != nil {
		return common.WrapError(err, "schedule retry")
	}
	if n == 0 {
		return common.ErrStaleJob
	}
	r.log.Info("job retry scheduled", "job_id", jobID, "retry_at", retryAt)
	return nil
}

func (r *jobRepo) MarkExhausted(ctx context.Context, jobID uuid.UUID, now time.Time) (*entity.Job, error) {
	n, err := r.ent.Job.Update().
		Where(
			job.IDEQ(jobID),
			job.StatusEQ(string(constants.JobTimeout)),
		).
		SetStatus(string(constants.JobFailed)).
		SetFinishedAt(now).
		Save(ctx)
	if err != nil {
		return nil, common.WrapError(err, "mark exhausted")
	}
	if n == 0 {
		return nil, common.ErrStaleJob
	}
	return r.Get(ctx, jobID)
}

func (r *jobRepo) ReleaseDueRetries(ctx context.Context, now time.Time) ([]*entity.Job, error) {
	rows, err := r.ent.Job.Query().
		Where(
			job.StatusEQ(string(constants.JobRetry)),
			job.RetryAtLTE(now),
		).
		All(ctx)
	if err != nil {
		return nil, common.WrapError(err, "release retries: query")
	}

	var released []*entity.Job
	for _, row := range rows {
		n, err := r.ent.Job.Update().
			Where(
				job.IDEQ(row.ID),
				job.StatusEQ(string(constants.JobRetry)),
			).
			SetStatus(string(constants.JobPending)).
			ClearRetryAt().
			ClearWorkerID().
			ClearStartedAt().
			ClearLastHeartbeat().
			Save(ctx)
		if err != nil {
			return released, common.WrapError(err, "release retries: transition")
		}
		if n == 0 {
			continue
		}
		got, err := r.Get(ctx, row.ID)
		if err != nil {
			return released, err
		}
		r.log.Info("job released for retry", "job_id", row.ID, "attempt", got.Attempts)
		released = append(released, got)
	}
	return released, nil
}

// AppendLog is advisory audit data, not part of the state machine, so a
// read-append-write is acceptable here.
func (r *jobRepo) AppendLog(ctx context.Context, jobID uuid.UUID, e entity.LogEntry) error {
	row, err := r.ent.Job.Get(ctx, jobID)
	if err != nil {
		if ent.IsNotFound(err) {
			return common.ErrNotFound
		}
		return common.WrapError(err, "append log: get")
	}
	var logs []entity.LogEntry
	unmarshalInto(row.Logs, &logs)
	logs = append(logs, e)
	_, err = r.ent.Job.UpdateOneID(jobID).SetLogs(marshalRaw(logs)).Save(ctx)
	return common.WrapError(err, "append log: save")
}
