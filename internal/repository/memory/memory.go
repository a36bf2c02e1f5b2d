// Package memory provides an in-memory implementation of the repository
// interfaces. Every transition takes the store mutex, giving it the same
// atomic conditional-update semantics as the SQL implementation. It backs
// unit tests and the STORE=memory development mode.
package memory

import (
	"context"
	"encoding/json"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/accessly/docpipeline/constants"
	"github.com/accessly/docpipeline/internal/common"
	"github.com/accessly/docpipeline/internal/entity"
)

type Store struct {
	mu   sync.Mutex
	docs map[uuid.UUID]*entity.Document
	jobs map[uuid.UUID]*entity.Job
}

func NewStore() *Store {
	return &Store{
		docs: make(map[uuid.UUID]*entity.Document),
		jobs: make(map[uuid.UUID]*entity.Job),
	}
}

// --- DocumentRepository ---

func (s *Store) Create(ctx context.Context, d *entity.Document) (*entity.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := cloneDoc(d)
	if cp.ID == uuid.Nil {
		cp.ID = uuid.New()
	}
	now := time.Now()
	cp.CreatedAt = now
	cp.UpdatedAt = now
	s.docs[cp.ID] = cp
	return cloneDoc(cp), nil
}

func (s *Store) Get(ctx context.Context, id uuid.UUID) (*entity.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.docs[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	return cloneDoc(d), nil
}

func (s *Store) List(ctx context.Context, ownerID string, statuses []constants.DocumentStatus, limit int) ([]*entity.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*entity.Document
	for _, d := range s.docs {
		if ownerID != "" && d.OwnerID != ownerID {
			continue
		}
		if len(statuses) > 0 && !containsStatus(statuses, d.Status) {
			continue
		}
		out = append(out, cloneDoc(d))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *Store) SetProcessing(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.docs[id]
	if !ok {
		return common.ErrNotFound
	}
	if d.Status != constants.DocumentPending {
		return common.ErrDocumentTerminal
	}
	d.Status = constants.DocumentProcessing
	d.UpdatedAt = time.Now()
	return nil
}

func (s *Store) SetTerminal(ctx context.Context, id uuid.UUID, status constants.DocumentStatus, errorMessage string, now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.docs[id]
	if !ok {
		return common.ErrNotFound
	}
	if d.Status.IsTerminal() {
		return common.ErrDocumentTerminal
	}
	d.Status = status
	d.UpdatedAt = now
	if status == constants.DocumentCompleted {
		t := now
		d.CompletedAt = &t
	}
	if errorMessage != "" {
		d.ErrorMessage = errorMessage
	}
	return nil
}

func (s *Store) MergeOutputs(ctx context.Context, id uuid.UUID, patch entity.DocumentPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.docs[id]
	if !ok {
		return common.ErrNotFound
	}
	if len(patch.Artifacts) > 0 {
		if d.Artifacts == nil {
			d.Artifacts = map[string]string{}
		}
		for k, v := range patch.Artifacts {
			d.Artifacts[k] = v
		}
	}
	if len(patch.Scores) > 0 {
		if d.Scores == nil {
			d.Scores = map[string]float64{}
		}
		for k, v := range patch.Scores {
			d.Scores[k] = v
		}
	}
	if len(patch.Metadata) > 0 {
		if d.Metadata == nil {
			d.Metadata = map[string]any{}
		}
		for k, v := range patch.Metadata {
			d.Metadata[k] = v
		}
	}
	if patch.Issues != nil {
		d.Issues = append([]entity.Issue(nil), patch.Issues...)
	}
	d.UpdatedAt = time.Now()
	return nil
}

func (s *Store) SetCancelled(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.docs[id]
	if !ok {
		return common.ErrNotFound
	}
	if d.Status.IsTerminal() {
		return common.ErrDocumentTerminal
	}
	d.Cancelled = true
	d.UpdatedAt = time.Now()
	return nil
}

// --- JobRepository ---

func (s *Store) CreateJob(ctx context.Context, j *entity.Job) (*entity.Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.jobs {
		if existing.DocumentID == j.DocumentID && existing.Step == j.Step && existing.Status.InFlight() {
			return nil, common.ErrDuplicateJob
		}
	}
	cp := cloneJob(j)
	if cp.ID == uuid.Nil {
		cp.ID = uuid.New()
	}
	cp.Status = constants.JobPending
	now := time.Now()
	cp.CreatedAt = now
	cp.UpdatedAt = now
	s.jobs[cp.ID] = cp
	return cloneJob(cp), nil
}

func (s *Store) GetJob(ctx context.Context, id uuid.UUID) (*entity.Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	j, ok := s.jobs[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	return cloneJob(j), nil
}

func (s *Store) ListByDocument(ctx context.Context, docID uuid.UUID) ([]*entity.Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*entity.Job
	for _, j := range s.jobs {
		if j.DocumentID == docID {
			out = append(out, cloneJob(j))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (s *Store) ClaimNext(ctx context.Context, caps []constants.Step, workerID string, now time.Time) (*entity.Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var best *entity.Job
	for _, j := range s.jobs {
		if j.Status != constants.JobPending || !stepIn(caps, j.Step) {
			continue
		}
		if best == nil || j.Priority > best.Priority ||
			(j.Priority == best.Priority && j.CreatedAt.Before(best.CreatedAt)) {
			best = j
		}
	}
	if best == nil {
		return nil, nil
	}
	best.Status = constants.JobRunning
	best.WorkerID = workerID
	t := now
	best.StartedAt = &t
	hb := now
	best.LastHeartbeat = &hb
	best.Attempts++
	best.UpdatedAt = now
	return cloneJob(best), nil
}

func (s *Store) Heartbeat(ctx context.Context, jobID uuid.UUID, workerID string, now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	j, ok := s.jobs[jobID]
	if !ok || j.Status != constants.JobRunning || j.WorkerID != workerID {
		return common.ErrStaleJob
	}
	t := now
	j.LastHeartbeat = &t
	j.UpdatedAt = now
	return nil
}

func (s *Store) Complete(ctx context.Context, jobID uuid.UUID, workerID string, output json.RawMessage, now time.Time) (*entity.Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	j, ok := s.jobs[jobID]
	if !ok || j.Status != constants.JobRunning || j.WorkerID != workerID {
		return nil, common.ErrStaleJob
	}
	j.Status = constants.JobCompleted
	j.Output = append(json.RawMessage(nil), output...)
	j.Error = nil
	t := now
	j.FinishedAt = &t
	j.UpdatedAt = now
	return cloneJob(j), nil
}

func (s *Store) Fail(ctx context.Context, jobID uuid.UUID, workerID string, jobErr entity.JobError, now time.Time) (*entity.Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	j, ok := s.jobs[jobID]
	if !ok || j.Status != constants.JobRunning || j.WorkerID != workerID {
		return nil, common.ErrStaleJob
	}
	j.Status = constants.JobFailed
	e := jobErr
	j.Error = &e
	t := now
	j.FinishedAt = &t
	j.UpdatedAt = now
	return cloneJob(j), nil
}

func (s *Store) ReclaimExpired(ctx context.Context, now time.Time, missedBeats int) ([]*entity.Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var reclaimed []*entity.Job
	for _, j := range s.jobs {
		if j.Status != constants.JobRunning || !expired(j, now, missedBeats) {
			continue
		}
		j.Status = constants.JobTimeout
		j.WorkerID = ""
		j.LastHeartbeat = nil
		j.Error = &entity.JobError{Kind: constants.ErrorKindTimeout, Message: "heartbeat/timeout exceeded"}
		j.UpdatedAt = now
		reclaimed = append(reclaimed, cloneJob(j))
	}
	return reclaimed, nil
}

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

func (s *Store) ScheduleRetry(ctx context.Context, jobID uuid.UUID, from constants.JobStatus, retryAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	j, ok := s.jobs[jobID]
	if !ok || j.Status != from {
		return common.ErrStaleJob
	}
	j.Status = constants.JobRetry
	t := retryAt
	j.RetryAt = &t
	j.UpdatedAt = time.Now()
	return nil
}

func (s *Store) MarkExhausted(ctx context.Context, jobID uuid.UUID, now time.Time) (*entity.Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	j, ok := s.jobs[jobID]
	if !ok || j.Status != constants.JobTimeout {
		return nil, common.ErrStaleJob
	}
	j.Status = constants.JobFailed
	t := now
	j.FinishedAt = &t
	j.UpdatedAt = now
	return cloneJob(j), nil
}

func (s *Store) ReleaseDueRetries(ctx context.Context, now time.Time) ([]*entity.Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var released []*entity.Job
	for _, j := range s.jobs {
		if j.Status != constants.JobRetry || j.RetryAt == nil || j.RetryAt.After(now) {
			continue
		}
		j.Status = constants.JobPending
		j.RetryAt = nil
		j.WorkerID = ""
		j.StartedAt = nil
		j.LastHeartbeat = nil
		j.UpdatedAt = now
		released = append(released, cloneJob(j))
	}
	return released, nil
}

func (s *Store) AppendLog(ctx context.Context, jobID uuid.UUID, e entity.LogEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	j, ok := s.jobs[jobID]
	if !ok {
		return common.ErrNotFound
	}
	j.Logs = append(j.Logs, e)
	return nil
}

// --- helpers ---

func containsStatus(list []constants.DocumentStatus, s constants.DocumentStatus) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func stepIn(list []constants.Step, s constants.Step) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func cloneDoc(d *entity.Document) *entity.Document {
	cp := *d
	cp.Metadata = cloneMap(d.Metadata)
	cp.Artifacts = cloneMap(d.Artifacts)
	cp.Scores = cloneMap(d.Scores)
	cp.Issues = append([]entity.Issue(nil), d.Issues...)
	cp.StepPlan = append([]constants.Step(nil), d.StepPlan...)
	return &cp
}

func cloneJob(j *entity.Job) *entity.Job {
	cp := *j
	cp.Input = append(json.RawMessage(nil), j.Input...)
	cp.Output = append(json.RawMessage(nil), j.Output...)
	if j.Error != nil {
		e := *j.Error
		cp.Error = &e
	}
	cp.Logs = append([]entity.LogEntry(nil), j.Logs...)
	return &cp
}

func cloneMap[K comparable, V any](m map[K]V) map[K]V {
	if m == nil {
		return nil
	}
	out := make(map[K]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
