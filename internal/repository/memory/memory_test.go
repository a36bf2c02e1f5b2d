package memory

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/accessly/docpipeline/constants"
	"github.com/accessly/docpipeline/internal/common"
	"github.com/accessly/docpipeline/internal/entity"
)

func seedDoc(t *testing.T, s *Store) *entity.Document {
	t.Helper()
	doc, err := s.Documents().Create(context.Background(), &entity.Document{
		OwnerID:  "owner-1",
		Status:   constants.DocumentPending,
		Filename: "a.pdf",
		StepPlan: []constants.Step{constants.StepTagger},
	})
	require.NoError(t, err)
	return doc
}

func seedJob(t *testing.T, s *Store, docID uuid.UUID, step constants.Step, priority int) *entity.Job {
	t.Helper()
	job, err := s.Jobs().Create(context.Background(), &entity.Job{
		DocumentID:  docID,
		Step:        step,
		Priority:    priority,
		MaxAttempts: 3,
		Retry:       entity.RetryPolicy{Enabled: true, BackoffMultiplier: 2, InitialDelaySecs: 1, MaxDelaySecs: 10},
		Timeout:     entity.TimeoutPolicy{ExecutionTimeoutSecs: 60, HeartbeatIntervalSecs: 5},
	})
	require.NoError(t, err)
	return job
}

func TestDuplicateInFlightJobRejected(t *testing.T) {
	s := NewStore()
	doc := seedDoc(t, s)
	seedJob(t, s, doc.ID, constants.StepTagger, 10)

	_, err := s.Jobs().Create(context.Background(), &entity.Job{
		DocumentID: doc.ID,
		Step:       constants.StepTagger,
	})
	assert.ErrorIs(t, err, common.ErrDuplicateJob)

	// A different step for the same document is fine.
	_, err = s.Jobs().Create(context.Background(), &entity.Job{
		DocumentID: doc.ID,
		Step:       constants.StepValidator,
	})
	assert.NoError(t, err)
}

func TestClaimNextHonorsCapabilities(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	doc := seedDoc(t, s)
	seedJob(t, s, doc.ID, constants.StepOCR, 10)

	job, err := s.Jobs().ClaimNext(ctx, []constants.Step{constants.StepTagger}, "w1", time.Now())
	require.NoError(t, err)
	assert.Nil(t, job)

	job, err = s.Jobs().ClaimNext(ctx, []constants.Step{constants.StepOCR}, "w1", time.Now())
	require.NoError(t, err)
	require.NotNil(t, job)
	assert.Equal(t, constants.JobRunning, job.Status)
	assert.Equal(t, "w1", job.WorkerID)
	assert.Equal(t, 1, job.Attempts)
	require.NotNil(t, job.StartedAt)
	require.NotNil(t, job.LastHeartbeat)
}

func TestClaimNextPriorityThenFIFO(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	d1 := seedDoc(t, s)
	d2 := seedDoc(t, s)
	d3 := seedDoc(t, s)

	seedJob(t, s, d1.ID, constants.StepTagger, 10)
	time.Sleep(2 * time.Millisecond)
	seedJob(t, s, d2.ID, constants.StepTagger, 50)
	time.Sleep(2 * time.Millisecond)
	seedJob(t, s, d3.ID, constants.StepTagger, 50)

	first, err := s.Jobs().ClaimNext(ctx, constants.PipelineOrder, "w1", time.Now())
	require.NoError(t, err)
	require.NotNil(t, first)
	assert.Equal(t, d2.ID, first.DocumentID)

	second, err := s.Jobs().ClaimNext(ctx, constants.PipelineOrder, "w1", time.Now())
	require.NoError(t, err)
	require.NotNil(t, second)
	assert.Equal(t, d3.ID, second.DocumentID)

	third, err := s.Jobs().ClaimNext(ctx, constants.PipelineOrder, "w1", time.Now())
	require.NoError(t, err)
	require.NotNil(t, third)
	assert.Equal(t, d1.ID, third.DocumentID)
}

func TestCompleteGuardedByOwnership(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	doc := seedDoc(t, s)
	seedJob(t, s, doc.ID, constants.StepTagger, 10)

	job, err := s.Jobs().ClaimNext(ctx, constants.PipelineOrder, "w1", time.Now())
	require.NoError(t, err)
	require.NotNil(t, job)

	_, err = s.Jobs().Complete(ctx, job.ID, "intruder", nil, time.Now())
	assert.ErrorIs(t, err, common.ErrStaleJob)

	done, err := s.Jobs().Complete(ctx, job.ID, "w1", []byte(`{}`), time.Now())
	require.NoError(t, err)
	assert.Equal(t, constants.JobCompleted, done.Status)

	// Completing twice is stale: the job is no longer RUNNING.
	_, err = s.Jobs().Complete(ctx, job.ID, "w1", nil, time.Now())
	assert.ErrorIs(t, err, common.ErrStaleJob)
}

func TestReclaimExpiredUsesExecutionTimeout(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	doc := seedDoc(t, s)
	seedJob(t, s, doc.ID, constants.StepTagger, 10)

	start := time.Now()
	job, err := s.Jobs().ClaimNext(ctx, constants.PipelineOrder, "w1", start)
	require.NoError(t, err)
	require.NotNil(t, job)

	// Keep heartbeats fresh but blow the 60s execution budget.
	later := start.Add(61 * time.Second)
	require.NoError(t, s.Jobs().Heartbeat(ctx, job.ID, "w1", later))

	reclaimed, err := s.Jobs().ReclaimExpired(ctx, later, 3)
	require.NoError(t, err)
	require.Len(t, reclaimed, 1)
	assert.Equal(t, constants.JobTimeout, reclaimed[0].Status)
	assert.Empty(t, reclaimed[0].WorkerID)
}

func TestReleaseDueRetriesClearsClaimFields(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	doc := seedDoc(t, s)
	seedJob(t, s, doc.ID, constants.StepTagger, 10)

	now := time.Now()
	job, err := s.Jobs().ClaimNext(ctx, constants.PipelineOrder, "w1", now)
	require.NoError(t, err)
	failed, err := s.Jobs().Fail(ctx, job.ID, "w1", entity.JobError{Kind: constants.ErrorKindStepExecution, Message: "boom"}, now)
	require.NoError(t, err)

	retryAt := now.Add(time.Minute)
	require.NoError(t, s.Jobs().ScheduleRetry(ctx, failed.ID, failed.Status, retryAt))

	// Not due yet.
	released, err := s.Jobs().ReleaseDueRetries(ctx, now.Add(30*time.Second))
	require.NoError(t, err)
	assert.Empty(t, released)

	released, err = s.Jobs().ReleaseDueRetries(ctx, retryAt.Add(time.Second))
	require.NoError(t, err)
	require.Len(t, released, 1)
	got := released[0]
	assert.Equal(t, constants.JobPending, got.Status)
	assert.Empty(t, got.WorkerID)
	assert.Nil(t, got.RetryAt)
	assert.Nil(t, got.StartedAt)
	assert.Nil(t, got.LastHeartbeat)
}

func TestSetTerminalIsFinal(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	doc := seedDoc(t, s)

	now := time.Now()
	require.NoError(t, s.Documents().SetTerminal(ctx, doc.ID, constants.DocumentFailed, "step exhausted", now))

	err := s.Documents().SetTerminal(ctx, doc.ID, constants.DocumentCompleted, "", now)
	assert.ErrorIs(t, err, common.ErrDocumentTerminal)

	err = s.Documents().SetCancelled(ctx, doc.ID)
	assert.ErrorIs(t, err, common.ErrDocumentTerminal)
}

func TestMergeOutputsLastWriteWins(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	doc := seedDoc(t, s)

	require.NoError(t, s.Documents().MergeOutputs(ctx, doc.ID, entity.DocumentPatch{
		Artifacts: map[string]string{"extracted_text": "/v1.txt"},
		Scores:    map[string]float64{"ocr_confidence": 0.4},
	}))
	require.NoError(t, s.Documents().MergeOutputs(ctx, doc.ID, entity.DocumentPatch{
		Artifacts: map[string]string{"extracted_text": "/v2.txt"},
		Scores:    map[string]float64{"tag_coverage": 0.7},
	}))

	got, err := s.Documents().Get(ctx, doc.ID)
	require.NoError(t, err)
	assert.Equal(t, "/v2.txt", got.Artifacts["extracted_text"])
	assert.InDelta(t, 0.4, got.Scores["ocr_confidence"], 1e-9)
	assert.InDelta(t, 0.7, got.Scores["tag_coverage"], 1e-9)
}
