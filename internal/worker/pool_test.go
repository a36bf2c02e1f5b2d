package worker

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/accessly/docpipeline/constants"
	"github.com/accessly/docpipeline/internal/entity"
	"github.com/accessly/docpipeline/internal/steps"
)

type stubExecutor struct {
	step constants.Step
	run  func(ctx context.Context, in entity.StepInput) (json.RawMessage, error)
}

func (s *stubExecutor) Step() constants.Step { return s.step }
func (s *stubExecutor) Execute(ctx context.Context, in entity.StepInput) (json.RawMessage, error) {
	return s.run(ctx, in)
}

type fakeDispatcher struct {
	mu      sync.Mutex
	pending []*entity.Job
	results map[uuid.UUID]entity.StepResult
	beats   int
}

func newFakeDispatcher(jobs ...*entity.Job) *fakeDispatcher {
	return &fakeDispatcher{pending: jobs, results: map[uuid.UUID]entity.StepResult{}}
}

func (d *fakeDispatcher) DispatchNext(_ context.Context, workerID string, caps []constants.Step) (*entity.Job, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if len(d.pending) == 0 {
		return nil, nil
	}
	job := d.pending[0]
	d.pending = d.pending[1:]
	job.WorkerID = workerID
	job.Attempts++
	return job, nil
}

func (d *fakeDispatcher) Heartbeat(_ context.Context, jobID uuid.UUID, _ string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.beats++
	return nil
}

func (d *fakeDispatcher) ReportResult(_ context.Context, jobID uuid.UUID, _ string, res entity.StepResult) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.results[jobID] = res
	return nil
}

func (d *fakeDispatcher) result(jobID uuid.UUID) (entity.StepResult, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	res, ok := d.results[jobID]
	return res, ok
}

func testJob(step constants.Step) *entity.Job {
	input, _ := json.Marshal(entity.StepInput{DocumentID: uuid.New(), Step: step})
	return &entity.Job{
		ID:         uuid.New(),
		DocumentID: uuid.New(),
		Step:       step,
		Status:     constants.JobPending,
		Input:      input,
		Timeout:    entity.TimeoutPolicy{ExecutionTimeoutSecs: 30, HeartbeatIntervalSecs: 1},
	}
}

func waitFor(t *testing.T, timeout time.Duration, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met before timeout")
}

func TestPoolExecutesAndReports(t *testing.T) {
	job := testJob(constants.StepTagger)
	dispatcher := newFakeDispatcher(job)

	exec := &stubExecutor{
		step: constants.StepTagger,
		run: func(ctx context.Context, in entity.StepInput) (json.RawMessage, error) {
			return json.RawMessage(`{"tags":[],"heading_count":0,"coverage":0}`), nil
		},
	}
	pool := NewPool(dispatcher, steps.NewRegistry(exec), nil,
		WithWorkers(1),
		WithPollInterval(10*time.Millisecond),
	)
	pool.Start()
	defer shutdown(pool)

	waitFor(t, 2*time.Second, func() bool {
		_, ok := dispatcher.result(job.ID)
		return ok
	})
	res, _ := dispatcher.result(job.ID)
	assert.True(t, res.Completed)
	assert.JSONEq(t, `{"tags":[],"heading_count":0,"coverage":0}`, string(res.Output))
}

func TestPoolReportsExecutionFailure(t *testing.T) {
	job := testJob(constants.StepTagger)
	dispatcher := newFakeDispatcher(job)

	exec := &stubExecutor{
		step: constants.StepTagger,
		run: func(ctx context.Context, in entity.StepInput) (json.RawMessage, error) {
			return nil, assert.AnError
		},
	}
	pool := NewPool(dispatcher, steps.NewRegistry(exec), nil,
		WithWorkers(1),
		WithPollInterval(10*time.Millisecond),
	)
	pool.Start()
	defer shutdown(pool)

	waitFor(t, 2*time.Second, func() bool {
		_, ok := dispatcher.result(job.ID)
		return ok
	})
	res, _ := dispatcher.result(job.ID)
	assert.False(t, res.Completed)
	require.NotNil(t, res.Error)
	assert.Equal(t, constants.ErrorKindStepExecution, res.Error.Kind)
}

func TestPoolReportsTimeoutKind(t *testing.T) {
	job := testJob(constants.StepTagger)
	job.Timeout.ExecutionTimeoutSecs = 1
	dispatcher := newFakeDispatcher(job)

	exec := &stubExecutor{
		step: constants.StepTagger,
		run: func(ctx context.Context, in entity.StepInput) (json.RawMessage, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		},
	}
	pool := NewPool(dispatcher, steps.NewRegistry(exec), nil,
		WithWorkers(1),
		WithPollInterval(10*time.Millisecond),
	)
	pool.Start()
	defer shutdown(pool)

	waitFor(t, 5*time.Second, func() bool {
		_, ok := dispatcher.result(job.ID)
		return ok
	})
	res, _ := dispatcher.result(job.ID)
	assert.False(t, res.Completed)
	require.NotNil(t, res.Error)
	assert.Equal(t, constants.ErrorKindTimeout, res.Error.Kind)
}

func TestPoolHeartbeatsWhileRunning(t *testing.T) {
	job := testJob(constants.StepTagger)
	release := make(chan struct{})
	dispatcher := newFakeDispatcher(job)

	exec := &stubExecutor{
		step: constants.StepTagger,
		run: func(ctx context.Context, in entity.StepInput) (json.RawMessage, error) {
			<-release
			return json.RawMessage(`{}`), nil
		},
	}
	pool := NewPool(dispatcher, steps.NewRegistry(exec), nil,
		WithWorkers(1),
		WithPollInterval(10*time.Millisecond),
	)
	pool.Start()
	defer shutdown(pool)

	waitFor(t, 5*time.Second, func() bool {
		dispatcher.mu.Lock()
		defer dispatcher.mu.Unlock()
		return dispatcher.beats >= 2
	})
	close(release)

	waitFor(t, 2*time.Second, func() bool {
		_, ok := dispatcher.result(job.ID)
		return ok
	})
}

func shutdown(p *Pool) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	p.Shutdown(ctx)
}
