package pipeline

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/accessly/docpipeline/constants"
	"github.com/accessly/docpipeline/internal/entity"
	"github.com/accessly/docpipeline/internal/notify"
	"github.com/accessly/docpipeline/internal/repository/memory"
)

type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

type captureNotifier struct {
	mu       sync.Mutex
	payloads []notify.Payload
}

func (n *captureNotifier) Notify(_ context.Context, p notify.Payload) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.payloads = append(n.payloads, p)
	return nil
}

func (n *captureNotifier) sent() []notify.Payload {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]notify.Payload(nil), n.payloads...)
}

type rig struct {
	store    *memory.Store
	notifier *captureNotifier
	clock    *fakeClock
	router   *Router
	retry    *RetryController
	sched    *Scheduler
	monitor  *Monitor
}

func newRig(t *testing.T) *rig {
	t.Helper()
	store := memory.NewStore()
	clock := newFakeClock()
	notifier := &captureNotifier{}
	defaults := JobDefaults{
		MaxAttempts: 3,
		Priority:    constants.PriorityDefault,
		Retry: entity.RetryPolicy{
			Enabled:           true,
			BackoffMultiplier: 2,
			InitialDelaySecs:  5,
			MaxDelaySecs:      300,
		},
		Timeout: entity.TimeoutPolicy{
			ExecutionTimeoutSecs:  600,
			HeartbeatIntervalSecs: 15,
		},
	}
	router := NewRouter(store.Documents(), store.Jobs(), notifier, defaults, nil).WithClock(clock.Now)
	retry := NewRetryController(store.Jobs(), router, time.Second, 0, nil).WithClock(clock.Now)
	sched := NewScheduler(store.Jobs(), router, retry, nil).WithClock(clock.Now)
	monitor := NewMonitor(store.Jobs(), retry, time.Second, 3, nil).WithClock(clock.Now)
	return &rig{
		store:    store,
		notifier: notifier,
		clock:    clock,
		router:   router,
		retry:    retry,
		sched:    sched,
		monitor:  monitor,
	}
}

func mustJSON(t *testing.T, v any) json.RawMessage {
	t.Helper()
	raw, err := json.Marshal(v)
	require.NoError(t, err)
	return raw
}

func stepOutput(t *testing.T, step constants.Step) json.RawMessage {
	t.Helper()
	switch step {
	case constants.StepStructure:
		return mustJSON(t, entity.StructureOutput{PageCount: 4, BornDigital: true, ArtifactPath: "/tmp/structure.json"})
	case constants.StepOCR:
		return mustJSON(t, entity.OCROutput{Text: "hello", Confidence: 0.92, Pages: 4, Engine: "tesseract", ArtifactPath: "/tmp/text.txt"})
	case constants.StepTagger:
		return mustJSON(t, entity.TaggerOutput{
			Tags:         []entity.Tag{{Kind: "heading", Level: 1, Text: "INTRO"}, {Kind: "paragraph", Text: "hello"}},
			HeadingCount: 1,
			Coverage:     0.9,
		})
	case constants.StepExporter:
		return mustJSON(t, entity.ExporterOutput{ArtifactPath: "/tmp/report.xlsx", Format: "XLSX", SizeBytes: 2048})
	case constants.StepValidator:
		return mustJSON(t, entity.ValidatorOutput{Valid: true, Score: 1})
	case constants.StepNotifier:
		return mustJSON(t, entity.NotifierOutput{Delivered: true})
	}
	t.Fatalf("no output fixture for step %s", step)
	return nil
}

// Happy path: a born-digital PDF with export and notify opted out runs
// structure, tagger, validator in order; each job completes on the first
// attempt and the document finishes COMPLETED.
func TestPipelineHappyPath(t *testing.T) {
	r := newRig(t)
	ctx := context.Background()

	doc, err := r.router.OnIntake(ctx, IntakeRequest{
		OwnerID:  "owner-1",
		Filename: "report.pdf",
		Metadata: map[string]any{"born_digital": true, "export": false, "notify": false},
	})
	require.NoError(t, err)
	assert.Equal(t, constants.DocumentProcessing, doc.Status)
	require.Equal(t, []constants.Step{constants.StepStructure, constants.StepTagger, constants.StepValidator}, doc.StepPlan)

	for _, want := range doc.StepPlan {
		job, err := r.sched.DispatchNext(ctx, "w1", nil)
		require.NoError(t, err)
		require.NotNil(t, job, "expected a pending job for step %s", want)
		assert.Equal(t, want, job.Step)
		assert.Equal(t, constants.JobRunning, job.Status)
		assert.Equal(t, 1, job.Attempts)

		require.NoError(t, r.sched.ReportResult(ctx, job.ID, "w1", entity.StepResult{
			Completed: true,
			Output:    stepOutput(t, want),
		}))
	}

	// Nothing left to dispatch.
	job, err := r.sched.DispatchNext(ctx, "w1", nil)
	require.NoError(t, err)
	assert.Nil(t, job)

	final, err := r.store.Documents().Get(ctx, doc.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.DocumentCompleted, final.Status)
	assert.NotNil(t, final.CompletedAt)
	assert.Equal(t, "/tmp/structure.json", final.Artifacts["structure_summary"])
	assert.InDelta(t, 0.9, final.Scores["tag_coverage"], 1e-9)
	assert.InDelta(t, 1.0, final.Scores["validation_score"], 1e-9)

	jobs, err := r.store.Jobs().ListByDocument(ctx, doc.ID)
	require.NoError(t, err)
	require.Len(t, jobs, 3)
	for _, j := range jobs {
		assert.Equal(t, constants.JobCompleted, j.Status)
		assert.Equal(t, 1, j.Attempts)
	}

	// Notifier step was out of plan, so the router notifies directly.
	sent := r.notifier.sent()
	require.Len(t, sent, 1)
	assert.Equal(t, constants.DocumentCompleted, sent[0].Status)
	assert.Equal(t, doc.ID, sent[0].DocID)
}

// A validator that fails every attempt exhausts its three tries on the
// same job row and the document lands in VALIDATION_FAILED.
func TestValidatorExhaustsRetries(t *testing.T) {
	r := newRig(t)
	ctx := context.Background()

	doc, err := r.router.OnIntake(ctx, IntakeRequest{
		OwnerID:  "owner-1",
		Filename: "page.html",
		Metadata: map[string]any{"export": false, "notify": false},
	})
	require.NoError(t, err)
	require.Equal(t, []constants.Step{constants.StepTagger, constants.StepValidator}, doc.StepPlan)

	job, err := r.sched.DispatchNext(ctx, "w1", nil)
	require.NoError(t, err)
	require.Equal(t, constants.StepTagger, job.Step)
	require.NoError(t, r.sched.ReportResult(ctx, job.ID, "w1", entity.StepResult{
		Completed: true,
		Output:    stepOutput(t, constants.StepTagger),
	}))

	lastJobID := job.ID
	for attempt := 1; attempt <= 3; attempt++ {
		job, err = r.sched.DispatchNext(ctx, "w1", nil)
		require.NoError(t, err)
		require.NotNil(t, job, "attempt %d should be dispatchable", attempt)
		require.Equal(t, constants.StepValidator, job.Step)
		assert.Equal(t, attempt, job.Attempts)
		if attempt > 1 {
			assert.Equal(t, lastJobID, job.ID, "retries must reuse the same job row")
		}
		lastJobID = job.ID

		require.NoError(t, r.sched.ReportResult(ctx, job.ID, "w1", entity.StepResult{
			Error: &entity.JobError{Kind: constants.ErrorKindStepExecution, Message: "schema violation"},
		}))

		if attempt < 3 {
			stored, err := r.store.Jobs().Get(ctx, job.ID)
			require.NoError(t, err)
			assert.Equal(t, constants.JobRetry, stored.Status)
			require.NotNil(t, stored.RetryAt)

			r.clock.Advance(stored.RetryAt.Sub(r.clock.Now()) + time.Second)
			released, err := r.retry.Sweep(ctx)
			require.NoError(t, err)
			assert.Equal(t, 1, released)
		}
	}

	stored, err := r.store.Jobs().Get(ctx, lastJobID)
	require.NoError(t, err)
	assert.Equal(t, constants.JobFailed, stored.Status)
	assert.Equal(t, 3, stored.Attempts)

	final, err := r.store.Documents().Get(ctx, doc.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.DocumentValidationFailed, final.Status)
	assert.Equal(t, "schema violation", final.ErrorMessage)

	sent := r.notifier.sent()
	require.Len(t, sent, 1)
	assert.Equal(t, constants.DocumentValidationFailed, sent[0].Status)
	assert.Equal(t, "schema violation", sent[0].ErrorMessage)
}

// A worker that stops heartbeating loses its claim after three missed
// beats; the job goes TIMEOUT -> RETRY -> PENDING and a second worker
// picks up the next attempt.
func TestHeartbeatTimeoutReclaim(t *testing.T) {
	r := newRig(t)
	ctx := context.Background()

	doc, err := r.router.OnIntake(ctx, IntakeRequest{
		OwnerID:  "owner-1",
		Filename: "scan.pdf",
	})
	require.NoError(t, err)

	job, err := r.sched.DispatchNext(ctx, "w1", nil)
	require.NoError(t, err)
	require.Equal(t, constants.StepStructure, job.Step)
	require.Equal(t, 1, job.Attempts)

	// One beat arrives, then the worker goes silent.
	r.clock.Advance(15 * time.Second)
	require.NoError(t, r.sched.Heartbeat(ctx, job.ID, "w1"))

	// Under the threshold nothing is reclaimed.
	r.clock.Advance(44 * time.Second)
	n, err := r.monitor.Sweep(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	// Past three missed 15s beats the claim expires.
	r.clock.Advance(2 * time.Second)
	n, err = r.monitor.Sweep(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	// Reclaiming is idempotent.
	n, err = r.monitor.Sweep(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	stored, err := r.store.Jobs().Get(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.JobRetry, stored.Status)
	assert.Empty(t, stored.WorkerID)
	require.NotNil(t, stored.Error)
	assert.Equal(t, constants.ErrorKindTimeout, stored.Error.Kind)

	r.clock.Advance(stored.RetryAt.Sub(r.clock.Now()) + time.Second)
	released, err := r.retry.Sweep(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, released)

	job2, err := r.sched.DispatchNext(ctx, "w2", nil)
	require.NoError(t, err)
	require.NotNil(t, job2)
	assert.Equal(t, job.ID, job2.ID)
	assert.Equal(t, 2, job2.Attempts)
	assert.Equal(t, "w2", job2.WorkerID)

	// Document is untouched by the reclaim.
	d, err := r.store.Documents().Get(ctx, doc.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.DocumentProcessing, d.Status)
}

// Two workers racing for a single pending job: exactly one wins, the
// other polls empty.
func TestConcurrentDispatchSingleWinner(t *testing.T) {
	r := newRig(t)
	ctx := context.Background()

	_, err := r.router.OnIntake(ctx, IntakeRequest{OwnerID: "owner-1", Filename: "a.pdf"})
	require.NoError(t, err)

	type result struct {
		job *entity.Job
		err error
	}
	results := make(chan result, 2)
	var wg sync.WaitGroup
	for _, w := range []string{"w1", "w2"} {
		wg.Add(1)
		go func(workerID string) {
			defer wg.Done()
			j, err := r.sched.DispatchNext(ctx, workerID, nil)
			results <- result{j, err}
		}(w)
	}
	wg.Wait()
	close(results)

	var won, empty int
	for res := range results {
		require.NoError(t, res.err)
		if res.job != nil {
			won++
			assert.Equal(t, 1, res.job.Attempts)
		} else {
			empty++
		}
	}
	assert.Equal(t, 1, won)
	assert.Equal(t, 1, empty)
}

// A reclaimed worker's late report is rejected as stale and must not
// disturb the new claim holder.
func TestStaleResultRejected(t *testing.T) {
	r := newRig(t)
	ctx := context.Background()

	doc, err := r.router.OnIntake(ctx, IntakeRequest{
		OwnerID:  "owner-1",
		Filename: "page.html",
		Metadata: map[string]any{"export": false, "validate": false, "notify": false},
	})
	require.NoError(t, err)
	require.Equal(t, []constants.Step{constants.StepTagger}, doc.StepPlan)

	job, err := r.sched.DispatchNext(ctx, "w1", nil)
	require.NoError(t, err)
	require.NotNil(t, job)

	// w1 goes silent past the heartbeat threshold and the monitor
	// reclaims; the retry sweep re-queues and w2 claims.
	r.clock.Advance(46 * time.Second)
	n, err := r.monitor.Sweep(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, n)

	stored, err := r.store.Jobs().Get(ctx, job.ID)
	require.NoError(t, err)
	r.clock.Advance(stored.RetryAt.Sub(r.clock.Now()) + time.Second)
	_, err = r.retry.Sweep(ctx)
	require.NoError(t, err)

	job2, err := r.sched.DispatchNext(ctx, "w2", nil)
	require.NoError(t, err)
	require.NotNil(t, job2)
	require.Equal(t, "w2", job2.WorkerID)

	// w1 wakes up and reports its old attempt.
	err = r.sched.ReportResult(ctx, job.ID, "w1", entity.StepResult{
		Completed: true,
		Output:    stepOutput(t, constants.StepTagger),
	})
	require.Error(t, err)
	assert.ErrorContains(t, err, "stale")

	// w2's claim is untouched and its report lands.
	afterStale, err := r.store.Jobs().Get(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.JobRunning, afterStale.Status)
	assert.Equal(t, "w2", afterStale.WorkerID)

	require.NoError(t, r.sched.ReportResult(ctx, job.ID, "w2", entity.StepResult{
		Completed: true,
		Output:    stepOutput(t, constants.StepTagger),
	}))
	final, err := r.store.Documents().Get(ctx, doc.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.DocumentCompleted, final.Status)
}

// Cancelling a document discards the running job's result on report and
// creates no further jobs.
func TestCancelDiscardsInFlightResult(t *testing.T) {
	r := newRig(t)
	ctx := context.Background()

	doc, err := r.router.OnIntake(ctx, IntakeRequest{OwnerID: "owner-1", Filename: "a.pdf"})
	require.NoError(t, err)

	job, err := r.sched.DispatchNext(ctx, "w1", nil)
	require.NoError(t, err)
	require.NotNil(t, job)

	require.NoError(t, r.router.Cancel(ctx, doc.ID))

	require.NoError(t, r.sched.ReportResult(ctx, job.ID, "w1", entity.StepResult{
		Completed: true,
		Output:    stepOutput(t, job.Step),
	}))

	// The job itself finished, but no successor was created and the
	// document aggregate took no merge.
	jobs, err := r.store.Jobs().ListByDocument(ctx, doc.ID)
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, constants.JobCompleted, jobs[0].Status)

	d, err := r.store.Documents().Get(ctx, doc.ID)
	require.NoError(t, err)
	assert.True(t, d.Cancelled)
	assert.Empty(t, d.Artifacts)
}

// Higher priority dispatches first; FIFO breaks ties.
func TestDispatchOrder(t *testing.T) {
	r := newRig(t)
	ctx := context.Background()

	low, err := r.router.OnIntake(ctx, IntakeRequest{OwnerID: "o", Filename: "low.pdf", Priority: 5})
	require.NoError(t, err)
	mid1, err := r.router.OnIntake(ctx, IntakeRequest{OwnerID: "o", Filename: "mid1.pdf", Priority: 50})
	require.NoError(t, err)
	time.Sleep(2 * time.Millisecond) // distinct creation times for the FIFO tiebreak
	mid2, err := r.router.OnIntake(ctx, IntakeRequest{OwnerID: "o", Filename: "mid2.pdf", Priority: 50})
	require.NoError(t, err)

	var got []string
	for i := 0; i < 3; i++ {
		j, err := r.sched.DispatchNext(ctx, "w1", nil)
		require.NoError(t, err)
		require.NotNil(t, j)
		got = append(got, j.DocumentID.String())
	}
	assert.Equal(t, []string{mid1.ID.String(), mid2.ID.String(), low.ID.String()}, got)
}

// Intake rejects requests it cannot plan.
func TestIntakeValidation(t *testing.T) {
	r := newRig(t)
	ctx := context.Background()

	cases := []struct {
		name string
		req  IntakeRequest
	}{
		{"missing owner", IntakeRequest{Filename: "a.pdf"}},
		{"missing filename", IntakeRequest{OwnerID: "o"}},
		{"unsupported extension", IntakeRequest{OwnerID: "o", Filename: "music.mp3"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := r.router.OnIntake(ctx, tc.req)
			assert.Error(t, err)
		})
	}
}
