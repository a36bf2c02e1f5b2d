package worker

import (
	"context"
	"fmt"
	"sync"
	"time"

	"log/slog"

	"github.com/google/uuid"

	"github.com/accessly/docpipeline/constants"
	"github.com/accessly/docpipeline/internal/entity"
	"github.com/accessly/docpipeline/internal/steps"
)

// Dispatcher is the slice of the scheduler a worker pool needs. In-process
// deployments hand the pool a *pipeline.Scheduler directly; remote workers
// satisfy it with a gRPC client wrapper.
type Dispatcher interface {
	DispatchNext(ctx context.Context, workerID string, caps []constants.Step) (*entity.Job, error)
	Heartbeat(ctx context.Context, jobID uuid.UUID, workerID string) error
	ReportResult(ctx context.Context, jobID uuid.UUID, workerID string, res entity.StepResult) error
}

// Pool runs a fixed set of workers that poll the dispatcher for jobs,
// execute the matching step, heartbeat while running, and report results.
type Pool struct {
	dispatcher Dispatcher
	registry   steps.Registry
	logger     *slog.Logger

	workers      int
	pollInterval time.Duration
	idPrefix     string

	wg   sync.WaitGroup
	once sync.Once
	stop chan struct{}
}

type Option func(*Pool)

func WithWorkers(n int) Option {
	return func(p *Pool) {
		if n > 0 {
			p.workers = n
		}
	}
}

func WithPollInterval(d time.Duration) Option {
	return func(p *Pool) {
		if d > 0 {
			p.pollInterval = d
		}
	}
}

func WithIDPrefix(prefix string) Option {
	return func(p *Pool) {
		if prefix != "" {
			p.idPrefix = prefix
		}
	}
}

func NewPool(dispatcher Dispatcher, registry steps.Registry, logger *slog.Logger, opts ...Option) *Pool {
	if logger == nil {
		logger = slog.Default()
	}
	p := &Pool{
		dispatcher:   dispatcher,
		registry:     registry,
		logger:       logger,
		workers:      4,
		pollInterval: 2 * time.Second,
		idPrefix:     "worker",
		stop:         make(chan struct{}),
	}
	for _, o := range opts {
		o(p)
	}
	return p
}

// Start launches the workers. It returns immediately; call Shutdown to
// drain. Each worker advertises only the steps its registry can execute.
func (p *Pool) Start() {
	p.once.Do(func() {
		caps := p.registry.Steps()
		for i := 0; i < p.workers; i++ {
			workerID := fmt.Sprintf("%s-%d", p.idPrefix, i+1)
			p.wg.Add(1)
			go func() {
				defer p.wg.Done()
				p.logger.Info("worker started", "worker_id", workerID, "capabilities", caps)
				p.run(workerID, caps)
				p.logger.Info("worker stopped", "worker_id", workerID)
			}()
		}
	})
}

func (p *Pool) run(workerID string, caps []constants.Step) {
	ticker := time.NewTicker(p.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-p.stop:
			return
		case <-ticker.C:
			p.poll(workerID, caps)
		}
	}
}

// poll claims and executes jobs until the queue runs dry, then returns to
// the ticker. Draining between ticks keeps a busy queue from being paced
// by the poll interval.
func (p *Pool) poll(workerID string, caps []constants.Step) {
	for {
		select {
		case <-p.stop:
			return
		default:
		}

		job, err := p.dispatcher.DispatchNext(context.Background(), workerID, caps)
		if err != nil {
			p.logger.Error("dispatch failed", "worker_id", workerID, "error", err)
			return
		}
		if job == nil {
			return
		}
		p.execute(workerID, job)
	}
}

func (p *Pool) execute(workerID string, job *entity.Job) {
	exec, ok := p.registry[job.Step]
	if !ok {
		// Should not happen: caps were derived from the registry.
		p.report(workerID, job, entity.StepResult{
			Error: &entity.JobError{Kind: constants.ErrorKindStepExecution, Message: fmt.Sprintf("no executor for step %s", job.Step)},
		})
		return
	}

	in, err := entity.DecodeStepInput(job.Input)
	if err != nil {
		p.report(workerID, job, entity.StepResult{
			Error: &entity.JobError{Kind: constants.ErrorKindStepExecution, Message: fmt.Sprintf("decode input: %v", err)},
		})
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	if d := job.Timeout.ExecutionTimeout(); d > 0 {
		ctx, cancel = context.WithTimeout(context.Background(), d)
	}
	defer cancel()

	stopBeats := p.heartbeat(ctx, workerID, job)
	p.logger.Info("executing step", "worker_id", workerID, "job_id", job.ID, "doc_id", job.DocumentID, "step", job.Step, "attempt", job.Attempts)

	output, execErr := exec.Execute(ctx, in)
	stopBeats()

	if execErr != nil {
		kind := constants.ErrorKindStepExecution
		if ctx.Err() == context.DeadlineExceeded {
			kind = constants.ErrorKindTimeout
		}
		p.logger.Error("step failed", "worker_id", workerID, "job_id", job.ID, "step", job.Step, "error", execErr)
		p.report(workerID, job, entity.StepResult{
			Error: &entity.JobError{Kind: kind, Message: execErr.Error()},
		})
		return
	}

	p.logger.Info("step completed", "worker_id", workerID, "job_id", job.ID, "step", job.Step)
	p.report(workerID, job, entity.StepResult{Completed: true, Output: output})
}

// heartbeat emits beats at the job's configured interval until the
// returned stop function is called or ctx expires. A rejected beat means
// the monitor reclaimed the job; the execution context is left to finish
// and the stale result is rejected at report time.
func (p *Pool) heartbeat(ctx context.Context, workerID string, job *entity.Job) func() {
	interval := job.Timeout.HeartbeatInterval()
	if interval <= 0 {
		return func() {}
	}

	done := make(chan struct{})
	var once sync.Once
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ctx.Done():
				return
			case <-ticker.C:
				if err := p.dispatcher.Heartbeat(ctx, job.ID, workerID); err != nil {
					p.logger.Warn("heartbeat rejected", "worker_id", workerID, "job_id", job.ID, "error", err)
					return
				}
			}
		}
	}()
	return func() { once.Do(func() { close(done) }) }
}

func (p *Pool) report(workerID string, job *entity.Job, res entity.StepResult) {
	// Fresh context: the execution context may already be expired and the
	// result must still reach the scheduler.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := p.dispatcher.ReportResult(ctx, job.ID, workerID, res); err != nil {
		p.logger.Warn("result rejected", "worker_id", workerID, "job_id", job.ID, "error", err)
	}
}

// Shutdown stops polling and waits for in-flight jobs to finish or ctx to
// expire.
func (p *Pool) Shutdown(ctx context.Context) {
	close(p.stop)

	done := make(chan struct{})
	go func() { defer close(done); p.wg.Wait() }()

	select {
	case <-ctx.Done():
		p.logger.Warn("shutdown interrupted by context")
	case <-done:
		p.logger.Info("workers drained, shutdown complete")
	}
}
