package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/accessly/docpipeline/constants"
	"github.com/accessly/docpipeline/internal/common"
	"github.com/accessly/docpipeline/internal/entity"
	"github.com/accessly/docpipeline/internal/notify"
	"github.com/accessly/docpipeline/internal/repository"
)

// JobDefaults are the policies stamped onto every job at creation.
type JobDefaults struct {
	MaxAttempts int
	Priority    int
	Retry       entity.RetryPolicy
	Timeout     entity.TimeoutPolicy
}

// IntakeRequest is the payload of the intake operation.
type IntakeRequest struct {
	OwnerID     string
	Filename    string
	SourcePath  string
	SourceURL   string
	ContentType string
	Metadata    map[string]any
	Priority    int // 0 means default
}

// Router is the per-document state machine. It is the sole writer of
// document status: it advances documents on job completion, finalizes
// them on terminal failure, and is the only component that creates jobs.
type Router struct {
	docs     repository.DocumentRepository
	jobs     repository.JobRepository
	notifier notify.Notifier
	defaults JobDefaults
	now      Clock
	logger   *slog.Logger
}

func NewRouter(docs repository.DocumentRepository, jobs repository.JobRepository, notifier notify.Notifier, defaults JobDefaults, logger *slog.Logger) *Router {
	if notifier == nil {
		notifier = notify.Noop{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Router{
		docs:     docs,
		jobs:     jobs,
		notifier: notifier,
		defaults: defaults,
		now:      systemClock,
		logger:   logger,
	}
}

// WithClock overrides the router clock; used by tests.
func (r *Router) WithClock(c Clock) *Router {
	r.now = c
	return r
}

// OnIntake validates the request, creates the document with its fixed
// step plan, enqueues the first job and moves the document to PROCESSING.
func (r *Router) OnIntake(ctx context.Context, req IntakeRequest) (*entity.Document, error) {
	if strings.TrimSpace(req.OwnerID) == "" {
		return nil, fmt.Errorf("%w: owner_id is required", common.ErrInvalidDocument)
	}
	if strings.TrimSpace(req.Filename) == "" {
		return nil, fmt.Errorf("%w: filename is required", common.ErrInvalidDocument)
	}
	contentType := req.ContentType
	if contentType == "" {
		ext := ""
		if i := strings.LastIndexByte(req.Filename, '.'); i >= 0 {
			ext = req.Filename[i+1:]
		}
		contentType = constants.ContentTypeForExt(ext)
	}
	if contentType == "" {
		return nil, fmt.Errorf("%w: unsupported file type %q", common.ErrInvalidDocument, req.Filename)
	}

	plan := ComputePlan(contentType, req.Metadata)
	doc, err := r.docs.Create(ctx, &entity.Document{
		OwnerID:     req.OwnerID,
		Status:      constants.DocumentPending,
		Filename:    req.Filename,
		SourcePath:  req.SourcePath,
		SourceURL:   req.SourceURL,
		ContentType: contentType,
		Metadata:    req.Metadata,
		StepPlan:    plan,
	})
	if err != nil {
		return nil, err
	}

	priority := req.Priority
	if priority == 0 {
		priority = r.defaults.Priority
	}
	if _, err := r.createJob(ctx, doc, plan[0], priority, nil); err != nil {
		return nil, err
	}
	if err := r.docs.SetProcessing(ctx, doc.ID); err != nil {
		return nil, err
	}
	doc.Status = constants.DocumentProcessing
	r.logger.Info("document intake", "doc_id", doc.ID, "owner_id", doc.OwnerID, "plan", plan, "priority", priority)
	return doc, nil
}

// OnJobCompleted merges the step output into the document and either
// enqueues the next planned step or finalizes the document as COMPLETED.
// The caller guarantees job.Status == COMPLETED; the single winning
// Complete transition upstream means this runs at most once per attempt.
func (r *Router) OnJobCompleted(ctx context.Context, job *entity.Job) error {
	doc, err := r.docs.Get(ctx, job.DocumentID)
	if err != nil {
		return err
	}
	if doc.Cancelled {
		// Soft-cancel: the result of an already-running job is discarded
		// and no further jobs are created.
		r.logger.Info("discarding result for cancelled document", "doc_id", doc.ID, "job_id", job.ID, "step", job.Step)
		return r.jobs.AppendLog(ctx, job.ID, entity.LogEntry{
			At: r.now(), Attempt: job.Attempts, Event: "discarded", Detail: "document cancelled",
		})
	}

	patch, err := decodeOutput(job.Step, job.Output)
	if err != nil {
		return err
	}
	if err := r.docs.MergeOutputs(ctx, doc.ID, patch); err != nil {
		return err
	}

	remaining := doc.RemainingSteps(job.Step)
	if len(remaining) > 0 {
		next := remaining[0]
		// The next job carries the merged aggregate state plus the raw
		// output of the step that just finished.
		updated, err := r.docs.Get(ctx, doc.ID)
		if err != nil {
			return err
		}
		if _, err := r.createJob(ctx, updated, next, job.Priority, job.Output); err != nil {
			return err
		}
		r.logger.Info("step advanced", "doc_id", doc.ID, "completed", job.Step, "next", next)
		return nil
	}

	now := r.now()
	if err := r.docs.SetTerminal(ctx, doc.ID, constants.DocumentCompleted, "", now); err != nil {
		return err
	}
	r.logger.Info("document completed", "doc_id", doc.ID)

	// The notifier step is the delivery vehicle for completion when it is
	// in the plan; trigger the collaborator directly only when it is not.
	if !planHas(doc.StepPlan, constants.StepNotifier) {
		r.triggerNotifier(ctx, doc.ID, constants.DocumentCompleted, "")
	}
	return nil
}

// OnJobFailedTerminal finalizes the document after a job exhausted its
// retries. The failure status is step-specific; no further jobs are
// created for this document's plan.
func (r *Router) OnJobFailedTerminal(ctx context.Context, job *entity.Job) error {
	status := constants.DocumentFailed
	switch job.Step {
	case constants.StepValidator:
		status = constants.DocumentValidationFailed
	case constants.StepNotifier:
		status = constants.DocumentNotificationFailed
	}
	msg := ""
	if job.Error != nil {
		msg = job.Error.Message
	}
	if err := r.docs.SetTerminal(ctx, job.DocumentID, status, msg, r.now()); err != nil {
		return err
	}
	r.logger.Warn("document failed", "doc_id", job.DocumentID, "step", job.Step, "status", status, "error", msg)
	r.triggerNotifier(ctx, job.DocumentID, status, msg)
	return nil
}

// Cancel flags the document for soft-cancel. Running jobs finish or time
// out on their own; their results are discarded when they report.
func (r *Router) Cancel(ctx context.Context, id uuid.UUID) error {
	if err := r.docs.SetCancelled(ctx, id); err != nil {
		return err
	}
	r.logger.Info("document soft-cancelled", "doc_id", id)
	return nil
}

func (r *Router) createJob(ctx context.Context, doc *entity.Document, step constants.Step, priority int, prior json.RawMessage) (*entity.Job, error) {
	if priority < constants.PriorityMin {
		priority = constants.PriorityMin
	}
	if priority > constants.PriorityMax {
		priority = constants.PriorityMax
	}
	input, err := json.Marshal(entity.StepInput{
		DocumentID:  doc.ID,
		Step:        step,
		Filename:    doc.Filename,
		SourcePath:  doc.SourcePath,
		SourceURL:   doc.SourceURL,
		ContentType: doc.ContentType,
		Metadata:    doc.Metadata,
		Artifacts:   doc.Artifacts,
		Scores:      doc.Scores,
		Prior:       prior,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal step input: %w", err)
	}
	return r.jobs.Create(ctx, &entity.Job{
		DocumentID:  doc.ID,
		Step:        step,
		Priority:    priority,
		MaxAttempts: r.defaults.MaxAttempts,
		Input:       input,
		Retry:       r.defaults.Retry,
		Timeout:     r.defaults.Timeout,
	})
}

// triggerNotifier sends the terminal-status payload to the collaborator.
// Delivery failures are logged, not escalated: the NOTIFICATION_FAILED
// status is reserved for the notifier step exhausting its retries.
func (r *Router) triggerNotifier(ctx context.Context, docID uuid.UUID, status constants.DocumentStatus, errMsg string) {
	var summary map[string]string
	if doc, err := r.docs.Get(ctx, docID); err == nil {
		summary = doc.Artifacts
	}
	if err := r.notifier.Notify(ctx, notify.Payload{
		DocID:            docID,
		Status:           status,
		ArtifactsSummary: summary,
		ErrorMessage:     errMsg,
	}); err != nil {
		r.logger.Error("terminal notification failed", "doc_id", docID, "status", status, "error", err)
	}
}

func planHas(plan []constants.Step, s constants.Step) bool {
	for _, p := range plan {
		if p == s {
			return true
		}
	}
	return false
}
