package constants

import "strings"

// DocumentStatus is the canonical aggregate status for rows in documents.
// Only the router writes these.
type DocumentStatus string

// Stable values (store these exact strings in DB).
const (
	DocumentPending            DocumentStatus = "PENDING"             // created, no job dispatched yet
	DocumentProcessing         DocumentStatus = "PROCESSING"          // step plan in progress
	DocumentCompleted          DocumentStatus = "COMPLETED"           // every planned step completed
	DocumentFailed             DocumentStatus = "FAILED"              // a step exhausted its retries
	DocumentValidationFailed   DocumentStatus = "VALIDATION_FAILED"   // the validator step exhausted its retries
	DocumentNotificationFailed DocumentStatus = "NOTIFICATION_FAILED" // the notifier step exhausted its retries
)

// IsTerminal reports whether s is a status a document never leaves.
func (s DocumentStatus) IsTerminal() bool {
	switch s {
	case DocumentCompleted, DocumentFailed, DocumentValidationFailed, DocumentNotificationFailed:
		return true
	}
	return false
}

// Valid reports whether s is a known document status.
func (s DocumentStatus) Valid() bool {
	switch s {
	case DocumentPending, DocumentProcessing, DocumentCompleted,
		DocumentFailed, DocumentValidationFailed, DocumentNotificationFailed:
		return true
	}
	return false
}

// DocumentStatuses holds every valid document status, for schema validation.
var DocumentStatuses = []string{
	string(DocumentPending), string(DocumentProcessing), string(DocumentCompleted),
	string(DocumentFailed), string(DocumentValidationFailed), string(DocumentNotificationFailed),
}

// JobStatus is the canonical status for rows in jobs.
type JobStatus string

const (
	JobPending   JobStatus = "PENDING"   // eligible for dispatch
	JobRunning   JobStatus = "RUNNING"   // claimed by a worker
	JobCompleted JobStatus = "COMPLETED" // terminal success
	JobFailed    JobStatus = "FAILED"    // attempt failed; terminal once attempts == max_attempts
	JobRetry     JobStatus = "RETRY"     // waiting for retry_at before going back to PENDING
	JobTimeout   JobStatus = "TIMEOUT"   // reclaimed after missed heartbeats or execution timeout
)

// InFlight reports whether a job in this status still occupies its
// (document, step) slot. At most one in-flight job may exist per slot.
func (s JobStatus) InFlight() bool {
	switch s {
	case JobPending, JobRunning, JobRetry:
		return true
	}
	return false
}

// JobStatuses holds every valid job status, for schema validation.
var JobStatuses = []string{
	string(JobPending), string(JobRunning), string(JobCompleted),
	string(JobFailed), string(JobRetry), string(JobTimeout),
}

// Step is a named pipeline stage. Intake fixes an ordered subset of these
// (the step plan) per document; steps never run out of plan order.
type Step string

const (
	StepStructure Step = "STRUCTURE"
	StepOCR       Step = "OCR"
	StepTagger    Step = "TAGGER"
	StepExporter  Step = "EXPORTER"
	StepValidator Step = "VALIDATOR"
	StepNotifier  Step = "NOTIFIER"
)

// PipelineOrder is the full pipeline in execution order. Step plans are
// always an ordered subset of this sequence.
var PipelineOrder = []Step{
	StepStructure, StepOCR, StepTagger, StepExporter, StepValidator, StepNotifier,
}

// ParseStep maps a step name to its Step value, case-insensitively.
func ParseStep(name string) (Step, bool) {
	s := Step(strings.ToUpper(strings.TrimSpace(name)))
	for _, known := range PipelineOrder {
		if s == known {
			return s, true
		}
	}
	return "", false
}

// Steps holds every valid step name, for schema validation.
var Steps = []string{
	string(StepStructure), string(StepOCR), string(StepTagger),
	string(StepExporter), string(StepValidator), string(StepNotifier),
}

// ErrorKind classifies a job error for retry and reporting purposes.
type ErrorKind string

const (
	ErrorKindStepExecution ErrorKind = "STEP_EXECUTION" // reported by a worker
	ErrorKindTimeout       ErrorKind = "TIMEOUT"        // synthesized by the monitor
)

// Priority is a single integer scale; higher dispatches first.
const (
	PriorityMin     = 0
	PriorityDefault = 10
	PriorityUrgent  = 90
	PriorityMax     = 100
)
