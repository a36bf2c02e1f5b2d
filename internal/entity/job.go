package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/accessly/docpipeline/constants"
)

// Job represents one execution record of one pipeline step against one
// document. Retries re-use the same row: attempts increments and the log
// keeps the per-attempt history.
type Job struct {
	ID            uuid.UUID           `json:"id"`
	DocumentID    uuid.UUID           `json:"document_id"`
	Step          constants.Step      `json:"step"`
	Status        constants.JobStatus `json:"status"`
	Priority      int                 `json:"priority"`
	Attempts      int                 `json:"attempts"`
	MaxAttempts   int                 `json:"max_attempts"`
	Input         json.RawMessage     `json:"input,omitempty"`
	Output        json.RawMessage     `json:"output,omitempty"`
	Error         *JobError           `json:"error,omitempty"`
	Retry         RetryPolicy         `json:"retry"`
	RetryAt       *time.Time          `json:"retry_at,omitempty"`
	Timeout       TimeoutPolicy       `json:"timeout"`
	WorkerID      string              `json:"worker_id,omitempty"`
	StartedAt     *time.Time          `json:"started_at,omitempty"`
	LastHeartbeat *time.Time          `json:"last_heartbeat,omitempty"`
	Logs          []LogEntry          `json:"logs,omitempty"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at"`
	FinishedAt    *time.Time          `json:"finished_at,omitempty"`
}

// JobError is the recorded outcome of a failed attempt.
type JobError struct {
	Kind    constants.ErrorKind `json:"kind"`
	Message string              `json:"message"`
}

// RetryPolicy controls bounded exponential backoff for a job.
type RetryPolicy struct {
	Enabled           bool    `json:"enabled"`
	BackoffMultiplier float64 `json:"backoff_multiplier"`
	InitialDelaySecs  int     `json:"initial_delay_seconds"`
	MaxDelaySecs      int     `json:"max_delay_seconds"`
}

// TimeoutPolicy controls heartbeat-based failure detection for a job.
type TimeoutPolicy struct {
	ExecutionTimeoutSecs  int `json:"execution_timeout_seconds"`
	HeartbeatIntervalSecs int `json:"heartbeat_interval_seconds"`
}

// ExecutionTimeout returns the execution timeout as a duration.
func (p TimeoutPolicy) ExecutionTimeout() time.Duration {
	return time.Duration(p.ExecutionTimeoutSecs) * time.Second
}

// HeartbeatInterval returns the heartbeat interval as a duration.
func (p TimeoutPolicy) HeartbeatInterval() time.Duration {
	return time.Duration(p.HeartbeatIntervalSecs) * time.Second
}

// LogEntry is one append-only timestamped line on a job.
type LogEntry struct {
	At      time.Time `json:"at"`
	Attempt int       `json:"attempt"`
	Event   string    `json:"event"`
	Detail  string    `json:"detail,omitempty"`
}

// Exhausted reports whether the job has no attempts left.
func (j *Job) Exhausted() bool {
	return j.Attempts >= j.MaxAttempts
}

// Retryable reports whether another attempt may be scheduled.
func (j *Job) Retryable() bool {
	return j.Retry.Enabled && !j.Exhausted()
}

// StepResult is a worker's report for a finished attempt. Exactly one of
// Output (on success) or Error (on failure) is set.
type StepResult struct {
	Completed bool            `json:"completed"`
	Output    json.RawMessage `json:"output,omitempty"`
	Error     *JobError       `json:"error,omitempty"`
}
