package repository

import (
	"encoding/json"

	"github.com/accessly/docpipeline/constants"
	"github.com/accessly/docpipeline/gen/ent"
	"github.com/accessly/docpipeline/internal/entity"
)

func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func toDocument(e *ent.Document) *entity.Document {
	d := &entity.Document{
		ID:           e.ID,
		OwnerID:      e.OwnerID,
		Status:       constants.DocumentStatus(e.Status),
		Filename:     e.Filename,
		SourceURL:    strOrEmpty(e.SourceURL),
		SourcePath:   strOrEmpty(e.SourcePath),
		ContentType:  strOrEmpty(e.ContentType),
		Cancelled:    e.Cancelled,
		ErrorMessage: strOrEmpty(e.ErrorMessage),
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
		CompletedAt:  e.CompletedAt,
	}
	unmarshalInto(e.Metadata, &d.Metadata)
	unmarshalInto(e.Artifacts, &d.Artifacts)
	unmarshalInto(e.Scores, &d.Scores)
	unmarshalInto(e.Issues, &d.Issues)
	unmarshalInto(e.StepPlan, &d.StepPlan)
	return d
}

func toJob(e *ent.Job) *entity.Job {
	j := &entity.Job{
		ID:          e.ID,
		DocumentID:  e.DocumentID,
		Step:        constants.Step(e.Step),
		Status:      constants.JobStatus(e.Status),
		Priority:    e.Priority,
		Attempts:    e.Attempts,
		MaxAttempts: e.MaxAttempts,
		Input:       e.Input,
		Output:      e.Output,
		Retry: entity.RetryPolicy{
			Enabled:           e.RetryEnabled,
			BackoffMultiplier: e.BackoffMultiplier,
			InitialDelaySecs:  e.InitialDelaySeconds,
			MaxDelaySecs:      e.MaxDelaySeconds,
		},
		RetryAt: e.RetryAt,
		Timeout: entity.TimeoutPolicy{
			ExecutionTimeoutSecs:  e.ExecutionTimeoutSeconds,
			HeartbeatIntervalSecs: e.HeartbeatIntervalSeconds,
		},
		WorkerID:      strOrEmpty(e.WorkerID),
		StartedAt:     e.StartedAt,
		LastHeartbeat: e.LastHeartbeat,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
		FinishedAt:    e.FinishedAt,
	}
	if e.ErrorKind != nil || e.ErrorMessage != nil {
		j.Error = &entity.JobError{
			Kind:    constants.ErrorKind(strOrEmpty(e.ErrorKind)),
			Message: strOrEmpty(e.ErrorMessage),
		}
	}
	unmarshalInto(e.Logs, &j.Logs)
	return j
}

// unmarshalInto decodes a raw JSON column, tolerating empty columns.
func unmarshalInto(raw json.RawMessage, v any) {
	if len(raw) == 0 {
		return
	}
	_ = json.Unmarshal(raw, v)
}

func marshalRaw(v any) json.RawMessage {
	if v == nil {
		return nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	return b
}
