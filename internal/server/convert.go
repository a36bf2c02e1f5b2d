package server

import (
	"encoding/json"
	"time"

	v1 "github.com/accessly/docpipeline/gen/proto/docpipe/v1"
	"github.com/accessly/docpipeline/internal/entity"
)

func toProtoDocument(d *entity.Document) *v1.Document {
	if d == nil {
		return nil
	}
	plan := make([]string, 0, len(d.StepPlan))
	for _, s := range d.StepPlan {
		plan = append(plan, string(s))
	}
	issues := make([]*v1.Issue, 0, len(d.Issues))
	for _, is := range d.Issues {
		issues = append(issues, &v1.Issue{
			Code:     is.Code,
			Severity: is.Severity,
			Message:  is.Message,
		})
	}
	var metaJSON string
	if len(d.Metadata) > 0 {
		if b, err := json.Marshal(d.Metadata); err == nil {
			metaJSON = string(b)
		}
	}
	return &v1.Document{
		Id:           d.ID.String(),
		OwnerId:      d.OwnerID,
		Status:       string(d.Status),
		Filename:     d.Filename,
		SourcePath:   d.SourcePath,
		SourceUrl:    d.SourceURL,
		ContentType:  d.ContentType,
		MetadataJson: metaJSON,
		Artifacts:    d.Artifacts,
		Scores:       d.Scores,
		Issues:       issues,
		StepPlan:     plan,
		Cancelled:    d.Cancelled,
		ErrorMessage: d.ErrorMessage,
		CreatedAt:    d.CreatedAt.Format(time.RFC3339Nano),
		UpdatedAt:    d.UpdatedAt.Format(time.RFC3339Nano),
	}
}

func toProtoJob(j *entity.Job) *v1.Job {
	if j == nil {
		return nil
	}
	out := &v1.Job{
		Id:          j.ID.String(),
		DocumentId:  j.DocumentID.String(),
		Step:        string(j.Step),
		Status:      string(j.Status),
		Priority:    int32(j.Priority),
		Attempts:    int32(j.Attempts),
		MaxAttempts: int32(j.MaxAttempts),
		WorkerId:    j.WorkerID,
		InputJson:   j.Input,
		OutputJson:  j.Output,
		CreatedAt:   j.CreatedAt.Format(time.RFC3339Nano),
		UpdatedAt:   j.UpdatedAt.Format(time.RFC3339Nano),

		ExecutionTimeoutSeconds:  int32(j.Timeout.ExecutionTimeoutSecs),
		HeartbeatIntervalSeconds: int32(j.Timeout.HeartbeatIntervalSecs),
	}
	if j.Error != nil {
		out.ErrorKind = string(j.Error.Kind)
		out.ErrorMessage = j.Error.Message
	}
	if j.RetryAt != nil {
		out.RetryAt = j.RetryAt.Format(time.RFC3339Nano)
	}
	if j.StartedAt != nil {
		out.StartedAt = j.StartedAt.Format(time.RFC3339Nano)
	}
	if j.LastHeartbeat != nil {
		out.LastHeartbeat = j.LastHeartbeat.Format(time.RFC3339Nano)
	}
	return out
}
