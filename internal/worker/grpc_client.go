package worker

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/accessly/docpipeline/constants"
	v1 "github.com/accessly/docpipeline/gen/proto/docpipe/v1"
	"github.com/accessly/docpipeline/internal/entity"
)

// GRPCDispatcher adapts the dispatch service client to the Dispatcher
// interface so a pool can run out of process.
type GRPCDispatcher struct {
	client v1.DispatchServiceClient
}

func NewGRPCDispatcher(client v1.DispatchServiceClient) *GRPCDispatcher {
	return &GRPCDispatcher{client: client}
}

func (d *GRPCDispatcher) DispatchNext(ctx context.Context, workerID string, caps []constants.Step) (*entity.Job, error) {
	names := make([]string, 0, len(caps))
	for _, s := range caps {
		names = append(names, string(s))
	}
	resp, err := d.client.DispatchNext(ctx, &v1.DispatchNextRequest{
		WorkerId:     workerID,
		Capabilities: names,
	})
	if err != nil {
		return nil, err
	}
	return fromProtoJob(resp.GetJob())
}

func (d *GRPCDispatcher) Heartbeat(ctx context.Context, jobID uuid.UUID, workerID string) error {
	_, err := d.client.Heartbeat(ctx, &v1.HeartbeatRequest{
		JobId:    jobID.String(),
		WorkerId: workerID,
	})
	return err
}

func (d *GRPCDispatcher) ReportResult(ctx context.Context, jobID uuid.UUID, workerID string, res entity.StepResult) error {
	req := &v1.ReportResultRequest{
		JobId:      jobID.String(),
		WorkerId:   workerID,
		Completed:  res.Completed,
		OutputJson: res.Output,
	}
	if res.Error != nil {
		req.Error = &v1.JobError{
			Kind:    string(res.Error.Kind),
			Message: res.Error.Message,
		}
	}
	_, err := d.client.ReportResult(ctx, req)
	return err
}

// fromProtoJob rebuilds the fields the pool needs to execute a claimed
// job. Timestamps the pool never reads are left zero.
func fromProtoJob(j *v1.Job) (*entity.Job, error) {
	if j == nil {
		return nil, nil
	}
	id, err := uuid.Parse(j.GetId())
	if err != nil {
		return nil, fmt.Errorf("dispatch response: bad job id %q: %w", j.GetId(), err)
	}
	docID, err := uuid.Parse(j.GetDocumentId())
	if err != nil {
		return nil, fmt.Errorf("dispatch response: bad document id %q: %w", j.GetDocumentId(), err)
	}
	out := &entity.Job{
		ID:          id,
		DocumentID:  docID,
		Step:        constants.Step(j.GetStep()),
		Status:      constants.JobStatus(j.GetStatus()),
		Priority:    int(j.GetPriority()),
		Attempts:    int(j.GetAttempts()),
		MaxAttempts: int(j.GetMaxAttempts()),
		WorkerID:    j.GetWorkerId(),
		Input:       j.GetInputJson(),
		Timeout: entity.TimeoutPolicy{
			ExecutionTimeoutSecs:  int(j.GetExecutionTimeoutSeconds()),
			HeartbeatIntervalSecs: int(j.GetHeartbeatIntervalSeconds()),
		},
	}
	if ts := j.GetStartedAt(); ts != "" {
		if t, err := time.Parse(time.RFC3339Nano, ts); err == nil {
			out.StartedAt = &t
		}
	}
	return out, nil
}
