package server

import (
	"context"
	"strings"

	"log/slog"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/accessly/docpipeline/constants"
	v1 "github.com/accessly/docpipeline/gen/proto/docpipe/v1"
	"github.com/accessly/docpipeline/internal/common"
	"github.com/accessly/docpipeline/internal/entity"
	"github.com/accessly/docpipeline/internal/pipeline"
)

// DispatchService exposes the scheduler to out-of-process workers.
type DispatchService struct {
	v1.UnimplementedDispatchServiceServer
	scheduler *pipeline.Scheduler
	logger    *slog.Logger
}

func NewDispatchService(scheduler *pipeline.Scheduler, logger *slog.Logger) *DispatchService {
	return &DispatchService{scheduler: scheduler, logger: logger}
}

// DispatchNext implements v1.DispatchServiceServer
func (s *DispatchService) DispatchNext(ctx context.Context, req *v1.DispatchNextRequest) (*v1.DispatchNextResponse, error) {
	workerID := strings.TrimSpace(req.GetWorkerId())
	if workerID == "" {
		s.logger.Error("dispatch request missing worker_id")
		return nil, status.Error(codes.InvalidArgument, "worker_id is required")
	}

	caps := make([]constants.Step, 0, len(req.GetCapabilities()))
	for _, name := range req.GetCapabilities() {
		step, ok := constants.ParseStep(name)
		if !ok {
			return nil, status.Errorf(codes.InvalidArgument, "unknown step %q", name)
		}
		caps = append(caps, step)
	}

	ctx = common.WithWorkerID(ctx, workerID)
	job, err := s.scheduler.DispatchNext(ctx, workerID, caps)
	if err != nil {
		s.logger.Error("dispatch failed", "worker_id", workerID, "error", err)
		return nil, common.ToGRPC(err)
	}
	// No eligible job is a normal outcome; the worker polls again.
	return &v1.DispatchNextResponse{Job: toProtoJob(job)}, nil
}

// Heartbeat implements v1.DispatchServiceServer
func (s *DispatchService) Heartbeat(ctx context.Context, req *v1.HeartbeatRequest) (*v1.HeartbeatResponse, error) {
	jobID, workerID, err := s.jobAndWorker(req.GetJobId(), req.GetWorkerId())
	if err != nil {
		return nil, err
	}
	if err := s.scheduler.Heartbeat(ctx, jobID, workerID); err != nil {
		s.logger.Warn("heartbeat rejected", "job_id", jobID, "worker_id", workerID, "error", err)
		return nil, common.ToGRPC(err)
	}
	return &v1.HeartbeatResponse{}, nil
}

// ReportResult implements v1.DispatchServiceServer
func (s *DispatchService) ReportResult(ctx context.Context, req *v1.ReportResultRequest) (*v1.ReportResultResponse, error) {
	jobID, workerID, err := s.jobAndWorker(req.GetJobId(), req.GetWorkerId())
	if err != nil {
		return nil, err
	}

	res := entity.StepResult{
		Completed: req.GetCompleted(),
		Output:    req.GetOutputJson(),
	}
	if pe := req.GetError(); pe != nil {
		res.Error = &entity.JobError{
			Kind:    constants.ErrorKind(pe.GetKind()),
			Message: pe.GetMessage(),
		}
	}
	if !res.Completed && res.Error == nil {
		return nil, status.Error(codes.InvalidArgument, "failed result requires an error")
	}

	ctx = common.WithWorkerID(ctx, workerID)
	if err := s.scheduler.ReportResult(ctx, jobID, workerID, res); err != nil {
		s.logger.Warn("result rejected", "job_id", jobID, "worker_id", workerID, "error", err)
		return nil, common.ToGRPC(err)
	}
	return &v1.ReportResultResponse{}, nil
}

func (s *DispatchService) jobAndWorker(rawJobID, rawWorkerID string) (uuid.UUID, string, error) {
	jobID, err := uuid.Parse(rawJobID)
	if err != nil {
		s.logger.Error("invalid job_id format", "job_id", rawJobID, "error", err)
		return uuid.Nil, "", status.Error(codes.InvalidArgument, "job_id must be a UUID")
	}
	workerID := strings.TrimSpace(rawWorkerID)
	if workerID == "" {
		return uuid.Nil, "", status.Error(codes.InvalidArgument, "worker_id is required")
	}
	return jobID, workerID, nil
}
