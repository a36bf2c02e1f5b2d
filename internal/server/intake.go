package server

import (
	"context"
	"encoding/json"
	"strings"

	"log/slog"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/accessly/docpipeline/constants"
	v1 "github.com/accessly/docpipeline/gen/proto/docpipe/v1"
	"github.com/accessly/docpipeline/internal/common"
	"github.com/accessly/docpipeline/internal/pipeline"
	"github.com/accessly/docpipeline/internal/repository"
)

type IntakeService struct {
	v1.UnimplementedIntakeServiceServer
	router  *pipeline.Router
	docRepo repository.DocumentRepository
	jobRepo repository.JobRepository
	logger  *slog.Logger
}

func NewIntakeService(router *pipeline.Router, docRepo repository.DocumentRepository, jobRepo repository.JobRepository, logger *slog.Logger) *IntakeService {
	return &IntakeService{
		router:  router,
		docRepo: docRepo,
		jobRepo: jobRepo,
		logger:  logger,
	}
}

// CreateDocument implements v1.IntakeServiceServer
func (s *IntakeService) CreateDocument(ctx context.Context, req *v1.CreateDocumentRequest) (*v1.CreateDocumentResponse, error) {
	ownerID := strings.TrimSpace(req.GetOwnerId())
	if ownerID == "" {
		s.logger.Error("create document request missing owner_id")
		return nil, status.Error(codes.InvalidArgument, "owner_id is required")
	}
	filename := strings.TrimSpace(req.GetFilename())
	if filename == "" {
		s.logger.Error("create document request missing filename", "owner_id", ownerID)
		return nil, status.Error(codes.InvalidArgument, "filename is required")
	}

	var metadata map[string]any
	if raw := req.GetMetadataJson(); raw != "" {
		if err := json.Unmarshal([]byte(raw), &metadata); err != nil {
			s.logger.Error("invalid metadata payload", "owner_id", ownerID, "error", err)
			return nil, status.Error(codes.InvalidArgument, "metadata_json must be a JSON object")
		}
	}

	s.logger.Info("accepting document", "owner_id", ownerID, "filename", filename)
	doc, err := s.router.OnIntake(ctx, pipeline.IntakeRequest{
		OwnerID:    ownerID,
		Filename:   filename,
		SourcePath: req.GetSourcePath(),
		SourceURL:  req.GetSourceUrl(),
		Metadata:   metadata,
		Priority:   int(req.GetPriority()),
	})
	if err != nil {
		s.logger.Error("document intake failed", "owner_id", ownerID, "filename", filename, "error", err)
		return nil, common.ToGRPC(err)
	}

	return &v1.CreateDocumentResponse{Document: toProtoDocument(doc)}, nil
}

// GetDocument implements v1.IntakeServiceServer
func (s *IntakeService) GetDocument(ctx context.Context, req *v1.GetDocumentRequest) (*v1.GetDocumentResponse, error) {
	id, err := uuid.Parse(req.GetDocumentId())
	if err != nil {
		s.logger.Error("invalid document_id format", "document_id", req.GetDocumentId(), "error", err)
		return nil, status.Error(codes.InvalidArgument, "document_id must be a UUID")
	}

	doc, err := s.docRepo.Get(ctx, id)
	if err != nil {
		s.logger.Error("get document failed", "document_id", id, "error", err)
		return nil, common.ToGRPC(err)
	}
	jobs, err := s.jobRepo.ListByDocument(ctx, id)
	if err != nil {
		s.logger.Error("list jobs failed", "document_id", id, "error", err)
		return nil, common.ToGRPC(err)
	}

	out := make([]*v1.Job, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, toProtoJob(j))
	}
	return &v1.GetDocumentResponse{Document: toProtoDocument(doc), Jobs: out}, nil
}

// ListDocuments implements v1.IntakeServiceServer
func (s *IntakeService) ListDocuments(ctx context.Context, req *v1.ListDocumentsRequest) (*v1.ListDocumentsResponse, error) {
	ownerID := strings.TrimSpace(req.GetOwnerId())
	if ownerID == "" {
		s.logger.Error("list documents request missing owner_id")
		return nil, status.Error(codes.InvalidArgument, "owner_id is required")
	}

	var statuses []constants.DocumentStatus
	if st := strings.TrimSpace(req.GetStatus()); st != "" {
		ds := constants.DocumentStatus(strings.ToUpper(st))
		if !ds.Valid() {
			return nil, status.Error(codes.InvalidArgument, "unknown document status")
		}
		statuses = append(statuses, ds)
	}

	docs, err := s.docRepo.List(ctx, ownerID, statuses, int(req.GetLimit()))
	if err != nil {
		s.logger.Error("list documents failed", "owner_id", ownerID, "error", err)
		return nil, common.ToGRPC(err)
	}

	out := make([]*v1.Document, 0, len(docs))
	for _, d := range docs {
		out = append(out, toProtoDocument(d))
	}
	return &v1.ListDocumentsResponse{Documents: out}, nil
}

// CancelDocument implements v1.IntakeServiceServer
func (s *IntakeService) CancelDocument(ctx context.Context, req *v1.CancelDocumentRequest) (*v1.CancelDocumentResponse, error) {
	id, err := uuid.Parse(req.GetDocumentId())
	if err != nil {
		s.logger.Error("invalid document_id format", "document_id", req.GetDocumentId(), "error", err)
		return nil, status.Error(codes.InvalidArgument, "document_id must be a UUID")
	}

	if err := s.router.Cancel(ctx, id); err != nil {
		s.logger.Error("cancel document failed", "document_id", id, "error", err)
		return nil, common.ToGRPC(err)
	}
	doc, err := s.docRepo.Get(ctx, id)
	if err != nil {
		return nil, common.ToGRPC(err)
	}
	return &v1.CancelDocumentResponse{Document: toProtoDocument(doc)}, nil
}
