package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/accessly/docpipeline/constants"
	"github.com/accessly/docpipeline/gen/ent"
	"github.com/accessly/docpipeline/gen/ent/document"
	"github.com/accessly/docpipeline/internal/common"
	"github.com/accessly/docpipeline/internal/entity"
)

type documentRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewDocumentRepository(entc *ent.Client, log *slog.Logger) DocumentRepository {
	return &documentRepo{ent: entc, log: log}
}

func (r *documentRepo) Create(ctx context.Context, d *entity.Document) (*entity.Document, error) {
	create := r.ent.Document.
		Create().
		SetOwnerID(d.OwnerID).
		SetStatus(string(d.Status)).
		SetFilename(d.Filename).
		SetCancelled(false)
	if d.SourceURL != "" {
		create.SetSourceURL(d.SourceURL)
	}
	if d.SourcePath != "" {
		create.SetSourcePath(d.SourcePath)
	}
	if d.ContentType != "" {
		create.SetContentType(d.ContentType)
	}
	if len(d.Metadata) > 0 {
		create.SetMetadata(marshalRaw(d.Metadata))
	}
	if len(d.StepPlan) > 0 {
		create.SetStepPlan(marshalRaw(d.StepPlan))
	}

	row, err := create.Save(ctx)
	if err != nil {
		r.log.Error("document create failed", "owner_id", d.OwnerID, "err", err)
		return nil, common.WrapError(err, "create document")
	}
	r.log.Info("document created", "doc_id", row.ID, "owner_id", d.OwnerID, "filename", d.Filename, "plan", d.StepPlan)
	return toDocument(row), nil
}

func (r *documentRepo) Get(ctx context.Context, id uuid.UUID) (*entity.Document, error) {
	row, err := r.ent.Document.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		return nil, common.WrapError(err, "get document")
	}
	return toDocument(row), nil
}

func (r *documentRepo) List(ctx context.Context, ownerID string, statuses []constants.DocumentStatus, limit int) ([]*entity.Document, error) {
	q := r.ent.Document.Query()
	if ownerID != "" {
		q = q.Where(document.OwnerIDEQ(ownerID))
	}
	if len(statuses) > 0 {
		vals := make([]string, 0, len(statuses))
		for _, s := range statuses {
			vals = append(vals, string(s))
		}
		q = q.Where(document.StatusIn(vals...))
	}
	if limit > 0 {
		q = q.Limit(limit)
	}
	rows, err := q.Order(ent.Desc(document.FieldCreatedAt)).All(ctx)
	if err != nil {
		return nil, common.WrapError(err, "list documents")
	}
	out := make([]*entity.Document, 0, len(rows))
	for _, row := range rows {
		out = append(out, toDocument(row))
	}
	return out, nil
}

func (r *documentRepo) SetProcessing(ctx context.Context, id uuid.UUID) error {
	n, err := r.ent.Document.
		Update().
		Where(
			document.IDEQ(id),
			document.StatusEQ(string(constants.DocumentPending)),
		).
		SetStatus(string(constants.DocumentProcessing)).
		Save(ctx)
	if err != nil {
		return common.WrapError(err, "set document processing")
	}
	if n == 0 {
		return common.ErrDocumentTerminal
	}
	return nil
}

func (r *documentRepo) SetTerminal(ctx context.Context, id uuid.UUID, status constants.DocumentStatus, errorMessage string, now time.Time) error {
	upd := r.ent.Document.
		Update().
		Where(
			document.IDEQ(id),
			document.StatusIn(
				string(constants.DocumentPending),
				string(constants.DocumentProcessing),
			),
		).
		SetStatus(string(status)).
		SetUpdatedAt(now)
	if status == constants.DocumentCompleted {
		upd.SetCompletedAt(now)
	}
	if errorMessage != "" {
		upd.SetErrorMessage(errorMessage)
	}
	n, err := upd.Save(ctx)
	if err != nil {
		return common.WrapError(err, "set document terminal")
	}
	if n == 0 {
		return common.ErrDocumentTerminal
	}
	r.log.Info("document terminal", "doc_id", id, "status", status)
	return nil
}

// MergeOutputs is a read-merge-write: the router is the sole caller and
// steps for one document never run concurrently, so no second writer can
// interleave.
func (r *documentRepo) MergeOutputs(ctx context.Context, id uuid.UUID, patch entity.DocumentPatch) error {
	if patch.Empty() {
		return nil
	}
	row, err := r.ent.Document.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return common.ErrNotFound
		}
		return common.WrapError(err, "merge outputs: get")
	}
	cur := toDocument(row)

	upd := r.ent.Document.UpdateOneID(id)
	if len(patch.Artifacts) > 0 {
		if cur.Artifacts == nil {
			cur.Artifacts = map[string]string{}
		}
		for k, v := range patch.Artifacts {
			cur.Artifacts[k] = v
		}
		upd.SetArtifacts(marshalRaw(cur.Artifacts))
	}
	if len(patch.Scores) > 0 {
		if cur.Scores == nil {
			cur.Scores = map[string]float64{}
		}
		for k, v := range patch.Scores {
			cur.Scores[k] = v
		}
		upd.SetScores(marshalRaw(cur.Scores))
	}
	if len(patch.Metadata) > 0 {
		if cur.Metadata == nil {
			cur.Metadata = map[string]any{}
		}
		for k, v := range patch.Metadata {
			cur.Metadata[k] = v
		}
		upd.SetMetadata(marshalRaw(cur.Metadata))
	}
	if patch.Issues != nil {
		upd.SetIssues(marshalRaw(patch.Issues))
	}
	if _, err := upd.Save(ctx); err != nil {
		return common.WrapError(err, "merge outputs: save")
	}
	return nil
}

func (r *documentRepo) SetCancelled(ctx context.Context, id uuid.UUID) error {
	n, err := r.ent.Document.
		Update().
		Where(
			document.IDEQ(id),
			document.StatusIn(
				string(constants.DocumentPending),
				string(constants.DocumentProcessing),
			),
		).
		SetCancelled(true).
		Save(ctx)
	if err != nil {
		return common.WrapError(err, "cancel document")
	}
	if n == 0 {
		return common.ErrDocumentTerminal
	}
	r.log.Info("document cancelled", "doc_id", id)
	return nil
}
