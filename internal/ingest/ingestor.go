package ingest

import (
	"context"
	"errors"
	"path/filepath"

	"log/slog"

	"github.com/accessly/docpipeline/internal/common"
	"github.com/accessly/docpipeline/internal/entity"
	"github.com/accessly/docpipeline/internal/pipeline"
)

// Router is the slice of the pipeline the ingestor drives.
type Router interface {
	OnIntake(ctx context.Context, req pipeline.IntakeRequest) (*entity.Document, error)
}

// DropIngestor submits files discovered in the drop directories. Every
// document it creates belongs to the configured owner.
type DropIngestor struct {
	router  Router
	ownerID string
	logger  *slog.Logger
}

func NewDropIngestor(router Router, ownerID string, logger *slog.Logger) *DropIngestor {
	return &DropIngestor{router: router, ownerID: ownerID, logger: logger}
}

// Run consumes watcher events until both channels close or ctx ends.
// Rejected files are logged and skipped; a bad drop must not stall the
// directory.
func (d *DropIngestor) Run(ctx context.Context, events <-chan string, errs <-chan error) {
	for events != nil || errs != nil {
		select {
		case <-ctx.Done():
			return
		case path, ok := <-events:
			if !ok {
				events = nil
				continue
			}
			d.submit(ctx, path)
		case err, ok := <-errs:
			if !ok {
				errs = nil
				continue
			}
			d.logger.Error("watch error", "error", err)
		}
	}
}

func (d *DropIngestor) submit(ctx context.Context, path string) {
	doc, err := d.router.OnIntake(ctx, pipeline.IntakeRequest{
		OwnerID:    d.ownerID,
		Filename:   filepath.Base(path),
		SourcePath: path,
	})
	if err != nil {
		if errors.Is(err, common.ErrInvalidDocument) {
			d.logger.Warn("dropped file rejected", "path", path, "error", err)
			return
		}
		d.logger.Error("intake failed for dropped file", "path", path, "error", err)
		return
	}
	d.logger.Info("dropped file accepted", "path", path, "doc_id", doc.ID, "steps", doc.StepPlan)
}
