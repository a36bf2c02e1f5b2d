package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/accessly/docpipeline/constants"
	"github.com/accessly/docpipeline/internal/entity"
)

// Structure inspects a source PDF: validates it, counts pages and probes
// whether it carries an embedded text layer (born-digital). The probe
// result lands in the document metadata for downstream steps and audit.
type Structure struct {
	logger *slog.Logger
}

func NewStructure(logger *slog.Logger) *Structure {
	if logger == nil {
		logger = slog.Default()
	}
	return &Structure{logger: logger}
}

func (s *Structure) Step() constants.Step { return constants.StepStructure }

func (s *Structure) Execute(ctx context.Context, in entity.StepInput) (json.RawMessage, error) {
	if in.SourcePath == "" {
		return nil, fmt.Errorf("structure: no source path for document %s", in.DocumentID)
	}

	cfg := model.NewDefaultConfiguration()
	cfg.ValidationMode = model.ValidationRelaxed
	if err := api.ValidateFile(in.SourcePath, cfg); err != nil {
		return nil, fmt.Errorf("structure: validate %s: %w", in.SourcePath, err)
	}

	pages, err := api.PageCountFile(in.SourcePath)
	if err != nil {
		return nil, fmt.Errorf("structure: page count %s: %w", in.SourcePath, err)
	}

	born, err := hasTextLayer(in.SourcePath)
	if err != nil {
		return nil, fmt.Errorf("structure: text probe %s: %w", in.SourcePath, err)
	}

	s.logger.Info("structure analyzed", "doc_id", in.DocumentID, "pages", pages, "born_digital", born)
	return marshalOutput(entity.StructureOutput{
		PageCount:   pages,
		BornDigital: born,
	})
}

// hasTextLayer is a cheap probe: a PDF with font resources almost always
// carries an extractable text layer, while pure scan output does not.
func hasTextLayer(path string) (bool, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return false, err
	}
	return bytes.Contains(raw, []byte("/Font")), nil
}
