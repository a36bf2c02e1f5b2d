package steps

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/accessly/docpipeline/constants"
	"github.com/accessly/docpipeline/internal/entity"
)

// Exporter produces the remediation report workbook: one summary sheet
// with the document's metadata and scores, one sheet with the tag
// manifest from the tagger step.
type Exporter struct {
	artifactDir string
	logger      *slog.Logger
}

func NewExporter(artifactDir string, logger *slog.Logger) *Exporter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Exporter{artifactDir: artifactDir, logger: logger}
}

func (e *Exporter) Step() constants.Step { return constants.StepExporter }

func (e *Exporter) Execute(ctx context.Context, in entity.StepInput) (json.RawMessage, error) {
	f := excelize.NewFile()
	const summary = "Summary"
	sheet, err := f.NewSheet(summary)
	if err != nil {
		return nil, fmt.Errorf("exporter: create sheet: %w", err)
	}
	f.SetActiveSheet(sheet)

	rows := [][]any{
		{"Document", in.DocumentID.String()},
		{"Filename", in.Filename},
		{"Content type", in.ContentType},
	}
	for name, score := range in.Scores {
		rows = append(rows, []any{name, score})
	}
	for kind, location := range in.Artifacts {
		rows = append(rows, []any{"artifact: " + kind, location})
	}
	for i, row := range rows {
		for j, cell := range row {
			ref, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				return nil, fmt.Errorf("exporter: cell ref: %w", err)
			}
			if err := f.SetCellValue(summary, ref, cell); err != nil {
				return nil, fmt.Errorf("exporter: set cell: %w", err)
			}
		}
	}

	if err := e.writeTags(f, in); err != nil {
		return nil, err
	}

	dir := e.artifactDir
	if dir == "" {
		dir = os.TempDir()
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("exporter: artifact dir: %w", err)
	}
	path := filepath.Join(dir, in.DocumentID.String()+"-report.xlsx")
	if err := f.SaveAs(path); err != nil {
		return nil, fmt.Errorf("exporter: save workbook: %w", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("exporter: stat report: %w", err)
	}

	e.logger.Info("report exported", "doc_id", in.DocumentID, "path", path, "bytes", info.Size())
	return marshalOutput(entity.ExporterOutput{
		ArtifactPath: path,
		Format:       "xlsx",
		SizeBytes:    int(info.Size()),
	})
}

func (e *Exporter) writeTags(f *excelize.File, in entity.StepInput) error {
	var prior entity.TaggerOutput
	if len(in.Prior) > 0 {
		// Tolerate a non-tagger prior; the sheet is simply left empty.
		_ = json.Unmarshal(in.Prior, &prior)
	}
	if len(prior.Tags) == 0 {
		return nil
	}
	const sheet = "Tags"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("exporter: tags sheet: %w", err)
	}
	header := []any{"Kind", "Level", "Text"}
	for j, cell := range header {
		ref, _ := excelize.CoordinatesToCellName(j+1, 1)
		if err := f.SetCellValue(sheet, ref, cell); err != nil {
			return fmt.Errorf("exporter: tags header: %w", err)
		}
	}
	for i, tag := range prior.Tags {
		values := []any{tag.Kind, tag.Level, tag.Text}
		for j, cell := range values {
			ref, _ := excelize.CoordinatesToCellName(j+1, i+2)
			if err := f.SetCellValue(sheet, ref, cell); err != nil {
				return fmt.Errorf("exporter: tags row: %w", err)
			}
		}
	}
	return nil
}
