package steps

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/accessly/docpipeline/internal/entity"
)

func TestExporterWritesWorkbook(t *testing.T) {
	dir := t.TempDir()
	exporter := NewExporter(dir, nil)
	docID := uuid.New()

	prior, err := json.Marshal(entity.TaggerOutput{
		Tags: []entity.Tag{
			{Kind: "heading", Level: 1, Text: "INTRO"},
			{Kind: "paragraph", Text: "Some body text."},
		},
		HeadingCount: 1,
		Coverage:     0.8,
	})
	require.NoError(t, err)

	raw, err := exporter.Execute(context.Background(), entity.StepInput{
		DocumentID:  docID,
		Filename:    "report.pdf",
		ContentType: "PDF",
		Scores:      map[string]float64{"ocr_confidence": 0.9},
		Artifacts:   map[string]string{"extracted_text": "/art/text.txt"},
		Prior:       prior,
	})
	require.NoError(t, err)

	var out entity.ExporterOutput
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Equal(t, "xlsx", out.Format)
	assert.Greater(t, out.SizeBytes, 0)

	f, err := excelize.OpenFile(out.ArtifactPath)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	got, err := f.GetCellValue("Summary", "B1")
	require.NoError(t, err)
	assert.Equal(t, docID.String(), got)

	kind, err := f.GetCellValue("Tags", "A2")
	require.NoError(t, err)
	assert.Equal(t, "heading", kind)
}

func TestExporterWithoutPriorTagsSkipsTagSheet(t *testing.T) {
	exporter := NewExporter(t.TempDir(), nil)

	raw, err := exporter.Execute(context.Background(), entity.StepInput{
		DocumentID: uuid.New(),
		Filename:   "page.html",
	})
	require.NoError(t, err)

	var out entity.ExporterOutput
	require.NoError(t, json.Unmarshal(raw, &out))

	f, err := excelize.OpenFile(out.ArtifactPath)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	idx, err := f.GetSheetIndex("Tags")
	require.NoError(t, err)
	assert.Equal(t, -1, idx)
}
