package steps

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/accessly/docpipeline/internal/entity"
)

func cleanInput() entity.StepInput {
	return entity.StepInput{
		DocumentID: uuid.New(),
		Filename:   "report.pdf",
		Artifacts: map[string]string{
			"extracted_text": "/art/text.txt",
			"report":         "/art/report.xlsx",
		},
		Scores: map[string]float64{
			"ocr_confidence": 0.9,
			"tag_coverage":   0.8,
		},
	}
}

func TestValidatorCleanDocument(t *testing.T) {
	v, err := NewValidator(0.5, 0.6, nil)
	require.NoError(t, err)

	raw, err := v.Execute(context.Background(), cleanInput())
	require.NoError(t, err)

	var out entity.ValidatorOutput
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.True(t, out.Valid)
	assert.InDelta(t, 1.0, out.Score, 1e-9)
	assert.Empty(t, out.Issues)
}

func TestValidatorGatesLowScores(t *testing.T) {
	v, err := NewValidator(0.5, 0.6, nil)
	require.NoError(t, err)

	in := cleanInput()
	in.Scores["ocr_confidence"] = 0.3
	in.Scores["tag_coverage"] = 0.1
	delete(in.Artifacts, "report")

	raw, err := v.Execute(context.Background(), in)
	require.NoError(t, err)

	var out entity.ValidatorOutput
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.False(t, out.Valid)
	assert.InDelta(t, 0.25, out.Score, 1e-9)

	codes := make([]string, 0, len(out.Issues))
	for _, is := range out.Issues {
		codes = append(codes, is.Code)
	}
	assert.ElementsMatch(t, []string{"LOW_OCR_CONFIDENCE", "LOW_TAG_COVERAGE", "MISSING_REPORT"}, codes)
}

func TestValidatorGatesAreAdvisory(t *testing.T) {
	// Findings become issues; the step itself still completes.
	v, err := NewValidator(0.99, 0.99, nil)
	require.NoError(t, err)

	_, err = v.Execute(context.Background(), cleanInput())
	assert.NoError(t, err)
}

func TestValidatorRejectsBadReportShape(t *testing.T) {
	v, err := NewValidator(0.5, 0.6, nil)
	require.NoError(t, err)

	in := cleanInput()
	in.Filename = "" // violates minLength 1

	_, err = v.Execute(context.Background(), in)
	assert.Error(t, err)
}

func TestBuildReportSchemaCompiles(t *testing.T) {
	_, err := NewValidator(0, 0, nil)
	assert.NoError(t, err)
}
