package pipeline

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/accessly/docpipeline/constants"
	"github.com/accessly/docpipeline/internal/entity"
)

func TestDecodeOutputStructure(t *testing.T) {
	raw, _ := json.Marshal(entity.StructureOutput{
		PageCount:    12,
		BornDigital:  true,
		Outline:      []string{"Intro", "Methods"},
		ArtifactPath: "/art/structure.json",
	})
	patch, err := decodeOutput(constants.StepStructure, raw)
	require.NoError(t, err)
	assert.Equal(t, 12, patch.Metadata["page_count"])
	assert.Equal(t, true, patch.Metadata["born_digital"])
	assert.Equal(t, "/art/structure.json", patch.Artifacts["structure_summary"])
}

func TestDecodeOutputOCR(t *testing.T) {
	raw, _ := json.Marshal(entity.OCROutput{Confidence: 0.87, Engine: "tesseract", ArtifactPath: "/art/text.txt"})
	patch, err := decodeOutput(constants.StepOCR, raw)
	require.NoError(t, err)
	assert.InDelta(t, 0.87, patch.Scores["ocr_confidence"], 1e-9)
	assert.Equal(t, "/art/text.txt", patch.Artifacts["extracted_text"])
	assert.Equal(t, "tesseract", patch.Metadata["ocr_engine"])
}

func TestDecodeOutputValidatorReplacesIssues(t *testing.T) {
	raw, _ := json.Marshal(entity.ValidatorOutput{
		Valid: false,
		Score: 0.75,
		Issues: []entity.Issue{
			{Code: "LOW_OCR_CONFIDENCE", Severity: "warning", Message: "ocr_confidence 0.30 below 0.50"},
		},
	})
	patch, err := decodeOutput(constants.StepValidator, raw)
	require.NoError(t, err)
	assert.InDelta(t, 0.75, patch.Scores["validation_score"], 1e-9)
	require.Len(t, patch.Issues, 1)
	assert.Equal(t, "LOW_OCR_CONFIDENCE", patch.Issues[0].Code)
}

func TestDecodeOutputEmptyPayload(t *testing.T) {
	patch, err := decodeOutput(constants.StepNotifier, nil)
	require.NoError(t, err)
	assert.Equal(t, false, patch.Metadata["notified"])
}

func TestDecodeOutputRejectsMalformed(t *testing.T) {
	_, err := decodeOutput(constants.StepTagger, json.RawMessage(`{"tags":`))
	assert.Error(t, err)
}

func TestDecodeOutputUnknownStep(t *testing.T) {
	_, err := decodeOutput(constants.Step("SHRED"), json.RawMessage(`{}`))
	assert.Error(t, err)
}
