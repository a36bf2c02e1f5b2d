package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/accessly/docpipeline/constants"
	"github.com/accessly/docpipeline/internal/entity"
)

// Validator checks the accumulated accessibility report against a JSON
// Schema and applies quality gates over the step scores. Gate findings
// become document issues; a structurally invalid report is a step
// failure and goes through the ordinary retry path.
type Validator struct {
	schema      *jsonschema.Schema
	minOCRScore float64
	minTagCover float64
	logger      *slog.Logger
}

// BuildReportSchema returns the JSON-Schema (draft 2020-12 subset) the
// accumulated report must satisfy before a document may complete.
func BuildReportSchema() map[string]any {
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"document_id": map[string]any{"type": "string", "minLength": 36, "maxLength": 36},
			"filename":    map[string]any{"type": "string", "minLength": 1},
			"artifacts": map[string]any{
				"type":                 "object",
				"additionalProperties": map[string]any{"type": "string", "minLength": 1},
			},
			"scores": map[string]any{
				"type":                 "object",
				"additionalProperties": map[string]any{"type": "number", "minimum": 0.0, "maximum": 1.0},
			},
		},
		"required": []string{"document_id", "filename"},
	}
}

func NewValidator(minOCRScore, minTagCover float64, logger *slog.Logger) (*Validator, error) {
	raw, err := json.Marshal(BuildReportSchema())
	if err != nil {
		return nil, fmt.Errorf("validator: marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("report.json", bytes.NewReader(raw)); err != nil {
		return nil, fmt.Errorf("validator: add schema: %w", err)
	}
	schema, err := compiler.Compile("report.json")
	if err != nil {
		return nil, fmt.Errorf("validator: compile schema: %w", err)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Validator{
		schema:      schema,
		minOCRScore: minOCRScore,
		minTagCover: minTagCover,
		logger:      logger,
	}, nil
}

func (v *Validator) Step() constants.Step { return constants.StepValidator }

func (v *Validator) Execute(ctx context.Context, in entity.StepInput) (json.RawMessage, error) {
	report := map[string]any{
		"document_id": in.DocumentID.String(),
		"filename":    in.Filename,
		"artifacts":   in.Artifacts,
		"scores":      in.Scores,
	}
	// Round-trip through JSON so the schema sees plain types.
	raw, err := json.Marshal(report)
	if err != nil {
		return nil, fmt.Errorf("validator: marshal report: %w", err)
	}
	var data any
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("validator: unmarshal report: %w", err)
	}
	if err := v.schema.Validate(data); err != nil {
		return nil, fmt.Errorf("validator: report does not match schema: %w", err)
	}

	issues := v.gate(in)
	score := 1.0 - float64(len(issues))*0.25
	if score < 0 {
		score = 0
	}

	v.logger.Info("report validated", "doc_id", in.DocumentID, "issues", len(issues), "score", score)
	return marshalOutput(entity.ValidatorOutput{
		Valid:  len(issues) == 0,
		Score:  score,
		Issues: issues,
	})
}

// gate applies the score thresholds. Findings are advisory: they land on
// the document as issues but do not fail the step.
func (v *Validator) gate(in entity.StepInput) []entity.Issue {
	var issues []entity.Issue
	if ocr, ok := in.Scores["ocr_confidence"]; ok && ocr < v.minOCRScore {
		issues = append(issues, entity.Issue{
			Code:     "LOW_OCR_CONFIDENCE",
			Severity: "warning",
			Message:  fmt.Sprintf("ocr confidence %.2f below threshold %.2f", ocr, v.minOCRScore),
		})
	}
	if cover, ok := in.Scores["tag_coverage"]; ok && cover < v.minTagCover {
		issues = append(issues, entity.Issue{
			Code:     "LOW_TAG_COVERAGE",
			Severity: "warning",
			Message:  fmt.Sprintf("tag coverage %.2f below threshold %.2f", cover, v.minTagCover),
		})
	}
	if _, ok := in.Artifacts["report"]; !ok {
		issues = append(issues, entity.Issue{
			Code:     "MISSING_REPORT",
			Severity: "info",
			Message:  "no report artifact was produced for this document",
		})
	}
	return issues
}
