package entity

import (
	"encoding/json"

	"github.com/google/uuid"

	"github.com/accessly/docpipeline/constants"
)

// StepInput is the payload the router writes into Job.Input. It carries
// everything a step executor needs without a read-back of the document,
// plus the prior step's raw output. Inputs are never mutated by a failed
// attempt; a retried attempt sees exactly the same payload.
type StepInput struct {
	DocumentID  uuid.UUID          `json:"document_id"`
	Step        constants.Step     `json:"step"`
	Filename    string             `json:"filename"`
	SourcePath  string             `json:"source_path,omitempty"`
	SourceURL   string             `json:"source_url,omitempty"`
	ContentType string             `json:"content_type,omitempty"`
	Metadata    map[string]any     `json:"metadata,omitempty"`
	Artifacts   map[string]string  `json:"artifacts,omitempty"`
	Scores      map[string]float64 `json:"scores,omitempty"`
	Prior       json.RawMessage    `json:"prior,omitempty"`
}

// DecodeStepInput unmarshals a job input payload.
func DecodeStepInput(raw json.RawMessage) (StepInput, error) {
	var in StepInput
	if len(raw) == 0 {
		return in, nil
	}
	err := json.Unmarshal(raw, &in)
	return in, err
}

// DocumentPatch is the decoded effect of one completed step on the
// document aggregate. Keys present replace existing keys; keys absent are
// left untouched. Issues replace the whole list when non-nil.
type DocumentPatch struct {
	Artifacts map[string]string
	Scores    map[string]float64
	Metadata  map[string]any
	Issues    []Issue
}

// Empty reports whether the patch changes nothing.
func (p DocumentPatch) Empty() bool {
	return len(p.Artifacts) == 0 && len(p.Scores) == 0 && len(p.Metadata) == 0 && p.Issues == nil
}

// Per-step typed outputs. Each step produces exactly one of these; the
// router decodes by step name and merges with an explicit function rather
// than a blind map merge. A retried attempt's output fully replaces the
// prior attempt's output for that step (last-write-wins).

// StructureOutput is produced by the structure step.
type StructureOutput struct {
	PageCount    int      `json:"page_count"`
	BornDigital  bool     `json:"born_digital"`
	Outline      []string `json:"outline,omitempty"`
	ArtifactPath string   `json:"artifact_path,omitempty"`
}

// OCROutput is produced by the OCR step.
type OCROutput struct {
	Text         string  `json:"text"`
	Confidence   float64 `json:"confidence"`
	Pages        int     `json:"pages"`
	Engine       string  `json:"engine,omitempty"`
	ArtifactPath string  `json:"artifact_path,omitempty"`
}

// TaggerOutput is produced by the tagger step.
type TaggerOutput struct {
	Tags         []Tag   `json:"tags"`
	HeadingCount int     `json:"heading_count"`
	Coverage     float64 `json:"coverage"`
	ArtifactPath string  `json:"artifact_path,omitempty"`
}

// Tag is one structural tag assigned to a span of the document text.
type Tag struct {
	Kind  string `json:"kind"`
	Level int    `json:"level,omitempty"`
	Text  string `json:"text"`
}

// ExporterOutput is produced by the exporter step.
type ExporterOutput struct {
	ArtifactPath string `json:"artifact_path"`
	Format       string `json:"format"`
	SizeBytes    int    `json:"size_bytes"`
}

// ValidatorOutput is produced by the validator step.
type ValidatorOutput struct {
	Valid  bool    `json:"valid"`
	Score  float64 `json:"score"`
	Issues []Issue `json:"issues,omitempty"`
}

// NotifierOutput is produced by the notifier step.
type NotifierOutput struct {
	Delivered  bool   `json:"delivered"`
	Endpoint   string `json:"endpoint,omitempty"`
	StatusCode int    `json:"status_code,omitempty"`
}
