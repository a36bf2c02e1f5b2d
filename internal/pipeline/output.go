package pipeline

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/accessly/docpipeline/constants"
	"github.com/accessly/docpipeline/internal/entity"
)

// Artifact map keys written by each step. The artifact value is the
// storage location the step reported.
const (
	artifactStructure = "structure_summary"
	artifactText      = "extracted_text"
	artifactTags      = "tag_manifest"
	artifactReport    = "report"
)

// decodeOutput turns a completed job's raw output into a typed patch on
// the document aggregate. Each step gets an explicit merge function; a
// blind dictionary merge is deliberately not offered. Unknown steps and
// malformed payloads are decode errors, surfaced to the caller.
func decodeOutput(step constants.Step, raw json.RawMessage) (entity.DocumentPatch, error) {
	switch step {
	case constants.StepStructure:
		var out entity.StructureOutput
		if err := unmarshalStrict(raw, &out); err != nil {
			return entity.DocumentPatch{}, fmt.Errorf("decode structure output: %w", err)
		}
		return mergeStructure(out), nil
	case constants.StepOCR:
		var out entity.OCROutput
		if err := unmarshalStrict(raw, &out); err != nil {
			return entity.DocumentPatch{}, fmt.Errorf("decode ocr output: %w", err)
		}
		return mergeOCR(out), nil
	case constants.StepTagger:
		var out entity.TaggerOutput
		if err := unmarshalStrict(raw, &out); err != nil {
			return entity.DocumentPatch{}, fmt.Errorf("decode tagger output: %w", err)
		}
		return mergeTagger(out), nil
	case constants.StepExporter:
		var out entity.ExporterOutput
		if err := unmarshalStrict(raw, &out); err != nil {
			return entity.DocumentPatch{}, fmt.Errorf("decode exporter output: %w", err)
		}
		return mergeExporter(out), nil
	case constants.StepValidator:
		var out entity.ValidatorOutput
		if err := unmarshalStrict(raw, &out); err != nil {
			return entity.DocumentPatch{}, fmt.Errorf("decode validator output: %w", err)
		}
		return mergeValidator(out), nil
	case constants.StepNotifier:
		var out entity.NotifierOutput
		if err := unmarshalStrict(raw, &out); err != nil {
			return entity.DocumentPatch{}, fmt.Errorf("decode notifier output: %w", err)
		}
		return mergeNotifier(out), nil
	}
	return entity.DocumentPatch{}, fmt.Errorf("no merge function for step %q", step)
}

func mergeStructure(out entity.StructureOutput) entity.DocumentPatch {
	p := entity.DocumentPatch{
		Metadata: map[string]any{
			"page_count":   out.PageCount,
			"born_digital": out.BornDigital,
		},
	}
	if len(out.Outline) > 0 {
		p.Metadata["outline"] = out.Outline
	}
	if out.ArtifactPath != "" {
		p.Artifacts = map[string]string{artifactStructure: out.ArtifactPath}
	}
	return p
}

func mergeOCR(out entity.OCROutput) entity.DocumentPatch {
	p := entity.DocumentPatch{
		Scores: map[string]float64{"ocr_confidence": out.Confidence},
	}
	if out.ArtifactPath != "" {
		p.Artifacts = map[string]string{artifactText: out.ArtifactPath}
	}
	if out.Engine != "" {
		p.Metadata = map[string]any{"ocr_engine": out.Engine}
	}
	return p
}

func mergeTagger(out entity.TaggerOutput) entity.DocumentPatch {
	p := entity.DocumentPatch{
		Scores: map[string]float64{"tag_coverage": out.Coverage},
		Metadata: map[string]any{
			"heading_count": out.HeadingCount,
			"tag_count":     len(out.Tags),
		},
	}
	if out.ArtifactPath != "" {
		p.Artifacts = map[string]string{artifactTags: out.ArtifactPath}
	}
	return p
}

func mergeExporter(out entity.ExporterOutput) entity.DocumentPatch {
	return entity.DocumentPatch{
		Artifacts: map[string]string{artifactReport: out.ArtifactPath},
		Metadata:  map[string]any{"report_format": strings.ToLower(out.Format)},
	}
}

func mergeValidator(out entity.ValidatorOutput) entity.DocumentPatch {
	return entity.DocumentPatch{
		Scores: map[string]float64{"validation_score": out.Score},
		Issues: out.Issues,
	}
}

func mergeNotifier(out entity.NotifierOutput) entity.DocumentPatch {
	return entity.DocumentPatch{
		Metadata: map[string]any{"notified": out.Delivered},
	}
}

// unmarshalStrict tolerates an empty payload (a step may legitimately
// produce `{}` or nothing) but rejects malformed JSON.
func unmarshalStrict(raw json.RawMessage, v any) error {
	if len(raw) == 0 {
		return nil
	}
	return json.Unmarshal(raw, v)
}
