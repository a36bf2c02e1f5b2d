package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/accessly/docpipeline/constants"
)

func TestComputePlan(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		metadata    map[string]any
		want        []constants.Step
	}{
		{
			name:        "scanned pdf runs everything",
			contentType: "PDF",
			want: []constants.Step{
				constants.StepStructure, constants.StepOCR, constants.StepTagger,
				constants.StepExporter, constants.StepValidator, constants.StepNotifier,
			},
		},
		{
			name:        "born-digital pdf skips ocr",
			contentType: "PDF",
			metadata:    map[string]any{"born_digital": true},
			want: []constants.Step{
				constants.StepStructure, constants.StepTagger,
				constants.StepExporter, constants.StepValidator, constants.StepNotifier,
			},
		},
		{
			name:        "html skips structure and ocr",
			contentType: "HTML",
			want: []constants.Step{
				constants.StepTagger, constants.StepExporter,
				constants.StepValidator, constants.StepNotifier,
			},
		},
		{
			name:        "image runs ocr but no structure",
			contentType: "IMAGE",
			want: []constants.Step{
				constants.StepOCR, constants.StepTagger,
				constants.StepExporter, constants.StepValidator, constants.StepNotifier,
			},
		},
		{
			name:        "opt-outs trim the tail",
			contentType: "PDF",
			metadata:    map[string]any{"born_digital": true, "export": false, "notify": false},
			want: []constants.Step{
				constants.StepStructure, constants.StepTagger, constants.StepValidator,
			},
		},
		{
			name:        "string metadata values are honored",
			contentType: "HTML",
			metadata:    map[string]any{"validate": "false", "notify": "false", "export": "true"},
			want:        []constants.Step{constants.StepTagger, constants.StepExporter},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputePlan(tt.contentType, tt.metadata)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestComputePlanAlwaysIncludesTagger(t *testing.T) {
	for _, ct := range constants.ContentTypes {
		plan := ComputePlan(ct, map[string]any{"export": false, "validate": false, "notify": false, "born_digital": true})
		assert.Contains(t, plan, constants.StepTagger, "content type %s", ct)
	}
}
