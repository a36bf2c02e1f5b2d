package pipeline

import (
	"github.com/accessly/docpipeline/constants"
)

// ComputePlan derives the ordered list of required steps for a document
// from its intake characteristics. The plan is fixed at intake and never
// reordered; a step's job is only created after the prior step completed.
//
// Rules:
//   - structure runs for PDFs only (page census, born-digital probe).
//   - ocr is skipped for born-digital sources and HTML.
//   - tagger always runs.
//   - exporter, validator and notifier run unless intake metadata opts
//     out ("export"/"validate"/"notify" set to false).
func ComputePlan(contentType string, metadata map[string]any) []constants.Step {
	var plan []constants.Step
	if contentType == "PDF" {
		plan = append(plan, constants.StepStructure)
	}
	if contentType != "HTML" && !metaBool(metadata, "born_digital", false) {
		plan = append(plan, constants.StepOCR)
	}
	plan = append(plan, constants.StepTagger)
	if metaBool(metadata, "export", true) {
		plan = append(plan, constants.StepExporter)
	}
	if metaBool(metadata, "validate", true) {
		plan = append(plan, constants.StepValidator)
	}
	if metaBool(metadata, "notify", true) {
		plan = append(plan, constants.StepNotifier)
	}
	return plan
}

func metaBool(m map[string]any, key string, def bool) bool {
	if m == nil {
		return def
	}
	v, ok := m[key]
	if !ok {
		return def
	}
	switch b := v.(type) {
	case bool:
		return b
	case string:
		return b == "true" || b == "1" || b == "yes"
	}
	return def
}
