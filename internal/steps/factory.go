package steps

import (
	"log/slog"

	"github.com/accessly/docpipeline/constants"
	"github.com/accessly/docpipeline/internal/notify"
)

// RegistryConfig selects and configures the executors a process runs.
type RegistryConfig struct {
	Capabilities     []constants.Step // empty means every step
	OCR              OCRConfig
	ArtifactDir      string
	MinOCRConfidence float64
	MinTagCoverage   float64
	Notifier         notify.Notifier
	WebhookURL       string
}

// BuildRegistry assembles the executors for the requested capabilities.
func BuildRegistry(cfg RegistryConfig, logger *slog.Logger) (Registry, error) {
	wanted := map[constants.Step]bool{}
	if len(cfg.Capabilities) == 0 {
		for _, s := range constants.PipelineOrder {
			wanted[s] = true
		}
	} else {
		for _, s := range cfg.Capabilities {
			wanted[s] = true
		}
	}

	var execs []Executor
	if wanted[constants.StepStructure] {
		execs = append(execs, NewStructure(logger))
	}
	if wanted[constants.StepOCR] {
		execs = append(execs, NewOCR(cfg.OCR, logger))
	}
	if wanted[constants.StepTagger] {
		execs = append(execs, NewTagger(logger))
	}
	if wanted[constants.StepExporter] {
		execs = append(execs, NewExporter(cfg.ArtifactDir, logger))
	}
	if wanted[constants.StepValidator] {
		v, err := NewValidator(cfg.MinOCRConfidence, cfg.MinTagCoverage, logger)
		if err != nil {
			return nil, err
		}
		execs = append(execs, v)
	}
	if wanted[constants.StepNotifier] {
		notifier := cfg.Notifier
		if notifier == nil {
			notifier = notify.Noop{}
		}
		execs = append(execs, NewNotifierStep(notifier, cfg.WebhookURL, logger))
	}
	return NewRegistry(execs...), nil
}
