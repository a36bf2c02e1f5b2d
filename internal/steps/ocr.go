package steps

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/accessly/docpipeline/constants"
	"github.com/accessly/docpipeline/internal/entity"
)

// OCRConfig configures the external OCR engine invocation.
type OCRConfig struct {
	Binary      string // e.g. "tesseract"
	ArtifactDir string // where extracted text files land
	Languages   string // tesseract -l value, optional
}

// OCR shells out to an external engine and stores the extracted text as
// an artifact. The engine is opaque to the pipeline; only the text
// artifact and a confidence score cross the contract.
type OCR struct {
	cfg    OCRConfig
	runner Runner
	logger *slog.Logger
}

func NewOCR(cfg OCRConfig, logger *slog.Logger) *OCR {
	if cfg.Binary == "" {
		cfg.Binary = "tesseract"
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &OCR{cfg: cfg, runner: execRunner{}, logger: logger}
}

// WithRunner substitutes the command runner; used by tests.
func (o *OCR) WithRunner(r Runner) *OCR {
	o.runner = r
	return o
}

func (o *OCR) Step() constants.Step { return constants.StepOCR }

func (o *OCR) Execute(ctx context.Context, in entity.StepInput) (json.RawMessage, error) {
	if in.SourcePath == "" {
		return nil, fmt.Errorf("ocr: no source path for document %s", in.DocumentID)
	}

	args := []string{in.SourcePath, "stdout"}
	if o.cfg.Languages != "" {
		args = append(args, "-l", o.cfg.Languages)
	}
	stdout, _, err := o.runner.Run(ctx, o.cfg.Binary, args...)
	if err != nil {
		return nil, fmt.Errorf("ocr: %s: %w", o.cfg.Binary, err)
	}

	text := strings.TrimSpace(string(stdout))
	artifact, err := o.writeArtifact(in.DocumentID, text)
	if err != nil {
		return nil, err
	}

	o.logger.Info("ocr extracted", "doc_id", in.DocumentID, "bytes", len(text), "artifact", artifact)
	return marshalOutput(entity.OCROutput{
		Text:         text,
		Confidence:   confidence(text),
		Pages:        1,
		Engine:       o.cfg.Binary,
		ArtifactPath: artifact,
	})
}

func (o *OCR) writeArtifact(docID uuid.UUID, text string) (string, error) {
	dir := o.cfg.ArtifactDir
	if dir == "" {
		dir = os.TempDir()
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("ocr: artifact dir: %w", err)
	}
	path := filepath.Join(dir, docID.String()+".txt")
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return "", fmt.Errorf("ocr: write artifact: %w", err)
	}
	return path, nil
}

// confidence is a crude density heuristic: mostly-printable extracted
// text scores high, garbage or empty output scores low.
func confidence(text string) float64 {
	if text == "" {
		return 0
	}
	printable := 0
	for _, r := range text {
		if r >= ' ' || r == '\n' || r == '\t' {
			printable++
		}
	}
	return float64(printable) / float64(len([]rune(text)))
}
