package steps

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/accessly/docpipeline/constants"
	"github.com/accessly/docpipeline/internal/entity"
)

// Tagger assigns structural tags (headings, paragraphs, list items) to
// the extracted text with line-shape heuristics. Real remediation
// engines do far more; the contract only requires a tag manifest and a
// coverage score.
type Tagger struct {
	logger *slog.Logger
}

func NewTagger(logger *slog.Logger) *Tagger {
	if logger == nil {
		logger = slog.Default()
	}
	return &Tagger{logger: logger}
}

func (t *Tagger) Step() constants.Step { return constants.StepTagger }

func (t *Tagger) Execute(ctx context.Context, in entity.StepInput) (json.RawMessage, error) {
	text, err := t.loadText(in)
	if err != nil {
		return nil, err
	}

	tags := TagText(text)
	headings := 0
	tagged := 0
	for _, tag := range tags {
		if tag.Kind == "heading" {
			headings++
		}
		tagged += len(tag.Text)
	}
	coverage := 0.0
	if len(text) > 0 {
		coverage = float64(tagged) / float64(len(text))
		if coverage > 1 {
			coverage = 1
		}
	}

	t.logger.Info("text tagged", "doc_id", in.DocumentID, "tags", len(tags), "headings", headings)
	return marshalOutput(entity.TaggerOutput{
		Tags:         tags,
		HeadingCount: headings,
		Coverage:     coverage,
	})
}

// loadText prefers the OCR text artifact; born-digital flows without an
// OCR step fall back to the prior step output or the raw source.
func (t *Tagger) loadText(in entity.StepInput) (string, error) {
	if path, ok := in.Artifacts["extracted_text"]; ok && path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("tagger: read text artifact: %w", err)
		}
		return string(raw), nil
	}
	if len(in.Prior) > 0 {
		var prior entity.OCROutput
		if err := json.Unmarshal(in.Prior, &prior); err == nil && prior.Text != "" {
			return prior.Text, nil
		}
	}
	if in.SourcePath != "" && in.ContentType == "HTML" {
		raw, err := os.ReadFile(in.SourcePath)
		if err != nil {
			return "", fmt.Errorf("tagger: read source: %w", err)
		}
		return string(raw), nil
	}
	return "", nil
}

// TagText applies the line-shape heuristics: short lines without
// terminal punctuation become headings, dash/asterisk prefixes become
// list items, everything else is a paragraph.
func TagText(text string) []entity.Tag {
	var tags []entity.Tag
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		switch {
		case strings.HasPrefix(line, "- ") || strings.HasPrefix(line, "* "):
			tags = append(tags, entity.Tag{Kind: "list_item", Text: strings.TrimSpace(line[2:])})
		case len(line) <= 64 && !strings.HasSuffix(line, ".") && !strings.HasSuffix(line, ","):
			tags = append(tags, entity.Tag{Kind: "heading", Level: headingLevel(line), Text: line})
		default:
			tags = append(tags, entity.Tag{Kind: "paragraph", Text: line})
		}
	}
	return tags
}

// headingLevel guesses nesting: ALL-CAPS reads as a top-level heading.
func headingLevel(line string) int {
	if line == strings.ToUpper(line) && strings.ToLower(line) != line {
		return 1
	}
	return 2
}
