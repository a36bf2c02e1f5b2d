package steps

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/accessly/docpipeline/internal/entity"
)

func TestTagText(t *testing.T) {
	text := "INTRODUCTION\n" +
		"This report covers the quarterly results in detail.\n" +
		"\n" +
		"- first item\n" +
		"* second item\n" +
		"Background\n"

	tags := TagText(text)
	require.Len(t, tags, 5)

	assert.Equal(t, entity.Tag{Kind: "heading", Level: 1, Text: "INTRODUCTION"}, tags[0])
	assert.Equal(t, "paragraph", tags[1].Kind)
	assert.Equal(t, entity.Tag{Kind: "list_item", Text: "first item"}, tags[2])
	assert.Equal(t, entity.Tag{Kind: "list_item", Text: "second item"}, tags[3])
	assert.Equal(t, entity.Tag{Kind: "heading", Level: 2, Text: "Background"}, tags[4])
}

func TestTagTextEmpty(t *testing.T) {
	assert.Empty(t, TagText(""))
	assert.Empty(t, TagText("\n\n  \n"))
}

func TestTaggerPrefersTextArtifact(t *testing.T) {
	path := filepath.Join(t.TempDir(), "text.txt")
	require.NoError(t, os.WriteFile(path, []byte("HEADING\nA full sentence about nothing in particular."), 0o644))

	tagger := NewTagger(nil)
	raw, err := tagger.Execute(context.Background(), entity.StepInput{
		Artifacts: map[string]string{"extracted_text": path},
	})
	require.NoError(t, err)

	var out entity.TaggerOutput
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Equal(t, 1, out.HeadingCount)
	require.Len(t, out.Tags, 2)
	assert.Greater(t, out.Coverage, 0.0)
}

func TestTaggerFallsBackToPriorOutput(t *testing.T) {
	prior, err := json.Marshal(entity.OCROutput{Text: "SUMMARY\nNumbers went up."})
	require.NoError(t, err)

	tagger := NewTagger(nil)
	raw, err := tagger.Execute(context.Background(), entity.StepInput{Prior: prior})
	require.NoError(t, err)

	var out entity.TaggerOutput
	require.NoError(t, json.Unmarshal(raw, &out))
	require.Len(t, out.Tags, 2)
	assert.Equal(t, "heading", out.Tags[0].Kind)
}

func TestTaggerNoTextYieldsEmptyManifest(t *testing.T) {
	tagger := NewTagger(nil)
	raw, err := tagger.Execute(context.Background(), entity.StepInput{})
	require.NoError(t, err)

	var out entity.TaggerOutput
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Empty(t, out.Tags)
	assert.Zero(t, out.Coverage)
}
