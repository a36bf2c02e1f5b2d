package steps

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/accessly/docpipeline/internal/entity"
)

type fakeRunner struct {
	stdout []byte
	err    error

	gotName string
	gotArgs []string
}

func (f *fakeRunner) Run(_ context.Context, name string, args ...string) ([]byte, []byte, error) {
	f.gotName = name
	f.gotArgs = args
	return f.stdout, nil, f.err
}

func TestOCRExtractsAndWritesArtifact(t *testing.T) {
	dir := t.TempDir()
	runner := &fakeRunner{stdout: []byte("Measured output text\nwith two lines\n")}

	ocr := NewOCR(OCRConfig{Binary: "tesseract", ArtifactDir: dir, Languages: "eng"}, nil).WithRunner(runner)
	docID := uuid.New()

	raw, err := ocr.Execute(context.Background(), entity.StepInput{
		DocumentID: docID,
		SourcePath: "/in/scan.pdf",
	})
	require.NoError(t, err)

	assert.Equal(t, "tesseract", runner.gotName)
	assert.Equal(t, []string{"/in/scan.pdf", "stdout", "-l", "eng"}, runner.gotArgs)

	var out entity.OCROutput
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Equal(t, "Measured output text\nwith two lines", out.Text)
	assert.Equal(t, "tesseract", out.Engine)
	assert.Greater(t, out.Confidence, 0.9)

	written, err := os.ReadFile(out.ArtifactPath)
	require.NoError(t, err)
	assert.Equal(t, out.Text, string(written))
}

func TestOCRRequiresSourcePath(t *testing.T) {
	ocr := NewOCR(OCRConfig{}, nil).WithRunner(&fakeRunner{})
	_, err := ocr.Execute(context.Background(), entity.StepInput{DocumentID: uuid.New()})
	assert.Error(t, err)
}

func TestOCRPropagatesEngineFailure(t *testing.T) {
	runner := &fakeRunner{err: errors.New("exit status 1")}
	ocr := NewOCR(OCRConfig{ArtifactDir: t.TempDir()}, nil).WithRunner(runner)

	_, err := ocr.Execute(context.Background(), entity.StepInput{
		DocumentID: uuid.New(),
		SourcePath: "/in/scan.pdf",
	})
	assert.ErrorContains(t, err, "exit status 1")
}

func TestConfidenceHeuristic(t *testing.T) {
	assert.Zero(t, confidence(""))
	assert.InDelta(t, 1.0, confidence("clean text"), 1e-9)
}
