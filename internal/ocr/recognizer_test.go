package ocr

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRunner struct {
	gotName string
	gotArgs []string
	stdout  string
	stderr  string
	err     error
}

func (s *stubRunner) Run(_ context.Context, name string, args ...string) ([]byte, []byte, error) {
	s.gotName = name
	s.gotArgs = args
	return []byte(s.stdout), []byte(s.stderr), s.err
}

func TestRecognize_BuildsCommandLine(t *testing.T) {
	runner := &stubRunner{stdout: " Super Café\nTotal 15,90 \n"}
	rec := NewRecognizer(Config{Lang: "fra", TessdataDir: "/opt/tessdata", PSM: 6, OEM: 1}, nil).WithRunner(runner)

	text, err := rec.Recognize(context.Background(), "/tmp/receipt.png")
	require.NoError(t, err)

	assert.Equal(t, "tesseract", runner.gotName)
	assert.Equal(t, []string{
		"/tmp/receipt.png", "stdout", "-l", "fra",
		"--tessdata-dir", "/opt/tessdata", "--psm", "6", "--oem", "1",
	}, runner.gotArgs)
	assert.Equal(t, "Super Café\nTotal 15,90", text)
}

func TestRecognize_DefaultsLangAndBinary(t *testing.T) {
	runner := &stubRunner{stdout: "ok"}
	rec := NewRecognizer(Config{}, nil).WithRunner(runner)

	_, err := rec.Recognize(context.Background(), "receipt.jpg")
	require.NoError(t, err)

	assert.Equal(t, "tesseract", runner.gotName)
	assert.Equal(t, []string{"receipt.jpg", "stdout", "-l", "eng"}, runner.gotArgs)
}

func TestRecognize_ExecFailureCarriesStderr(t *testing.T) {
	runner := &stubRunner{stderr: "cannot open image", err: errors.New("exit status 1")}
	rec := NewRecognizer(Config{}, nil).WithRunner(runner)

	_, err := rec.Recognize(context.Background(), "broken.png")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot open image")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "lo...(truncated)", truncate("long text", 2))
}
