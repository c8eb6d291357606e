// Package ocr shells out to the local tesseract binary to turn a
// receipt image into raw text. It is the fallback backend when no
// cloud document-understanding credentials are configured.
package ocr

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Tesseract   string // binary name or absolute path; if empty -> "tesseract"
	Lang        string // default "eng"
	TessdataDir string
	PSM         int // 6 is good for a uniform block of text
	OEM         int // 1 = LSTM; 0 uses the engine default
}

type Recognizer struct {
	cfg    Config
	runner Runner
	logger *slog.Logger
}

func NewRecognizer(cfg Config, logger *slog.Logger) *Recognizer {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Tesseract == "" {
		cfg.Tesseract = "tesseract"
	}
	if cfg.Lang == "" {
		cfg.Lang = "eng"
	}
	return &Recognizer{cfg: cfg, runner: execRunner{}, logger: logger}
}

// WithRunner swaps the command runner; tests use this to stub exec.
func (r *Recognizer) WithRunner(runner Runner) *Recognizer {
	r.runner = runner
	return r
}

// Recognize runs tesseract <path> stdout and returns the recognized
// text. The text is passed through untouched apart from trimming;
// structuring it is the extractor's job.
func (r *Recognizer) Recognize(ctx context.Context, path string) (string, error) {
	args := []string{path, "stdout", "-l", r.cfg.Lang}
	if r.cfg.TessdataDir != "" {
		args = append(args, "--tessdata-dir", r.cfg.TessdataDir)
	}
	if r.cfg.PSM > 0 {
		args = append(args, "--psm", strconv.Itoa(r.cfg.PSM))
	}
	if r.cfg.OEM > 0 {
		args = append(args, "--oem", strconv.Itoa(r.cfg.OEM))
	}

	start := time.Now()
	out, errb, err := r.runner.Run(ctx, r.cfg.Tesseract, args...)
	if err != nil {
		return "", fmt.Errorf("tesseract: %w (stderr: %s)", err, truncate(string(errb), 512))
	}

	text := strings.TrimSpace(string(out))
	r.logger.Debug("ocr.recognize_ok",
		"path", path,
		"lang", r.cfg.Lang,
		"bytes", len(text),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return text, nil
}
