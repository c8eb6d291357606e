// Package textscan orchestrates the local path: upload -> tesseract
// text -> heuristic extraction.
package textscan

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/edenbergel/SmartReceiptApp/internal/entity"
	"github.com/edenbergel/SmartReceiptApp/internal/extract"
	"github.com/edenbergel/SmartReceiptApp/internal/textextract"
)

type Pipeline struct {
	Recognizer extract.TextRecognizer
	Logger     *slog.Logger
}

func NewPipeline(rec extract.TextRecognizer, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{Recognizer: rec, Logger: logger}
}

// Process writes the upload to a scratch file, recognizes it and runs
// the plain-text extractor. An empty recognition result is an upstream
// failure; extraction itself always succeeds.
func (p *Pipeline) Process(ctx context.Context, upload extract.Upload) (entity.ExtractedExpense, error) {
	path, cleanup, err := spill(upload)
	if err != nil {
		return entity.ExtractedExpense{}, fmt.Errorf("stage upload: %w", err)
	}
	defer cleanup()

	text, err := p.Recognizer.Recognize(ctx, path)
	if err != nil {
		return entity.ExtractedExpense{}, fmt.Errorf("recognize text: %w", err)
	}
	if strings.TrimSpace(text) == "" {
		return entity.ExtractedExpense{}, fmt.Errorf("empty OCR text")
	}

	expense := textextract.Extract(text)
	p.Logger.Info("textscan.extract.ok",
		"filename", upload.Filename,
		"text_bytes", len(text),
		"merchant", expense.Merchant,
		"date", expense.Date,
		"amount", expense.Amount,
		"category", expense.Category,
	)
	return expense, nil
}

func spill(upload extract.Upload) (string, func(), error) {
	ext := filepath.Ext(upload.Filename)
	f, err := os.CreateTemp("", "receipt-*"+ext)
	if err != nil {
		return "", nil, err
	}
	path := f.Name()
	cleanup := func() { _ = os.Remove(path) }
	if _, err := f.Write(upload.Data); err != nil {
		_ = f.Close()
		cleanup()
		return "", nil, err
	}
	if err := f.Close(); err != nil {
		cleanup()
		return "", nil, err
	}
	return path, cleanup, nil
}
