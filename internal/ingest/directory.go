// Package ingest batch-processes a directory of receipt files through
// an extraction pipeline, optionally persisting every record.
package ingest

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/edenbergel/SmartReceiptApp/constants"
	"github.com/edenbergel/SmartReceiptApp/internal/entity"
	"github.com/edenbergel/SmartReceiptApp/internal/extract"
	"github.com/edenbergel/SmartReceiptApp/internal/repository"
)

type FileResult struct {
	Path    string
	Expense entity.ExtractedExpense
	Err     string
}

type DirStats struct {
	Scanned   uint32
	Matched   uint32
	Succeeded uint32
	Failed    uint32
}

type Batch struct {
	Processor extract.Processor
	Repo      repository.ExpenseRepository // nil: extract only, don't persist
	Logger    *slog.Logger
}

// Run walks root, filters receipt-looking files and processes each
// one. Per-file failures are collected, not fatal.
func (b *Batch) Run(ctx context.Context, root string) ([]FileResult, DirStats, error) {
	if strings.TrimSpace(root) == "" {
		return nil, DirStats{}, errors.New("root path is required")
	}
	logger := b.Logger
	if logger == nil {
		logger = slog.Default()
	}

	var results []FileResult
	var stats DirStats

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if d.IsDir() {
			if strings.HasPrefix(d.Name(), ".") && path != root {
				return filepath.SkipDir
			}
			return nil
		}

		stats.Scanned++
		if !constants.IsAllowedExt(filepath.Ext(path)) || strings.HasPrefix(d.Name(), ".") {
			return nil
		}
		stats.Matched++

		result := FileResult{Path: path}
		expense, perr := b.processFile(ctx, path)
		if perr != nil {
			stats.Failed++
			result.Err = perr.Error()
			logger.Warn("ingest.file_failed", "path", path, "error", perr)
		} else {
			stats.Succeeded++
			result.Expense = expense
		}
		results = append(results, result)
		return nil
	})
	if err != nil {
		return results, stats, err
	}

	logger.Info("ingest.done",
		"root", root,
		"scanned", stats.Scanned,
		"matched", stats.Matched,
		"succeeded", stats.Succeeded,
		"failed", stats.Failed,
	)
	return results, stats, nil
}

func (b *Batch) processFile(ctx context.Context, path string) (entity.ExtractedExpense, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return entity.ExtractedExpense{}, err
	}

	expense, err := b.Processor.Process(ctx, extract.Upload{
		Filename: filepath.Base(path),
		Data:     data,
	})
	if err != nil {
		return entity.ExtractedExpense{}, err
	}

	if b.Repo != nil {
		if _, err := b.Repo.Save(ctx, entity.FromExtracted(expense)); err != nil {
			return expense, err
		}
	}
	return expense, nil
}
