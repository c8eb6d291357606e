// Command receipt-batch extracts every receipt under a directory and
// persists the records to the configured expense store.
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/edenbergel/SmartReceiptApp/internal/common"
	"github.com/edenbergel/SmartReceiptApp/internal/docai"
	"github.com/edenbergel/SmartReceiptApp/internal/extract"
	"github.com/edenbergel/SmartReceiptApp/internal/ingest"
	"github.com/edenbergel/SmartReceiptApp/internal/ocr"
	"github.com/edenbergel/SmartReceiptApp/internal/pipeline/structured"
	"github.com/edenbergel/SmartReceiptApp/internal/pipeline/textscan"
	"github.com/edenbergel/SmartReceiptApp/internal/repository"
)

func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if len(os.Args) != 2 {
		logger.Error("usage", "cmd", "receipt-batch <directory>")
		os.Exit(2)
	}
	root := os.Args[1]

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()

	db, err := repository.Open(ctx, repository.Config{
		DSN:         cfg.Database.DSN,
		DialTimeout: cfg.Database.DialTimeout,
	}, logger)
	if err != nil {
		logger.Error("open database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if cerr := db.Close(); cerr != nil {
			logger.Error("close database", "error", cerr)
		}
	}()

	var processor extract.Processor
	client := docai.NewClient(docai.Config{
		APIKey:       cfg.DocAI.APIKey,
		ModelID:      cfg.DocAI.ModelID,
		BaseURL:      cfg.DocAI.BaseURL,
		InitialDelay: cfg.DocAI.InitialDelay,
		PollInterval: cfg.DocAI.PollInterval,
		MaxPolls:     cfg.DocAI.MaxPolls,
		Timeout:      cfg.DocAI.Timeout,
	}, logger)
	if client.Enabled() {
		processor = structured.NewPipeline(client, logger)
	} else {
		recognizer := ocr.NewRecognizer(ocr.Config{
			Tesseract:   cfg.OCR.Tesseract,
			Lang:        cfg.OCR.Lang,
			TessdataDir: cfg.OCR.TessdataDir,
		}, logger)
		processor = textscan.NewPipeline(recognizer, logger)
	}

	batch := &ingest.Batch{
		Processor: processor,
		Repo:      repository.NewExpenseRepository(db, logger),
		Logger:    logger,
	}

	_, stats, err := batch.Run(ctx, root)
	if err != nil {
		logger.Error("batch failed", "error", err)
		os.Exit(1)
	}
	if stats.Failed > 0 {
		os.Exit(1)
	}
}
