package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/edenbergel/SmartReceiptApp/internal/common"
	"github.com/edenbergel/SmartReceiptApp/internal/docai"
	"github.com/edenbergel/SmartReceiptApp/internal/export"
	"github.com/edenbergel/SmartReceiptApp/internal/extract"
	"github.com/edenbergel/SmartReceiptApp/internal/ocr"
	"github.com/edenbergel/SmartReceiptApp/internal/pipeline/structured"
	"github.com/edenbergel/SmartReceiptApp/internal/pipeline/textscan"
	"github.com/edenbergel/SmartReceiptApp/internal/repository"
	"github.com/edenbergel/SmartReceiptApp/internal/server"
)

func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

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

	repo := repository.NewExpenseRepository(db, logger)
	exporter := export.NewService(repo, logger)

	recognizer := ocr.NewRecognizer(ocr.Config{
		Tesseract:   cfg.OCR.Tesseract,
		Lang:        cfg.OCR.Lang,
		TessdataDir: cfg.OCR.TessdataDir,
	}, logger)
	local := textscan.NewPipeline(recognizer, logger)

	var cloud extract.Processor
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
		cloud = structured.NewPipeline(client, logger)
		logger.Info("document AI integration enabled")
	} else {
		logger.Info("document AI integration disabled; using local OCR fallback")
	}

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           server.New(cloud, local, repo, exporter, logger).Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("server shutdown", "error", err)
		}
	}()

	logger.Info("SmartReceipt OCR server listening", "addr", cfg.Server.Addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("server failed", "error", err)
		os.Exit(1)
	}
}
