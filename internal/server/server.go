// Package server is the thin HTTP framing around the extraction
// pipelines and the expense store. Routing, upload limits and error
// translation live here; no extraction logic does.
package server

import (
	"log/slog"
	"net/http"

	"github.com/edenbergel/SmartReceiptApp/internal/export"
	"github.com/edenbergel/SmartReceiptApp/internal/extract"
	"github.com/edenbergel/SmartReceiptApp/internal/repository"
)

type Server struct {
	logger *slog.Logger

	// structured is nil when the cloud backend is not configured;
	// local always works.
	structured extract.Processor
	local      extract.Processor

	repo     repository.ExpenseRepository
	exporter *export.Service
}

func New(structured, local extract.Processor, repo repository.ExpenseRepository, exporter *export.Service, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		logger:     logger,
		structured: structured,
		local:      local,
		repo:       repo,
		exporter:   exporter,
	}
}

// Handler builds the route table.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleHealth)
	mux.HandleFunc("POST /ocr", s.handleOCR)
	mux.HandleFunc("POST /expenses", s.handleAcceptExpense)
	mux.HandleFunc("GET /expenses", s.handleListExpenses)
	mux.HandleFunc("GET /expenses/export", s.handleExport)
	return mux
}

// processor picks the cloud path when configured, local otherwise.
func (s *Server) processor() extract.Processor {
	if s.structured != nil {
		return s.structured
	}
	return s.local
}
