package server

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/edenbergel/SmartReceiptApp/constants"
	"github.com/edenbergel/SmartReceiptApp/internal/common"
	"github.com/edenbergel/SmartReceiptApp/internal/entity"
	"github.com/edenbergel/SmartReceiptApp/internal/extract"
)

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"message": "SmartReceipt OCR service",
	})
}

// handleOCR accepts a multipart "receipt" file, runs the configured
// extraction pipeline and returns the canonical record. Extraction
// failures surface as one human-readable message; the normalization
// engine itself is never the source of an error.
func (s *Server) handleOCR(w http.ResponseWriter, r *http.Request) {
	rid := uuid.New().String()
	ctx := common.WithRequestID(r.Context(), rid)

	r.Body = http.MaxBytesReader(w, r.Body, constants.MaxUploadBytes)
	file, header, err := r.FormFile("receipt")
	if err != nil {
		common.WriteHTTPError(w, http.StatusBadRequest, "Missing receipt file", nil)
		return
	}
	defer func() { _ = file.Close() }()

	if !constants.IsAllowedExt(filepath.Ext(header.Filename)) {
		common.WriteHTTPError(w, http.StatusBadRequest, "Unsupported file type", fmt.Errorf("extension %q", filepath.Ext(header.Filename)))
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		common.WriteHTTPError(w, http.StatusBadRequest, "Failed to read receipt file", err)
		return
	}

	upload := extract.Upload{Filename: header.Filename, Data: data}
	expense, err := s.processor().Process(ctx, upload)
	if err != nil {
		s.logger.Error("ocr.process_failed", "req_id", rid, "filename", header.Filename, "error", err)
		common.WriteHTTPError(w, http.StatusInternalServerError, "Failed to process receipt", err)
		return
	}

	writeJSON(w, http.StatusOK, expense)
}

// handleAcceptExpense persists a reviewed canonical record.
func (s *Server) handleAcceptExpense(w http.ResponseWriter, r *http.Request) {
	var record entity.ExtractedExpense
	if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
		common.WriteHTTPError(w, http.StatusBadRequest, "Invalid expense payload", err)
		return
	}
	if record.Merchant == "" {
		record.Merchant = entity.UnknownMerchant
	}
	cat, _ := constants.Canonicalize(record.Category)
	record.Category = string(cat)

	saved, err := s.repo.Save(r.Context(), entity.FromExtracted(record))
	if err != nil {
		s.logger.Error("expenses.save_failed", "error", err)
		common.WriteHTTPError(w, http.StatusInternalServerError, "Failed to save expense", err)
		return
	}
	writeJSON(w, http.StatusCreated, saved)
}

func (s *Server) handleListExpenses(w http.ResponseWriter, r *http.Request) {
	expenses, err := s.repo.List(r.Context())
	if err != nil {
		s.logger.Error("expenses.list_failed", "error", err)
		common.WriteHTTPError(w, http.StatusInternalServerError, "Failed to list expenses", err)
		return
	}
	if expenses == nil {
		expenses = []entity.Expense{}
	}
	writeJSON(w, http.StatusOK, expenses)
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	data, err := s.exporter.ExpensesXLSX(r.Context())
	if err != nil {
		s.logger.Error("expenses.export_failed", "error", err)
		common.WriteHTTPError(w, http.StatusInternalServerError, "Failed to export expenses", err)
		return
	}
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="expenses.xlsx"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
