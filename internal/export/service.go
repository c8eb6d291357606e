// Package export produces XLSX workbooks from stored expenses.
package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/edenbergel/SmartReceiptApp/internal/repository"
)

// Service is a tiny façade over the expense repository that produces
// XLSX bytes for exports.
type Service struct {
	repo   repository.ExpenseRepository
	logger *slog.Logger
}

func NewService(repo repository.ExpenseRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, logger: logger}
}

// ExpensesXLSX returns a workbook with one row per stored expense and
// a grand-total footer.
func (s *Service) ExpensesXLSX(ctx context.Context) ([]byte, error) {
	start := time.Now()

	expenses, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("query expenses: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Expenses"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Date",
		"Merchant",
		"Category",
		"Amount",
		"Line Items",
		"Accepted At",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	write := func(col, row int, v any) {
		cell, _ := excelize.CoordinatesToCellName(col, row)
		_ = f.SetCellValue(sheet, cell, v)
	}

	total := decimal.Zero
	row := 2
	for _, e := range expenses {
		write(1, row, e.Date)
		write(2, row, e.Merchant)
		write(3, row, e.Category)
		write(4, row, e.Amount)
		write(5, row, len(e.LineItems))
		write(6, row, e.CreatedAt.Format("2006-01-02"))

		total = total.Add(decimal.NewFromFloat(e.Amount))
		row++
	}

	write(3, row, "Total")
	write(4, row, total.RoundBank(2).InexactFloat64())

	_ = f.SetColWidth(sheet, "A", "A", 12)
	_ = f.SetColWidth(sheet, "B", "B", 28)
	_ = f.SetColWidth(sheet, "C", "C", 16)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"rows", len(expenses),
		"bytes", buf.Len(),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}
