package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/edenbergel/SmartReceiptApp/internal/entity"
)

// ErrNotFound is returned when an expense id has no row.
var ErrNotFound = errors.New("expense not found")

// ExpenseRepository stores accepted expense records.
type ExpenseRepository interface {
	Save(ctx context.Context, e entity.Expense) (entity.Expense, error)
	List(ctx context.Context) ([]entity.Expense, error)
	GetByID(ctx context.Context, id uuid.UUID) (entity.Expense, error)
}

type expenseRepository struct {
	db     *sql.DB
	logger *slog.Logger
}

func NewExpenseRepository(db *sql.DB, logger *slog.Logger) ExpenseRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &expenseRepository{db: db, logger: logger}
}

func (r *expenseRepository) Save(ctx context.Context, e entity.Expense) (entity.Expense, error) {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}

	var items []byte
	if len(e.LineItems) > 0 {
		var err error
		items, err = json.Marshal(e.LineItems)
		if err != nil {
			return entity.Expense{}, fmt.Errorf("encode line items: %w", err)
		}
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO expenses (id, merchant, tx_date, amount, category, raw_text, line_items, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		e.ID.String(), e.Merchant, e.Date, e.Amount, e.Category,
		nullable(e.RawText), nullableBytes(items), e.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return entity.Expense{}, fmt.Errorf("insert expense: %w", err)
	}

	r.logger.Info("expense.saved", "id", e.ID, "merchant", e.Merchant, "amount", e.Amount)
	return e, nil
}

func (r *expenseRepository) List(ctx context.Context) ([]entity.Expense, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, merchant, tx_date, amount, category, raw_text, line_items, created_at
		 FROM expenses ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("query expenses: %w", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			r.logger.Warn("expense.rows_close_error", "error", cerr)
		}
	}()

	var out []entity.Expense
	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *expenseRepository) GetByID(ctx context.Context, id uuid.UUID) (entity.Expense, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, merchant, tx_date, amount, category, raw_text, line_items, created_at
		 FROM expenses WHERE id = $1`, id.String())
	e, err := scanExpense(row)
	if errors.Is(err, sql.ErrNoRows) {
		return entity.Expense{}, ErrNotFound
	}
	return e, err
}

type scanner interface {
	Scan(dest ...any) error
}

func scanExpense(s scanner) (entity.Expense, error) {
	var (
		e         entity.Expense
		idStr     string
		rawText   sql.NullString
		items     sql.NullString
		createdAt string
	)
	if err := s.Scan(&idStr, &e.Merchant, &e.Date, &e.Amount, &e.Category, &rawText, &items, &createdAt); err != nil {
		return entity.Expense{}, err
	}

	id, err := uuid.Parse(idStr)
	if err != nil {
		return entity.Expense{}, fmt.Errorf("parse expense id: %w", err)
	}
	e.ID = id
	e.RawText = rawText.String
	if items.Valid && items.String != "" {
		if err := json.Unmarshal([]byte(items.String), &e.LineItems); err != nil {
			return entity.Expense{}, fmt.Errorf("decode line items: %w", err)
		}
	}
	if ts, err := time.Parse(time.RFC3339Nano, createdAt); err == nil {
		e.CreatedAt = ts
	}
	return e, nil
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func nullableBytes(b []byte) any {
	if len(b) == 0 {
		return nil
	}
	return string(b)
}
