// Package repository persists accepted expenses. The DSN picks the
// driver: postgres URLs run through pgx, anything else is treated as a
// local sqlite file (":memory:" works for tests).
package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

type Config struct {
	DSN         string
	DialTimeout time.Duration
}

const schemaSQL = `
CREATE TABLE IF NOT EXISTS expenses (
	id         TEXT PRIMARY KEY,
	merchant   TEXT NOT NULL,
	tx_date    TEXT NOT NULL,
	amount     REAL NOT NULL,
	category   TEXT NOT NULL,
	raw_text   TEXT,
	line_items TEXT,
	created_at TEXT NOT NULL
)`

// Open connects, pings and bootstraps the schema.
func Open(ctx context.Context, cfg Config, logger *slog.Logger) (*sql.DB, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.DialTimeout <= 0 {
		cfg.DialTimeout = 3 * time.Second
	}

	driver := "sqlite"
	if strings.HasPrefix(cfg.DSN, "postgres://") || strings.HasPrefix(cfg.DSN, "postgresql://") {
		driver = "pgx"
	}
	logger.Info("connecting to database", "driver", driver)

	db, err := sql.Open(driver, cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, cfg.DialTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if _, err := db.ExecContext(ctx, schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("bootstrap schema: %w", err)
	}

	logger.Info("successfully connected to database")
	return db, nil
}
