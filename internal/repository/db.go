package repository

import (
	"context"
	"database/sql"
	"log/slog"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"

	"github.com/DriesFaems/thesis--evaluation/internal/common"
)

// Open connects to the evaluations database. The driver is picked from the
// DSN: postgres:// and postgresql:// go through pgx, anything else is
// treated as a SQLite file. The schema is bootstrapped on open.
func Open(ctx context.Context, cfg common.DatabaseConfig, logger *slog.Logger) (*sql.DB, error) {
	if logger == nil {
		logger = slog.Default()
	}
	driver := "sqlite"
	if strings.HasPrefix(cfg.DSN, "postgres://") || strings.HasPrefix(cfg.DSN, "postgresql://") {
		driver = "pgx"
	}
	logger.Info("connecting to database", "driver", driver)

	db, err := sql.Open(driver, cfg.DSN)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		return nil, common.WrapError(err, "open database")
	}
	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	pingCtx, cancel := context.WithTimeout(ctx, cfg.DialTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		logger.Error("database ping failed", "error", err)
		return nil, common.WrapError(err, "ping database")
	}

	if err := migrate(ctx, db); err != nil {
		_ = db.Close()
		logger.Error("schema bootstrap failed", "error", err)
		return nil, common.WrapError(err, "bootstrap schema")
	}

	logger.Info("successfully connected to database")
	return db, nil
}

// HealthCheck pings the database, bounded by timeout.
func HealthCheck(ctx context.Context, db *sql.DB, timeout time.Duration) error {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	return db.PingContext(ctx)
}

// Timestamps are stored as RFC3339 text so the schema works unchanged on
// both SQLite and Postgres. Statements run one by one; pgx's extended
// protocol rejects multi-statement strings.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS evaluations (
		id              TEXT PRIMARY KEY,
		student_name    TEXT NOT NULL DEFAULT '',
		student_id      TEXT NOT NULL DEFAULT '',
		thesis_title    TEXT NOT NULL DEFAULT '',
		thesis_points   DOUBLE PRECISION NOT NULL DEFAULT 0,
		defense_points  DOUBLE PRECISION NOT NULL DEFAULT 0,
		payload         TEXT NOT NULL,
		created_at      TEXT NOT NULL,
		updated_at      TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_evaluations_student_id ON evaluations (student_id)`,
}

func migrate(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
