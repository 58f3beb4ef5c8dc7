// Package sqlite provides a SQLite-backed implementation of the storage.Store interface.
//
// Each save replaces the whole table for that entity kind inside a
// transaction, so the database always holds a complete snapshot of a store.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)

	"github.com/mmynk/gymdesk/internal/models"
	"github.com/mmynk/gymdesk/internal/storage"
)

// Ensure SQLiteStore implements storage.Store
var _ storage.Store = (*SQLiteStore)(nil)

// SQLiteStore implements storage.Store using SQLite.
type SQLiteStore struct {
	db     *sql.DB
	logger *slog.Logger
}

// New creates a new SQLiteStore with the given database path.
// It creates the parent directories and runs migrations automatically.
func New(dbPath string, logger *slog.Logger) (*SQLiteStore, error) {
	if logger == nil {
		logger = slog.Default()
	}

	// Create parent directory if it doesn't exist
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// One session, one connection.
	db.SetMaxOpenConns(1)

	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &SQLiteStore{db: db, logger: logger}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// LoadPlans returns the stored plans in store order.
func (s *SQLiteStore) LoadPlans(ctx context.Context) ([]models.Plan, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name, price, description FROM plans ORDER BY position LIMIT ?",
		models.MaxPlans,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query plans: %w", err)
	}
	defer rows.Close()

	var plans []models.Plan
	for rows.Next() {
		var p models.Plan
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.Description); err != nil {
			return nil, fmt.Errorf("failed to scan plan: %w", err)
		}
		plans = append(plans, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate plans: %w", err)
	}

	s.logger.Info("Loaded records", "kind", "plan", "count", len(plans))
	return plans, nil
}

// SavePlans replaces the stored plans.
func (s *SQLiteStore) SavePlans(ctx context.Context, plans []models.Plan) error {
	err := s.replace(ctx, "plans", len(plans), func(tx *sql.Tx) error {
		for i, p := range plans {
			_, err := tx.ExecContext(ctx,
				"INSERT INTO plans (position, id, name, price, description) VALUES (?, ?, ?, ?, ?)",
				i, p.ID, p.Name, p.Price, p.Description,
			)
			if err != nil {
				return fmt.Errorf("failed to insert plan %d: %w", p.ID, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	s.logger.Info("Saved records", "kind", "plan", "count", len(plans))
	return nil
}

// replace clears table and runs insert in one transaction.
func (s *SQLiteStore) replace(ctx context.Context, table string, count int, insert func(tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	// table is one of the constant names above, never operator input.
	if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
		return fmt.Errorf("failed to clear %s: %w", table, err)
	}
	if err := insert(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit %d %s: %w", count, table, err)
	}
	return nil
}
