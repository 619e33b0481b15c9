// Package sqlite provides a SQLite-backed implementation of the storage.Store interface.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)

	"github.com/mmynk/splitit/internal/models"
	"github.com/mmynk/splitit/internal/storage"
)

// Ensure SQLiteStore implements storage.Store
var _ storage.Store = (*SQLiteStore)(nil)

// SQLiteStore implements storage.Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// New creates a new SQLiteStore with the given database path.
// It creates the parent directories and runs migrations automatically.
func New(dbPath string) (*SQLiteStore, error) {
	// Create parent directory if it doesn't exist
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	// Foreign keys are per connection, so enable them in the DSN for the whole pool.
	db, err := sql.Open("sqlite", dbPath+"?_pragma=foreign_keys(1)")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// SaveUpload persists an upload and its items in one transaction.
func (s *SQLiteStore) SaveUpload(ctx context.Context, upload *models.Upload) error {
	if upload.InstallationID == "" {
		return fmt.Errorf("upload requires an installation id")
	}
	if upload.ID == "" {
		upload.ID = uuid.New().String()
	}
	if upload.CreatedAt == 0 {
		upload.CreatedAt = time.Now().Unix()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO uploads (id, installation_id, session_id, total, total_tax, tip, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		upload.ID, upload.InstallationID, upload.SessionID,
		upload.Totals.Total.String(), upload.Totals.Tax.String(), upload.Totals.Tip.String(),
		upload.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert upload: %w", err)
	}

	for i, item := range upload.Items {
		id := item.ID
		if id == "" {
			id = uuid.New().String()
		}
		_, err = tx.ExecContext(ctx,
			"INSERT INTO upload_items (id, upload_id, position, description, price) VALUES (?, ?, ?, ?, ?)",
			id, upload.ID, i, item.Description, item.Price.String(),
		)
		if err != nil {
			return fmt.Errorf("failed to insert upload item: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
