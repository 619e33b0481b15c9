package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/splitit/internal/models"
)

// CreateInstallation inserts a new installation into the database.
func (s *SQLiteStore) CreateInstallation(ctx context.Context, installation *models.Installation) error {
	if installation.ID == "" {
		installation.ID = uuid.New().String()
	}
	if installation.CreatedAt == 0 {
		installation.CreatedAt = time.Now().Unix()
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO installations (id, created_at) VALUES (?, ?)",
		installation.ID, installation.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create installation: %w", err)
	}

	return nil
}
