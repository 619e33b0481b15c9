// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"

	"github.com/mmynk/splitit/internal/models"
)

// Store defines the interface for the persistence contract.
// It is write-only from the engine's point of view: sessions never read
// their own uploads back.
type Store interface {
	// CreateInstallation persists a new installation.
	// The installation.ID and CreatedAt fields are populated by the store if empty.
	CreateInstallation(ctx context.Context, installation *models.Installation) error

	// SaveUpload persists an ingested receipt keyed by its installation.
	// The upload.ID and CreatedAt fields are populated by the store if empty.
	SaveUpload(ctx context.Context, upload *models.Upload) error

	// Close releases any resources held by the store.
	Close() error
}
