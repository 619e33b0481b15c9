package sqlite

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/mmynk/splitit/internal/models"
)

func TestSQLiteStore(t *testing.T) {
	// Create temp directory for test database
	tempDir, err := os.MkdirTemp("", "splitit-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tempDir)

	dbPath := filepath.Join(tempDir, "nested", "test.db")
	store, err := New(dbPath)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	defer store.Close()

	ctx := context.Background()

	installation := &models.Installation{}
	t.Run("CreateInstallation generates ID", func(t *testing.T) {
		if err := store.CreateInstallation(ctx, installation); err != nil {
			t.Fatalf("CreateInstallation failed: %v", err)
		}
		if installation.ID == "" {
			t.Error("Expected installation ID to be generated")
		}
		if installation.CreatedAt == 0 {
			t.Error("Expected CreatedAt to be set")
		}
	})

	t.Run("SaveUpload stores items and exact amounts", func(t *testing.T) {
		upload := &models.Upload{
			InstallationID: installation.ID,
			SessionID:      "session-1",
			Items: models.Catalog{
				{ID: "item-1", Description: "Burger", Price: decimal.RequireFromString("10.00")},
				{ID: "item-2", Description: "Fries", Price: decimal.RequireFromString("4.10")},
			},
			Totals: models.Totals{
				Total: decimal.RequireFromString("18.30"),
				Tax:   decimal.RequireFromString("1.40"),
				Tip:   decimal.RequireFromString("2.80"),
			},
		}

		if err := store.SaveUpload(ctx, upload); err != nil {
			t.Fatalf("SaveUpload failed: %v", err)
		}
		if upload.ID == "" {
			t.Error("Expected upload ID to be generated")
		}

		var tax, tip string
		err := store.db.QueryRowContext(ctx,
			"SELECT total_tax, tip FROM uploads WHERE id = ? AND installation_id = ?",
			upload.ID, installation.ID,
		).Scan(&tax, &tip)
		if err != nil {
			t.Fatalf("Failed to read upload: %v", err)
		}
		if tax != "1.4" || tip != "2.8" {
			t.Errorf("Stored tax/tip = %s/%s, want 1.4/2.8", tax, tip)
		}

		rows, err := store.db.QueryContext(ctx,
			"SELECT description, price FROM upload_items WHERE upload_id = ? ORDER BY position",
			upload.ID,
		)
		if err != nil {
			t.Fatalf("Failed to read items: %v", err)
		}
		defer rows.Close()

		var got []string
		for rows.Next() {
			var desc, price string
			if err := rows.Scan(&desc, &price); err != nil {
				t.Fatalf("Failed to scan item: %v", err)
			}
			got = append(got, desc+"="+price)
		}
		if len(got) != 2 || got[0] != "Burger=10" || got[1] != "Fries=4.1" {
			t.Errorf("Stored items = %v", got)
		}
	})

	t.Run("SaveUpload requires a known installation", func(t *testing.T) {
		err := store.SaveUpload(ctx, &models.Upload{InstallationID: "unknown", SessionID: "s"})
		if err == nil {
			t.Error("Expected foreign key error for unknown installation, got nil")
		}
	})

	t.Run("SaveUpload requires an installation id", func(t *testing.T) {
		if err := store.SaveUpload(ctx, &models.Upload{}); err == nil {
			t.Error("Expected error for missing installation id, got nil")
		}
	})

	t.Run("SaveUpload with no items", func(t *testing.T) {
		upload := &models.Upload{InstallationID: installation.ID, SessionID: "session-2"}
		if err := store.SaveUpload(ctx, upload); err != nil {
			t.Fatalf("SaveUpload failed: %v", err)
		}
		var n int
		if err := store.db.QueryRowContext(ctx,
			"SELECT COUNT(*) FROM upload_items WHERE upload_id = ?", upload.ID,
		).Scan(&n); err != nil {
			t.Fatalf("Failed to count items: %v", err)
		}
		if n != 0 {
			t.Errorf("Expected 0 items, got %d", n)
		}
	})
}
