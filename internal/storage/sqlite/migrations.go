package sqlite

import "database/sql"

// schema contains the SQL statements to set up the database schema.
// These run on startup to ensure tables exist.
// Amounts are stored as decimal TEXT so they round-trip exactly.
const schema = `
CREATE TABLE IF NOT EXISTS installations (
    id TEXT PRIMARY KEY,
    created_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS uploads (
    id TEXT PRIMARY KEY,
    installation_id TEXT NOT NULL,
    session_id TEXT NOT NULL,
    total TEXT NOT NULL,
    total_tax TEXT NOT NULL,
    tip TEXT NOT NULL,
    created_at INTEGER NOT NULL,
    FOREIGN KEY (installation_id) REFERENCES installations(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS upload_items (
    id TEXT PRIMARY KEY,
    upload_id TEXT NOT NULL,
    position INTEGER NOT NULL,
    description TEXT NOT NULL,
    price TEXT NOT NULL,
    FOREIGN KEY (upload_id) REFERENCES uploads(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_uploads_installation_id ON uploads(installation_id);
CREATE INDEX IF NOT EXISTS idx_upload_items_upload_id ON upload_items(upload_id);
`

// runMigrations executes the schema setup.
func runMigrations(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
