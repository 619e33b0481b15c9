package models

// Upload is the flat record written to the persistent store for each
// ingested receipt. The engine never reads it back.
type Upload struct {
	// ID is the unique identifier for the upload (UUID format).
	ID string

	// InstallationID is the opaque identifier of the installation that
	// uploaded the receipt.
	InstallationID string

	// SessionID links the upload to the in-memory session created from it.
	SessionID string

	// Items are the parsed line items, in receipt order.
	Items Catalog

	// Totals are the receipt-level amounts.
	Totals Totals

	// CreatedAt is the Unix timestamp when the upload was recorded.
	CreatedAt int64
}

// Installation represents one client installation.
// Uploads are keyed by its ID.
type Installation struct {
	// ID is the opaque identifier for the installation (UUID format).
	ID string

	// CreatedAt is the Unix timestamp when the installation registered.
	CreatedAt int64
}
