// Package models defines the core domain models for Split It.
//
// # Models
//
//   - Item: one priced line from a parsed receipt. Immutable after ingestion.
//   - Catalog: the ordered items of one receipt.
//   - Totals: receipt-level total, tax and tip.
//   - Person: a participant in the split, identified by ID (names may repeat).
//   - Upload: the flat record persisted for each ingested receipt.
//   - Installation: the opaque identity uploads are keyed by.
//
// Which person is splitting which item is not recorded on either model. That
// relation lives in the assignment package so that removing a person never
// requires scanning every item.
//
// Monetary amounts use decimal.Decimal and are never rounded here; rounding to
// cents happens only when results are presented.
package models
