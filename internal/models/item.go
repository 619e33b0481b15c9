package models

import "github.com/shopspring/decimal"

// Item represents a single line item on a receipt.
type Item struct {
	// ID is the unique identifier for the item (UUID format).
	// Assigned on ingestion; two items with the same description and price
	// are still distinct purchases.
	ID string

	// Description is the name of the item as printed (e.g., "Burger").
	Description string

	// Price is the pre-tax price of this item. Never negative.
	Price decimal.Decimal
}

// Catalog is the ordered list of items parsed from one receipt.
// It is read-only once a session has been created from it.
type Catalog []Item

// IDs returns the item IDs in catalog order.
func (c Catalog) IDs() []string {
	ids := make([]string, len(c))
	for i, item := range c {
		ids[i] = item.ID
	}
	return ids
}

// Sum returns the total price of every item in the catalog.
func (c Catalog) Sum() decimal.Decimal {
	sum := decimal.Zero
	for _, item := range c {
		sum = sum.Add(item.Price)
	}
	return sum
}

// Totals holds the receipt-level amounts supplied by the receipt parser.
// They are not broken out per item.
type Totals struct {
	// Total is the declared receipt total. Informational only.
	Total decimal.Decimal

	// Tax is the aggregate tax to distribute proportionally.
	Tax decimal.Decimal

	// Tip is the aggregate tip to distribute proportionally.
	Tip decimal.Decimal
}
