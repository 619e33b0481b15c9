package receipt

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	doc := `{
		"items": [
			{"description": " Burger ", "price": 10.00},
			{"description": "Fries", "price": "4.00"},
			{"description": "Fries", "price": 4}
		],
		"total": 18.20,
		"total_tax": 1.40,
		"tip": 2.80,
		"merchant": "ignored"
	}`

	rc, err := Decode(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, rc.Items, 3)

	catalog := rc.Catalog()
	assert.Equal(t, "Burger", catalog[0].Description)
	assert.True(t, catalog[1].Price.Equal(decimal.NewFromInt(4)))
	assert.NotEqual(t, catalog[1].ID, catalog[2].ID, "identical lines are distinct items")

	totals := rc.Totals()
	assert.True(t, totals.Total.Equal(decimal.RequireFromString("18.2")))
	assert.True(t, totals.Tax.Equal(decimal.RequireFromString("1.4")))
	assert.True(t, totals.Tip.Equal(decimal.RequireFromString("2.8")))
}

func TestDecode_FreshIDsPerIngestion(t *testing.T) {
	rc, err := Decode(strings.NewReader(`{"items":[{"description":"Tea","price":3}]}`))
	require.NoError(t, err)
	assert.NotEqual(t, rc.Catalog()[0].ID, rc.Catalog()[0].ID)
}

func TestDecode_EmptyReceipt(t *testing.T) {
	rc, err := Decode(strings.NewReader(`{}`))
	require.NoError(t, err)
	assert.Empty(t, rc.Catalog())
	assert.True(t, rc.Totals().Tax.IsZero())
}

func TestDecode_Rejects(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"malformed json", `{"items": [`},
		{"negative price", `{"items":[{"description":"Refund","price":-1}]}`},
		{"negative tax", `{"total_tax": -0.5}`},
		{"negative tip", `{"tip": -2}`},
		{"negative total", `{"total": -10}`},
		{"tiny negative price", `{"items":[{"description":"Tea","price":"-1e-400"}]}`},
		{"tiny negative price as number", `{"items":[{"description":"Tea","price":-1e-400}]}`},
		{"tiny negative tax", `{"total_tax":"-1e-400"}`},
		{"tiny negative tip", `{"tip":"-1e-400"}`},
		{"non-numeric price", `{"items":[{"description":"Tea","price":"abc"}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.doc))
			assert.ErrorIs(t, err, ErrInvalidReceipt)
		})
	}
}
