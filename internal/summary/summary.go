// Package summary renders a calculated split for sharing.
package summary

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/mmynk/splitit/internal/calculator"
)

// Line is one person's entry in a shared summary.
type Line struct {
	Name  string `json:"name"`
	Total string `json:"total"`
}

// Money formats an amount as a 2-decimal currency string.
// This is the only place amounts are rounded.
func Money(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}

// Lines returns one line per person, in roster order.
func Lines(split *calculator.Split) []Line {
	lines := make([]Line, len(split.People))
	for i, ps := range split.People {
		lines[i] = Line{Name: ps.Name, Total: Money(ps.Total)}
	}
	return lines
}

// Text joins the lines into a plain-text summary, one person per line.
func Text(lines []Line) string {
	var b strings.Builder
	for _, line := range lines {
		fmt.Fprintf(&b, "%s: $%s\n", line.Name, line.Total)
	}
	return b.String()
}
