package calculator

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/mmynk/splitit/internal/models"
)

var ErrNegativeAmount = errors.New("amount cannot be negative")

// Assignments resolves which people are splitting an item.
type Assignments interface {
	AssigneesOf(itemID string) []string
}

// ItemShare is one person's portion of one item.
type ItemShare struct {
	ItemID      string
	Description string
	Price       decimal.Decimal
	SharedCount int
	Share       decimal.Decimal // Price / SharedCount
}

// PersonSplit represents the calculated split for one person.
// Amounts are unrounded; round only when presenting.
type PersonSplit struct {
	PersonID string
	Name     string
	Subtotal decimal.Decimal
	Tax      decimal.Decimal
	Tip      decimal.Decimal
	Total    decimal.Decimal
	Items    []ItemShare
}

// Split is the derived snapshot for a whole bill.
type Split struct {
	// People holds one entry per roster person, in roster order.
	People []PersonSplit

	// Subtotal is the sum of every person's subtotal, which equals the sum of
	// the prices of items with at least one assignee.
	Subtotal decimal.Decimal

	Tax decimal.Decimal
	Tip decimal.Decimal

	// Unassigned is the sum of the prices of items nobody is splitting.
	Unassigned decimal.Decimal
}

// Total returns the sum of every person's total.
func (s *Split) Total() decimal.Decimal {
	sum := decimal.Zero
	for _, p := range s.People {
		sum = sum.Add(p.Total)
	}
	return sum
}

// Person returns the split for one person.
func (s *Split) Person(personID string) (PersonSplit, bool) {
	for _, p := range s.People {
		if p.PersonID == personID {
			return p, true
		}
	}
	return PersonSplit{}, false
}

// CalculateSplit computes how much each person owes including proportional tax and tip.
//
// Algorithm:
//   - each item's price is divided evenly among its assignees; items with no
//     assignees contribute nothing to anyone
//   - person_tax = person_subtotal × total_tax / bill_subtotal (likewise for tip)
//   - when nothing is assigned, every share is zero
//
// The function is pure: it keeps no state between calls and never rounds.
func CalculateSplit(items []models.Item, people []models.Person, assignments Assignments, totals models.Totals) (*Split, error) {
	if totals.Tax.IsNegative() {
		return nil, fmt.Errorf("%w: tax %s", ErrNegativeAmount, totals.Tax)
	}
	if totals.Tip.IsNegative() {
		return nil, fmt.Errorf("%w: tip %s", ErrNegativeAmount, totals.Tip)
	}

	split := &Split{
		People:     make([]PersonSplit, len(people)),
		Subtotal:   decimal.Zero,
		Tax:        totals.Tax,
		Tip:        totals.Tip,
		Unassigned: decimal.Zero,
	}
	position := make(map[string]int, len(people))
	for i, p := range people {
		position[p.ID] = i
		split.People[i] = PersonSplit{
			PersonID: p.ID,
			Name:     p.Name,
			Subtotal: decimal.Zero,
			Tax:      decimal.Zero,
			Tip:      decimal.Zero,
			Total:    decimal.Zero,
		}
	}

	// Calculate each person's subtotal based on assigned items
	for _, item := range items {
		if item.Price.IsNegative() {
			return nil, fmt.Errorf("%w: item %q price %s", ErrNegativeAmount, item.Description, item.Price)
		}

		assignees := assignments.AssigneesOf(item.ID)
		if len(assignees) == 0 {
			split.Unassigned = split.Unassigned.Add(item.Price)
			continue
		}

		share := item.Price.Div(decimal.NewFromInt(int64(len(assignees))))
		for _, personID := range assignees {
			i, ok := position[personID]
			if !ok {
				continue
			}
			ps := &split.People[i]
			ps.Subtotal = ps.Subtotal.Add(share)
			ps.Items = append(ps.Items, ItemShare{
				ItemID:      item.ID,
				Description: item.Description,
				Price:       item.Price,
				SharedCount: len(assignees),
				Share:       share,
			})
		}
	}

	for _, ps := range split.People {
		split.Subtotal = split.Subtotal.Add(ps.Subtotal)
	}
	if split.Subtotal.IsNegative() {
		return nil, fmt.Errorf("%w: subtotal %s", ErrNegativeAmount, split.Subtotal)
	}

	// Apply proportional tax and tip and calculate totals
	for i := range split.People {
		ps := &split.People[i]
		if split.Subtotal.IsPositive() {
			ps.Tax = proportion(ps.Subtotal, split.Subtotal, totals.Tax)
			ps.Tip = proportion(ps.Subtotal, split.Subtotal, totals.Tip)
		}
		ps.Total = ps.Subtotal.Add(ps.Tax).Add(ps.Tip)
	}

	return split, nil
}

// proportion returns part/whole × amount, multiplying first to keep precision.
func proportion(part, whole, amount decimal.Decimal) decimal.Decimal {
	return part.Mul(amount).Div(whole)
}
