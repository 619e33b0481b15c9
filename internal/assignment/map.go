// Package assignment records which people are splitting which items.
//
// The relation is many-to-many and is kept as two indexes: assignees per item
// and items per person. Removing a person is a single key removal on the
// reverse index plus a delete from each of that person's items.
package assignment

import (
	"errors"
	"fmt"
	"sort"
)

var (
	ErrItemNotFound   = errors.New("item not found")
	ErrPersonNotFound = errors.New("person not found")
)

// Directory resolves person IDs against the roster.
type Directory interface {
	Has(id string) bool
	Position(id string) int
}

type set map[string]struct{}

// Map is the assignment relation between catalog items and roster people.
// It is not safe for concurrent use; session.Session serialises access.
type Map struct {
	people    Directory
	itemOrder map[string]int
	byItem    map[string]set
	byPerson  map[string]set
}

// New creates an empty assignment map over the given catalog item IDs.
func New(itemIDs []string, people Directory) *Map {
	m := &Map{
		people:    people,
		itemOrder: make(map[string]int, len(itemIDs)),
		byItem:    make(map[string]set),
		byPerson:  make(map[string]set),
	}
	for i, id := range itemIDs {
		m.itemOrder[id] = i
	}
	return m
}

// SetAssignedPeople replaces the complete set of assignees for an item.
// Duplicate IDs are collapsed. If any ID is unknown nothing changes.
func (m *Map) SetAssignedPeople(itemID string, personIDs []string) error {
	if _, ok := m.itemOrder[itemID]; !ok {
		return fmt.Errorf("%w: %s", ErrItemNotFound, itemID)
	}
	next, err := m.personSet(personIDs)
	if err != nil {
		return err
	}

	for personID := range m.byItem[itemID] {
		m.unlink(itemID, personID)
	}
	for personID := range next {
		m.link(itemID, personID)
	}
	return nil
}

// SetItemsFor replaces the set of items linked to one person, leaving every
// other person's links alone. If any ID is unknown nothing changes.
func (m *Map) SetItemsFor(personID string, itemIDs []string) error {
	if !m.people.Has(personID) {
		return fmt.Errorf("%w: %s", ErrPersonNotFound, personID)
	}
	next := make(set, len(itemIDs))
	for _, itemID := range itemIDs {
		if _, ok := m.itemOrder[itemID]; !ok {
			return fmt.Errorf("%w: %s", ErrItemNotFound, itemID)
		}
		next[itemID] = struct{}{}
	}

	for itemID := range m.byPerson[personID] {
		m.unlink(itemID, personID)
	}
	for itemID := range next {
		m.link(itemID, personID)
	}
	return nil
}

// AssignedPeopleCount returns the number of distinct people linked to an item.
// This is the shared count used as the divisor when splitting its price.
func (m *Map) AssignedPeopleCount(itemID string) int {
	return len(m.byItem[itemID])
}

// AssigneesOf returns the people linked to an item, in roster order.
func (m *Map) AssigneesOf(itemID string) []string {
	ids := keys(m.byItem[itemID])
	sort.Slice(ids, func(i, j int) bool {
		return m.people.Position(ids[i]) < m.people.Position(ids[j])
	})
	return ids
}

// ItemsFor returns the items linked to a person, in catalog order.
func (m *Map) ItemsFor(personID string) []string {
	ids := keys(m.byPerson[personID])
	sort.Slice(ids, func(i, j int) bool {
		return m.itemOrder[ids[i]] < m.itemOrder[ids[j]]
	})
	return ids
}

// RemovePerson drops every link held by a person.
func (m *Map) RemovePerson(personID string) {
	for itemID := range m.byPerson[personID] {
		delete(m.byItem[itemID], personID)
		if len(m.byItem[itemID]) == 0 {
			delete(m.byItem, itemID)
		}
	}
	delete(m.byPerson, personID)
}

// Clone returns an independent copy that resolves people through dir.
func (m *Map) Clone(dir Directory) *Map {
	c := &Map{
		people:    dir,
		itemOrder: m.itemOrder,
		byItem:    make(map[string]set, len(m.byItem)),
		byPerson:  make(map[string]set, len(m.byPerson)),
	}
	for itemID, people := range m.byItem {
		for personID := range people {
			c.link(itemID, personID)
		}
	}
	return c
}

func (m *Map) personSet(personIDs []string) (set, error) {
	out := make(set, len(personIDs))
	for _, id := range personIDs {
		if !m.people.Has(id) {
			return nil, fmt.Errorf("%w: %s", ErrPersonNotFound, id)
		}
		out[id] = struct{}{}
	}
	return out, nil
}

func (m *Map) link(itemID, personID string) {
	if m.byItem[itemID] == nil {
		m.byItem[itemID] = make(set)
	}
	if m.byPerson[personID] == nil {
		m.byPerson[personID] = make(set)
	}
	m.byItem[itemID][personID] = struct{}{}
	m.byPerson[personID][itemID] = struct{}{}
}

func (m *Map) unlink(itemID, personID string) {
	delete(m.byItem[itemID], personID)
	if len(m.byItem[itemID]) == 0 {
		delete(m.byItem, itemID)
	}
	delete(m.byPerson[personID], itemID)
	if len(m.byPerson[personID]) == 0 {
		delete(m.byPerson, personID)
	}
}

func keys(s set) []string {
	out := make([]string, 0, len(s))
	for k := range s {
		out = append(out, k)
	}
	return out
}
