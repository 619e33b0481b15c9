// Package roster manages the ordered set of people splitting a bill.
package roster

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/mmynk/splitit/internal/models"
)

var (
	ErrEmptyName      = errors.New("name must not be empty")
	ErrNameUnchanged  = errors.New("name is unchanged")
	ErrPersonNotFound = errors.New("person not found")
)

// Roster is the ordered list of people in a split.
// Insertion order is the canonical order for display and summaries.
//
// Roster is not safe for concurrent use; session.Session serialises access.
type Roster struct {
	people []models.Person
	index  map[string]int
}

// New creates an empty roster.
func New() *Roster {
	return &Roster{index: make(map[string]int)}
}

// Add appends a person with a fresh ID and the trimmed name.
func (r *Roster) Add(name string) (models.Person, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Person{}, ErrEmptyName
	}

	person := models.Person{ID: uuid.New().String(), Name: name}
	r.index[person.ID] = len(r.people)
	r.people = append(r.people, person)
	return person, nil
}

// Rename replaces a person's name in place, keeping their ID and position.
func (r *Roster) Rename(id, newName string) (models.Person, error) {
	i, ok := r.index[id]
	if !ok {
		return models.Person{}, fmt.Errorf("%w: %s", ErrPersonNotFound, id)
	}
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return models.Person{}, ErrEmptyName
	}
	if r.people[i].Name == newName {
		return models.Person{}, ErrNameUnchanged
	}

	r.people[i].Name = newName
	return r.people[i], nil
}

// Remove deletes a person from the roster. Callers owning an assignment map
// must drop the person's links in the same critical section.
func (r *Roster) Remove(id string) error {
	i, ok := r.index[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrPersonNotFound, id)
	}

	r.people = append(r.people[:i], r.people[i+1:]...)
	delete(r.index, id)
	for j := i; j < len(r.people); j++ {
		r.index[r.people[j].ID] = j
	}
	return nil
}

// Get returns the person with the given ID.
func (r *Roster) Get(id string) (models.Person, bool) {
	i, ok := r.index[id]
	if !ok {
		return models.Person{}, false
	}
	return r.people[i], true
}

// Has reports whether the ID belongs to someone on the roster.
func (r *Roster) Has(id string) bool {
	_, ok := r.index[id]
	return ok
}

// Position returns the roster index of a person, or -1.
func (r *Roster) Position(id string) int {
	i, ok := r.index[id]
	if !ok {
		return -1
	}
	return i
}

// People returns a copy of the roster in order.
func (r *Roster) People() []models.Person {
	out := make([]models.Person, len(r.people))
	copy(out, r.people)
	return out
}

// Len returns the number of people on the roster.
func (r *Roster) Len() int {
	return len(r.people)
}

// Clone returns an independent copy of the roster.
func (r *Roster) Clone() *Roster {
	c := &Roster{
		people: r.People(),
		index:  make(map[string]int, len(r.index)),
	}
	for id, i := range r.index {
		c.index[id] = i
	}
	return c
}
