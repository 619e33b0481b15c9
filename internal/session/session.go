// Package session ties one receipt's catalog to the roster and assignment map
// that evolve while a group splits it.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/splitit/internal/assignment"
	"github.com/mmynk/splitit/internal/calculator"
	"github.com/mmynk/splitit/internal/models"
	"github.com/mmynk/splitit/internal/roster"
)

// Session is one bill being split.
//
// Every mutation validates and applies inside a single critical section, so
// a concurrent read never observes a half-applied change and a rejected
// mutation leaves the session untouched.
type Session struct {
	ID             string
	InstallationID string
	CreatedAt      int64

	catalog models.Catalog
	totals  models.Totals

	mu          sync.Mutex
	roster      *roster.Roster
	assignments *assignment.Map
}

// New creates a session over an ingested catalog.
func New(installationID string, catalog models.Catalog, totals models.Totals) *Session {
	r := roster.New()
	return &Session{
		ID:             uuid.New().String(),
		InstallationID: installationID,
		CreatedAt:      time.Now().Unix(),
		catalog:        catalog,
		totals:         totals,
		roster:         r,
		assignments:    assignment.New(catalog.IDs(), r),
	}
}

// Catalog returns the session's items. The slice must not be modified.
func (s *Session) Catalog() models.Catalog {
	return s.catalog
}

// Totals returns the receipt-level totals.
func (s *Session) Totals() models.Totals {
	return s.totals
}

// AddPerson appends a person to the roster.
func (s *Session) AddPerson(name string) (models.Person, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.roster.Add(name)
}

// RenamePerson changes a person's display name.
func (s *Session) RenamePerson(personID, name string) (models.Person, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.roster.Rename(personID, name)
}

// RemovePerson removes a person and every assignment they hold.
func (s *Session) RemovePerson(personID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.roster.Remove(personID); err != nil {
		return err
	}
	s.assignments.RemovePerson(personID)
	return nil
}

// SetAssignedPeople replaces the assignees of one item.
func (s *Session) SetAssignedPeople(itemID string, personIDs []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.assignments.SetAssignedPeople(itemID, personIDs)
}

// AssignItems replaces the items one person is splitting.
func (s *Session) AssignItems(personID string, itemIDs []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.assignments.SetItemsFor(personID, itemIDs)
}

// Snapshot is a consistent copy of a session's mutable state.
type Snapshot struct {
	Catalog     models.Catalog
	Totals      models.Totals
	People      []models.Person
	Assignments *assignment.Map
}

// AssignedTo returns the people splitting each item, keyed by item ID.
func (s *Snapshot) AssignedTo() map[string][]string {
	out := make(map[string][]string, len(s.Catalog))
	for _, item := range s.Catalog {
		out[item.ID] = s.Assignments.AssigneesOf(item.ID)
	}
	return out
}

// Snapshot copies the roster and assignment map under the lock.
func (s *Session) Snapshot() *Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	r := s.roster.Clone()
	return &Snapshot{
		Catalog:     s.catalog,
		Totals:      s.totals,
		People:      r.People(),
		Assignments: s.assignments.Clone(r),
	}
}

// Calculate runs the calculator against a fresh snapshot. Nothing is cached.
func (s *Session) Calculate() (*calculator.Split, error) {
	snap := s.Snapshot()
	return calculator.CalculateSplit(snap.Catalog, snap.People, snap.Assignments, snap.Totals)
}
