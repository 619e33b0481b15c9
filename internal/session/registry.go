package session

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"
)

var ErrSessionNotFound = errors.New("session not found")

type entry struct {
	session  *Session
	lastSeen atomic.Int64 // unix nanoseconds
}

// Registry holds the live sessions of this process.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*entry
	now      func() time.Time
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		sessions: make(map[string]*entry),
		now:      time.Now,
	}
}

// Put stores a session under its ID.
func (r *Registry) Put(s *Session) {
	e := &entry{session: s}
	e.lastSeen.Store(r.now().UnixNano())

	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[s.ID] = e
}

// Get returns the session with the given ID and marks it as used.
func (r *Registry) Get(id string) (*Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.sessions[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	e.lastSeen.Store(r.now().UnixNano())
	return e.session, nil
}

// Delete removes a session.
func (r *Registry) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sessions[id]; !ok {
		return fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	delete(r.sessions, id)
	return nil
}

// Expire removes every session not used within ttl and returns their IDs.
func (r *Registry) Expire(ttl time.Duration) []string {
	cutoff := r.now().Add(-ttl).UnixNano()

	r.mu.Lock()
	defer r.mu.Unlock()
	var expired []string
	for id, e := range r.sessions {
		if e.lastSeen.Load() < cutoff {
			delete(r.sessions, id)
			expired = append(expired, id)
		}
	}
	return expired
}

// Len returns the number of live sessions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
