package intake

import (
	"errors"
	"sort"
	"sync"
	"time"
)

var (
	// ErrSessionNotFound is returned for ids that were never opened or have been torn down.
	ErrSessionNotFound = errors.New("session not found")
	// ErrSessionExists is returned when opening an id that is already live.
	ErrSessionExists = errors.New("session already active")
)

// Registry maps live session ids to their sessions.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{sessions: make(map[string]*Session)}
}

// Open allocates a fresh session for id.
func (r *Registry) Open(id string, now time.Time) (*Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.sessions[id]; exists {
		return nil, ErrSessionExists
	}
	sess := newSession(id, now)
	r.sessions[id] = sess
	return sess, nil
}

// Get looks up a live session.
func (r *Registry) Get(id string) (*Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sess, ok := r.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return sess, nil
}

// Remove deletes id if it still maps to sess.
func (r *Registry) Remove(id string, sess *Session) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if cur, ok := r.sessions[id]; ok && cur == sess {
		delete(r.sessions, id)
	}
}

// IDs lists the live session ids in lexical order.
func (r *Registry) IDs() []string {
	r.mu.RLock()
	ids := make([]string, 0, len(r.sessions))
	for id := range r.sessions {
		ids = append(ids, id)
	}
	r.mu.RUnlock()

	sort.Strings(ids)
	return ids
}

// Len reports the number of live sessions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
