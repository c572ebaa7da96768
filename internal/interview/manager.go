package interview

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/aryan24-cs/StudyGenie/internal/catalog"
)

// Manager keeps live sessions by ID and serializes access to each one, so
// callers that share a session ID never mutate it concurrently.
type Manager struct {
	catalog *catalog.Catalog

	mu       sync.Mutex
	sessions map[string]*managedSession
}

type managedSession struct {
	mu      sync.Mutex
	session *Session
}

// NewManager creates a Manager whose sessions walk c.
func NewManager(c *catalog.Catalog) *Manager {
	return &Manager{
		catalog:  c,
		sessions: make(map[string]*managedSession),
	}
}

// Start creates a session and returns its ID.
func (m *Manager) Start() string {
	id := uuid.NewString()
	m.mu.Lock()
	m.sessions[id] = &managedSession{session: NewSession(m.catalog)}
	m.mu.Unlock()
	return id
}

// With runs fn while holding the session's lock.
func (m *Manager) With(id string, fn func(*Session) error) error {
	m.mu.Lock()
	ms, ok := m.sessions[id]
	m.mu.Unlock()
	if !ok {
		return fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}

	ms.mu.Lock()
	defer ms.mu.Unlock()
	return fn(ms.session)
}

// Submit submits the session and forgets it on success.
func (m *Manager) Submit(id string) ([]Response, error) {
	var out []Response
	err := m.With(id, func(s *Session) error {
		var err error
		out, err = s.Submit()
		return err
	})
	if err != nil {
		return nil, err
	}
	m.Discard(id)
	return out, nil
}

// Discard drops a session. Discarding an unknown ID is a no-op.
func (m *Manager) Discard(id string) {
	m.mu.Lock()
	delete(m.sessions, id)
	m.mu.Unlock()
}

// Len returns the number of live sessions.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}
