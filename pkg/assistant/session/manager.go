// Package session owns the lifecycle of in-memory conversation state.
package session

import (
	"ai-travelmate-be/internal/repository/memory"
	"ai-travelmate-be/pkg/store"

	"github.com/google/uuid"
)

// Manager handles session operations
type Manager struct {
	sessionRepo *memory.SessionRepository
}

// NewManager creates a new session manager
func NewManager(sessionRepo *memory.SessionRepository) *Manager {
	return &Manager{sessionRepo: sessionRepo}
}

// LoadOrCreate retrieves the live session or starts a fresh idle one. A
// session that expired from the cache comes back empty; the durable turn
// log is unaffected.
func (m *Manager) LoadOrCreate(sessionId uuid.UUID) *store.Session {
	sessionID := sessionId.String()
	sess, found := m.sessionRepo.Get(sessionID)
	if !found {
		sess = store.NewSession(sessionID)
	}
	return sess
}

// Save persists session state
func (m *Manager) Save(sess *store.Session) {
	m.sessionRepo.Save(sess)
}

// Destroy drops the in-memory state. Callers clear the durable log
// separately when the traveller asks for a full reset.
func (m *Manager) Destroy(sessionID string) {
	m.sessionRepo.Delete(sessionID)
}
