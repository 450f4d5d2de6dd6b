package flow

import "sync"

// Store holds per-operator flow sessions. Implementations must be safe for
// concurrent use.
type Store interface {
	Get(userID int64) (State, bool)
	Set(userID int64, state State)
	Clear(userID int64)
}

// MemoryStore keeps sessions in process memory. Sessions do not survive a
// restart.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[int64]State
}

// NewMemoryStore creates an empty in-memory session store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[int64]State)}
}

// Get returns the operator's active session, if any.
func (m *MemoryStore) Get(userID int64) (State, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[userID]
	return s, ok
}

// Set replaces the operator's session.
func (m *MemoryStore) Set(userID int64, state State) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[userID] = state
}

// Clear discards the operator's session.
func (m *MemoryStore) Clear(userID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, userID)
}
