package memory

import (
	"sync"

	"github.com/hupe1980/screenmesh/core"
)

// InMemoryStore is a process-local core.MemoryStore. It offers session-scoped
// load/save of SessionContext snapshots guarded by an RWMutex. Suitable for
// tests, examples and single-process deployments; swap for the sqlite store
// when contexts must survive restarts.
type InMemoryStore struct {
	mu       sync.RWMutex
	contexts map[string]core.SessionContext
}

var _ core.MemoryStore = (*InMemoryStore)(nil)

// NewInMemoryStore creates an empty in-memory session store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{contexts: make(map[string]core.SessionContext)}
}

// Load returns a deep copy of the stored context, or a fresh empty context
// when the session is unknown. It never fails.
func (m *InMemoryStore) Load(sessionID string) (core.SessionContext, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	sc, ok := m.contexts[sessionID]
	if !ok {
		return core.NewSessionContext(sessionID), nil
	}
	return sc.Clone(), nil
}

// Save stores a deep copy of the context under its session ID, overwriting
// any previous snapshot.
func (m *InMemoryStore) Save(sc core.SessionContext) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.contexts[sc.SessionID] = sc.Clone()
	return nil
}

// Delete removes the stored context for the session, if any.
func (m *InMemoryStore) Delete(sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.contexts, sessionID)
	return nil
}

// Len returns the number of stored sessions.
func (m *InMemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.contexts)
}
