package store

import (
	"sync"

	"mainstack/revenue/internal/filterstate"
)

// MockStore is an in-memory Store for tests.
type MockStore struct {
	mu    sync.Mutex
	State filterstate.PersistedCriteria
	Saves int

	LoadError error
	SaveError error
}

// Load returns the stored criteria.
func (m *MockStore) Load() (filterstate.PersistedCriteria, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.LoadError != nil {
		return filterstate.PersistedCriteria{}, m.LoadError
	}
	return m.State, nil
}

// Save records p.
func (m *MockStore) Save(p filterstate.PersistedCriteria) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SaveError != nil {
		return m.SaveError
	}
	m.State = p
	m.Saves++
	return nil
}
