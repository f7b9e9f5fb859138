package sim

import "sync"

// BestStore persists the best score across sessions.
type BestStore interface {
	LoadBest() (int, error)
	SaveBest(best int) error
}

// MemoryStore is an in-process BestStore.
type MemoryStore struct {
	mu    sync.Mutex
	best  int
	saves int
}

// NewMemoryStore creates a store holding an initial best score.
func NewMemoryStore(best int) *MemoryStore {
	return &MemoryStore{best: best}
}

// LoadBest returns the stored best score.
func (m *MemoryStore) LoadBest() (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.best, nil
}

// SaveBest stores the best score.
func (m *MemoryStore) SaveBest(best int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.best = best
	m.saves++
	return nil
}

// Saves returns how many times SaveBest was called.
func (m *MemoryStore) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}
