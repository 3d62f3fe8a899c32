package table

import (
	"context"
	"sync"

	"construction21/internal/player"
)

// Manager keeps one table per active player
type Manager struct {
	store  player.Store
	opts   Options
	tables map[string]*Table
	mu     sync.RWMutex
}

// NewManager returns a manager that seats players from store
func NewManager(store player.Store, opts Options) *Manager {
	return &Manager{
		store:  store,
		opts:   opts,
		tables: make(map[string]*Table),
	}
}

// Store returns the player store tables save to
func (m *Manager) Store() player.Store {
	return m.store
}

// Get returns the player's table, loading it from the store on first use
func (m *Manager) Get(ctx context.Context, userID string) (*Table, error) {
	m.mu.RLock()
	t, ok := m.tables[userID]
	m.mu.RUnlock()
	if ok {
		return t, nil
	}

	// load outside the lock so one slow store read does not stall other players
	loaded, err := Load(ctx, m.store, userID, m.opts)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	// another update for the same player may have seated them first
	if t, ok := m.tables[userID]; ok {
		return t, nil
	}

	m.tables[userID] = loaded
	return loaded, nil
}

// Delete drops the player's table after its saves finish. The next Get reloads from the store.
func (m *Manager) Delete(userID string) {
	m.mu.Lock()
	t, ok := m.tables[userID]
	delete(m.tables, userID)
	m.mu.Unlock()

	if ok {
		t.Flush()
	}
}

// Len returns the number of seated players
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.tables)
}

// Flush waits for every table's background saves
func (m *Manager) Flush() {
	m.mu.RLock()
	tables := make([]*Table, 0, len(m.tables))
	for _, t := range m.tables {
		tables = append(tables, t)
	}
	m.mu.RUnlock()

	for _, t := range tables {
		t.Flush()
	}
}
