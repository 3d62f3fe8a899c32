package player

import (
	"context"
	"sync"
)

// MemoryStore keeps players in memory. Used by the simulator and tests.
type MemoryStore struct {
	mu      sync.RWMutex
	players map[string]Player
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore returns an empty store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{players: make(map[string]Player)}
}

func (m *MemoryStore) GetOrCreate(_ context.Context, userID string, startingChips int64) (*Player, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.players[userID]
	if !ok {
		p = Player{UserID: userID, Chips: startingChips}
		m.players[userID] = p
	}

	return &p, nil
}

func (m *MemoryStore) SaveChips(_ context.Context, userID string, chips int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	p := m.players[userID]
	p.UserID = userID
	p.Chips = chips
	m.players[userID] = p
	return nil
}

func (m *MemoryStore) RecordRound(_ context.Context, userID string, t Tally) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.players[userID]
	if !ok {
		return ErrNotFound
	}

	p.Apply(t)
	m.players[userID] = p
	return nil
}

func (m *MemoryStore) SetDisplayName(_ context.Context, userID, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.players[userID]
	if !ok {
		return ErrNotFound
	}

	p.DisplayName = name
	m.players[userID] = p
	return nil
}

// Get returns a copy of the stored player
func (m *MemoryStore) Get(userID string) (Player, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	p, ok := m.players[userID]
	return p, ok
}
