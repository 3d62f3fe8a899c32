package table

import (
	"context"
	"sync"
	"testing"

	"construction21/internal/game"
	"construction21/internal/player"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager(t *testing.T) {
	a := assert.New(t)
	ctx := context.Background()
	store := player.NewMemoryStore()
	m := NewManager(store, testOptions(""))

	t1, err := m.Get(ctx, "1")
	require.NoError(t, err)
	t2, err := m.Get(ctx, "1")
	require.NoError(t, err)
	a.Same(t1, t2)
	a.Equal(1, m.Len())
	a.Same(store, m.Store())

	_, err = t1.Bet(game.BetMain, 30)
	require.NoError(t, err)
	m.Flush()

	// a reloaded table picks up the saved balance
	m.Delete("1")
	a.Equal(0, m.Len())
	t3, err := m.Get(ctx, "1")
	require.NoError(t, err)
	a.NotSame(t1, t3)
	a.Equal(int64(70), t3.View().Chips)
}

func TestManager_concurrentGet(t *testing.T) {
	m := NewManager(player.NewMemoryStore(), testOptions(""))

	var wg sync.WaitGroup
	tables := make([]*Table, 20)
	for i := range tables {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			tbl, err := m.Get(context.Background(), "1")
			assert.NoError(t, err)
			tables[i] = tbl
		}(i)
	}
	wg.Wait()

	for _, tbl := range tables {
		assert.Same(t, tables[0], tbl)
	}
}

// slowStore holds GetOrCreate for one player until released
type slowStore struct {
	*player.MemoryStore

	slowID  string
	entered chan struct{}
	release chan struct{}
}

func (s *slowStore) GetOrCreate(ctx context.Context, userID string, startingChips int64) (*player.Player, error) {
	if userID == s.slowID {
		close(s.entered)
		<-s.release
	}
	return s.MemoryStore.GetOrCreate(ctx, userID, startingChips)
}

func TestManager_slowLoadDoesNotBlockOthers(t *testing.T) {
	a := assert.New(t)
	store := &slowStore{
		MemoryStore: player.NewMemoryStore(),
		slowID:      "slow",
		entered:     make(chan struct{}),
		release:     make(chan struct{}),
	}
	m := NewManager(store, testOptions(""))

	done := make(chan error, 1)
	go func() {
		_, err := m.Get(context.Background(), "slow")
		done <- err
	}()
	<-store.entered

	tbl, err := m.Get(context.Background(), "fast")
	require.NoError(t, err)
	a.Equal("fast", tbl.UserID())
	a.Equal(1, m.Len())

	close(store.release)
	require.NoError(t, <-done)
	a.Equal(2, m.Len())
}
