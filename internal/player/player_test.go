package player

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"construction21/internal/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testStore runs the behaviour every Store must share
func testStore(t *testing.T, s Store, userID string) {
	ctx := context.Background()

	p, err := s.GetOrCreate(ctx, userID, 100)
	require.NoError(t, err)
	assert.Equal(t, userID, p.UserID)
	assert.Equal(t, int64(100), p.Chips)
	assert.Equal(t, 0, p.Rounds)

	// an existing record ignores startingChips
	require.NoError(t, s.SaveChips(ctx, userID, 250))
	p, err = s.GetOrCreate(ctx, userID, 100)
	require.NoError(t, err)
	assert.Equal(t, int64(250), p.Chips)

	require.NoError(t, s.SetDisplayName(ctx, userID, "mallory"))
	require.NoError(t, s.RecordRound(ctx, userID, Tally{Wins: 2, Losses: 1}))
	require.NoError(t, s.RecordRound(ctx, userID, Tally{Pushes: 1}))

	// saving chips keeps the rest of the record
	require.NoError(t, s.SaveChips(ctx, userID, 75))
	p, err = s.GetOrCreate(ctx, userID, 100)
	require.NoError(t, err)
	assert.Equal(t, Player{
		UserID:      userID,
		DisplayName: "mallory",
		Chips:       75,
		Wins:        2,
		Losses:      1,
		Pushes:      1,
		Rounds:      2,
	}, *p)

	// saving an unknown user creates it
	require.NoError(t, s.SaveChips(ctx, userID+"-new", 42))
	p, err = s.GetOrCreate(ctx, userID+"-new", 100)
	require.NoError(t, err)
	assert.Equal(t, int64(42), p.Chips)

	assert.Equal(t, ErrNotFound, s.RecordRound(ctx, userID+"-missing", Tally{Wins: 1}))
	assert.Equal(t, ErrNotFound, s.SetDisplayName(ctx, userID+"-missing", "x"))
}

func TestMemoryStore(t *testing.T) {
	s := NewMemoryStore()
	testStore(t, s, "1")

	p, ok := s.Get("1")
	assert.True(t, ok)
	assert.Equal(t, int64(75), p.Chips)
}

func TestSQLiteStore(t *testing.T) {
	db, err := database.OpenSQLite(filepath.Join(t.TempDir(), "c21.db"))
	require.NoError(t, err)
	defer db.Close()

	testStore(t, NewSQLiteStore(db.DB), "1")
}

func TestPostgresStore(t *testing.T) {
	dsn := os.Getenv("TEST_PG_DSN")
	if dsn == "" {
		t.Skip("TEST_PG_DSN not set")
	}

	ctx := context.Background()
	db, err := database.OpenPostgres(ctx, dsn)
	require.NoError(t, err)
	defer db.Close()

	userID := "test-" + t.Name()
	_, err = db.Exec(ctx, `DELETE FROM players WHERE user_id LIKE $1`, userID+"%")
	require.NoError(t, err)

	testStore(t, NewPostgresStore(db.Pool), userID)
}

func TestPlayer_WinRate(t *testing.T) {
	p := &Player{}
	assert.Equal(t, float64(0), p.WinRate())

	p.Apply(Tally{Wins: 3, Losses: 1, Pushes: 4})
	assert.Equal(t, float64(75), p.WinRate())
	assert.Equal(t, 1, p.Rounds)
	assert.False(t, Tally{Pushes: 1}.Empty())
	assert.True(t, Tally{}.Empty())
}
