package player

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a player has no record
var ErrNotFound = errors.New("player not found")

// Player is the persisted record for one user
type Player struct {
	UserID      string `json:"userId"`
	DisplayName string `json:"displayName"`
	Chips       int64  `json:"chips"`
	Wins        int    `json:"wins"`
	Losses      int    `json:"losses"`
	Pushes      int    `json:"pushes"`
	Rounds      int    `json:"rounds"`
}

// Tally counts hand outcomes in one settled round. A split round can
// record more than one outcome.
type Tally struct {
	Wins   int `json:"wins"`
	Losses int `json:"losses"`
	Pushes int `json:"pushes"`
}

// Empty returns true if nothing was counted
func (t Tally) Empty() bool {
	return t.Wins == 0 && t.Losses == 0 && t.Pushes == 0
}

// Store persists chip balances between sessions
type Store interface {
	// GetOrCreate loads a player, creating the record with startingChips if missing
	GetOrCreate(ctx context.Context, userID string, startingChips int64) (*Player, error)

	// SaveChips writes the balance. Other fields of an existing record are kept.
	SaveChips(ctx context.Context, userID string, chips int64) error

	// RecordRound adds one round and its outcomes to the player's stats
	RecordRound(ctx context.Context, userID string, tally Tally) error

	// SetDisplayName updates the name shown for the player
	SetDisplayName(ctx context.Context, userID, name string) error
}

// Apply adds a round's tally to the stats
func (p *Player) Apply(t Tally) {
	p.Wins += t.Wins
	p.Losses += t.Losses
	p.Pushes += t.Pushes
	p.Rounds++
}

// WinRate is the percentage of decided hands that were won
func (p *Player) WinRate() float64 {
	decided := p.Wins + p.Losses
	if decided == 0 {
		return 0
	}
	return float64(p.Wins) / float64(decided) * 100
}
