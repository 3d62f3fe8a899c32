package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckPerfectPairs(t *testing.T) {
	tests := []struct {
		cards string
		name  string
		odds  int64
	}{
		{"7s,7s", "Perfect Pair", PerfectPairOdds},
		{"Qh,Qd", "Colored Pair", ColoredPairOdds},
		{"Qs,Qc", "Colored Pair", ColoredPairOdds},
		{"7s,7d", "Mixed Pair", MixedPairOdds},
		{"7s,8s", "None", 0},
		{"10s,Ks", "None", 0},
	}

	for _, tt := range tests {
		t.Run(tt.cards, func(t *testing.T) {
			c := CardsFromString(tt.cards)
			r := CheckPerfectPairs(c[0], c[1])
			assert.Equal(t, tt.name, r.Name)
			assert.Equal(t, tt.odds, r.Odds)
			assert.Equal(t, tt.odds > 0, r.Won())
		})
	}
}

func TestCheck21Plus3(t *testing.T) {
	tests := []struct {
		cards string
		name  string
		odds  int64
	}{
		{"7h,7h,7h", "Suited Trips", SuitedTripsOdds},
		{"5c,6c,7c", "Straight Flush", StraightFlushOdds},
		{"Qd,Kd,Ad", "Straight Flush", StraightFlushOdds},
		{"7s,7d,7c", "Three of a Kind", ThreeOfAKindOdds},
		{"9s,10d,Jc", "Straight", StraightOdds},
		{"As,2d,3c", "Straight", StraightOdds},
		{"Ks,Ad,Qc", "Straight", StraightOdds},
		{"2h,9h,Kh", "Flush", FlushOdds},
		{"Ks,Ad,2c", "None", 0},
		{"2s,9d,Kc", "None", 0},
		{"10s,10d,Kc", "None", 0},
	}

	for _, tt := range tests {
		t.Run(tt.cards, func(t *testing.T) {
			r := Check21Plus3(CardsFromString(tt.cards))
			assert.Equal(t, tt.name, r.Name)
			assert.Equal(t, tt.odds, r.Odds)
		})
	}

	assert.False(t, Check21Plus3(CardsFromString("7s,7d")).Won())
}
