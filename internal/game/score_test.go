package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateScore(t *testing.T) {
	tests := []struct {
		name     string
		cards    string
		expected int
	}{
		{"empty", "", 0},
		{"two aces", "As,Ad", 12},
		{"ace king", "As,Kd", 21},
		{"bust", "Ks,Qs,5h", 25},
		{"soft hand", "As,6d", 17},
		{"ace drops", "As,6d,9c", 16},
		{"three aces", "As,Ad,Ah", 13},
		{"four aces and seven", "As,Ad,Ah,Ac,7s", 21},
		{"faces", "Js,Qd", 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CalculateScore(CardsFromString(tt.cards)))
		})
	}
}

func TestCalculateScore_skipsInvalidCards(t *testing.T) {
	cards := append(CardsFromString("Ks,5d"), Card{Rank: 1, Suit: Spades}, Card{Rank: Ace, Suit: "stars"})
	assert.Equal(t, 15, CalculateScore(cards))
}

func TestIsBlackjack(t *testing.T) {
	a := assert.New(t)

	a.True(IsBlackjack(CardsFromString("As,Kd")))
	a.True(IsBlackjack(CardsFromString("10c,Ah")))
	a.False(IsBlackjack(CardsFromString("As,Kd,2c")))
	a.False(IsBlackjack(CardsFromString("7s,7d,7c")))
	a.False(IsBlackjack(CardsFromString("As,9d")))
}

func TestIsBust(t *testing.T) {
	a := assert.New(t)

	a.True(IsBust(CardsFromString("Ks,Qs,5h")))
	a.False(IsBust(CardsFromString("Ks,As,Qh")))
	a.False(IsBust(nil))
}

func TestIsSoft17(t *testing.T) {
	a := assert.New(t)

	a.True(IsSoft17(CardsFromString("As,6d")))
	a.True(IsSoft17(CardsFromString("As,2d,4c")))
	a.True(IsSoft17(CardsFromString("As,Ad,5c")))
	a.False(IsSoft17(CardsFromString("10s,7d")))
	a.False(IsSoft17(CardsFromString("As,6d,10c")))
	a.False(IsSoft17(CardsFromString("As,7d")))
}

func TestIsSoft(t *testing.T) {
	a := assert.New(t)
	a.True(IsSoft(CardsFromString("As,7d")))
	a.True(IsSoft(CardsFromString("As,Ad")))
	a.False(IsSoft(CardsFromString("As,7d,5c")))
	a.False(IsSoft(CardsFromString("10s,7d")))
	a.False(IsSoft(nil))
}
