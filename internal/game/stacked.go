package game

import (
	"fmt"

	"construction21/internal/rng"
)

// stackedShuffle steers ShuffleDeck so that the deck deals a known sequence.
// It mirrors the shuffle on its own copy of the deck to pick each swap.
type stackedShuffle struct {
	sim    []Card
	want   []Card
	has    []bool
	wanted map[Card]bool
}

// StackedShuffle returns a Generator that makes every ShuffleDeck on a fresh
// deck deal the given cards first, in order. The rest of the deck follows in
// an arbitrary but fixed order. Used to replay a reported hand and in tests.
func StackedShuffle(deal ...Card) rng.Generator {
	if len(deal) > DeckSize {
		panic("cannot stack more than a deck of cards")
	}

	s := &stackedShuffle{
		want:   make([]Card, DeckSize),
		has:    make([]bool, DeckSize),
		wanted: make(map[Card]bool, len(deal)),
	}

	for k, c := range deal {
		key := Card{Rank: c.Rank, Suit: c.Suit}
		if s.wanted[key] {
			panic(fmt.Sprintf("card stacked twice: %s", key))
		}

		pos := DeckSize - 1 - k
		s.want[pos] = key
		s.has[pos] = true
		s.wanted[key] = true
	}

	return s
}

// Intn is called by the Fisher-Yates loop with n = j+1 for j from 51 down to 1
func (s *stackedShuffle) Intn(n int) int {
	j := n - 1
	if n == DeckSize || s.sim == nil {
		s.sim = orderedDeck()
	}

	i := j
	for idx := 0; idx <= j; idx++ {
		card := s.sim[idx]
		if s.has[j] && card == s.want[j] {
			i = idx
			break
		}
		if !s.has[j] && !s.wanted[card] {
			i = idx
			break
		}
	}

	s.sim[i], s.sim[j] = s.sim[j], s.sim[i]
	return i
}
