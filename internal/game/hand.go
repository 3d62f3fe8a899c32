package game

// Hand is a set of cards with the wager riding on it
type Hand struct {
	Cards     []Card `json:"cards"`
	Bet       int64  `json:"bet"`
	IsSplit   bool   `json:"isSplit"`
	IsDoubled bool   `json:"isDoubled"`

	resolved bool
}

func newHand(bet int64) *Hand {
	return &Hand{
		Cards: make([]Card, 0, MaxCardsPerHand),
		Bet:   bet,
	}
}

// Score is the best total for the hand
func (h *Hand) Score() int {
	return CalculateScore(h.Cards)
}

// IsBust returns true if the hand is over 21
func (h *Hand) IsBust() bool {
	return IsBust(h.Cards)
}

// IsNatural is a two-card 21 that didn't come from a split
func (h *Hand) IsNatural() bool {
	return !h.IsSplit && IsBlackjack(h.Cards)
}

// Resolved returns true once the player can no longer act on the hand
func (h *Hand) Resolved() bool {
	return h.resolved
}

// canSplit checks only the cards; chips and hand count are checked by the engine
func (h *Hand) canSplit() bool {
	return len(h.Cards) == 2 && h.Cards[0].Rank == h.Cards[1].Rank
}

func (h *Hand) canDouble() bool {
	return len(h.Cards) == 2 && !h.IsDoubled
}
