package game

import "github.com/sirupsen/logrus"

// CalculateScore returns the best blackjack total for the cards.
// Aces count 11 and drop to 1 one at a time while the total is over 21.
// Malformed cards are skipped.
func CalculateScore(cards []Card) int {
	score, _ := scoreHand(cards)
	return score
}

// scoreHand also reports whether an ace is still being counted as 11
func scoreHand(cards []Card) (score int, soft bool) {
	aces := 0
	for i, card := range cards {
		points, ok := card.Points()
		if !ok {
			logrus.WithFields(logrus.Fields{
				"index": i,
				"rank":  int(card.Rank),
				"suit":  card.Suit,
			}).Warn("skipping invalid card while scoring")
			continue
		}

		if card.Rank == Ace {
			aces++
		}
		score += points
	}

	for score > 21 && aces > 0 {
		score -= 10
		aces--
	}

	return score, aces > 0
}

// IsBlackjack is exactly two cards totalling 21
func IsBlackjack(cards []Card) bool {
	return len(cards) == 2 && CalculateScore(cards) == 21
}

// IsBust returns true when the total is over 21
func IsBust(cards []Card) bool {
	return CalculateScore(cards) > 21
}

// IsSoft returns true while an ace in the hand still counts 11
func IsSoft(cards []Card) bool {
	_, soft := scoreHand(cards)
	return soft
}

// IsSoft17 is a 17 that only gets there by counting an ace as 11
func IsSoft17(cards []Card) bool {
	score, soft := scoreHand(cards)
	return score == 17 && soft
}
