package game

import "sort"

// Perfect Pairs odds, paid x:1
const (
	PerfectPairOdds = 25
	ColoredPairOdds = 12
	MixedPairOdds   = 6
)

// 21+3 odds, paid x:1
const (
	SuitedTripsOdds   = 100
	StraightFlushOdds = 40
	ThreeOfAKindOdds  = 30
	StraightOdds      = 10
	FlushOdds         = 5
)

// SideBetResult is how a side bet hand ranked and what it paid.
// Payout includes the returned stake and is only filled in at settlement.
type SideBetResult struct {
	Name   string `json:"name"`
	Odds   int64  `json:"odds"`
	Payout int64  `json:"payout"`
}

// Won returns true if the side bet hand qualified
func (s SideBetResult) Won() bool {
	return s.Odds > 0
}

var noSideBet = SideBetResult{Name: "None"}

// CheckPerfectPairs ranks the player's first two cards for the Perfect Pairs side bet
func CheckPerfectPairs(c1, c2 Card) SideBetResult {
	if c1.Rank != c2.Rank {
		return noSideBet
	}

	if c1.Suit == c2.Suit {
		return SideBetResult{Name: "Perfect Pair", Odds: PerfectPairOdds}
	}

	if c1.IsRed() == c2.IsRed() {
		return SideBetResult{Name: "Colored Pair", Odds: ColoredPairOdds}
	}

	return SideBetResult{Name: "Mixed Pair", Odds: MixedPairOdds}
}

// Check21Plus3 ranks the player's first two cards plus the dealer's up-card as a
// three-card poker hand. The ace plays low, and A-Q-K also counts as a straight.
func Check21Plus3(cards []Card) SideBetResult {
	if len(cards) != 3 {
		return noSideBet
	}

	ranks := []int{cards[0].pokerRank(), cards[1].pokerRank(), cards[2].pokerRank()}
	sort.Ints(ranks)

	isFlush := cards[0].Suit == cards[1].Suit && cards[1].Suit == cards[2].Suit
	isTrips := ranks[0] == ranks[1] && ranks[1] == ranks[2]
	isStraight := (ranks[1] == ranks[0]+1 && ranks[2] == ranks[1]+1) ||
		(ranks[0] == 1 && ranks[1] == 12 && ranks[2] == 13)

	switch {
	case isTrips && isFlush:
		return SideBetResult{Name: "Suited Trips", Odds: SuitedTripsOdds}
	case isStraight && isFlush:
		return SideBetResult{Name: "Straight Flush", Odds: StraightFlushOdds}
	case isTrips:
		return SideBetResult{Name: "Three of a Kind", Odds: ThreeOfAKindOdds}
	case isStraight:
		return SideBetResult{Name: "Straight", Odds: StraightOdds}
	case isFlush:
		return SideBetResult{Name: "Flush", Odds: FlushOdds}
	}

	return noSideBet
}
