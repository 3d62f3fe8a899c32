package game

import "github.com/sirupsen/logrus"

// Outcome is how a player hand finished against the dealer
type Outcome string

// Outcome constants
const (
	OutcomeBlackjack       Outcome = "blackjack"
	OutcomeWin             Outcome = "win"
	OutcomePush            Outcome = "push"
	OutcomeBust            Outcome = "bust"
	OutcomeDealerBlackjack Outcome = "dealer_blackjack"
	OutcomeLose            Outcome = "lose"
)

// HandResult is the settlement of one player hand.
// Payout is what was credited, stake included.
type HandResult struct {
	Outcome Outcome `json:"outcome"`
	Bet     int64   `json:"bet"`
	Payout  int64   `json:"payout"`
}

// Net is the profit or loss on the hand
func (h HandResult) Net() int64 {
	return h.Payout - h.Bet
}

// Settlement is everything paid out at the end of a round
type Settlement struct {
	Hands              []HandResult  `json:"hands"`
	DealerScore        int           `json:"dealerScore"`
	DealerBlackjack    bool          `json:"dealerBlackjack"`
	PerfectPairs       SideBetResult `json:"perfectPairs"`
	TwentyOnePlusThree SideBetResult `json:"twentyOnePlusThree"`
	InsurancePayout    int64         `json:"insurancePayout"`
}

// Total is every chip credited back to the balance
func (s *Settlement) Total() int64 {
	total := s.PerfectPairs.Payout + s.TwentyOnePlusThree.Payout + s.InsurancePayout
	for _, h := range s.Hands {
		total += h.Payout
	}

	return total
}

// blackjackPayout is stake plus 3:2. The half chip on an odd bet goes to the house.
func blackjackPayout(bet int64) int64 {
	return bet*2 + bet/2
}

// SettleHands reveals the dealer, pays every player hand, the side bets and
// insurance, and zeroes all bets. A round can only be settled once.
func (e *Engine) SettleHands() (*Settlement, error) {
	if e.settled {
		return nil, ErrRoundSettled
	}

	if e.state != StateDealerRevealing {
		return nil, ErrHandsUnresolved
	}

	e.RevealDealer()
	dealerScore := e.dealer.Score()
	dealerBlackjack := IsBlackjack(e.dealer.Cards)

	s := &Settlement{
		Hands:              make([]HandResult, 0, len(e.hands)),
		DealerScore:        dealerScore,
		DealerBlackjack:    dealerBlackjack,
		PerfectPairs:       noSideBet,
		TwentyOnePlusThree: noSideBet,
	}

	for _, hand := range e.hands {
		result := e.settleHand(hand, dealerScore, dealerBlackjack)
		e.credit(result.Payout)
		s.Hands = append(s.Hands, result)
	}

	if len(e.initialCards) == 2 {
		if e.bets.PerfectPairs > 0 {
			s.PerfectPairs = CheckPerfectPairs(e.initialCards[0], e.initialCards[1])
			if s.PerfectPairs.Won() {
				s.PerfectPairs.Payout = e.bets.PerfectPairs * (s.PerfectPairs.Odds + 1)
				e.credit(s.PerfectPairs.Payout)
			}
		}

		if e.bets.TwentyOnePlusThree > 0 && len(e.dealer.Cards) > 0 {
			s.TwentyOnePlusThree = Check21Plus3([]Card{e.initialCards[0], e.initialCards[1], e.dealer.Cards[0]})
			if s.TwentyOnePlusThree.Won() {
				s.TwentyOnePlusThree.Payout = e.bets.TwentyOnePlusThree * (s.TwentyOnePlusThree.Odds + 1)
				e.credit(s.TwentyOnePlusThree.Payout)
			}
		}
	}

	if e.bets.Insurance > 0 && dealerBlackjack {
		s.InsurancePayout = e.bets.Insurance * 3
		e.credit(s.InsurancePayout)
	}

	e.bets = BetSet{}
	e.settled = true

	e.log.WithFields(logrus.Fields{
		"dealerScore": dealerScore,
		"paid":        s.Total(),
		"chips":       e.chips,
	}).Info("round settled")

	e.checkInvariants()
	return s, nil
}

func (e *Engine) settleHand(hand *Hand, dealerScore int, dealerBlackjack bool) HandResult {
	result := HandResult{Bet: hand.Bet}
	score := hand.Score()

	switch {
	case hand.IsBust():
		result.Outcome = OutcomeBust
	case hand.IsNatural() && !dealerBlackjack:
		result.Outcome = OutcomeBlackjack
		result.Payout = blackjackPayout(hand.Bet)
	case dealerBlackjack && !hand.IsNatural():
		result.Outcome = OutcomeDealerBlackjack
	case dealerScore > 21 || score > dealerScore:
		result.Outcome = OutcomeWin
		result.Payout = hand.Bet * 2
	case score == dealerScore:
		result.Outcome = OutcomePush
		result.Payout = hand.Bet
	default:
		result.Outcome = OutcomeLose
	}

	return result
}
