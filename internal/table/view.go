package table

import (
	"construction21/internal/game"
)

// View is a copy of the table state for rendering
type View struct {
	Chips       int64
	Bets        game.BetSet
	LastBet     int64
	State       game.RoundState
	Hands       []game.Hand
	Dealer      game.Hand
	ActiveHand  int
	Allowed     []game.Action
	Insurance   int64
	Result      *game.Settlement
	CardsInShoe int
}

// Can returns true if the action is legal in this view
func (v View) Can(a game.Action) bool {
	for _, allowed := range v.Allowed {
		if allowed == a {
			return true
		}
	}
	return false
}

// InRound returns true while the player has hands to act on
func (v View) InRound() bool {
	return v.State == game.StateInProgress
}

func (t *Table) view() View {
	e := t.engine

	v := View{
		Chips:       e.Chips(),
		Bets:        e.Bets(),
		LastBet:     t.lastBet,
		State:       e.State(),
		Dealer:      copyHand(e.DealerHand()),
		ActiveHand:  e.ActiveHandIndex(),
		Result:      t.result,
		CardsInShoe: e.CardsLeft(),
	}

	for _, h := range e.PlayerHands() {
		v.Hands = append(v.Hands, copyHand(h))
	}

	for _, a := range game.Actions {
		if e.CanPerformAction(a) != nil {
			continue
		}

		if a == game.ActionInsurance {
			// hidden when the balance cannot cover the smallest bet
			v.Insurance = t.insuranceAmount()
			if v.Insurance < e.Rules().MinBet {
				v.Insurance = 0
				continue
			}
		}
		v.Allowed = append(v.Allowed, a)
	}

	return v
}

func copyHand(h *game.Hand) game.Hand {
	if h == nil {
		return game.Hand{}
	}

	c := *h
	c.Cards = append([]game.Card(nil), h.Cards...)
	return c
}
