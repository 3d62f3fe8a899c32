package main

import (
	"construction21/internal/game"
	"construction21/internal/table"
)

// decide plays the active hand by single-deck basic strategy. Insurance is never taken.
func decide(v table.View) game.Action {
	hand := v.Hands[v.ActiveHand]
	up, _ := v.Dealer.Cards[0].Points()

	if v.Can(game.ActionSplit) && shouldSplit(hand.Cards[0].Rank, up) {
		return game.ActionSplit
	}

	score := hand.Score()
	if game.IsSoft(hand.Cards) {
		return soft(v, score, up)
	}
	return hard(v, score, up)
}

func shouldSplit(r game.Rank, up int) bool {
	switch r {
	case game.Ace, game.Eight:
		return true
	case game.Two, game.Three, game.Seven:
		return up >= 2 && up <= 7
	case game.Six:
		return up >= 2 && up <= 6
	case game.Nine:
		return up >= 2 && up <= 9 && up != 7
	case game.Four:
		return up == 5 || up == 6
	}
	return false
}

func soft(v table.View, score, up int) game.Action {
	switch {
	case score >= 19:
		return game.ActionStand
	case score == 18:
		switch {
		case up >= 3 && up <= 6:
			return doubleOr(v, game.ActionStand)
		case up <= 8:
			return game.ActionStand
		}
		return game.ActionHit
	case score == 17 && up >= 3 && up <= 6,
		(score == 15 || score == 16) && up >= 4 && up <= 6,
		score <= 14 && (up == 5 || up == 6):
		return doubleOr(v, game.ActionHit)
	}
	return game.ActionHit
}

func hard(v table.View, score, up int) game.Action {
	switch {
	case score >= 17:
		return game.ActionStand
	case score >= 13:
		if up <= 6 {
			return game.ActionStand
		}
	case score == 12:
		if up >= 4 && up <= 6 {
			return game.ActionStand
		}
	case score == 11:
		if up <= 10 {
			return doubleOr(v, game.ActionHit)
		}
	case score == 10:
		if up <= 9 {
			return doubleOr(v, game.ActionHit)
		}
	case score == 9:
		if up >= 3 && up <= 6 {
			return doubleOr(v, game.ActionHit)
		}
	}
	return game.ActionHit
}

func doubleOr(v table.View, fallback game.Action) game.Action {
	if v.Can(game.ActionDouble) {
		return game.ActionDouble
	}
	return fallback
}
