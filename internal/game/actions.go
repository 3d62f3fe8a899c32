package game

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Action is something the player can do with the active hand
type Action int

// Action constants
const (
	ActionHit Action = iota
	ActionStand
	ActionDouble
	ActionSplit
	ActionInsurance
)

// Actions lists every player action
var Actions = []Action{ActionHit, ActionStand, ActionDouble, ActionSplit, ActionInsurance}

func (a Action) String() string {
	switch a {
	case ActionHit:
		return "hit"
	case ActionStand:
		return "stand"
	case ActionDouble:
		return "double"
	case ActionSplit:
		return "split"
	case ActionInsurance:
		return "insurance"
	}

	return fmt.Sprintf("Action(%d)", int(a))
}

// CanPerformAction returns nil if the action is legal right now, otherwise the
// reason it is not. It does not consume the cooldown.
func (e *Engine) CanPerformAction(a Action) error {
	switch e.state {
	case StateInProgress:
	case StateDealerRevealing:
		return ErrDealerPlaying
	default:
		return ErrRoundNotInProgress
	}

	hand := e.ActiveHand()
	if hand == nil {
		return ErrNoHand
	}

	switch a {
	case ActionHit, ActionStand:
		return nil
	case ActionDouble:
		if !hand.canDouble() {
			return ErrCannotDouble
		}
		if e.chips < hand.Bet {
			return ErrNotEnoughChips
		}
		return nil
	case ActionSplit:
		if !hand.canSplit() {
			return ErrCannotSplit
		}
		if len(e.hands) >= MaxHands {
			return ErrTooManyHands
		}
		if e.chips < hand.Bet {
			return ErrNotEnoughChips
		}
		return nil
	case ActionInsurance:
		if len(e.dealer.Cards) == 0 || e.dealer.Cards[0].Rank != Ace {
			return ErrInsuranceNotOffered
		}
		if e.bets.Insurance > 0 {
			return ErrInsuranceTaken
		}
		return nil
	}

	return fmt.Errorf("unknown action: %d", int(a))
}

// Hit deals one card to the active hand. A hand that reaches 21 or busts is resolved.
func (e *Engine) Hit() (Card, error) {
	if err := e.checkCooldown(); err != nil {
		return Card{}, err
	}

	if err := e.CanPerformAction(ActionHit); err != nil {
		return Card{}, err
	}

	hand := e.ActiveHand()
	card, err := e.DealCard(hand, true)
	if err != nil {
		return Card{}, err
	}

	e.log.WithFields(logrus.Fields{
		"hand":  e.activeIndex,
		"card":  card.String(),
		"score": hand.Score(),
	}).Debug("hit")

	if hand.Score() >= 21 {
		e.resolveActive()
	}

	e.checkInvariants()
	return card, nil
}

// Stand resolves the active hand without dealing
func (e *Engine) Stand() error {
	if err := e.checkCooldown(); err != nil {
		return err
	}

	if err := e.CanPerformAction(ActionStand); err != nil {
		return err
	}

	e.resolveActive()
	e.checkInvariants()
	return nil
}

// DoubleDown doubles the active hand's bet, deals exactly one card and resolves the hand
func (e *Engine) DoubleDown() (Card, error) {
	if err := e.checkCooldown(); err != nil {
		return Card{}, err
	}

	if err := e.CanPerformAction(ActionDouble); err != nil {
		return Card{}, err
	}

	if len(e.deck) == 0 {
		return Card{}, ErrEndOfDeck
	}

	hand := e.ActiveHand()
	e.chips -= hand.Bet
	hand.Bet *= 2
	hand.IsDoubled = true

	card, err := e.DealCard(hand, true)
	if err != nil {
		// can't happen with two cards in hand and a non-empty deck
		panic(err)
	}

	e.log.WithFields(logrus.Fields{
		"hand":  e.activeIndex,
		"bet":   hand.Bet,
		"card":  card.String(),
		"chips": e.chips,
	}).Info("doubled down")

	e.resolveActive()
	e.checkInvariants()
	return card, nil
}

// SplitHand moves the second card of a pair into a new hand placed right after
// the active one and deals a card to each. The player keeps acting on the first.
func (e *Engine) SplitHand() error {
	if err := e.checkCooldown(); err != nil {
		return err
	}

	if err := e.CanPerformAction(ActionSplit); err != nil {
		return err
	}

	if len(e.deck) < 2 {
		return ErrEndOfDeck
	}

	hand := e.ActiveHand()
	moved := hand.Cards[1]
	hand.Cards = hand.Cards[:1]
	hand.IsSplit = true

	split := newHand(hand.Bet)
	split.IsSplit = true
	split.Cards = append(split.Cards, moved)

	e.chips -= hand.Bet

	e.hands = append(e.hands, nil)
	copy(e.hands[e.activeIndex+2:], e.hands[e.activeIndex+1:])
	e.hands[e.activeIndex+1] = split

	for _, h := range []*Hand{hand, split} {
		if _, err := e.DealCard(h, true); err != nil {
			panic(err) // checked above
		}
	}

	e.log.WithFields(logrus.Fields{
		"hands": len(e.hands),
		"chips": e.chips,
	}).Info("split hand")

	if hand.Score() == 21 {
		e.resolveActive()
	}

	e.checkInvariants()
	return nil
}

// resolveActive closes the active hand and moves to the next unresolved one.
// Hands already at 21 need no decision and are skipped.
func (e *Engine) resolveActive() {
	if hand := e.ActiveHand(); hand != nil {
		hand.resolved = true
	}

	e.activeIndex++
	for e.activeIndex < len(e.hands) {
		hand := e.hands[e.activeIndex]
		if !hand.resolved && hand.Score() < 21 {
			break
		}

		hand.resolved = true
		e.activeIndex++
	}

	if e.activeIndex >= len(e.hands) {
		e.state = StateDealerRevealing
		e.log.Debug("all hands resolved")
	}
}
