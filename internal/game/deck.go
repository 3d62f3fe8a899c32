package game

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// CreateDeck replaces the deck with a fresh, ordered 52-card deck
func (e *Engine) CreateDeck() {
	deck := orderedDeck()
	if len(deck) != DeckSize {
		panic(fmt.Sprintf("invalid deck size: %d, expected %d", len(deck), DeckSize))
	}

	e.deck = deck
	e.log.Debug("created new deck")
}

// ShuffleDeck performs an in-place Fisher-Yates shuffle of the deck
func (e *Engine) ShuffleDeck() {
	if len(e.deck) == 0 {
		panic("cannot shuffle empty deck")
	}

	for j := len(e.deck) - 1; j > 0; j-- {
		i := e.rng.Intn(j + 1)
		e.deck[i], e.deck[j] = e.deck[j], e.deck[i]
	}

	if len(e.deck) != DeckSize {
		panic(fmt.Sprintf("deck corrupted during shuffle: %d cards", len(e.deck)))
	}

	e.log.Debug("shuffled deck")
}

// CardsLeft returns the number of cards left in the deck
func (e *Engine) CardsLeft() int {
	return len(e.deck)
}

// DealCard takes the last card from the deck and adds it to the hand.
// ErrEndOfDeck and ErrHandFull are not fatal; the round carries on without the card.
func (e *Engine) DealCard(hand *Hand, faceUp bool) (Card, error) {
	if hand == nil {
		return Card{}, ErrNoHand
	}

	if len(e.deck) == 0 {
		e.log.Error("cannot deal card: deck is empty")
		return Card{}, ErrEndOfDeck
	}

	if len(hand.Cards) >= MaxCardsPerHand {
		e.log.WithField("max", MaxCardsPerHand).Error("cannot deal card: hand is full")
		return Card{}, ErrHandFull
	}

	card := e.deck[len(e.deck)-1]
	e.deck = e.deck[:len(e.deck)-1]
	if !card.Valid() {
		e.log.WithField("card", card).Error("invalid card dealt")
		return Card{}, ErrInvalidCard
	}

	card.FaceUp = faceUp
	hand.Cards = append(hand.Cards, card)

	e.log.WithFields(logrus.Fields{
		"card":   card.String(),
		"faceUp": faceUp,
		"left":   len(e.deck),
	}).Debug("dealt card")

	return card, nil
}

func orderedDeck() []Card {
	deck := make([]Card, 0, DeckSize)
	for _, suit := range suits {
		for rank := Two; rank <= Ace; rank++ {
			deck = append(deck, Card{Rank: rank, Suit: suit})
		}
	}

	return deck
}
