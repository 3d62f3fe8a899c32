package game

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Rank is the rank of a card
type Rank int

// rank constants
const (
	Two   Rank = 2
	Three Rank = 3
	Four  Rank = 4
	Five  Rank = 5
	Six   Rank = 6
	Seven Rank = 7
	Eight Rank = 8
	Nine  Rank = 9
	Ten   Rank = 10
	Jack  Rank = 11
	Queen Rank = 12
	King  Rank = 13
	Ace   Rank = 14
)

// Suit represents a card suit
type Suit string

// suit constants
const (
	Hearts   Suit = "hearts"
	Diamonds Suit = "diamonds"
	Spades   Suit = "spades"
	Clubs    Suit = "clubs"
)

var suits = []Suit{Hearts, Diamonds, Spades, Clubs}

// Card is an individual playing card
type Card struct {
	Rank   Rank `json:"rank"`
	Suit   Suit `json:"suit"`
	FaceUp bool `json:"faceUp"`
}

// Valid reports whether the rank and suit are part of a standard deck
func (c Card) Valid() bool {
	if c.Rank < Two || c.Rank > Ace {
		return false
	}

	switch c.Suit {
	case Hearts, Diamonds, Spades, Clubs:
		return true
	}

	return false
}

// IsRed returns true for hearts and diamonds
func (c Card) IsRed() bool {
	return c.Suit == Hearts || c.Suit == Diamonds
}

// Points is the blackjack value of the card with aces counted as 11.
// ok is false for a malformed card.
func (c Card) Points() (points int, ok bool) {
	switch {
	case c.Rank == Ace:
		return 11, true
	case c.Rank >= Jack && c.Rank <= King:
		return 10, true
	case c.Rank >= Two && c.Rank <= Ten:
		return int(c.Rank), true
	}

	return 0, false
}

// pokerRank is the rank used by 21+3 where the ace plays low
func (c Card) pokerRank() int {
	if c.Rank == Ace {
		return 1
	}

	return int(c.Rank)
}

func (r Rank) String() string {
	switch r {
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	}

	return strconv.Itoa(int(r))
}

func (c Card) String() string {
	var suit string
	switch c.Suit {
	case Hearts:
		suit = "♥"
	case Diamonds:
		suit = "♦"
	case Spades:
		suit = "♠"
	case Clubs:
		suit = "♣"
	default:
		suit = "?"
	}

	return c.Rank.String() + suit
}

var cardRx = regexp.MustCompile(`(?i)^([2-9]|10|[jqka])([cdhs])\z`)

// CardFromString returns a face-up Card from the string.
// The string must be in the format of <rank><suit>, e.g. "10h", "As", "qd".
func CardFromString(s string) Card {
	match := cardRx.FindStringSubmatch(strings.TrimSpace(s))
	if match == nil {
		panic(fmt.Sprintf("could not parse card: %s", s))
	}

	var rank Rank
	switch strings.ToUpper(match[1]) {
	case "J":
		rank = Jack
	case "Q":
		rank = Queen
	case "K":
		rank = King
	case "A":
		rank = Ace
	default:
		n, _ := strconv.Atoi(match[1])
		rank = Rank(n)
	}

	var suit Suit
	switch strings.ToLower(match[2]) {
	case "c":
		suit = Clubs
	case "d":
		suit = Diamonds
	case "h":
		suit = Hearts
	case "s":
		suit = Spades
	}

	return Card{Rank: rank, Suit: suit, FaceUp: true}
}

// CardsFromString returns cards from a comma-separated list, e.g. "As,Kd"
func CardsFromString(s string) []Card {
	if s == "" {
		return nil
	}

	parts := strings.Split(s, ",")
	cards := make([]Card, len(parts))
	for i, part := range parts {
		cards[i] = CardFromString(part)
	}

	return cards
}
