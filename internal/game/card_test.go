package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCardFromString(t *testing.T) {
	a := assert.New(t)

	a.Equal(Card{Rank: Ace, Suit: Spades, FaceUp: true}, CardFromString("As"))
	a.Equal(Card{Rank: Ten, Suit: Hearts, FaceUp: true}, CardFromString("10h"))
	a.Equal(Card{Rank: Queen, Suit: Diamonds, FaceUp: true}, CardFromString("qd"))
	a.Equal(Card{Rank: Two, Suit: Clubs, FaceUp: true}, CardFromString("2C"))

	a.Panics(func() { CardFromString("1s") })
	a.Panics(func() { CardFromString("Ax") })

	a.Nil(CardsFromString(""))
	a.Equal([]Card{CardFromString("As"), CardFromString("Kd")}, CardsFromString("As, Kd"))
}

func TestCard_String(t *testing.T) {
	a := assert.New(t)

	a.Equal("A♠", CardFromString("As").String())
	a.Equal("10♥", CardFromString("10h").String())
	a.Equal("J♦", CardFromString("jd").String())
	a.Equal("7♣", CardFromString("7c").String())
}

func TestCard_Points(t *testing.T) {
	a := assert.New(t)

	test := func(s string, expected int) {
		t.Helper()
		points, ok := CardFromString(s).Points()
		a.True(ok)
		a.Equal(expected, points)
	}

	test("As", 11)
	test("Ks", 10)
	test("Qs", 10)
	test("Js", 10)
	test("10s", 10)
	test("2s", 2)

	_, ok := Card{Rank: 1, Suit: Spades}.Points()
	a.False(ok)
	a.False(Card{Rank: Ace, Suit: "stars"}.Valid())
}

func TestCard_IsRed(t *testing.T) {
	a := assert.New(t)

	a.True(CardFromString("Ah").IsRed())
	a.True(CardFromString("Ad").IsRed())
	a.False(CardFromString("As").IsRed())
	a.False(CardFromString("Ac").IsRed())
}
