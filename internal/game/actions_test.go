package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngine_StartGame(t *testing.T) {
	a := assert.New(t)

	e := newTestEngine("10s,9c,7d,8h")
	a.Equal(ErrNoMainBet, e.StartGame())
	a.Equal(StateNotStarted, e.State())

	require.NoError(t, e.PlaceBet(BetMain, 10))
	a.NoError(e.StartGame())

	a.Equal(StateInProgress, e.State())
	a.NotEqual("00000000-0000-0000-0000-000000000000", e.RoundID().String())
	a.Equal(DeckSize-4, e.CardsLeft())
	a.Len(e.PlayerHands(), 1)
	a.Equal(0, e.ActiveHandIndex())

	hand := e.ActiveHand()
	a.Equal(CardsFromString("10s,7d"), hand.Cards)
	a.Equal(int64(10), hand.Bet)

	dealer := e.DealerHand().Cards
	a.Len(dealer, 2)
	a.True(dealer[0].FaceUp)
	a.False(dealer[1].FaceUp)
	a.Equal(Nine, dealer[0].Rank)
	a.Equal(Eight, dealer[1].Rank)
}

func TestEngine_StartGame_natural(t *testing.T) {
	a := assert.New(t)
	e := startRound(t, "As,9c,Kd,7h,2c", 10)

	a.Equal(StateDealerRevealing, e.State())
	a.Nil(e.ActiveHand())
	a.Equal(ErrDealerPlaying, e.Stand())

	s := playOut(t, e)
	a.Equal(OutcomeBlackjack, s.Hands[0].Outcome)
	a.Equal(int64(25), s.Hands[0].Payout)
	a.Equal(int64(115), e.Chips())
}

func TestEngine_actionsOutsideRound(t *testing.T) {
	a := assert.New(t)
	e := New(testRules())

	_, err := e.Hit()
	a.Equal(ErrRoundNotInProgress, err)
	a.Equal(ErrRoundNotInProgress, e.Stand())
	_, err = e.DoubleDown()
	a.Equal(ErrRoundNotInProgress, err)
	a.Equal(ErrRoundNotInProgress, e.SplitHand())
	a.Equal(ErrRoundNotInProgress, e.PlaceInsurance(1))
	a.Equal(ErrRoundNotInProgress, e.CanPerformAction(ActionHit))
}

func TestEngine_Hit(t *testing.T) {
	a := assert.New(t)
	e := startRound(t, "Ks,9c,3d,7h,2c,Qc", 10)

	card, err := e.Hit()
	a.NoError(err)
	a.Equal(CardFromString("2c"), card)
	a.Equal(StateInProgress, e.State())
	a.Equal(15, e.ActiveHand().Score())

	_, err = e.Hit()
	a.NoError(err)
	a.Equal(StateDealerRevealing, e.State())
	a.True(e.PlayerHands()[0].IsBust())
	a.True(e.PlayerHands()[0].Resolved())
	a.True(e.AllHandsBust())

	_, err = e.Hit()
	a.Equal(ErrDealerPlaying, err)

	s := playOut(t, e)
	a.Len(e.DealerHand().Cards, 2)
	a.Equal(OutcomeBust, s.Hands[0].Outcome)
	a.Equal(int64(0), s.Hands[0].Payout)
	a.Equal(int64(90), e.Chips())
}

func TestEngine_Hit_twentyOneResolves(t *testing.T) {
	a := assert.New(t)
	e := startRound(t, "Ks,9c,6d,7h,5c", 10)

	_, err := e.Hit()
	a.NoError(err)
	a.Equal(21, e.PlayerHands()[0].Score())
	a.Equal(StateDealerRevealing, e.State())
}

func TestEngine_Stand(t *testing.T) {
	a := assert.New(t)
	e := startRound(t, "10s,10c,9d,9h", 10)

	a.NoError(e.Stand())
	a.Equal(StateDealerRevealing, e.State())

	s := playOut(t, e)
	a.Equal(OutcomePush, s.Hands[0].Outcome)
	a.Equal(int64(100), e.Chips())
	a.Equal(StateSettled, e.State())
}

func TestEngine_DoubleDown(t *testing.T) {
	a := assert.New(t)
	e := startRound(t, "5s,9c,6d,7h,Kc,2c", 10)

	a.NoError(e.CanPerformAction(ActionDouble))
	card, err := e.DoubleDown()
	a.NoError(err)
	a.Equal(CardFromString("Kc"), card)

	hand := e.PlayerHands()[0]
	a.True(hand.IsDoubled)
	a.Equal(int64(20), hand.Bet)
	a.Len(hand.Cards, 3)
	a.Equal(int64(80), e.Chips())
	a.Equal(StateDealerRevealing, e.State())

	s := playOut(t, e)
	a.Equal(18, s.DealerScore)
	a.Equal(OutcomeWin, s.Hands[0].Outcome)
	a.Equal(int64(40), s.Hands[0].Payout)
	a.Equal(int64(20), s.Hands[0].Net())
	a.Equal(int64(120), e.Chips())
}

func TestEngine_DoubleDown_rejected(t *testing.T) {
	a := assert.New(t)

	e := startRound(t, "5s,9c,3d,7h,2c", 10)
	_, err := e.Hit()
	a.NoError(err)
	_, err = e.DoubleDown()
	a.Equal(ErrCannotDouble, err)
	a.Equal(int64(10), e.ActiveHand().Bet)
	a.Equal(int64(90), e.Chips())

	e = startRound(t, "5s,9c,6d,7h", 60)
	_, err = e.DoubleDown()
	a.Equal(ErrNotEnoughChips, err)
	a.Equal(int64(40), e.Chips())
	a.Len(e.ActiveHand().Cards, 2)
	a.Equal(StateInProgress, e.State())
}

func TestEngine_SplitHand(t *testing.T) {
	a := assert.New(t)
	e := startRound(t, "8s,5c,8d,9h,3c,2d", 10)

	a.NoError(e.SplitHand())
	a.Equal(int64(80), e.Chips())

	hands := e.PlayerHands()
	a.Len(hands, 2)
	a.Equal(CardsFromString("8s,3c"), hands[0].Cards)
	a.Equal(CardsFromString("8d,2d"), hands[1].Cards)
	for _, h := range hands {
		a.True(h.IsSplit)
		a.Equal(int64(10), h.Bet)
	}
	a.Equal(0, e.ActiveHandIndex())

	a.NoError(e.Stand())
	a.Equal(1, e.ActiveHandIndex())
	a.Equal(StateInProgress, e.State())

	a.NoError(e.Stand())
	a.Equal(StateDealerRevealing, e.State())
}

func TestEngine_SplitHand_rejected(t *testing.T) {
	a := assert.New(t)

	e := startRound(t, "8s,5c,9d,9h", 10)
	a.Equal(ErrCannotSplit, e.SplitHand())
	a.Len(e.PlayerHands(), 1)
	a.Len(e.ActiveHand().Cards, 2)
	a.Equal(int64(90), e.Chips())

	e = startRound(t, "8s,5c,8d,9h", 60)
	a.Equal(ErrNotEnoughChips, e.SplitHand())
	a.Len(e.PlayerHands(), 1)
	a.Equal(int64(40), e.Chips())
}

func TestEngine_SplitHand_maxHands(t *testing.T) {
	a := assert.New(t)
	e := startRound(t, "8s,5c,8d,9h", 10)

	for len(e.hands) < MaxHands {
		e.hands = append(e.hands, newHand(10))
	}

	a.Equal(ErrTooManyHands, e.SplitHand())
	a.Len(e.PlayerHands(), MaxHands)
}

func TestEngine_SplitHand_twentyOnes(t *testing.T) {
	a := assert.New(t)
	e := startRound(t, "As,9c,Ad,7h,Kc,Kd,4c", 10)

	a.NoError(e.SplitHand())
	a.Equal(StateDealerRevealing, e.State())

	hands := e.PlayerHands()
	a.Equal(21, hands[0].Score())
	a.Equal(21, hands[1].Score())
	a.False(hands[0].IsNatural())

	s := playOut(t, e)
	a.Equal(20, s.DealerScore)
	for _, h := range s.Hands {
		a.Equal(OutcomeWin, h.Outcome)
		a.Equal(int64(20), h.Payout)
	}
	a.Equal(int64(120), e.Chips())
}

func TestEngine_PlaceInsurance(t *testing.T) {
	a := assert.New(t)

	e := startRound(t, "10s,9c,9d,7h", 10)
	a.Equal(ErrInsuranceNotOffered, e.PlaceInsurance(5))
	a.False(e.InsuranceOffered())

	e = startRound(t, "10s,Ah,9d,Kc", 9)
	a.True(e.InsuranceOffered())
	a.Equal(int64(5), e.MaxInsurance())
	a.Equal(ErrInsuranceTooLarge, e.PlaceInsurance(6))
	a.Equal(ErrInvalidAmount, e.PlaceInsurance(0))
	a.NoError(e.PlaceBet(BetInsurance, 5))
	a.Equal(ErrInsuranceTaken, e.PlaceInsurance(1))
	a.Equal(int64(5), e.Bets().Insurance)
	a.Equal(int64(86), e.Chips())
}

func TestEngine_CanPerformAction(t *testing.T) {
	a := assert.New(t)
	e := startRound(t, "8s,Ac,8d,9h", 10)

	for _, action := range Actions {
		a.NoError(e.CanPerformAction(action), action.String())
	}
	a.Error(e.CanPerformAction(Action(42)))
}
