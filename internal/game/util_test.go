package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func testRules() Rules {
	r := DefaultRules()
	r.Cooldown = 0
	return r
}

// newTestEngine deals the listed cards first: player, dealer up, player, dealer hole, then draws
func newTestEngine(deal string) *Engine {
	return New(testRules(), WithRNG(StackedShuffle(CardsFromString(deal)...)))
}

func startRound(t *testing.T, deal string, main int64) *Engine {
	t.Helper()

	e := newTestEngine(deal)
	require.NoError(t, e.PlaceBet(BetMain, main))
	require.NoError(t, e.StartGame())
	return e
}

// playOut runs the dealer the way the table host does
func playOut(t *testing.T, e *Engine) *Settlement {
	t.Helper()

	if !e.AllHandsBust() {
		for draws := 0; e.ShouldDealerHit(); draws++ {
			require.Less(t, draws, e.Rules().DealerDrawCap)
			_, err := e.DealerHit()
			require.NoError(t, err)
		}
	}

	s, err := e.SettleHands()
	require.NoError(t, err)
	require.NoError(t, e.EndGame())
	return s
}
