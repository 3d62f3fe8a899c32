package bot

import (
	"fmt"
	"strings"

	"construction21/internal/game"
	"construction21/internal/player"
	"construction21/internal/table"
)

func formatCard(c game.Card) string {
	if !c.FaceUp {
		return "🂠"
	}
	return c.String()
}

// formatHand scores only the face-up cards so the hole card stays hidden
func formatHand(h game.Hand) string {
	parts := make([]string, 0, len(h.Cards))
	visible := make([]game.Card, 0, len(h.Cards))
	for _, c := range h.Cards {
		parts = append(parts, formatCard(c))
		if c.FaceUp {
			visible = append(visible, c)
		}
	}

	return fmt.Sprintf("%s (%d)", strings.Join(parts, " "), game.CalculateScore(visible))
}

func formatBets(b game.BetSet) string {
	parts := []string{fmt.Sprintf("main %d", b.Main)}
	if b.PerfectPairs > 0 {
		parts = append(parts, fmt.Sprintf("pp %d", b.PerfectPairs))
	}
	if b.TwentyOnePlusThree > 0 {
		parts = append(parts, fmt.Sprintf("21+3 %d", b.TwentyOnePlusThree))
	}
	if b.Insurance > 0 {
		parts = append(parts, fmt.Sprintf("insurance %d", b.Insurance))
	}

	return strings.Join(parts, " | ")
}

// formatTable renders a round in progress
func formatTable(v table.View) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "🃏 Dealer: %s\n", formatHand(v.Dealer))
	for i, h := range v.Hands {
		marker := "🎴"
		if v.InRound() && i == v.ActiveHand {
			marker = "👉"
		}

		label := "You"
		if len(v.Hands) > 1 {
			label = fmt.Sprintf("Hand %d", i+1)
		}

		fmt.Fprintf(&sb, "%s %s: %s, bet %d", marker, label, formatHand(h), h.Bet)
		if h.IsDoubled {
			sb.WriteString(" ×2")
		}
		sb.WriteString("\n")
	}

	fmt.Fprintf(&sb, "\n💰 Bets: %s\n💵 Chips: %d", formatBets(v.Bets), v.Chips)
	return sb.String()
}

var outcomeText = map[game.Outcome]string{
	game.OutcomeBlackjack:       "🎰 Blackjack!",
	game.OutcomeWin:             "🎉 Win",
	game.OutcomePush:            "🤝 Push",
	game.OutcomeBust:            "💥 Bust",
	game.OutcomeDealerBlackjack: "🎰 Dealer blackjack",
	game.OutcomeLose:            "😔 Lose",
}

// formatResult renders a settled round
func formatResult(v table.View) string {
	s := v.Result
	var sb strings.Builder

	fmt.Fprintf(&sb, "🃏 Dealer: %s\n", formatHand(v.Dealer))
	for i, h := range v.Hands {
		label := "You"
		if len(v.Hands) > 1 {
			label = fmt.Sprintf("Hand %d", i+1)
		}
		fmt.Fprintf(&sb, "🎴 %s: %s\n", label, formatHand(h))
	}
	sb.WriteString("\n")

	var net int64
	for i, r := range s.Hands {
		if len(s.Hands) > 1 {
			fmt.Fprintf(&sb, "Hand %d: ", i+1)
		}
		fmt.Fprintf(&sb, "%s %+d\n", outcomeText[r.Outcome], r.Net())
		net += r.Net()
	}

	for _, side := range []game.SideBetResult{s.PerfectPairs, s.TwentyOnePlusThree} {
		if side.Won() {
			fmt.Fprintf(&sb, "✨ %s %d:1, +%d\n", side.Name, side.Odds, side.Payout)
		}
	}

	if s.InsurancePayout > 0 {
		fmt.Fprintf(&sb, "🛡 Insurance pays +%d\n", s.InsurancePayout)
	}

	fmt.Fprintf(&sb, "\n💵 Chips: %d", v.Chips)
	return sb.String()
}

func formatBalance(v table.View, p *player.Player) string {
	return fmt.Sprintf(
		"💰 Chips: %d\n\n"+
			"📊 Stats:\n"+
			"🎮 Rounds: %d\n"+
			"✅ Wins: %d (%.1f%%)\n"+
			"❌ Losses: %d\n"+
			"🤝 Pushes: %d",
		v.Chips, p.Rounds, p.Wins, p.WinRate(), p.Losses, p.Pushes)
}
