package main

import (
	"context"
	"errors"
	"math"

	"construction21/internal/game"
	"construction21/internal/table"

	"golang.org/x/sync/errgroup"
)

// Statistics summarises a simulation run. Hand counts include split hands.
type Statistics struct {
	Rounds     int
	Hands      int
	Wins       int
	Losses     int
	Pushes     int
	Blackjacks int
	Busts      int
	Doubles    int
	Splits     int
	SideWins   int
	Wagered    int64
	Net        int64
	StartChips int64
	EndChips   int64
	Broke      bool

	sumNet2 float64
}

// Mean is the average net result per round
func (s *Statistics) Mean() float64 {
	if s.Rounds == 0 {
		return 0
	}
	return float64(s.Net) / float64(s.Rounds)
}

// StdDev is the sample standard deviation of the per-round result
func (s *Statistics) StdDev() float64 {
	if s.Rounds < 2 {
		return 0
	}
	mean := s.Mean()
	return math.Sqrt((s.sumNet2 - float64(s.Rounds)*mean*mean) / float64(s.Rounds-1))
}

// HouseEdge is the loss as a percentage of everything wagered
func (s *Statistics) HouseEdge() float64 {
	if s.Wagered == 0 {
		return 0
	}
	return -float64(s.Net) / float64(s.Wagered) * 100
}

func (s *Statistics) add(before int64, v table.View) {
	s.Rounds++
	net := v.Chips - before
	s.Net += net
	s.sumNet2 += float64(net * net)

	for _, h := range v.Hands {
		s.Wagered += h.Bet
		if h.IsDoubled {
			s.Doubles++
		}
	}

	if len(v.Hands) > 1 {
		s.Splits += len(v.Hands) - 1
	}

	r := v.Result
	if r == nil {
		return
	}

	for _, h := range r.Hands {
		s.Hands++
		switch h.Outcome {
		case game.OutcomeBlackjack:
			s.Blackjacks++
			s.Wins++
		case game.OutcomeWin:
			s.Wins++
		case game.OutcomePush:
			s.Pushes++
		case game.OutcomeBust:
			s.Busts++
			s.Losses++
		default:
			s.Losses++
		}
	}

	if r.PerfectPairs.Won() {
		s.SideWins++
	}
	if r.TwentyOnePlusThree.Won() {
		s.SideWins++
	}
}

// merge adds another run's counts into s
func (s *Statistics) merge(o *Statistics) {
	s.Rounds += o.Rounds
	s.Hands += o.Hands
	s.Wins += o.Wins
	s.Losses += o.Losses
	s.Pushes += o.Pushes
	s.Blackjacks += o.Blackjacks
	s.Busts += o.Busts
	s.Doubles += o.Doubles
	s.Splits += o.Splits
	s.SideWins += o.SideWins
	s.Wagered += o.Wagered
	s.Net += o.Net
	s.StartChips += o.StartChips
	s.EndChips += o.EndChips
	s.Broke = s.Broke || o.Broke
	s.sumNet2 += o.sumNet2
}

// Plan is what to bet each round
type Plan struct {
	Rounds             int
	Main               int64
	PerfectPairs       int64
	TwentyOnePlusThree int64
}

// simulate plays plan.Rounds rounds at tbl or until the player cannot cover the bets
func simulate(ctx context.Context, tbl *table.Table, plan Plan) (*Statistics, error) {
	stats := &Statistics{StartChips: tbl.View().Chips}

	bets := []struct {
		t      game.BetType
		amount int64
	}{
		{game.BetMain, plan.Main},
		{game.BetPerfectPairs, plan.PerfectPairs},
		{game.BetTwentyOnePlusThree, plan.TwentyOnePlusThree},
	}

	for i := 0; i < plan.Rounds; i++ {
		if err := ctx.Err(); err != nil {
			break
		}

		before := tbl.View().Chips
		var err error
		for _, b := range bets {
			if b.amount <= 0 {
				continue
			}

			if _, err = tbl.Bet(b.t, b.amount); err != nil {
				break
			}
			// main bets are counted per hand once doubles and splits are known
			if b.t != game.BetMain {
				stats.Wagered += b.amount
			}
		}

		if errors.Is(err, game.ErrNotEnoughChips) {
			stats.Broke = true
			_, _, _ = tbl.Clear()
			break
		}
		if err != nil {
			return stats, err
		}

		v, err := tbl.Deal()
		if err != nil {
			return stats, err
		}

		for v.InRound() {
			if v, err = tbl.Act(decide(v)); err != nil {
				return stats, err
			}
		}

		stats.add(before, v)
	}

	tbl.Flush()
	stats.EndChips = tbl.View().Chips
	return stats, nil
}

// splitRounds shares rounds between workers, the first ones taking the remainder
func splitRounds(rounds, workers int) []int {
	if workers < 1 {
		workers = 1
	}

	shares := make([]int, workers)
	for w := range shares {
		shares[w] = rounds / workers
		if w < rounds%workers {
			shares[w]++
		}
	}

	return shares
}

// worker is one headless table and the rounds it plays
type worker struct {
	tbl  *table.Table
	plan Plan
}

// simulateParallel runs every worker on its own goroutine and merges the results
func simulateParallel(ctx context.Context, workers []worker) (*Statistics, error) {
	results := make([]*Statistics, len(workers))

	g, ctx := errgroup.WithContext(ctx)
	for i, w := range workers {
		g.Go(func() error {
			stats, err := simulate(ctx, w.tbl, w.plan)
			results[i] = stats
			return err
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := &Statistics{}
	for _, s := range results {
		total.merge(s)
	}

	return total, nil
}
