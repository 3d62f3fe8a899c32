package main

import (
	"context"
	"fmt"
	"math"
	"os"
	"os/signal"
	"time"

	"construction21/internal/config"
	"construction21/internal/game"
	"construction21/internal/logging"
	"construction21/internal/player"
	"construction21/internal/rng"
	"construction21/internal/table"

	"github.com/alecthomas/kong"
	"github.com/sirupsen/logrus"
)

// CLI defines the simulator's command line
type CLI struct {
	Rounds  int    `default:"10000" help:"Number of rounds to play"`
	Bet     int64  `default:"10" help:"Main bet per round"`
	PP      int64  `name:"pp" default:"0" help:"Perfect Pairs side bet per round"`
	Plus3   int64  `name:"plus3" default:"0" help:"21+3 side bet per round"`
	Chips   int64  `default:"0" help:"Starting chips (0 uses the configured rules)"`
	Seed    int64  `default:"0" help:"RNG seed (0 for random)"`
	H17     bool   `name:"h17" help:"Dealer hits soft 17"`
	Config  string `short:"c" help:"Path to a YAML config file for the house rules" type:"path"`
	DB      string `name:"db" help:"SQLite file to save the player to (default in memory)" type:"path"`
	User    string `default:"simulator" help:"Player id to load and save"`
	Workers int    `short:"w" default:"1" help:"Tables to play in parallel, each as its own player"`
	Verbose bool   `short:"v" help:"Verbose logging"`
}

func main() {
	var cli CLI
	kctx := kong.Parse(&cli,
		kong.Name("construction21-simulate"),
		kong.Description("Plays Construction 21 rounds with basic strategy and prints the results."),
	)

	if err := run(cli); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		kctx.Exit(1)
	}

	kctx.Exit(0)
}

func run(cli CLI) error {
	level := "warn"
	if cli.Verbose {
		level = "debug"
	}
	if err := logging.Setup(level, "text"); err != nil {
		return err
	}

	cfg, err := config.Load(cli.Config)
	if err != nil {
		return err
	}

	rules := cfg.Rules
	rules.Cooldown = 0
	if cli.H17 {
		rules.DealerHitsSoft17 = true
	}
	if cli.Chips > 0 {
		rules.StartingChips = cli.Chips
		if rules.MaxChips < cli.Chips {
			rules.MaxChips = cli.Chips
		}
	}

	if cli.Seed == 0 {
		cli.Seed = time.Now().UnixNano()
	}

	db := config.Database{Driver: config.DriverMemory}
	if cli.DB != "" {
		db = config.Database{Driver: config.DriverSQLite, Path: cli.DB}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	store, closeStore, err := player.Open(ctx, db)
	if err != nil {
		return err
	}
	defer closeStore()

	if cli.Workers < 1 {
		cli.Workers = 1
	}

	plan := Plan{
		Main:               cli.Bet,
		PerfectPairs:       cli.PP,
		TwentyOnePlusThree: cli.Plus3,
	}

	rounds := splitRounds(cli.Rounds, cli.Workers)
	workers := make([]worker, cli.Workers)
	for i := range workers {
		userID := cli.User
		if cli.Workers > 1 {
			userID = fmt.Sprintf("%s-%d", cli.User, i+1)
		}

		tbl, err := table.Load(ctx, store, userID, table.Options{
			Rules:         rules,
			Logger:        logrus.StandardLogger(),
			EngineOptions: []game.Option{game.WithRNG(rng.Seeded(cli.Seed + int64(i)))},
		})
		if err != nil {
			return err
		}

		workers[i] = worker{tbl: tbl, plan: plan}
		workers[i].plan.Rounds = rounds[i]
	}

	soft17 := "S17"
	if rules.DealerHitsSoft17 {
		soft17 = "H17"
	}
	fmt.Printf("Starting simulation: %d rounds on %d tables, bet %d, %s (seed: %d)\n\n",
		cli.Rounds, cli.Workers, cli.Bet, soft17, cli.Seed)

	start := time.Now()
	stats, err := simulateParallel(ctx, workers)
	if err != nil {
		return err
	}

	printResults(stats, time.Since(start))
	return nil
}

func printResults(s *Statistics, duration time.Duration) {
	pct := func(n int) float64 {
		if s.Hands == 0 {
			return 0
		}
		return float64(n) / float64(s.Hands) * 100
	}

	fmt.Printf("Rounds:      %d (%d hands)\n", s.Rounds, s.Hands)
	fmt.Printf("Wins:        %d (%.1f%%), blackjacks %d\n", s.Wins, pct(s.Wins), s.Blackjacks)
	fmt.Printf("Losses:      %d (%.1f%%), busts %d\n", s.Losses, pct(s.Losses), s.Busts)
	fmt.Printf("Pushes:      %d (%.1f%%)\n", s.Pushes, pct(s.Pushes))
	fmt.Printf("Doubles:     %d, splits %d, side bet wins %d\n", s.Doubles, s.Splits, s.SideWins)
	fmt.Printf("Wagered:     %d\n", s.Wagered)
	fmt.Printf("Net:         %+d (%.3f ± %.3f per round)\n", s.Net, s.Mean(), s.StdDev())
	fmt.Printf("House edge:  %.2f%%\n", s.HouseEdge())
	fmt.Printf("Chips:       %d -> %d\n", s.StartChips, s.EndChips)
	if s.Broke {
		fmt.Println("Stopped early: out of chips")
	}
	fmt.Printf("Time:        %v (%.1fµs per round)\n", duration.Round(time.Millisecond),
		float64(duration.Microseconds())/math.Max(float64(s.Rounds), 1))
}
