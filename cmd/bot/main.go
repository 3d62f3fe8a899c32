package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"construction21/internal/bot"
	"construction21/internal/config"
	"construction21/internal/logging"
	"construction21/internal/player"
	"construction21/internal/table"

	"github.com/alecthomas/kong"
	"github.com/sirupsen/logrus"
)

// CLI defines the command line for the bot
var CLI struct {
	Config   string `short:"c" help:"Path to a YAML config file (default $C21_CONFIG_FILE)" type:"path"`
	LogLevel string `help:"Log level: debug, info, warn, error"`
	DBDriver string `name:"db-driver" help:"Player store: sqlite, postgres or memory"`
}

func main() {
	kctx := kong.Parse(&CLI,
		kong.Name("construction21-bot"),
		kong.Description("Construction 21 blackjack on Telegram."),
	)

	if err := run(); err != nil {
		logrus.WithError(err).Error("bot failed")
		kctx.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(CLI.Config)
	if err != nil {
		return err
	}

	if CLI.LogLevel != "" {
		cfg.Log.Level = CLI.LogLevel
	}
	if CLI.DBDriver != "" {
		cfg.Database.Driver = CLI.DBDriver
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	if err := logging.Setup(cfg.Log.Level, cfg.Log.Format); err != nil {
		return err
	}

	if cfg.BotToken == "" {
		return errors.New("BOT_TOKEN is not set")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := player.Open(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer closeStore()

	logrus.WithField("driver", cfg.Database.Driver).Info("player store opened")

	log := logrus.StandardLogger()
	b, err := bot.New(cfg.BotToken, cfg.PollTimeout, store, table.Options{
		Rules:  cfg.Rules,
		Logger: log,
	}, log)
	if err != nil {
		return err
	}

	return b.Run(ctx)
}
