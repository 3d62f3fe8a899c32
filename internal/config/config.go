package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"construction21/internal/game"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Prefix is the environment variable prefix, e.g. C21_DB_DRIVER
const Prefix = "c21"

// database drivers
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// Config is the runtime configuration for the bot and the simulator
type Config struct {
	BotToken    string     `yaml:"botToken" envconfig:"BOT_TOKEN"`
	PollTimeout int        `yaml:"pollTimeout" split_words:"true"`
	Log         Log        `yaml:"log" envconfig:"LOG"`
	Database    Database   `yaml:"database" envconfig:"DB"`
	Rules       game.Rules `yaml:"rules" envconfig:"RULES"`
}

// Log configures logrus
type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Database selects the player store
type Database struct {
	Driver string `yaml:"driver"`
	Path   string `yaml:"path"`
	DSN    string `yaml:"dsn"`
}

// Default returns the configuration used when nothing overrides it
func Default() Config {
	return Config{
		PollTimeout: 60,
		Log: Log{
			Level:  "info",
			Format: "text",
		},
		Database: Database{
			Driver: DriverSQLite,
			Path:   "./construction21.db",
		},
		Rules: game.DefaultRules(),
	}
}

// Load builds the configuration from defaults, then the YAML file, then the
// environment. A .env file in the working directory is read into the
// environment first. If path is empty, C21_CONFIG_FILE names the file, and
// without either no file is read.
func Load(path string) (Config, error) {
	// .env is optional
	_ = godotenv.Load()

	cfg := Default()

	if path == "" {
		path = os.Getenv("C21_CONFIG_FILE")
	}

	if path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to read environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open config: %w", err)
	}
	defer file.Close()

	if err := yaml.NewDecoder(file).Decode(cfg); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return nil
}

// Validate checks settings that would otherwise fail later
func (c Config) Validate() error {
	switch c.Database.Driver {
	case DriverSQLite:
		if c.Database.Path == "" {
			return errors.New("database path is required for sqlite")
		}
	case DriverPostgres:
		if c.Database.DSN == "" {
			return errors.New("database dsn is required for postgres")
		}
	case DriverMemory:
	default:
		return fmt.Errorf("unknown database driver: %q", c.Database.Driver)
	}

	switch strings.ToLower(c.Log.Format) {
	case "", "text", "json":
	default:
		return fmt.Errorf("unknown log format: %q", c.Log.Format)
	}

	r := c.Rules
	if r.MinBet < 0 || r.MaxBet < 0 || r.MaxChips < 0 || r.StartingChips < 0 {
		return errors.New("rules must not be negative")
	}
	if r.MaxBet > 0 && r.MinBet > r.MaxBet {
		return fmt.Errorf("min bet %d is above max bet %d", r.MinBet, r.MaxBet)
	}
	if r.MaxChips > 0 && r.StartingChips > r.MaxChips {
		return fmt.Errorf("starting chips %d are above max chips %d", r.StartingChips, r.MaxChips)
	}

	return nil
}
