package config

import (
	"path/filepath"
	"testing"
	"time"

	"construction21/internal/game"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_defaults(t *testing.T) {
	t.Setenv("C21_CONFIG_FILE", "")
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default().Rules, cfg.Rules)
	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, 60, cfg.PollTimeout)
}

func TestLoad_file(t *testing.T) {
	a := assert.New(t)
	t.Setenv("C21_CONFIG_FILE", "testdata/config.yaml")

	cfg, err := Load("")
	require.NoError(t, err)
	a.Equal("file-token", cfg.BotToken)
	a.Equal("debug", cfg.Log.Level)
	a.Equal("text", cfg.Log.Format)
	a.Equal(DriverMemory, cfg.Database.Driver)
	a.Equal(int64(500), cfg.Rules.StartingChips)
	a.Equal(int64(250), cfg.Rules.MaxBet)
	a.Equal(game.DefaultMinBet, cfg.Rules.MinBet)
	a.Equal(250*time.Millisecond, cfg.Rules.Cooldown)
	a.True(cfg.Rules.DealerHitsSoft17)
}

func TestLoad_env(t *testing.T) {
	a := assert.New(t)
	t.Setenv("C21_RULES_MAX_BET", "300")
	t.Setenv("C21_RULES_DEALER_HITS_SOFT17", "false")
	t.Setenv("C21_RULES_COOLDOWN", "1s")
	t.Setenv("C21_LOG_FORMAT", "json")
	t.Setenv("BOT_TOKEN", "env-token")

	cfg, err := Load("testdata/config.yaml")
	require.NoError(t, err)
	a.Equal("env-token", cfg.BotToken)
	a.Equal("json", cfg.Log.Format)
	a.Equal(int64(300), cfg.Rules.MaxBet)
	a.Equal(int64(500), cfg.Rules.StartingChips)
	a.Equal(time.Second, cfg.Rules.Cooldown)
	a.False(cfg.Rules.DealerHitsSoft17)

	t.Setenv("C21_BOT_TOKEN", "prefixed-token")
	cfg, err = Load("testdata/config.yaml")
	require.NoError(t, err)
	a.Equal("prefixed-token", cfg.BotToken)
}

func TestLoad_errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	t.Setenv("C21_DB_DRIVER", "mongo")
	_, err = Load("testdata/config.yaml")
	assert.EqualError(t, err, `unknown database driver: "mongo"`)

	t.Setenv("C21_DB_DRIVER", "memory")
	t.Setenv("C21_RULES_MIN_BET", "nope")
	_, err = Load("testdata/config.yaml")
	assert.Error(t, err)
}

func TestConfig_Validate(t *testing.T) {
	cfg := Default()
	assert.NoError(t, cfg.Validate())

	cfg.Database.Driver = DriverPostgres
	assert.Error(t, cfg.Validate())
	cfg.Database.DSN = "postgres://localhost/c21"
	assert.NoError(t, cfg.Validate())

	cfg.Log.Format = "xml"
	assert.Error(t, cfg.Validate())
	cfg.Log.Format = "JSON"
	assert.NoError(t, cfg.Validate())

	cfg.Rules.MinBet = 500
	cfg.Rules.MaxBet = 100
	assert.EqualError(t, cfg.Validate(), "min bet 500 is above max bet 100")

	cfg.Rules = game.DefaultRules()
	cfg.Rules.StartingChips = cfg.Rules.MaxChips + 1
	assert.Error(t, cfg.Validate())
}
