package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "holdem.hcl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.hcl"))
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 20, cfg.Match.BigBlind)
	assert.Len(t, cfg.Players, 6)
	human, ok := cfg.Human()
	require.True(t, ok)
	assert.Equal(t, "You", human.Name)
	assert.Equal(t, 1000, human.Chips)
	assert.True(t, cfg.Match.SidePotsEnabled())
}

func TestLoadAppliesDefaults(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
match {
  big_blind      = 50
  hands          = 100
  seed           = 42
  think_delay_ms = 250
  side_pots      = false
  history_dir    = "hands"
  history_format = "phh"
}

player "Alice" {
  controller = "human"
}

player "Bob" {
  strategy = "tag"
  chips    = 5000
}

player "Carol" {}
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 50, cfg.Match.BigBlind)
	assert.Equal(t, 2500, cfg.Match.StartingChips, "defaults to 50 big blinds")
	assert.Equal(t, 100, cfg.Match.Hands)
	assert.Equal(t, int64(42), cfg.Match.Seed)
	assert.Equal(t, 250*time.Millisecond, cfg.Match.ThinkDelay())
	assert.False(t, cfg.Match.SidePotsEnabled())
	assert.Equal(t, "hands", cfg.Match.HistoryDir)
	assert.Equal(t, HistoryPHH, cfg.Match.HistoryFormat)

	require.Len(t, cfg.Players, 3)
	assert.Equal(t, PlayerConfig{Name: "Alice", Controller: ControllerHuman, Chips: 2500}, cfg.Players[0])
	assert.Equal(t, PlayerConfig{Name: "Bob", Controller: ControllerBot, Strategy: "tag", Chips: 5000}, cfg.Players[1])
	assert.Equal(t, PlayerConfig{Name: "Carol", Controller: ControllerBot, Strategy: "chart", Chips: 2500}, cfg.Players[2])
}

func TestLoadWithoutMatchBlock(t *testing.T) {
	t.Parallel()

	cfg, err := Load(writeConfig(t, `
player "a" { strategy = "call" }
player "b" { strategy = "fold" }
`))
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 20, cfg.Match.BigBlind)
	assert.Equal(t, 1000, cfg.Players[0].Chips)
}

func TestLoadRejectsBadHCL(t *testing.T) {
	t.Parallel()

	_, err := Load(writeConfig(t, `match { big_blind = `))
	assert.ErrorContains(t, err, "failed to parse HCL file")

	_, err = Load(writeConfig(t, `match { bigblind = 10 }`))
	assert.ErrorContains(t, err, "failed to decode HCL")
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*Config)
		errMsg string
	}{
		{"small big blind", func(c *Config) { c.Match.BigBlind = 1 }, "big blind"},
		{"negative hands", func(c *Config) { c.Match.Hands = -1 }, "hands"},
		{"history format", func(c *Config) { c.Match.HistoryFormat = "json" }, "history format"},
		{"one player", func(c *Config) { c.Players = c.Players[:1] }, "between 2 and 10"},
		{"duplicate", func(c *Config) { c.Players[2].Name = "Chip" }, "duplicate"},
		{"strategy", func(c *Config) { c.Players[1].Strategy = "shark" }, "invalid strategy"},
		{"controller", func(c *Config) { c.Players[1].Controller = "robot" }, "invalid controller"},
		{"chips", func(c *Config) { c.Players[1].Chips = -5 }, "chips must be positive"},
		{"two humans", func(c *Config) { c.Players[1].Controller = ControllerHuman }, "at most one human"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.ErrorContains(t, cfg.Validate(), tt.errMsg)
		})
	}
}

func TestWithoutHumans(t *testing.T) {
	t.Parallel()

	cfg := Default()
	sim := cfg.WithoutHumans("tag")

	_, ok := sim.Human()
	assert.False(t, ok)
	assert.Equal(t, "tag", sim.Players[0].Strategy)
	require.NoError(t, sim.Validate())

	_, ok = cfg.Human()
	assert.True(t, ok, "original is unchanged")
}
