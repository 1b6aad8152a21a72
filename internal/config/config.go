// Package config loads match settings and the seating list from HCL.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/holdem/internal/bot"
)

// Controller values for player blocks
const (
	ControllerHuman = "human"
	ControllerBot   = "bot"
)

// Hand history formats
const (
	HistoryText = "text"
	HistoryPHH  = "phh"
)

// MaxPlayers is the largest table a match can seat
const MaxPlayers = 10

// Config represents a complete match configuration
type Config struct {
	Match   *MatchSettings `hcl:"match,block"`
	Players []PlayerConfig `hcl:"player,block"`
}

// MatchSettings contains table-wide settings
type MatchSettings struct {
	BigBlind      int    `hcl:"big_blind,optional"`
	StartingChips int    `hcl:"starting_chips,optional"`
	Hands         int    `hcl:"hands,optional"` // 0 plays until one player has every chip
	Seed          int64  `hcl:"seed,optional"`  // 0 seeds from the clock
	ThinkDelayMs  int    `hcl:"think_delay_ms,optional"`
	SidePots      *bool  `hcl:"side_pots,optional"`
	HistoryDir    string `hcl:"history_dir,optional"`
	HistoryFormat string `hcl:"history_format,optional"`
}

// PlayerConfig defines one seat, in table order
type PlayerConfig struct {
	Name       string `hcl:"name,label"`
	Controller string `hcl:"controller,optional"`
	Strategy   string `hcl:"strategy,optional"`
	Chips      int    `hcl:"chips,optional"`
}

// ThinkDelay returns the bot pacing delay
func (m *MatchSettings) ThinkDelay() time.Duration {
	return time.Duration(m.ThinkDelayMs) * time.Millisecond
}

// SidePotsEnabled reports whether all-ins create side pots
func (m *MatchSettings) SidePotsEnabled() bool {
	return m.SidePots == nil || *m.SidePots
}

func defaultMatch() *MatchSettings {
	return &MatchSettings{
		BigBlind:      20,
		StartingChips: 1000,
		ThinkDelayMs:  500,
		HistoryFormat: HistoryText,
	}
}

// Default returns a six-handed table with one human seat
func Default() *Config {
	cfg := &Config{
		Match: defaultMatch(),
		Players: []PlayerConfig{
			{Name: "You", Controller: ControllerHuman},
			{Name: "Chip", Strategy: bot.StrategyChart},
			{Name: "Tess", Strategy: bot.StrategyTAG},
			{Name: "Max", Strategy: bot.StrategyManiac},
			{Name: "Carl", Strategy: bot.StrategyCall},
			{Name: "Rand", Strategy: bot.StrategyRandom},
		},
	}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from an HCL file. A missing file yields Default.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Match == nil {
		c.Match = defaultMatch()
	}
	if c.Match.BigBlind == 0 {
		c.Match.BigBlind = 20
	}
	if c.Match.StartingChips == 0 {
		c.Match.StartingChips = c.Match.BigBlind * 50 // 50 big blinds
	}
	if c.Match.HistoryFormat == "" {
		c.Match.HistoryFormat = HistoryText
	}

	for i := range c.Players {
		p := &c.Players[i]
		if p.Controller == "" {
			p.Controller = ControllerBot
		}
		if p.Controller == ControllerBot && p.Strategy == "" {
			p.Strategy = bot.StrategyChart
		}
		if p.Chips == 0 {
			p.Chips = c.Match.StartingChips
		}
	}
}

// Validate validates the match configuration
func (c *Config) Validate() error {
	if c.Match.BigBlind < 2 {
		return fmt.Errorf("big blind must be at least 2, got %d", c.Match.BigBlind)
	}
	if c.Match.Hands < 0 {
		return fmt.Errorf("hands must not be negative")
	}
	if c.Match.ThinkDelayMs < 0 {
		return fmt.Errorf("think delay must not be negative")
	}
	if f := c.Match.HistoryFormat; f != HistoryText && f != HistoryPHH {
		return fmt.Errorf("history format must be %s or %s, got %q", HistoryText, HistoryPHH, f)
	}

	if len(c.Players) < 2 || len(c.Players) > MaxPlayers {
		return fmt.Errorf("a match needs between 2 and %d players, got %d", MaxPlayers, len(c.Players))
	}

	names := make(map[string]bool, len(c.Players))
	humans := 0
	for _, p := range c.Players {
		if p.Name == "" {
			return fmt.Errorf("player names must not be empty")
		}
		if names[p.Name] {
			return fmt.Errorf("duplicate player %q", p.Name)
		}
		names[p.Name] = true

		switch p.Controller {
		case ControllerHuman:
			humans++
		case ControllerBot:
			if !bot.IsStrategy(p.Strategy) {
				return fmt.Errorf("player %s: invalid strategy %s", p.Name, p.Strategy)
			}
		default:
			return fmt.Errorf("player %s: invalid controller %s", p.Name, p.Controller)
		}
		if p.Chips <= 0 {
			return fmt.Errorf("player %s: chips must be positive", p.Name)
		}
	}
	if humans > 1 {
		return fmt.Errorf("at most one human player is supported, got %d", humans)
	}
	return nil
}

// Human returns the human seat, if any
func (c *Config) Human() (PlayerConfig, bool) {
	for _, p := range c.Players {
		if p.Controller == ControllerHuman {
			return p, true
		}
	}
	return PlayerConfig{}, false
}

// WithoutHumans replaces human seats with bots playing strategy, for
// unattended simulation.
func (c *Config) WithoutHumans(strategy string) *Config {
	out := *c
	match := *c.Match
	out.Match = &match
	out.Players = append([]PlayerConfig(nil), c.Players...)
	for i := range out.Players {
		if out.Players[i].Controller == ControllerHuman {
			out.Players[i].Controller = ControllerBot
			out.Players[i].Strategy = strategy
		}
	}
	return &out
}
