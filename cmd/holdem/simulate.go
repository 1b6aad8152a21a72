package main

import (
	"fmt"
	"os"
	"time"

	"github.com/lox/holdem/internal/bot"
	"github.com/lox/holdem/internal/config"
	"github.com/lox/holdem/internal/simulator"
)

type SimulateCmd struct {
	Config        string `short:"c" default:"holdem.hcl" type:"path" help:"Match configuration file (defaults apply when missing)"`
	Matches       int    `short:"m" default:"100" help:"Number of matches to play"`
	Hands         int    `default:"200" help:"Hand limit per match (0 plays until one player has every chip)"`
	Seed          int64  `help:"Seed for deterministic simulation (0 for random)"`
	HumanStrategy string `default:"tag" help:"Strategy that replaces human seats"`
	Parallel      int    `help:"Matches played at once (0 uses every CPU)"`
}

func (c *SimulateCmd) Run(cli *CLI) error {
	if !bot.IsStrategy(c.HumanStrategy) {
		return fmt.Errorf("unknown strategy %q", c.HumanStrategy)
	}

	cfg, err := config.Load(c.Config)
	if err != nil {
		return err
	}
	cfg = cfg.WithoutHumans(c.HumanStrategy)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	seed := c.Seed
	if seed == 0 {
		seed = cfg.Match.Seed
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	logger := cli.newLogger(os.Stderr, "simulate")
	seats := make([]simulator.SeatConfig, len(cfg.Players))
	for i, p := range cfg.Players {
		seats[i] = simulator.SeatConfig{Name: p.Name, Strategy: p.Strategy, Chips: p.Chips}
	}

	logger.Info("Running simulation", "matches", c.Matches, "hands", c.Hands, "seed", seed)
	ctx, stop := signalContext()
	defer stop()

	start := time.Now()
	report, err := simulator.New(simulator.Config{
		Seats:         seats,
		BigBlind:      cfg.Match.BigBlind,
		Matches:       c.Matches,
		HandsPerMatch: c.Hands,
		Seed:          seed,
		SidePots:      cfg.Match.SidePotsEnabled(),
		Parallelism:   c.Parallel,
		Logger:        logger,
	}).Run(ctx)
	if err != nil {
		return err
	}

	simulator.PrintSummary(os.Stdout, report)
	logger.Info("Done", "elapsed", time.Since(start).Round(time.Millisecond))
	return nil
}
