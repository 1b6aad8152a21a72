package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/lox/holdem/internal/bot"
	"github.com/lox/holdem/internal/config"
	"github.com/lox/holdem/internal/console"
	"github.com/lox/holdem/internal/game"
	"github.com/lox/holdem/internal/match"
	"github.com/lox/holdem/internal/phh"
	"github.com/lox/holdem/internal/randutil"
)

type PlayCmd struct {
	Config     string `short:"c" default:"holdem.hcl" type:"path" help:"Match configuration file (defaults apply when missing)"`
	Seed       int64  `help:"Seed for deterministic shuffles and bots (0 for random)"`
	Hands      int    `help:"Stop after N hands (0 plays until one player has every chip)"`
	Fast       bool   `help:"Disable the bot thinking delay"`
	HistoryDir string `help:"Write each hand's history to this directory"`
	Format     string `help:"Hand history format, text or phh (overrides the config file)"`
	LogFile    string `default:"holdem.log" help:"Debug log file, kept off the terminal"`
}

var standingStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#FFD700")).
	Bold(true)

func (c *PlayCmd) Run(cli *CLI) error {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return err
	}
	if c.Seed != 0 {
		cfg.Match.Seed = c.Seed
	}
	if c.Hands != 0 {
		cfg.Match.Hands = c.Hands
	}
	if c.Fast {
		cfg.Match.ThinkDelayMs = 0
	}
	if c.HistoryDir != "" {
		cfg.Match.HistoryDir = c.HistoryDir
	}
	if c.Format != "" {
		cfg.Match.HistoryFormat = c.Format
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logFile, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("failed to create log file: %w", err)
	}
	defer func() {
		if err := logFile.Close(); err != nil {
			log.Error("Failed to close log file", "error", err)
		}
	}()
	logger := cli.newLogger(logFile, "play")
	logger.Info("Starting match", "config", c.Config, "players", len(cfg.Players), "seed", cfg.Match.Seed)

	rng := randutil.NewOrTime(cfg.Match.Seed)
	seats, err := buildSeats(cfg, rng.Int64(), logger)
	if err != nil {
		return err
	}

	hero := ""
	if human, ok := cfg.Human(); ok {
		hero = human.Name
	}

	engine := game.NewEngine(
		game.WithBigBlind(cfg.Match.BigBlind),
		game.WithSource(rng),
		game.WithSidePots(cfg.Match.SidePotsEnabled()),
		game.WithLogger(logger),
	)
	opts := []match.Option{
		match.WithThinkDelay(cfg.Match.ThinkDelay()),
		match.WithMaxHands(cfg.Match.Hands),
		match.WithLogger(logger),
		match.WithObserver(console.NewView(os.Stdout, hero)),
	}
	if cfg.Match.HistoryDir != "" {
		opts = append(opts, match.WithHistory(historyWriter(cfg.Match)))
	}
	runner, err := match.NewRunner(engine, seats, opts...)
	if err != nil {
		return err
	}

	ctx, stop := signalContext()
	defer stop()

	printTitle(os.Stdout)
	result, err := runner.Run(ctx)
	printStandings(result)

	if errors.Is(err, match.ErrQuit) || (err != nil && ctx.Err() != nil) {
		logger.Info("Match ended early", "reason", err)
		return nil
	}
	return err
}

// buildSeats creates a provider per configured player. Each bot gets its own
// random stream derived from seed.
func buildSeats(cfg *config.Config, seed int64, logger *log.Logger) ([]match.Seat, error) {
	seats := make([]match.Seat, 0, len(cfg.Players))
	for i, pc := range cfg.Players {
		var (
			player   *game.Player
			provider game.DecisionProvider
		)
		switch pc.Controller {
		case config.ControllerHuman:
			player = game.NewPlayer(pc.Name, game.Human, pc.Chips)
			provider = console.NewHuman(os.Stdin, os.Stdout, logger)
		default:
			b, err := bot.New(pc.Strategy, randutil.New(seed+int64(i)), logger)
			if err != nil {
				return nil, fmt.Errorf("player %s: %w", pc.Name, err)
			}
			player = game.NewPlayer(pc.Name, game.Bot, pc.Chips)
			provider = b
		}
		seats = append(seats, match.Seat{Player: player, Provider: provider})
	}
	return seats, nil
}

func historyWriter(m *config.MatchSettings) match.HistoryWriter {
	if m.HistoryFormat == config.HistoryPHH {
		return phh.NewWriter(m.HistoryDir)
	}
	return match.NewFileHistoryWriter(m.HistoryDir)
}

func printStandings(result match.Result) {
	fmt.Println()
	fmt.Println(standingStyle.Render(fmt.Sprintf("After %d hands:", len(result.Hands))))
	for _, st := range result.Standings {
		line := fmt.Sprintf("  %-12s $%d", st.Name, st.Chips)
		if st.Stats != nil && st.Stats.Hands > 0 {
			line += fmt.Sprintf("  (%.2f bb/hand over %d hands)", st.Stats.Mean(), st.Stats.Hands)
		}
		fmt.Println(line)
	}
	if result.Winner != "" {
		fmt.Println(standingStyle.Render(result.Winner + " wins the match!"))
	}
}
