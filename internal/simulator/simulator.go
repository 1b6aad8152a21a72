// Package simulator plays many bot-only matches in parallel and aggregates
// each seat's results.
package simulator

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/lox/holdem/internal/bot"
	"github.com/lox/holdem/internal/game"
	"github.com/lox/holdem/internal/match"
	"github.com/lox/holdem/internal/randutil"
	"github.com/lox/holdem/internal/statistics"
)

// SeatConfig describes one bot seat
type SeatConfig struct {
	Name     string
	Strategy string
	Chips    int
}

// Config holds configuration for running simulations
type Config struct {
	Seats         []SeatConfig
	BigBlind      int
	Matches       int
	HandsPerMatch int // 0 plays each match until one player is left
	Seed          int64
	SidePots      bool
	Parallelism   int // 0 uses GOMAXPROCS
	Logger        *log.Logger
}

// SeatReport aggregates one seat over every match
type SeatReport struct {
	Name      string
	Strategy  string
	Stats     *statistics.Statistics
	MatchWins int // matches where the seat finished with every chip
	Busts     int // matches where the seat lost every chip
	NetChips  int
}

// Report is the outcome of a simulation
type Report struct {
	Matches int
	Hands   int
	Seats   []SeatReport
}

// Simulator runs matches between bots
type Simulator struct {
	config Config
}

// New creates a new simulator with the given configuration
func New(config Config) *Simulator {
	if config.Logger == nil {
		config.Logger = log.New(io.Discard)
	}
	if config.Parallelism <= 0 {
		config.Parallelism = runtime.GOMAXPROCS(0)
	}
	if config.BigBlind == 0 {
		config.BigBlind = game.DefaultBigBlind
	}
	return &Simulator{config: config}
}

// Run plays every match and merges the results in match order, so a seed
// always gives the same report.
func (s *Simulator) Run(ctx context.Context) (*Report, error) {
	if len(s.config.Seats) < 2 {
		return nil, fmt.Errorf("simulation needs at least 2 seats, got %d", len(s.config.Seats))
	}
	if s.config.Matches <= 0 {
		return nil, fmt.Errorf("simulation needs at least 1 match, got %d", s.config.Matches)
	}
	for _, seat := range s.config.Seats {
		if !bot.IsStrategy(seat.Strategy) {
			return nil, fmt.Errorf("seat %s: unknown strategy %q", seat.Name, seat.Strategy)
		}
	}

	results := make([]match.Result, s.config.Matches)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.config.Parallelism)
	for i := range results {
		g.Go(func() error {
			res, err := s.playMatch(ctx, i)
			if err != nil {
				return fmt.Errorf("match %d: %w", i+1, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	report := &Report{Matches: s.config.Matches}
	for _, seat := range s.config.Seats {
		report.Seats = append(report.Seats, SeatReport{
			Name:     seat.Name,
			Strategy: seat.Strategy,
			Stats:    &statistics.Statistics{},
		})
	}
	for _, res := range results {
		report.Hands += len(res.Hands)
		for i, st := range res.Standings {
			sr := &report.Seats[i]
			sr.Stats.Merge(st.Stats)
			sr.NetChips += st.Chips - s.config.Seats[i].Chips
			if st.Chips == 0 {
				sr.Busts++
			}
			if res.Winner == st.Name {
				sr.MatchWins++
			}
		}
	}

	s.config.Logger.Info("Simulation complete", "matches", report.Matches, "hands", report.Hands)
	return report, nil
}

// playMatch plays one match. The button starts on a different seat each
// match to spread positional advantage.
func (s *Simulator) playMatch(ctx context.Context, index int) (match.Result, error) {
	seed := s.config.Seed + int64(index)
	rng := randutil.New(seed)

	seats := make([]match.Seat, len(s.config.Seats))
	for i, sc := range s.config.Seats {
		provider, err := bot.New(sc.Strategy, randutil.New(seed*31+int64(i)), s.config.Logger)
		if err != nil {
			return match.Result{}, err
		}
		seats[i] = match.Seat{Player: game.NewPlayer(sc.Name, game.Bot, sc.Chips), Provider: provider}
	}

	engine := game.NewEngine(
		game.WithBigBlind(s.config.BigBlind),
		game.WithSource(rng),
		game.WithSidePots(s.config.SidePots),
		game.WithFirstDealer(index%len(seats)),
		game.WithLogger(s.config.Logger),
	)
	runner, err := match.NewRunner(engine, seats,
		match.WithMaxHands(s.config.HandsPerMatch),
		match.WithLogger(s.config.Logger),
	)
	if err != nil {
		return match.Result{}, err
	}
	return runner.Run(ctx)
}

// PrintSummary writes a per-seat summary of the report
func PrintSummary(w io.Writer, report *Report) {
	fmt.Fprintf(w, "\n=== RESULTS: %d matches, %d hands ===\n", report.Matches, report.Hands)
	fmt.Fprintf(w, "%-12s %-8s %8s %10s %21s %6s %6s %9s\n",
		"Player", "Strategy", "Hands", "bb/hand", "95% CI", "Wins", "Busts", "SD won")
	fmt.Fprintln(w, strings.Repeat("-", 88))

	for _, sr := range report.Seats {
		stats := sr.Stats
		low, high := stats.ConfidenceInterval95()
		sdPct := 0.0
		if wins := stats.ShowdownWins + stats.NonShowdownWins; wins > 0 {
			sdPct = float64(stats.ShowdownWins) / float64(wins) * 100
		}
		fmt.Fprintf(w, "%-12s %-8s %8d %10.3f [%8.3f, %8.3f] %6d %6d %8.1f%%\n",
			sr.Name, sr.Strategy, stats.Hands, stats.Mean(), low, high, sr.MatchWins, sr.Busts, sdPct)
	}

	fmt.Fprintf(w, "\n=== POT SIZE ANALYSIS ===\n")
	for _, sr := range report.Seats {
		stats := sr.Stats
		if stats.Hands == 0 {
			continue
		}
		fmt.Fprintf(w, "%-12s max pot %.1f bb, big pots (>=50bb) %d (%.1f%%) for %.2f bb, median %.3f bb\n",
			sr.Name, stats.MaxPotBB, stats.BigPots,
			float64(stats.BigPots)/float64(stats.Hands)*100, stats.BigPotsBB, stats.Median())
	}
}
