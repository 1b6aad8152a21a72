// Package match drives a game.Engine through a sequence of hands, asking each
// seat's decision provider for actions until the match is decided.
package match

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/holdem/internal/deck"
	"github.com/lox/holdem/internal/game"
	"github.com/lox/holdem/internal/gameid"
	"github.com/lox/holdem/internal/statistics"
)

var (
	// ErrQuit is returned by a provider whose player wants to leave; the
	// runner stops after recording the hands already played.
	ErrQuit = errors.New("player quit")
	// ErrChipsNotConserved means a hand created or destroyed chips
	ErrChipsNotConserved = errors.New("chips not conserved")
)

// Seat pairs a player with whoever makes their decisions
type Seat struct {
	Player   *game.Player
	Provider game.DecisionProvider
}

// HandSeat is one player's part in a finished hand
type HandSeat struct {
	Name          string
	HoleCards     []deck.Card
	StartingStack int
	Blind         int // chips posted as a blind
	FinalStack    int
	Folded        bool
}

// HandSummary describes a finished hand
type HandSummary struct {
	MatchID    string
	HandNumber int
	BigBlind   int
	Dealer     int        // index into Seats
	Seats      []HandSeat // players dealt in, roster order
	Actions    []game.HandAction
	Pot        int
	Board      []deck.Card
	Winners    []game.Payout
	Showdown   bool
	Street     game.Phase // furthest street reached
	Log        []string
}

// Text renders the hand's event log
func (h HandSummary) Text() string {
	return strings.Join(h.Log, "\n") + "\n"
}

// Standing is a player's stack when the match ended
type Standing struct {
	Name  string
	Chips int
	Stats *statistics.Statistics
}

// Result is the outcome of a match
type Result struct {
	Hands     []HandSummary
	Standings []Standing // roster order
	Winner    string     // set when one player holds every chip
}

// Runner plays hands on an engine
type Runner struct {
	id        string
	engine    *game.Engine
	players   []*game.Player
	providers map[*game.Player]game.DecisionProvider

	clock      quartz.Clock
	thinkDelay time.Duration
	maxHands   int
	logger     *log.Logger
	history    HistoryWriter
	observers  []Observer
}

// NewRunner creates a runner for the given seats, in roster order
func NewRunner(engine *game.Engine, seats []Seat, opts ...Option) (*Runner, error) {
	if len(seats) < 2 {
		return nil, fmt.Errorf("a match needs at least 2 seats, got %d", len(seats))
	}

	r := &Runner{
		engine:    engine,
		providers: make(map[*game.Player]game.DecisionProvider, len(seats)),
	}
	names := make(map[string]bool, len(seats))
	for i, s := range seats {
		if s.Player == nil || s.Provider == nil {
			return nil, fmt.Errorf("seat %d has no player or provider", i)
		}
		if names[s.Player.Name] {
			return nil, fmt.Errorf("duplicate player name %q", s.Player.Name)
		}
		names[s.Player.Name] = true
		r.players = append(r.players, s.Player)
		r.providers[s.Player] = s.Provider
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	r.id = cfg.id
	if r.id == "" {
		r.id = gameid.Generate()
	}
	r.clock = cfg.clock
	r.thinkDelay = cfg.thinkDelay
	r.maxHands = cfg.maxHands
	r.logger = cfg.logger
	r.history = cfg.history
	r.observers = cfg.observers
	return r, nil
}

// ID returns the match identifier used in hand histories
func (r *Runner) ID() string { return r.id }

// Run plays hands until fewer than two players have chips, the hand limit is
// reached, a provider quits or ctx is cancelled. The result covers every
// completed hand, even when an error is returned.
func (r *Runner) Run(ctx context.Context) (Result, error) {
	total := r.chipsInPlay()
	stats := make(map[*game.Player]*statistics.Statistics, len(r.players))
	for _, p := range r.players {
		stats[p] = &statistics.Statistics{}
	}

	var (
		result Result
		err    error
	)
	for r.maxHands == 0 || len(result.Hands) < r.maxHands {
		if err = ctx.Err(); err != nil {
			break
		}

		before := make(map[*game.Player]int, len(r.players))
		for _, p := range r.players {
			before[p] = p.Chips
		}
		if !r.engine.StartHand(r.players) {
			break
		}
		start := r.engine.Snapshot()
		r.notify(func(o Observer) { o.HandStarted(start) })

		var summary HandSummary
		summary, err = r.playHand(ctx, start)
		if err != nil {
			break
		}
		result.Hands = append(result.Hands, summary)

		if got := r.chipsInPlay(); got != total {
			err = fmt.Errorf("%w: hand %d ended with %d chips, expected %d", ErrChipsNotConserved, summary.HandNumber, got, total)
			break
		}
		r.record(summary, before, stats)

		if r.history != nil {
			if werr := r.history.WriteHandHistory(summary); werr != nil {
				r.logger.Warn("Failed to write hand history", "hand", summary.HandNumber, "error", werr)
			}
		}
		r.notify(func(o Observer) { o.HandFinished(summary) })
	}

	funded := 0
	for _, p := range r.players {
		result.Standings = append(result.Standings, Standing{Name: p.Name, Chips: p.Chips, Stats: stats[p]})
		if p.Chips > 0 {
			funded++
			result.Winner = p.Name
		}
	}
	if funded != 1 {
		result.Winner = ""
	}

	r.logger.Info("Match over", "match", r.id, "hands", len(result.Hands), "winner", result.Winner)
	return result, err
}

// playHand runs the hand the engine has just dealt until it completes. start
// is the full snapshot taken after the deal.
func (r *Runner) playHand(ctx context.Context, start game.Snapshot) (HandSummary, error) {
	for {
		if p := r.engine.ActingPlayer(); p != nil {
			if err := r.act(ctx, p); err != nil {
				return HandSummary{}, err
			}
		}

		res, err := r.engine.Advance()
		if err != nil {
			return HandSummary{}, fmt.Errorf("advancing hand %d: %w", r.engine.HandNumber(), err)
		}
		if res.PhaseChanged || res.HandComplete {
			snap := r.engine.Snapshot()
			r.notify(func(o Observer) { o.Update(snap) })
		}
		if !res.HandComplete {
			continue
		}

		pot := 0
		for _, w := range res.Winners {
			pot += w.Amount
		}
		seats := make([]HandSeat, len(start.Players))
		for i, p := range r.engine.Players() {
			view := start.Players[i]
			seats[i] = HandSeat{
				Name:          p.Name,
				HoleCards:     view.HoleCards,
				StartingStack: view.Chips + view.TotalBet,
				Blind:         view.TotalBet,
				FinalStack:    p.Chips,
				Folded:        p.Folded,
			}
		}
		return HandSummary{
			MatchID:    r.id,
			HandNumber: r.engine.HandNumber(),
			BigBlind:   r.engine.BigBlind(),
			Dealer:     start.Dealer,
			Seats:      seats,
			Actions:    r.engine.HandActions(),
			Pot:        pot,
			Board:      r.engine.CommunityCards(),
			Winners:    res.Winners,
			Showdown:   res.Phase == game.Showdown,
			Street:     res.Phase,
			Log:        r.engine.HandLog(),
		}, nil
	}
}

// act asks p's provider for a decision and applies it. An illegal decision or
// a provider failure is replaced with a check, or a fold when checking is not
// allowed.
func (r *Runner) act(ctx context.Context, p *game.Player) error {
	if p.Controller == game.Bot && r.thinkDelay > 0 {
		if err := r.think(ctx); err != nil {
			return err
		}
	}

	snap := r.engine.SnapshotFor(p)
	valid := r.engine.ValidActions()
	r.notify(func(o Observer) { o.Update(snap) })

	d, err := r.providers[p].Decide(ctx, snap, valid)
	switch {
	case errors.Is(err, ErrQuit):
		r.logger.Info("Player quit", "player", p.Name)
		return err
	case ctx.Err() != nil:
		return ctx.Err()
	case err != nil:
		r.logger.Warn("Decision failed, playing passively", "player", p.Name, "error", err)
		d = game.PassiveDecision(valid, "decision failed")
	}

	if err := r.engine.ProcessAction(d.Action, d.Amount); err != nil {
		r.logger.Warn("Invalid decision, playing passively", "player", p.Name, "action", d.Action, "amount", d.Amount, "error", err)
		d = game.PassiveDecision(valid, "invalid decision")
		if err := r.engine.ProcessAction(d.Action, d.Amount); err != nil {
			return fmt.Errorf("fallback for %s: %w", p.Name, err)
		}
	}

	r.logger.Debug("Player acted", "player", p.Name, "action", d.Action, "amount", d.Amount, "reasoning", d.Reasoning)
	return nil
}

// think waits out the bot thinking delay
func (r *Runner) think(ctx context.Context) error {
	timer := r.clock.NewTimer(r.thinkDelay, "runner", "think")
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (r *Runner) record(summary HandSummary, before map[*game.Player]int, stats map[*game.Player]*statistics.Statistics) {
	bb := float64(r.engine.BigBlind())
	for _, p := range r.engine.Players() {
		stats[p].Add(statistics.HandResult{
			NetBB:          float64(p.Chips-before[p]) / bb,
			WentToShowdown: summary.Showdown && !p.Folded,
			PotBB:          float64(summary.Pot) / bb,
			Street:         summary.Street.String(),
		})
	}
}

func (r *Runner) chipsInPlay() int {
	total := 0
	for _, p := range r.players {
		total += p.Chips + p.TotalBet
	}
	return total
}

func (r *Runner) notify(fn func(Observer)) {
	for _, o := range r.observers {
		fn(o)
	}
}
