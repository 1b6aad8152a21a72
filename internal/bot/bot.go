// Package bot provides reference decision providers for computer players.
//
// Bots see only the snapshot and valid actions the driver hands them, so they
// can never act out of turn or change the engine's state. Every bot answers
// with one of the valid actions it was offered.
package bot

import (
	"fmt"
	"io"
	"math/rand/v2"
	"slices"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/lox/holdem/internal/game"
)

// Strategy names accepted by New
const (
	StrategyCall   = "call"
	StrategyFold   = "fold"
	StrategyRandom = "random"
	StrategyManiac = "maniac"
	StrategyChart  = "chart"
	StrategyTAG    = "tag"
)

// Strategies lists every strategy New understands
func Strategies() []string {
	return []string{StrategyCall, StrategyFold, StrategyRandom, StrategyManiac, StrategyChart, StrategyTAG}
}

// New creates the bot for a strategy name
func New(strategy string, rng *rand.Rand, logger *log.Logger) (game.DecisionProvider, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	logger = logger.WithPrefix(strategy)
	switch strings.ToLower(strategy) {
	case StrategyCall:
		return NewCallBot(logger), nil
	case StrategyFold:
		return NewFoldBot(logger), nil
	case StrategyRandom:
		return NewRandBot(rng, logger), nil
	case StrategyManiac:
		return NewManiacBot(rng, logger), nil
	case StrategyChart:
		return NewChartBot(logger), nil
	case StrategyTAG:
		return NewTAGBot(rng, logger), nil
	}
	return nil, fmt.Errorf("unknown bot strategy %q (want one of %s)", strategy, strings.Join(Strategies(), ", "))
}

// IsStrategy reports whether name is a known strategy
func IsStrategy(name string) bool {
	return slices.Contains(Strategies(), strings.ToLower(name))
}

// choose returns the first preferred action that is valid. Call, Check and
// Fold carry their own amounts; for Bet, Raise and AllIn the amount is clamped
// to the valid range.
func choose(valid []game.ValidAction, amount int, reasoning string, preferred ...game.Action) game.Decision {
	for _, action := range preferred {
		va, ok := game.FindAction(valid, action)
		if !ok {
			continue
		}
		switch action {
		case game.Bet, game.Raise:
			amount = min(max(amount, va.MinAmount), va.MaxAmount)
		default:
			amount = va.MinAmount
		}
		return game.Decision{Action: action, Amount: amount, Reasoning: reasoning}
	}
	return game.PassiveDecision(valid, "fallback: "+reasoning)
}

// aggressive is the bet or raise on offer, whichever applies
func aggressive(valid []game.ValidAction) (game.ValidAction, bool) {
	if va, ok := game.FindAction(valid, game.Raise); ok {
		return va, true
	}
	return game.FindAction(valid, game.Bet)
}

// potSizedBet returns a bet or raise target of fraction times the pot after
// calling
func potSizedBet(snap game.Snapshot, fraction float64) int {
	toCall := snap.ToCall()
	return snap.CurrentBet + int(float64(snap.Pot+toCall)*fraction)
}

// opponents counts players other than the actor still in the hand
func opponents(snap game.Snapshot) int {
	n := 0
	for i, p := range snap.Players {
		if i != snap.Acting && !p.Folded {
			n++
		}
	}
	return n
}
