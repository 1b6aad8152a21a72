package bot

import (
	"context"

	"github.com/charmbracelet/log"

	"github.com/lox/holdem/internal/game"
)

// pushPercentile is the weakest starting hand ChartBot shoves when short
const pushPercentile = 0.85

// ChartBot implements a simple push-fold pre-flop chart and check/call post-flop
type ChartBot struct {
	logger *log.Logger
}

// NewChartBot creates a new ChartBot instance
func NewChartBot(logger *log.Logger) *ChartBot {
	return &ChartBot{logger: logger}
}

func (c *ChartBot) Decide(_ context.Context, snap game.Snapshot, valid []game.ValidAction) (game.Decision, error) {
	me, ok := snap.ActingPlayer()
	if !ok {
		return game.PassiveDecision(valid, "chart-bot not acting"), nil
	}

	if snap.Phase == game.Preflop {
		pct := HandPercentile(me.HoleCards)
		if pct >= pushPercentile && me.Chips <= 20*snap.BigBlind {
			c.logger.Debug("Pushing", "hand", HandKey(me.HoleCards), "percentile", pct)
			return choose(valid, 0, "chart-bot push", game.AllIn), nil
		}
		// Fold to raises, limp otherwise
		if snap.CurrentBet > snap.BigBlind {
			return choose(valid, 0, "chart-bot folding", game.Check, game.Fold), nil
		}
	}
	return choose(valid, 0, "chart-bot calling", game.Check, game.Call, game.Fold), nil
}
