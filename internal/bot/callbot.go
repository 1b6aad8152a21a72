package bot

import (
	"context"

	"github.com/charmbracelet/log"

	"github.com/lox/holdem/internal/game"
)

// CallBot is a calling station: it checks or calls every street and never
// raises. It folds only when it cannot call.
type CallBot struct {
	logger *log.Logger
}

// NewCallBot creates a new CallBot instance
func NewCallBot(logger *log.Logger) *CallBot {
	return &CallBot{logger: logger}
}

func (c *CallBot) Decide(_ context.Context, snap game.Snapshot, valid []game.ValidAction) (game.Decision, error) {
	d := choose(valid, 0, "call-bot checking", game.Check)
	if d.Action != game.Check {
		d = choose(valid, 0, "call-bot calling", game.Call, game.AllIn)
	}
	c.logger.Debug("Decided", "hand", snap.HandNumber, "phase", snap.Phase, "action", d.Action)
	return d, nil
}
