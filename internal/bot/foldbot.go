package bot

import (
	"context"

	"github.com/charmbracelet/log"

	"github.com/lox/holdem/internal/game"
)

// FoldBot is a simple bot that always folds (or checks when possible)
type FoldBot struct {
	logger *log.Logger
}

// NewFoldBot creates a new FoldBot instance
func NewFoldBot(logger *log.Logger) *FoldBot {
	return &FoldBot{logger: logger}
}

func (f *FoldBot) Decide(_ context.Context, _ game.Snapshot, valid []game.ValidAction) (game.Decision, error) {
	return game.PassiveDecision(valid, "fold-bot"), nil
}
