package bot

import (
	"context"
	"math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/lox/holdem/internal/game"
)

// RandBot is a simple bot that makes uniform random legal actions
type RandBot struct {
	rng    *rand.Rand
	logger *log.Logger
}

// NewRandBot creates a new RandBot instance
func NewRandBot(rng *rand.Rand, logger *log.Logger) *RandBot {
	return &RandBot{rng: rng, logger: logger}
}

func (r *RandBot) Decide(_ context.Context, _ game.Snapshot, valid []game.ValidAction) (game.Decision, error) {
	if len(valid) == 0 {
		return game.Decision{Action: game.Fold, Reasoning: "rand-bot no valid actions"}, nil
	}

	va := valid[r.rng.IntN(len(valid))]

	// Bets and raises pick a random total in range
	amount := va.MinAmount
	if (va.Action == game.Bet || va.Action == game.Raise) && va.MaxAmount > va.MinAmount {
		amount += r.rng.IntN(va.MaxAmount - va.MinAmount + 1)
	}
	return game.Decision{Action: va.Action, Amount: amount, Reasoning: "rand-bot random action"}, nil
}
