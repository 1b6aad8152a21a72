package bot

import (
	"context"
	"math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/lox/holdem/internal/game"
)

// ManiacBot is an extremely aggressive bot that shoves frequently
type ManiacBot struct {
	rng    *rand.Rand
	logger *log.Logger
}

// NewManiacBot creates a new ManiacBot instance
func NewManiacBot(rng *rand.Rand, logger *log.Logger) *ManiacBot {
	return &ManiacBot{rng: rng, logger: logger}
}

func (m *ManiacBot) Decide(_ context.Context, snap game.Snapshot, valid []game.ValidAction) (game.Decision, error) {
	me, _ := snap.ActingPlayer()
	raise, canRaise := aggressive(valid)
	short := me.Chips <= 20*snap.BigBlind

	if _, ok := game.FindAction(valid, game.Check); ok {
		// Maniacs prefer to bet
		if m.rng.Float64() < 0.85 {
			if short || m.rng.Float64() < 0.3 {
				return choose(valid, 0, "maniac shove", game.AllIn), nil
			}
			if canRaise {
				size := raise.MinAmount + (raise.MaxAmount-raise.MinAmount)*3/4
				return choose(valid, size, "maniac big raise", raise.Action), nil
			}
		}
		return choose(valid, 0, "maniac checking", game.Check), nil
	}

	// Facing a bet
	switch r := m.rng.Float64(); {
	case r < 0.4:
		return choose(valid, 0, "maniac shove over bet", game.AllIn, game.Call), nil
	case r < 0.8:
		return choose(valid, 0, "maniac call", game.Call, game.AllIn), nil
	}
	return choose(valid, 0, "maniac fold", game.Fold), nil
}
