package bot

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/lox/holdem/internal/evaluator"
	"github.com/lox/holdem/internal/game"
)

// equitySamples is how many run-outs TAGBot simulates per post-flop decision
const equitySamples = 400

// TAGBot is a tight aggressive bot. Pre-flop it plays from a starting hand
// chart; after the flop it estimates its equity against the players left in
// the hand and weighs it against the pot odds.
type TAGBot struct {
	rng     *rand.Rand
	logger  *log.Logger
	samples int
}

// NewTAGBot creates a new TAGBot instance
func NewTAGBot(rng *rand.Rand, logger *log.Logger) *TAGBot {
	return &TAGBot{rng: rng, logger: logger, samples: equitySamples}
}

func (t *TAGBot) Decide(ctx context.Context, snap game.Snapshot, valid []game.ValidAction) (game.Decision, error) {
	me, ok := snap.ActingPlayer()
	if !ok || len(me.HoleCards) != 2 {
		return game.PassiveDecision(valid, "TAG cannot see its cards"), nil
	}

	if snap.Phase == game.Preflop {
		return t.preflop(snap, me, valid), nil
	}

	equity, err := evaluator.EstimateEquity(ctx, me.HoleCards, snap.CommunityCards,
		max(1, opponents(snap)), t.samples, t.rng.Int64())
	if err != nil {
		return game.Decision{}, fmt.Errorf("estimating equity: %w", err)
	}
	t.logger.Debug("Estimated equity", "player", me.Name, "phase", snap.Phase, "equity", fmt.Sprintf("%.2f", equity))
	return t.postflop(snap, equity, valid), nil
}

func (t *TAGBot) preflop(snap game.Snapshot, me game.PlayerView, valid []game.ValidAction) game.Decision {
	pct := HandPercentile(me.HoleCards)
	raised := snap.CurrentBet > snap.BigBlind
	key := HandKey(me.HoleCards)

	switch {
	case pct >= 0.94:
		return choose(valid, 3*snap.CurrentBet, "TAG raise premium "+key, game.Raise, game.Bet, game.AllIn, game.Call)
	case pct >= 0.85 && !raised:
		return choose(valid, 3*snap.BigBlind, "TAG open "+key, game.Raise, game.Bet, game.Call, game.Check)
	case pct >= 0.85:
		return choose(valid, 0, "TAG call raise with "+key, game.Call, game.Check)
	case pct >= 0.70 && !raised:
		return choose(valid, 0, "TAG limp "+key, game.Check, game.Call)
	}
	return choose(valid, 0, "TAG fold "+key, game.Check, game.Fold)
}

func (t *TAGBot) postflop(snap game.Snapshot, equity float64, valid []game.ValidAction) game.Decision {
	toCall := snap.ToCall()
	potOdds := 0.0
	if toCall > 0 {
		potOdds = float64(toCall) / float64(snap.Pot+toCall)
	}

	switch {
	case equity >= 0.75:
		return choose(valid, potSizedBet(snap, 0.75), "TAG value bet", game.Raise, game.Bet, game.Call, game.Check)
	case toCall == 0 && equity >= 0.55:
		return choose(valid, potSizedBet(snap, 0.5), "TAG half-pot bet", game.Bet, game.Check)
	case toCall > 0 && equity > potOdds+0.1:
		return choose(valid, 0, "TAG call with odds", game.Call)
	}
	return choose(valid, 0, "TAG give up", game.Check, game.Fold)
}
