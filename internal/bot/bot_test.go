package bot

import (
	"context"
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/holdem/internal/deck"
	"github.com/lox/holdem/internal/game"
	"github.com/lox/holdem/internal/randutil"
)

func quietLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{})
}

// preflopSpot is A to act under the gun facing currentBet
func preflopSpot(hole string, currentBet int) (game.Snapshot, []game.ValidAction) {
	snap := game.Snapshot{
		Phase:      game.Preflop,
		BigBlind:   20,
		CurrentBet: currentBet,
		MinRaise:   20,
		Pot:        30 + currentBet,
		Acting:     0,
		Players: []game.PlayerView{
			{Name: "A", Chips: 1000, HoleCards: deck.MustParseCards(hole)},
			{Name: "B", Chips: 990, BetThisRound: 10},
			{Name: "C", Chips: 980, BetThisRound: currentBet},
		},
	}
	valid := []game.ValidAction{
		{Action: game.Fold},
		{Action: game.Call, MinAmount: currentBet, MaxAmount: currentBet},
		{Action: game.Raise, MinAmount: 2 * currentBet, MaxAmount: 1000},
		{Action: game.AllIn, MinAmount: 1000, MaxAmount: 1000},
	}
	return snap, valid
}

func TestNewKnowsEveryStrategy(t *testing.T) {
	t.Parallel()

	for _, name := range Strategies() {
		b, err := New(name, randutil.New(1), quietLogger())
		require.NoError(t, err, name)
		assert.NotNil(t, b, name)
		assert.True(t, IsStrategy(name))
	}

	_, err := New("shark", randutil.New(1), quietLogger())
	assert.Error(t, err)
	assert.False(t, IsStrategy("shark"))
}

func TestHandKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		hole string
		want string
	}{
		{"As Ah", "AA"},
		{"Kd As", "AKo"},
		{"9h Th", "T9s"},
		{"7c 2d", "72o"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, HandKey(deck.MustParseCards(tt.hole)), tt.hole)
	}
	assert.Empty(t, HandKey(nil))

	assert.InDelta(t, 1.0, HandPercentile(deck.MustParseCards("Ac Ad")), 1e-9)
	assert.Greater(t, HandPercentile(deck.MustParseCards("Ks Qs")), HandPercentile(deck.MustParseCards("Kd Qc")))
	assert.Zero(t, HandPercentile(deck.MustParseCards("7c 2d")))
	assert.Len(t, startingHands, 169)
}

func TestCallBotNeverRaises(t *testing.T) {
	t.Parallel()

	b := NewCallBot(quietLogger())
	snap, valid := preflopSpot("As Ah", 60)
	d, err := b.Decide(context.Background(), snap, valid)
	require.NoError(t, err)
	assert.Equal(t, game.Call, d.Action)
	assert.Equal(t, 60, d.Amount)

	d, err = b.Decide(context.Background(), snap, []game.ValidAction{{Action: game.Fold}, {Action: game.Check}})
	require.NoError(t, err)
	assert.Equal(t, game.Check, d.Action)
}

func TestFoldBot(t *testing.T) {
	t.Parallel()

	b := NewFoldBot(quietLogger())
	snap, valid := preflopSpot("As Ah", 20)
	d, err := b.Decide(context.Background(), snap, valid)
	require.NoError(t, err)
	assert.Equal(t, game.Fold, d.Action)
}

func TestTAGBotPreflop(t *testing.T) {
	t.Parallel()

	b := NewTAGBot(randutil.New(1), quietLogger())

	snap, valid := preflopSpot("As Ah", 20)
	d, err := b.Decide(context.Background(), snap, valid)
	require.NoError(t, err)
	assert.Equal(t, game.Raise, d.Action)
	assert.Equal(t, 60, d.Amount)

	snap, valid = preflopSpot("7c 2d", 60)
	d, err = b.Decide(context.Background(), snap, valid)
	require.NoError(t, err)
	assert.Equal(t, game.Fold, d.Action)
}

func TestTAGBotBetsTheNuts(t *testing.T) {
	t.Parallel()

	b := NewTAGBot(randutil.New(1), quietLogger())
	snap := game.Snapshot{
		Phase:          game.River,
		BigBlind:       20,
		Pot:            200,
		CommunityCards: deck.MustParseCards("Ts Js Qs 2d 3c"),
		Players: []game.PlayerView{
			{Name: "A", Chips: 900, HoleCards: deck.MustParseCards("As Ks")},
			{Name: "B", Chips: 900},
		},
	}
	valid := []game.ValidAction{
		{Action: game.Fold},
		{Action: game.Check},
		{Action: game.Bet, MinAmount: 20, MaxAmount: 900},
		{Action: game.AllIn, MinAmount: 900, MaxAmount: 900},
	}

	d, err := b.Decide(context.Background(), snap, valid)
	require.NoError(t, err)
	assert.Equal(t, game.Bet, d.Action)
	assert.Equal(t, 150, d.Amount)
}

func TestTAGBotHonoursCancellation(t *testing.T) {
	t.Parallel()

	b := NewTAGBot(randutil.New(1), quietLogger())
	b.samples = 100_000
	snap := game.Snapshot{
		Phase:          game.Flop,
		Pot:            40,
		CommunityCards: deck.MustParseCards("2c 7d 9s"),
		Players: []game.PlayerView{
			{Name: "A", Chips: 900, HoleCards: deck.MustParseCards("As Ks")},
			{Name: "B", Chips: 900},
		},
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := b.Decide(ctx, snap, []game.ValidAction{{Action: game.Fold}, {Action: game.Check}})
	assert.ErrorIs(t, err, context.Canceled)
}

// TestBotsOnlyChooseValidActions seats every strategy at one table and plays
// whole hands, checking that the engine accepts each decision.
func TestBotsOnlyChooseValidActions(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	rng := randutil.New(99)
	var (
		players []*game.Player
		bots    = map[*game.Player]game.DecisionProvider{}
	)
	for _, name := range Strategies() {
		p := game.NewPlayer(name, game.Bot, 400)
		b, err := New(name, rng, quietLogger())
		require.NoError(t, err)
		players = append(players, p)
		bots[p] = b
	}

	e := game.NewEngine(game.WithSource(randutil.New(100)))
	for hand := 0; hand < 40 && e.StartHand(players); hand++ {
		for e.InProgress() {
			if p := e.ActingPlayer(); p != nil {
				d, err := bots[p].Decide(ctx, e.SnapshotFor(p), e.ValidActions())
				require.NoError(t, err)
				require.NoError(t, e.ProcessAction(d.Action, d.Amount), "%s chose %s %d", p.Name, d.Action, d.Amount)
			}
			_, err := e.Advance()
			require.NoError(t, err)
		}
	}

	total := 0
	for _, p := range players {
		total += p.Chips
	}
	assert.Equal(t, 400*len(players), total)
}
