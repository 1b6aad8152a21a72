package console

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/holdem/internal/game"
	"github.com/lox/holdem/internal/match"
	"github.com/lox/holdem/internal/randutil"
)

var facingBet = []game.ValidAction{
	{Action: game.Fold},
	{Action: game.Call, MinAmount: 20, MaxAmount: 20},
	{Action: game.Raise, MinAmount: 40, MaxAmount: 500},
	{Action: game.AllIn, MinAmount: 500, MaxAmount: 500},
}

var unopened = []game.ValidAction{
	{Action: game.Fold},
	{Action: game.Check},
	{Action: game.Bet, MinAmount: 20, MaxAmount: 500},
	{Action: game.AllIn, MinAmount: 500, MaxAmount: 500},
}

func TestParseCommand(t *testing.T) {
	t.Parallel()

	tests := []struct {
		line   string
		valid  []game.ValidAction
		want   game.Decision
		errMsg string
	}{
		{line: "fold", valid: facingBet, want: game.Decision{Action: game.Fold}},
		{line: "c", valid: facingBet, want: game.Decision{Action: game.Call, Amount: 20}},
		{line: "raise 100", valid: facingBet, want: game.Decision{Action: game.Raise, Amount: 100}},
		{line: "bet $60", valid: facingBet, want: game.Decision{Action: game.Raise, Amount: 60}},
		{line: "ALLIN", valid: facingBet, want: game.Decision{Action: game.AllIn, Amount: 500}},
		{line: "call", valid: unopened, want: game.Decision{Action: game.Check}},
		{line: "r 50", valid: unopened, want: game.Decision{Action: game.Bet, Amount: 50}},
		{line: "check", valid: facingBet, errMsg: "cannot check now"},
		{line: "raise", valid: facingBet, errMsg: "needs an amount"},
		{line: "raise 30", valid: facingBet, errMsg: "between 40 and 500"},
		{line: "raise lots", valid: facingBet, errMsg: "invalid amount"},
		{line: "dance", valid: facingBet, errMsg: "unknown command"},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got, err := parseCommand(tt.line, tt.valid)
			if tt.errMsg != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := parseCommand("quit", facingBet)
	assert.ErrorIs(t, err, match.ErrQuit)
	_, err = parseCommand("   ", facingBet)
	assert.ErrorIs(t, err, errUsage)
}

func facingBetSnapshot() game.Snapshot {
	return game.Snapshot{
		Phase:      game.Preflop,
		Pot:        30,
		CurrentBet: 20,
		Acting:     0,
		Players: []game.PlayerView{
			{Name: "You", Controller: game.Human, Chips: 500},
			{Name: "Bot", Chips: 480, BetThisRound: 20},
		},
	}
}

func TestHumanRepromptsUntilValid(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	h := NewHuman(strings.NewReader("check\nhelp\nraise 10\nraise 120\n"), &out, nil)

	d, err := h.Decide(context.Background(), facingBetSnapshot(), facingBet)
	require.NoError(t, err)
	assert.Equal(t, game.Raise, d.Action)
	assert.Equal(t, 120, d.Amount)

	text := out.String()
	assert.Contains(t, text, "To call: $20")
	assert.Contains(t, text, "cannot check now")
	assert.Contains(t, text, "Commands:")
	assert.Contains(t, text, "between 40 and 500")
	assert.Equal(t, 4, strings.Count(text, "Action> "))
}

func TestHumanQuits(t *testing.T) {
	t.Parallel()

	h := NewHuman(strings.NewReader("q\n"), io.Discard, nil)
	_, err := h.Decide(context.Background(), facingBetSnapshot(), facingBet)
	assert.ErrorIs(t, err, match.ErrQuit)

	h = NewHuman(strings.NewReader(""), io.Discard, nil)
	_, err = h.Decide(context.Background(), facingBetSnapshot(), facingBet)
	assert.ErrorIs(t, err, match.ErrQuit, "end of input quits")
}

func TestHumanHonoursCancellation(t *testing.T) {
	t.Parallel()

	in, _ := io.Pipe()
	h := NewHuman(in, io.Discard, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := h.Decide(ctx, facingBetSnapshot(), facingBet)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestViewFollowsAMatch(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	view := NewView(&out, "A")

	caller := game.DecisionFunc(func(_ context.Context, _ game.Snapshot, valid []game.ValidAction) (game.Decision, error) {
		if va, ok := game.FindAction(valid, game.Call); ok {
			return game.Decision{Action: game.Call, Amount: va.MinAmount}, nil
		}
		return game.PassiveDecision(valid, "check it down"), nil
	})
	seats := []match.Seat{
		{Player: game.NewPlayer("A", game.Human, 500), Provider: caller},
		{Player: game.NewPlayer("B", game.Bot, 500), Provider: caller},
		{Player: game.NewPlayer("C", game.Bot, 500), Provider: caller},
	}
	r, err := match.NewRunner(game.NewEngine(game.WithSource(randutil.New(5))), seats,
		match.WithMaxHands(2), match.WithObserver(view))
	require.NoError(t, err)

	res, err := r.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, res.Hands, 2)

	text := out.String()
	assert.Contains(t, text, "Hand #1")
	assert.Contains(t, text, "Hand #2")
	assert.Contains(t, text, "A (You)")
	assert.Contains(t, text, "posts big blind 20")
	assert.Contains(t, text, "*** flop ***")
	assert.Contains(t, text, "*** river ***")
	assert.Contains(t, text, "Final board:")
	assert.Contains(t, text, " wins $")
	assert.Equal(t, 2, strings.Count(text, "posts big blind 20"), "each event is written once")
}
