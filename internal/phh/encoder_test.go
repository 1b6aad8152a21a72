package phh_test

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/holdem/internal/deck"
	"github.com/lox/holdem/internal/game"
	"github.com/lox/holdem/internal/match"
	"github.com/lox/holdem/internal/phh"
)

// Ann is on the button, Bob posts the small blind and Cat the big blind.
func showdownSummary() match.HandSummary {
	ann := &game.Player{Name: "Ann"}
	return match.HandSummary{
		MatchID:    "01h5n0et5q6mt3v7ms1234abcd",
		HandNumber: 7,
		BigBlind:   20,
		Dealer:     0,
		Seats: []match.HandSeat{
			{Name: "Ann", HoleCards: deck.MustParseCards("AhAd"), StartingStack: 1000, FinalStack: 1360},
			{Name: "Bob", HoleCards: deck.MustParseCards("QcJc"), StartingStack: 340, Blind: 10, FinalStack: 0},
			{Name: "Cat", HoleCards: deck.MustParseCards("7h2d"), StartingStack: 1000, Blind: 20, FinalStack: 980, Folded: true},
		},
		Actions: []game.HandAction{
			{Seat: 0, Player: "Ann", Phase: game.Preflop, Action: game.Raise, Amount: 60},
			{Seat: 1, Player: "Bob", Phase: game.Preflop, Action: game.Call, Amount: 60},
			{Seat: 2, Player: "Cat", Phase: game.Preflop, Action: game.Fold, Amount: 20},
			{Seat: 1, Player: "Bob", Phase: game.Flop, Action: game.Check},
			{Seat: 0, Player: "Ann", Phase: game.Flop, Action: game.Bet, Amount: 80},
			{Seat: 1, Player: "Bob", Phase: game.Flop, Action: game.Call, Amount: 80},
			{Seat: 1, Player: "Bob", Phase: game.Turn, Action: game.Check},
			{Seat: 0, Player: "Ann", Phase: game.Turn, Action: game.Check},
			{Seat: 1, Player: "Bob", Phase: game.River, Action: game.AllIn, Amount: 200},
			{Seat: 0, Player: "Ann", Phase: game.River, Action: game.Call, Amount: 200},
		},
		Pot:      700,
		Board:    deck.MustParseCards("AsKd7c2h9s"),
		Winners:  []game.Payout{{Player: ann, Amount: 700}},
		Showdown: true,
		Street:   game.Showdown,
	}
}

func TestFromSummary(t *testing.T) {
	t.Parallel()

	h := phh.FromSummary(showdownSummary())

	assert.Equal(t, phh.Variant, h.Variant)
	assert.Equal(t, "01h5n0et5q6mt3v7ms1234abcd-0007", h.HandID)
	assert.Equal(t, 3, h.SeatCount)
	assert.Equal(t, 20, h.MinBet)
	assert.Equal(t, []string{"Bob", "Cat", "Ann"}, h.Players, "button acts last")
	assert.Equal(t, []int{0, 0, 0}, h.Antes)
	assert.Equal(t, []int{10, 20, 0}, h.BlindsOrStraddles)
	assert.Equal(t, []int{340, 1000, 1000}, h.StartingStacks)
	assert.Equal(t, []int{0, 980, 1360}, h.FinishingStacks)
	assert.Equal(t, []int{0, 0, 700}, h.Winnings)
	assert.Equal(t, []string{
		"d dh p1 QcJc",
		"d dh p2 7h2d",
		"d dh p3 AhAd",
		"p3 cbr 60",
		"p1 cc",
		"p2 f",
		"d db AsKd7c",
		"p1 cc",
		"p3 cbr 80",
		"p1 cc",
		"d db 2h",
		"p1 cc",
		"p3 cc",
		"d db 9s",
		"p1 cbr 200",
		"p3 cc",
		"p1 sm QcJc",
		"p3 sm AhAd",
	}, h.Actions)
}

func TestFromSummaryShortAllInIsACall(t *testing.T) {
	t.Parallel()

	bob := &game.Player{Name: "Bob"}
	sum := match.HandSummary{
		MatchID:    "m",
		HandNumber: 1,
		BigBlind:   20,
		Dealer:     1,
		Seats: []match.HandSeat{
			{Name: "Ann", HoleCards: deck.MustParseCards("9h9d"), StartingStack: 15, Blind: 15, FinalStack: 0},
			{Name: "Bob", HoleCards: deck.MustParseCards("KsKh"), StartingStack: 500, Blind: 10, FinalStack: 515},
		},
		Actions: []game.HandAction{
			{Seat: 1, Player: "Bob", Phase: game.Preflop, Action: game.Call, Amount: 20},
		},
		Board:    deck.MustParseCards("2c3c4d8s5h"),
		Winners:  []game.Payout{{Player: bob, Amount: 35}},
		Showdown: true,
	}

	h := phh.FromSummary(sum)
	assert.Equal(t, []string{"Ann", "Bob"}, h.Players)
	assert.Equal(t, []int{15, 10}, h.BlindsOrStraddles)
	assert.Equal(t, "p2 cc", h.Actions[2])
	assert.Equal(t, []int{0, 35}, h.Winnings)

	// an all-in below the current bet completes nothing
	sum.Actions[0] = game.HandAction{Seat: 1, Player: "Bob", Phase: game.Preflop, Action: game.AllIn, Amount: 15}
	assert.Equal(t, "p2 cc", phh.FromSummary(sum).Actions[2])
}

func TestFromSummaryFoldedPreflop(t *testing.T) {
	t.Parallel()

	sum := showdownSummary()
	sum.Actions = sum.Actions[:1]
	sum.Actions = append(sum.Actions,
		game.HandAction{Seat: 1, Player: "Bob", Phase: game.Preflop, Action: game.Fold, Amount: 10},
		game.HandAction{Seat: 2, Player: "Cat", Phase: game.Preflop, Action: game.Fold, Amount: 20},
	)
	sum.Board = nil
	sum.Showdown = false

	h := phh.FromSummary(sum)
	for _, a := range h.Actions {
		assert.False(t, strings.HasPrefix(a, "d db"), "no board dealt: %s", a)
		assert.NotContains(t, a, " sm ")
	}
	assert.Equal(t, []string{"p3 cbr 60", "p1 f", "p2 f"}, h.Actions[3:])
}

func TestEncodeHandHistory(t *testing.T) {
	t.Parallel()

	hand := &phh.HandHistory{
		Variant:           "NT",
		Table:             "default",
		SeatCount:         3,
		Antes:             []int{0, 0, 0},
		BlindsOrStraddles: []int{1, 2, 0},
		MinBet:            2,
		StartingStacks:    []int{200, 200, 200},
		FinishingStacks:   []int{200, 200, 200},
		Winnings:          []int{0, 0, 0},
		Actions: []string{
			"d dh p1 AhKh",
			"d dh p2 7c2d",
			"d dh p3 QsJs",
			"p1 cbr 6",
			"p2 f",
			"p3 cc",
		},
		Players: []string{"Ann", "Bob", "Cat"},
		HandID:  "hand-00042",
	}

	var buf bytes.Buffer
	require.NoError(t, phh.Encode(&buf, hand))

	want := "" +
		"variant = \"NT\"\n" +
		"table = \"default\"\n" +
		"seat_count = 3\n" +
		"antes = [0, 0, 0]\n" +
		"blinds_or_straddles = [1, 2, 0]\n" +
		"min_bet = 2\n" +
		"starting_stacks = [200, 200, 200]\n" +
		"finishing_stacks = [200, 200, 200]\n" +
		"winnings = [0, 0, 0]\n" +
		"actions = [\"d dh p1 AhKh\", \"d dh p2 7c2d\", \"d dh p3 QsJs\", \"p1 cbr 6\", \"p2 f\", \"p3 cc\"]\n" +
		"players = [\"Ann\", \"Bob\", \"Cat\"]\n" +
		"hand = \"hand-00042\"\n"
	assert.Equal(t, want, buf.String())
}

func TestEncodeNil(t *testing.T) {
	t.Parallel()

	_, err := phh.EncodeToBytes(nil)
	assert.Error(t, err)
}

func TestWriterRoundTrip(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	sum := showdownSummary()
	require.NoError(t, phh.NewWriter(dir).WriteHandHistory(sum))

	got, err := phh.DecodeFile(filepath.Join(dir, "hand_0007.phh"))
	require.NoError(t, err)
	assert.Equal(t, phh.FromSummary(sum), got)
}

func TestDecodeRejectsEmptyHand(t *testing.T) {
	t.Parallel()

	_, err := phh.Decode(strings.NewReader("variant = \"NT\"\n"))
	assert.ErrorContains(t, err, "no players")

	_, err = phh.Decode(strings.NewReader("variant = "))
	assert.Error(t, err)
}
