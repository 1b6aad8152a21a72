package phh

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/lox/holdem/internal/deck"
	"github.com/lox/holdem/internal/fileutil"
	"github.com/lox/holdem/internal/game"
	"github.com/lox/holdem/internal/match"
)

// Encode writes the hand history to the provided writer in PHH TOML format.
func Encode(w io.Writer, hand *HandHistory) error {
	if hand == nil {
		return fmt.Errorf("phh: hand history is nil")
	}
	enc := toml.NewEncoder(w)
	enc.Indent = "\t"
	return enc.Encode(hand)
}

// EncodeToBytes encodes and returns the result as bytes.
func EncodeToBytes(hand *HandHistory) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, hand); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decode reads a single PHH hand
func Decode(r io.Reader) (*HandHistory, error) {
	var hand HandHistory
	if _, err := toml.NewDecoder(r).Decode(&hand); err != nil {
		return nil, fmt.Errorf("phh: %w", err)
	}
	if len(hand.Players) == 0 {
		return nil, fmt.Errorf("phh: hand %q has no players", hand.HandID)
	}
	return &hand, nil
}

// DecodeFile reads a hand written by Writer
func DecodeFile(path string) (*HandHistory, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Decode(f)
}

// FromSummary converts a finished hand
func FromSummary(sum match.HandSummary) *HandHistory {
	n := len(sum.Seats)
	order := make([]int, n) // PHH position -> seat
	pos := make([]int, n)   // seat -> PHH position
	for k := range n {
		seat := (sum.Dealer + 1 + k) % n
		order[k] = seat
		pos[seat] = k
	}

	won := make(map[string]int, len(sum.Winners))
	for _, w := range sum.Winners {
		won[w.Player.Name] += w.Amount
	}

	h := &HandHistory{
		Variant:   Variant,
		Table:     sum.MatchID,
		SeatCount: n,
		MinBet:    sum.BigBlind,
		HandID:    fmt.Sprintf("%s-%04d", sum.MatchID, sum.HandNumber),
		Antes:     make([]int, n),
	}
	currentBet := sum.BigBlind
	for _, seat := range order {
		s := sum.Seats[seat]
		h.Players = append(h.Players, s.Name)
		h.BlindsOrStraddles = append(h.BlindsOrStraddles, s.Blind)
		h.StartingStacks = append(h.StartingStacks, s.StartingStack)
		h.FinishingStacks = append(h.FinishingStacks, s.FinalStack)
		h.Winnings = append(h.Winnings, won[s.Name])
		h.Actions = append(h.Actions, fmt.Sprintf("d dh %s %s", player(pos[seat]), cards(s.HoleCards)))
	}

	// Board cards dealt at the start of each street
	streets := []struct {
		phase    game.Phase
		from, to int
	}{
		{game.Preflop, 0, 0},
		{game.Flop, 0, 3},
		{game.Turn, 3, 4},
		{game.River, 4, 5},
	}
	for _, st := range streets {
		if st.to > len(sum.Board) {
			break
		}
		if st.to > st.from {
			h.Actions = append(h.Actions, "d db "+cards(sum.Board[st.from:st.to]))
			currentBet = 0
		}
		for _, a := range sum.Actions {
			if a.Phase != st.phase {
				continue
			}
			h.Actions = append(h.Actions, formatAction(pos[a.Seat], a, &currentBet))
		}
	}

	if sum.Showdown {
		for _, seat := range order {
			if s := sum.Seats[seat]; !s.Folded {
				h.Actions = append(h.Actions, fmt.Sprintf("%s sm %s", player(pos[seat]), cards(s.HoleCards)))
			}
		}
	}
	return h
}

// formatAction converts a decision to PHH: fold, check-or-call, or
// complete-bet-or-raise-to. An all-in that does not exceed the current bet
// is a call.
func formatAction(position int, a game.HandAction, currentBet *int) string {
	p := player(position)
	switch a.Action {
	case game.Fold:
		return p + " f"
	case game.Bet, game.Raise, game.AllIn:
		if a.Amount > *currentBet {
			*currentBet = a.Amount
			return fmt.Sprintf("%s cbr %d", p, a.Amount)
		}
	}
	return p + " cc"
}

func player(position int) string {
	return fmt.Sprintf("p%d", position+1)
}

func cards(cs []deck.Card) string {
	var b strings.Builder
	for _, c := range cs {
		b.WriteString(c.Code())
	}
	return b.String()
}

// Writer stores each hand as hand_<n>.phh in a directory
type Writer struct {
	directory string
}

var _ match.HistoryWriter = (*Writer)(nil)

// NewWriter creates a PHH hand history writer
func NewWriter(directory string) *Writer {
	return &Writer{directory: directory}
}

// WriteHandHistory encodes the hand and writes it atomically
func (w *Writer) WriteHandHistory(sum match.HandSummary) error {
	data, err := EncodeToBytes(FromSummary(sum))
	if err != nil {
		return fmt.Errorf("phh: encoding hand %d: %w", sum.HandNumber, err)
	}
	filename := filepath.Join(w.directory, fmt.Sprintf("hand_%04d.phh", sum.HandNumber))
	return fileutil.WriteFileAtomic(filename, data, 0o644)
}
