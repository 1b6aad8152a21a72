// Package console renders a match to a terminal and lets a human play a seat
// by typing commands.
package console

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/lox/holdem/internal/game"
	"github.com/lox/holdem/internal/match"
)

// View prints hand progress as a match.Observer. Only the hero's hole cards
// are drawn until a showdown reveals the rest.
type View struct {
	mu      sync.Mutex
	out     io.Writer
	styles  *Styles
	hero    string
	hand    int
	printed int // events of the current hand already written
	phase   game.Phase
}

var _ match.Observer = (*View)(nil)

// NewView creates a view writing to out. hero may be empty when nobody at
// the table is human.
func NewView(out io.Writer, hero string) *View {
	return &View{out: out, styles: NewStyles(), hero: hero}
}

// HandStarted draws the seating and blinds of a new hand
func (v *View) HandStarted(snap game.Snapshot) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.hand = snap.HandNumber
	v.printed = 0
	v.phase = snap.Phase

	fmt.Fprintln(v.out)
	fmt.Fprintln(v.out, v.styles.Header.Render(fmt.Sprintf("Hand #%d", snap.HandNumber)))
	v.writeSeats(snap)
	fmt.Fprintln(v.out, v.styles.Street.Render("*** HOLE CARDS ***"))
	v.writeLog(snap)
}

// Update prints the events since the last update and, on a new street, the
// board and pot.
func (v *View) Update(snap game.Snapshot) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if snap.HandNumber != v.hand {
		return
	}
	v.writeLog(snap)
	if snap.Phase != v.phase {
		v.phase = snap.Phase
		if snap.Phase != game.Showdown {
			fmt.Fprintf(v.out, "Board: %s  Pot: %s\n",
				v.styles.Cards(snap.CommunityCards),
				v.styles.Pot.Render(fmt.Sprintf("$%d", snap.Pot)))
		}
	}
}

// HandFinished prints the winners
func (v *View) HandFinished(sum match.HandSummary) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if len(sum.Board) > 0 {
		fmt.Fprintf(v.out, "Final board: %s\n", v.styles.Cards(sum.Board))
	}
	for _, w := range sum.Winners {
		line := fmt.Sprintf("%s wins $%d", w.Player.Name, w.Amount)
		if sum.Showdown {
			line += " with " + w.Hand.String()
		}
		fmt.Fprintln(v.out, v.styles.Winner.Render(line))
	}
	fmt.Fprintln(v.out, v.styles.Separator.Render(strings.Repeat("─", 40)))
}

func (v *View) writeSeats(snap game.Snapshot) {
	for i, p := range snap.Players {
		var tags []string
		if i == snap.Dealer {
			tags = append(tags, "BTN")
		}
		if i == snap.SmallBlind {
			tags = append(tags, "SB")
		}
		if i == snap.BigBlindSeat {
			tags = append(tags, "BB")
		}

		name := p.Name
		cards := ""
		if p.Name == v.hero {
			name = v.styles.Hero.Render(p.Name + " (You)")
			cards = "  " + v.styles.Cards(p.HoleCards)
		}
		fmt.Fprintf(v.out, "Seat %d: %s $%d %s%s\n",
			i+1, name, p.Chips+p.TotalBet,
			v.styles.PlayerInfo.Render(strings.Join(tags, " ")), cards)
	}
}

// writeLog writes the events this view has not printed yet
func (v *View) writeLog(snap game.Snapshot) {
	for i, line := range snap.Log {
		if snap.LogStart+i < v.printed {
			continue
		}
		switch {
		case strings.HasPrefix(line, "***"):
			fmt.Fprintln(v.out, v.styles.Street.Render(line))
		case strings.HasPrefix(line, "Hand #"):
		case strings.Contains(line, " wins "):
			// drawn by HandFinished
		default:
			fmt.Fprintln(v.out, v.styles.Action.Render(line))
		}
	}
	v.printed = max(v.printed, snap.LogStart+len(snap.Log))
}
