package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/lox/holdem/internal/game"
	"github.com/lox/holdem/internal/match"
)

var errUsage = errors.New("usage")

// Human asks a person for decisions on a line-oriented terminal. Input is
// read on a background goroutine so a cancelled context never waits on a
// blocked read.
type Human struct {
	out    io.Writer
	styles *Styles
	logger *log.Logger
	lines  <-chan string
}

var _ game.DecisionProvider = (*Human)(nil)

// NewHuman creates a provider reading commands from in and writing prompts
// to out. End of input counts as quitting.
func NewHuman(in io.Reader, out io.Writer, logger *log.Logger) *Human {
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
	}()
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Human{out: out, styles: NewStyles(), logger: logger.WithPrefix("human"), lines: lines}
}

// Decide prompts until the player types a legal action
func (h *Human) Decide(ctx context.Context, snap game.Snapshot, valid []game.ValidAction) (game.Decision, error) {
	h.showSituation(snap, valid)

	for {
		fmt.Fprint(h.out, h.styles.Prompt.Render("Action> "))

		var (
			line string
			ok   bool
		)
		select {
		case <-ctx.Done():
			return game.Decision{}, ctx.Err()
		case line, ok = <-h.lines:
		}
		if !ok {
			fmt.Fprintln(h.out)
			return game.Decision{}, match.ErrQuit
		}

		d, err := parseCommand(line, valid)
		switch {
		case errors.Is(err, match.ErrQuit):
			return game.Decision{}, err
		case errors.Is(err, errUsage):
			h.showHelp(valid)
			continue
		case err != nil:
			h.logger.Debug("Rejected command", "input", line, "error", err)
			fmt.Fprintln(h.out, h.styles.Error.Render(err.Error()))
			continue
		}
		d.Reasoning = "typed " + strings.TrimSpace(line)
		return d, nil
	}
}

func (h *Human) showSituation(snap game.Snapshot, valid []game.ValidAction) {
	me, _ := snap.ActingPlayer()
	fmt.Fprintf(h.out, "\n%s  Hole: %s  Board: %s  Pot: %s  Stack: $%d",
		h.styles.SubHeader.Render(snap.Phase.String()),
		h.styles.Cards(me.HoleCards),
		h.styles.Cards(snap.CommunityCards),
		h.styles.Pot.Render(fmt.Sprintf("$%d", snap.Pot)),
		me.Chips)
	if toCall := snap.ToCall(); toCall > 0 {
		fmt.Fprintf(h.out, "  To call: $%d", min(toCall, me.Chips))
	}
	fmt.Fprintln(h.out)
	fmt.Fprintln(h.out, h.styles.PlayerInfo.Render(describeActions(valid)))
}

func (h *Human) showHelp(valid []game.ValidAction) {
	fmt.Fprintln(h.out, "Commands: fold (f), check (k), call (c), bet <to> (b), raise <to> (r), allin (a), quit (q)")
	fmt.Fprintln(h.out, describeActions(valid))
}

func describeActions(valid []game.ValidAction) string {
	parts := make([]string, 0, len(valid))
	for _, va := range valid {
		switch va.Action {
		case game.Call:
			parts = append(parts, fmt.Sprintf("call %d", va.MinAmount))
		case game.Bet, game.Raise:
			parts = append(parts, fmt.Sprintf("%s %d-%d", va.Action, va.MinAmount, va.MaxAmount))
		case game.AllIn:
			parts = append(parts, fmt.Sprintf("allin %d", va.MaxAmount))
		default:
			parts = append(parts, va.Action.String())
		}
	}
	return "Valid: " + strings.Join(parts, ", ")
}

// parseCommand turns a typed line into a decision that is legal for valid.
// Bet and raise amounts are the total to make it for the round.
func parseCommand(line string, valid []game.ValidAction) (game.Decision, error) {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return game.Decision{}, errUsage
	}

	switch fields[0] {
	case "quit", "q", "exit":
		return game.Decision{}, match.ErrQuit
	case "help", "h", "?":
		return game.Decision{}, errUsage
	}

	action, err := game.ParseAction(fields[0])
	if err != nil {
		return game.Decision{}, fmt.Errorf("unknown command %q, type help for commands", fields[0])
	}

	// "bet" and "raise" are interchangeable, as are "call" and "check" when
	// nothing is owed.
	if _, ok := game.FindAction(valid, action); !ok {
		switch action {
		case game.Bet:
			action = game.Raise
		case game.Raise:
			action = game.Bet
		case game.Call:
			action = game.Check
		}
	}
	va, ok := game.FindAction(valid, action)
	if !ok {
		return game.Decision{}, fmt.Errorf("cannot %s now", fields[0])
	}

	d := game.Decision{Action: action}
	switch action {
	case game.Call:
		d.Amount = va.MinAmount
	case game.AllIn:
		d.Amount = va.MaxAmount
	case game.Bet, game.Raise:
		if len(fields) < 2 {
			return game.Decision{}, fmt.Errorf("%s needs an amount between %d and %d", action, va.MinAmount, va.MaxAmount)
		}
		amount, err := strconv.Atoi(strings.TrimPrefix(fields[1], "$"))
		if err != nil {
			return game.Decision{}, fmt.Errorf("invalid amount %q", fields[1])
		}
		if amount < va.MinAmount || amount > va.MaxAmount {
			return game.Decision{}, fmt.Errorf("%s must be between %d and %d", action, va.MinAmount, va.MaxAmount)
		}
		d.Amount = amount
	}
	return d, nil
}
