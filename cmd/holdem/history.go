package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/lox/holdem/internal/console"
	"github.com/lox/holdem/internal/deck"
	"github.com/lox/holdem/internal/phh"
)

// HistoryCmd replays PHH hand histories as text
type HistoryCmd struct {
	Files []string `arg:"" name:"file" help:"PHH files written by play --format phh"`
}

func (c *HistoryCmd) Run() error {
	styles := console.NewStyles()
	for _, file := range c.Files {
		hand, err := phh.DecodeFile(file)
		if err != nil {
			return fmt.Errorf("%s: %w", file, err)
		}
		if err := renderPHH(os.Stdout, hand, styles); err != nil {
			return fmt.Errorf("%s: %w", file, err)
		}
	}
	return nil
}

func renderPHH(w io.Writer, hand *phh.HandHistory, styles *console.Styles) error {
	if hand.Variant != phh.Variant {
		return fmt.Errorf("unsupported variant %q", hand.Variant)
	}
	fmt.Fprintln(w, styles.Header.Render("Hand "+hand.HandID))

	for i, name := range hand.Players {
		line := fmt.Sprintf("p%d: %s $%d", i+1, name, at(hand.StartingStacks, i))
		if b := at(hand.BlindsOrStraddles, i); b > 0 {
			line += fmt.Sprintf(" (blind %d)", b)
		}
		fmt.Fprintln(w, styles.PlayerInfo.Render(line))
	}

	for _, action := range hand.Actions {
		line, err := describeAction(action, hand.Players, styles)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, line)
	}

	for i, won := range hand.Winnings {
		if won > 0 && i < len(hand.Players) {
			fmt.Fprintln(w, styles.Winner.Render(fmt.Sprintf("%s wins $%d", hand.Players[i], won)))
		}
	}
	fmt.Fprintln(w, styles.Separator.Render(strings.Repeat("─", 40)))
	return nil
}

// describeAction turns one PHH action line into a sentence
func describeAction(action string, players []string, styles *console.Styles) (string, error) {
	fields := strings.Fields(action)
	if len(fields) < 2 {
		return "", fmt.Errorf("malformed action %q", action)
	}

	if fields[0] == "d" {
		switch {
		case fields[1] == "dh" && len(fields) == 4:
			name, err := playerName(fields[2], players)
			if err != nil {
				return "", err
			}
			hole, err := renderCards(fields[3], styles)
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("Dealt to %s %s", name, hole), nil
		case fields[1] == "db" && len(fields) == 3:
			board, err := renderCards(fields[2], styles)
			if err != nil {
				return "", err
			}
			return styles.Street.Render("*** BOARD ***") + " " + board, nil
		}
		return "", fmt.Errorf("malformed dealer action %q", action)
	}

	name, err := playerName(fields[0], players)
	if err != nil {
		return "", err
	}
	switch {
	case fields[1] == "f":
		return styles.Action.Render(name + " folds"), nil
	case fields[1] == "cc":
		return styles.Action.Render(name + " checks or calls"), nil
	case fields[1] == "cbr" && len(fields) == 3:
		return styles.Action.Render(fmt.Sprintf("%s bets or raises to %s", name, fields[2])), nil
	case fields[1] == "sm" && len(fields) == 3:
		shown, err := renderCards(fields[2], styles)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%s shows %s", name, shown), nil
	}
	return "", fmt.Errorf("unknown action %q", action)
}

func playerName(token string, players []string) (string, error) {
	n, err := strconv.Atoi(strings.TrimPrefix(token, "p"))
	if err != nil || !strings.HasPrefix(token, "p") || n < 1 || n > len(players) {
		return "", fmt.Errorf("unknown player %q", token)
	}
	return players[n-1], nil
}

func renderCards(s string, styles *console.Styles) (string, error) {
	cards, err := deck.ParseCards(s)
	if err != nil {
		return "", err
	}
	return "[" + styles.Cards(cards) + "]", nil
}

func at(values []int, i int) int {
	if i < len(values) {
		return values[i]
	}
	return 0
}
