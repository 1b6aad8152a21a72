package deck

import (
	"fmt"
	"strings"
)

// ParseCard parses a single card such as "As", "td" or "10h"
func ParseCard(s string) (Card, error) {
	s = strings.TrimSpace(s)
	if len(s) < 2 {
		return Card{}, fmt.Errorf("invalid card %q", s)
	}
	rankStr, suitChar := s[:len(s)-1], s[len(s)-1]
	if rankStr == "10" {
		rankStr = "T"
	}
	if len(rankStr) != 1 {
		return Card{}, fmt.Errorf("invalid rank in %q", s)
	}
	rank, err := parseRank(rankStr[0])
	if err != nil {
		return Card{}, err
	}
	suit, err := parseSuit(suitChar)
	if err != nil {
		return Card{}, err
	}
	return NewCard(suit, rank), nil
}

// ParseCards parses a card list. Cards may be separated by spaces or commas, or
// packed together ("AsKsQsJsTs").
func ParseCards(s string) ([]Card, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ' ' || r == ',' })
	cards := []Card{}
	for _, field := range fields {
		field = strings.ReplaceAll(field, "10", "T")
		if len(field)%2 != 0 {
			return nil, fmt.Errorf("invalid card string %q (length must be even)", field)
		}
		for i := 0; i < len(field); i += 2 {
			card, err := ParseCard(field[i : i+2])
			if err != nil {
				return nil, fmt.Errorf("position %d: %w", i, err)
			}
			cards = append(cards, card)
		}
	}
	return cards, nil
}

// MustParseCards parses cards and panics on error (for tests)
func MustParseCards(s string) []Card {
	cards, err := ParseCards(s)
	if err != nil {
		panic(fmt.Sprintf("failed to parse cards '%s': %v", s, err))
	}
	return cards
}

func parseRank(c byte) (Rank, error) {
	switch c {
	case 'A', 'a':
		return Ace, nil
	case 'K', 'k':
		return King, nil
	case 'Q', 'q':
		return Queen, nil
	case 'J', 'j':
		return Jack, nil
	case 'T', 't':
		return Ten, nil
	}
	if c >= '2' && c <= '9' {
		return Rank(c - '0'), nil
	}
	return 0, fmt.Errorf("unknown rank '%c'", c)
}

func parseSuit(c byte) (Suit, error) {
	switch c {
	case 's', 'S':
		return Spades, nil
	case 'h', 'H':
		return Hearts, nil
	case 'd', 'D':
		return Diamonds, nil
	case 'c', 'C':
		return Clubs, nil
	default:
		return 0, fmt.Errorf("unknown suit '%c'", c)
	}
}
