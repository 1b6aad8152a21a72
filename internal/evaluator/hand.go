package evaluator

import (
	"fmt"
	"strings"

	"github.com/lox/holdem/internal/deck"
)

// Category is the class of a five-card poker hand, ordered weakest first
type Category int

const (
	HighCard Category = iota
	OnePair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush
)

// String returns the string representation of a category
func (c Category) String() string {
	switch c {
	case HighCard:
		return "High Card"
	case OnePair:
		return "One Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	case RoyalFlush:
		return "Royal Flush"
	default:
		return "Unknown"
	}
}

// HandValue is the totally ordered strength of a five-card hand
type HandValue struct {
	Category Category
	// Tiebreak holds rank values (2-14) in order of significance. A straight
	// carries only its high card, 5 for the wheel.
	Tiebreak []int
	// Cards are the five cards that make the hand, most significant first.
	Cards []deck.Card
}

// Compare orders two hand values: 1 if a is stronger, -1 if b is stronger and
// 0 for a true tie. Only the overlapping prefix of the tiebreak lists is
// compared.
func Compare(a, b HandValue) int {
	if a.Category != b.Category {
		if a.Category > b.Category {
			return 1
		}
		return -1
	}
	for i := 0; i < len(a.Tiebreak) && i < len(b.Tiebreak); i++ {
		if a.Tiebreak[i] > b.Tiebreak[i] {
			return 1
		}
		if a.Tiebreak[i] < b.Tiebreak[i] {
			return -1
		}
	}
	return 0
}

// Beats returns true if h is strictly stronger than other
func (h HandValue) Beats(other HandValue) bool {
	return Compare(h, other) > 0
}

// String describes the hand, e.g. "Four of a Kind, Aces (Nine kicker)"
func (h HandValue) String() string {
	r := func(i int) deck.Rank {
		if i < len(h.Tiebreak) {
			return deck.Rank(h.Tiebreak[i])
		}
		return 0
	}

	switch h.Category {
	case RoyalFlush:
		return "Royal Flush"
	case StraightFlush:
		return fmt.Sprintf("Straight Flush, %s high", r(0).Name())
	case FourOfAKind:
		return fmt.Sprintf("Four of a Kind, %s (%s kicker)", r(0).Plural(), r(1).Name())
	case FullHouse:
		return fmt.Sprintf("Full House, %s over %s", r(0).Plural(), r(1).Plural())
	case Flush:
		return fmt.Sprintf("Flush, %s high", r(0).Name())
	case Straight:
		return fmt.Sprintf("Straight, %s high", r(0).Name())
	case ThreeOfAKind:
		return fmt.Sprintf("Three of a Kind, %s", r(0).Plural())
	case TwoPair:
		return fmt.Sprintf("Two Pair, %s and %s", r(0).Plural(), r(1).Plural())
	case OnePair:
		return fmt.Sprintf("Pair of %s", r(0).Plural())
	case HighCard:
		return fmt.Sprintf("High Card, %s", r(0).Name())
	default:
		return "Unknown"
	}
}

// CardsString renders the five cards of the hand
func (h HandValue) CardsString() string {
	parts := make([]string, len(h.Cards))
	for i, c := range h.Cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}
