package console

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/holdem/internal/deck"
)

// Styles contains styling for table output
type Styles struct {
	Header     lipgloss.Style
	SubHeader  lipgloss.Style
	Action     lipgloss.Style
	Winner     lipgloss.Style
	CardRed    lipgloss.Style
	CardBlack  lipgloss.Style
	Pot        lipgloss.Style
	Separator  lipgloss.Style
	Hero       lipgloss.Style // the human's own seat
	PlayerInfo lipgloss.Style
	Street     lipgloss.Style // "*** FLOP ***"
	Prompt     lipgloss.Style
	Error      lipgloss.Style
}

// NewStyles creates the default colour scheme
func NewStyles() *Styles {
	return &Styles{
		Header: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 2).
			Bold(true),
		SubHeader: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#04B575")).
			Bold(true),
		Action: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#74B9FF")),
		Winner: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true),
		CardRed: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true),
		CardBlack: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#000000")).
			Bold(true),
		Pot: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true),
		Separator: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262")),
		Hero: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#04B575")).
			Bold(true),
		PlayerInfo: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262")),
		Street: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true),
		Prompt: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#04B575")).
			Bold(true),
		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true),
	}
}

// Card renders a card in its suit colour
func (s *Styles) Card(c deck.Card) string {
	if c.IsRed() {
		return s.CardRed.Render(c.String())
	}
	return s.CardBlack.Render(c.String())
}

// Cards renders cards separated by spaces, or "--" when there are none
func (s *Styles) Cards(cards []deck.Card) string {
	if len(cards) == 0 {
		return s.PlayerInfo.Render("--")
	}
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = s.Card(c)
	}
	return strings.Join(parts, " ")
}
