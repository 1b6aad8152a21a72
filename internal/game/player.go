package game

import "github.com/lox/holdem/internal/deck"

// Controller tags who supplies decisions for a player
type Controller int

const (
	Bot Controller = iota
	Human
)

func (c Controller) String() string {
	if c == Human {
		return "human"
	}
	return "bot"
}

// Player is a seat in the match. The engine mutates chips and per-hand state;
// drivers read it and act on the player's behalf.
type Player struct {
	Name       string
	Controller Controller
	Chips      int

	HoleCards    []deck.Card
	Folded       bool
	AllIn        bool
	BetThisRound int // committed in the current betting round
	TotalBet     int // committed over the whole hand
	LastAction   Action
	HasActed     bool // acted at least once this hand
}

// NewPlayer creates a player with a starting stack
func NewPlayer(name string, controller Controller, chips int) *Player {
	return &Player{Name: name, Controller: controller, Chips: chips}
}

// CanAct returns true if the player can still make betting decisions this hand
func (p *Player) CanAct() bool {
	return !p.Folded && !p.AllIn
}

// IsInHand returns true if the player has not folded
func (p *Player) IsInHand() bool {
	return !p.Folded
}

func (p *Player) resetForHand() {
	p.HoleCards = p.HoleCards[:0]
	p.Folded = false
	p.AllIn = false
	p.BetThisRound = 0
	p.TotalBet = 0
	p.LastAction = NoAction
	p.HasActed = false
}

// commit moves chips from the stack into the pot, capped at the stack
func (p *Player) commit(amount int) int {
	amount = min(amount, p.Chips)
	p.Chips -= amount
	p.BetThisRound += amount
	p.TotalBet += amount
	if p.Chips == 0 {
		p.AllIn = true
	}
	return amount
}
