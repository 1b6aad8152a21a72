package game

import "github.com/lox/holdem/internal/deck"

// logTail is how many recent events a snapshot carries
const logTail = 12

// PlayerView is a read-only copy of a player's state
type PlayerView struct {
	Name         string
	Controller   Controller
	Chips        int
	HoleCards    []deck.Card // nil when hidden from the viewer
	Folded       bool
	AllIn        bool
	BetThisRound int
	TotalBet     int
	LastAction   Action
}

// Snapshot is a copy of the hand state that decision providers and views can
// hold without affecting the engine.
type Snapshot struct {
	HandNumber     int
	Phase          Phase
	HandComplete   bool
	Pot            int
	Pots           []Pot
	CurrentBet     int
	MinRaise       int
	BigBlind       int
	CommunityCards []deck.Card
	Players        []PlayerView
	Dealer         int
	SmallBlind     int
	BigBlindSeat   int
	Acting         int // -1 when nobody owes a decision
	LastAggressor  int
	Log            []string // most recent events of this hand
	LogStart       int      // index of Log[0] among the hand's events
}

// ActingPlayer returns the view of the acting player
func (s Snapshot) ActingPlayer() (PlayerView, bool) {
	if s.Acting < 0 || s.Acting >= len(s.Players) {
		return PlayerView{}, false
	}
	return s.Players[s.Acting], true
}

// ToCall returns the chips the acting player needs to call
func (s Snapshot) ToCall() int {
	p, ok := s.ActingPlayer()
	if !ok {
		return 0
	}
	return max(0, s.CurrentBet-p.BetThisRound)
}

// Snapshot returns the full state with every player's hole cards
func (e *Engine) Snapshot() Snapshot {
	return e.snapshot(func(*Player) bool { return true })
}

// SnapshotFor returns the state as viewer sees it: other players' hole cards
// stay hidden unless they were shown down.
func (e *Engine) SnapshotFor(viewer *Player) Snapshot {
	shown := e.phase == Showdown && !e.inProgress
	return e.snapshot(func(p *Player) bool {
		return p == viewer || (shown && !p.Folded)
	})
}

func (e *Engine) snapshot(reveal func(*Player) bool) Snapshot {
	s := Snapshot{
		HandNumber:     e.handNumber,
		Phase:          e.phase,
		HandComplete:   e.handNumber > 0 && !e.inProgress,
		Pot:            e.Pot(),
		Pots:           e.Pots(),
		CurrentBet:     e.round.currentBet,
		MinRaise:       e.round.minRaise,
		BigBlind:       e.bigBlind,
		CommunityCards: e.CommunityCards(),
		Dealer:         e.dealer,
		SmallBlind:     e.sbIndex,
		BigBlindSeat:   e.bbIndex,
		Acting:         -1,
		LastAggressor:  e.round.lastAggressor,
	}
	if e.ActingPlayer() != nil {
		s.Acting = e.actor
	}

	s.Players = make([]PlayerView, len(e.players))
	for i, p := range e.players {
		view := PlayerView{
			Name:         p.Name,
			Controller:   p.Controller,
			Chips:        p.Chips,
			Folded:       p.Folded,
			AllIn:        p.AllIn,
			BetThisRound: p.BetThisRound,
			TotalBet:     p.TotalBet,
			LastAction:   p.LastAction,
		}
		if reveal(p) {
			view.HoleCards = append([]deck.Card(nil), p.HoleCards...)
		}
		s.Players[i] = view
	}

	hand := e.events[e.handStart:]
	s.LogStart = max(0, len(hand)-logTail)
	s.Log = append([]string(nil), hand[s.LogStart:]...)
	return s
}
