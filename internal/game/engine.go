package game

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/lox/holdem/internal/deck"
)

// Engine runs Texas Hold'em hands for one match. It owns the deck, pot and
// betting state; players are shared with the driver, which reads them and
// submits actions for whoever is acting.
//
// An Engine is not safe for concurrent use. Every method completes
// synchronously.
type Engine struct {
	bigBlind   int
	smallBlind int
	newDeck    func() *deck.Deck
	logger     *log.Logger
	sidePots   bool

	button     int // roster seat holding the dealer button
	handNumber int

	players    []*Player // funded players in this hand, roster order
	deck       *deck.Deck
	phase      Phase
	community  []deck.Card
	dealer     int
	sbIndex    int
	bbIndex    int
	round      bettingRound
	actor      int  // index of the acting player, -1 when nobody owes a decision
	actionDone bool // the actor has acted and Advance is due

	inProgress bool
	payouts    []Payout
	actions    []HandAction
	events     []string
	handStart  int // first event of the current hand
}

// NewEngine creates an engine. With no options it uses a 10/20 blind
// structure, a time-seeded shuffle, side pots and discards its logs.
func NewEngine(opts ...Option) *Engine {
	cfg := defaultEngineConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.bigBlind < 2 {
		panic("big blind must be at least 2")
	}

	return &Engine{
		bigBlind:   cfg.bigBlind,
		smallBlind: cfg.bigBlind / 2,
		newDeck:    cfg.deckFactory(),
		logger:     cfg.logger,
		sidePots:   cfg.sidePots,
		button:     cfg.firstDeal - 1,
		actor:      -1,
		dealer:     -1,
	}
}

// BigBlind returns the big blind amount
func (e *Engine) BigBlind() int { return e.bigBlind }

// SmallBlind returns the small blind amount
func (e *Engine) SmallBlind() int { return e.smallBlind }

// HandNumber returns the number of hands started
func (e *Engine) HandNumber() int { return e.handNumber }

// Phase returns the current street
func (e *Engine) Phase() Phase { return e.phase }

// InProgress returns true while a hand is being played
func (e *Engine) InProgress() bool { return e.inProgress }

// Players returns the players dealt into the current or last hand
func (e *Engine) Players() []*Player { return e.players }

// Pot returns every chip committed to the current hand
func (e *Engine) Pot() int { return potTotal(e.players) }

// Pots returns the main pot and side pots as they stand
func (e *Engine) Pots() []Pot { return buildPots(e.players, e.sidePots) }

// CommunityCards returns a copy of the board
func (e *Engine) CommunityCards() []deck.Card {
	return append([]deck.Card(nil), e.community...)
}

// ActingPlayer returns the player who owes a decision, or nil
func (e *Engine) ActingPlayer() *Player {
	if !e.inProgress || e.actor < 0 || e.actionDone {
		return nil
	}
	return e.players[e.actor]
}

// Payouts returns the chips awarded when the last hand finished
func (e *Engine) Payouts() []Payout {
	return append([]Payout(nil), e.payouts...)
}

// StartHand deals a new hand to the funded players in roster. It returns false,
// changing nothing, when fewer than two players have chips; the match is over.
func (e *Engine) StartHand(roster []*Player) bool {
	if e.inProgress {
		e.logger.Warn("Starting a hand while another is in progress", "hand", e.handNumber)
		return false
	}

	funded := 0
	for _, p := range roster {
		if p.Chips > 0 {
			funded++
		}
	}
	if funded < 2 {
		return false
	}

	// Button moves to the next funded seat
	seat := e.button
	for range roster {
		seat = (seat + 1 + len(roster)) % len(roster)
		if roster[seat].Chips > 0 {
			break
		}
	}
	e.button = seat

	e.players = e.players[:0]
	for i, p := range roster {
		if p.Chips <= 0 {
			continue
		}
		if i == e.button {
			e.dealer = len(e.players)
		}
		p.resetForHand()
		e.players = append(e.players, p)
	}

	e.handNumber++
	e.inProgress = true
	e.deck = e.newDeck()
	e.phase = Preflop
	e.community = e.community[:0]
	e.payouts = nil
	e.actions = e.actions[:0]
	e.actionDone = false
	e.round = newBettingRound(len(e.players), e.bigBlind)
	e.handStart = len(e.events)

	e.record("Hand #%d: %s has the button", e.handNumber, e.players[e.dealer].Name)
	e.logger.Debug("Starting hand", "hand", e.handNumber, "dealer", e.players[e.dealer].Name, "players", len(e.players))

	e.postBlinds()
	e.dealHoleCards()

	// Heads-up the dealer acts first preflop, otherwise the seat after the big blind
	first := e.next(e.bbIndex)
	if len(e.players) == 2 {
		first = e.dealer
	}
	e.actor = e.nextToAct(first)
	e.settleActor()
	return true
}

func (e *Engine) postBlinds() {
	if len(e.players) == 2 {
		e.sbIndex = e.dealer
	} else {
		e.sbIndex = e.next(e.dealer)
	}
	e.bbIndex = e.next(e.sbIndex)

	sb, bb := e.players[e.sbIndex], e.players[e.bbIndex]
	posted := sb.commit(e.smallBlind)
	e.record("%s posts small blind %d", sb.Name, posted)
	posted = bb.commit(e.bigBlind)
	e.record("%s posts big blind %d", bb.Name, posted)

	e.round.currentBet = e.bigBlind
}

// dealHoleCards deals one card at a time around the table, twice, starting
// left of the dealer
func (e *Engine) dealHoleCards() {
	for range 2 {
		for i := range e.players {
			p := e.players[(e.dealer+1+i)%len(e.players)]
			card, _ := e.deck.Deal()
			p.HoleCards = append(p.HoleCards, card)
		}
	}
}

// next returns the index after i, wrapping
func (e *Engine) next(i int) int {
	return (i + 1) % len(e.players)
}

// nextToAct returns the first player at or after from who is neither folded
// nor all-in, or -1
func (e *Engine) nextToAct(from int) int {
	n := len(e.players)
	for i := range n {
		idx := (from + i) % n
		if e.players[idx].CanAct() {
			return idx
		}
	}
	return -1
}

// settleActor clears the actor when the round needs no further decisions
func (e *Engine) settleActor() {
	if e.actor >= 0 && e.roundComplete() {
		e.actor = -1
	}
}

// remaining counts players who have not folded
func (e *Engine) remaining() int {
	n := 0
	for _, p := range e.players {
		if !p.Folded {
			n++
		}
	}
	return n
}

// roundComplete reports whether the current betting round is finished: every
// player who can act has matched the current bet and has acted since the last
// increase. A lone player who can act only needs to match.
func (e *Engine) roundComplete() bool {
	able := 0
	for _, p := range e.players {
		if !p.CanAct() {
			continue
		}
		able++
		if p.BetThisRound != e.round.currentBet {
			return false
		}
	}
	if able <= 1 {
		return true
	}
	for i, p := range e.players {
		if p.CanAct() && !e.round.acted[i] {
			return false
		}
	}
	return true
}

// record appends a line to the event log
func (e *Engine) record(format string, args ...any) {
	e.events = append(e.events, fmt.Sprintf(format, args...))
}

// Events returns a copy of the whole event log
func (e *Engine) Events() []string {
	return append([]string(nil), e.events...)
}

// HandActions returns the decisions applied so far in the current or most
// recent hand. Blinds are not included.
func (e *Engine) HandActions() []HandAction {
	return append([]HandAction(nil), e.actions...)
}

// HandLog returns the events of the current or most recent hand
func (e *Engine) HandLog() []string {
	return append([]string(nil), e.events[e.handStart:]...)
}
