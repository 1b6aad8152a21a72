package game

import "fmt"

// Phase is the street a hand is on
type Phase int

const (
	Preflop Phase = iota
	Flop
	Turn
	River
	Showdown
)

func (p Phase) String() string {
	if p < Preflop || p > Showdown {
		return "unknown"
	}
	return [...]string{"preflop", "flop", "turn", "river", "showdown"}[p]
}

// Action is a betting decision
type Action int

const (
	NoAction Action = iota
	Fold
	Check
	Call
	Bet
	Raise
	AllIn
)

func (a Action) String() string {
	if a < NoAction || a > AllIn {
		return "unknown"
	}
	return [...]string{"none", "fold", "check", "call", "bet", "raise", "allin"}[a]
}

// ParseAction maps an action name to an Action
func ParseAction(s string) (Action, error) {
	switch s {
	case "fold", "f":
		return Fold, nil
	case "check", "k":
		return Check, nil
	case "call", "c":
		return Call, nil
	case "bet", "b":
		return Bet, nil
	case "raise", "r":
		return Raise, nil
	case "allin", "all_in", "all-in", "a":
		return AllIn, nil
	}
	return NoAction, fmt.Errorf("%w: unknown action %q", ErrInvalidAction, s)
}

// bettingRound holds the state of the current street's betting
type bettingRound struct {
	currentBet    int
	minRaise      int
	lastAggressor int // player index, -1 when nobody has raised
	fullRaises    int
	acted         []bool
	raiseSeen     []int // fullRaises as of each player's last action, -1 before acting
}

func newBettingRound(numPlayers, bigBlind int) bettingRound {
	br := bettingRound{}
	br.reset(numPlayers, bigBlind)
	return br
}

// reset prepares the round for a new street
func (br *bettingRound) reset(numPlayers, bigBlind int) {
	br.currentBet = 0
	br.minRaise = bigBlind
	br.lastAggressor = -1
	br.fullRaises = 0
	br.acted = make([]bool, numPlayers)
	br.raiseSeen = make([]int, numPlayers)
	for i := range br.raiseSeen {
		br.raiseSeen[i] = -1
	}
}

// canRaise reports whether betting is open to the player. A player who has
// acted may raise again only after a full raise by someone else.
func (br *bettingRound) canRaise(seat int) bool {
	return br.raiseSeen[seat] < br.fullRaises
}

// markActed records a decision by seat
func (br *bettingRound) markActed(seat int) {
	br.acted[seat] = true
	br.raiseSeen[seat] = br.fullRaises
}

// betIncreased clears the acted flags of everyone but seat, who must respond
// to the new bet
func (br *bettingRound) betIncreased(seat int) {
	for i := range br.acted {
		br.acted[i] = i == seat
	}
}

// validActions lists the legal actions for player at seat
func (br *bettingRound) validActions(p *Player, seat int) []ValidAction {
	if !p.CanAct() {
		return nil
	}

	actions := []ValidAction{{Action: Fold}}
	toCall := br.currentBet - p.BetThisRound
	reachable := p.BetThisRound + p.Chips
	open := br.canRaise(seat)

	if toCall <= 0 {
		actions = append(actions, ValidAction{Action: Check})
	} else {
		actions = append(actions, ValidAction{Action: Call, MinAmount: min(toCall, p.Chips), MaxAmount: min(toCall, p.Chips)})
	}

	minTarget := br.currentBet + br.minRaise
	if open && reachable > minTarget {
		raise := Raise
		if br.currentBet == 0 {
			raise = Bet
		}
		actions = append(actions, ValidAction{Action: raise, MinAmount: minTarget, MaxAmount: reachable})
	}
	if reachable <= br.currentBet || open {
		actions = append(actions, ValidAction{Action: AllIn, MinAmount: reachable, MaxAmount: reachable})
	}
	return actions
}
