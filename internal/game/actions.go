package game

import "fmt"

// HandAction is one decision applied during a hand
type HandAction struct {
	Seat   int // index into the hand's players
	Player string
	Phase  Phase
	Action Action
	Amount int // the player's commitment for the round after acting
}

// AdvanceResult describes what Advance did
type AdvanceResult struct {
	HandComplete bool
	PhaseChanged bool
	Phase        Phase
	Winners      []Payout
}

// ValidActions returns the legal actions for the acting player, or nil when
// nobody owes a decision.
func (e *Engine) ValidActions() []ValidAction {
	p := e.ActingPlayer()
	if p == nil {
		return nil
	}
	return e.round.validActions(p, e.actor)
}

// Act applies action for p, who must be the acting player.
func (e *Engine) Act(p *Player, action Action, amount int) error {
	if !e.inProgress {
		return ErrNoHandInProgress
	}
	if acting := e.ActingPlayer(); acting != p {
		return fmt.Errorf("%w: %s", ErrOutOfTurn, p.Name)
	}
	return e.ProcessAction(action, amount)
}

// ProcessAction applies the acting player's decision. For Bet and Raise, amount
// is the player's total commitment for the round. A rejected action returns an
// error wrapping ErrInvalidAction and leaves the hand untouched; the player is
// still on the clock. Call Advance afterwards to move play on.
func (e *Engine) ProcessAction(action Action, amount int) error {
	if !e.inProgress {
		return ErrNoHandInProgress
	}
	if e.actionDone {
		return ErrActionPending
	}
	if e.actor < 0 {
		return fmt.Errorf("%w: nobody is due to act", ErrInvalidAction)
	}

	seat := e.actor
	p := e.players[seat]
	br := &e.round
	toCall := br.currentBet - p.BetThisRound
	reachable := p.BetThisRound + p.Chips

	switch action {
	case Fold:
		p.Folded = true
		e.record("%s folds", p.Name)

	case Check:
		if toCall > 0 {
			return fmt.Errorf("%w: cannot check facing %d", ErrInvalidAction, toCall)
		}
		e.record("%s checks", p.Name)

	case Call:
		if toCall <= 0 {
			// Nothing to call plays as a check
			action = Check
			e.record("%s checks", p.Name)
			break
		}
		paid := p.commit(toCall)
		if p.AllIn {
			e.record("%s calls %d and is all-in", p.Name, paid)
		} else {
			e.record("%s calls %d", p.Name, paid)
		}

	case Bet, Raise:
		if amount <= br.currentBet {
			return fmt.Errorf("%w: %s to %d does not exceed the current bet of %d", ErrInvalidAction, action, amount, br.currentBet)
		}
		if amount > reachable {
			return fmt.Errorf("%w: %s to %d exceeds %s's stack", ErrInvalidAction, action, amount, p.Name)
		}
		if amount == reachable {
			if err := e.allIn(seat); err != nil {
				return err
			}
			action = AllIn
			break
		}
		if !br.canRaise(seat) {
			return fmt.Errorf("%w: betting is not reopened for %s", ErrInvalidAction, p.Name)
		}
		increment := amount - br.currentBet
		if increment < br.minRaise {
			return fmt.Errorf("%w: raise of %d is below the minimum of %d", ErrInvalidAction, increment, br.minRaise)
		}

		if br.currentBet == 0 {
			action = Bet
		} else {
			action = Raise
		}
		p.commit(amount - p.BetThisRound)
		br.minRaise = increment
		br.currentBet = amount
		br.lastAggressor = seat
		br.fullRaises++
		br.betIncreased(seat)
		if action == Bet {
			e.record("%s bets %d", p.Name, amount)
		} else {
			e.record("%s raises to %d", p.Name, amount)
		}

	case AllIn:
		if err := e.allIn(seat); err != nil {
			return err
		}

	default:
		return fmt.Errorf("%w: %s", ErrInvalidAction, action)
	}

	br.markActed(seat)
	p.LastAction = action
	p.HasActed = true
	e.actionDone = true
	e.actions = append(e.actions, HandAction{
		Seat:   seat,
		Player: p.Name,
		Phase:  e.phase,
		Action: action,
		Amount: p.BetThisRound,
	})

	e.logger.Debug("Player acted", "player", p.Name, "action", action, "bet", p.BetThisRound, "chips", p.Chips, "pot", e.Pot())
	return nil
}

// allIn commits the player's whole stack. A shove above the current bet raises
// it; only a full raise reopens betting for players who have already acted.
func (e *Engine) allIn(seat int) error {
	p := e.players[seat]
	br := &e.round
	target := p.BetThisRound + p.Chips

	if target > br.currentBet && !br.canRaise(seat) {
		return fmt.Errorf("%w: betting is not reopened for %s", ErrInvalidAction, p.Name)
	}

	p.commit(p.Chips)
	if target <= br.currentBet {
		e.record("%s calls all-in for %d", p.Name, target)
		return nil
	}

	if increment := target - br.currentBet; increment >= br.minRaise {
		br.minRaise = increment
		br.lastAggressor = seat
		br.fullRaises++
	}
	br.currentBet = target
	br.betIncreased(seat)
	e.record("%s goes all-in for %d", p.Name, target)
	return nil
}

// Advance moves play on after an action: to the next player, the next street or
// the end of the hand. Streets with nobody left to act are dealt one per call so
// drivers can show the run-out.
func (e *Engine) Advance() (AdvanceResult, error) {
	if !e.inProgress {
		return AdvanceResult{}, ErrNoHandInProgress
	}
	if e.actor >= 0 && !e.actionDone {
		return AdvanceResult{Phase: e.phase}, fmt.Errorf("%w: %s", ErrActionRequired, e.players[e.actor].Name)
	}
	e.actionDone = false

	if e.remaining() == 1 {
		winners := e.awardUncontested()
		return AdvanceResult{HandComplete: true, Phase: e.phase, Winners: winners}, nil
	}

	if e.actor >= 0 && !e.roundComplete() {
		e.actor = e.nextToAct(e.next(e.actor))
		return AdvanceResult{Phase: e.phase}, nil
	}

	return e.nextStreet(), nil
}

// nextStreet closes the betting round and deals the next street, or settles
// the hand after the river.
func (e *Engine) nextStreet() AdvanceResult {
	for _, p := range e.players {
		p.BetThisRound = 0
	}
	e.round.reset(len(e.players), e.bigBlind)

	switch e.phase {
	case Preflop:
		e.dealCommunity(3)
	case Turn, Flop:
		e.dealCommunity(1)
	case River:
		e.phase = Showdown
		winners := e.showdown()
		return AdvanceResult{HandComplete: true, PhaseChanged: true, Phase: Showdown, Winners: winners}
	}
	e.phase++
	e.record("*** %s *** [%s]", e.phase, formatBoard(e.community))
	e.logger.Debug("Street dealt", "phase", e.phase, "board", formatBoard(e.community))

	e.actor = e.nextToAct(e.next(e.dealer))
	able := 0
	for _, p := range e.players {
		if p.CanAct() {
			able++
		}
	}
	if able < 2 {
		e.actor = -1
	}
	return AdvanceResult{PhaseChanged: true, Phase: e.phase}
}

func (e *Engine) dealCommunity(n int) {
	e.deck.Burn()
	for range n {
		card, ok := e.deck.Deal()
		if !ok {
			panic("deck exhausted")
		}
		e.community = append(e.community, card)
	}
}
