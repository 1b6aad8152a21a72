package game

import "errors"

var (
	// ErrNoHandInProgress is returned when acting or advancing outside a hand
	ErrNoHandInProgress = errors.New("no hand in progress")
	// ErrOutOfTurn is returned when a player other than the acting player acts
	ErrOutOfTurn = errors.New("action out of turn")
	// ErrInvalidAction wraps every action rejected by the betting rules
	ErrInvalidAction = errors.New("invalid action")
	// ErrActionRequired is returned by Advance while the acting player still owes a decision
	ErrActionRequired = errors.New("acting player has not acted")
	// ErrActionPending is returned when a second action is submitted before Advance
	ErrActionPending = errors.New("action already taken, advance first")
)
