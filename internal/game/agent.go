package game

import "context"

// Decision is a decision provider's answer. For Bet and Raise, Amount is the
// total commitment for the round, not the increment.
type Decision struct {
	Action    Action
	Amount    int
	Reasoning string // Human-readable explanation
}

// ValidAction is an action the acting player may legally take
type ValidAction struct {
	Action    Action
	MinAmount int // call amount, or minimum total for bet/raise
	MaxAmount int // maximum total for bet/raise (all-in)
}

// DecisionProvider supplies decisions for a seat. Bots and humans both
// implement it; they see a snapshot and never mutate the engine.
type DecisionProvider interface {
	Decide(ctx context.Context, snap Snapshot, valid []ValidAction) (Decision, error)
}

// DecisionFunc adapts a function to a DecisionProvider
type DecisionFunc func(ctx context.Context, snap Snapshot, valid []ValidAction) (Decision, error)

// Decide calls f
func (f DecisionFunc) Decide(ctx context.Context, snap Snapshot, valid []ValidAction) (Decision, error) {
	return f(ctx, snap, valid)
}

// FindAction returns the valid action of the given kind
func FindAction(valid []ValidAction, action Action) (ValidAction, bool) {
	for _, va := range valid {
		if va.Action == action {
			return va, true
		}
	}
	return ValidAction{}, false
}

// PassiveDecision checks when possible and folds otherwise. Drivers fall back
// to it when a provider fails.
func PassiveDecision(valid []ValidAction, reasoning string) Decision {
	if _, ok := FindAction(valid, Check); ok {
		return Decision{Action: Check, Reasoning: reasoning}
	}
	return Decision{Action: Fold, Reasoning: reasoning}
}
