package game

import (
	"github.com/lox/holdem/internal/deck"
	"github.com/lox/holdem/internal/evaluator"
)

// Payout is the chips a player won when a hand finished. Hand is the zero
// value when the pot was won without a showdown.
type Payout struct {
	Player *Player
	Amount int
	Hand   evaluator.HandValue
}

func formatBoard(cards []deck.Card) string {
	return deck.FormatCards(cards)
}

// awardUncontested gives every chip to the last player standing
func (e *Engine) awardUncontested() []Payout {
	var winner *Player
	for _, p := range e.players {
		if !p.Folded {
			winner = p
			break
		}
	}

	total := e.Pot()
	winner.Chips += total
	e.payouts = []Payout{{Player: winner, Amount: total}}
	e.record("%s wins %d uncontested", winner.Name, total)
	e.logger.Debug("Hand won uncontested", "hand", e.handNumber, "winner", winner.Name, "amount", total)
	e.finish()
	return e.Payouts()
}

// showdown evaluates every remaining hand and settles each pot between its
// best eligible hands. Players are considered in order from the seat left of
// the dealer, and an indivisible chip goes to the first winner in that order.
func (e *Engine) showdown() []Payout {
	n := len(e.players)
	hands := make([]evaluator.HandValue, n)
	order := make([]int, 0, n)
	for i := range n {
		idx := (e.dealer + 1 + i) % n
		p := e.players[idx]
		if p.Folded {
			continue
		}
		hv, ok := evaluator.BestHandOf(p.HoleCards, e.community)
		if !ok {
			panic("showdown without a full board")
		}
		hands[idx] = hv
		order = append(order, idx)
		e.record("%s shows [%s] (%s)", p.Name, deck.FormatCards(p.HoleCards), hv)
	}

	won := make(map[int]int, n)
	for _, pot := range buildPots(e.players, e.sidePots) {
		eligible := make(map[int]bool, len(pot.Eligible))
		for _, idx := range pot.Eligible {
			eligible[idx] = true
		}

		var winners []int
		for _, idx := range order {
			if !eligible[idx] {
				continue
			}
			if len(winners) == 0 {
				winners = append(winners, idx)
				continue
			}
			switch c := evaluator.Compare(hands[idx], hands[winners[0]]); {
			case c > 0:
				winners = append(winners[:0], idx)
			case c == 0:
				winners = append(winners, idx)
			}
		}
		if len(winners) == 0 {
			continue
		}

		share := pot.Amount / len(winners)
		for i, idx := range winners {
			amount := share
			if i == 0 {
				amount += pot.Amount % len(winners)
			}
			won[idx] += amount
		}
	}

	e.payouts = e.payouts[:0]
	for _, idx := range order {
		amount, ok := won[idx]
		if !ok {
			continue
		}
		p := e.players[idx]
		p.Chips += amount
		e.payouts = append(e.payouts, Payout{Player: p, Amount: amount, Hand: hands[idx]})
		e.record("%s wins %d with %s", p.Name, amount, hands[idx])
	}

	e.logger.Debug("Showdown settled", "hand", e.handNumber, "board", formatBoard(e.community), "winners", len(e.payouts))
	e.finish()
	return e.Payouts()
}

func (e *Engine) finish() {
	for _, p := range e.players {
		p.BetThisRound = 0
		p.TotalBet = 0
	}
	e.inProgress = false
	e.actor = -1
	e.actionDone = false
}
