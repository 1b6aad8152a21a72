package game

import "slices"

// Pot represents a pot (main or side)
type Pot struct {
	Amount   int
	Eligible []int // player indexes eligible to win this pot
}

// potTotal returns every chip committed to the hand
func potTotal(players []*Player) int {
	total := 0
	for _, p := range players {
		total += p.TotalBet
	}
	return total
}

// buildPots splits the committed chips into a main pot and side pots, one per
// distinct commitment level among players still in the hand. Without side pots
// the whole amount forms one pot contested by every remaining player.
func buildPots(players []*Player, sidePots bool) []Pot {
	total := potTotal(players)
	if total == 0 {
		return nil
	}

	var contenders []int
	for i, p := range players {
		if !p.Folded {
			contenders = append(contenders, i)
		}
	}
	if !sidePots || len(contenders) <= 1 {
		return []Pot{{Amount: total, Eligible: contenders}}
	}

	// Commitment levels of players still in the hand, ascending
	levels := make([]int, 0, len(contenders))
	for _, i := range contenders {
		levels = append(levels, players[i].TotalBet)
	}
	slices.Sort(levels)
	levels = slices.Compact(levels)

	pots := make([]Pot, 0, len(levels))
	previous := 0
	collected := 0
	for _, level := range levels {
		pot := Pot{}
		for _, p := range players {
			pot.Amount += min(p.TotalBet, level) - min(p.TotalBet, previous)
		}
		for _, i := range contenders {
			if players[i].TotalBet >= level {
				pot.Eligible = append(pot.Eligible, i)
			}
		}
		previous = level
		if pot.Amount == 0 {
			continue
		}
		collected += pot.Amount

		// Levels with the same contenders belong to the same pot
		if n := len(pots); n > 0 && slices.Equal(pots[n-1].Eligible, pot.Eligible) {
			pots[n-1].Amount += pot.Amount
			continue
		}
		pots = append(pots, pot)
	}

	if len(pots) == 0 {
		return []Pot{{Amount: total, Eligible: contenders}}
	}
	// Chips folded above the highest live commitment go to the last pot
	if leftover := total - collected; leftover > 0 {
		pots[len(pots)-1].Amount += leftover
	}
	return pots
}
