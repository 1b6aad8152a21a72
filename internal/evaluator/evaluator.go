// Package evaluator ranks poker hands. Any set of five to seven cards is
// reduced to its best five-card HandValue, and HandValues are totally ordered
// by Compare.
package evaluator

import (
	"slices"

	"github.com/lox/holdem/internal/deck"
)

// rankGroup is a run of cards sharing a rank
type rankGroup struct {
	rank  deck.Rank
	count int
}

// Rank5 classifies exactly five cards
func Rank5(cards [5]deck.Card) HandValue {
	sorted := slices.Clone(cards[:])
	slices.SortFunc(sorted, func(a, b deck.Card) int { return int(b.Rank) - int(a.Rank) })

	flush := true
	for _, c := range sorted[1:] {
		if c.Suit != sorted[0].Suit {
			flush = false
			break
		}
	}
	high, straight := straightHigh(sorted)
	groups := groupByRank(sorted)

	hv := HandValue{}
	switch {
	case straight && flush:
		hv.Category = StraightFlush
		if high == deck.Ace {
			hv.Category = RoyalFlush
		}
		hv.Tiebreak = []int{int(high)}
	case groups[0].count == 4:
		hv.Category = FourOfAKind
	case groups[0].count == 3 && groups[1].count == 2:
		hv.Category = FullHouse
	case flush:
		hv.Category = Flush
	case straight:
		hv.Category = Straight
		hv.Tiebreak = []int{int(high)}
	case groups[0].count == 3:
		hv.Category = ThreeOfAKind
	case groups[0].count == 2 && groups[1].count == 2:
		hv.Category = TwoPair
	case groups[0].count == 2:
		hv.Category = OnePair
	default:
		hv.Category = HighCard
	}

	if hv.Tiebreak == nil {
		hv.Tiebreak = make([]int, len(groups))
		for i, g := range groups {
			hv.Tiebreak[i] = int(g.rank)
		}
	}
	hv.Cards = orderCards(sorted, groups, straight && high == deck.Five)
	return hv
}

// straightHigh returns the high card of a straight in rank-descending cards.
// The wheel (A-2-3-4-5) is five high.
func straightHigh(sorted []deck.Card) (deck.Rank, bool) {
	for i := 1; i < len(sorted); i++ {
		if sorted[i].Rank == sorted[i-1].Rank {
			return 0, false
		}
	}
	if sorted[0].Rank-sorted[4].Rank == 4 {
		return sorted[0].Rank, true
	}
	if sorted[0].Rank == deck.Ace && sorted[1].Rank == deck.Five && sorted[4].Rank == deck.Two {
		return deck.Five, true
	}
	return 0, false
}

// groupByRank groups rank-descending cards, largest group first and higher
// rank first within equal sizes
func groupByRank(sorted []deck.Card) []rankGroup {
	groups := make([]rankGroup, 0, 5)
	for _, c := range sorted {
		if n := len(groups); n > 0 && groups[n-1].rank == c.Rank {
			groups[n-1].count++
			continue
		}
		groups = append(groups, rankGroup{rank: c.Rank, count: 1})
	}
	slices.SortStableFunc(groups, func(a, b rankGroup) int {
		if a.count != b.count {
			return b.count - a.count
		}
		return int(b.rank) - int(a.rank)
	})
	return groups
}

func orderCards(sorted []deck.Card, groups []rankGroup, wheel bool) []deck.Card {
	out := make([]deck.Card, 0, 5)
	if wheel {
		// Ace plays low
		out = append(out, sorted[1:]...)
		return append(out, sorted[0])
	}
	for _, g := range groups {
		for _, c := range sorted {
			if c.Rank == g.rank {
				out = append(out, c)
			}
		}
	}
	return out
}

// BestHandOf returns the strongest five-card hand that can be made from the
// hole and community cards. It reports false when fewer than five cards are
// available. Every five-card subset is evaluated.
func BestHandOf(hole, community []deck.Card) (HandValue, bool) {
	all := make([]deck.Card, 0, len(hole)+len(community))
	all = append(all, hole...)
	all = append(all, community...)
	return Best(all)
}

// Best returns the strongest five-card hand within cards
func Best(cards []deck.Card) (HandValue, bool) {
	n := len(cards)
	if n < 5 {
		return HandValue{}, false
	}
	if n == 5 {
		return Rank5([5]deck.Card(cards)), true
	}

	var (
		best  HandValue
		found bool
		five  [5]deck.Card
		idx   [5]int
	)
	var choose func(start, k int)
	choose = func(start, k int) {
		if k == 5 {
			for i, j := range idx {
				five[i] = cards[j]
			}
			hv := Rank5(five)
			if !found || Compare(hv, best) > 0 {
				best, found = hv, true
			}
			return
		}
		for i := start; i <= n-(5-k); i++ {
			idx[k] = i
			choose(i+1, k+1)
		}
	}
	choose(0, 0)
	return best, true
}

// Subsets returns the number of five-card subsets examined for n cards
func Subsets(n int) int {
	if n < 5 {
		return 0
	}
	return n * (n - 1) * (n - 2) * (n - 3) * (n - 4) / 120
}
