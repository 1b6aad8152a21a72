package evaluator

import (
	"context"
	"errors"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/lox/holdem/internal/deck"
	"github.com/lox/holdem/internal/randutil"
)

// parallelThreshold is the sample count above which work is split across
// goroutines
const parallelThreshold = 500

// ErrInvalidEquityInput is returned for malformed equity queries
var ErrInvalidEquityInput = errors.New("invalid equity input")

// workerResult holds the results from a Monte Carlo worker
type workerResult struct {
	share   float64 // wins plus fractional tie shares
	samples int
}

// CardSet represents a set of cards using a bitset
// Each card maps to a bit: index = suit*13 + (rank-2)
type CardSet uint64

func cardIndex(card deck.Card) int {
	return int(card.Suit)*13 + int(card.Rank-deck.Two)
}

// Add adds a card to the set
func (cs *CardSet) Add(card deck.Card) {
	*cs |= 1 << cardIndex(card)
}

// Contains checks if a card is in the set
func (cs CardSet) Contains(card deck.Card) bool {
	return cs&(1<<cardIndex(card)) != 0
}

// NewCardSet creates a CardSet from a slice of cards
func NewCardSet(cards []deck.Card) CardSet {
	var cs CardSet
	for _, card := range cards {
		cs.Add(card)
	}
	return cs
}

// EstimateEquity estimates the share of the pot hole cards win against
// opponents holding random cards, by Monte Carlo sampling of the unseen cards.
// The same seed always yields the same estimate.
func EstimateEquity(ctx context.Context, hole, board []deck.Card, opponents, samples int, seed int64) (float64, error) {
	if len(hole) != 2 || len(board) > 5 || opponents < 1 || samples < 1 {
		return 0, ErrInvalidEquityInput
	}
	if 2+len(board)+2*opponents+(5-len(board)) > 52 {
		return 0, ErrInvalidEquityInput
	}

	used := NewCardSet(hole)
	for _, c := range board {
		if used.Contains(c) {
			return 0, ErrInvalidEquityInput
		}
		used.Add(c)
	}
	available := make([]deck.Card, 0, 52)
	for _, c := range deck.Standard() {
		if !used.Contains(c) {
			available = append(available, c)
		}
	}

	workers := 1
	if samples >= parallelThreshold {
		workers = min(runtime.NumCPU(), 8)
	}
	results := make([]workerResult, workers)

	g, ctx := errgroup.WithContext(ctx)
	for w := range workers {
		n := samples / workers
		if w < samples%workers {
			n++
		}
		g.Go(func() error {
			res, err := runEquityWorker(ctx, hole, board, available, opponents, n, seed+int64(w))
			results[w] = res
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	var total workerResult
	for _, r := range results {
		total.share += r.share
		total.samples += r.samples
	}
	if total.samples == 0 {
		return 0, nil
	}
	return total.share / float64(total.samples), nil
}

func runEquityWorker(ctx context.Context, hole, board, available []deck.Card, opponents, samples int, seed int64) (workerResult, error) {
	rng := randutil.New(seed)
	pool := make([]deck.Card, len(available))
	need := 2*opponents + (5 - len(board))
	fullBoard := make([]deck.Card, 5)
	copy(fullBoard, board)

	var res workerResult
	for i := range samples {
		if i%256 == 0 {
			if err := ctx.Err(); err != nil {
				return res, err
			}
		}

		// Partial Fisher-Yates: only the first need cards are drawn
		copy(pool, available)
		for j := range need {
			k := j + rng.IntN(len(pool)-j)
			pool[j], pool[k] = pool[k], pool[j]
		}
		copy(fullBoard[len(board):], pool[2*opponents:need])

		hero, _ := BestHandOf(hole, fullBoard)
		tied := 0
		lost := false
		for o := range opponents {
			villain, _ := BestHandOf(pool[2*o:2*o+2], fullBoard)
			switch Compare(hero, villain) {
			case -1:
				lost = true
			case 0:
				tied++
			}
			if lost {
				break
			}
		}
		if !lost {
			res.share += 1 / float64(tied+1)
		}
		res.samples++
	}
	return res, nil
}
