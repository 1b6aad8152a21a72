package evaluator

import (
	"context"
	"testing"

	"github.com/lox/holdem/internal/deck"
	"github.com/lox/holdem/internal/randutil"
)

// generate7CardHands deals n random seven-card hands from a fixed seed
func generate7CardHands(seed int64, n int) [][]deck.Card {
	rng := randutil.New(seed)
	hands := make([][]deck.Card, n)
	for i := range hands {
		hands[i] = deck.NewDeck(rng).DealN(7)
	}
	return hands
}

func BenchmarkBest_RandomHands(b *testing.B) {
	hands := generate7CardHands(42, 10000)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = Best(hands[i%len(hands)])
	}
}

func BenchmarkRank5_TortureCases(b *testing.B) {
	cases := []struct {
		name  string
		cards string
	}{
		{"RoyalFlush", "AsKsQsJsTs"},
		{"WheelStraight", "As5h4d3c2s"},
		{"FullHouse", "KsKhKdQcQs"},
		{"HighCard", "AsKhQdJc9s"},
	}
	for _, tc := range cases {
		b.Run(tc.name, func(b *testing.B) {
			hand := [5]deck.Card(deck.MustParseCards(tc.cards))
			for i := 0; i < b.N; i++ {
				_ = Rank5(hand)
			}
		})
	}
}

func BenchmarkEstimateEquity_PreFlop(b *testing.B) {
	hole := deck.MustParseCards("AsAh")
	ctx := context.Background()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = EstimateEquity(ctx, hole, nil, 1, 1000, int64(i))
	}
}
