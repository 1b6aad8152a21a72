package main

import (
	"fmt"
	"os"
	"time"

	"github.com/lox/holdem/internal/console"
	"github.com/lox/holdem/internal/deck"
	"github.com/lox/holdem/internal/evaluator"
)

type EvalCmd struct {
	Hole  string `arg:"" help:"Hole cards, e.g. 'As Kd'"`
	Board string `arg:"" optional:"" help:"Community cards, e.g. 'Qh Jc Ts'"`
}

func (c *EvalCmd) Run() error {
	hole, board, err := parseHand(c.Hole, c.Board)
	if err != nil {
		return err
	}
	hv, ok := evaluator.BestHandOf(hole, board)
	if !ok {
		return fmt.Errorf("need at least 5 cards, got %d", len(hole)+len(board))
	}

	styles := console.NewStyles()
	fmt.Printf("%s  %s\n", styles.Winner.Render(hv.String()), styles.Cards(hv.Cards))
	fmt.Printf("Examined %d five-card hands\n", evaluator.Subsets(len(hole)+len(board)))
	return nil
}

type EquityCmd struct {
	Hole      string `arg:"" help:"Hole cards, e.g. 'As Kd'"`
	Board     string `arg:"" optional:"" help:"Known community cards"`
	Opponents int    `short:"o" default:"1" help:"Number of opponents holding random cards"`
	Samples   int    `short:"n" default:"20000" help:"Monte Carlo samples"`
	Seed      int64  `help:"Seed for sampling (0 for random)"`
}

func (c *EquityCmd) Run() error {
	hole, board, err := parseHand(c.Hole, c.Board)
	if err != nil {
		return err
	}
	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	ctx, stop := signalContext()
	defer stop()

	equity, err := evaluator.EstimateEquity(ctx, hole, board, c.Opponents, c.Samples, seed)
	if err != nil {
		return err
	}

	styles := console.NewStyles()
	fmt.Fprintf(os.Stdout, "%s on %s vs %d: %s\n",
		styles.Cards(hole), styles.Cards(board), c.Opponents,
		styles.Pot.Render(fmt.Sprintf("%.1f%%", equity*100)))
	return nil
}

func parseHand(holeText, boardText string) ([]deck.Card, []deck.Card, error) {
	hole, err := deck.ParseCards(holeText)
	if err != nil {
		return nil, nil, fmt.Errorf("hole cards: %w", err)
	}
	if len(hole) != 2 {
		return nil, nil, fmt.Errorf("hole cards: want 2 cards, got %d", len(hole))
	}
	var board []deck.Card
	if boardText != "" {
		if board, err = deck.ParseCards(boardText); err != nil {
			return nil, nil, fmt.Errorf("board: %w", err)
		}
	}
	if len(board) > 5 {
		return nil, nil, fmt.Errorf("board: at most 5 cards, got %d", len(board))
	}

	seen := evaluator.NewCardSet(nil)
	for _, card := range append(append([]deck.Card(nil), hole...), board...) {
		if seen.Contains(card) {
			return nil, nil, fmt.Errorf("duplicate card %s", card.Code())
		}
		seen.Add(card)
	}
	return hole, board, nil
}
