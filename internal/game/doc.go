// Package game implements the betting engine for Texas Hold'em.
//
// The main type is Engine, which deals hands, enforces betting order and raise
// sizes, moves play through the streets and settles pots at showdown. Decisions
// come from outside: a driver asks whoever is acting for a decision, submits it
// with ProcessAction and then calls Advance.
//
// # Basic Usage
//
//	players := []*game.Player{
//	    game.NewPlayer("Alice", game.Human, 1000),
//	    game.NewPlayer("Bob", game.Bot, 1000),
//	}
//	e := game.NewEngine(game.WithBigBlind(20))
//	e.StartHand(players)
//	for e.InProgress() {
//	    if e.ActingPlayer() != nil {
//	        _ = e.ProcessAction(game.Call, 0)
//	    }
//	    res, _ := e.Advance()
//	    if res.HandComplete {
//	        fmt.Println(res.Winners)
//	    }
//	}
//
// # Deterministic Testing
//
// Shuffles use an injected deck.Source, so a seeded source replays a hand
// exactly:
//
//	e := game.NewEngine(game.WithSource(randutil.New(42)))
//
// A stacked deck controls every card:
//
//	e := game.NewEngine(game.WithDeckFactory(func() *deck.Deck {
//	    return deck.NewStackedDeck(deck.MustParseCards("As Kd Ah Kc")...)
//	}))
//
// # Pots
//
// Side pots are built from each remaining player's total commitment, so a
// short all-in can only win what it covered. WithSidePots(false) settles the
// whole pot among everyone left at showdown instead.
package game
