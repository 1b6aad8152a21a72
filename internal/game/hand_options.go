package game

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/lox/holdem/internal/deck"
	"github.com/lox/holdem/internal/randutil"
)

// DefaultBigBlind is used when no blinds are configured
const DefaultBigBlind = 20

// Option configures an Engine during creation.
type Option func(*engineConfig)

type engineConfig struct {
	bigBlind  int
	source    deck.Source
	newDeck   func() *deck.Deck
	logger    *log.Logger
	sidePots  bool
	firstDeal int
}

// WithBigBlind sets the big blind. The small blind is half of it, rounded down.
func WithBigBlind(bigBlind int) Option {
	return func(c *engineConfig) {
		c.bigBlind = bigBlind
	}
}

// WithSource sets the random source used to shuffle each hand's deck.
func WithSource(src deck.Source) Option {
	return func(c *engineConfig) {
		c.source = src
	}
}

// WithDeckFactory supplies the deck for every hand, overriding the random
// source. Tests use it with deck.NewStackedDeck.
func WithDeckFactory(newDeck func() *deck.Deck) Option {
	return func(c *engineConfig) {
		c.newDeck = newDeck
	}
}

// WithLogger sets the logger for engine diagnostics.
func WithLogger(logger *log.Logger) Option {
	return func(c *engineConfig) {
		c.logger = logger
	}
}

// WithSidePots toggles side pot settlement. It is on by default; when off, the
// whole pot is contested by every player left at showdown.
func WithSidePots(enabled bool) Option {
	return func(c *engineConfig) {
		c.sidePots = enabled
	}
}

// WithFirstDealer sets the roster seat holding the button on the first hand.
func WithFirstDealer(seat int) Option {
	return func(c *engineConfig) {
		c.firstDeal = seat
	}
}

func defaultEngineConfig() *engineConfig {
	return &engineConfig{
		bigBlind: DefaultBigBlind,
		logger:   log.New(io.Discard),
		sidePots: true,
	}
}

func (c *engineConfig) deckFactory() func() *deck.Deck {
	if c.newDeck != nil {
		return c.newDeck
	}
	src := c.source
	if src == nil {
		src = randutil.NewOrTime(0)
	}
	return func() *deck.Deck { return deck.NewDeck(src) }
}
