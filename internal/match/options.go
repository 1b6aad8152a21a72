package match

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/holdem/internal/game"
)

// Observer is told about a match as it is played. Views implement it to
// render the table; calls happen on the runner's goroutine.
type Observer interface {
	HandStarted(snap game.Snapshot)
	Update(snap game.Snapshot)
	HandFinished(summary HandSummary)
}

// Option configures a Runner
type Option func(*config)

type config struct {
	id         string
	clock      quartz.Clock
	thinkDelay time.Duration
	maxHands   int
	logger     *log.Logger
	history    HistoryWriter
	observers  []Observer
}

func defaultConfig() *config {
	return &config{
		clock:  quartz.NewReal(),
		logger: log.New(io.Discard),
	}
}

// WithID sets the match identifier; by default a new one is generated
func WithID(id string) Option {
	return func(c *config) {
		c.id = id
	}
}

// WithClock sets the clock used to pace bots
func WithClock(clock quartz.Clock) Option {
	return func(c *config) {
		c.clock = clock
	}
}

// WithThinkDelay makes bots pause before each decision so humans can follow
// the action
func WithThinkDelay(d time.Duration) Option {
	return func(c *config) {
		c.thinkDelay = d
	}
}

// WithMaxHands stops the match after n hands; 0 plays until one player is left
func WithMaxHands(n int) Option {
	return func(c *config) {
		c.maxHands = n
	}
}

// WithLogger sets the runner's logger
func WithLogger(logger *log.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithHistory writes every finished hand to w
func WithHistory(w HistoryWriter) Option {
	return func(c *config) {
		c.history = w
	}
}

// WithObserver registers an observer
func WithObserver(o Observer) Option {
	return func(c *config) {
		c.observers = append(c.observers, o)
	}
}
