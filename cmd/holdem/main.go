package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// version is set by ldflags during build
var version = "dev"

var titleStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#FAFAFA")).
	Background(lipgloss.Color("#7D56F4")).
	Padding(0, 1).
	Bold(true)

type CLI struct {
	Version  kong.VersionFlag `short:"v" help:"Show version"`
	LogLevel string           `default:"info" enum:"debug,info,warn,error" help:"Log level (debug|info|warn|error)"`

	Play     PlayCmd     `cmd:"" default:"withargs" help:"Play a match against bots"`
	Simulate SimulateCmd `cmd:"" help:"Run bot-only matches and report results"`
	Eval     EvalCmd     `cmd:"" help:"Describe the best hand made from hole and board cards"`
	Equity   EquityCmd   `cmd:"" help:"Estimate the equity of hole cards against random hands"`
	History  HistoryCmd  `cmd:"" help:"Print hands saved in PHH format"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("holdem"),
		kong.Description("Texas Hold'em in the terminal"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run(&cli)
	ctx.FatalIfErrorf(err)
}

// newLogger creates a logger writing to w at the CLI's level
func (c *CLI) newLogger(w io.Writer, prefix string) *log.Logger {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		level = log.InfoLevel
	}
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Prefix:          prefix,
	})
}

// signalContext is cancelled on interrupt or SIGTERM
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

func printTitle(w io.Writer) {
	fmt.Fprintln(w, titleStyle.Render(" ♠ ♥ Texas Hold'em ♦ ♣ "))
	fmt.Fprintln(w)
}
