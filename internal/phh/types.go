// Package phh encodes finished hands in the Poker Hand History format, a TOML
// document describing stacks, blinds and every dealing and betting action.
package phh

// Variant is the PHH code for no-limit Texas Hold'em
const Variant = "NT"

// HandHistory represents a single poker hand encoded in PHH format.
// Players are listed from the seat left of the button, so the button is last.
type HandHistory struct {
	Variant           string   `toml:"variant"`
	Table             string   `toml:"table,omitempty"`
	SeatCount         int      `toml:"seat_count,omitempty"`
	Antes             []int    `toml:"antes"`
	BlindsOrStraddles []int    `toml:"blinds_or_straddles"`
	MinBet            int      `toml:"min_bet"`
	StartingStacks    []int    `toml:"starting_stacks"`
	FinishingStacks   []int    `toml:"finishing_stacks,omitempty"`
	Winnings          []int    `toml:"winnings,omitempty"`
	Actions           []string `toml:"actions"`
	Players           []string `toml:"players,omitempty"`
	HandID            string   `toml:"hand"`
}
