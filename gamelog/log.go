// Package gamelog implements the textual hand-history format: a writer
// that renders a played hand as human-readable sections, and a tolerant
// parser that reconstructs a Log from that text so it can be replayed
// through the game package to reproduce the same sequence of states.
package gamelog

import (
	"fmt"
	"strings"

	"github.com/lox/holdem-eval/game"
	"github.com/lox/holdem-eval/poker"
)

// PlayerLine is one seat's starting state: its stack, and hole cards if
// known at the point the log was written (showdown or a later re-reveal).
type PlayerLine struct {
	Name      string
	Stack     int
	HoleCards []poker.Card
}

// PlayerAmount pairs a player name with a chip amount — used for both the
// blinds and the summary sections.
type PlayerAmount struct {
	Name   string
	Amount int
}

// ActionEntry is one logged betting action. Amount is the chips added by
// *this* action (a call's amount is what was added, not the call target);
// Total is meaningful only for Raise, the player's new total bet this
// round, matching the "raises DELTA to TOTAL" syntax.
type ActionEntry struct {
	Player string
	Action game.Action
	Amount int
	Total  int
}

// StreetLog is one betting round's community cards (empty preflop) and
// the actions taken during it.
type StreetLog struct {
	Street  game.Street
	Board   []poker.Card
	Actions []ActionEntry
}

// Log is a complete hand: starting stacks, blinds, the four streets of
// action, and the final per-player stack summary.
type Log struct {
	Players    []PlayerLine
	SmallBlind PlayerAmount
	BigBlind   PlayerAmount
	Streets    []StreetLog
	Summary    []PlayerAmount
}

func cardsString(cards []poker.Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}

func streetHeading(s game.Street) string {
	switch s {
	case game.Preflop:
		return "Preflop"
	case game.Flop:
		return "Flop"
	case game.Turn:
		return "Turn"
	case game.River:
		return "River"
	default:
		return "Unknown"
	}
}

func formatActionLine(a ActionEntry) string {
	switch a.Action {
	case game.Fold:
		return fmt.Sprintf("%s folds", a.Player)
	case game.Check:
		return fmt.Sprintf("%s checks", a.Player)
	case game.Call:
		return fmt.Sprintf("%s calls %d", a.Player, a.Amount)
	case game.Bet, game.AllIn:
		return fmt.Sprintf("%s bets %d", a.Player, a.Amount)
	case game.Raise:
		return fmt.Sprintf("%s raises %d to %d", a.Player, a.Amount, a.Total)
	default:
		return fmt.Sprintf("%s %s %d", a.Player, a.Action, a.Amount)
	}
}

// Format renders log in the textual hand-history format.
func Format(log *Log) string {
	var b strings.Builder

	b.WriteString("*** Players ***\n")
	for _, p := range log.Players {
		if len(p.HoleCards) > 0 {
			fmt.Fprintf(&b, "%s - %d - %s\n", p.Name, p.Stack, cardsString(p.HoleCards))
		} else {
			fmt.Fprintf(&b, "%s - %d\n", p.Name, p.Stack)
		}
	}

	b.WriteString("*** Blinds ***\n")
	fmt.Fprintf(&b, "%s - %d\n", log.SmallBlind.Name, log.SmallBlind.Amount)
	fmt.Fprintf(&b, "%s - %d\n", log.BigBlind.Name, log.BigBlind.Amount)

	for _, street := range log.Streets {
		fmt.Fprintf(&b, "*** %s ***\n", streetHeading(street.Street))
		if street.Street != game.Preflop && len(street.Board) > 0 {
			fmt.Fprintf(&b, "%s\n", cardsString(street.Board))
		}
		for _, a := range street.Actions {
			fmt.Fprintf(&b, "%s\n", formatActionLine(a))
		}
	}

	b.WriteString("*** Summary ***\n")
	for _, s := range log.Summary {
		fmt.Fprintf(&b, "%s - %d\n", s.Name, s.Amount)
	}

	return b.String()
}
