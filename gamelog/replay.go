package gamelog

import (
	"fmt"
	"math/rand"

	"github.com/lox/holdem-eval/game"
	"github.com/lox/holdem-eval/poker"
)

// Replay reconstructs a game.GameState from log and drives it through every
// logged action, producing the exact sequence of states the hand actually
// went through. The deck is only used to satisfy NewGame's dealing step;
// every street's community cards are then pinned to log's authoritative
// record rather than left to chance, and hole cards are overwritten from
// log.Players when present, so the replayed state matches the log exactly
// regardless of what the scratch deck happened to deal.
func Replay(log *Log) (*game.GameState, error) {
	n := len(log.Players)
	if n < 2 {
		return nil, fmt.Errorf("gamelog: log has fewer than 2 players")
	}

	names := make([]string, n)
	chips := make([]int, n)
	seatOf := make(map[string]int, n)
	for i, p := range log.Players {
		names[i] = p.Name
		chips[i] = p.Stack
		seatOf[p.Name] = i
	}

	button := n - 1
	if n == 2 {
		button = 0
	}

	g, err := game.NewGame(rand.New(rand.NewSource(1)), names, chips, button, log.SmallBlind.Amount, log.BigBlind.Amount)
	if err != nil {
		return nil, fmt.Errorf("gamelog: replay setup: %w", err)
	}

	for i, p := range log.Players {
		if len(p.HoleCards) == 2 {
			g.Players[i].HoleCards = poker.NewHand(p.HoleCards...)
		}
	}

	var board poker.Hand
	for _, street := range log.Streets {
		if len(street.Board) > 0 {
			board = board.Union(poker.NewHand(street.Board...))
			g.Board = board
		}
		for _, a := range street.Actions {
			seat, ok := seatOf[a.Player]
			if !ok {
				return nil, fmt.Errorf("gamelog: replay: unknown player %q", a.Player)
			}
			amount := 0
			switch a.Action {
			case game.Bet:
				amount = a.Amount
			case game.Raise:
				amount = a.Total
			}
			if err := g.ProcessAction(seat, a.Action, amount); err != nil {
				return nil, fmt.Errorf("gamelog: replay: %s %s: %w", a.Player, a.Action, err)
			}
			// ProcessAction may have advanced the street and dealt scratch
			// cards; re-pin the board to the log's record immediately.
			g.Board = board
		}
	}

	return g, nil
}
