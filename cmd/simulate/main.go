// Command simulate plays a single hand to completion using uniform-random
// legal action selection, then prints the resulting hand history in the
// gamelog textual format. It exists to exercise game + gamelog end to end;
// it is not an agent policy and makes no attempt at reasonable play.
package main

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	"github.com/lox/holdem-eval/game"
	"github.com/lox/holdem-eval/gamelog"
	"github.com/lox/holdem-eval/internal/config"
	"github.com/lox/holdem-eval/poker"
)

type CLI struct {
	Config  string `short:"c" help:"Path to an HCL table/simulation config file"`
	Seed    int64  `help:"Random seed" default:"1"`
	Verbose bool   `short:"v" help:"Log each action as it is taken"`
}

func main() {
	var cli CLI
	kong.Parse(&cli)

	logger := log.NewWithOptions(os.Stderr, log.Options{Level: log.WarnLevel})
	if cli.Verbose {
		logger.SetLevel(log.DebugLevel)
	}

	path := cli.Config
	if path == "" {
		path = "/dev/null"
	}
	cfg, err := config.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	names := make([]string, cfg.Table.Seats)
	chips := make([]int, cfg.Table.Seats)
	for i := range names {
		names[i] = fmt.Sprintf("player%d", i+1)
		chips[i] = cfg.Table.StartStack
	}

	rng := rand.New(rand.NewSource(cli.Seed))
	g, err := game.NewGame(rng, names, chips, cfg.Table.Button, cfg.Table.SmallBlind, cfg.Table.BigBlind)
	if err != nil {
		fmt.Fprintf(os.Stderr, "new game: %v\n", err)
		os.Exit(1)
	}

	logger.Info("dealt hand", "game_id", g.ID, "seats", len(names))
	gl := recordHand(logger, g, rng)
	fmt.Print(gamelog.Format(gl))
}

// recordHand drives g to completion with uniform-random legal actions,
// building a gamelog.Log of every street and action along the way.
func recordHand(logger *log.Logger, g *game.GameState, rng *rand.Rand) *gamelog.Log {
	gl := &gamelog.Log{
		SmallBlind: gamelog.PlayerAmount{Name: g.Players[sbSeat(g)].Name, Amount: g.SmallBlind},
		BigBlind:   gamelog.PlayerAmount{Name: g.Players[bbSeat(g)].Name, Amount: g.BigBlind},
	}
	for _, p := range g.Players {
		gl.Players = append(gl.Players, gamelog.PlayerLine{Name: p.Name, Stack: p.Chips + p.Bet})
	}

	var currentStreet *gamelog.StreetLog
	var lastBoard poker.Hand
	flushStreet := func() {
		if currentStreet != nil {
			gl.Streets = append(gl.Streets, *currentStreet)
		}
	}

	for !g.IsComplete() {
		if currentStreet == nil || currentStreet.Street != g.Street {
			flushStreet()
			newBoard := g.Board &^ lastBoard
			currentStreet = &gamelog.StreetLog{Street: g.Street, Board: newBoard.Cards()}
			lastBoard = g.Board
		}

		seat := g.ActiveSeat
		actions := g.ValidActions()
		if len(actions) == 0 {
			break
		}
		action := actions[rng.Intn(len(actions))]
		amount := chooseAmount(g, seat, action, rng)

		entry := gamelog.ActionEntry{Player: g.Players[seat].Name, Action: action, Amount: amount}
		switch action {
		case game.Raise:
			entry.Amount = amount - g.Players[seat].Bet
			entry.Total = amount
		case game.Call:
			entry.Amount = min(g.Betting.CurrentBet-g.Players[seat].Bet, g.Players[seat].Chips)
		case game.AllIn:
			entry.Amount = g.Players[seat].Chips
		}
		currentStreet.Actions = append(currentStreet.Actions, entry)

		logger.Debug("action", "seat", seat, "action", action, "amount", amount)
		if err := g.ProcessAction(seat, action, amount); err != nil {
			logger.Warn("illegal action sampled, folding instead", "err", err)
			_ = g.ProcessAction(seat, game.Fold, 0)
		}
	}
	flushStreet()

	g.Payouts()
	for _, p := range g.Players {
		if !p.Folded {
			gl.Summary = append(gl.Summary, gamelog.PlayerAmount{Name: p.Name, Amount: p.Chips})
		}
	}
	return gl
}

func chooseAmount(g *game.GameState, seat int, action game.Action, rng *rand.Rand) int {
	p := g.Players[seat]
	switch action {
	case game.Bet:
		return g.BigBlind
	case game.Raise:
		return g.Betting.CurrentBet + g.Betting.MinRaise
	case game.AllIn:
		return p.Bet + p.Chips
	default:
		return 0
	}
}

func sbSeat(g *game.GameState) int {
	if len(g.Players) == 2 {
		return g.Button
	}
	return (g.Button + 1) % len(g.Players)
}

func bbSeat(g *game.GameState) int {
	if len(g.Players) == 2 {
		return (g.Button + 1) % len(g.Players)
	}
	return (g.Button + 2) % len(g.Players)
}
