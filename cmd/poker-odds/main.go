// Command poker-odds computes equity for a set of hole-card ranges against
// an optional partial board, using either exhaustive enumeration or a
// seeded Monte Carlo sample. It is a thin demonstration CLI over the
// ranges/equity packages, not part of the core module contract.
package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"text/tabwriter"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	"github.com/lox/holdem-eval/equity"
	"github.com/lox/holdem-eval/poker"
	"github.com/lox/holdem-eval/ranges"
)

type CLI struct {
	Ranges     []string `arg:"" help:"Player ranges in DSL form, e.g. 'AhKh' 'QQ+' 'AKs,AKo'" required:"true"`
	Board      string   `short:"b" help:"Community board cards, e.g. 'Td7s8h'"`
	Exact      bool     `short:"e" help:"Force exact enumeration instead of Monte Carlo"`
	Iterations int      `short:"i" help:"Monte Carlo iterations" default:"100000"`
	Seed       *int64   `help:"Random seed for reproducible Monte Carlo results"`
	Verbose    bool     `short:"v" help:"Log progress and timing"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli)

	logger := log.NewWithOptions(os.Stderr, log.Options{Level: log.WarnLevel})
	if cli.Verbose {
		logger.SetLevel(log.DebugLevel)
	}

	playerRanges := make([]*ranges.Range, len(cli.Ranges))
	for i, notation := range cli.Ranges {
		r, err := ranges.ParseRange(notation)
		if err != nil {
			fmt.Fprintf(os.Stderr, "range %d (%q): %v\n", i+1, notation, err)
			ctx.Exit(1)
		}
		playerRanges[i] = r
		logger.Debug("parsed range", "index", i, "notation", notation, "combos", r.Size())
	}

	var board poker.Hand
	if cli.Board != "" {
		cards, err := poker.ParseCards(cli.Board)
		if err != nil {
			fmt.Fprintf(os.Stderr, "board %q: %v\n", cli.Board, err)
			ctx.Exit(1)
		}
		board = poker.NewHand(cards...)
	}

	start := time.Now()
	results, mode := run(logger, &cli, playerRanges, board)
	elapsed := time.Since(start)

	logger.Info("equity computed", "mode", mode, "elapsed", elapsed)
	display(cli.Ranges, results)
}

func run(logger *log.Logger, cli *CLI, playerRanges []*ranges.Range, board poker.Hand) ([]equity.Result, string) {
	if cli.Exact {
		results, err := equity.Exact(playerRanges, board)
		if err != nil {
			fmt.Fprintf(os.Stderr, "exact equity: %v\n", err)
			os.Exit(1)
		}
		return results, "exact"
	}

	seed := time.Now().UnixNano()
	if cli.Seed != nil {
		seed = *cli.Seed
	}
	logger.Debug("monte carlo seed", "seed", seed)

	results, err := equity.MonteCarlo(context.Background(), playerRanges, board, cli.Iterations, rand.New(rand.NewSource(seed)))
	if err != nil {
		fmt.Fprintf(os.Stderr, "monte carlo equity: %v\n", err)
		os.Exit(1)
	}
	return results, "montecarlo"
}

func display(notations []string, results []equity.Result) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "RANGE\tEQUITY\tWINS\tDEALS")
	for i, r := range results {
		fmt.Fprintf(w, "%s\t%.2f%%\t%.1f\t%d\n", notations[i], r.Equity()*100, r.Wins, r.Deals)
	}
	w.Flush()
}
