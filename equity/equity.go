// Package equity computes multi-way showdown equity for a set of player
// ranges against a partial or complete board: exact enumeration of every
// remaining deal, and a seeded Monte-Carlo sampler for when exhaustive
// enumeration is too large. Both modes share the same per-deal scoring
// step (poker.Evaluate7 plus tie splitting) so their results are directly
// comparable.
package equity

import (
	"context"
	"fmt"
	"math/rand"
	"runtime"
	"sort"
	"sync"

	"github.com/lox/holdem-eval/poker"
	"github.com/lox/holdem-eval/ranges"
	"golang.org/x/sync/errgroup"
)

// Result is one player's share of a set of simulated or enumerated deals.
type Result struct {
	Wins  float64 // whole + fractional (split-pot) wins
	Deals int      // deals this player had a valid hand assignment in
}

// Equity returns Wins/Deals, or 0 if the player never received a valid hand.
func (r Result) Equity() float64 {
	if r.Deals == 0 {
		return 0
	}
	return r.Wins / float64(r.Deals)
}

// maxRetries bounds the number of times a sampling attempt may be retried
// after a transient failure (an exhausted range against the remaining
// deck) before the whole draw is abandoned as unsatisfiable.
const maxRetries = 200

// boardSize is the number of community cards in a complete board.
const boardSize = 5

// Exact enumerates every possible assignment of hole cards to playerRanges
// (drawn from the intersection of each range with the remaining deck) and
// every possible completion of board, and returns each player's equity
// share. Ranges are assigned in order of increasing combo count (the
// most-restrictive range first) to fail fast on unsatisfiable branches.
func Exact(playerRanges []*ranges.Range, board poker.Hand) ([]Result, error) {
	n := len(playerRanges)
	if n < 2 {
		return nil, fmt.Errorf("equity: need at least 2 player ranges, got %d", n)
	}
	if board.CountCards() > boardSize {
		return nil, fmt.Errorf("equity: board has more than %d cards", boardSize)
	}

	order := restrictivenessOrder(playerRanges)
	results := make([]Result, n)
	assigned := make([]poker.Hand, n)

	var assign func(pos int, used poker.Hand) error
	assign = func(pos int, used poker.Hand) error {
		if pos == n {
			return enumerateBoards(assigned, board, used, results)
		}
		idx := order[pos]
		for _, combo := range playerRanges[idx].Combos() {
			if combo.Intersect(used) != 0 {
				continue
			}
			assigned[idx] = combo
			if err := assign(pos+1, used.Union(combo)); err != nil {
				return err
			}
		}
		return nil
	}

	if err := assign(0, board); err != nil {
		return nil, err
	}
	return results, nil
}

// restrictivenessOrder returns player indices sorted by ascending range
// size, so the smallest (most restrictive) ranges are assigned first.
func restrictivenessOrder(playerRanges []*ranges.Range) []int {
	order := make([]int, len(playerRanges))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return playerRanges[order[i]].Size() < playerRanges[order[j]].Size()
	})
	return order
}

// enumerateBoards completes board to 5 cards using every remaining-deck
// combination and scores each resulting deal into results.
func enumerateBoards(assigned []poker.Hand, board poker.Hand, used poker.Hand, results []Result) error {
	needed := boardSize - board.CountCards()
	if needed == 0 {
		scoreDeal(assigned, board, results)
		return nil
	}

	remaining := poker.RemainingDeck(used).Cards()
	var walk func(start, left int, acc poker.Hand)
	walk = func(start, left int, acc poker.Hand) {
		if left == 0 {
			scoreDeal(assigned, board.Union(acc), results)
			return
		}
		for i := start; i <= len(remaining)-left; i++ {
			walk(i+1, left-1, acc.Add(remaining[i]))
		}
	}
	walk(0, needed, 0)
	return nil
}

// scoreDeal evaluates every player's 7-card hand for one complete deal and
// distributes the pot unit across results, splitting ties equally.
func scoreDeal(assigned []poker.Hand, fullBoard poker.Hand, results []Result) {
	n := len(assigned)
	ranksOf := make([]poker.HandRank, n)
	best := poker.HandRank(0)
	for i, hole := range assigned {
		r := poker.Evaluate7(hole.Union(fullBoard))
		ranksOf[i] = r
		if r > best {
			best = r
		}
	}
	winners := 0
	for _, r := range ranksOf {
		if r == best {
			winners++
		}
	}
	share := 1.0 / float64(winners)
	for i, r := range ranksOf {
		results[i].Deals++
		if r == best {
			results[i].Wins += share
		}
	}
}

// MonteCarlo draws iterations random deals consistent with playerRanges and
// board, accumulating the same win/tie statistics as Exact but far more
// cheaply for large remaining-deck sizes. Work is split across
// runtime.NumCPU (capped at 8) workers, each seeded independently from rng
// so results are reproducible for a given seed regardless of GOMAXPROCS.
func MonteCarlo(ctx context.Context, playerRanges []*ranges.Range, board poker.Hand, iterations int, rng *rand.Rand) ([]Result, error) {
	n := len(playerRanges)
	if n < 2 {
		return nil, fmt.Errorf("equity: need at least 2 player ranges, got %d", n)
	}
	if board.CountCards() > boardSize {
		return nil, fmt.Errorf("equity: board has more than %d cards", boardSize)
	}

	workers := runtime.NumCPU()
	if workers > 8 {
		workers = 8
	}
	if workers > iterations {
		workers = max(1, iterations)
	}

	perWorker := iterations / workers
	remainder := iterations % workers

	g, gctx := errgroup.WithContext(ctx)
	var mu sync.Mutex
	totals := make([]Result, n)

	for w := 0; w < workers; w++ {
		workerIters := perWorker
		if w < remainder {
			workerIters++
		}
		if workerIters == 0 {
			continue
		}
		workerSeed := rng.Int63()
		g.Go(func() error {
			workerRng := rand.New(rand.NewSource(workerSeed))
			local, err := sampleDeals(gctx, playerRanges, board, workerIters, workerRng)
			if err != nil {
				return err
			}
			mu.Lock()
			for i := range totals {
				totals[i].Wins += local[i].Wins
				totals[i].Deals += local[i].Deals
			}
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return totals, nil
}

// sampleDeals draws iterations deals on a single goroutine.
func sampleDeals(ctx context.Context, playerRanges []*ranges.Range, board poker.Hand, iterations int, rng *rand.Rand) ([]Result, error) {
	n := len(playerRanges)
	results := make([]Result, n)
	combos := make([][]poker.Hand, n)
	for i, r := range playerRanges {
		combos[i] = r.Combos()
	}

	assigned := make([]poker.Hand, n)
	for iter := 0; iter < iterations; iter++ {
		select {
		case <-ctx.Done():
			return results, ctx.Err()
		default:
		}

		used, ok := sampleAssignment(combos, board, assigned, rng)
		if !ok {
			continue // unsatisfiable draw, does not count toward the denominator
		}

		remaining := poker.RemainingDeck(used).Cards()
		needed := boardSize - board.CountCards()
		fullBoard := board
		pick := remaining
		for i := 0; i < needed; i++ {
			idx := rng.Intn(len(pick))
			fullBoard = fullBoard.Add(pick[idx])
			pick[idx] = pick[len(pick)-1]
			pick = pick[:len(pick)-1]
		}

		scoreDeal(assigned, fullBoard, results)
	}
	return results, nil
}

// sampleAssignment tries (with bounded retries) to draw one non-overlapping
// combo per player from combos, writing the choice into assigned.
func sampleAssignment(combos [][]poker.Hand, board poker.Hand, assigned []poker.Hand, rng *rand.Rand) (used poker.Hand, ok bool) {
	for attempt := 0; attempt < maxRetries; attempt++ {
		used = board
		success := true
		for i, cs := range combos {
			picked, found := pickNonOverlapping(cs, used, rng)
			if !found {
				success = false
				break
			}
			assigned[i] = picked
			used = used.Union(picked)
		}
		if success {
			return used, true
		}
	}
	return 0, false
}

func pickNonOverlapping(combos []poker.Hand, used poker.Hand, rng *rand.Rand) (poker.Hand, bool) {
	if len(combos) == 0 {
		return 0, false
	}
	start := rng.Intn(len(combos))
	for i := 0; i < len(combos); i++ {
		c := combos[(start+i)%len(combos)]
		if c.Intersect(used) == 0 {
			return c, true
		}
	}
	return 0, false
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
