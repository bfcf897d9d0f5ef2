package game

import "sort"

// Pot is one layer of the pot: an amount contributed up to a single
// all-in level, and the seats still eligible to win it (those who put in
// at least this layer's level and have not folded).
type Pot struct {
	Amount   int
	Eligible []int
}

// PotManager accumulates collected bets into layered side pots across a
// hand's streets.
type PotManager struct {
	pots      []Pot
	collected []int // total chips this seat has contributed to pots so far
}

// NewPotManager starts tracking pot contributions for players.
func NewPotManager(players []*PlayerState) *PotManager {
	return &PotManager{collected: make([]int, len(players))}
}

// CollectBets folds each player's Bet (this street's wager) into their
// running TotalBet-based contribution record. Side-pot layering itself
// happens in CalculateSidePots, which looks at TotalBet directly, so this
// step only needs to exist for symmetry with the teacher's two-phase
// collect/calculate API — it is a no-op beyond that bookkeeping.
func (pm *PotManager) CollectBets(players []*PlayerState) {
	for i, p := range players {
		pm.collected[i] = p.TotalBet
	}
}

// CalculateSidePots rebuilds the pot layers from scratch based on each
// player's TotalBet this hand. It iterates distinct contribution levels in
// ascending order; at each level it forms a pot from every player's
// contribution up to that level (capped at what each contributed), credits
// it to whoever is still eligible (contributed at least that much and has
// not folded), and removes players who are capped out at this level from
// contention for the next, higher layer. This generalizes the teacher's
// two-pass all-in-totals approach to run uniformly for every layer,
// including the final uncapped one.
func (pm *PotManager) CalculateSidePots(players []*PlayerState) {
	levels := distinctLevels(players)

	pm.pots = nil
	prevLevel := 0
	for _, level := range levels {
		layerPerPlayer := level - prevLevel
		if layerPerPlayer <= 0 {
			continue
		}

		amount := 0
		var eligible []int
		for i, p := range players {
			if p.TotalBet <= prevLevel {
				continue
			}
			contribution := layerPerPlayer
			if p.TotalBet-prevLevel < layerPerPlayer {
				contribution = p.TotalBet - prevLevel
			}
			amount += contribution
			if !p.Folded && p.TotalBet >= level {
				eligible = append(eligible, i)
			}
		}
		if amount > 0 {
			pm.pots = append(pm.pots, Pot{Amount: amount, Eligible: eligible})
		}
		prevLevel = level
	}
}

// distinctLevels returns every non-folded player's TotalBet, deduplicated
// and sorted ascending — the boundaries between pot layers. Folded players'
// chips still flow into the layers they reach but never start a layer.
func distinctLevels(players []*PlayerState) []int {
	seen := make(map[int]bool)
	var levels []int
	for _, p := range players {
		if p.TotalBet > 0 && !p.Folded && !seen[p.TotalBet] {
			seen[p.TotalBet] = true
			levels = append(levels, p.TotalBet)
		}
	}
	sort.Ints(levels)
	return levels
}

// PotsWithUncollected returns the pot layers as last calculated. It exists
// as a named accessor (rather than exporting the field) so callers cannot
// mutate pot layering out from under side-pot bookkeeping.
func (pm *PotManager) PotsWithUncollected(players []*PlayerState) []Pot {
	return pm.pots
}

// Total returns the sum of every pot layer, i.e. the full pot this hand.
func (pm *PotManager) Total() int {
	total := 0
	for _, p := range pm.pots {
		total += p.Amount
	}
	return total
}

// SplitPotAmong divides a pot's amount evenly among winners, awarding any
// indivisible remainder to the winner(s) closest to seat order after the
// button — the module's resolution of the spec's uneven-split open
// question. numSeats is the table size, needed to wrap seat distance
// around the button correctly.
func SplitPotAmong(amount int, winners []int, button, numSeats int) map[int]int {
	shares := make(map[int]int)
	if len(winners) == 0 {
		return shares
	}
	base := amount / len(winners)
	remainder := amount % len(winners)

	ordered := make([]int, len(winners))
	copy(ordered, winners)
	sort.Slice(ordered, func(i, j int) bool {
		return seatDistance(ordered[i], button, numSeats) < seatDistance(ordered[j], button, numSeats)
	})

	for _, seat := range ordered {
		shares[seat] = base
	}
	for i := 0; i < remainder; i++ {
		shares[ordered[i]]++
	}
	return shares
}

// seatDistance returns how many seats clockwise from button seat lies,
// in [1, numSeats].
func seatDistance(seat, button, numSeats int) int {
	d := (seat - button + numSeats) % numSeats
	if d == 0 {
		d = numSeats
	}
	return d
}
