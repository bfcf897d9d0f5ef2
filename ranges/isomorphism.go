package ranges

import (
	"sort"

	"github.com/lox/holdem-eval/poker"
)

// canonicalSuitOrder is the fixed target ordering suits are mapped onto.
var canonicalSuitOrder = [poker.NumSuits]poker.Suit{poker.Clubs, poker.Diamonds, poker.Hearts, poker.Spades}

// Canonicalize collapses (hole, board) pairs that are equivalent under
// relabeling the four suits onto a single bit-identical representative.
// It counts board suit occurrences, forces the hole cards' suits into the
// first two mapping slots (low hole card first, high hole card second),
// breaks remaining ties by original suit ordinal, and remaps every card
// through the resulting permutation. Because ties keep the original suit
// order, two inputs that differ only by swapping suits that tie (equal board
// counts outside the hole suits, or the two suits of a pocket pair) can
// produce different canonical forms.
func Canonicalize(hole, board poker.Hand) (canonHole, canonBoard poker.Hand) {
	perm := suitPermutation(hole, board)
	return remap(hole, perm), remap(board, perm)
}

// suitPermutation computes the suit -> suit mapping described above and
// returns it indexed by original suit.
func suitPermutation(hole, board poker.Hand) [poker.NumSuits]poker.Suit {
	const (
		highBonus = int64(1) << 32
		lowBonus  = highBonus - 1
	)

	var counts [poker.NumSuits]int64
	for s := poker.Suit(0); s < poker.NumSuits; s++ {
		counts[s] = int64(popcount16(board.GetSuitMask(s)))
	}

	cards := hole.Cards()
	if len(cards) == 2 {
		lo, hi := cards[0], cards[1]
		if lo.Rank() > hi.Rank() {
			lo, hi = hi, lo
		}
		loSuit, hiSuit := lo.Suit(), hi.Suit()
		counts[loSuit] = highBonus
		if hiSuit != loSuit {
			counts[hiSuit] = lowBonus
		}
	}

	order := make([]poker.Suit, poker.NumSuits)
	for s := range order {
		order[s] = poker.Suit(s)
	}
	sort.SliceStable(order, func(i, j int) bool {
		if counts[order[i]] != counts[order[j]] {
			return counts[order[i]] > counts[order[j]]
		}
		return order[i] < order[j]
	})

	var perm [poker.NumSuits]poker.Suit
	for target, original := range order {
		perm[original] = canonicalSuitOrder[target]
	}
	return perm
}

func remap(h poker.Hand, perm [poker.NumSuits]poker.Suit) poker.Hand {
	var out poker.Hand
	for _, c := range h.Cards() {
		out = out.Add(poker.NewCard(c.Rank(), perm[c.Suit()]))
	}
	return out
}

func popcount16(mask uint16) int {
	count := 0
	for mask != 0 {
		mask &= mask - 1
		count++
	}
	return count
}
