package poker

import "sort"

// TotalHandRanks is the number of distinct 5-card hand-rank classes, i.e.
// the exclusive upper bound on HandRank.Ordinal(): every value in
// [0, TotalHandRanks) is reachable by some 5-card hand, and none outside it
// is. The per-family block sizes below are the standard poker hand-class
// counts (1277 high-card classes once the 10 straight-high rank-sets are
// excluded, 2860 one-pair classes, and so on) and sum to 7462.
const (
	familyHighCard      = 0
	familyPair          = familyHighCard + 1277
	familyTwoPair       = familyPair + 2860
	familyThreeOfAKind  = familyTwoPair + 858
	familyStraight      = familyThreeOfAKind + 858
	familyFlush         = familyStraight + 10
	familyFullHouse     = familyFlush + 1277
	familyFourOfAKind   = familyFullHouse + 156
	familyStraightFlush = familyFourOfAKind + 156

	TotalHandRanks = familyStraightFlush + 10
)

// straightCombIndices holds the five-rank combIndex of every one of the 10
// possible straights (ace-low through broadway), sorted ascending. HighCard
// and Flush share their kicker encoding with Straight and StraightFlush —
// any 5 ranks that happen to be consecutive are a straight, not a high
// card — so the dense high-card/flush ordinal has to skip over these 10
// positions to stay gapless.
var straightCombIndices = func() [10]int {
	highs := [10]int{3, 4, 5, 6, 7, 8, 9, 10, 11, 12}
	var out [10]int
	for i, s := range highs {
		ranks := []int{s - 4, s - 3, s - 2, s - 1, s}
		if s == 3 {
			// the wheel (A-2-3-4-5) is not 5 consecutive rank indices; Ace
			// sits at index 12, not index -1.
			ranks = []int{0, 1, 2, 3, 12}
		}
		out[i] = combIndex(ranks)
	}
	sort.Ints(out[:])
	return out
}()

// Family returns hr's hand-type family as a dense ordinal in 0..8, ascending
// with strength (0 = high card, 8 = straight flush) — the same order as the
// HandRank family constants, just compacted out of their bit-shifted form.
func (hr HandRank) Family() int {
	return int(hr.Type() >> 28)
}

// Ordinal returns hr's position in the dense, gapless strength ordering of
// all distinct 5-card hand-rank classes: 0 is the worst high card
// (7-5-4-3-2) and TotalHandRanks-1 is the royal flush. It decomposes
// HandRank's bit-packed rank fields (see the layout comment in
// evaluator.go) into a combinatorial-number-system index within the hand's
// family block, then adds the family's base offset — the same colex
// technique Hand.CombinatorialIndex uses to key a board into a dense cache
// index, applied here to a hand's kicker set instead of its card set.
//
// Ordinal is strictly monotonic with hr's own ordering: for any two
// HandRanks a and b, a > b iff a.Ordinal() > b.Ordinal().
func (hr HandRank) Ordinal() int {
	p := int((hr >> 24) & 0xF)
	s := int((hr >> 20) & 0xF)
	t := int((hr >> 16) & 0xF)
	q := int((hr >> 12) & 0xF)
	u := int((hr >> 8) & 0xF)

	switch hr.Type() {
	case HighCard:
		return familyHighCard + fiveKickerOrdinal(p, s, t, q, u)
	case Pair:
		kickers := compressAscending([]int{s, t, q}, p)
		return familyPair + p*nCr(12, 3) + combIndex(kickers)
	case TwoPair:
		hi, lo := p, s
		kicker := compressRank(t, hi, lo)
		return familyTwoPair + combIndex([]int{lo, hi})*11 + kicker
	case ThreeOfAKind:
		kickers := compressAscending([]int{s, t}, p)
		return familyThreeOfAKind + p*nCr(12, 2) + combIndex(kickers)
	case Straight:
		return familyStraight + (p - 3)
	case Flush:
		return familyFlush + fiveKickerOrdinal(p, s, t, q, u)
	case FullHouse:
		return familyFullHouse + p*12 + compressRank(s, p)
	case FourOfAKind:
		return familyFourOfAKind + p*12 + compressRank(s, p)
	case StraightFlush:
		return familyStraightFlush + (p - 3)
	default:
		return -1
	}
}

// fiveKickerOrdinal maps a 5-card high-card-or-flush kicker set (given in
// hr's stored descending order) to its dense position among the 1277
// non-straight 5-rank combinations.
func fiveKickerOrdinal(p, s, t, q, u int) int {
	idx := combIndex([]int{u, q, t, s, p})
	return idx - straightsBelow(idx)
}

func straightsBelow(idx int) int {
	n := 0
	for _, v := range straightCombIndices {
		if v < idx {
			n++
		}
	}
	return n
}

// compressRank maps rank into the index space left after removing the given
// excluded ranks from the 13-rank universe, i.e. rank minus the number of
// excluded values below it.
func compressRank(rank int, excluded ...int) int {
	c := rank
	for _, e := range excluded {
		if e < rank {
			c--
		}
	}
	return c
}

// compressAscending sorts vals ascending and compresses each through
// compressRank, for use as a combIndex argument once a hand's paired or
// tripped rank(s) have been removed from the kicker universe.
func compressAscending(vals []int, excluded ...int) []int {
	asc := append([]int(nil), vals...)
	sort.Ints(asc)
	out := make([]int, len(asc))
	for i, v := range asc {
		out[i] = compressRank(v, excluded...)
	}
	return out
}

// combIndex returns the combinatorial-number-system index of an
// ascending-sorted set of distinct ranks: sum_i C(ascending[i], i+1). This
// is colexicographic order on the set, which ranks by highest element
// first, then next-highest, exactly the way poker kickers compare.
func combIndex(ascending []int) int {
	idx := 0
	for i, v := range ascending {
		idx += nCr(v, i+1)
	}
	return idx
}

// nCr computes the binomial coefficient C(n,k), 0 for any out-of-range k.
func nCr(n, k int) int {
	if k < 0 || n < 0 || k > n {
		return 0
	}
	if k > n-k {
		k = n - k
	}
	result := 1
	for i := 1; i <= k; i++ {
		result = result * (n - k + i) / i
	}
	return result
}
