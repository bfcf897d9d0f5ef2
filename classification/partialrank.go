package classification

import (
	"math/bits"

	"github.com/lox/holdem-eval/poker"
)

// StraightDrawKind distinguishes how a straight draw is shaped.
type StraightDrawKind int

const (
	NoStraightDraw StraightDrawKind = iota
	GutShot
	OpenEnded
	DoubleGutShot
)

func (k StraightDrawKind) String() string {
	switch k {
	case GutShot:
		return "gutshot"
	case OpenEnded:
		return "open-ended"
	case DoubleGutShot:
		return "double gutshot"
	default:
		return "none"
	}
}

// straightCompletion is one rank that, if dealt, finishes a straight whose
// top card is TopRank.
type straightCompletion struct {
	Rank    int
	TopRank int
}

// StraightDraw describes the hero's contribution to the board's straight
// potential.
type StraightDraw struct {
	Kind         StraightDrawKind
	MissingRanks []poker.Rank // ranks that complete the draw
	TopRank      poker.Rank   // highest resulting straight's top rank
	NumberAbove  int          // strictly better straights still drawable
}

// PairShape describes a made pair's relationship to the board: how many
// board singles sit strictly above/below it, and whether it has improved
// to a set or quads.
type PairShape struct {
	Rank          poker.Rank
	MadeSet       bool
	MadeQuads     bool
	NumberAbove   int
	NumberBelow   int
}

// Overcard is an unpaired hole card ranked above every board single.
type Overcard struct {
	Rank        poker.Rank
	NumberAbove int // always 0; present so callers don't special-case the field
}

// PartialRank aggregates everything DetectDraws, flush/straight potential,
// and pair/overcard classification can say about a hole-card pair against
// a partial or complete board — the single entry point equity heuristics
// and commentary consult instead of re-deriving each signal themselves.
type PartialRank struct {
	MadeFlush     bool
	FlushHighRank poker.Rank

	FlushDraw         bool
	NutFlushDraw      bool
	BackdoorFlushDraw bool

	Straight     StraightDraw
	PocketPair   *PairShape
	TopPair      *PairShape
	LowerPair    *PairShape
	Overcards    []Overcard
}

// AnalyzePartialRank classifies hole against board (0..5 board cards).
func AnalyzePartialRank(hole, board poker.Hand) PartialRank {
	var pr PartialRank

	pr.MadeFlush, pr.FlushHighRank = detectMadeFlush(hole, board)
	if !pr.MadeFlush {
		flush := detectFlushDraw(hole, board)
		pr.FlushDraw = flush.HasFlushDraw
		pr.NutFlushDraw = flush.IsNutFlushDraw
		pr.BackdoorFlushDraw = detectBackdoorFlush(hole, board)
	}

	pr.Straight = analyzeStraightDraw(hole, board)
	pr.PocketPair, pr.TopPair, pr.LowerPair = analyzePairs(hole, board)
	pr.Overcards = analyzeOvercards(hole, board)

	return pr
}

func detectMadeFlush(hole, board poker.Hand) (bool, poker.Rank) {
	for suit := poker.Suit(0); suit < poker.NumSuits; suit++ {
		holeMask := hole.GetSuitMask(suit)
		total := holeMask | board.GetSuitMask(suit)
		if bits.OnesCount16(total) >= 5 && holeMask != 0 {
			return true, poker.Rank(bits.Len16(holeMask) - 1)
		}
	}
	return false, 0
}

// analyzeStraightDraw enumerates every 5-rank window the combined hand
// partially covers and classifies the hero's best contribution.
func analyzeStraightDraw(hole, board poker.Hand) StraightDraw {
	rankMask := hole.Union(board).GetRankMask()
	holeRankMask := hole.GetRankMask()

	var completions []straightCompletion
	// windows indexed by their low rank; top = low+4, except the wheel
	// (A-2-3-4-5) whose top is conventionally rank 3 (five).
	for low := -1; low <= 8; low++ {
		var window [5]int
		for i := 0; i < 5; i++ {
			if low == -1 {
				// wheel: A,2,3,4,5
				ranks := [5]int{int(poker.Ace), 0, 1, 2, 3}
				window[i] = ranks[i]
			} else {
				window[i] = low + i
			}
		}
		present, missing := 0, -1
		for _, r := range window {
			if rankMask&(1<<uint(r)) != 0 {
				present++
			} else {
				missing = r
			}
		}
		if present != 4 {
			continue
		}
		top := window[4]
		if low == -1 {
			top = 3 // wheel plays five-high
		}
		// The hero must contribute at least one card to the window for it
		// to count as "their" draw rather than a pure board texture.
		contributes := false
		for _, r := range window {
			if holeRankMask&(1<<uint(r)) != 0 {
				contributes = true
				break
			}
		}
		if !contributes || missing < 0 {
			continue
		}
		completions = append(completions, straightCompletion{Rank: missing, TopRank: top})
	}

	if len(completions) == 0 {
		return StraightDraw{Kind: NoStraightDraw}
	}

	bestTop := completions[0].TopRank
	for _, c := range completions[1:] {
		if c.TopRank > bestTop {
			bestTop = c.TopRank
		}
	}

	distinctRanks := map[int]bool{}
	for _, c := range completions {
		distinctRanks[c.Rank] = true
	}

	kind := GutShot
	if len(distinctRanks) >= 2 {
		kind = DoubleGutShot
		// Two completing ranks at either end of an unbroken four-rank run
		// (the ace counting low below a 2-3-4-5 run) make an open-ended draw.
		if len(distinctRanks) == 2 {
			lo, hi := poker.NumRanks, -1
			for r := range distinctRanks {
				lo, hi = min(lo, r), max(hi, r)
			}
			if lo == 4 && hi == int(poker.Ace) && rankMask&0xF == 0xF {
				lo, hi = -1, 4
			}
			if hi-lo == 5 {
				kind = OpenEnded
			}
		}
	}

	numberAbove := 0
	for top := bestTop + 1; top < poker.NumRanks; top++ {
		if straightTopReachable(rankMask, int(top)) {
			numberAbove++
		}
	}

	missingRanks := make([]poker.Rank, 0, len(distinctRanks))
	for r := range distinctRanks {
		missingRanks = append(missingRanks, poker.Rank(r))
	}

	return StraightDraw{
		Kind:         kind,
		MissingRanks: missingRanks,
		TopRank:      poker.Rank(bestTop),
		NumberAbove:  numberAbove,
	}
}

// straightTopReachable reports whether a straight with the given top rank
// is still completable by one more card, given the ranks already seen.
func straightTopReachable(rankMask uint16, top int) bool {
	if top < 4 {
		return false
	}
	present, missing := 0, 0
	for r := top - 4; r <= top; r++ {
		if rankMask&(1<<uint(r)) != 0 {
			present++
		} else {
			missing++
		}
	}
	return present == 4 && missing == 1
}

// analyzePairs classifies the hole cards as a pocket pair and/or as
// pairing board singles (top pair / lower pair), per spec's overlap
// subtraction rule: when both hole cards pair distinct board singles, the
// two pairs don't count each other in number_above/number_below.
func analyzePairs(hole, board poker.Hand) (pocket, top, lower *PairShape) {
	cards := hole.Cards()
	if len(cards) != 2 {
		return nil, nil, nil
	}
	r1, r2 := cards[0].Rank(), cards[1].Rank()

	boardCounts := rankCounts(board)

	if r1 == r2 {
		shape := pairShapeFromBoard(r1, 2, boardCounts, nil)
		return &shape, nil, nil
	}

	var paired []poker.Rank
	var shapes []*PairShape
	for _, r := range []poker.Rank{r1, r2} {
		if boardCounts[r] > 0 {
			paired = append(paired, r)
		}
	}

	for _, r := range []poker.Rank{r1, r2} {
		if boardCounts[r] == 0 {
			continue
		}
		var excludeOther []poker.Rank
		for _, other := range paired {
			if other != r {
				excludeOther = append(excludeOther, other)
			}
		}
		shape := pairShapeFromBoard(r, 1, boardCounts, excludeOther)
		shapes = append(shapes, &shape)
	}

	switch len(shapes) {
	case 0:
		return nil, nil, nil
	case 1:
		return nil, shapes[0], nil
	default:
		if shapes[0].Rank < shapes[1].Rank {
			shapes[0], shapes[1] = shapes[1], shapes[0]
		}
		return nil, shapes[0], shapes[1]
	}
}

// pairShapeFromBoard combines holeCount (how many of the hero's hole
// cards already carry rank) with the board's count of that rank to decide
// whether the pair has improved to a set or quads. A pocket pair brings
// holeCount=2 so one matching board card already makes trips; a top/lower
// pair brings holeCount=1 so it takes two matching board cards.
func pairShapeFromBoard(rank poker.Rank, holeCount int, boardCounts [poker.NumRanks]int, exclude []poker.Rank) PairShape {
	shape := PairShape{Rank: rank}
	switch holeCount + boardCounts[rank] {
	case 4:
		shape.MadeQuads = true
	case 3:
		shape.MadeSet = true
	}

	for r := 0; r < poker.NumRanks; r++ {
		if poker.Rank(r) == rank || boardCounts[r] == 0 {
			continue
		}
		excluded := false
		for _, e := range exclude {
			if poker.Rank(r) == e {
				excluded = true
				break
			}
		}
		if excluded {
			continue
		}
		if poker.Rank(r) > rank {
			shape.NumberAbove++
		} else {
			shape.NumberBelow++
		}
	}
	return shape
}

func analyzeOvercards(hole, board poker.Hand) []Overcard {
	boardRanks := board.GetRankMask()
	highestBoard := -1
	for r := 12; r >= 0; r-- {
		if boardRanks&(1<<uint(r)) != 0 {
			highestBoard = r
			break
		}
	}

	var overs []Overcard
	for _, c := range hole.Cards() {
		if int(c.Rank()) > highestBoard {
			overs = append(overs, Overcard{Rank: c.Rank()})
		}
	}
	return overs
}

func rankCounts(h poker.Hand) [poker.NumRanks]int {
	var counts [poker.NumRanks]int
	for suit := poker.Suit(0); suit < poker.NumSuits; suit++ {
		mask := h.GetSuitMask(suit)
		for r := 0; r < poker.NumRanks; r++ {
			if mask&(1<<uint(r)) != 0 {
				counts[r]++
			}
		}
	}
	return counts
}
