// Package classification provides read-only analysis over poker.Hand
// values: board texture (how coordinated a board is) and partial-rank
// draw detection for a hole-card and board combination. Neither depends on
// the 7-card evaluator; both work directly off rank/suit bitmasks so they
// stay cheap enough to call once per candidate action.
package classification

import (
	"math/bits"

	"github.com/lox/holdem-eval/poker"
)

// BoardTexture is the "wetness" of a poker board from dry to very wet.
type BoardTexture int

const (
	Dry BoardTexture = iota
	SemiWet
	Wet
	VeryWet
)

func (bt BoardTexture) String() string {
	switch bt {
	case Dry:
		return "dry"
	case SemiWet:
		return "semi-wet"
	case Wet:
		return "wet"
	case VeryWet:
		return "very wet"
	default:
		return "unknown"
	}
}

// FlushInfo describes flush potential on a board.
type FlushInfo struct {
	MaxSuitCount int
	DominantSuit *poker.Suit
	IsMonotone   bool // single suit, 3+ cards
	IsRainbow    bool // all different suits
}

// StraightInfo describes straight potential on a board.
type StraightInfo struct {
	ConnectedCards int // longest run of connected ranks
	Gaps           int // total missing ranks between the board's distinct ranks
	HasAce         bool
	BroadwayCards  int // count of T, J, Q, K, A
}

// AnalyzeBoardTexture scores how coordinated/dangerous a board is.
func AnalyzeBoardTexture(board poker.Hand) BoardTexture {
	if board.CountCards() < 3 {
		return Dry
	}

	var wetness int

	flushInfo := AnalyzeFlushPotential(board)
	switch {
	case flushInfo.IsMonotone:
		wetness += 4
	case flushInfo.MaxSuitCount >= 4:
		wetness += 4
	case flushInfo.MaxSuitCount == 3:
		wetness += 3
	case flushInfo.MaxSuitCount == 2:
		wetness += 1
	}

	straightInfo := AnalyzeStraightPotential(board)
	switch {
	case straightInfo.ConnectedCards >= 4:
		wetness += 4
	case straightInfo.ConnectedCards == 3:
		wetness += 3
	case straightInfo.ConnectedCards == 2:
		wetness += 1
	}

	if countBoardPairs(board) >= 1 {
		wetness += 1
	}
	if countHighCards(board) >= 3 {
		wetness += 1
	}

	switch {
	case wetness <= 0:
		return Dry
	case wetness <= 3:
		return SemiWet
	case wetness <= 5:
		return Wet
	default:
		return VeryWet
	}
}

// AnalyzeFlushPotential examines the per-suit rank masks of a board and
// reports the most represented suit, breaking count ties by whichever suit
// holds the higher top card.
func AnalyzeFlushPotential(board poker.Hand) FlushInfo {
	var suitCounts [poker.NumSuits]int
	var suitMasks [poker.NumSuits]uint16

	for suit := poker.Suit(0); suit < poker.NumSuits; suit++ {
		mask := board.GetSuitMask(suit)
		suitCounts[suit] = bits.OnesCount16(mask)
		suitMasks[suit] = mask
	}

	var maxCount int
	var dominantSuit *poker.Suit
	bestRankForSuit := -1
	nonZeroSuits := 0

	for suit := len(suitCounts) - 1; suit >= 0; suit-- {
		count := suitCounts[suit]
		if count == 0 {
			continue
		}
		nonZeroSuits++

		highestRank := bits.Len16(suitMasks[suit]) - 1

		if count > maxCount || (count == maxCount && highestRank > bestRankForSuit) {
			maxCount = count
			bestRankForSuit = highestRank
			s := poker.Suit(suit)
			dominantSuit = &s
		}
	}

	cardCount := board.CountCards()

	return FlushInfo{
		MaxSuitCount: maxCount,
		DominantSuit: dominantSuit,
		IsMonotone:   nonZeroSuits == 1 && cardCount >= 3,
		IsRainbow:    nonZeroSuits == cardCount && cardCount >= 3,
	}
}

// AnalyzeStraightPotential examines the board's combined rank mask for
// connectivity, including wheel (A-2-3-4-5) wraparound.
func AnalyzeStraightPotential(board poker.Hand) StraightInfo {
	cardCount := board.CountCards()
	if cardCount == 0 {
		return StraightInfo{}
	}

	rankMask := board.GetRankMask()
	hasAce := rankMask&(1<<poker.Ace) != 0

	if cardCount == 1 {
		broadway := 0
		if hasAce {
			broadway = 1
		}
		return StraightInfo{ConnectedCards: 1, HasAce: hasAce, BroadwayCards: broadway}
	}

	broadwayCount := 0
	for rank := poker.Ten; rank <= poker.Ace; rank++ {
		if rankMask&(1<<rank) != 0 {
			broadwayCount++
		}
	}

	var ranks []int
	for rank := 0; rank < poker.NumRanks; rank++ {
		if rankMask&(1<<rank) != 0 {
			ranks = append(ranks, rank)
		}
	}

	maxConnected := 1
	currentConnected := 1
	totalGaps := 0

	for i := 1; i < len(ranks); i++ {
		gap := ranks[i] - ranks[i-1] - 1
		if gap == 0 {
			currentConnected++
			continue
		}
		if currentConnected > maxConnected {
			maxConnected = currentConnected
		}
		currentConnected = 1
		totalGaps += gap
	}
	if currentConnected > maxConnected {
		maxConnected = currentConnected
	}

	if hasAce {
		var lowRanks []int
		for _, r := range ranks {
			if r <= 3 {
				lowRanks = append(lowRanks, r)
			}
		}
		if len(lowRanks) >= 2 {
			wheelRanks := append([]int{-1}, lowRanks...)
			wheelConnected, wheelMax := 1, 1
			for i := 1; i < len(wheelRanks); i++ {
				if wheelRanks[i]-wheelRanks[i-1] == 1 {
					wheelConnected++
				} else {
					if wheelConnected > wheelMax {
						wheelMax = wheelConnected
					}
					wheelConnected = 1
				}
			}
			if wheelConnected > wheelMax {
				wheelMax = wheelConnected
			}
			if wheelMax > maxConnected {
				maxConnected = wheelMax
			}
		}
	}

	return StraightInfo{
		ConnectedCards: maxConnected,
		Gaps:           totalGaps,
		HasAce:         hasAce,
		BroadwayCards:  broadwayCount,
	}
}

func countBoardPairs(board poker.Hand) int {
	var counts [poker.NumRanks]int
	for suit := poker.Suit(0); suit < poker.NumSuits; suit++ {
		mask := board.GetSuitMask(suit)
		for rank := 0; rank < poker.NumRanks; rank++ {
			if mask&(1<<rank) != 0 {
				counts[rank]++
			}
		}
	}
	pairs := 0
	for _, c := range counts {
		if c >= 2 {
			pairs++
		}
	}
	return pairs
}

func countHighCards(board poker.Hand) int {
	count := 0
	for suit := poker.Suit(0); suit < poker.NumSuits; suit++ {
		mask := board.GetSuitMask(suit)
		count += bits.OnesCount16(mask & 0x1F00) // ranks T-A
	}
	return count
}
