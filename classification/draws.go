package classification

import (
	"math/bits"

	"github.com/lox/holdem-eval/poker"
)

// DrawType enumerates the recognized draw shapes a hand can carry.
type DrawType int

const (
	FlushDraw DrawType = iota
	NutFlushDraw
	OpenEndedStraightDraw
	Gutshot
	DoubleGutshot
	ComboDraw
	BackdoorFlush
	BackdoorStraight
	Overcards
	NoDraw
)

func (dt DrawType) String() string {
	switch dt {
	case FlushDraw:
		return "flush draw"
	case NutFlushDraw:
		return "nut flush draw"
	case OpenEndedStraightDraw:
		return "open-ended straight draw"
	case Gutshot:
		return "gutshot"
	case DoubleGutshot:
		return "double gutshot"
	case ComboDraw:
		return "combo draw"
	case BackdoorFlush:
		return "backdoor flush"
	case BackdoorStraight:
		return "backdoor straight"
	case Overcards:
		return "overcards"
	case NoDraw:
		return "no draw"
	default:
		return "unknown"
	}
}

// DrawInfo is the result of classifying a hole-card/board combination's
// draws: which shapes are present, and the deduplicated out count (a card
// that completes two draws at once, e.g. a combo draw, is only counted
// once).
type DrawInfo struct {
	Draws   []DrawType
	Outs    int
	NutOuts int
}

// HasStrongDraw reports whether any of the draws present is generally
// considered strong enough to continue for (8+ outs).
func (d DrawInfo) HasStrongDraw() bool {
	for _, draw := range d.Draws {
		switch draw {
		case FlushDraw, NutFlushDraw, OpenEndedStraightDraw, ComboDraw:
			return true
		}
	}
	return false
}

// HasWeakDraw reports whether only marginal draws are present.
func (d DrawInfo) HasWeakDraw() bool {
	for _, draw := range d.Draws {
		switch draw {
		case Gutshot, BackdoorFlush, BackdoorStraight, Overcards:
			return true
		}
	}
	return false
}

// IsComboDraw reports whether multiple distinct draws combine into 12+ outs.
func (d DrawInfo) IsComboDraw() bool {
	return len(d.Draws) >= 2 && d.Outs >= 12
}

// DetectDraws classifies every draw a hole-card pair has against a board
// of 3 or more cards. Outs across different draw types are unioned through
// a bitmask before counting, so a card that completes more than one draw
// shape is never counted twice.
func DetectDraws(holeCards, board poker.Hand) DrawInfo {
	if board.CountCards() < 3 {
		return DrawInfo{Draws: []DrawType{NoDraw}}
	}

	var draws []DrawType
	var outsMask, nutOutsMask poker.Hand

	allCards := holeCards.Union(board)

	flush := detectFlushDraw(holeCards, board)
	if flush.HasFlushDraw {
		if flush.IsNutFlushDraw {
			draws = append(draws, NutFlushDraw)
			nutOutsMask = nutOutsMask.Union(flush.OutsMask)
		} else {
			draws = append(draws, FlushDraw)
		}
		outsMask = outsMask.Union(flush.OutsMask)
	}

	straight := detectStraightDraws(holeCards, board)
	if straight.HasOESD {
		draws = append(draws, OpenEndedStraightDraw)
		outsMask = outsMask.Union(straight.OESDOutsMask)
	}
	if straight.HasGutshot {
		draws = append(draws, Gutshot)
		outsMask = outsMask.Union(straight.GutshotOutsMask)
	}

	if board.CountCards() == 3 {
		if detectBackdoorFlush(holeCards, board) {
			draws = append(draws, BackdoorFlush)
		}
	}

	if !flush.HasFlushDraw && !straight.HasOESD {
		overs := detectOvercards(holeCards, board, allCards)
		if overs.HasOvercards {
			draws = append(draws, Overcards)
			outsMask = outsMask.Union(overs.OutsMask)
		}
	}

	totalOuts := outsMask.CountCards()
	nutOuts := nutOutsMask.CountCards()

	if len(draws) >= 2 && totalOuts >= 12 {
		draws = append(draws, ComboDraw)
	}
	if len(draws) == 0 {
		draws = []DrawType{NoDraw}
	}

	return DrawInfo{Draws: draws, Outs: totalOuts, NutOuts: nutOuts}
}

type flushDrawResult struct {
	HasFlushDraw   bool
	IsNutFlushDraw bool
	OutsMask       poker.Hand
}

type straightDrawResult struct {
	HasOESD         bool
	HasGutshot      bool
	OESDOutsMask    poker.Hand
	GutshotOutsMask poker.Hand
}

type overcardsResult struct {
	HasOvercards bool
	OutsMask     poker.Hand
}

// detectFlushDraw looks for a suit with exactly 4 cards total (hole+board,
// with at least one hole card) — a live draw to a 5-card flush.
func detectFlushDraw(holeCards, board poker.Hand) flushDrawResult {
	for suit := poker.Suit(0); suit < poker.NumSuits; suit++ {
		holeMask := holeCards.GetSuitMask(suit)
		boardMask := board.GetSuitMask(suit)
		holeCount := bits.OnesCount16(holeMask)
		total := holeCount + bits.OnesCount16(boardMask)

		if total == 4 && holeCount > 0 {
			usedMask := holeMask | boardMask
			availableMask := uint16(0x1FFF) &^ usedMask
			outs := poker.Hand(availableMask) << (uint(suit) * poker.NumRanks)
			return flushDrawResult{
				HasFlushDraw:   true,
				IsNutFlushDraw: holeMask&(1<<poker.Ace) != 0,
				OutsMask:       outs,
			}
		}
	}
	return flushDrawResult{}
}

// detectStraightDraws scans the combined rank mask for 4-in-a-row windows
// open on both ends (open-ended, 8 outs) and 4-of-5 windows missing one
// inside rank (gutshot, 4 outs).
func detectStraightDraws(holeCards, board poker.Hand) straightDrawResult {
	rankMask := holeCards.Union(board).GetRankMask()
	var info straightDrawResult

	for start := 0; start <= 9; start++ {
		consecutive := 0
		for i := 0; i < 4; i++ {
			if rankMask&(1<<(start+i)) != 0 {
				consecutive++
			}
		}
		if consecutive != 4 {
			continue
		}
		lowRank, highRank := start-1, start+4
		if lowRank < 0 {
			lowRank = int(poker.Ace) // 2-3-4-5 is open to the ace below
		}
		if highRank > int(poker.Ace) {
			continue
		}
		if rankMask&(1<<lowRank) == 0 && rankMask&(1<<highRank) == 0 {
			info.HasOESD = true
			for suit := poker.Suit(0); suit < poker.NumSuits; suit++ {
				info.OESDOutsMask = info.OESDOutsMask.Add(poker.NewCard(poker.Rank(lowRank), suit))
				info.OESDOutsMask = info.OESDOutsMask.Add(poker.NewCard(poker.Rank(highRank), suit))
			}
		}
	}

	for start := 0; start <= 8 && !info.HasGutshot; start++ {
		var present []int
		for i := 0; i < 5; i++ {
			if rankMask&(1<<(start+i)) != 0 {
				present = append(present, start+i)
			}
		}
		if len(present) != 4 {
			continue
		}
		first, last := present[0], present[len(present)-1]
		if last-first == 3 {
			// Already covered by OESD logic; both outer ranks open means
			// this is an open-ended draw, not a gutshot.
			lowOut, highOut := first-1, last+1
			if first == 0 {
				lowOut = int(poker.Ace)
			}
			lowOpen := lowOut >= 0 && lowOut <= int(poker.Ace) && rankMask&(1<<lowOut) == 0
			highOpen := highOut >= 0 && highOut <= int(poker.Ace) && rankMask&(1<<highOut) == 0
			if lowOpen && highOpen {
				continue
			}
		}
		missing := -1
		for rank := start; rank < start+5; rank++ {
			found := false
			for _, p := range present {
				if p == rank {
					found = true
					break
				}
			}
			if !found {
				missing = rank
				break
			}
		}
		if missing < 0 {
			continue
		}
		info.HasGutshot = true
		for suit := poker.Suit(0); suit < poker.NumSuits; suit++ {
			info.GutshotOutsMask = info.GutshotOutsMask.Add(poker.NewCard(poker.Rank(missing), suit))
		}
	}

	return info
}

// detectBackdoorFlush reports a three-card flush draw on the flop (needs
// running suited cards on turn and river) with at least one hole card.
func detectBackdoorFlush(holeCards, board poker.Hand) bool {
	if board.CountCards() != 3 {
		return false
	}
	for suit := poker.Suit(0); suit < poker.NumSuits; suit++ {
		holeCount := bits.OnesCount16(holeCards.GetSuitMask(suit))
		boardCount := bits.OnesCount16(board.GetSuitMask(suit))
		if holeCount >= 1 && holeCount+boardCount == 3 {
			return true
		}
	}
	return false
}

func detectOvercards(holeCards, board, used poker.Hand) overcardsResult {
	boardRanks := board.GetRankMask()
	highestBoardRank := -1
	for rank := 12; rank >= 0; rank-- {
		if boardRanks&(1<<rank) != 0 {
			highestBoardRank = rank
			break
		}
	}

	holeRanks := holeCards.GetRankMask()
	var outs poker.Hand
	for rank := highestBoardRank + 1; rank < poker.NumRanks; rank++ {
		if holeRanks&(1<<rank) == 0 {
			continue
		}
		for suit := poker.Suit(0); suit < poker.NumSuits; suit++ {
			c := poker.NewCard(poker.Rank(rank), suit)
			if !used.Has(c) {
				outs = outs.Add(c)
			}
		}
	}

	return overcardsResult{HasOvercards: outs.CountCards() > 0, OutsMask: outs}
}
