package classification

import (
	"encoding/binary"

	"github.com/lox/holdem-eval/poker"
)

// CacheKey returns the 6-byte cache key for an AnalyzePartialRank result
// over a given hole-card pair and board: the same 4-byte big-endian board
// combinatorial index plus 2 canonical human card ordinals layout that
// equity.CacheKey uses, so a caller sharing one cache across both packages
// can key them identically. This package only analyzes; the cache itself is
// caller-owned.
func CacheKey(hole poker.Hand, board poker.Hand) [6]byte {
	cards := hole.Cards()
	var hi, lo poker.Card
	if len(cards) == 2 {
		hi, lo = poker.CanonicalHolePair(cards[0], cards[1])
	}

	var key [6]byte
	binary.BigEndian.PutUint32(key[:4], uint32(board.CombinatorialIndex()))
	key[4] = poker.EvalToHuman(hi)
	key[5] = poker.EvalToHuman(lo)
	return key
}
