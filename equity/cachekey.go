package equity

import (
	"encoding/binary"

	"github.com/lox/holdem-eval/poker"
)

// CacheKey returns the 6-byte cache key for an equity computation over a
// given board and one player's unordered hole-card pair: a 4-byte
// big-endian board combinatorial index followed by the pair's two human
// card ordinals in canonical (higher-rank-first) order, so the same board
// and hole cards always key identically regardless of argument order. This
// module computes equity directly and ships no cache; the key layout exists
// for callers that want to memoize Exact/MonteCarlo results externally.
func CacheKey(board poker.Hand, hole1, hole2 poker.Card) [6]byte {
	hi, lo := poker.CanonicalHolePair(hole1, hole2)

	var key [6]byte
	binary.BigEndian.PutUint32(key[:4], uint32(board.CombinatorialIndex()))
	key[4] = poker.EvalToHuman(hi)
	key[5] = poker.EvalToHuman(lo)
	return key
}
