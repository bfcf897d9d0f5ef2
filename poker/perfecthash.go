package poker

//go:generate go run ./hashgen

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math/bits"
	"sync"

	"github.com/opencoff/go-chd"
)

// ErrTablesUnavailable wraps any failure building the perfect-hash tables.
// It is the one fatal, non-recoverable error condition in this package: a
// table-build failure is a resource-acquisition problem, not a caller input
// error, so there is no silent fallback to the reference evaluator once it
// occurs. LoadTables returns it directly for callers that want to check it
// at startup; Evaluate7 panics with it wrapped, since its own signature has
// no room for an error return.
var ErrTablesUnavailable = errors.New("poker: perfect-hash tables unavailable")

// RankBase[r] is 5^r. A 13-digit base-5 number built from per-rank card
// counts (each 0-4) is a bijection between rank-count histograms and
// integers, because every digit fits the base with room to spare - so it
// doubles as the hash table's value key without any extra encoding step.
var RankBase = func() [NumRanks]uint64 {
	var base [NumRanks]uint64
	base[0] = 1
	for r := 1; r < NumRanks; r++ {
		base[r] = base[r-1] * 5
	}
	return base
}()

// valueKey folds a per-rank card-count histogram into its base-5 key.
func valueKey(counts [NumRanks]uint8) uint64 {
	var key uint64
	for r, c := range counts {
		key += uint64(c) * RankBase[r]
	}
	return key
}

// tables holds the perfect-hash index and the two lookup arrays it
// addresses: LOOKUP for non-flush hands (keyed by the CHD over value
// keys) and LOOKUP_FLUSH for flush/straight-flush hands (keyed directly by
// the 13-bit suit rank mask, no hashing needed since there are only 8192
// of them).
// mphIndex is the subset of github.com/opencoff/go-chd's *CHD that
// buildTables/Evaluate7 depend on, narrowed to an interface so the rest of
// this file only needs Find's signature, not the library's full surface.
type mphIndex interface {
	Find(key []byte) uint64
}

type tables struct {
	mph         mphIndex
	lookup      []uint32 // indexed by mph.Find(key) -> HandRank
	lookupFlush [1 << NumRanks]uint32
}

var (
	tablesOnce   sync.Once
	loadedTables *tables
	tablesErr    error
)

// LoadTables builds the perfect-hash tables and memoizes the result (or
// failure) for the lifetime of the process. Call it explicitly at startup
// to surface ErrTablesUnavailable before serving any evaluation traffic;
// Evaluate7 calls it lazily on first use and panics on failure, since by
// this package's error policy a missing lookup table is fatal, not a
// degraded mode to fall back from.
func LoadTables() error {
	tablesOnce.Do(func() {
		loadedTables, tablesErr = buildTables()
	})
	return tablesErr
}

// mustTables is Evaluate7's entry point into LoadTables: it panics,
// wrapping ErrTablesUnavailable, rather than returning a usable-but-empty
// table, so a build failure can never be mistaken for a legitimately weak
// hand.
func mustTables() *tables {
	if err := LoadTables(); err != nil {
		panic(err)
	}
	return loadedTables
}

// buildTables enumerates every reachable rank-count histogram for a 5, 6,
// or 7 card hand, computes its reference HandRank via a flush-free
// representative deal, and compresses the resulting key set with a CHD
// minimal perfect hash. The flush table is filled directly since its
// domain (every 13-bit mask) is small enough to address without hashing.
//
// This is a pure in-process build — poker/hashgen exercises the identical
// path offline (both call enumerateHistograms/histogramRank) purely to
// validate it builds cleanly in CI; there is no separate persisted artifact
// to load instead. Construction is deterministic, so redoing it on every
// process start is safe; a CHD construction failure is reported to the
// caller rather than degrading to a flush-only table, per this package's
// no-silent-fallback error policy.
func buildTables() (*tables, error) {
	histograms := enumerateHistograms()

	keys := make([][]byte, 0, len(histograms))
	ranks := make([]uint32, 0, len(histograms))
	for _, h := range histograms {
		var buf [8]byte
		binary.BigEndian.PutUint64(buf[:], valueKey(h))
		keys = append(keys, buf[:])
		ranks = append(ranks, uint32(histogramRank(h)))
	}

	builder, err := chd.New(keys)
	if err != nil {
		return nil, fmt.Errorf("%w: building CHD over %d keys: %v", ErrTablesUnavailable, len(keys), err)
	}

	lookup := make([]uint32, len(keys))
	for i, k := range keys {
		lookup[builder.Find(k)] = ranks[i]
	}

	return &tables{
		mph:         builder,
		lookup:      lookup,
		lookupFlush: buildFlushTable(),
	}, nil
}

// buildFlushTable precomputes the flush/straight-flush HandRank for every
// possible 13-bit suit rank mask; masks with fewer than five bits are left
// zero and never consulted (Evaluate7 only probes this table once a suit's
// popcount is >=5).
func buildFlushTable() [1 << NumRanks]uint32 {
	var t [1 << NumRanks]uint32
	for mask := 0; mask < (1 << NumRanks); mask++ {
		if bits.OnesCount(uint(mask)) < 5 {
			continue
		}
		t[mask] = uint32(flushRankFromSuitMask(uint16(mask)))
	}
	return t
}

// enumerateHistograms walks every per-rank count vector (each rank 0-4
// copies) whose total lies in 5..7, i.e. every distinct rank-count shape a
// 5, 6, or 7 card hand can present to the non-flush path.
func enumerateHistograms() [][NumRanks]uint8 {
	var out [][NumRanks]uint8
	var counts [NumRanks]uint8
	var walk func(rank, total int)
	walk = func(rank, total int) {
		if rank == NumRanks {
			if total >= 5 && total <= 7 {
				cp := counts
				out = append(out, cp)
			}
			return
		}
		// Prune branches that have already exceeded 7 cards; the base case
		// rejects anything that falls short of 5 once all ranks are placed.
		for c := 0; c <= 4 && total+c <= 7; c++ {
			counts[rank] = uint8(c)
			walk(rank+1, total+c)
		}
		counts[rank] = 0
	}
	walk(0, 0)
	return out
}

// histogramRank computes the reference HandRank for a rank-count
// histogram by dealing a representative hand that is guaranteed flush-free
// (cards are round-robined across all four suits, so no suit ever receives
// more than ceil(7/4)=2 of them) and running it through
// evaluateReference. Building the table this
// way means the fast path can never disagree with the reference evaluator.
func histogramRank(counts [NumRanks]uint8) HandRank {
	var h Hand
	suit := Suit(0)
	for rank := 0; rank < NumRanks; rank++ {
		for c := uint8(0); c < counts[rank]; c++ {
			h = h.Add(NewCard(Rank(rank), suit))
			suit = (suit + 1) % NumSuits
		}
	}
	return evaluateReference(h)
}

// Evaluate7 evaluates the best 5-card hand obtainable from a 5, 6, or 7
// card Hand via the perfect-hash-backed fast path. It panics, wrapping
// ErrTablesUnavailable, if the perfect-hash tables never successfully
// built — see LoadTables.
func Evaluate7(hand Hand) HandRank {
	n := hand.CountCards()
	if n < 5 || n > 7 {
		return 0
	}

	t := mustTables()

	var best uint32
	isFlush := false
	for suit := Suit(0); suit < NumSuits; suit++ {
		mask := hand.GetSuitMask(suit)
		if bits.OnesCount16(mask) >= 5 {
			if r := t.lookupFlush[mask]; r > best {
				best = r
				isFlush = true
			}
		}
	}
	if isFlush {
		return HandRank(best)
	}

	var counts [NumRanks]uint8
	for _, c := range hand.Cards() {
		counts[c.Rank()]++
	}
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], valueKey(counts))
	idx := t.mph.Find(buf[:])
	if idx >= uint64(len(t.lookup)) {
		// Every reachable non-flush rank histogram for a 5..7 card hand is
		// in enumerateHistograms' output, so a successfully built table
		// always has an entry for any valueKey Evaluate7 can construct.
		// Landing here means that invariant broke, not that the hand is
		// unrankable.
		panic(fmt.Sprintf("poker: perfect-hash index %d out of range for %d-entry lookup table", idx, len(t.lookup)))
	}
	return HandRank(t.lookup[idx])
}

// WarmTables forces the perfect-hash tables to build immediately instead of
// on first Evaluate7 call, and reports whether the build succeeded along
// with the size of its non-flush key set. poker/hashgen calls this to
// validate a build offline without panicking; callers that only care about
// evaluation correctness never need to call it, since Evaluate7 builds the
// tables itself on first use.
func WarmTables() (nonFlushKeys int, fastPathReady bool) {
	if err := LoadTables(); err != nil {
		return 0, false
	}
	return len(loadedTables.lookup), true
}
