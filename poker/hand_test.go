package poker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHand_AddRemoveHas(t *testing.T) {
	t.Parallel()
	as := NewCard(Ace, Spades)
	kd := NewCard(King, Diamonds)

	h := NewHand(as, kd)
	assert.True(t, h.Has(as))
	assert.True(t, h.Has(kd))
	assert.Equal(t, 2, h.CountCards())

	h = h.Remove(as)
	assert.False(t, h.Has(as))
	assert.Equal(t, 1, h.CountCards())
}

func TestHand_GetSuitMask(t *testing.T) {
	t.Parallel()
	h := NewHand(NewCard(Two, Clubs), NewCard(Ace, Clubs), NewCard(King, Hearts))
	clubs := h.GetSuitMask(Clubs)
	assert.True(t, clubs&(1<<Two) != 0)
	assert.True(t, clubs&(1<<Ace) != 0)
	assert.Equal(t, uint16(0), h.GetSuitMask(Diamonds))

	hearts := h.GetSuitMask(Hearts)
	assert.Equal(t, uint16(1<<King), hearts)
}

func TestRemainingDeck(t *testing.T) {
	t.Parallel()
	used := NewHand(NewCard(Ace, Spades), NewCard(King, Spades))
	rem := RemainingDeck(used)
	assert.Equal(t, 50, rem.CountCards())
	assert.False(t, rem.Has(NewCard(Ace, Spades)))
	assert.True(t, rem.Has(NewCard(Two, Clubs)))
}

func TestCombinatorialIndex_DenseAndUnique(t *testing.T) {
	t.Parallel()
	seen := make(map[uint64]Hand)
	deck := NewDeck(nil)
	for i := 0; i < 500; i++ {
		deck.Shuffle()
		h := NewHand(deck.Deal(3)...)
		idx := h.CombinatorialIndex()
		require.Less(t, idx, uint64(22100)) // C(52,3)
		if other, ok := seen[idx]; ok {
			assert.Equal(t, other, h, "collision between distinct boards at index %d", idx)
		}
		seen[idx] = h
	}
}

func TestFullHoleIndex_Range(t *testing.T) {
	t.Parallel()
	seen := make(map[int]bool)
	for a := Card(0); a < 52; a++ {
		for b := a + 1; b < 52; b++ {
			idx := FullHoleIndex(a, b)
			require.GreaterOrEqual(t, idx, 0)
			require.Less(t, idx, 1326)
			assert.False(t, seen[idx], "duplicate full index %d for %s%s", idx, a, b)
			seen[idx] = true

			// Order shouldn't matter.
			assert.Equal(t, idx, FullHoleIndex(b, a))
		}
	}
	assert.Len(t, seen, 1326)
}

func TestSimpleHoleIndex_Range(t *testing.T) {
	t.Parallel()
	seen := make(map[int]bool)
	for r1 := Rank(0); r1 < NumRanks; r1++ {
		for r2 := Rank(0); r2 < NumRanks; r2++ {
			var idx int
			if r1 == r2 {
				idx = SimpleHoleIndex(NewCard(r1, Clubs), NewCard(r2, Diamonds))
			} else {
				idx = SimpleHoleIndex(NewCard(r1, Clubs), NewCard(r2, Clubs))
			}
			require.GreaterOrEqual(t, idx, 0)
			require.Less(t, idx, 169)
			seen[idx] = true
		}
	}
}
