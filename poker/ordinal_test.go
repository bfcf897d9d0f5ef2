package poker

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrdinal_FamilyMatchesType(t *testing.T) {
	cases := []struct {
		hand   string
		family int
	}{
		{"As Ks Qs Js Ts 2h 3d", 8}, // royal flush
		{"9s 8s 7s 6s 5s 2h 3d", 8},
		{"As Ah Ad Ac 2s 3h 4d", 7},
		{"As Ah Ad Ks Kh 5d 6c", 6},
		{"As Qs Ts 8s 6s 2h 3d", 5},
		{"Ts 9h 8d 7c 6s 2h 4d", 4},
		{"As 5h 4d 3c 2s 7h 9d", 4}, // wheel straight
		{"As Ah Ad Ks Qh 5d 6c", 3},
		{"As Ah Kd Kc Qs 5h 6d", 2},
		{"As Ah Kd Qc Js 5h 6d", 1},
		{"As Kh Qd Jc 9s 5h 6d", 0},
	}
	for _, tc := range cases {
		h := mustHand(t, tc.hand)
		rank := Evaluate7(h)
		assert.Equal(t, tc.family, rank.Family(), "hand %s", tc.hand)
	}
}

func TestOrdinal_MonotonicWithHandRank(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 3000; i++ {
		deck := NewDeck(rng)
		a := Evaluate7(NewHand(deck.Deal(7)...))
		b := Evaluate7(NewHand(deck.Deal(7)...))

		switch CompareHands(a, b) {
		case 1:
			assert.Greater(t, a.Ordinal(), b.Ordinal())
		case -1:
			assert.Less(t, a.Ordinal(), b.Ordinal())
		default:
			assert.Equal(t, a.Ordinal(), b.Ordinal())
		}
	}
}

func TestOrdinal_WithinRange(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	for i := 0; i < 3000; i++ {
		deck := NewDeck(rng)
		rank := Evaluate7(NewHand(deck.Deal(7)...))
		ord := rank.Ordinal()
		require.GreaterOrEqual(t, ord, 0)
		require.Less(t, ord, TotalHandRanks)
	}
}

// TestOrdinal_DenseWithinFamily samples 20,000 random 7-card hands and
// checks that no two distinct HandRanks share an ordinal, and that
// TotalHandRanks is 7462. It samples rather than enumerates, so it does not
// detect an ordinal that no hand reaches.
func TestOrdinal_DenseWithinFamily(t *testing.T) {
	seen := make(map[int]HandRank)
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 20000; i++ {
		deck := NewDeck(rng)
		rank := Evaluate7(NewHand(deck.Deal(7)...))
		ord := rank.Ordinal()
		if prior, ok := seen[ord]; ok {
			require.Equal(t, prior, rank, "ordinal %d reused by two distinct HandRanks", ord)
		} else {
			seen[ord] = rank
		}
	}
	require.Equal(t, 7462, TotalHandRanks)
}
