package classification

import (
	"testing"

	"github.com/lox/holdem-eval/poker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheKey_OrderIndependent(t *testing.T) {
	board, err := poker.ParseCards("As Kd 2c")
	require.NoError(t, err)
	boardHand := poker.NewHand(board...)

	hole1, err := poker.ParseCards("Ac Kc")
	require.NoError(t, err)
	hole2, err := poker.ParseCards("Kc Ac")
	require.NoError(t, err)

	assert.Equal(t, CacheKey(poker.NewHand(hole1...), boardHand), CacheKey(poker.NewHand(hole2...), boardHand))
}

func TestCacheKey_MatchesEquityLayout(t *testing.T) {
	board, err := poker.ParseCards("As Kd 2c")
	require.NoError(t, err)
	boardHand := poker.NewHand(board...)

	ac, kc := poker.NewCard(poker.Ace, poker.Clubs), poker.NewCard(poker.King, poker.Clubs)
	key := CacheKey(poker.NewHand(ac, kc), boardHand)

	hi, lo := poker.CanonicalHolePair(ac, kc)
	assert.Equal(t, poker.EvalToHuman(hi), key[4])
	assert.Equal(t, poker.EvalToHuman(lo), key[5])
}
