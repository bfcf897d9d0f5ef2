package equity

import (
	"testing"

	"github.com/lox/holdem-eval/poker"
	"github.com/stretchr/testify/assert"
)

func TestCacheKey_OrderIndependent(t *testing.T) {
	board := mustHand(t, "As Kd 2c")
	ac, kc := poker.NewCard(poker.Ace, poker.Clubs), poker.NewCard(poker.King, poker.Clubs)

	a := CacheKey(board, ac, kc)
	b := CacheKey(board, kc, ac)
	assert.Equal(t, a, b)
}

func TestCacheKey_DiffersByBoardOrHole(t *testing.T) {
	board1 := mustHand(t, "As Kd 2c")
	board2 := mustHand(t, "As Kd 3c")
	ac, kc := poker.NewCard(poker.Ace, poker.Clubs), poker.NewCard(poker.King, poker.Clubs)
	qc := poker.NewCard(poker.Queen, poker.Clubs)

	assert.NotEqual(t, CacheKey(board1, ac, kc), CacheKey(board2, ac, kc))
	assert.NotEqual(t, CacheKey(board1, ac, kc), CacheKey(board1, ac, qc))
}
