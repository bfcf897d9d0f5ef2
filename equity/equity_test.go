package equity

import (
	"context"
	"math/rand"
	"testing"

	"github.com/lox/holdem-eval/poker"
	"github.com/lox/holdem-eval/ranges"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustRange(t *testing.T, notation string) *ranges.Range {
	t.Helper()
	r, err := ranges.ParseRange(notation)
	require.NoError(t, err)
	return r
}

func mustHand(t *testing.T, s string) poker.Hand {
	t.Helper()
	cards, err := poker.ParseCards(s)
	require.NoError(t, err)
	return poker.NewHand(cards...)
}

func TestExact_PocketAcesVsKingsOnTurnFavorsAces(t *testing.T) {
	aces := mustRange(t, "AdAc")
	kings := mustRange(t, "KdKc")
	// Fix the flop+turn so only the river (44 candidates) is enumerated,
	// keeping the exhaustive search cheap enough for a unit test.
	board := mustHand(t, "2h 7c 9d Qs")

	results, err := Exact([]*ranges.Range{aces, kings}, board)
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Greater(t, results[0].Equity(), 0.75)
	assert.InDelta(t, 1.0, results[0].Equity()+results[1].Equity(), 1e-9)
}

func TestExact_CompleteBoardSumsToOne(t *testing.T) {
	hero := mustRange(t, "AsKs")
	villain := mustRange(t, "2c2d")
	board := mustHand(t, "Ah Kh 2h 7c 9d")

	results, err := Exact([]*ranges.Range{hero, villain}, board)
	require.NoError(t, err)
	assert.Equal(t, 1, results[0].Deals)
	assert.InDelta(t, 1.0, results[0].Equity()+results[1].Equity(), 1e-9)
}

func TestMonteCarlo_ConvergesNearExact(t *testing.T) {
	aces := mustRange(t, "AdAc")
	kings := mustRange(t, "KdKc")
	board := mustHand(t, "2h 7c 9d Qs")

	exact, err := Exact([]*ranges.Range{aces, kings}, board)
	require.NoError(t, err)

	mc, err := MonteCarlo(context.Background(), []*ranges.Range{aces, kings}, board, 4000, rand.New(rand.NewSource(1)))
	require.NoError(t, err)

	assert.InDelta(t, exact[0].Equity(), mc[0].Equity(), 0.05)
}

func TestMonteCarlo_Deterministic(t *testing.T) {
	hero := mustRange(t, "AsKs,AhKh")
	villain := mustRange(t, "QQ")

	r1, err := MonteCarlo(context.Background(), []*ranges.Range{hero, villain}, poker.Hand(0), 500, rand.New(rand.NewSource(42)))
	require.NoError(t, err)
	r2, err := MonteCarlo(context.Background(), []*ranges.Range{hero, villain}, poker.Hand(0), 500, rand.New(rand.NewSource(42)))
	require.NoError(t, err)

	assert.Equal(t, r1[0].Wins, r2[0].Wins)
	assert.Equal(t, r1[0].Deals, r2[0].Deals)
}
