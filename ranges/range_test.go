package ranges

import (
	"testing"

	"github.com/lox/holdem-eval/poker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustCards(t *testing.T, s string) []poker.Card {
	t.Helper()
	cards, err := poker.ParseCards(s)
	require.NoError(t, err)
	return cards
}

func TestParseRange_PocketPair(t *testing.T) {
	r, err := ParseRange("AA")
	require.NoError(t, err)
	assert.Equal(t, 6, r.Size())
}

func TestParseRange_SuitedAndOffsuit(t *testing.T) {
	r, err := ParseRange("AKs,AKo")
	require.NoError(t, err)
	assert.Equal(t, 16, r.Size())

	cards := mustCards(t, "As Ks")
	assert.True(t, r.ContainsCards(cards[0], cards[1]))
}

func TestParseRange_Unsuffixed(t *testing.T) {
	r, err := ParseRange("AK")
	require.NoError(t, err)
	assert.Equal(t, 16, r.Size())
}

func TestParseRange_PlusPair(t *testing.T) {
	r, err := ParseRange("QQ+")
	require.NoError(t, err)
	assert.Equal(t, 6*3, r.Size()) // QQ, KK, AA
}

func TestParseRange_PlusUnpaired(t *testing.T) {
	r, err := ParseRange("ATs+")
	require.NoError(t, err)
	// ATs, AJs, AQs, AKs = 4 ranks * 4 suited combos
	assert.Equal(t, 16, r.Size())
}

func TestParseRange_DashPair(t *testing.T) {
	r, err := ParseRange("66-22")
	require.NoError(t, err)
	assert.Equal(t, 6*5, r.Size())
}

func TestParseRange_DashSuited(t *testing.T) {
	r, err := ParseRange("A5s-A2s")
	require.NoError(t, err)
	assert.Equal(t, 4*4, r.Size()) // A2s,A3s,A4s,A5s
}

func TestParseRange_Specific(t *testing.T) {
	r, err := ParseRange("AdKh")
	require.NoError(t, err)
	require.Equal(t, 1, r.Size())
	cards := mustCards(t, "Ad Kh")
	assert.True(t, r.ContainsCards(cards[0], cards[1]))
}

func TestParseRange_DuplicateLaterWeightWins(t *testing.T) {
	r, err := ParseWeightedRange("AA:0.3,AA:0.9", 1.0)
	require.NoError(t, err)
	require.Equal(t, 6, r.Size())
	cards := mustCards(t, "As Ac")
	assert.InDelta(t, 0.9, r.Weight(poker.NewHand(cards[0], cards[1])), 1e-9)
}

func TestParseRange_Errors(t *testing.T) {
	cases := []struct {
		notation string
		kind     ParseErrorKind
	}{
		{"XX", UnknownRank},
		{"22-66", AscendingDashRange},
		{"AKs-AQo", MismatchedSuitedness},
		{"AAo", PairWithSuitedness},
	}
	for _, c := range cases {
		_, err := ParseRange(c.notation)
		require.Error(t, err, c.notation)
		var pe *ParseError
		require.ErrorAs(t, err, &pe)
		assert.Equal(t, c.kind, pe.Kind, c.notation)
	}
}

func TestRange_RemoveDead(t *testing.T) {
	r, err := ParseRange("AA")
	require.NoError(t, err)
	dead := poker.NewHand(poker.NewCard(poker.Ace, poker.Spades))
	removed := r.RemoveDead(dead)
	assert.Equal(t, 3, removed) // 3 of the 6 AA combos use As
	assert.Equal(t, 3, r.Size())
}
