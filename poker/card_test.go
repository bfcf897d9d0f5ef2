package poker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCard(t *testing.T) {
	t.Parallel()
	tests := []struct {
		input string
		want  Card
	}{
		{"As", NewCard(Ace, Spades)},
		{"2h", NewCard(Two, Hearts)},
		{"Kd", NewCard(King, Diamonds)},
		{"Tc", NewCard(Ten, Clubs)},
		{"9s", NewCard(Nine, Spades)},
	}
	for _, tc := range tests {
		got, err := ParseCard(tc.input)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got)
		assert.Equal(t, tc.input, got.String())
	}
}

func TestParseCard_Errors(t *testing.T) {
	t.Parallel()
	for _, in := range []string{"", "A", "Asd", "Xs", "Ax"} {
		_, err := ParseCard(in)
		assert.Error(t, err, "input %q", in)
	}
}

func TestParseCards(t *testing.T) {
	t.Parallel()
	cards, err := ParseCards("As Kd 2c")
	require.NoError(t, err)
	assert.Equal(t, []Card{NewCard(Ace, Spades), NewCard(King, Diamonds), NewCard(Two, Clubs)}, cards)

	compact, err := ParseCards("AsKd2c")
	require.NoError(t, err)
	assert.Equal(t, cards, compact)
}

func TestCardRankSuitRoundTrip(t *testing.T) {
	t.Parallel()
	for rank := Rank(0); rank < NumRanks; rank++ {
		for suit := Suit(0); suit < NumSuits; suit++ {
			c := NewCard(rank, suit)
			assert.Equal(t, rank, c.Rank())
			assert.Equal(t, suit, c.Suit())
		}
	}
}

func TestHumanToEval_RoundTrip(t *testing.T) {
	t.Parallel()
	seen := make(map[Card]bool)
	for human := uint8(0); human < 52; human++ {
		c := HumanToEval(human)
		assert.False(t, seen[c], "human ordinal %d collided with a prior card", human)
		seen[c] = true
		assert.Equal(t, human, EvalToHuman(c))
	}
	assert.Len(t, seen, 52)
}

func TestHumanToEval_GroupsSuitsByRank(t *testing.T) {
	t.Parallel()
	for rank := Rank(0); rank < NumRanks; rank++ {
		for suit := Suit(0); suit < NumSuits; suit++ {
			human := uint8(rank)*NumSuits + uint8(suit)
			c := HumanToEval(human)
			assert.Equal(t, rank, c.Rank())
			assert.Equal(t, suit, c.Suit())
		}
	}
}

func TestCanonicalHolePair(t *testing.T) {
	t.Parallel()
	as, ks := NewCard(Ace, Spades), NewCard(King, Spades)
	hi, lo := CanonicalHolePair(as, ks)
	assert.Equal(t, as, hi)
	assert.Equal(t, ks, lo)

	hi2, lo2 := CanonicalHolePair(ks, as)
	assert.Equal(t, hi, hi2)
	assert.Equal(t, lo, lo2)

	// suit tiebreak on a pocket pair
	ah, ac := NewCard(Ace, Hearts), NewCard(Ace, Clubs)
	hi3, lo3 := CanonicalHolePair(ac, ah)
	assert.Equal(t, ah, hi3)
	assert.Equal(t, ac, lo3)
}
