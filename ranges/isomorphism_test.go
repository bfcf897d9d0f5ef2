package ranges

import (
	"testing"

	"github.com/lox/holdem-eval/poker"
	"github.com/stretchr/testify/require"
)

func mustHand(t *testing.T, s string) poker.Hand {
	t.Helper()
	cards, err := poker.ParseCards(s)
	require.NoError(t, err)
	return poker.NewHand(cards...)
}

func TestCanonicalize_SuitPermutationInvariant(t *testing.T) {
	hole := mustHand(t, "Ah Kh")
	board := mustHand(t, "2h 7h Ts")

	wantHole, wantBoard := Canonicalize(hole, board)

	// Relabel every suit by rotating club<->diamond, hearts<->spades and
	// confirm the canonical form is unchanged.
	relabeled := map[poker.Suit]poker.Suit{
		poker.Clubs:    poker.Diamonds,
		poker.Diamonds: poker.Clubs,
		poker.Hearts:   poker.Spades,
		poker.Spades:   poker.Hearts,
	}
	remapCards := func(h poker.Hand) poker.Hand {
		var out poker.Hand
		for _, c := range h.Cards() {
			out = out.Add(poker.NewCard(c.Rank(), relabeled[c.Suit()]))
		}
		return out
	}

	hole2 := remapCards(hole)
	board2 := remapCards(board)

	gotHole, gotBoard := Canonicalize(hole2, board2)
	require.Equal(t, wantHole, gotHole)
	require.Equal(t, wantBoard, gotBoard)
}

func TestCanonicalize_Deterministic(t *testing.T) {
	hole := mustHand(t, "2c 3d")
	board := mustHand(t, "4h 5s 6c")
	h1, b1 := Canonicalize(hole, board)
	h2, b2 := Canonicalize(hole, board)
	require.Equal(t, h1, h2)
	require.Equal(t, b1, b2)
}
