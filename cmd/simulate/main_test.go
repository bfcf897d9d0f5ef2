package main

import (
	"io"
	"math/rand"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/holdem-eval/game"
	"github.com/lox/holdem-eval/gamelog"
)

func TestRecordHand_ProducesParseableLog(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	g, err := game.NewGame(rng, []string{"alice", "bob", "carol"}, []int{500, 500, 500}, 0, 5, 10)
	require.NoError(t, err)

	logger := log.New(io.Discard)
	gl := recordHand(logger, g, rng)

	require.NotEmpty(t, gl.Streets)
	require.NotEmpty(t, gl.Summary)

	totalSummary := 0
	for _, p := range gl.Summary {
		totalSummary += p.Amount
	}
	totalStart := 0
	for _, p := range gl.Players {
		totalStart += p.Stack
	}
	assert.LessOrEqual(t, totalSummary, totalStart)

	text := gamelog.Format(gl)
	parsed, err := gamelog.Parse(text)
	require.NoError(t, err)
	assert.Equal(t, gl.SmallBlind, parsed.SmallBlind)
	assert.Equal(t, gl.BigBlind, parsed.BigBlind)
}

func TestChooseAmount_BetUsesBigBlind(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	g, err := game.NewGame(rng, []string{"a", "b"}, []int{200, 200}, 0, 5, 10)
	require.NoError(t, err)

	amount := chooseAmount(g, g.ActiveSeat, game.Bet, rng)
	assert.Equal(t, g.BigBlind, amount)
}
