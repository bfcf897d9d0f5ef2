package main

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/holdem-eval/poker"
	"github.com/lox/holdem-eval/ranges"
)

func TestRun_ExactModeComputesEquity(t *testing.T) {
	aces, err := ranges.ParseRange("AdAc")
	require.NoError(t, err)
	kings, err := ranges.ParseRange("KdKc")
	require.NoError(t, err)
	board, err := poker.ParseCards("2h 7c 9d Qs")
	require.NoError(t, err)

	cli := &CLI{Exact: true}
	logger := log.New(io.Discard)
	results, mode := run(logger, cli, []*ranges.Range{aces, kings}, poker.NewHand(board...))

	assert.Equal(t, "exact", mode)
	require.Len(t, results, 2)
	assert.Greater(t, results[0].Equity(), 0.5)
}

func TestRun_MonteCarloModeIsDeterministicWithSeed(t *testing.T) {
	hero, err := ranges.ParseRange("AsKs")
	require.NoError(t, err)
	villain, err := ranges.ParseRange("QQ")
	require.NoError(t, err)

	seed := int64(7)
	cli := &CLI{Iterations: 500, Seed: &seed}
	logger := log.New(io.Discard)

	r1, mode := run(logger, cli, []*ranges.Range{hero, villain}, poker.Hand(0))
	r2, _ := run(logger, cli, []*ranges.Range{hero, villain}, poker.Hand(0))

	assert.Equal(t, "montecarlo", mode)
	assert.Equal(t, r1[0].Wins, r2[0].Wins)
}
