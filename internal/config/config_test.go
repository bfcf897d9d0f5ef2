package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileReturnsDefault(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nonexistent.hcl"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_ParsesHCLFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.hcl")
	hcl := `
table {
  small_blind = 5
  big_blind   = 10
  seats       = 4
  start_stack = 1000
}

simulation {
  iterations = 50000
  mode       = "exact"
}
`
	require.NoError(t, os.WriteFile(path, []byte(hcl), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Table.SmallBlind)
	assert.Equal(t, 10, cfg.Table.BigBlind)
	assert.Equal(t, 4, cfg.Table.Seats)
	assert.Equal(t, 50000, cfg.Simulation.Iterations)
	assert.Equal(t, "exact", cfg.Simulation.Mode)
}

func TestValidate_RejectsBigBlindNotExceedingSmall(t *testing.T) {
	cfg := Default()
	cfg.Table.BigBlind = cfg.Table.SmallBlind
	assert.Error(t, cfg.Validate())
}

func TestValidate_RejectsUnknownMode(t *testing.T) {
	cfg := Default()
	cfg.Simulation.Mode = "bogus"
	assert.Error(t, cfg.Validate())
}
