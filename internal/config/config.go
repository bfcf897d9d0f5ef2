// Package config loads HCL configuration for the demonstration CLIs: table
// stakes/stack defaults and equity-simulation defaults. It mirrors the
// teacher's server configuration loader in shape (block-tagged structs,
// parse-then-default-then-validate) but carries this module's own
// concerns instead of multiplayer server/bot settings.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config is the complete configuration for a simulation run.
type Config struct {
	Table      TableConfig      `hcl:"table,block"`
	Simulation SimulationConfig `hcl:"simulation,block"`
}

// TableConfig describes the stakes and seating for a game.GameState.
type TableConfig struct {
	SmallBlind int   `hcl:"small_blind,optional"`
	BigBlind   int   `hcl:"big_blind,optional"`
	Seats      int   `hcl:"seats,optional"`
	StartStack int   `hcl:"start_stack,optional"`
	Button     int   `hcl:"button,optional"`
	Seed       int64 `hcl:"seed,optional"`
}

// SimulationConfig describes how an equity simulation should run.
type SimulationConfig struct {
	Iterations int    `hcl:"iterations,optional"`
	Mode       string `hcl:"mode,optional"` // "exact" or "montecarlo"
	Workers    int    `hcl:"workers,optional"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Table: TableConfig{
			SmallBlind: 1,
			BigBlind:   2,
			Seats:      6,
			StartStack: 200,
			Button:     0,
		},
		Simulation: SimulationConfig{
			Iterations: 100_000,
			Mode:       "montecarlo",
		},
	}
}

// Load reads and decodes an HCL configuration file, falling back to Default
// when filename does not exist.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("config: parse %s: %s", filename, diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("config: decode %s: %s", filename, diags.Error())
	}
	cfg.applyDefaults()

	return &cfg, cfg.Validate()
}

// applyDefaults fills any zero-valued field left unset by a partial HCL
// file, mirroring the teacher's post-decode default-filling pass.
func (c *Config) applyDefaults() {
	d := Default()
	if c.Table.SmallBlind == 0 {
		c.Table.SmallBlind = d.Table.SmallBlind
	}
	if c.Table.BigBlind == 0 {
		c.Table.BigBlind = d.Table.BigBlind
	}
	if c.Table.Seats == 0 {
		c.Table.Seats = d.Table.Seats
	}
	if c.Table.StartStack == 0 {
		c.Table.StartStack = d.Table.StartStack
	}
	if c.Simulation.Iterations == 0 {
		c.Simulation.Iterations = d.Simulation.Iterations
	}
	if c.Simulation.Mode == "" {
		c.Simulation.Mode = d.Simulation.Mode
	}
}

// Validate checks the configuration for internally consistent values.
func (c *Config) Validate() error {
	if c.Table.SmallBlind <= 0 {
		return fmt.Errorf("config: small blind must be positive")
	}
	if c.Table.BigBlind <= c.Table.SmallBlind {
		return fmt.Errorf("config: big blind must exceed small blind")
	}
	if c.Table.Seats < 2 || c.Table.Seats > 10 {
		return fmt.Errorf("config: seats must be between 2 and 10")
	}
	if c.Table.StartStack <= 0 {
		return fmt.Errorf("config: start stack must be positive")
	}
	if c.Table.Button < 0 || c.Table.Button >= c.Table.Seats {
		return fmt.Errorf("config: button must be a valid seat index")
	}
	switch c.Simulation.Mode {
	case "exact", "montecarlo", "":
	default:
		return fmt.Errorf("config: unknown simulation mode %q", c.Simulation.Mode)
	}
	if c.Simulation.Iterations < 0 {
		return fmt.Errorf("config: iterations must not be negative")
	}
	return nil
}
