// Package config loads table configuration from HCL files.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/cardroomlabs/holdem/internal/game"
)

// Config is the top-level configuration document
type Config struct {
	Table   *TableConfig `hcl:"table,block"`
	Log     *LogConfig   `hcl:"log,block"`
	History *HistoryOut  `hcl:"history,block"`
}

// TableConfig defines the game parameters for a table
type TableConfig struct {
	Players        int    `hcl:"players,optional"`
	SmallBlind     int    `hcl:"small_blind,optional"`
	BigBlind       int    `hcl:"big_blind,optional"`
	StartingStack  int    `hcl:"starting_stack,optional"`
	TimeoutSeconds int    `hcl:"timeout_seconds,optional"`
	Strategy       string `hcl:"strategy,optional"`
}

// LogConfig controls logger output
type LogConfig struct {
	Level string `hcl:"level,optional"`
	File  string `hcl:"file,optional"`
}

// HistoryOut controls hand-history export
type HistoryOut struct {
	Dir     string `hcl:"dir,optional"`
	Enabled bool   `hcl:"enabled,optional"`
}

// Default returns the configuration used when no file is present
func Default() *Config {
	return &Config{
		Table: &TableConfig{
			Players:        3,
			SmallBlind:     10,
			BigBlind:       20,
			StartingStack:  1000,
			TimeoutSeconds: 30,
			Strategy:       "call",
		},
		Log:     &LogConfig{Level: "info"},
		History: &HistoryOut{Dir: "hands"},
	}
}

// Load reads an HCL configuration file, applying defaults for any value the
// file leaves out. A missing file yields the defaults.
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
	if diags := gohcl.DecodeBody(file.Body, nil, &cfg); diags.HasErrors() {
		return nil, fmt.Errorf("config: decode %s: %s", filename, diags.Error())
	}

	def := Default()
	if cfg.Table == nil {
		cfg.Table = def.Table
	}
	if cfg.Log == nil {
		cfg.Log = def.Log
	}
	if cfg.History == nil {
		cfg.History = def.History
	}
	if cfg.Table.Players == 0 {
		cfg.Table.Players = def.Table.Players
	}
	if cfg.Table.SmallBlind == 0 {
		cfg.Table.SmallBlind = def.Table.SmallBlind
	}
	if cfg.Table.BigBlind == 0 {
		cfg.Table.BigBlind = def.Table.BigBlind
	}
	if cfg.Table.StartingStack == 0 {
		cfg.Table.StartingStack = def.Table.StartingStack
	}
	if cfg.Table.TimeoutSeconds == 0 {
		cfg.Table.TimeoutSeconds = def.Table.TimeoutSeconds
	}
	if cfg.Table.Strategy == "" {
		cfg.Table.Strategy = def.Table.Strategy
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = def.Log.Level
	}
	if cfg.History.Dir == "" {
		cfg.History.Dir = def.History.Dir
	}

	return &cfg, nil
}

// Validate checks the configuration beyond what hand creation enforces
func (c *Config) Validate() error {
	if err := c.GameConfig().Validate(); err != nil {
		return err
	}
	if c.Table.TimeoutSeconds <= 0 {
		return fmt.Errorf("config: timeout_seconds must be positive, got %d", c.Table.TimeoutSeconds)
	}
	switch c.Table.Strategy {
	case "call", "fold", "rand":
	default:
		return fmt.Errorf("config: unknown strategy %q", c.Table.Strategy)
	}
	return nil
}

// GameConfig converts the table block into the engine's hand configuration
func (c *Config) GameConfig() game.Config {
	return game.Config{
		NumPlayers:    c.Table.Players,
		SmallBlind:    c.Table.SmallBlind,
		BigBlind:      c.Table.BigBlind,
		StartingStack: c.Table.StartingStack,
	}
}

// Timeout returns the per-turn decision timeout
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.Table.TimeoutSeconds) * time.Second
}
