package game

import "fmt"

// Config is the hand-creation configuration. Validate rejects out-of-range
// values before any game state exists.
type Config struct {
	NumPlayers    int
	SmallBlind    int
	BigBlind      int
	StartingStack int
}

// Validate checks the configuration bounds
func (c Config) Validate() error {
	if c.NumPlayers < 2 || c.NumPlayers > 9 {
		return fmt.Errorf("num_players must be 2-9, got %d", c.NumPlayers)
	}
	if c.SmallBlind <= 0 {
		return fmt.Errorf("small_blind must be positive, got %d", c.SmallBlind)
	}
	if c.BigBlind <= c.SmallBlind {
		return fmt.Errorf("big_blind (%d) must exceed small_blind (%d)", c.BigBlind, c.SmallBlind)
	}
	if c.StartingStack < 2*c.BigBlind {
		return fmt.Errorf("starting_stack (%d) must be at least twice the big blind (%d)", c.StartingStack, c.BigBlind)
	}
	return nil
}
