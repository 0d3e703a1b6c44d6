package game

import "github.com/cardroomlabs/holdem/internal/deck"

// HandOption configures hand creation beyond the required Config.
type HandOption func(*handConfig)

type handConfig struct {
	playerIDs []string
	chips     []int
	button    int
	deck      *deck.Deck
	handID    string
}

// WithPlayerIDs sets explicit player ids. The default is p1..pN.
func WithPlayerIDs(ids []string) HandOption {
	return func(c *handConfig) { c.playerIDs = ids }
}

// WithChips sets individual stack sizes, overriding the uniform starting
// stack from Config. Length must match the number of players.
func WithChips(chips []int) HandOption {
	return func(c *handConfig) { c.chips = chips }
}

// WithButton sets the dealer button seat. Default is seat 0.
func WithButton(seat int) HandOption {
	return func(c *handConfig) { c.button = seat }
}

// WithDeck supplies a pre-ordered deck instead of shuffling from the RNG.
// Deterministic tests use this together with deck.FromCards.
func WithDeck(d deck.Deck) HandOption {
	return func(c *handConfig) { c.deck = &d }
}

// WithHandID sets an explicit hand id instead of generating one.
func WithHandID(id string) HandOption {
	return func(c *handConfig) { c.handID = id }
}
