package game

import "github.com/cardroomlabs/holdem/internal/deck"

// Player is a seat's state within a hand. Invariants: Stack >= 0 always,
// and Bet <= TotalBet.
type Player struct {
	ID        string
	Stack     int         // chips not yet wagered this hand
	HoleCards []deck.Card // 0 or 2 cards
	Status    Status
	Bet       int // chips wagered this street
	TotalBet  int // chips wagered across all streets; side-pot tiers key off this
}

// CanAct reports whether the player still takes turns this street
func (p *Player) CanAct() bool {
	return p.Status == StatusActive
}

// InHand reports whether the player can still win a pot
func (p *Player) InHand() bool {
	return p.Status == StatusActive || p.Status == StatusAllIn
}

// wager moves up to amount chips from stack to the street bet, marking the
// player all-in when the stack is consumed. Returns the chips moved.
func (p *Player) wager(amount int) int {
	if amount > p.Stack {
		amount = p.Stack
	}
	p.Stack -= amount
	p.Bet += amount
	p.TotalBet += amount
	if p.Stack == 0 {
		p.Status = StatusAllIn
	}
	return amount
}
