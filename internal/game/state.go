package game

import (
	"github.com/cardroomlabs/holdem/internal/deck"
)

// GameState is an immutable snapshot of a hand. Every transition produces a
// new snapshot with Version incremented; the receiver is never mutated. The
// deck is embedded by value so a snapshot carries its own dealing cursor.
type GameState struct {
	HandID     string
	Version    int
	Players    []Player
	Board      []deck.Card // 0, 3, 4 or 5 community cards
	Pot        int         // chips collected from completed streets
	Button     int
	Actor      int // seat index due to act; -1 when none
	SmallBlind int
	BigBlind   int
	CurrentBet int // highest outstanding bet this street
	LastRaise  int // minimum legal raise increment
	Street     Street
	Terminal   bool

	// Settlement results, populated once Terminal
	Winners []int       // seats that won at least one pot slice
	Payouts []int       // chips awarded per seat
	Pots    []PotResult // per-pot breakdown, main pot first

	deck  deck.Deck
	acted []bool // seat has acted since the last full raise this street
	buyIn int    // total chips at hand creation, for conservation checks
}

// PotResult records one settled pot slice
type PotResult struct {
	Amount   int
	Eligible []int // seats eligible for this slice
	Winners  []int // seats the slice was awarded to
}

// clone deep-copies the snapshot so the returned value can be mutated
// without aliasing the original.
func (s GameState) clone() GameState {
	next := s
	next.Players = make([]Player, len(s.Players))
	copy(next.Players, s.Players)
	for i := range next.Players {
		next.Players[i].HoleCards = append([]deck.Card(nil), s.Players[i].HoleCards...)
	}
	next.Board = append([]deck.Card(nil), s.Board...)
	next.acted = append([]bool(nil), s.acted...)
	next.Winners = append([]int(nil), s.Winners...)
	next.Payouts = append([]int(nil), s.Payouts...)
	next.Pots = append([]PotResult(nil), s.Pots...)
	return next
}

// Seat returns the seat index for a player id, or -1 if unknown
func (s *GameState) Seat(playerID string) int {
	for i := range s.Players {
		if s.Players[i].ID == playerID {
			return i
		}
	}
	return -1
}

// CurrentPlayer returns the player due to act, or nil when no one is
func (s *GameState) CurrentPlayer() *Player {
	if s.Actor < 0 || s.Actor >= len(s.Players) {
		return nil
	}
	return &s.Players[s.Actor]
}

// TotalChips returns the chips currently on the table: stacks, outstanding
// street bets and the pot.
func (s *GameState) TotalChips() int {
	total := s.Pot
	for i := range s.Players {
		total += s.Players[i].Stack + s.Players[i].Bet
	}
	return total
}

// checkConservation verifies the chip conservation invariant
func (s *GameState) checkConservation() error {
	if got := s.TotalChips(); got != s.buyIn {
		return &ChipConservationError{Want: s.buyIn, Got: got}
	}
	return nil
}

// inHandCount counts players who can still win a pot
func (s *GameState) inHandCount() int {
	n := 0
	for i := range s.Players {
		if s.Players[i].InHand() {
			n++
		}
	}
	return n
}

// nextActive returns the first seat at or after from (wrapping) whose player
// can still act, or -1 when none can.
func (s *GameState) nextActive(from int) int {
	n := len(s.Players)
	for i := 0; i < n; i++ {
		seat := ((from + i) % n + n) % n
		if s.Players[seat].CanAct() {
			return seat
		}
	}
	return -1
}

// roundClosed reports whether the current betting round is over: every
// player who can act has matched the street's bet and has acted since the
// last full raise. With at most one player able to act, matching alone
// closes the round (there is nobody left to respond to a raise).
func (s *GameState) roundClosed() bool {
	active := 0
	for i := range s.Players {
		if s.Players[i].CanAct() {
			active++
		}
	}

	for i := range s.Players {
		p := &s.Players[i]
		if !p.CanAct() {
			continue
		}
		if p.Bet != s.CurrentBet {
			return false
		}
		if active > 1 && !s.acted[i] {
			return false
		}
	}
	return true
}
