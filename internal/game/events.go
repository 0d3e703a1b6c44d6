package game

import (
	"fmt"
	"sort"
	"strings"

	"github.com/cardroomlabs/holdem/internal/deck"
)

// EventType identifies a game event
type EventType string

const (
	EventHandStart    EventType = "hand_start"
	EventBlindPosted  EventType = "blind_posted"
	EventPlayerAction EventType = "player_action"
	EventStreetChange EventType = "street_change"
	EventHandEnd      EventType = "hand_end"
)

// Event is something that happened during a hand. Events are emitted in
// application order; every applied action produces exactly one
// PlayerActionEvent (a rejected action produces none). String renders the
// human-readable form consumed by history and export collaborators.
type Event interface {
	Type() EventType
	String() string
}

// HandStartEvent is emitted once when a hand is created
type HandStartEvent struct {
	HandID     string
	PlayerIDs  []string
	SmallBlind int
	BigBlind   int
}

func (e HandStartEvent) Type() EventType { return EventHandStart }

func (e HandStartEvent) String() string {
	return fmt.Sprintf("hand %s started: %d players, blinds %d/%d",
		e.HandID, len(e.PlayerIDs), e.SmallBlind, e.BigBlind)
}

// BlindPostedEvent is emitted for each forced bet at hand creation
type BlindPostedEvent struct {
	PlayerID string
	Blind    string // "small blind" or "big blind"
	Amount   int
}

func (e BlindPostedEvent) Type() EventType { return EventBlindPosted }

func (e BlindPostedEvent) String() string {
	return fmt.Sprintf("%s: posts %s %d", e.PlayerID, e.Blind, e.Amount)
}

// PlayerActionEvent is emitted once per applied action
type PlayerActionEvent struct {
	PlayerID string
	Action   ActionType
	Amount   int // chips moved by this action; zero for fold/check
	PotAfter int // pot plus outstanding bets after the action
}

func (e PlayerActionEvent) Type() EventType { return EventPlayerAction }

func (e PlayerActionEvent) String() string {
	switch e.Action {
	case Fold:
		return fmt.Sprintf("%s: folds", e.PlayerID)
	case Check:
		return fmt.Sprintf("%s: checks", e.PlayerID)
	case Call:
		return fmt.Sprintf("%s: calls %d (pot now %d)", e.PlayerID, e.Amount, e.PotAfter)
	case Raise:
		return fmt.Sprintf("%s: raises %d (pot now %d)", e.PlayerID, e.Amount, e.PotAfter)
	case AllIn:
		return fmt.Sprintf("%s: goes all-in for %d (pot now %d)", e.PlayerID, e.Amount, e.PotAfter)
	default:
		return fmt.Sprintf("%s: %s %d", e.PlayerID, e.Action, e.Amount)
	}
}

// StreetChangeEvent is emitted when community cards are dealt
type StreetChangeEvent struct {
	Street Street
	Board  []deck.Card
}

func (e StreetChangeEvent) Type() EventType { return EventStreetChange }

func (e StreetChangeEvent) String() string {
	cards := make([]string, len(e.Board))
	for i, c := range e.Board {
		cards[i] = c.String()
	}
	return fmt.Sprintf("*** %s *** [%s]", strings.ToUpper(e.Street.String()), strings.Join(cards, " "))
}

// HandEndEvent is emitted once when the hand reaches a terminal state
type HandEndEvent struct {
	HandID   string
	Payouts  map[string]int // player id -> chips won
	Pot      int            // total chips awarded
	Showdown bool           // false when everyone else folded
}

func (e HandEndEvent) Type() EventType { return EventHandEnd }

func (e HandEndEvent) String() string {
	ids := make([]string, 0, len(e.Payouts))
	for id := range e.Payouts {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = fmt.Sprintf("%s wins %d", id, e.Payouts[id])
	}
	return fmt.Sprintf("hand %s complete: %s (pot %d)", e.HandID, strings.Join(parts, ", "), e.Pot)
}
