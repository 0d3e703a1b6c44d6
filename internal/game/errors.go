package game

import (
	"fmt"

	"github.com/cardroomlabs/holdem/internal/deck"
)

// ErrDeckExhausted indicates the deck ran out of cards mid-hand. This cannot
// happen under correct rules with at most nine players; it is surfaced as a
// fatal engine bug, not a user-facing retry case.
var ErrDeckExhausted = deck.ErrExhausted

// InvalidActionError is the recoverable rejection of a proposed action. It
// names the violated constraint so the caller can show a specific message
// and re-prompt. A rejected action never mutates state and emits no events.
type InvalidActionError struct {
	Action     Action
	Constraint string
}

func (e *InvalidActionError) Error() string {
	return fmt.Sprintf("invalid action %s: %s", e.Action, e.Constraint)
}

func invalidActionf(a Action, format string, args ...any) error {
	return &InvalidActionError{Action: a, Constraint: fmt.Sprintf(format, args...)}
}

// ChipConservationError reports an invariant breach: the chips on the table
// no longer sum to the total bought in. It indicates an implementation bug
// and aborts the hand rather than silently continuing.
type ChipConservationError struct {
	Want int
	Got  int
}

func (e *ChipConservationError) Error() string {
	return fmt.Sprintf("chip conservation violated: table holds %d chips, bought in %d", e.Got, e.Want)
}
