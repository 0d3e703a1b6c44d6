package game

import (
	"fmt"
	"strconv"
	"strings"
)

// ActionType enumerates the legal action variants
type ActionType int

const (
	Fold ActionType = iota
	Check
	Call
	Raise
	AllIn
)

func (a ActionType) String() string {
	return [...]string{"fold", "check", "call", "raise", "allin"}[a]
}

// Action is a proposed player action. It is constructed once (typically via
// ParseAction) and validated before application; Amount is only meaningful
// for Raise, where it is the number of chips the player adds on top of their
// current street bet.
type Action struct {
	Type     ActionType
	PlayerID string
	Amount   int
}

func (a Action) String() string {
	if a.Type == Raise {
		return fmt.Sprintf("%s %d", a.Type, a.Amount)
	}
	return a.Type.String()
}

// NewAction creates an action without an amount
func NewAction(t ActionType, playerID string) Action {
	return Action{Type: t, PlayerID: playerID}
}

// NewRaise creates a raise adding amount chips to the player's street bet
func NewRaise(playerID string, amount int) Action {
	return Action{Type: Raise, PlayerID: playerID, Amount: amount}
}

// ParseAction parses action text for a player. Grammar:
//
//	fold|f
//	check|ch
//	call|c
//	raise|r <amount>
//	all-in|allin|a
//
// Malformed input returns an error; callers are expected to re-prompt.
func ParseAction(text, playerID string) (Action, error) {
	fields := strings.Fields(strings.ToLower(strings.TrimSpace(text)))
	if len(fields) == 0 {
		return Action{}, fmt.Errorf("empty action")
	}

	switch fields[0] {
	case "fold", "f":
		return NewAction(Fold, playerID), nil
	case "check", "ch":
		return NewAction(Check, playerID), nil
	case "call", "c":
		return NewAction(Call, playerID), nil
	case "all-in", "allin", "a":
		return NewAction(AllIn, playerID), nil
	case "raise", "r":
		if len(fields) < 2 {
			return Action{}, fmt.Errorf("raise requires an amount")
		}
		amount, err := strconv.Atoi(fields[1])
		if err != nil || amount <= 0 {
			return Action{}, fmt.Errorf("invalid raise amount %q", fields[1])
		}
		return NewRaise(playerID, amount), nil
	default:
		return Action{}, fmt.Errorf("unrecognized action %q", fields[0])
	}
}
