package game

// Street represents a phase of the hand
type Street int

const (
	Preflop Street = iota
	Flop
	Turn
	River
	Showdown
	Complete
)

func (s Street) String() string {
	return [...]string{"preflop", "flop", "turn", "river", "showdown", "complete"}[s]
}

// Status represents a player's standing within the current hand
type Status int

const (
	StatusActive Status = iota
	StatusFolded
	StatusAllIn
	StatusOut
)

func (s Status) String() string {
	return [...]string{"active", "folded", "all_in", "out"}[s]
}

// PositionName returns the table position label for a seat relative to the
// button ("BTN", "SB", "BB", "UTG", "MP", "CO"). Heads-up the button is also
// the small blind.
func PositionName(seat, button, numPlayers int) string {
	offset := ((seat - button) + numPlayers) % numPlayers
	if numPlayers == 2 {
		if offset == 0 {
			return "BTN"
		}
		return "BB"
	}
	switch offset {
	case 0:
		return "BTN"
	case 1:
		return "SB"
	case 2:
		return "BB"
	case 3:
		return "UTG"
	case numPlayers - 1:
		return "CO"
	default:
		return "MP"
	}
}
