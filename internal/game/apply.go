package game

import "github.com/cardroomlabs/holdem/internal/deck"

// Apply validates and applies an action, returning the next snapshot and
// the events the transition emitted. The receiver is unchanged. A rejected
// action returns an InvalidActionError alongside the unchanged snapshot and
// no events.
func (s GameState) Apply(a Action) (GameState, []Event, error) {
	if s.Terminal {
		return s, nil, invalidActionf(a, "hand is complete")
	}

	seat := s.Seat(a.PlayerID)
	if seat < 0 {
		return s, nil, invalidActionf(a, "unknown player %q", a.PlayerID)
	}
	if seat != s.Actor {
		if p := s.CurrentPlayer(); p != nil {
			return s, nil, invalidActionf(a, "out of turn: %s is due to act", p.ID)
		}
		return s, nil, invalidActionf(a, "out of turn: no action pending")
	}

	applied, err := s.validate(a, seat)
	if err != nil {
		return s, nil, err
	}

	next := s.clone()
	next.Version++

	moved := next.applyToSeat(applied, seat)
	next.acted[seat] = true

	events := []Event{PlayerActionEvent{
		PlayerID: applied.PlayerID,
		Action:   applied.Type,
		Amount:   moved,
		PotAfter: next.potWithBets(),
	}}

	switch {
	case next.inHandCount() == 1:
		// Everyone else folded: the hand ends immediately, no dealing and
		// no evaluation.
		events = append(events, next.settleFold())

	default:
		closed := false
		for !next.Terminal && next.roundClosed() {
			closed = true
			streetEvents, err := next.advanceStreet()
			if err != nil {
				return s, nil, err
			}
			events = append(events, streetEvents...)
		}
		// A new street's first actor is set by advanceStreet (left of the
		// button); mid-round the action just moves left of the actor.
		if !next.Terminal && !closed {
			next.Actor = next.nextActive(seat + 1)
		}
	}

	if err := next.checkConservation(); err != nil {
		return s, nil, err
	}

	return next, events, nil
}

// applyToSeat mutates the acting player and the betting level for a
// validated action, returning the chips the action moved.
func (s *GameState) applyToSeat(a Action, seat int) int {
	p := &s.Players[seat]

	switch a.Type {
	case Fold:
		p.Status = StatusFolded
		return 0

	case Check:
		return 0

	case Call:
		return p.wager(s.CurrentBet - p.Bet)

	case Raise:
		moved := p.wager(a.Amount)
		s.LastRaise = p.Bet - s.CurrentBet
		s.CurrentBet = p.Bet
		s.reopenBetting(seat)
		return moved

	case AllIn:
		moved := p.wager(p.Stack)
		if p.Bet > s.CurrentBet {
			if p.Bet >= s.CurrentBet+s.LastRaise {
				// Full raise: betting reopens for everyone else.
				s.LastRaise = p.Bet - s.CurrentBet
				s.reopenBetting(seat)
			}
			// An incomplete raise lifts the bet level without resetting
			// the increment or reopening action.
			s.CurrentBet = p.Bet
		}
		return moved
	}
	return 0
}

// reopenBetting clears the acted flags of everyone but the raiser so each
// remaining player gets to respond to the new bet level.
func (s *GameState) reopenBetting(raiser int) {
	for i := range s.acted {
		s.acted[i] = i == raiser
	}
}

// potWithBets is the pot including bets not yet collected
func (s *GameState) potWithBets() int {
	total := s.Pot
	for i := range s.Players {
		total += s.Players[i].Bet
	}
	return total
}

// collectBets folds the street's bets into the pot
func (s *GameState) collectBets() {
	for i := range s.Players {
		s.Pot += s.Players[i].Bet
		s.Players[i].Bet = 0
	}
}

// advanceStreet closes the current betting round: collects bets, deals the
// next street's community cards (with a burn), and positions the first
// actor. When the river round closes it settles the hand at showdown
// instead. Callers loop while the new round is already closed, which runs
// the board out when everyone is all-in.
func (s *GameState) advanceStreet() ([]Event, error) {
	s.collectBets()
	s.CurrentBet = 0
	s.LastRaise = s.BigBlind
	for i := range s.acted {
		s.acted[i] = false
	}
	s.Actor = -1

	var count int
	switch s.Street {
	case Preflop:
		count = 3
	case Flop, Turn:
		count = 1
	case River:
		s.Street = Showdown
		return []Event{s.settleShowdown()}, nil
	default:
		return nil, nil
	}

	if err := s.deck.Burn(); err != nil {
		return nil, err
	}
	cards, err := s.deck.Deal(count)
	if err != nil {
		return nil, err
	}
	s.Board = append(s.Board, cards...)
	s.Street++

	s.Actor = s.nextActive(s.Button + 1)

	board := append([]deck.Card(nil), s.Board...)
	return []Event{StreetChangeEvent{Street: s.Street, Board: board}}, nil
}
