package game

// LegalAction describes one action variant currently available to the
// actor, with the chip bounds where an amount applies.
type LegalAction struct {
	Type ActionType
	Min  int // call: exact amount; raise: minimum additional chips
	Max  int // raise: the full stack
}

// LegalActions lists the actions the current actor may take. An empty slice
// means no one is due to act (terminal state or between streets).
func (s *GameState) LegalActions() []LegalAction {
	p := s.CurrentPlayer()
	if s.Terminal || p == nil {
		return nil
	}

	actions := []LegalAction{{Type: Fold}}
	toCall := s.CurrentBet - p.Bet

	if toCall == 0 {
		actions = append(actions, LegalAction{Type: Check})
	} else if p.Stack >= toCall {
		actions = append(actions, LegalAction{Type: Call, Min: toCall, Max: toCall})
	}

	// A player who already acted this street only sees an incomplete raise
	// when it is their turn again, and betting is not reopened to them.
	if minRaise := s.CurrentBet + s.LastRaise - p.Bet; p.Stack >= minRaise && !s.acted[s.Actor] {
		actions = append(actions, LegalAction{Type: Raise, Min: minRaise, Max: p.Stack})
	}

	if p.Stack > 0 {
		actions = append(actions, LegalAction{Type: AllIn, Min: p.Stack, Max: p.Stack})
	}

	return actions
}

// validate decides whether the actor may take the proposed action and
// returns the action to apply, which may be a reclassification: a raise
// committing the player's whole stack below the minimum increment becomes
// an all-in (a legal incomplete raise that does not reopen betting).
// validate never mutates state.
func (s *GameState) validate(a Action, seat int) (Action, error) {
	p := &s.Players[seat]

	switch a.Type {
	case Fold:
		return a, nil

	case Check:
		if s.CurrentBet != p.Bet {
			return a, invalidActionf(a, "cannot check facing a bet: %d to call", s.CurrentBet-p.Bet)
		}
		return a, nil

	case Call:
		toCall := s.CurrentBet - p.Bet
		if toCall <= 0 {
			return a, invalidActionf(a, "nothing to call: check instead")
		}
		if p.Stack < toCall {
			// A short stack must declare the all-in, the engine does not
			// silently cap the call.
			return a, invalidActionf(a, "stack of %d cannot cover call of %d: go all-in instead", p.Stack, toCall)
		}
		return a, nil

	case Raise:
		if s.acted[seat] {
			return a, invalidActionf(a, "betting is not reopened: call, fold, or go all-in")
		}
		if a.Amount <= 0 {
			return a, invalidActionf(a, "raise amount must be positive")
		}
		if a.Amount > p.Stack {
			return a, invalidActionf(a, "raise of %d exceeds stack of %d", a.Amount, p.Stack)
		}
		target := p.Bet + a.Amount
		minTarget := s.CurrentBet + s.LastRaise
		if target < minTarget {
			if a.Amount == p.Stack {
				return Action{Type: AllIn, PlayerID: a.PlayerID}, nil
			}
			return a, invalidActionf(a, "raise below minimum increment of %d (must make it at least %d)", s.LastRaise, minTarget)
		}
		return a, nil

	case AllIn:
		if p.Stack <= 0 {
			return a, invalidActionf(a, "no chips remaining")
		}
		return a, nil

	default:
		return a, invalidActionf(a, "unknown action type")
	}
}
