package game

import (
	"sort"

	"github.com/cardroomlabs/holdem/internal/deck"
	"github.com/cardroomlabs/holdem/internal/evaluator"
)

// settleFold ends the hand when a single player remains: the whole pot,
// including uncollected bets, goes back to the survivor with no evaluation.
func (s *GameState) settleFold() Event {
	s.collectBets()

	survivor := -1
	for i := range s.Players {
		if s.Players[i].InHand() {
			survivor = i
			break
		}
	}

	pot := s.Pot
	s.Payouts = make([]int, len(s.Players))
	s.Payouts[survivor] = pot
	s.Winners = []int{survivor}
	s.Pots = []PotResult{{Amount: pot, Eligible: []int{survivor}, Winners: []int{survivor}}}
	s.Players[survivor].Stack += pot
	s.Pot = 0

	return s.finish(false)
}

// settleShowdown partitions the pot into contribution-tier slices, awards
// each slice to its best eligible hand(s) and ends the hand. The sum of all
// slice awards equals the pot exactly.
func (s *GameState) settleShowdown() Event {
	pots := s.buildPots()
	s.Payouts = make([]int, len(s.Players))
	s.Winners = nil
	s.Pots = make([]PotResult, 0, len(pots))

	values := s.evaluateHands()

	for _, pot := range pots {
		winners := bestSeats(pot.Eligible, values)
		s.awardSlice(pot.Amount, winners)
		s.Pots = append(s.Pots, PotResult{
			Amount:   pot.Amount,
			Eligible: pot.Eligible,
			Winners:  winners,
		})
	}

	for seat, amount := range s.Payouts {
		if amount > 0 {
			s.Winners = append(s.Winners, seat)
			s.Players[seat].Stack += amount
		}
	}
	s.Pot = 0

	return s.finish(true)
}

// finish marks the snapshot terminal, busts empty stacks, and builds the
// hand-end event.
func (s *GameState) finish(showdown bool) Event {
	s.Street = Complete
	s.Terminal = true
	s.Actor = -1

	total := 0
	payouts := make(map[string]int)
	for seat, amount := range s.Payouts {
		total += amount
		if amount > 0 {
			payouts[s.Players[seat].ID] = amount
		}
	}

	for i := range s.Players {
		if s.Players[i].Stack == 0 {
			s.Players[i].Status = StatusOut
		}
	}

	return HandEndEvent{HandID: s.HandID, Payouts: payouts, Pot: total, Showdown: showdown}
}

type potSlice struct {
	Amount   int
	Eligible []int
}

// buildPots derives main and side pots from total contributions. Distinct
// contribution levels, ascending, form the tiers; a tier's slice is
// (tier - previous) times the number of players who contributed at least
// that much. Folded players' chips count toward slice sizes but folded
// players are never eligible. A slice nobody can win (its contributors all
// folded) merges into the previous pot.
func (s *GameState) buildPots() []potSlice {
	levels := make([]int, 0, len(s.Players))
	seen := make(map[int]bool)
	for i := range s.Players {
		t := s.Players[i].TotalBet
		if t > 0 && !seen[t] {
			seen[t] = true
			levels = append(levels, t)
		}
	}
	sort.Ints(levels)

	var pots []potSlice
	prev := 0
	for _, level := range levels {
		slice := potSlice{}
		for i := range s.Players {
			if s.Players[i].TotalBet >= level {
				slice.Amount += level - prev
				if s.Players[i].InHand() {
					slice.Eligible = append(slice.Eligible, i)
				}
			}
		}
		prev = level

		if slice.Amount == 0 {
			continue
		}
		if len(slice.Eligible) == 0 && len(pots) > 0 {
			pots[len(pots)-1].Amount += slice.Amount
			continue
		}

		// Merge consecutive tiers with identical eligibility; they are one
		// pot as far as awarding goes.
		if n := len(pots); n > 0 && equalSeats(pots[n-1].Eligible, slice.Eligible) {
			pots[n-1].Amount += slice.Amount
			continue
		}
		pots = append(pots, slice)
	}
	return pots
}

// evaluateHands scores every in-hand player's best 5-of-7
func (s *GameState) evaluateHands() map[int]evaluator.HandValue {
	values := make(map[int]evaluator.HandValue)
	for i := range s.Players {
		p := &s.Players[i]
		if !p.InHand() || len(p.HoleCards) != 2 {
			continue
		}
		cards := append(append([]deck.Card(nil), p.HoleCards...), s.Board...)
		v, err := evaluator.Evaluate(cards)
		if err != nil {
			continue
		}
		values[i] = v
	}
	return values
}

// bestSeats returns the eligible seats holding the maximal hand value.
// Ties are real and propagate: every seat matching the best value wins.
func bestSeats(eligible []int, values map[int]evaluator.HandValue) []int {
	var best []int
	var bestValue evaluator.HandValue
	for _, seat := range eligible {
		v, ok := values[seat]
		if !ok {
			continue
		}
		if len(best) == 0 {
			best = []int{seat}
			bestValue = v
			continue
		}
		switch v.Compare(bestValue) {
		case 1:
			best = []int{seat}
			bestValue = v
		case 0:
			best = append(best, seat)
		}
	}
	if len(best) == 0 {
		// No evaluable hands (cannot happen at a real showdown); fall back
		// to splitting among all eligible seats.
		best = append(best, eligible...)
	}
	return best
}

// awardSlice splits a slice among winners: integer shares, with odd chips
// handed out one at a time in seating order clockwise from the button.
func (s *GameState) awardSlice(amount int, winners []int) {
	if len(winners) == 0 || amount <= 0 {
		return
	}

	share := amount / len(winners)
	remainder := amount % len(winners)

	ordered := append([]int(nil), winners...)
	n := len(s.Players)
	sort.Slice(ordered, func(i, j int) bool {
		return ((ordered[i]-s.Button-1)+2*n)%n < ((ordered[j]-s.Button-1)+2*n)%n
	})

	for _, seat := range ordered {
		s.Payouts[seat] += share
		if remainder > 0 {
			s.Payouts[seat]++
			remainder--
		}
	}
}

func equalSeats(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
