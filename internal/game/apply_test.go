package game

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardroomlabs/holdem/internal/deck"
	"github.com/cardroomlabs/holdem/internal/randutil"
)

// apply is a test helper asserting the action succeeds
func apply(t *testing.T, s GameState, a Action) (GameState, []Event) {
	t.Helper()
	next, events, err := s.Apply(a)
	require.NoError(t, err)
	return next, events
}

func TestApplyRejectsOutOfTurn(t *testing.T) {
	t.Parallel()

	s, _ := newTestHand(t, defaultConfig(3))
	require.Equal(t, 0, s.Actor)

	_, events, err := s.Apply(NewAction(Fold, "p2"))
	var invalid *InvalidActionError
	require.ErrorAs(t, err, &invalid)
	assert.Contains(t, invalid.Constraint, "out of turn")
	assert.Empty(t, events, "rejected actions emit no events")
}

func TestApplyRejectsUnknownPlayer(t *testing.T) {
	t.Parallel()

	s, _ := newTestHand(t, defaultConfig(2))
	_, _, err := s.Apply(NewAction(Fold, "nobody"))
	var invalid *InvalidActionError
	assert.ErrorAs(t, err, &invalid)
}

func TestApplyRejectsWhenTerminal(t *testing.T) {
	t.Parallel()

	s, _ := newTestHand(t, defaultConfig(2))
	s, _ = apply(t, s, NewAction(Fold, "p1"))
	require.True(t, s.Terminal)

	_, _, err := s.Apply(NewAction(Check, "p2"))
	var invalid *InvalidActionError
	require.ErrorAs(t, err, &invalid)
	assert.Contains(t, invalid.Constraint, "complete")
}

func TestApplyDoesNotMutateReceiver(t *testing.T) {
	t.Parallel()

	s, _ := newTestHand(t, defaultConfig(2))
	before := s.Players[0].Stack
	beforeVersion := s.Version

	next, _ := apply(t, s, NewAction(Call, "p1"))

	assert.Equal(t, before, s.Players[0].Stack, "old snapshot unchanged")
	assert.Equal(t, beforeVersion, s.Version)
	assert.Equal(t, beforeVersion+1, next.Version)
}

// Scenario A: heads-up, SB folds preflop. The big blind collects both
// blinds without any dealing or evaluation.
func TestScenarioHeadsUpFoldPreflop(t *testing.T) {
	t.Parallel()

	s, _ := newTestHand(t, defaultConfig(2))

	s, events := apply(t, s, NewAction(Fold, "p1"))

	assert.True(t, s.Terminal)
	assert.Equal(t, Complete, s.Street)
	assert.Equal(t, []int{1}, s.Winners)
	assert.Equal(t, 30, s.Payouts[1])
	assert.Equal(t, 990, s.Players[0].Stack)
	assert.Equal(t, 1010, s.Players[1].Stack)
	assert.Empty(t, s.Board, "no community cards were dealt")

	require.Len(t, events, 2)
	assert.Equal(t, EventPlayerAction, events[0].Type())
	assert.Equal(t, EventHandEnd, events[1].Type())
	end := events[1].(HandEndEvent)
	assert.False(t, end.Showdown)
	assert.Equal(t, 30, end.Pot)
}

// Scenario B: all-in preflop showdown, pair of aces beats pair of deuces.
func TestScenarioShowdownAcesWin(t *testing.T) {
	t.Parallel()

	d := riggedDeck(t,
		[]string{"7c 2d", "Ah Ad"}, // deal order: seat 1 (BB), then seat 0 (button/SB)
		"Kh Qd Jh", "3s", "2h",
		"5s 5d 5c",
	)
	cfg := Config{NumPlayers: 2, SmallBlind: 10, BigBlind: 20, StartingStack: 100}
	s, _ := newTestHand(t, cfg, WithDeck(d))

	// Button shoves, big blind calls all-in.
	s, _ = apply(t, s, NewAction(AllIn, "p1"))
	s, events := apply(t, s, NewAction(Call, "p2"))

	require.True(t, s.Terminal)
	assert.Len(t, s.Board, 5, "board runs out once everyone is all-in")
	assert.Equal(t, []int{0}, s.Winners)
	assert.Equal(t, 200, s.Payouts[0])
	assert.Equal(t, 200, s.Players[0].Stack)
	assert.Equal(t, 0, s.Players[1].Stack)
	assert.Equal(t, StatusOut, s.Players[1].Status)

	last := events[len(events)-1].(HandEndEvent)
	assert.True(t, last.Showdown)
	assert.Equal(t, map[string]int{"p1": 200}, last.Payouts)
}

// Scenario C: three-way all-in with stacks 100/500/1000 forms tiered pots
// of 300 and 800, plus the 500 uncalled excess returned to the largest
// stack.
func TestScenarioThreeWayAllInSidePots(t *testing.T) {
	t.Parallel()

	d := riggedDeck(t,
		[]string{"As Ad", "Ks Kd", "Qs Qd"}, // seats 1, 2, 0
		"2h 3h 7c", "9d", "Jc",
		"2c 2d 4c",
	)
	cfg := Config{NumPlayers: 3, SmallBlind: 10, BigBlind: 20, StartingStack: 1000}
	s, _ := newTestHand(t, cfg, WithDeck(d), WithChips([]int{1000, 100, 500}))

	s, _ = apply(t, s, NewAction(AllIn, "p1"))
	s, _ = apply(t, s, NewAction(AllIn, "p2"))
	s, _ = apply(t, s, NewAction(AllIn, "p3"))

	require.True(t, s.Terminal)
	require.Len(t, s.Pots, 3)

	// Main pot: 100 x 3 contributors, everyone eligible, aces win.
	assert.Equal(t, 300, s.Pots[0].Amount)
	assert.ElementsMatch(t, []int{0, 1, 2}, s.Pots[0].Eligible)
	assert.Equal(t, []int{1}, s.Pots[0].Winners)

	// Side pot: 400 x 2 contributors, kings beat queens.
	assert.Equal(t, 800, s.Pots[1].Amount)
	assert.ElementsMatch(t, []int{0, 2}, s.Pots[1].Eligible)
	assert.Equal(t, []int{2}, s.Pots[1].Winners)

	// Uncalled excess goes back to the deep stack.
	assert.Equal(t, 500, s.Pots[2].Amount)
	assert.Equal(t, []int{0}, s.Pots[2].Eligible)

	assert.Equal(t, []int{500, 300, 800}, s.Payouts)
	assert.Equal(t, 500, s.Players[0].Stack)
	assert.Equal(t, 300, s.Players[1].Stack)
	assert.Equal(t, 800, s.Players[2].Stack)
}

// Scenario D: a two-way river tie splits an odd pot, with the spare chip
// going to the first winner clockwise from the button.
func TestScenarioOddChipTieSplit(t *testing.T) {
	t.Parallel()

	d := riggedDeck(t,
		[]string{"9s 9h", "2d 3d", "2c 3c"}, // seats 1, 2, 0
		"Ah Kh Qh", "Jh", "Th",
		"4s 4d 4c",
	)
	cfg := Config{NumPlayers: 3, SmallBlind: 1, BigBlind: 2, StartingStack: 200}
	s, _ := newTestHand(t, cfg, WithDeck(d))

	s, _ = apply(t, s, NewRaise("p1", 50)) // UTG makes it 50
	s, _ = apply(t, s, NewAction(Fold, "p2"))
	s, _ = apply(t, s, NewAction(Call, "p3"))

	// Check it down.
	for _, id := range []string{"p3", "p1", "p3", "p1", "p3", "p1"} {
		s, _ = apply(t, s, NewAction(Check, id))
	}

	require.True(t, s.Terminal)
	assert.Equal(t, 101, s.Payouts[0]+s.Payouts[2])
	assert.ElementsMatch(t, []int{0, 2}, s.Winners)

	// Seat 2 sits closer to the button clockwise and takes the odd chip.
	assert.Equal(t, 51, s.Payouts[2])
	assert.Equal(t, 50, s.Payouts[0])
}

func TestBigBlindGetsOption(t *testing.T) {
	t.Parallel()

	s, _ := newTestHand(t, defaultConfig(3))

	s, _ = apply(t, s, NewAction(Call, "p1"))
	s, _ = apply(t, s, NewAction(Call, "p2"))

	// All bets are matched but the big blind has not acted.
	assert.Equal(t, Preflop, s.Street)
	assert.Equal(t, 2, s.Actor, "big blind still gets the option")

	s, _ = apply(t, s, NewAction(Check, "p3"))
	assert.Equal(t, Flop, s.Street)
	assert.Len(t, s.Board, 3)
}

func TestStreetProgressionAndFirstActor(t *testing.T) {
	t.Parallel()

	s, _ := newTestHand(t, defaultConfig(3))

	s, _ = apply(t, s, NewAction(Call, "p1"))
	s, _ = apply(t, s, NewAction(Call, "p2"))
	s, events := apply(t, s, NewAction(Check, "p3"))

	require.Equal(t, Flop, s.Street)
	assert.Equal(t, 1, s.Actor, "small blind acts first postflop")
	assert.Equal(t, 0, s.CurrentBet)
	assert.Equal(t, 20, s.LastRaise, "minimum raise resets to the big blind")
	assert.Equal(t, 60, s.Pot)

	var street *StreetChangeEvent
	for _, e := range events {
		if sc, ok := e.(StreetChangeEvent); ok {
			street = &sc
		}
	}
	require.NotNil(t, street)
	assert.Len(t, street.Board, 3)

	s, _ = apply(t, s, NewAction(Check, "p2"))
	s, _ = apply(t, s, NewAction(Check, "p3"))
	s, _ = apply(t, s, NewAction(Check, "p1"))
	assert.Equal(t, Turn, s.Street)
	assert.Len(t, s.Board, 4)

	s, _ = apply(t, s, NewAction(Check, "p2"))
	s, _ = apply(t, s, NewAction(Check, "p3"))
	s, _ = apply(t, s, NewAction(Check, "p1"))
	assert.Equal(t, River, s.Street)
	assert.Len(t, s.Board, 5)

	s, _ = apply(t, s, NewAction(Check, "p2"))
	s, _ = apply(t, s, NewAction(Check, "p3"))
	s, _ = apply(t, s, NewAction(Check, "p1"))
	assert.True(t, s.Terminal)
	assert.Equal(t, Complete, s.Street)
}

func TestHeadsUpPostflopOrderReverses(t *testing.T) {
	t.Parallel()

	s, _ := newTestHand(t, defaultConfig(2))

	// Preflop the button opens; the big blind's check closes the round.
	s, _ = apply(t, s, NewAction(Call, "p1"))
	s, _ = apply(t, s, NewAction(Check, "p2"))

	// Postflop the big blind leads every street, the button acts last,
	// regardless of which seat closed the previous round.
	require.Equal(t, Flop, s.Street)
	assert.Equal(t, 1, s.Actor, "big blind acts first postflop heads-up")

	s, _ = apply(t, s, NewAction(Check, "p2"))
	s, _ = apply(t, s, NewAction(Check, "p1"))
	require.Equal(t, Turn, s.Street)
	assert.Equal(t, 1, s.Actor)

	s, _ = apply(t, s, NewAction(Check, "p2"))
	s, _ = apply(t, s, NewAction(Check, "p1"))
	require.Equal(t, River, s.Street)
	assert.Equal(t, 1, s.Actor)

	s, _ = apply(t, s, NewAction(Check, "p2"))
	s, _ = apply(t, s, NewAction(Check, "p1"))
	assert.True(t, s.Terminal)
	total := 0
	for _, p := range s.Payouts {
		total += p
	}
	assert.Equal(t, 40, total)
}

func TestApplyRejectsWhenNobodyCanAct(t *testing.T) {
	t.Parallel()

	s := GameState{
		Players: []Player{
			{ID: "p1", Status: StatusAllIn},
			{ID: "p2", Status: StatusAllIn},
		},
		Actor: -1,
		acted: []bool{false, false},
	}

	_, _, err := s.Apply(NewAction(Check, "p1"))
	var invalid *InvalidActionError
	require.ErrorAs(t, err, &invalid)
	assert.Contains(t, invalid.Constraint, "no action pending")
}

func TestRaiseReopensBetting(t *testing.T) {
	t.Parallel()

	s, _ := newTestHand(t, defaultConfig(3))

	s, _ = apply(t, s, NewAction(Call, "p1"))
	s, _ = apply(t, s, NewAction(Call, "p2"))
	s, _ = apply(t, s, NewRaise("p3", 60)) // BB raises to 80

	assert.Equal(t, 80, s.CurrentBet)
	assert.Equal(t, 60, s.LastRaise)
	assert.Equal(t, Preflop, s.Street, "callers must respond to the raise")
	assert.Equal(t, 0, s.Actor)

	s, _ = apply(t, s, NewAction(Call, "p1"))
	s, _ = apply(t, s, NewAction(Fold, "p2"))
	assert.Equal(t, Flop, s.Street)
}

func TestEventPerAction(t *testing.T) {
	t.Parallel()

	s, _ := newTestHand(t, defaultConfig(3))

	actions := []Action{
		NewAction(Call, "p1"),
		NewAction(Fold, "p2"),
		NewAction(Check, "p3"),
	}
	for _, a := range actions {
		var events []Event
		s, events = apply(t, s, a)

		count := 0
		for _, e := range events {
			if e.Type() == EventPlayerAction {
				count++
			}
		}
		assert.Equal(t, 1, count, "exactly one action event per applied action")
	}
}

func TestDeckExhaustedIsFatal(t *testing.T) {
	t.Parallel()

	// A deck holding only the hole cards cannot run out the board.
	short, err := deck.ParseAll("7c 2d Ah Ad")
	require.NoError(t, err)
	cfg := Config{NumPlayers: 2, SmallBlind: 10, BigBlind: 20, StartingStack: 100}
	s, _, err := NewHand(nil, cfg, WithDeck(deck.FromCards(short)))
	require.NoError(t, err)

	s, _, err = s.Apply(NewAction(AllIn, "p1"))
	require.NoError(t, err)
	_, _, err = s.Apply(NewAction(Call, "p2"))
	assert.ErrorIs(t, err, ErrDeckExhausted)
}

func TestChipConservationAcrossRandomHands(t *testing.T) {
	t.Parallel()

	for seed := int64(0); seed < 30; seed++ {
		rng := randutil.New(seed)
		players := 2 + int(seed%5)
		cfg := Config{NumPlayers: players, SmallBlind: 5, BigBlind: 10, StartingStack: 200}
		s, _, err := NewHand(rng, cfg)
		require.NoError(t, err)

		total := players * 200
		for steps := 0; !s.Terminal && steps < 500; steps++ {
			require.Equal(t, total, s.TotalChips(), "seed %d", seed)

			legal := s.LegalActions()
			require.NotEmpty(t, legal)
			choice := legal[rng.IntN(len(legal))]
			actor := s.CurrentPlayer().ID

			var a Action
			switch choice.Type {
			case Raise:
				amount := choice.Min + rng.IntN(choice.Max-choice.Min+1)
				a = NewRaise(actor, amount)
			default:
				a = NewAction(choice.Type, actor)
			}

			next, _, err := s.Apply(a)
			require.NoError(t, err, "seed %d action %s", seed, a)
			s = next
		}

		require.True(t, s.Terminal, "seed %d did not terminate", seed)
		assert.Equal(t, total, s.TotalChips(), "seed %d", seed)

		paid := 0
		for _, p := range s.Payouts {
			paid += p
		}
		potTotal := 0
		for _, pot := range s.Pots {
			potTotal += pot.Amount
		}
		assert.Equal(t, potTotal, paid, "seed %d: slice awards must sum to the pot", seed)
	}
}

func TestConservationErrorType(t *testing.T) {
	t.Parallel()

	err := error(&ChipConservationError{Want: 100, Got: 99})
	var cc *ChipConservationError
	assert.True(t, errors.As(err, &cc))
	assert.Contains(t, err.Error(), "chip conservation")
}
