package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func legalTypes(s GameState) map[ActionType]LegalAction {
	m := make(map[ActionType]LegalAction)
	for _, a := range s.LegalActions() {
		m[a.Type] = a
	}
	return m
}

func TestLegalActionsFacingBigBlind(t *testing.T) {
	t.Parallel()

	s, _ := newTestHand(t, defaultConfig(3))
	legal := legalTypes(s)

	assert.Contains(t, legal, Fold)
	assert.NotContains(t, legal, Check)
	assert.Equal(t, 20, legal[Call].Min)
	assert.Equal(t, 40, legal[Raise].Min, "min raise makes it two big blinds")
	assert.Equal(t, 1000, legal[Raise].Max)
	assert.Equal(t, 1000, legal[AllIn].Min)
}

func TestLegalActionsAfterMatchedBet(t *testing.T) {
	t.Parallel()

	s, _ := newTestHand(t, defaultConfig(3))
	s, _ = apply(t, s, NewAction(Call, "p1"))
	s, _ = apply(t, s, NewAction(Call, "p2"))

	// Big blind with the option: check is in, call is not.
	legal := legalTypes(s)
	assert.Contains(t, legal, Check)
	assert.NotContains(t, legal, Call)
	assert.Contains(t, legal, Raise)
}

func TestLegalActionsOmitRaiseWhenStackTooShort(t *testing.T) {
	t.Parallel()

	// Seat 2 (BB, 30 chips) posts 20 and cannot complete a minimum raise
	// after a shove in front.
	s, _ := newTestHand(t, defaultConfig(3), WithChips([]int{1000, 1000, 30}))
	s, _ = apply(t, s, NewAction(AllIn, "p1"))
	s, _ = apply(t, s, NewAction(Fold, "p2"))

	legal := legalTypes(s)
	assert.NotContains(t, legal, Raise)
	assert.NotContains(t, legal, Call, "short stack cannot flat the shove")
	assert.Contains(t, legal, AllIn)
	assert.Contains(t, legal, Fold)
}

func TestLegalActionsEmptyWhenTerminal(t *testing.T) {
	t.Parallel()

	s, _ := newTestHand(t, defaultConfig(2))
	s, _ = apply(t, s, NewAction(Fold, "p1"))
	assert.Empty(t, s.LegalActions())
}

func TestValidateRejectsCheckFacingBet(t *testing.T) {
	t.Parallel()

	s, _ := newTestHand(t, defaultConfig(3))
	_, _, err := s.Apply(NewAction(Check, "p1"))
	var invalid *InvalidActionError
	require.ErrorAs(t, err, &invalid)
	assert.Contains(t, invalid.Constraint, "cannot check")
}

func TestValidateRejectsCallWithNothingOwed(t *testing.T) {
	t.Parallel()

	s, _ := newTestHand(t, defaultConfig(3))
	s, _ = apply(t, s, NewAction(Call, "p1"))
	s, _ = apply(t, s, NewAction(Call, "p2"))

	_, _, err := s.Apply(NewAction(Call, "p3"))
	var invalid *InvalidActionError
	require.ErrorAs(t, err, &invalid)
	assert.Contains(t, invalid.Constraint, "check instead")
}

func TestValidateRejectsShortCall(t *testing.T) {
	t.Parallel()

	s, _ := newTestHand(t, defaultConfig(3), WithChips([]int{1000, 1000, 30}))
	s, _ = apply(t, s, NewAction(AllIn, "p1"))
	s, _ = apply(t, s, NewAction(Fold, "p2"))

	_, _, err := s.Apply(NewAction(Call, "p3"))
	var invalid *InvalidActionError
	require.ErrorAs(t, err, &invalid)
	assert.Contains(t, invalid.Constraint, "all-in instead")
}

func TestValidateRejectsRaiseBelowMinimum(t *testing.T) {
	t.Parallel()

	// Heads up at 10/20: the button has 10 in, a raise of 20 only makes it
	// 30 which is short of the 40 minimum.
	s, _ := newTestHand(t, defaultConfig(2))
	_, _, err := s.Apply(NewRaise("p1", 20))
	var invalid *InvalidActionError
	require.ErrorAs(t, err, &invalid)
	assert.Contains(t, invalid.Constraint, "minimum")
}

func TestValidateRejectsRaiseOverStack(t *testing.T) {
	t.Parallel()

	s, _ := newTestHand(t, defaultConfig(2))
	_, _, err := s.Apply(NewRaise("p1", 5000))
	var invalid *InvalidActionError
	require.ErrorAs(t, err, &invalid)
	assert.Contains(t, invalid.Constraint, "exceeds stack")
}

func TestShortAllInRaiseDoesNotReopenBetting(t *testing.T) {
	t.Parallel()

	// p1 opens to 100. p3 shoves 130 total, an incomplete raise of 30 on
	// top. p2 folds and action returns to p1, who may call the extra 30
	// but not raise again.
	cfg := defaultConfig(3)
	s, _ := newTestHand(t, cfg, WithChips([]int{1000, 1000, 130}))

	s, _ = apply(t, s, NewRaise("p1", 100))
	s, _ = apply(t, s, NewAction(Fold, "p2"))

	// A raise for the whole stack below the increment reclassifies to an
	// all-in rather than failing.
	next, events := apply(t, s, NewRaise("p3", 110))
	assert.Equal(t, StatusAllIn, next.Players[2].Status)
	assert.Equal(t, 130, next.CurrentBet)
	assert.Equal(t, 80, next.LastRaise, "incomplete raise leaves the increment alone")

	var action PlayerActionEvent
	for _, e := range events {
		if pa, ok := e.(PlayerActionEvent); ok {
			action = pa
		}
	}
	assert.Equal(t, AllIn, action.Action)

	legal := legalTypes(next)
	assert.NotContains(t, legal, Raise, "incomplete raise does not reopen betting")
	assert.Equal(t, 30, legal[Call].Min)

	_, _, err := next.Apply(NewRaise("p1", 110))
	var invalid *InvalidActionError
	require.ErrorAs(t, err, &invalid)
	assert.Contains(t, invalid.Constraint, "not reopened")
}

func TestFullStackRaiseThatMeetsMinimumReopens(t *testing.T) {
	t.Parallel()

	// p3 shoves a full raise; p1 may raise again.
	s, _ := newTestHand(t, defaultConfig(3), WithChips([]int{1000, 1000, 300}))

	s, _ = apply(t, s, NewRaise("p1", 100))
	s, _ = apply(t, s, NewAction(Fold, "p2"))
	s, _ = apply(t, s, NewAction(AllIn, "p3"))

	assert.Equal(t, 300, s.CurrentBet)
	assert.Equal(t, 200, s.LastRaise)

	legal := legalTypes(s)
	assert.Contains(t, legal, Raise)
	assert.Equal(t, 400, legal[Raise].Min)
}
