// Package game implements the No-Limit Texas Hold'em betting engine: chip
// accounting across a hand, legal-action validation, street advancement and
// pot settlement including side pots.
//
// The engine is a deterministic state machine over immutable snapshots.
// GameState is a value; Apply returns a new snapshot plus the events the
// transition emitted, and never mutates its receiver. Callers may hold and
// compare historical snapshots safely. The engine never blocks: it accepts
// an action whenever one is supplied and rejects out-of-turn or post-hand
// submissions with an InvalidActionError. Waiting for a player is the
// caller's concern (see the gameloop package).
//
// Chip conservation is an enforced invariant: after every transition the sum
// of stacks, outstanding street bets and the pot equals the total chips
// bought in, and a violation aborts the hand with a ChipConservationError.
package game
