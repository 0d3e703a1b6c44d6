// Package gameloop drives a hand from creation to settlement, pulling one
// decision per turn from the seated agents. The engine itself never blocks;
// waiting on an agent, the per-turn timeout and auto-folding live here.
package gameloop

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/cardroomlabs/holdem/internal/game"
)

const defaultTimeout = 30 * time.Second

// Agent decides an action for the seat it occupies. Act is called only when
// the seat is due to act; the snapshot is the agent's private copy and the
// legal slice describes what the engine will accept.
type Agent interface {
	Act(ctx context.Context, s game.GameState, legal []game.LegalAction) (game.Action, error)
}

// Runner plays hands for a fixed table of agents
type Runner struct {
	cfg      game.Config
	agents   []Agent
	logger   *log.Logger
	clock    quartz.Clock
	timeout  time.Duration
	onEvent  func(game.Event)
	handOpts []game.HandOption
}

// RunnerOption configures a Runner
type RunnerOption func(*Runner)

// WithClock substitutes the clock used for turn timeouts
func WithClock(c quartz.Clock) RunnerOption {
	return func(r *Runner) { r.clock = c }
}

// WithTimeout sets the per-turn decision timeout
func WithTimeout(d time.Duration) RunnerOption {
	return func(r *Runner) { r.timeout = d }
}

// WithEventHandler forwards every emitted event as it happens
func WithEventHandler(fn func(game.Event)) RunnerOption {
	return func(r *Runner) { r.onEvent = fn }
}

// WithHandOptions passes options through to hand creation
func WithHandOptions(opts ...game.HandOption) RunnerOption {
	return func(r *Runner) { r.handOpts = opts }
}

// NewRunner seats one agent per player
func NewRunner(cfg game.Config, agents []Agent, logger *log.Logger, opts ...RunnerOption) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if len(agents) != cfg.NumPlayers {
		return nil, fmt.Errorf("gameloop: %d agents for %d seats", len(agents), cfg.NumPlayers)
	}

	r := &Runner{
		cfg:     cfg,
		agents:  agents,
		logger:  logger,
		clock:   quartz.NewReal(),
		timeout: defaultTimeout,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// PlayHand runs one hand to completion and returns the terminal snapshot
// with the full event stream. An agent that times out, errors, or keeps
// submitting invalid actions is folded.
func (r *Runner) PlayHand(ctx context.Context, rng *rand.Rand) (game.GameState, []game.Event, error) {
	s, events, err := game.NewHand(rng, r.cfg, r.handOpts...)
	if err != nil {
		return s, nil, err
	}
	r.emit(events)

	for !s.Terminal {
		if err := ctx.Err(); err != nil {
			return s, events, err
		}

		seat := s.Actor
		action, err := r.decide(ctx, s, seat)
		if err != nil {
			return s, events, err
		}

		next, more, err := s.Apply(action)
		if err != nil {
			var invalid *game.InvalidActionError
			if !errors.As(err, &invalid) {
				return s, events, err
			}
			r.logger.Warn("invalid action, folding",
				"player", s.Players[seat].ID, "action", action, "constraint", invalid.Constraint)
			next, more, err = s.Apply(game.NewAction(game.Fold, s.Players[seat].ID))
			if err != nil {
				return s, events, err
			}
		}

		s = next
		events = append(events, more...)
		r.emit(more)
	}

	return s, events, nil
}

// decide asks the seat's agent for an action, folding on timeout or error
func (r *Runner) decide(ctx context.Context, s game.GameState, seat int) (game.Action, error) {
	playerID := s.Players[seat].ID
	fold := game.NewAction(game.Fold, playerID)

	timedOut := make(chan struct{})
	timer := r.clock.AfterFunc(r.timeout, func() {
		close(timedOut)
	})
	defer timer.Stop()

	type result struct {
		action game.Action
		err    error
	}
	resultCh := make(chan result, 1)

	agentCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	go func() {
		a, err := r.agents[seat].Act(agentCtx, s, s.LegalActions())
		resultCh <- result{a, err}
	}()

	select {
	case res := <-resultCh:
		if res.err != nil {
			r.logger.Warn("agent error, folding", "player", playerID, "error", res.err)
			return fold, nil
		}
		res.action.PlayerID = playerID
		return res.action, nil

	case <-timedOut:
		r.logger.Warn("decision timeout, folding", "player", playerID, "timeout", r.timeout)
		return fold, nil

	case <-ctx.Done():
		return fold, ctx.Err()
	}
}

func (r *Runner) emit(events []game.Event) {
	if r.onEvent == nil {
		return
	}
	for _, e := range events {
		r.onEvent(e)
	}
}
