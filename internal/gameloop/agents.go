package gameloop

import (
	"context"
	"math/rand/v2"

	"github.com/cardroomlabs/holdem/internal/game"
)

// CallingAgent checks when it can and calls otherwise
type CallingAgent struct{}

func (CallingAgent) Act(_ context.Context, _ game.GameState, legal []game.LegalAction) (game.Action, error) {
	for _, a := range legal {
		if a.Type == game.Check {
			return game.Action{Type: game.Check}, nil
		}
	}
	for _, a := range legal {
		if a.Type == game.Call {
			return game.Action{Type: game.Call}, nil
		}
	}
	return game.Action{Type: game.Fold}, nil
}

// FoldingAgent checks when free and folds to any bet
type FoldingAgent struct{}

func (FoldingAgent) Act(_ context.Context, _ game.GameState, legal []game.LegalAction) (game.Action, error) {
	for _, a := range legal {
		if a.Type == game.Check {
			return game.Action{Type: game.Check}, nil
		}
	}
	return game.Action{Type: game.Fold}, nil
}

// RandomAgent picks uniformly among the legal actions, choosing a uniform
// amount within bounds for raises. Useful for simulation and fuzzing.
type RandomAgent struct {
	Rng *rand.Rand
}

func (r *RandomAgent) Act(_ context.Context, _ game.GameState, legal []game.LegalAction) (game.Action, error) {
	choice := legal[r.Rng.IntN(len(legal))]
	a := game.Action{Type: choice.Type}
	if choice.Type == game.Raise {
		a.Amount = choice.Min + r.Rng.IntN(choice.Max-choice.Min+1)
	}
	return a, nil
}

// AgentFunc adapts a function to the Agent interface
type AgentFunc func(ctx context.Context, s game.GameState, legal []game.LegalAction) (game.Action, error)

func (f AgentFunc) Act(ctx context.Context, s game.GameState, legal []game.LegalAction) (game.Action, error) {
	return f(ctx, s, legal)
}
