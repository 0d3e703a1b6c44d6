package main

import (
	"context"
	"fmt"
	"math/rand/v2"
	"os"
	"runtime"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/cardroomlabs/holdem/internal/analytics"
	"github.com/cardroomlabs/holdem/internal/config"
	"github.com/cardroomlabs/holdem/internal/game"
	"github.com/cardroomlabs/holdem/internal/gameloop"
	"github.com/cardroomlabs/holdem/internal/randutil"
)

// SimulateCmd plays scripted agents against each other over many seeded
// hands and reports seat 1's winrate.
type SimulateCmd struct {
	Config   string `short:"c" help:"Table configuration file (HCL)" default:"holdem.hcl"`
	Hands    int    `short:"n" help:"Number of hands to play" default:"1000"`
	Seed     int64  `help:"Base seed; hand i uses seed+i" default:"1"`
	Workers  int    `short:"w" help:"Concurrent workers (0 = GOMAXPROCS)" default:"0"`
	Strategy string `help:"Strategy for every seat (call, fold, rand); overrides the config" default:""`
}

func (c *SimulateCmd) Run() error {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return err
	}
	if c.Strategy != "" {
		cfg.Table.Strategy = c.Strategy
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if c.Hands <= 0 {
		return fmt.Errorf("hands must be positive, got %d", c.Hands)
	}

	workers := c.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > c.Hands {
		workers = c.Hands
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{Level: parseLevel(cfg.Log.Level)})
	logger.Info("simulating", "hands", c.Hands, "workers", workers,
		"players", cfg.Table.Players, "strategy", cfg.Table.Strategy)

	outcomes := make(chan analytics.HandOutcome, workers)
	seeds := make(chan int64)

	g, ctx := errgroup.WithContext(context.Background())
	g.Go(func() error {
		defer close(seeds)
		for i := 0; i < c.Hands; i++ {
			select {
			case seeds <- c.Seed + int64(i):
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	var workerGroup errgroup.Group
	for w := 0; w < workers; w++ {
		workerGroup.Go(func() error {
			for seed := range seeds {
				outcome, err := playSeededHand(ctx, cfg, logger, seed)
				if err != nil {
					return err
				}
				select {
				case outcomes <- outcome:
				case <-ctx.Done():
					return ctx.Err()
				}
			}
			return nil
		})
	}
	g.Go(func() error {
		defer close(outcomes)
		return workerGroup.Wait()
	})

	var agg analytics.Aggregate
	for outcome := range outcomes {
		agg.Add(outcome)
	}
	if err := g.Wait(); err != nil {
		return err
	}

	fmt.Println(agg.String())
	return nil
}

// playSeededHand plays one hand with every seat running the configured
// strategy and returns seat 1's result in big blinds.
func playSeededHand(ctx context.Context, cfg *config.Config, logger *log.Logger, seed int64) (analytics.HandOutcome, error) {
	rng := randutil.New(seed)

	agents := make([]gameloop.Agent, cfg.Table.Players)
	for i := range agents {
		agents[i] = newAgent(cfg.Table.Strategy, rng)
	}

	runner, err := gameloop.NewRunner(cfg.GameConfig(), agents, logger,
		gameloop.WithTimeout(cfg.Timeout()))
	if err != nil {
		return analytics.HandOutcome{}, err
	}

	s, events, err := runner.PlayHand(ctx, rng)
	if err != nil {
		return analytics.HandOutcome{}, err
	}

	outcome := analytics.HandOutcome{
		Seed:  seed,
		NetBB: float64(s.Players[0].Stack-cfg.Table.StartingStack) / float64(cfg.Table.BigBlind),
	}
	for _, e := range events {
		if end, ok := e.(game.HandEndEvent); ok {
			outcome.WentToShowdown = end.Showdown
			outcome.PotChips = end.Pot
		}
	}
	return outcome, nil
}

func newAgent(strategy string, rng *rand.Rand) gameloop.Agent {
	switch strategy {
	case "fold":
		return gameloop.FoldingAgent{}
	case "rand":
		return &gameloop.RandomAgent{Rng: rng}
	default:
		return gameloop.CallingAgent{}
	}
}
