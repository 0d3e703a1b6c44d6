package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/cardroomlabs/holdem/internal/config"
	"github.com/cardroomlabs/holdem/internal/display"
	"github.com/cardroomlabs/holdem/internal/game"
	"github.com/cardroomlabs/holdem/internal/gameloop"
	"github.com/cardroomlabs/holdem/internal/history"
	"github.com/cardroomlabs/holdem/internal/randutil"
)

var titleStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#FAFAFA")).
	Background(lipgloss.Color("#7D56F4")).
	Padding(0, 1).
	Bold(true)

// PlayCmd runs hot-seat hands: every seat is prompted on stdin
type PlayCmd struct {
	Config  string `short:"c" help:"Table configuration file (HCL)" default:"holdem.hcl"`
	Players int    `short:"p" help:"Number of players, overriding the config" default:"0"`
	Seed    int64  `help:"Deck seed for reproducible hands (0 = random)" default:"0"`
	Export  string `short:"e" help:"Directory to export hand histories to"`
}

func (c *PlayCmd) Run() error {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return err
	}
	if c.Players > 0 {
		cfg.Table.Players = c.Players
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{Level: parseLevel(cfg.Log.Level)})

	rng, seed := randutil.NewFromTime()
	if c.Seed != 0 {
		seed = c.Seed
		rng = randutil.New(seed)
	}
	logger.Debug("deck seeded", "seed", seed)

	fmt.Println(titleStyle.Render(" ♠ ♥ Texas Hold'em ♦ ♣ "))
	fmt.Println()

	scanner := bufio.NewScanner(os.Stdin)
	agents := make([]gameloop.Agent, cfg.Table.Players)
	for i := range agents {
		agents[i] = stdinAgent(scanner)
	}

	runner, err := gameloop.NewRunner(cfg.GameConfig(), agents, logger,
		gameloop.WithTimeout(cfg.Timeout()))
	if err != nil {
		return err
	}

	s, events, err := runner.PlayHand(context.Background(), rng)
	if err != nil {
		return err
	}

	fmt.Println(display.Table(s))

	exportDir := c.Export
	if exportDir == "" && cfg.History.Enabled {
		exportDir = cfg.History.Dir
	}
	if exportDir != "" {
		if err := os.MkdirAll(exportDir, 0o755); err != nil {
			return err
		}
		path := filepath.Join(exportDir, s.HandID+".json")
		if err := history.WriteFile(path, history.Export(s, events)); err != nil {
			return err
		}
		fmt.Printf("hand history written to %s\n", path)
	}
	return nil
}

// stdinAgent prompts the current actor and parses one action per line,
// re-prompting on malformed input. EOF folds.
func stdinAgent(scanner *bufio.Scanner) gameloop.AgentFunc {
	return func(_ context.Context, s game.GameState, legal []game.LegalAction) (game.Action, error) {
		fmt.Println(display.Table(s))
		for {
			fmt.Print(display.Prompt(s) + " > ")
			if !scanner.Scan() {
				return game.NewAction(game.Fold, ""), nil
			}
			action, err := game.ParseAction(scanner.Text(), s.CurrentPlayer().ID)
			if err != nil {
				fmt.Printf("%v\n", err)
				continue
			}
			if reason, ok := offMenu(action, legal); ok {
				fmt.Println(reason)
				continue
			}
			return action, nil
		}
	}
}

// offMenu pre-screens a parsed action against the legal menu so a typo
// re-prompts instead of auto-folding the seat.
func offMenu(a game.Action, legal []game.LegalAction) (string, bool) {
	stack := 0
	for _, l := range legal {
		if l.Type == game.AllIn {
			stack = l.Min
		}
	}
	for _, l := range legal {
		if l.Type != a.Type {
			continue
		}
		if a.Type == game.Raise && (a.Amount < l.Min || a.Amount > l.Max) && a.Amount != stack {
			return fmt.Sprintf("raise must add between %d and %d chips", l.Min, l.Max), true
		}
		return "", false
	}
	// A full-stack raise is accepted as an all-in even when a proper raise
	// is not on the menu.
	if a.Type == game.Raise && stack > 0 && a.Amount == stack {
		return "", false
	}
	return fmt.Sprintf("%s is not available here", a.Type), true
}

func parseLevel(level string) log.Level {
	parsed, err := log.ParseLevel(level)
	if err != nil {
		return log.InfoLevel
	}
	return parsed
}
