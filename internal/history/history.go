// Package history builds exportable hand-history records from terminal
// snapshots and the event stream, and writes them as JSON.
package history

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/cardroomlabs/holdem/internal/deck"
	"github.com/cardroomlabs/holdem/internal/fileutil"
	"github.com/cardroomlabs/holdem/internal/game"
)

// GameType labels every exported record
const GameType = "No-Limit Texas Hold'em"

// Record is the exported hand-history document. The engine does not know
// about this schema; it is assembled here from read-only snapshot state.
type Record struct {
	HandID         string          `json:"hand_id"`
	Timestamp      time.Time       `json:"timestamp"`
	GameType       string          `json:"game_type"`
	HandHistory    []string        `json:"hand_history"`
	FinalState     FinalState      `json:"final_state"`
	WinnerAnalysis *WinnerAnalysis `json:"winner_analysis,omitempty"`
	Statistics     Statistics      `json:"statistics"`
}

// FinalState captures the table at hand end
type FinalState struct {
	Street         string         `json:"street"`
	Pot            int            `json:"pot"`
	CommunityCards []string       `json:"community_cards"`
	Players        []PlayerRecord `json:"players"`
}

// PlayerRecord is one seat's final line in the export
type PlayerRecord struct {
	ID         string   `json:"id"`
	FinalStack int      `json:"final_stack"`
	Position   string   `json:"position"`
	Status     string   `json:"status"`
	HoleCards  []string `json:"hole_cards"`
}

// WinnerAnalysis summarizes settlement. WinnerID carries the first winner
// for single-winner hands; Winners and Payouts carry the full split.
type WinnerAnalysis struct {
	WinnerID string         `json:"winner_id"`
	Winners  []string       `json:"winners"`
	PotWon   int            `json:"pot_won"`
	Payouts  map[string]int `json:"payouts"`
	Showdown bool           `json:"showdown"`
}

// Statistics holds per-player result lines keyed by player id
type Statistics struct {
	Players map[string]PlayerStats `json:"players"`
}

// PlayerStats is the per-player summary consumed by the analytics report
type PlayerStats struct {
	FinalStack int    `json:"final_stack"`
	Position   string `json:"position"`
	Status     string `json:"status"`
	IsWinner   bool   `json:"is_winner"`
	Winnings   int    `json:"winnings"`
}

// Export builds a Record from a snapshot and the events accumulated over
// the hand. The snapshot should be terminal; exporting a live hand records
// whatever state it has reached.
func Export(s game.GameState, events []game.Event) *Record {
	r := &Record{
		HandID:    s.HandID,
		Timestamp: time.Now().UTC(),
		GameType:  GameType,
		FinalState: FinalState{
			Street:         s.Street.String(),
			Pot:            s.Pot,
			CommunityCards: cardStrings(s.Board),
		},
		Statistics: Statistics{Players: make(map[string]PlayerStats, len(s.Players))},
	}

	for _, e := range events {
		r.HandHistory = append(r.HandHistory, e.String())
	}

	n := len(s.Players)
	for seat, p := range s.Players {
		position := game.PositionName(seat, s.Button, n)
		winnings := 0
		if seat < len(s.Payouts) {
			winnings = s.Payouts[seat]
		}
		r.FinalState.Players = append(r.FinalState.Players, PlayerRecord{
			ID:         p.ID,
			FinalStack: p.Stack,
			Position:   position,
			Status:     p.Status.String(),
			HoleCards:  cardStrings(p.HoleCards),
		})
		r.Statistics.Players[p.ID] = PlayerStats{
			FinalStack: p.Stack,
			Position:   position,
			Status:     p.Status.String(),
			IsWinner:   winnings > 0,
			Winnings:   winnings,
		}
	}

	if s.Terminal {
		r.WinnerAnalysis = winnerAnalysis(s, events)
	}
	return r
}

func winnerAnalysis(s game.GameState, events []game.Event) *WinnerAnalysis {
	wa := &WinnerAnalysis{Payouts: make(map[string]int)}
	total := 0
	for seat, amount := range s.Payouts {
		if amount <= 0 {
			continue
		}
		id := s.Players[seat].ID
		wa.Payouts[id] = amount
		wa.Winners = append(wa.Winners, id)
		total += amount
	}
	wa.PotWon = total
	if len(wa.Winners) > 0 {
		wa.WinnerID = wa.Winners[0]
	}
	for _, e := range events {
		if end, ok := e.(game.HandEndEvent); ok {
			wa.Showdown = end.Showdown
		}
	}
	return wa
}

func cardStrings(cards []deck.Card) []string {
	out := make([]string, len(cards))
	for i, c := range cards {
		out[i] = c.String()
	}
	return out
}

// Encode writes the record to w as indented JSON
func Encode(w io.Writer, r *Record) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("history: encode: %w", err)
	}
	return nil
}

// WriteFile writes the record to path atomically
func WriteFile(path string, r *Record) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("history: marshal: %w", err)
	}
	return fileutil.WriteFileAtomic(path, append(data, '\n'), 0o644)
}

// Load reads a previously exported record from r
func Load(r io.Reader) (*Record, error) {
	var rec Record
	if err := json.NewDecoder(r).Decode(&rec); err != nil {
		return nil, fmt.Errorf("history: decode: %w", err)
	}
	return &rec, nil
}
