// Package analytics turns exported hand histories into summaries and
// human-readable reports.
package analytics

import (
	"fmt"
	"os"
	"strings"

	"github.com/cardroomlabs/holdem/internal/history"
)

// Summary is the condensed view of a single exported hand
type Summary struct {
	HandID       string
	GameType     string
	Timestamp    string
	NumPlayers   int
	FinalStreet  string
	TotalActions int
	Winner       string
	PotSize      int
}

// Summarize condenses a record
func Summarize(r *history.Record) Summary {
	s := Summary{
		HandID:       r.HandID,
		GameType:     r.GameType,
		Timestamp:    r.Timestamp.Format("2006-01-02 15:04:05 MST"),
		NumPlayers:   len(r.FinalState.Players),
		FinalStreet:  r.FinalState.Street,
		TotalActions: len(r.HandHistory),
	}
	if r.WinnerAnalysis != nil {
		s.Winner = r.WinnerAnalysis.WinnerID
		s.PotSize = r.WinnerAnalysis.PotWon
	}
	return s
}

// AnalyzeFile loads an exported history file and summarizes it
func AnalyzeFile(path string) (*history.Record, Summary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, Summary{}, fmt.Errorf("analytics: open %s: %w", path, err)
	}
	defer f.Close()

	r, err := history.Load(f)
	if err != nil {
		return nil, Summary{}, err
	}
	return r, Summarize(r), nil
}

// Report renders the full analysis report for a record
func Report(r *history.Record) string {
	s := Summarize(r)

	var b strings.Builder
	line := strings.Repeat("=", 50)
	section := strings.Repeat("-", 20)

	fmt.Fprintf(&b, "POKER GAME ANALYSIS REPORT\n%s\n", line)
	fmt.Fprintf(&b, "Game Type: %s\n", s.GameType)
	fmt.Fprintf(&b, "Hand: %s\n", s.HandID)
	fmt.Fprintf(&b, "Timestamp: %s\n", s.Timestamp)
	fmt.Fprintf(&b, "Players: %d\n", s.NumPlayers)
	fmt.Fprintf(&b, "Final Street: %s\n", s.FinalStreet)
	fmt.Fprintf(&b, "Total Actions: %d\n\n", s.TotalActions)

	fmt.Fprintf(&b, "RESULTS:\n%s\n", section)
	if s.Winner != "" {
		fmt.Fprintf(&b, "Winner: %s\n", s.Winner)
		fmt.Fprintf(&b, "Pot Size: %d\n", s.PotSize)
		if r.WinnerAnalysis != nil && len(r.WinnerAnalysis.Winners) > 1 {
			fmt.Fprintf(&b, "Split between: %s\n", strings.Join(r.WinnerAnalysis.Winners, ", "))
		}
	} else {
		b.WriteString("Hand did not complete\n")
	}
	b.WriteString("\n")

	if len(r.Statistics.Players) > 0 {
		fmt.Fprintf(&b, "PLAYER PERFORMANCE:\n%s\n", section)
		for _, p := range r.FinalState.Players {
			stats, ok := r.Statistics.Players[p.ID]
			if !ok {
				continue
			}
			fmt.Fprintf(&b, "%s (%s):\n", p.ID, stats.Position)
			fmt.Fprintf(&b, "  Final Stack: %d\n", stats.FinalStack)
			fmt.Fprintf(&b, "  Status: %s\n", stats.Status)
			if stats.Winnings > 0 {
				fmt.Fprintf(&b, "  Winnings: %d\n", stats.Winnings)
			}
		}
		b.WriteString("\n")
	}

	if len(r.HandHistory) > 0 {
		fmt.Fprintf(&b, "ACTION TIMELINE:\n%s\n", section)
		for i, entry := range r.HandHistory {
			fmt.Fprintf(&b, "%2d. %s\n", i+1, entry)
		}
	}

	return b.String()
}
