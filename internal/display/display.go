// Package display renders game snapshots for the terminal.
package display

import (
	"fmt"
	"strings"

	"github.com/cardroomlabs/holdem/internal/deck"
	"github.com/cardroomlabs/holdem/internal/game"
)

// FormatCard renders a single card with its suit glyph, red suits colored
func FormatCard(c deck.Card) string {
	text := c.Rank.String() + c.Suit.Symbol()
	if c.IsRed() {
		return redCardStyle.Render(text)
	}
	return blackCardStyle.Render(text)
}

// FormatCards renders a bracketed card group, "[A♠ K♥]"
func FormatCards(cards []deck.Card) string {
	if len(cards) == 0 {
		return ""
	}
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = FormatCard(c)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// Table renders the full table view for a snapshot: street and board, pot,
// and one line per seat with position, stack and status.
func Table(s game.GameState) string {
	var b strings.Builder

	street := strings.ToUpper(s.Street.String())
	if len(s.Board) > 0 {
		b.WriteString(titleStyle.Render(street) + " " + FormatCards(s.Board) + "\n")
	} else {
		b.WriteString(titleStyle.Render(street) + "\n")
	}
	b.WriteString(potStyle.Render(fmt.Sprintf("Pot: %d", potWithBets(s))) + "\n")

	n := len(s.Players)
	for seat, p := range s.Players {
		line := fmt.Sprintf("%-3s %-8s %6d", game.PositionName(seat, s.Button, n), p.ID, p.Stack)
		if p.Bet > 0 {
			line += fmt.Sprintf("  bet %d", p.Bet)
		}
		switch p.Status {
		case game.StatusFolded:
			line = foldedStyle.Render(line + "  folded")
		case game.StatusAllIn:
			line += "  all-in"
		case game.StatusOut:
			line = foldedStyle.Render(line + "  out")
		}
		if seat == s.Actor && !s.Terminal {
			line = actorStyle.Render("> ") + line
		} else {
			line = "  " + line
		}
		b.WriteString(line + "\n")
	}

	if s.Terminal {
		b.WriteString(results(s))
	}
	return b.String()
}

func results(s game.GameState) string {
	var b strings.Builder
	for _, seat := range s.Winners {
		b.WriteString(winnerStyle.Render(fmt.Sprintf("%s wins %d", s.Players[seat].ID, s.Payouts[seat])) + "\n")
	}
	return b.String()
}

// Prompt renders the action prompt for the current actor with its legal
// action menu.
func Prompt(s game.GameState) string {
	p := s.CurrentPlayer()
	if p == nil {
		return ""
	}

	var opts []string
	for _, a := range s.LegalActions() {
		switch a.Type {
		case game.Fold:
			opts = append(opts, "(f)old")
		case game.Check:
			opts = append(opts, "(ch)eck")
		case game.Call:
			opts = append(opts, fmt.Sprintf("(c)all %d", a.Min))
		case game.Raise:
			opts = append(opts, fmt.Sprintf("(r)aise %d-%d", a.Min, a.Max))
		case game.AllIn:
			opts = append(opts, fmt.Sprintf("(a)ll-in %d", a.Min))
		}
	}
	hole := FormatCards(p.HoleCards)
	return fmt.Sprintf("%s %s to act: %s", p.ID, hole, strings.Join(opts, ", "))
}

func potWithBets(s game.GameState) int {
	total := s.Pot
	for i := range s.Players {
		total += s.Players[i].Bet
	}
	return total
}
