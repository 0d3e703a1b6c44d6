package display

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardroomlabs/holdem/internal/deck"
	"github.com/cardroomlabs/holdem/internal/game"
	"github.com/cardroomlabs/holdem/internal/randutil"
)

func TestFormatCards(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		assert.Equal(t, "", FormatCards(nil))
	})

	t.Run("single card", func(t *testing.T) {
		cards, err := deck.ParseAll("As")
		require.NoError(t, err)
		out := FormatCards(cards)
		assert.Contains(t, out, "A♠")
		assert.Contains(t, out, "[")
		assert.Contains(t, out, "]")
	})

	t.Run("red and black", func(t *testing.T) {
		cards, err := deck.ParseAll("As Kh")
		require.NoError(t, err)
		out := FormatCards(cards)
		assert.Contains(t, out, "A♠")
		assert.Contains(t, out, "K♥")
	})
}

func newHand(t *testing.T) game.GameState {
	t.Helper()
	cfg := game.Config{NumPlayers: 3, SmallBlind: 10, BigBlind: 20, StartingStack: 1000}
	s, _, err := game.NewHand(randutil.New(7), cfg)
	require.NoError(t, err)
	return s
}

func TestTable(t *testing.T) {
	s := newHand(t)
	out := Table(s)

	assert.Contains(t, out, "PREFLOP")
	assert.Contains(t, out, "Pot: 30")
	assert.Contains(t, out, "BTN")
	assert.Contains(t, out, "SB")
	assert.Contains(t, out, "BB")
	assert.Contains(t, out, "p1")
	assert.Contains(t, out, "bet 20")
}

func TestTableShowsWinnerWhenTerminal(t *testing.T) {
	s := newHand(t)
	var err error
	for _, id := range []string{"p1", "p2"} {
		s, _, err = s.Apply(game.NewAction(game.Fold, id))
		require.NoError(t, err)
	}
	require.True(t, s.Terminal)

	out := Table(s)
	assert.Contains(t, out, "p3 wins 30")
}

func TestPrompt(t *testing.T) {
	s := newHand(t)
	out := Prompt(s)

	assert.Contains(t, out, "p1")
	assert.Contains(t, out, "to act")
	assert.Contains(t, out, "(c)all 20")
	assert.Contains(t, out, "(r)aise 40-1000")
	assert.NotContains(t, out, "(ch)eck")
}
