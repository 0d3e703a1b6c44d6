package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardroomlabs/holdem/internal/randutil"
)

func TestNewDeckContainsAllCards(t *testing.T) {
	t.Parallel()

	d := New(randutil.New(1))
	seen := make(map[Card]bool)
	cards, err := d.Deal(52)
	require.NoError(t, err)
	for _, c := range cards {
		assert.False(t, seen[c], "duplicate card %s", c)
		seen[c] = true
	}
	assert.Len(t, seen, 52)
}

func TestShuffleDeterministic(t *testing.T) {
	t.Parallel()

	a := New(randutil.New(42))
	b := New(randutil.New(42))
	ca, err := a.Deal(52)
	require.NoError(t, err)
	cb, err := b.Deal(52)
	require.NoError(t, err)
	assert.Equal(t, ca, cb)

	c := New(randutil.New(43))
	cc, err := c.Deal(52)
	require.NoError(t, err)
	assert.NotEqual(t, ca, cc)
}

func TestDealAdvancesCursor(t *testing.T) {
	t.Parallel()

	d := New(randutil.New(7))
	first, err := d.Deal(2)
	require.NoError(t, err)
	second, err := d.Deal(2)
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
	assert.Equal(t, 48, d.Remaining())
}

func TestDealExhausted(t *testing.T) {
	t.Parallel()

	d := New(randutil.New(7))
	_, err := d.Deal(52)
	require.NoError(t, err)
	_, err = d.Deal(1)
	assert.ErrorIs(t, err, ErrExhausted)
}

func TestBurn(t *testing.T) {
	t.Parallel()

	d := New(randutil.New(7))
	require.NoError(t, d.Burn())
	assert.Equal(t, 51, d.Remaining())
}

func TestFromCardsDealsInOrder(t *testing.T) {
	t.Parallel()

	want, err := ParseAll("Ah Kd 2c")
	require.NoError(t, err)
	d := FromCards(want)
	got, err := d.Deal(3)
	require.NoError(t, err)
	assert.Equal(t, want, got)
	_, err = d.Deal(1)
	assert.ErrorIs(t, err, ErrExhausted)
}

func TestValueSemantics(t *testing.T) {
	t.Parallel()

	d := New(randutil.New(9))
	snapshot := d
	_, err := d.Deal(5)
	require.NoError(t, err)

	// The copy taken before dealing is unaffected.
	assert.Equal(t, 52, snapshot.Remaining())
	assert.Equal(t, 47, d.Remaining())
}
