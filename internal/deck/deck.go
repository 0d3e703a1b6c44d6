package deck

import (
	"errors"

	rand "math/rand/v2"
)

// ErrExhausted is returned when more cards are requested than remain.
// With at most 9 players a hand deals 18 hole cards, 3 burns and 5 board
// cards, so hitting this indicates an engine bug rather than a user error.
var ErrExhausted = errors.New("deck exhausted")

// Deck is an ordered card sequence with a dealing cursor. It has value
// semantics on purpose: copying a Deck copies the card array and cursor, so
// a game snapshot that embeds a Deck can be dealt from without disturbing
// older snapshots.
type Deck struct {
	cards [52]Card
	size  int
	next  int
}

// New creates a full 52-card deck shuffled with the provided random source.
// The same source state always yields the same permutation, which is what
// makes seeded hands reproducible.
func New(rng *rand.Rand) Deck {
	d := Deck{size: 52}
	i := 0
	for suit := Clubs; suit <= Spades; suit++ {
		for rank := Two; rank <= Ace; rank++ {
			d.cards[i] = NewCard(rank, suit)
			i++
		}
	}

	// Fisher-Yates
	for i := d.size - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
	return d
}

// FromCards builds an unshuffled deck dealing the given cards in order.
// Intended for tests that need known hole and board cards; fewer than 52
// cards is allowed and the deck is simply shorter.
func FromCards(cards []Card) Deck {
	var d Deck
	d.size = copy(d.cards[:], cards)
	return d
}

// Deal removes and returns the next n cards. The cursor only ever advances,
// so no card can be dealt twice within a hand.
func (d *Deck) Deal(n int) ([]Card, error) {
	if d.next+n > d.size {
		return nil, ErrExhausted
	}
	cards := make([]Card, n)
	copy(cards, d.cards[d.next:d.next+n])
	d.next += n
	return cards, nil
}

// Burn discards the next card before a board deal
func (d *Deck) Burn() error {
	if d.next >= d.size {
		return ErrExhausted
	}
	d.next++
	return nil
}

// Remaining returns the number of undealt cards
func (d *Deck) Remaining() int {
	return d.size - d.next
}
