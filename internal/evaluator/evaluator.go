// Package evaluator ranks poker hands. Given 5 to 7 cards it finds the best
// five-card hand and returns a HandValue that totally orders hands by
// category and tie-break key. Ties are real: two hands with the same
// category and key split pots, they are never broken arbitrarily.
package evaluator

import (
	"fmt"
	"sort"

	"github.com/cardroomlabs/holdem/internal/deck"
)

// Category is the hand category, ordered from weakest to strongest.
type Category int

const (
	HighCard Category = iota + 1
	Pair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush
)

// String returns a human-readable category name
func (c Category) String() string {
	switch c {
	case HighCard:
		return "High Card"
	case Pair:
		return "Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	case RoyalFlush:
		return "Royal Flush"
	default:
		return "Unknown"
	}
}

// HandValue is the strength of a five-card hand: a category plus an ordered
// tie-break key (most significant rank first). Within a category hands
// compare by lexicographic key comparison. In the wheel (A-2-3-4-5) the ace
// plays low and appears in the key as 1.
type HandValue struct {
	Category Category
	Tiebreak [5]int
}

// Compare returns 1 if v beats o, -1 if o beats v, and 0 on an exact tie.
func (v HandValue) Compare(o HandValue) int {
	if v.Category != o.Category {
		if v.Category > o.Category {
			return 1
		}
		return -1
	}
	for i := range v.Tiebreak {
		if v.Tiebreak[i] != o.Tiebreak[i] {
			if v.Tiebreak[i] > o.Tiebreak[i] {
				return 1
			}
			return -1
		}
	}
	return 0
}

// String returns the category name
func (v HandValue) String() string {
	return v.Category.String()
}

// Evaluate returns the value of the best five-card hand that can be made
// from the given cards. Between 5 and 7 cards are accepted; with 7 cards
// all C(7,5)=21 combinations are scored and the maximum kept.
func Evaluate(cards []deck.Card) (HandValue, error) {
	n := len(cards)
	if n < 5 || n > 7 {
		return HandValue{}, fmt.Errorf("evaluate: need 5-7 cards, got %d", n)
	}

	var best HandValue
	var five [5]deck.Card
	combinations(cards, five[:], 0, 0, func() {
		v := score(five)
		if best.Category == 0 || v.Compare(best) > 0 {
			best = v
		}
	})
	return best, nil
}

// combinations visits every 5-card subset of cards, filling out before each
// call to visit.
func combinations(cards []deck.Card, out []deck.Card, start, depth int, visit func()) {
	if depth == len(out) {
		visit()
		return
	}
	for i := start; i <= len(cards)-(len(out)-depth); i++ {
		out[depth] = cards[i]
		combinations(cards, out, i+1, depth+1, visit)
	}
}

// score ranks exactly five cards.
func score(cards [5]deck.Card) HandValue {
	var freq [15]int // indexed by rank 2-14
	flush := true
	for i, c := range cards {
		freq[c.Rank]++
		if i > 0 && c.Suit != cards[0].Suit {
			flush = false
		}
	}

	// Ranks present, ordered by (frequency desc, rank desc). This is the
	// tie-break ordering: quads/trips/pairs come before kickers, kickers
	// descend.
	var ranks []int
	for r := 2; r <= 14; r++ {
		if freq[r] > 0 {
			ranks = append(ranks, r)
		}
	}
	sort.Slice(ranks, func(i, j int) bool {
		if freq[ranks[i]] != freq[ranks[j]] {
			return freq[ranks[i]] > freq[ranks[j]]
		}
		return ranks[i] > ranks[j]
	})

	straightHigh := straightHighCard(ranks)

	var key [5]int
	switch {
	case straightHigh > 0:
		// Straight keys descend from the high card; the wheel's ace plays
		// low so a six-high straight beats it.
		for i := 0; i < 5; i++ {
			key[i] = straightHigh - i
		}
	default:
		// Expand ranks by frequency so the key always has 5 entries.
		i := 0
		for _, r := range ranks {
			for k := 0; k < freq[r] && i < 5; k++ {
				key[i] = r
				i++
			}
		}
	}

	switch {
	case flush && straightHigh == 14:
		return HandValue{Category: RoyalFlush, Tiebreak: key}
	case flush && straightHigh > 0:
		return HandValue{Category: StraightFlush, Tiebreak: key}
	case freq[ranks[0]] == 4:
		return HandValue{Category: FourOfAKind, Tiebreak: key}
	case freq[ranks[0]] == 3 && freq[ranks[1]] == 2:
		return HandValue{Category: FullHouse, Tiebreak: key}
	case flush:
		return HandValue{Category: Flush, Tiebreak: key}
	case straightHigh > 0:
		return HandValue{Category: Straight, Tiebreak: key}
	case freq[ranks[0]] == 3:
		return HandValue{Category: ThreeOfAKind, Tiebreak: key}
	case freq[ranks[0]] == 2 && freq[ranks[1]] == 2:
		return HandValue{Category: TwoPair, Tiebreak: key}
	case freq[ranks[0]] == 2:
		return HandValue{Category: Pair, Tiebreak: key}
	default:
		return HandValue{Category: HighCard, Tiebreak: key}
	}
}

// straightHighCard returns the high card of a straight formed by the given
// distinct ranks, 5 for the wheel, or 0 if the five cards are not a
// straight. ranks must contain the distinct ranks present.
func straightHighCard(ranks []int) int {
	if len(ranks) != 5 {
		return 0
	}
	sorted := make([]int, 5)
	copy(sorted, ranks)
	sort.Sort(sort.Reverse(sort.IntSlice(sorted)))

	// Wheel: A-5-4-3-2
	if sorted[0] == 14 && sorted[1] == 5 && sorted[2] == 4 && sorted[3] == 3 && sorted[4] == 2 {
		return 5
	}
	for i := 1; i < 5; i++ {
		if sorted[i] != sorted[0]-i {
			return 0
		}
	}
	return sorted[0]
}
