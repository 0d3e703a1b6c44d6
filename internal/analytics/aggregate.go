package analytics

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// HandOutcome is one player's net result for a single simulated hand,
// measured in big blinds.
type HandOutcome struct {
	NetBB          float64
	Seed           int64
	WentToShowdown bool
	PotChips       int
}

// Aggregate accumulates per-hand outcomes across a simulation run and
// answers the usual winrate questions about them.
type Aggregate struct {
	Hands  int
	sumBB  float64
	sumBB2 float64
	values []float64

	ShowdownHands int
	ShowdownBB    float64
	MaxPotChips   int
}

// Add incorporates one hand outcome
func (a *Aggregate) Add(o HandOutcome) {
	a.Hands++
	a.sumBB += o.NetBB
	a.sumBB2 += o.NetBB * o.NetBB
	a.values = append(a.values, o.NetBB)

	if o.WentToShowdown {
		a.ShowdownHands++
		a.ShowdownBB += o.NetBB
	}
	if o.PotChips > a.MaxPotChips {
		a.MaxPotChips = o.PotChips
	}
}

// Mean is the average net result in big blinds per hand
func (a *Aggregate) Mean() float64 {
	if a.Hands == 0 {
		return 0
	}
	return a.sumBB / float64(a.Hands)
}

// Variance is the sample variance of per-hand results
func (a *Aggregate) Variance() float64 {
	if a.Hands < 2 {
		return 0
	}
	mean := a.Mean()
	return (a.sumBB2 - float64(a.Hands)*mean*mean) / float64(a.Hands-1)
}

// StdDev is the sample standard deviation
func (a *Aggregate) StdDev() float64 {
	return math.Sqrt(a.Variance())
}

// StdError is the standard error of the mean
func (a *Aggregate) StdError() float64 {
	if a.Hands == 0 {
		return 0
	}
	return a.StdDev() / math.Sqrt(float64(a.Hands))
}

// ConfidenceInterval95 brackets the mean at 95% confidence
func (a *Aggregate) ConfidenceInterval95() (float64, float64) {
	mean := a.Mean()
	margin := 1.96 * a.StdError()
	return mean - margin, mean + margin
}

// Median is the middle per-hand result
func (a *Aggregate) Median() float64 {
	if len(a.values) == 0 {
		return 0
	}
	sorted := append([]float64(nil), a.values...)
	sort.Float64s(sorted)
	n := len(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return sorted[n/2]
}

// String renders a one-block simulation summary
func (a *Aggregate) String() string {
	var b strings.Builder
	lo, hi := a.ConfidenceInterval95()
	fmt.Fprintf(&b, "hands: %d\n", a.Hands)
	fmt.Fprintf(&b, "mean: %+.3f bb/hand (95%% CI %+.3f to %+.3f)\n", a.Mean(), lo, hi)
	fmt.Fprintf(&b, "median: %+.3f bb/hand\n", a.Median())
	fmt.Fprintf(&b, "stddev: %.3f\n", a.StdDev())
	fmt.Fprintf(&b, "showdowns: %d (%.1f%%), %+.3f bb/hand at showdown\n",
		a.ShowdownHands,
		100*float64(a.ShowdownHands)/math.Max(1, float64(a.Hands)),
		a.ShowdownBB/math.Max(1, float64(a.ShowdownHands)))
	fmt.Fprintf(&b, "largest pot: %d chips", a.MaxPotChips)
	return b.String()
}
