// internal/stats/record.go
//
// Aggregate win/loss counters persisted across sessions.
// Seven counters: wins in 1..6 attempts and losses. Last remembers which win
// bucket was incremented most recently so the distribution chart can
// highlight it (0 = nothing to highlight).

package stats

import "fmt"

// MaxAttempts is the number of win buckets.
const MaxAttempts = 6

// Counts is the persisted form: wins-in-1..6 followed by losses.
type Counts [MaxAttempts + 1]int

// Record holds the counters in memory.
type Record struct {
	Wins   [MaxAttempts]int
	Losses int
	Last   int
}

// FromCounts rebuilds a Record from its persisted form.
func FromCounts(c Counts) Record {
	var r Record
	copy(r.Wins[:], c[:MaxAttempts])
	r.Losses = c[MaxAttempts]
	return r
}

// Counts returns the persisted form.
func (r Record) Counts() Counts {
	var c Counts
	copy(c[:MaxAttempts], r.Wins[:])
	c[MaxAttempts] = r.Losses
	return c
}

// RecordWin counts a win after the given number of attempts.
// attempts outside 1..6 can only come from a broken caller and panics.
func (r *Record) RecordWin(attempts int) {
	if attempts < 1 || attempts > MaxAttempts {
		panic(fmt.Sprintf("stats: win bucket %d out of range 1..%d", attempts, MaxAttempts))
	}
	r.Wins[attempts-1]++
	r.Last = attempts
}

// RecordLoss counts a loss. Last is left untouched.
func (r *Record) RecordLoss() { r.Losses++ }

// GamesPlayed is the sum of all seven counters.
func (r Record) GamesPlayed() int {
	n := r.Losses
	for _, w := range r.Wins {
		n += w
	}
	return n
}

// WinRate returns the percentage of games won, or 0 before any game.
func (r Record) WinRate() float64 {
	played := r.GamesPlayed()
	if played == 0 {
		return 0
	}
	return float64(played-r.Losses) / float64(played) * 100
}

// MostWins is the largest win bucket.
func (r Record) MostWins() int {
	m := 0
	for _, w := range r.Wins {
		if w > m {
			m = w
		}
	}
	return m
}

// BarFraction is the width of bucket n's bar relative to the largest bucket,
// in 0..1. Zero when there are no wins yet.
func (r Record) BarFraction(n int) float64 {
	if n < 1 || n > MaxAttempts {
		return 0
	}
	most := r.MostWins()
	if most == 0 {
		return 0
	}
	return float64(r.Wins[n-1]) / float64(most)
}
