package elements

import (
	"elements-ca/internal/core"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Census counts cells per state.
type Census [NumStates]int

// Count returns the number of cells holding s.
func (c Census) Count(s State) int {
	if !s.Valid() {
		return 0
	}
	return c[s]
}

// Total returns the number of cells counted.
func (c Census) Total() int {
	total := 0
	for _, n := range c {
		total += n
	}
	return total
}

// Fraction returns the share of cells holding s, or 0 for an empty census.
func (c Census) Fraction(s State) float64 {
	total := c.Total()
	if total == 0 {
		return 0
	}
	return float64(c.Count(s)) / float64(total)
}

// Series extracts the per-tick fraction of s from a census history.
func Series(history []Census, s State) []float64 {
	out := make([]float64, len(history))
	for i, c := range history {
		out[i] = c.Fraction(s)
	}
	return out
}

// StateSummary describes how one state's share evolved over a run.
type StateSummary struct {
	State  State
	Mean   float64
	StdDev float64
	Min    float64
	Max    float64
	Final  float64
}

// Summarize reduces a census history to per-state statistics. An empty
// history yields zero-valued summaries.
func Summarize(history []Census) []StateSummary {
	out := make([]StateSummary, 0, NumStates)
	for _, s := range States() {
		sum := StateSummary{State: s}
		series := Series(history, s)
		if len(series) > 0 {
			sum.Mean, sum.StdDev = stat.MeanStdDev(series, nil)
			if len(series) == 1 {
				sum.StdDev = 0
			}
			sum.Min = floats.Min(series)
			sum.Max = floats.Max(series)
			sum.Final = series[len(series)-1]
		}
		out = append(out, sum)
	}
	return out
}

// Shares reports the current state mix for display.
func (w *World) Shares() []core.Share {
	out := make([]core.Share, 0, NumStates)
	for _, s := range States() {
		out = append(out, core.Share{Label: s.String(), Color: s.Color(), Fraction: w.census.Fraction(s)})
	}
	return out
}

// RunHistory advances w by ticks frames and returns the census before the
// first tick followed by one entry per tick. each, when non-nil, is called
// after every tick; a non-nil error stops the run.
func RunHistory(w *World, ticks int, each func(*World) error) ([]Census, error) {
	history := make([]Census, 0, max(ticks, 0)+1)
	history = append(history, w.Census())
	for k := 0; k < ticks; k++ {
		w.Advance()
		history = append(history, w.Census())
		if each == nil {
			continue
		}
		if err := each(w); err != nil {
			return history, err
		}
	}
	return history, nil
}
