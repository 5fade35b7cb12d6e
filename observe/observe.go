// SPDX-License-Identifier: MIT
// Package: sirsynth/observe
//
// observe.go — deterministic observation stages: extraction, weekly
// modulation, delay shift, cumulative rollup.
//
// Contract:
//   - Every function allocates its output; inputs are never mutated.
//   - Lengths are preserved (output len == input len) by every stage.
//   - Only sentinel errors; matched with errors.Is.

package observe

import (
	"errors"
	"math"
)

// weekPeriod is the reporting-cycle length in days: sin(π/7·i) has a
// 14-day period, folded to 7 by the absolute value.
const weekPeriod = 7.0

var (
	// ErrNegativeDelay indicates a negative case-delay argument.
	ErrNegativeDelay = errors.New("observe: negative delay")

	// ErrEmptySeries indicates an empty input where at least one sample is
	// required.
	ErrEmptySeries = errors.New("observe: empty series")
)

// NewCasesRaw derives the observable daily-new-cases signal from the
// infected-compartment series: out[0] = 0 and out[i] = max(0, I[i]−I[i−1]).
// Negative deltas (recoveries dominating) are clipped, not carried: a
// decline in prevalence is unobservable as a negative case count.
func NewCasesRaw(infected []float64) []float64 {
	out := make([]float64, len(infected))
	for i := 1; i < len(infected); i++ {
		if delta := infected[i] - infected[i-1]; delta > 0 {
			out[i] = delta
		}
	}

	return out
}

// WeekModulation suppresses counts periodically over the week:
//
//	out[i] = raw[i] · (1 − f(i)),   f(i) = f_w·(1 − |sin(π/7·i − Φ_w/2)|)
//
// weekendFactor f_w bounds the maximum suppression fraction; sundayOffset
// Φ_w anchors the suppression trough on the window's first Sunday. For
// f_w ∈ [0,1] the output is element-wise ≤ the input.
func WeekModulation(raw []float64, weekendFactor float64, sundayOffset int) []float64 {
	phase := float64(sundayOffset) / 2
	out := make([]float64, len(raw))
	for i, v := range raw {
		f := weekendFactor * (1 - math.Abs(math.Sin(math.Pi/weekPeriod*float64(i)-phase)))
		out[i] = v * (1 - f)
	}

	return out
}

// DelayCases shifts the series forward by delay days: the value of day i
// appears at day i+delay, the first delay entries are zero-filled and the
// last delay original values are dropped, preserving length. delay 0 is
// the identity (as a fresh copy).
func DelayCases(series []float64, delay int) ([]float64, error) {
	if delay < 0 {
		return nil, ErrNegativeDelay
	}

	out := make([]float64, len(series))
	for i := delay; i < len(series); i++ {
		out[i] = series[i-delay]
	}

	return out, nil
}

// Cumulative rolls the series up into total counts: downward jumps are
// ignored (a total can only grow), upward jumps accumulate. Element 0
// seeds the total with series[0].
func Cumulative(series []float64) ([]float64, error) {
	if len(series) == 0 {
		return nil, ErrEmptySeries
	}

	out := make([]float64, len(series))
	out[0] = series[0]
	for i := 1; i < len(series); i++ {
		out[i] = out[i-1]
		if delta := series[i] - series[i-1]; delta > 0 {
			out[i] += delta
		}
	}

	return out, nil
}
