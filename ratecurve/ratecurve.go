// SPDX-License-Identifier: MIT
// Package: sirsynth/ratecurve
//
// ratecurve.go — change-point list → dense per-day rate sequence.
//
// Contract:
//   - Build(w, lambda0, cps) returns exactly w.Days() values.
//   - Change points are stable-sorted by date; ties keep insertion order
//     and contribute zero-length segments.
//   - Any change point dated outside [w.Start, w.End] ⇒ ErrOutOfWindow.
//   - Pure function: no RNG, no global state; the input slice is not
//     mutated (sorting happens on a copy).

package ratecurve

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/epiforge/sirsynth/timeline"
)

// Steepness is the fixed logistic growth rate of every segment transition,
// in 1/day. Not configurable: the S-curve shape is part of the contract.
const Steepness = 0.8

var (
	// ErrOutOfWindow indicates a change point dated before the window start
	// or after the window end. Matched with errors.Is.
	ErrOutOfWindow = errors.New("ratecurve: change point outside window")

	// ErrEmptyWindow indicates a window of zero days; cannot happen for
	// windows built by timeline.New but guards hand-rolled values.
	ErrEmptyWindow = errors.New("ratecurve: window has no days")
)

// ChangePoint marks a control point for the time-varying transmission rate:
// on Date the curve should pass (up to the logistic midpoint tolerance)
// through Rate. Rates are intended in [0,1] but not enforced.
type ChangePoint struct {
	Date time.Time
	Rate float64
}

// Build produces one transmission-rate value per day of the window.
//
// The window start with lambda0 acts as a virtual leading change point; each
// consecutive pair (a, b) fills the half-open day range [a.Date, b.Date)
// with a logistic transition, and the last explicit change point's rate is
// held constant through the window end inclusive. With no change points the
// result is constant at lambda0.
//
// Complexity: O(n log n + D) for n change points and D window days.
func Build(w timeline.Window, lambda0 float64, cps []ChangePoint) ([]float64, error) {
	days := w.Days()
	if days <= 0 {
		return nil, ErrEmptyWindow
	}

	for _, cp := range cps {
		if !w.Contains(cp.Date) {
			return nil, fmt.Errorf("ratecurve: %s: %w", cp.Date.Format(time.DateOnly), ErrOutOfWindow)
		}
	}

	// No explicit change points: hold the initial rate everywhere.
	out := make([]float64, 0, days)
	if len(cps) == 0 {
		for i := 0; i < days; i++ {
			out = append(out, lambda0)
		}

		return out, nil
	}

	// Stable sort on a copy; ties by date keep caller insertion order.
	sorted := make([]ChangePoint, len(cps))
	copy(sorted, cps)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	// Virtual leading point at the window start.
	prev := ChangePoint{Date: w.Start, Rate: lambda0}
	for _, cp := range sorted {
		out = appendSegment(out, prev, cp)
		prev = cp
	}

	// Trailing hold: last rate through the end date inclusive.
	tail := w.Days() - w.Index(prev.Date)
	for i := 0; i < tail; i++ {
		out = append(out, prev.Rate)
	}

	return out, nil
}

// appendSegment fills the half-open day range [a.Date, b.Date) with the
// logistic transition from a.Rate to b.Rate. Zero-length for b on the same
// date as a (duplicate change points).
func appendSegment(dst []float64, a, b ChangePoint) []float64 {
	n := daysBetween(a.Date, b.Date)
	for x := 0; x < n; x++ {
		dst = append(dst, logistic(float64(x), float64(n), a.Rate, b.Rate))
	}

	return dst
}

// logistic evaluates the S-curve at day offset x of an n-day segment from
// rate c to rate c+l, midpoint at n/2, steepness Steepness.
func logistic(x, n, c, cEnd float64) float64 {
	l := cEnd - c
	x0 := n / 2

	return c + l/(1+math.Exp(-Steepness*(x-x0)))
}

// daysBetween counts whole days from a to b; both are midnight UTC.
func daysBetween(a, b time.Time) int {
	return int(b.Sub(a).Hours() / 24)
}
