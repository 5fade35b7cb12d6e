// SPDX-License-Identifier: MIT
// Package: sirsynth/timeline
//
// timeline.go — the simulation Window type and its day-index arithmetic.
//
// Contract:
//   - New validates end >= start and normalizes both dates to midnight UTC.
//   - Days() is inclusive of both endpoints; all downstream array lengths
//     derive from it.
//   - Methods never mutate the Window; it is safe to copy and share.

package timeline

import (
	"errors"
	"time"
)

// hoursPerDay is the step used for all whole-day arithmetic.
const hoursPerDay = 24

// ErrInvalidWindow indicates that the requested end date precedes the start
// date. Matched with errors.Is.
var ErrInvalidWindow = errors.New("timeline: end date before start date")

// Window is an inclusive range of calendar days, normalized to midnight UTC.
// The zero value is a one-day window at the zero time; construct via New.
type Window struct {
	Start time.Time
	End   time.Time
}

// New builds a Window from two calendar dates. Any clock component of the
// inputs is discarded. Returns ErrInvalidWindow when end precedes start.
func New(start, end time.Time) (Window, error) {
	s := Normalize(start)
	e := Normalize(end)
	if e.Before(s) {
		return Window{}, ErrInvalidWindow
	}

	return Window{Start: s, End: e}, nil
}

// Normalize truncates t to midnight UTC, keeping only its calendar date.
func Normalize(t time.Time) time.Time {
	y, m, d := t.UTC().Date()

	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Days returns the number of calendar dates covered by the window,
// inclusive of both endpoints. Always >= 1 for a Window built by New.
func (w Window) Days() int {
	return int(w.End.Sub(w.Start).Hours()/hoursPerDay) + 1
}

// Date maps a 0-based day index onto its calendar date. Indices outside
// [0, Days()) extrapolate linearly; callers needing bounds must check first.
func (w Window) Date(i int) time.Time {
	return w.Start.AddDate(0, 0, i)
}

// Index maps a calendar date onto its 0-based day index within the window.
// The inverse of Date; out-of-window dates yield out-of-range indices.
func (w Window) Index(t time.Time) int {
	return int(Normalize(t).Sub(w.Start).Hours() / hoursPerDay)
}

// Contains reports whether the date falls inside the window, inclusive.
func (w Window) Contains(t time.Time) bool {
	i := w.Index(t)

	return i >= 0 && i < w.Days()
}

// Dates expands the window into its full ordered date slice.
// len(result) == Days(). O(Days) time and memory.
func (w Window) Dates() []time.Time {
	days := w.Days()
	out := make([]time.Time, days)
	for i := 0; i < days; i++ {
		out[i] = w.Date(i)
	}

	return out
}

// SundayOffset returns the day count from Start to the first Sunday in the
// window (0 when Start itself is a Sunday). When the window is shorter than
// a week and holds no Sunday, the offset still points at the next Sunday
// past End; the weekly-modulation phase only needs the value mod 7.
func (w Window) SundayOffset() int {
	offset := 0
	d := w.Start
	for d.Weekday() != time.Sunday {
		d = d.AddDate(0, 0, 1)
		offset++
	}

	return offset
}

// Sundays lists every Sunday inside the window, in ascending order.
// May be empty for windows shorter than a week.
func (w Window) Sundays() []time.Time {
	var out []time.Time
	for d := w.Date(w.SundayOffset()); !d.After(w.End); d = d.AddDate(0, 0, daysPerWeek) {
		out = append(out, d)
	}

	return out
}

// daysPerWeek is the Sunday-to-Sunday stride.
const daysPerWeek = 7
