// Package timeline provides the calendar bookkeeping every other sirsynth
// package is indexed by: a simulation Window of whole days, inclusive of
// both endpoints.
//
// Conventions (fixed once, relied upon everywhere):
//
//   - Dates are normalized to midnight UTC; sub-day precision is discarded
//     on construction.
//   - Window length is INCLUSIVE: Days() returns the count of calendar
//     dates from Start through End, so a window from 2020-03-10 to
//     2020-03-20 has 11 days.
//   - Day index i ∈ [0, Days()) maps to the date Start + i days.
//
// Sunday bookkeeping (SundayOffset, Sundays) exists because the weekly
// reporting-cycle model and the random change-point placement are both
// anchored on Sundays.
//
// Usage:
//
//	w, err := timeline.New(begin, end) // ErrInvalidWindow if end < begin
//	L := w.Days()                      // length of every per-day series
//	dates := w.Dates()                 // len(dates) == L
package timeline
