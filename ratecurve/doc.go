// Package ratecurve converts a sparse set of (date, rate) change points
// into a dense per-day transmission-rate sequence covering a simulation
// window, using piecewise logistic interpolation.
//
// 🚀 How it works
//
//	Each pair of consecutive change points defines one segment. Within a
//	segment of n days the rate follows a logistic S-curve between the two
//	plateaus:
//
//	    rate(x) = C + L / (1 + exp(-k·(x - n/2)))
//
//	with C the left rate, L the rate delta, x the 0-based day offset and a
//	fixed steepness k = 0.8/day. The window start acts as a virtual leading
//	change point carrying the initial rate; after the last explicit change
//	point the rate is held constant through the window end.
//
// Guarantees:
//
//   - Output length is exactly Window.Days(): segments tile the window with
//     no gaps or overlaps (right-exclusive, except the trailing hold which
//     is inclusive of the end date).
//   - With no change points the whole window holds at the initial rate.
//   - Stable ordering: change points sharing a date keep insertion order.
//   - Change points outside the window are rejected with ErrOutOfWindow
//     rather than silently misinterpolated.
//
// Usage:
//
//	rates, err := ratecurve.Build(w, 0.4, []ratecurve.ChangePoint{
//	    {Date: d1, Rate: 0.2},
//	    {Date: d2, Rate: 0.7},
//	})
package ratecurve
