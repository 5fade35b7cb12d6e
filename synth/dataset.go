// SPDX-License-Identifier: MIT
// Package: sirsynth/synth
//
// dataset.go — the labeled output tables of a generation session.

package synth

import (
	"time"

	"github.com/epiforge/sirsynth/observe"
)

// Dataset is the externally visible artifact of one Generate call: one row
// per window day, freshly allocated per call.
//
// Column alignment quirk, preserved on purpose: LambdaT is the raw rate
// driver as produced by the rate-curve builder and is NOT shifted by the
// case delay, so it is not temporally aligned with NewCases. Consumers
// correlating rate against cases must apply the delay themselves.
type Dataset struct {
	Dates    []time.Time // one calendar date per row, ascending
	NewCases []float64   // delayed, modulated, possibly noisy observable
	LambdaT  []float64   // undelayed per-day transmission rate
}

// Len returns the number of rows (window days).
func (d *Dataset) Len() int { return len(d.Dates) }

// CumulativeCases rolls NewCases up into total counts: upward jumps
// accumulate, declines carry the total forward.
func (d *Dataset) CumulativeCases() ([]float64, error) {
	return observe.Cumulative(d.NewCases)
}

// RateTable is the secondary accessor output: the rate curve alone,
// date-indexed, one row per window day.
type RateTable struct {
	Dates   []time.Time
	LambdaT []float64
}

// Len returns the number of rows (window days).
func (t *RateTable) Len() int { return len(t.Dates) }
