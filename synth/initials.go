// SPDX-License-Identifier: MIT
// Package: sirsynth/synth
//
// initials.go — the resolved initial-parameter set and its random default
// policy.
//
// Reproducibility contract: resolution consumes the session stream in the
// exact field order of resolveInitials (S0, I0, lambda0, change points,
// weekend factor — the fixed fields consume nothing). Overridden fields
// skip their draws; everything downstream of the stream therefore shifts
// exactly as documented, never accidentally.

package synth

import (
	"math"

	"github.com/epiforge/sirsynth/ratecurve"
	"github.com/epiforge/sirsynth/timeline"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Defaults of the random policy - single source of truth, no magic numbers.
const (
	// DefaultRecoveryRate is the recovery rate μ used when WithRecoveryRate
	// is absent, matching the reference epidemic model.
	DefaultRecoveryRate = 0.13

	// DefaultNoiseFactor is the overdispersion α of the observation noise;
	// small enough that the noise variance stays near the signal mean.
	DefaultNoiseFactor = 1e-5

	// DefaultCaseDelay is the reporting delay in days.
	DefaultCaseDelay = 6

	// defS0Min/defS0Max bound the uniform integer draw of the initial
	// susceptible population, [min, max).
	defS0Min = 5_000_000
	defS0Max = 10_000_000

	// defI0Location shifts the half-Cauchy draw of the initial infected
	// count: I0 = ⌊defI0Location + |Cauchy(0,1)|⌋.
	defI0Location = 3

	// defWeekendMin/defWeekendMax bound the uniform weekend-factor draw.
	defWeekendMin = 0.1
	defWeekendMax = 0.5

	// defDateJitterSigma is the standard deviation, in days, of the normal
	// jitter applied to each Sunday when placing default change points.
	defDateJitterSigma = 3
)

// Initials is the complete, resolved parameter set of one session. Owned
// exclusively by the Generator and immutable once integration starts;
// accessors hand out copies.
type Initials struct {
	S0            float64                 // initial susceptible count
	I0            float64                 // initial infected count
	R0            float64                 // initial recovered count
	Lambda0       float64                 // transmission rate at the window start
	ChangePoints  []ratecurve.ChangePoint // rate control points, insertion-ordered
	NoiseFactor   float64                 // negative-binomial overdispersion α
	SundayOffset  int                     // days from window start to first Sunday
	WeekendFactor float64                 // max weekly suppression fraction
	CaseDelay     int                     // reporting delay, days
}

// resolveInitials fills every field not overridden in cfg from the random
// default policy, consuming src in the documented fixed order.
func resolveInitials(w timeline.Window, cfg *config, src rand.Source) Initials {
	rng := rand.New(src)
	var in Initials

	if cfg.s0 != nil {
		in.S0 = *cfg.s0
	} else {
		in.S0 = float64(defS0Min + rng.Int63n(defS0Max-defS0Min))
	}

	if cfg.i0 != nil {
		in.I0 = *cfg.i0
	} else {
		// Half-Cauchy with location defI0Location: fold a standard Cauchy
		// draw and truncate to a whole count. distuv has no Cauchy type;
		// Student's t with Nu=1 is exactly the standard Cauchy.
		draw := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: 1, Src: src}.Rand()
		in.I0 = math.Trunc(defI0Location + math.Abs(draw))
	}

	if cfg.r0 != nil {
		in.R0 = *cfg.r0
	} // else 0: nobody starts recovered.

	if cfg.lambda0 != nil {
		in.Lambda0 = *cfg.lambda0
	} else {
		in.Lambda0 = distuv.Uniform{Min: 0, Max: 1, Src: src}.Rand()
	}

	if cfg.hasChangePts {
		in.ChangePoints = cfg.changePoints
	} else {
		in.ChangePoints = defaultChangePoints(w, src)
	}

	if cfg.noiseFactor != nil {
		in.NoiseFactor = *cfg.noiseFactor
	} else {
		in.NoiseFactor = DefaultNoiseFactor
	}

	if cfg.sundayOffset != nil {
		in.SundayOffset = *cfg.sundayOffset
	} else {
		in.SundayOffset = w.SundayOffset()
	}

	if cfg.weekendFactor != nil {
		in.WeekendFactor = *cfg.weekendFactor
	} else {
		in.WeekendFactor = distuv.Uniform{Min: defWeekendMin, Max: defWeekendMax, Src: src}.Rand()
	}

	if cfg.caseDelay != nil {
		in.CaseDelay = *cfg.caseDelay
	} else {
		in.CaseDelay = DefaultCaseDelay
	}

	return in
}

// defaultChangePoints places one candidate change point per Sunday of the
// window: the date is jittered by a whole-day normal offset (σ = 3 days,
// truncated toward zero) and clamped into the window so the rate builder
// never sees an out-of-window point; the rate is uniform in [0, 1).
// Consumes two draws per Sunday, date first.
func defaultChangePoints(w timeline.Window, src rand.Source) []ratecurve.ChangePoint {
	jitter := distuv.Normal{Mu: 0, Sigma: defDateJitterSigma, Src: src}
	uniform := distuv.Uniform{Min: 0, Max: 1, Src: src}

	var cps []ratecurve.ChangePoint
	for _, sunday := range w.Sundays() {
		offset := int(math.Trunc(jitter.Rand()))
		date := sunday.AddDate(0, 0, offset)
		if date.Before(w.Start) {
			date = w.Start
		}
		if date.After(w.End) {
			date = w.End
		}
		cps = append(cps, ratecurve.ChangePoint{Date: date, Rate: uniform.Rand()})
	}

	return cps
}

// clone returns a deep copy of the initials so accessors cannot leak the
// session's immutable state through the change-point slice.
func (in Initials) clone() Initials {
	out := in
	out.ChangePoints = make([]ratecurve.ChangePoint, len(in.ChangePoints))
	copy(out.ChangePoints, in.ChangePoints)

	return out
}
