// SPDX-License-Identifier: MIT
// Package: sirsynth/synth
//
// options.go — functional options for the generation session.
//
// Contract (strict):
//   - Options are functional (type Option func(*config)).
//   - Option constructors VALIDATE and PANIC on meaningless inputs;
//     the pipeline itself never panics at runtime.
//   - Determinism is explicit: seeding is done via WithSeed only.
//   - No hidden globals; everything flows through the session config.
//
// Override semantics: a WithX override marks the field present, so the
// default-resolution pass skips that field's random draw. The remaining
// unset fields still consume the stream in their fixed order.

package synth

import (
	"github.com/epiforge/sirsynth/ratecurve"
	"github.com/sirupsen/logrus"
)

// Option customizes a Generator before default resolution begins.
type Option func(*config)

// config aggregates every session knob plus the optional per-field
// overrides of the initial parameters. Presence is tracked with pointers:
// nil means "draw the documented random default".
type config struct {
	seed    uint64
	hasSeed bool

	mu    float64 // recovery rate μ, > 0
	noise bool    // enable the negative-binomial observation noise
	log   *logrus.Logger

	// Partial overrides of Initials; nil ⇒ random default.
	s0            *float64
	i0            *float64
	r0            *float64
	lambda0       *float64
	changePoints  []ratecurve.ChangePoint
	hasChangePts  bool
	noiseFactor   *float64
	sundayOffset  *int
	weekendFactor *float64
	caseDelay     *int
}

// defaultConfig returns the session defaults: recovery rate of the
// reference model, noise off, a fresh logger at the default (Info) level
// so Debug tracing stays silent unless the caller opts in.
func defaultConfig() config {
	return config{
		mu:  DefaultRecoveryRate,
		log: logrus.New(),
	}
}

// WithSeed fixes the seed of the session's random stream. Two sessions
// with the same seed, window and overrides are bit-identical. Without
// WithSeed the seed is drawn from the clock and recorded (see Seed()).
func WithSeed(seed uint64) Option {
	return func(c *config) {
		c.seed = seed
		c.hasSeed = true
	}
}

// WithRecoveryRate overrides the recovery rate μ. Panics on μ <= 0; a
// non-positive recovery rate has no epidemiological meaning here.
func WithRecoveryRate(mu float64) Option {
	if mu <= 0 {
		panic("synth: WithRecoveryRate requires mu > 0")
	}
	return func(c *config) { c.mu = mu }
}

// WithNoise enables negative-binomial observation noise on the final
// series. The draw order is documented: noise consumes the stream after
// all default resolution.
func WithNoise() Option {
	return func(c *config) { c.noise = true }
}

// WithLogger injects the session logger. Panics on nil to surface the
// programmer error at construction, not at first use.
func WithLogger(log *logrus.Logger) Option {
	if log == nil {
		panic("synth: WithLogger(nil)")
	}
	return func(c *config) { c.log = log }
}

// WithS0 overrides the initial susceptible count. Panics on negatives.
func WithS0(s0 float64) Option {
	if s0 < 0 {
		panic("synth: WithS0 requires a non-negative count")
	}
	return func(c *config) { c.s0 = &s0 }
}

// WithI0 overrides the initial infected count. Panics on negatives.
func WithI0(i0 float64) Option {
	if i0 < 0 {
		panic("synth: WithI0 requires a non-negative count")
	}
	return func(c *config) { c.i0 = &i0 }
}

// WithR0 overrides the initial recovered count. Panics on negatives.
func WithR0(r0 float64) Option {
	if r0 < 0 {
		panic("synth: WithR0 requires a non-negative count")
	}
	return func(c *config) { c.r0 = &r0 }
}

// WithLambda0 overrides the initial transmission rate.
func WithLambda0(lambda0 float64) Option {
	return func(c *config) { c.lambda0 = &lambda0 }
}

// WithChangePoints overrides the random Sunday-anchored change points.
// The slice is copied; an explicit empty slice means "no change points"
// (constant rate), which is distinct from not calling the option at all.
func WithChangePoints(cps []ratecurve.ChangePoint) Option {
	own := make([]ratecurve.ChangePoint, len(cps))
	copy(own, cps)
	return func(c *config) {
		c.changePoints = own
		c.hasChangePts = true
	}
}

// WithNoiseFactor overrides the overdispersion α of the noise model.
// Panics on α <= 0 (not a valid negative-binomial dispersion).
func WithNoiseFactor(alpha float64) Option {
	if alpha <= 0 {
		panic("synth: WithNoiseFactor requires alpha > 0")
	}
	return func(c *config) { c.noiseFactor = &alpha }
}

// WithSundayOffset overrides the phase anchor of the weekly modulation.
// Panics on negatives.
func WithSundayOffset(offset int) Option {
	if offset < 0 {
		panic("synth: WithSundayOffset requires offset >= 0")
	}
	return func(c *config) { c.sundayOffset = &offset }
}

// WithWeekendFactor overrides the maximum weekday suppression fraction.
// Panics outside [0, 1]; the modulation must only ever reduce counts.
func WithWeekendFactor(f float64) Option {
	if f < 0 || f > 1 {
		panic("synth: WithWeekendFactor requires f in [0,1]")
	}
	return func(c *config) { c.weekendFactor = &f }
}

// WithCaseDelay overrides the reporting delay in days. Panics on negatives.
func WithCaseDelay(days int) Option {
	if days < 0 {
		panic("synth: WithCaseDelay requires days >= 0")
	}
	return func(c *config) { c.caseDelay = &days }
}
