// SPDX-License-Identifier: MIT
// Package: sirsynth/synth
//
// synth.go — the Generator session: seed handling, default resolution and
// the six-stage pipeline.
//
// Contract:
//   - New resolves all initial parameters once; they are immutable for the
//     session's lifetime (accessors return copies).
//   - Generate is one-shot per call: any stage failure aborts the run with
//     a wrapped sentinel; no partial output, no retries.
//   - The only state shared between Generate calls is the session's random
//     stream, consumed by noise draws when noise is enabled.
//   - Series lengths are re-checked at every stage boundary against the
//     window convention (rates = Days, trajectory = Days+1, output = Days).

package synth

import (
	"fmt"
	"time"

	"github.com/epiforge/sirsynth/observe"
	"github.com/epiforge/sirsynth/ratecurve"
	"github.com/epiforge/sirsynth/sir"
	"github.com/epiforge/sirsynth/timeline"
	"github.com/sirupsen/logrus"
	"golang.org/x/exp/rand"
)

// Generator is one generation session: a window, a resolved parameter set
// and a single seeded random stream. Not safe for concurrent use — the
// pipeline is intentionally single-threaded and synchronous.
type Generator struct {
	window   timeline.Window
	mu       float64
	noise    bool
	seed     uint64
	src      rand.Source
	log      *logrus.Logger
	initials Initials
}

// New builds a Generator for the window, resolving every initial parameter
// not overridden by options from the random default policy. Without
// WithSeed the seed is taken from the clock and recorded for replay.
func New(w timeline.Window, opts ...Option) (*Generator, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	seed := cfg.seed
	if !cfg.hasSeed {
		seed = uint64(time.Now().UnixNano())
	}
	src := rand.NewSource(seed)

	g := &Generator{
		window: w,
		mu:     cfg.mu,
		noise:  cfg.noise,
		seed:   seed,
		src:    src,
		log:    cfg.log,
	}
	g.initials = resolveInitials(w, &cfg, src)

	// Surface invalid resolved parameters now, not at first Generate.
	if err := g.sirParameters().Validate(); err != nil {
		return nil, fmt.Errorf("synth: initial parameters: %w", err)
	}

	g.log.WithFields(logrus.Fields{
		"seed":         g.seed,
		"days":         w.Days(),
		"changepoints": len(g.initials.ChangePoints),
		"noise":        g.noise,
	}).Debug("session initialized")

	return g, nil
}

// Seed returns the seed driving the session's random stream; recorded even
// when it was drawn from the clock, so every run can be replayed.
func (g *Generator) Seed() uint64 { return g.seed }

// Window returns the session's simulation window.
func (g *Generator) Window() timeline.Window { return g.window }

// Initials returns a copy of the resolved initial parameters, for
// inspection before Generate.
func (g *Generator) Initials() Initials { return g.initials.clone() }

// sirParameters projects the resolved initials onto the integrator input.
func (g *Generator) sirParameters() sir.Parameters {
	return sir.Parameters{S0: g.initials.S0, I0: g.initials.I0, R0: g.initials.R0, Mu: g.mu}
}

// Generate runs the six-stage pipeline and returns a fresh Dataset with
// one row per window day. With noise enabled each call consumes further
// draws from the session stream; everything else is a pure function of the
// resolved initials.
func (g *Generator) Generate() (*Dataset, error) {
	days := g.window.Days()

	// Stage 1: change points → dense per-day rate driver.
	rates, err := ratecurve.Build(g.window, g.initials.Lambda0, g.initials.ChangePoints)
	if err != nil {
		return nil, fmt.Errorf("synth: rate curve: %w", err)
	}
	if len(rates) != days {
		return nil, fmt.Errorf("synth: rate curve: got %d values for %d days: %w", len(rates), days, ErrLengthMismatch)
	}

	// Stage 2: RK4 over the SIR vector field, one step per rate.
	traj, err := sir.Integrate(g.sirParameters(), rates)
	if err != nil {
		return nil, fmt.Errorf("synth: integrate: %w", err)
	}
	if len(traj) != days+1 {
		return nil, fmt.Errorf("synth: trajectory: got %d states for %d days: %w", len(traj), days, ErrLengthMismatch)
	}

	// Stage 3: clipped first difference of the infected compartment.
	raw := observe.NewCasesRaw(traj.Infected())

	// Stage 4: weekly reporting-cycle suppression.
	modulated := observe.WeekModulation(raw, g.initials.WeekendFactor, g.initials.SundayOffset)

	// The trajectory carries one sample past the window end; the dated
	// table keeps exactly one row per window day.
	series := modulated[:days]

	// Stage 5: fixed reporting delay.
	delayed, err := observe.DelayCases(series, g.initials.CaseDelay)
	if err != nil {
		return nil, fmt.Errorf("synth: delay: %w", err)
	}

	// Stage 6: optional overdispersed observation noise.
	cases := delayed
	if g.noise {
		cases, err = observe.AddNoise(delayed, g.initials.NoiseFactor, g.src)
		if err != nil {
			return nil, fmt.Errorf("synth: noise: %w", err)
		}
		g.log.WithField("alpha", g.initials.NoiseFactor).Debug("noise injected")
	}
	if len(cases) != days {
		return nil, fmt.Errorf("synth: cases: got %d values for %d days: %w", len(cases), days, ErrLengthMismatch)
	}

	return &Dataset{
		Dates:    g.window.Dates(),
		NewCases: cases,
		LambdaT:  rates,
	}, nil
}

// RateCurve returns the rate driver alone as a date-indexed table. Purely
// deterministic given the resolved initials; consumes no randomness.
func (g *Generator) RateCurve() (*RateTable, error) {
	rates, err := ratecurve.Build(g.window, g.initials.Lambda0, g.initials.ChangePoints)
	if err != nil {
		return nil, fmt.Errorf("synth: rate curve: %w", err)
	}

	return &RateTable{Dates: g.window.Dates(), LambdaT: rates}, nil
}
