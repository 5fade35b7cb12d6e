// Package sirsynth synthesizes plausible daily epidemic case-count time
// series, to be used as ground-truth input for downstream inference models.
//
// 🚀 What is sirsynth?
//
//	A deterministic-given-seed generation pipeline that:
//	  • builds a piecewise time-varying transmission rate from sparse,
//	    randomly placed change points (logistic S-curve transitions)
//	  • integrates a 3-compartment SIR model with fixed-step RK4
//	  • derives a non-negative "new cases" observable from the latent
//	    infected trajectory
//	  • imposes a weekly reporting-cycle suppression
//	  • applies a fixed reporting delay
//	  • optionally injects moment-matched negative-binomial noise
//
// ✨ Why choose sirsynth?
//
//   - Reproducible – one seeded random stream per session; same seed,
//     same inputs ⇒ bit-identical output
//   - Deterministic core – rate curve and integrator are pure functions
//     of their inputs; only defaults and noise consume randomness
//   - Explicit – typed initial parameters, functional options, sentinel
//     errors matched with errors.Is
//
// Everything is organized under five subpackages:
//
//	timeline/  — calendar windows, day indexing, Sunday bookkeeping
//	ratecurve/ — change points → dense per-day transmission rates
//	sir/       — the RK4 susceptible/infected/recovered integrator
//	observe/   — extraction, week modulation, delay, noise stages
//	synth/     — the generation session tying the stages together
//
// Quick example:
//
//	w, _ := timeline.New(
//	    time.Date(2020, 3, 10, 0, 0, 0, 0, time.UTC),
//	    time.Date(2020, 4, 26, 0, 0, 0, 0, time.UTC))
//	g, _ := synth.New(w, synth.WithSeed(42))
//	ds, _ := g.Generate()
//	// ds.NewCases holds one observation per window day.
//
// See each subpackage's doc.go for contracts and worked examples.
package sirsynth
