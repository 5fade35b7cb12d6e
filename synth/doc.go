// Package synth is the generation session that ties the sirsynth stages
// into the six-stage pipeline:
//
//	change-point interpolation → RK4 integration → observable extraction
//	→ weekly modulation → delay shift → (optional) noise injection
//
// A Generator owns one seeded random stream and a fully resolved set of
// initial parameters. Parameters not overridden by options are drawn from
// a documented random default policy, in a fixed field order, so that two
// sessions with the same seed and the same overrides are bit-identical —
// including their noise draws.
//
// ⚙️ Usage:
//
//	w, _ := timeline.New(begin, end)
//	g, err := synth.New(w,
//	    synth.WithSeed(42),
//	    synth.WithNoise(),
//	    synth.WithLambda0(0.3),
//	)
//	ds, err := g.Generate()       // fresh Dataset per call
//	rt, err := g.RateCurve()      // the rate driver alone
//	fmt.Println(g.Seed())         // replay handle, also for unseeded runs
//
// Random default policy (resolution order == stream consumption order):
//
//	S0            uniform integer in [5 000 000, 10 000 000)
//	I0            ⌊3 + |Cauchy(0,1)|⌋  (half-Cauchy, location 3)
//	R0            0
//	Lambda0       uniform in [0, 1)
//	ChangePoints  one per window Sunday, date jittered by ⌊Normal(0,3)⌋
//	              days (clamped to the window), rate uniform in [0, 1)
//	NoiseFactor   1e-5
//	SundayOffset  days from window start to the first Sunday
//	WeekendFactor uniform in [0.1, 0.5)
//	CaseDelay     6
//
// Overriding a field skips its draw; the remaining fields then consume the
// stream in the same relative order.
//
// Output quirk, preserved on purpose: the LambdaT column of the Dataset is
// the raw rate driver and is NOT shifted by the case delay, so it is not
// temporally aligned with NewCases. Consumers correlating the two must
// shift LambdaT themselves.
package synth
