// Package observe turns a latent infected trajectory into a realistic
// reported-cases series through four independent stages:
//
//	NewCasesRaw    — first difference of the infected compartment,
//	                 clipped at zero (declines are unobservable)
//	WeekModulation — sinusoidal day-of-week reporting suppression,
//	                 phase-anchored on the window's first Sunday
//	DelayCases     — fixed forward shift emulating confirmation lag,
//	                 zero-filled head, length preserved
//	AddNoise       — moment-matched negative-binomial resampling of
//	                 every strictly-positive entry (overdispersed
//	                 count noise); zeros stay exact
//
// Plus Cumulative, the running total of positive jumps, for consumers that
// want total-cases rather than new-cases series.
//
// Each stage is a pure slice transform (AddNoise pure given its random
// source): inputs are never mutated, outputs are freshly allocated, and
// composing the stages in the order above is exactly the observation model
// of the generation pipeline in sirsynth/synth.
package observe
