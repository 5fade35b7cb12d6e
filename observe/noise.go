// SPDX-License-Identifier: MIT
// Package: sirsynth/observe
//
// noise.go — overdispersed count noise via a moment-matched negative
// binomial.
//
// Parameterization (matching the classic NB regression form): for a target
// mean μ and dispersion α, set r = 1/α failures and success probability
// p = μ/(μ+r). The resulting draw has mean μ and variance μ + α·μ², so a
// small α keeps the noise close to the signal.
//
// Realization: a negative binomial is a gamma–Poisson mixture, so each
// draw is Poisson(λ) with λ ~ Gamma(shape r, rate r/μ). Both distributions
// come from gonum's distuv and consume the caller's rand.Source, which
// keeps the session's single random stream intact.
//
// Contract:
//   - Entries equal to zero are left untouched (a zero count is exact).
//   - α <= 0 is rejected with ErrBadNoiseFactor before any draw.
//   - Same source state ⇒ same draws; the input slice is never mutated.

package observe

import (
	"errors"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// ErrBadNoiseFactor indicates a non-positive dispersion α, which does not
// describe a valid negative-binomial distribution.
var ErrBadNoiseFactor = errors.New("observe: noise factor must be positive")

// AddNoise replaces every strictly-positive entry of the series with an
// independent negative-binomial draw whose mean equals the original value
// and whose dispersion is alpha. Zero entries pass through unmodified.
//
// Complexity: O(len(series)) time, one Gamma and one Poisson draw per
// positive entry.
func AddNoise(series []float64, alpha float64, src rand.Source) ([]float64, error) {
	if alpha <= 0 {
		return nil, ErrBadNoiseFactor
	}

	r := 1 / alpha
	out := make([]float64, len(series))
	for i, mu := range series {
		if mu <= 0 {
			out[i] = mu
			continue
		}
		out[i] = drawNegativeBinomial(mu, r, src)
	}

	return out, nil
}

// drawNegativeBinomial samples NB(mean μ, r failures) as the gamma–Poisson
// mixture Poisson(Gamma(shape r, rate r/μ)).
func drawNegativeBinomial(mu, r float64, src rand.Source) float64 {
	lambda := distuv.Gamma{Alpha: r, Beta: r / mu, Src: src}.Rand()
	if lambda <= 0 {
		// Gamma mass at exactly zero is a float underflow artifact; the
		// matching Poisson draw is the constant zero.
		return 0
	}

	return distuv.Poisson{Lambda: lambda, Src: src}.Rand()
}
