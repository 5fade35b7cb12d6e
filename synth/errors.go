// SPDX-License-Identifier: MIT
// Package: sirsynth/synth
//
// errors.go — sentinel errors of the generation session.
//
// Error policy (matches the rest of sirsynth):
//   - Sentinels only; callers branch with errors.Is.
//   - Stage failures from timeline/ratecurve/sir/observe are wrapped with
//     %w and stage context, never replaced: errors.Is still reaches the
//     inner sentinel.
//   - Option constructors validate and panic on programmer error; the
//     pipeline itself never panics.

package synth

import "errors"

// ErrLengthMismatch indicates that a stage produced a series whose length
// disagrees with the window-derived expectation. The pipeline re-checks
// lengths at every stage boundary and aborts rather than misaligning; a
// generation run is one-shot and never partially recovered.
var ErrLengthMismatch = errors.New("synth: stage output length mismatch")
