// SPDX-License-Identifier: MIT

// Package rotation makes a cyclic day-of-year series of EOF pairs continuous
// from day to day and closed across the year boundary.
//
// Per-day decompositions are computed independently, which leaves angular
// jitter between neighbouring days and a seam between day D and day 1. The
// package removes both with two sequential folds around the ring:
//
//  1. Discontinuity / EstimateDelta: carry day 1's pair through every day's
//     subspace (day D's successor is day 1) by re-projection and measure the
//     angle between day 1's EOF1 and the carried vector. δ = −angle / D.
//  2. Rotate: starting again from day 1, re-project the carried pair onto
//     each day's subspace and mix it through the 2×2 rotation R(δ).
//  3. Normalize: rescale each day's vectors to unit length.
//
// Pipeline composes an external sign-alignment step with the three stages.
//
// Re-projection:
//
//	u ← b1·(b1·u) + b2·(b2·u)
//
// This is the sum of the two rank-1 projections, not an orthonormal subspace
// projector; it equals one only when (b1, b2) is orthonormal. The form is kept
// for numerical parity with the published algorithm. Only EOF1 is used to
// measure the discontinuity.
//
// Every stage returns a new *eof.Series and never mutates its input. The folds
// are strictly sequential (step d depends on step d−1); the per-day vector
// arithmetic is O(M), so a full run is O(D·M). Nothing here keeps state
// between calls, so independent series may be processed concurrently.
//
// Usage:
//
//	p, err := rotation.NewPipeline(eof.DaysInCycle(false), signalign.Consecutive{},
//		rotation.WithLogger(logger))
//	out, err := p.PostProcess(series)
package rotation
