// SPDX-License-Identifier: MIT

// Package signalign fixes the arbitrary signs of per-day EOF pairs.
//
// An eigenvector is only defined up to sign, so independently computed days
// can flip EOF1 or EOF2 from one day to the next. Both aligners here satisfy
// rotation.SignAligner and return a new series; the input is never modified.
//
//   - Passthrough: the series is already aligned.
//   - Consecutive: optionally align day 1 to a reference frame, then flip
//     every vector of day d whose dot product with day d−1's aligned
//     counterpart is negative.
package signalign
