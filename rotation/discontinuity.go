// SPDX-License-Identifier: MIT

package rotation

import (
	"slices"

	"github.com/sweidy/eof-rotation/eof"
)

// Discontinuity measures the loop-closure error of s: the angle between day
// 1's EOF1 and the vector obtained by carrying day 1's pair once around the
// whole ring by re-projection.
//
// Implementation:
//   - Stage 1: (u1, u2) ← day 1's (EOF1, EOF2).
//   - Stage 2: for d = 1..D, (b1, b2) ← day Next(d)'s original vectors, where
//     Next(D) = 1; u ← b1·(b1·u) + b2·(b2·u) for u in {u1, u2}.
//   - Stage 3: return Angle(day1.EOF1, u1).
//
// Notes:
//   - Only EOF1 is measured; EOF2 is carried so both vectors see the same
//     projection history, but its drift is not reported.
//   - The last step projects onto day 1 itself, so u1 ends in day 1's span.
//
// Errors:
//   - eof.ErrNilSeries on nil input.
//   - eof.ErrZeroVector if the carried vector collapses (orthogonal subspaces).
//
// Complexity: Time O(D·M), Space O(M) (two pairs of swap buffers).
func Discontinuity(s *eof.Series) (float64, error) {
	if s == nil {
		return 0, rotationErrorf(opDiscontinuity, eof.ErrNilSeries)
	}

	days, m := s.Days(), s.GridSize()
	first1, first2 := s.Vectors(1)
	u1, u2 := slices.Clone(first1), slices.Clone(first2)
	p1, p2 := make([]float64, m), make([]float64, m)

	for d := 1; d <= days; d++ {
		b1, b2 := s.Vectors(s.Next(d)) // day D's successor is day 1
		reprojectInto(p1, b1, b2, u1)
		reprojectInto(p2, b1, b2, u2)
		u1, p1 = p1, u1
		u2, p2 = p2, u2
	}

	disc, err := Angle(first1, u1)
	if err != nil {
		return 0, rotationErrorf(opDiscontinuity, err)
	}

	return disc, nil
}

// EstimateDelta returns the per-day rotation angle δ = −Discontinuity(s)/D.
// Applied once per day by Rotate, the correction spreads the single measured
// seam error uniformly over the cycle.
func EstimateDelta(s *eof.Series) (float64, error) {
	disc, err := Discontinuity(s)
	if err != nil {
		return 0, err
	}

	return -disc / float64(s.Days()), nil
}
