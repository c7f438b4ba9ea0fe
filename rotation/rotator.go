// SPDX-License-Identifier: MIT

package rotation

import (
	"github.com/sweidy/eof-rotation/eof"
)

// Rotate re-expresses every day's frame in that day's own subspace while
// applying the per-day rotation δ.
//
// Implementation:
//   - Stage 1: day 1 is copied through unchanged; (u1, u2) ← day 1's vectors.
//   - Stage 2: for d = 2..D in order (no wraparound):
//     (b1, b2) ← day d's original vectors;
//     p_i ← b1·(b1·u_i) + b2·(b2·u_i);
//     (u1, u2) ← [p1 p2]·R(δ), i.e. u1 = cos δ·p1 + sin δ·p2, u2 = −sin δ·p1 + cos δ·p2;
//     emit day d with (u1, u2) and day d's provenance.
//   - Stage 3: build a new series (the input is never modified).
//
// Errors:
//   - eof.ErrNilSeries on nil input; any validation error of the rebuilt series
//     (e.g. eof.ErrNaNInf on overflow).
//
// Complexity: Time O(D·M), Space O(D·M) for the output.
func Rotate(s *eof.Series, delta float64) (*eof.Series, error) {
	out, err := propagate(s, RotationMatrix(delta), true)
	if err != nil {
		return nil, rotationErrorf(opRotate, err)
	}

	return out, nil
}

// Reproject runs the Rotate fold without the rotation mixing: every day's
// frame becomes the previous output re-projected onto that day's vectors.
// It is the δ = 0 reference of Rotate.
func Reproject(s *eof.Series) (*eof.Series, error) {
	out, err := propagate(s, [2][2]float64{}, false)
	if err != nil {
		return nil, rotationErrorf(opReproject, err)
	}

	return out, nil
}

// propagate is the shared forward fold of Rotate and Reproject.
func propagate(s *eof.Series, r [2][2]float64, mix bool) (*eof.Series, error) {
	if s == nil {
		return nil, eof.ErrNilSeries
	}

	days, m := s.Days(), s.GridSize()
	frames := s.Frames()
	u1, u2 := frames[0].EOF1, frames[0].EOF2

	for d := 2; d <= days; d++ {
		b1, b2 := s.Vectors(d)
		p1, p2 := make([]float64, m), make([]float64, m)
		reprojectInto(p1, b1, b2, u1)
		reprojectInto(p2, b1, b2, u2)
		if mix {
			n1, n2 := make([]float64, m), make([]float64, m)
			rotateInto(n1, n2, p1, p2, r)
			p1, p2 = n1, n2
		}
		frames[d-1].EOF1, frames[d-1].EOF2 = p1, p2
		u1, u2 = p1, p2
	}

	return eof.NewSeries(frames, days)
}

// SeamResidual carries day D's frame across the seam with one more step of
// the Rotate fold (re-projection onto day 1's vectors, then R(δ)) and returns
// the angle between the result's EOF1 and day 1's EOF1.
//
// On a series produced by Rotate(in, δ) with δ = EstimateDelta(in), this
// step is the D-th application of δ and lands back on day 1; the residual
// is the remaining seam error. On the raw input with δ = 0 it is the plain
// day D → day 1 jump.
func SeamResidual(s *eof.Series, delta float64) (float64, error) {
	if s == nil {
		return 0, rotationErrorf(opSeamResidual, eof.ErrNilSeries)
	}

	m := s.GridSize()
	last1, last2 := s.Vectors(s.Days())
	b1, b2 := s.Vectors(s.Next(s.Days()))

	p1, p2 := make([]float64, m), make([]float64, m)
	reprojectInto(p1, b1, b2, last1)
	reprojectInto(p2, b1, b2, last2)
	u1, u2 := make([]float64, m), make([]float64, m)
	rotateInto(u1, u2, p1, p2, RotationMatrix(delta))

	res, err := Angle(b1, u1)
	if err != nil {
		return 0, rotationErrorf(opSeamResidual, err)
	}

	return res, nil
}
