// SPDX-License-Identifier: MIT

package rotation

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/sweidy/eof-rotation/eof"
)

// Angle returns the angle in radians between two equal-length vectors:
//
//	θ = arccos(clip(v1·v2 / (|v1|·|v2|), −1, 1))
//
// The clip is part of the contract: rounding can push the cosine marginally
// outside [−1, 1] for (anti)parallel vectors, where arccos is undefined.
//
// Errors:
//   - eof.ErrVectorLength if the vectors are empty or differ in length.
//   - eof.ErrZeroVector if either vector has zero norm.
//   - eof.ErrNaNInf if the cosine is not a number (non-finite input).
//
// Complexity: O(M).
func Angle(v1, v2 []float64) (float64, error) {
	if len(v1) == 0 || len(v1) != len(v2) {
		return 0, rotationErrorf(opAngle, eof.ErrVectorLength)
	}
	n1, n2 := floats.Norm(v1, 2), floats.Norm(v2, 2)
	if n1 == 0 || n2 == 0 {
		return 0, rotationErrorf(opAngle, eof.ErrZeroVector)
	}
	cos := floats.Dot(v1, v2) / (n1 * n2)
	if math.IsNaN(cos) {
		return 0, rotationErrorf(opAngle, eof.ErrNaNInf)
	}

	return math.Acos(clip(cos, -1, 1)), nil
}

// FrameAngles returns the angles between ref and target for EOF1 and for
// EOF2 separately. Typical use: how far a processing stage moved a day's
// frame, or how close two consecutive days are.
func FrameAngles(ref, target eof.Frame) (a1, a2 float64, err error) {
	if a1, err = Angle(ref.EOF1, target.EOF1); err != nil {
		return 0, 0, rotationErrorf(opFrameAngles+": EOF1", err)
	}
	if a2, err = Angle(ref.EOF2, target.EOF2); err != nil {
		return 0, 0, rotationErrorf(opFrameAngles+": EOF2", err)
	}

	return a1, a2, nil
}

func clip(x, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, x))
}
