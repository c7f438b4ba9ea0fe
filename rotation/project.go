// SPDX-License-Identifier: MIT

package rotation

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// RotationMatrix returns R(δ) = [[cos δ, −sin δ], [sin δ, cos δ]].
//
// A frame P = [p1 p2] is rotated by right-multiplication, P·R(δ):
//
//	u1 = R[0][0]·p1 + R[1][0]·p2 =  cos δ·p1 + sin δ·p2
//	u2 = R[0][1]·p1 + R[1][1]·p2 = −sin δ·p1 + cos δ·p2
func RotationMatrix(delta float64) [2][2]float64 {
	c, s := math.Cos(delta), math.Sin(delta)

	return [2][2]float64{{c, -s}, {s, c}}
}

// reprojectInto writes b1·(b1·u) + b2·(b2·u) into dst.
// dst must not alias u: both dot products are read from u while dst is written.
// Complexity: O(M), no allocation.
func reprojectInto(dst, b1, b2, u []float64) {
	c1, c2 := floats.Dot(b1, u), floats.Dot(b2, u)
	floats.ScaleTo(dst, c1, b1)
	floats.AddScaled(dst, c2, b2)
}

// rotateInto writes the columns of [p1 p2]·R into (dst1, dst2).
// Neither destination may alias p1 or p2.
func rotateInto(dst1, dst2, p1, p2 []float64, r [2][2]float64) {
	floats.ScaleTo(dst1, r[0][0], p1)
	floats.AddScaled(dst1, r[1][0], p2)
	floats.ScaleTo(dst2, r[0][1], p1)
	floats.AddScaled(dst2, r[1][1], p2)
}
