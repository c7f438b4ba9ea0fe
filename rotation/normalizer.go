// SPDX-License-Identifier: MIT

package rotation

import (
	"gonum.org/v1/gonum/floats"

	"github.com/sweidy/eof-rotation/eof"
)

// Normalize returns a new series in which every day's EOF1 and EOF2 are
// scaled to unit Euclidean length. Days are independent of each other.
// Normalization restores length only; direction is left as it is.
//
// Errors: eof.ErrNilSeries, eof.ErrZeroVector (with the failing day). On
// error no series is returned.
func Normalize(s *eof.Series) (*eof.Series, error) {
	if s == nil {
		return nil, rotationErrorf(opNormalize, eof.ErrNilSeries)
	}

	frames := s.Frames()
	for i := range frames {
		for _, v := range [][]float64{frames[i].EOF1, frames[i].EOF2} {
			n := floats.Norm(v, 2)
			if n == 0 {
				return nil, rotationErrorf(opNormalize, eof.DayError("unit length", i+1, eof.ErrZeroVector))
			}
			floats.Scale(1/n, v)
		}
	}

	out, err := eof.NewSeries(frames, s.Days())
	if err != nil {
		return nil, rotationErrorf(opNormalize, err)
	}

	return out, nil
}
