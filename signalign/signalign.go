// SPDX-License-Identifier: MIT

package signalign

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/sweidy/eof-rotation/eof"
)

// ErrReferenceGrid is returned when the reference frame does not have the
// series' vector length.
var ErrReferenceGrid = errors.New("signalign: reference frame does not match grid size")

// Passthrough leaves signs untouched.
type Passthrough struct{}

// AlignSigns returns s itself; series are immutable, so no copy is needed.
func (Passthrough) AlignSigns(s *eof.Series) (*eof.Series, error) {
	if s == nil {
		return nil, fmt.Errorf("signalign: Passthrough: %w", eof.ErrNilSeries)
	}

	return s, nil
}

// Consecutive aligns each day's signs with the previous day.
// If Reference is non-nil, day 1 is first aligned with it, which pins the
// sign convention of the whole year to an earlier run.
type Consecutive struct {
	Reference *eof.Frame
}

// AlignSigns returns a copy of s with consistent signs.
//
// Implementation:
//   - Stage 1: if Reference is set, negate day 1's EOF1 (EOF2) when its dot
//     product with Reference.EOF1 (EOF2) is negative.
//   - Stage 2: for d = 2..D, negate day d's EOF1 (EOF2) when its dot product
//     with day d−1's aligned EOF1 (EOF2) is negative. No wraparound: day 1 is
//     never compared with day D.
//
// Errors: eof.ErrNilSeries, ErrReferenceGrid.
//
// Complexity: Time O(D·M), Space O(D·M).
func (c Consecutive) AlignSigns(s *eof.Series) (*eof.Series, error) {
	if s == nil {
		return nil, fmt.Errorf("signalign: Consecutive: %w", eof.ErrNilSeries)
	}

	frames := s.Frames()
	if ref := c.Reference; ref != nil {
		if len(ref.EOF1) != s.GridSize() || len(ref.EOF2) != s.GridSize() {
			return nil, fmt.Errorf("signalign: Consecutive: %w", ErrReferenceGrid)
		}
		alignTo(&frames[0], ref.EOF1, ref.EOF2)
	}
	for d := 1; d < len(frames); d++ {
		alignTo(&frames[d], frames[d-1].EOF1, frames[d-1].EOF2)
	}

	out, err := eof.NewSeries(frames, s.Days())
	if err != nil {
		return nil, fmt.Errorf("signalign: Consecutive: %w", err)
	}

	return out, nil
}

// alignTo negates f's vectors in place where they point away from the
// given reference vectors.
func alignTo(f *eof.Frame, ref1, ref2 []float64) {
	if floats.Dot(f.EOF1, ref1) < 0 {
		floats.Scale(-1, f.EOF1)
	}
	if floats.Dot(f.EOF2, ref2) < 0 {
		floats.Scale(-1, f.EOF2)
	}
}
