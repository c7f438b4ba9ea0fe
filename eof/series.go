// SPDX-License-Identifier: MIT

package eof

// Series is an immutable, cyclic sequence of exactly D frames indexed by
// day-of-year 1..D. Adjacency is cyclic: Next(D) == 1 and Prev(1) == D.
//
// All frames share the same vector length M and the same grid axes.
type Series struct {
	frames []Frame
	m      int
}

// NewSeries validates frames against the cycle length days and returns a
// Series holding deep copies of them.
//
// Validation order: cycle length → series length → per-day vectors → grid
// axes. The first violation is returned; no partial series is built.
//
// Errors: ErrCycleLength, ErrSeriesLength, ErrVectorLength, ErrNaNInf,
// ErrGridMismatch, each wrapped with the day that failed where applicable.
func NewSeries(frames []Frame, days int) (*Series, error) {
	if err := ValidateCycle(days); err != nil {
		return nil, eofErrorf("NewSeries", err)
	}
	if len(frames) != days {
		return nil, eofErrorf("NewSeries", ErrSeriesLength)
	}

	m := len(frames[0].EOF1)
	out := make([]Frame, days)
	for i, f := range frames {
		if err := ValidateFrame(f, m); err != nil {
			return nil, DayError("NewSeries", i+1, err)
		}
		if i > 0 {
			if err := ValidateSameGrid(frames[0], f); err != nil {
				return nil, DayError("NewSeries", i+1, err)
			}
		}
		out[i] = f.Clone()
	}

	return &Series{frames: out, m: m}, nil
}

// Days returns the cycle length D.
func (s *Series) Days() int { return len(s.frames) }

// GridSize returns the common vector length M.
func (s *Series) GridSize() int { return s.m }

// Day returns a copy of the frame for day-of-year doy (1-based).
func (s *Series) Day(doy int) (Frame, error) {
	if doy < 1 || doy > len(s.frames) {
		return Frame{}, eofErrorf("Day", ErrDayOutOfRange)
	}

	return s.frames[doy-1].Clone(), nil
}

// Vectors returns day doy's basis vectors without copying.
// The slices are shared with the series and must not be modified; this is
// the read path for the sequential passes, which only ever write into fresh
// buffers. doy is taken modulo the cycle, so Vectors(D+1) is day 1.
func (s *Series) Vectors(doy int) (eof1, eof2 []float64) {
	f := &s.frames[s.index(doy)]

	return f.EOF1, f.EOF2
}

// Frames returns deep copies of all frames in day order.
func (s *Series) Frames() []Frame {
	out := make([]Frame, len(s.frames))
	for i, f := range s.frames {
		out[i] = f.Clone()
	}

	return out
}

// Next returns the day-of-year following doy on the ring.
func (s *Series) Next(doy int) int { return s.index(doy+1) + 1 }

// Prev returns the day-of-year preceding doy on the ring.
func (s *Series) Prev(doy int) int { return s.index(doy-1) + 1 }

// index maps any integer day onto the zero-based ring slot.
func (s *Series) index(doy int) int {
	d := len(s.frames)
	i := (doy - 1) % d
	if i < 0 {
		i += d
	}

	return i
}
