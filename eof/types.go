// SPDX-License-Identifier: MIT

package eof

import "slices"

// Calendar cycle lengths.
const (
	// DaysNoLeap is the cycle length of a calendar without leap days.
	DaysNoLeap = 365

	// DaysLeap is the cycle length when Feb 29 has its own bin.
	DaysLeap = 366
)

// DaysInCycle returns the number of day-of-year bins for the calendar policy.
func DaysInCycle(noLeap bool) int {
	if noLeap {
		return DaysNoLeap
	}

	return DaysLeap
}

// Frame is one day-of-year's pair of basis vectors embedded in the flattened
// grid space, together with the provenance of the decomposition that produced
// it. Lat, Lon, ExplainedVariance, Eigenvalues and Observations are carried
// through processing untouched.
type Frame struct {
	EOF1 []float64
	EOF2 []float64

	Lat []float64
	Lon []float64

	ExplainedVariance [2]float64
	Eigenvalues       [2]float64
	Observations      int
}

// Clone returns a deep copy of f.
func (f Frame) Clone() Frame {
	out := f
	out.EOF1 = slices.Clone(f.EOF1)
	out.EOF2 = slices.Clone(f.EOF2)
	out.Lat = slices.Clone(f.Lat)
	out.Lon = slices.Clone(f.Lon)

	return out
}

// WithVectors returns a copy of f whose basis vectors are replaced by copies
// of eof1 and eof2. Provenance is copied verbatim.
func (f Frame) WithVectors(eof1, eof2 []float64) Frame {
	out := f.Clone()
	out.EOF1 = slices.Clone(eof1)
	out.EOF2 = slices.Clone(eof2)

	return out
}

// GridSize returns M, the length of the basis vectors.
func (f Frame) GridSize() int { return len(f.EOF1) }

// EOF1Map reshapes EOF1 onto the len(Lat) × len(Lon) grid (row = latitude).
func (f Frame) EOF1Map() ([][]float64, error) {
	return reshape(f.EOF1, len(f.Lat), len(f.Lon))
}

// EOF2Map reshapes EOF2 onto the len(Lat) × len(Lon) grid (row = latitude).
func (f Frame) EOF2Map() ([][]float64, error) {
	return reshape(f.EOF2, len(f.Lat), len(f.Lon))
}

func reshape(v []float64, rows, cols int) ([][]float64, error) {
	if rows == 0 || cols == 0 || rows*cols != len(v) {
		return nil, eofErrorf("reshape", ErrGridShape)
	}
	out := make([][]float64, rows)
	for i := range out {
		out[i] = slices.Clone(v[i*cols : (i+1)*cols])
	}

	return out, nil
}
