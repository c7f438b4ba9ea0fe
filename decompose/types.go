// SPDX-License-Identifier: MIT

package decompose

import "gonum.org/v1/gonum/mat"

// Grid carries the spatial axes; samples are flattened row-major with
// latitude as the row, so M = len(Lat)·len(Lon).
type Grid struct {
	Lat []float64
	Lon []float64
}

// Size returns M.
func (g Grid) Size() int { return len(g.Lat) * len(g.Lon) }

// Window holds the observations assigned to one day-of-year.
type Window struct {
	Day     int         // 1-based day-of-year
	Samples [][]float64 // rows = time steps, cols = grid points
}

// Pair is the result of a Backend: the two leading eigenpairs, largest first,
// and the trace of the covariance matrix (total variance).
type Pair struct {
	Values  [2]float64
	Vectors [2][]float64
	Trace   float64
}

// Backend extracts the two leading eigenpairs of a symmetric covariance
// matrix. Implementations must not retain cov.
type Backend interface {
	Leading(cov *mat.SymDense) (Pair, error)
}
