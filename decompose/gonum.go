// SPDX-License-Identifier: MIT

package decompose

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// GonumBackend solves the full symmetric eigenproblem with mat.EigenSym and
// keeps the top two eigenpairs.
type GonumBackend struct{}

// Leading implements Backend.
//
// Errors: ErrSampleWidth if cov is smaller than 2×2, ErrNotConverged if the
// factorization fails.
//
// Complexity: Time O(M³), Space O(M²).
func (GonumBackend) Leading(cov *mat.SymDense) (Pair, error) {
	n := cov.SymmetricDim()
	if n < 2 {
		return Pair{}, decomposeErrorf(opGonum, fmt.Errorf("%d×%d covariance: %w", n, n, ErrSampleWidth))
	}

	var es mat.EigenSym
	if ok := es.Factorize(cov, true); !ok {
		return Pair{}, decomposeErrorf(opGonum, ErrNotConverged)
	}
	vals := es.Values(nil) // ascending
	var vecs mat.Dense
	es.VectorsTo(&vecs)

	return Pair{
		Values:  [2]float64{vals[n-1], vals[n-2]},
		Vectors: [2][]float64{mat.Col(nil, n-1, &vecs), mat.Col(nil, n-2, &vecs)},
		Trace:   mat.Trace(cov),
	}, nil
}
