// SPDX-License-Identifier: MIT

package decompose

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Jacobi defaults.
const (
	// DefaultJacobiTol is the convergence threshold on the largest
	// off-diagonal magnitude, relative to the largest diagonal magnitude.
	DefaultJacobiTol = 1e-12

	// jacobiRotationsPerEntry bounds the rotation count at this many times M².
	jacobiRotationsPerEntry = 30
)

// JacobiBackend diagonalizes the covariance matrix by classical Jacobi
// rotations. Zero values select the defaults.
type JacobiBackend struct {
	Tol          float64 // relative off-diagonal threshold; <= 0 ⇒ DefaultJacobiTol
	MaxRotations int     // <= 0 ⇒ 30·M²
}

// Leading implements Backend.
//
// Implementation:
//   - Stage 1: copy cov into a flat row-major work buffer A, Q ← I.
//   - Stage 2: repeatedly pick (p, q) with the largest |A[p,q]| (i→j scan) and
//     apply the rotation that zeroes it, accumulating it into Q.
//   - Stage 3: stop once max|A[p,q]| < Tol·max|A[i,i]|; eigenvalues are the
//     diagonal of A, eigenvectors the columns of Q; keep the top two.
//
// Errors: ErrSampleWidth (cov smaller than 2×2), ErrNotConverged (rotation
// budget exhausted).
//
// Determinism: fixed pivot scan and update order.
//
// Complexity: Time O(R·M) for R rotations plus O(M²) per pivot scan,
// Space O(M²).
func (b JacobiBackend) Leading(cov *mat.SymDense) (Pair, error) {
	n := cov.SymmetricDim()
	if n < 2 {
		return Pair{}, decomposeErrorf(opJacobi, fmt.Errorf("%d×%d covariance: %w", n, n, ErrSampleWidth))
	}
	tol := b.Tol
	if tol <= 0 {
		tol = DefaultJacobiTol
	}
	maxRot := b.MaxRotations
	if maxRot <= 0 {
		maxRot = jacobiRotationsPerEntry * n * n
	}

	a := make([]float64, n*n)
	q := make([]float64, n*n)
	var trace, scale float64
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			a[i*n+j] = cov.At(i, j)
		}
		q[i*n+i] = 1
		trace += a[i*n+i]
		scale = math.Max(scale, math.Abs(a[i*n+i]))
	}
	threshold := tol * scale

	converged := false
	for rot := 0; rot <= maxRot; rot++ {
		p, r, maxOff := pivot(a, n)
		if maxOff <= threshold {
			converged = true
			break
		}
		if rot == maxRot {
			break
		}
		rotate(a, q, n, p, r)
	}
	if !converged {
		return Pair{}, decomposeErrorf(opJacobi, ErrNotConverged)
	}

	// top two diagonal entries, ties resolved by lower index
	i1, i2 := 0, 1
	if a[1*n+1] > a[0] {
		i1, i2 = 1, 0
	}
	for i := 2; i < n; i++ {
		switch v := a[i*n+i]; {
		case v > a[i1*n+i1]:
			i1, i2 = i, i1
		case v > a[i2*n+i2]:
			i2 = i
		}
	}

	return Pair{
		Values:  [2]float64{a[i1*n+i1], a[i2*n+i2]},
		Vectors: [2][]float64{column(q, n, i1), column(q, n, i2)},
		Trace:   trace,
	}, nil
}

// pivot returns the upper-triangle position with the largest magnitude.
func pivot(a []float64, n int) (p, q int, maxOff float64) {
	p, q = 0, 1
	for i := 0; i < n; i++ {
		base := i * n
		for j := i + 1; j < n; j++ {
			if off := math.Abs(a[base+j]); off > maxOff {
				maxOff, p, q = off, i, j
			}
		}
	}

	return p, q, maxOff
}

// rotate applies the Jacobi rotation that zeroes a[p,q] to a (both sides)
// and to the accumulator q (right side).
func rotate(a, acc []float64, n, p, q int) {
	app, aqq, apq := a[p*n+p], a[q*n+q], a[p*n+q]

	// θ = (aqq−app)/(2·apq), t = sign(θ)/(|θ|+√(θ²+1))
	theta := (aqq - app) / (2 * apq)
	t := math.Copysign(1/(math.Abs(theta)+math.Hypot(theta, 1)), theta)
	c := 1 / math.Sqrt(t*t+1)
	s := t * c

	for i := 0; i < n; i++ {
		if i == p || i == q {
			continue
		}
		aip, aiq := a[i*n+p], a[i*n+q]
		nip := c*aip - s*aiq
		niq := s*aip + c*aiq
		a[i*n+p], a[p*n+i] = nip, nip
		a[i*n+q], a[q*n+i] = niq, niq
	}
	a[p*n+p] = c*c*app - 2*c*s*apq + s*s*aqq
	a[q*n+q] = s*s*app + 2*c*s*apq + c*c*aqq
	a[p*n+q], a[q*n+p] = 0, 0

	for i := 0; i < n; i++ {
		qip, qiq := acc[i*n+p], acc[i*n+q]
		acc[i*n+p] = c*qip - s*qiq
		acc[i*n+q] = s*qip + c*qiq
	}
}

func column(m []float64, n, j int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = m[i*n+j]
	}

	return out
}
