// SPDX-License-Identifier: MIT

// Package decompose computes the raw per-day EOF pairs that the rotation
// package post-processes.
//
// For every day-of-year window of observations (rows = time steps, columns =
// flattened grid points) Compute builds the sample covariance matrix with
// gonum/stat and asks a Backend for its two leading eigenpairs:
//
//   - GonumBackend: LAPACK-style symmetric eigendecomposition (mat.EigenSym).
//   - JacobiBackend: classical Jacobi rotations with largest-pivot search;
//     dependency-light and deterministic, practical for small grids.
//
// Each eigenvector is returned with a canonical sign (largest-magnitude
// component positive), so both backends agree up to rounding. Days are
// independent and run concurrently on a bounded errgroup; the result is an
// eof.Series ordered by day.
//
// NewBackend selects a backend by name ("gonum", "jacobi"); ComputeRotated
// chains Compute with a rotation.Pipeline for the complete processing run.
package decompose
