// SPDX-License-Identifier: MIT

// Package eof holds the data model for a cyclic day-of-year series of paired
// basis vectors (EOF1, EOF2) produced by a per-day empirical orthogonal
// function decomposition over a flattened spatial grid.
//
// What is modelled:
//
//   - Frame: one day's two basis vectors plus opaque provenance (grid
//     axes, explained variance, eigenvalues, observation count).
//   - Series: exactly D frames indexed by day-of-year 1..D, where day D's
//     successor is day 1. D is supplied by the caller (365/366 for real
//     calendars, any D ≥ 2 for synthetic rings).
//
// Guarantees:
//
//   - A Series is immutable: NewSeries deep-copies its input and every
//     accessor hands out copies. Processing stages build new series.
//   - All frames share one vector length M and one set of grid axes.
//   - Every violated invariant is reported as a sentinel error from
//     errors.go; IsValidation recognises the whole taxonomy.
//
// Usage:
//
//	s, err := eof.NewSeries(frames, eof.DaysInCycle(false))
//	if err != nil {
//		// eof.IsValidation(err) == true
//	}
//	day1, _ := s.Day(1)
//	m1, _ := day1.EOF1Map() // len(Lat) × len(Lon)
package eof
