// SPDX-License-Identifier: MIT
// Package eof: central validators.
//
// Purpose:
//   - One place for the shape/finiteness checks shared by NewSeries and the
//     processing packages.
//   - Return sentinels wrapped with the validator tag; callers wrap again with
//     their own operation tag.
//
// Note:
//   - ValidateFrame runs in a fixed order: vector lengths → finiteness.
//   - None of the validators inspect grid geometry beyond axis equality; the
//     grid itself is upstream's responsibility.

package eof

import (
	"math"
	"slices"
)

// ValidateCycle checks that D can form a ring.
func ValidateCycle(days int) error {
	if days < 2 {
		return eofErrorf("ValidateCycle", ErrCycleLength)
	}

	return nil
}

// ValidateVector rejects empty vectors, vectors of a length other than m
// (when m > 0), and non-finite components.
// Complexity: O(len(v)).
func ValidateVector(v []float64, m int) error {
	if len(v) == 0 || (m > 0 && len(v) != m) {
		return eofErrorf("ValidateVector", ErrVectorLength)
	}
	for _, x := range v {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return eofErrorf("ValidateVector", ErrNaNInf)
		}
	}

	return nil
}

// ValidateFrame checks that both basis vectors have length m (or agree with
// each other when m <= 0) and are finite.
func ValidateFrame(f Frame, m int) error {
	if m <= 0 {
		m = len(f.EOF1)
	}
	if err := ValidateVector(f.EOF1, m); err != nil {
		return eofErrorf("ValidateFrame: EOF1", err)
	}
	if err := ValidateVector(f.EOF2, m); err != nil {
		return eofErrorf("ValidateFrame: EOF2", err)
	}

	return nil
}

// ValidateSameGrid checks that two frames carry identical grid axes.
func ValidateSameGrid(a, b Frame) error {
	if !slices.Equal(a.Lat, b.Lat) || !slices.Equal(a.Lon, b.Lon) {
		return eofErrorf("ValidateSameGrid", ErrGridMismatch)
	}

	return nil
}

// ValidateSeries checks s against an expected cycle length.
// Series built by NewSeries are already consistent; this guards nil input
// and a D that differs from the caller's calendar policy.
func ValidateSeries(s *Series, days int) error {
	if s == nil {
		return eofErrorf("ValidateSeries", ErrNilSeries)
	}
	if s.Days() != days {
		return eofErrorf("ValidateSeries", ErrSeriesLength)
	}

	return nil
}
