// SPDX-License-Identifier: MIT
// Package eof: sentinel error set.
// Every invariant violation on a Frame or Series is reported through one of
// these sentinels, optionally wrapped with a call-site tag. Callers match with
// errors.Is; IsValidation answers "is this a ValidationError at all".

package eof

import (
	"errors"
	"fmt"
)

var (
	// ErrNilSeries indicates that a nil *Series was passed to an operation.
	ErrNilSeries = errors.New("eof: nil series")

	// ErrCycleLength is returned when the requested cycle length D is < 2.
	ErrCycleLength = errors.New("eof: cycle length must be >= 2")

	// ErrSeriesLength is returned when a series does not hold exactly D frames.
	ErrSeriesLength = errors.New("eof: series length does not match cycle length")

	// ErrVectorLength signals an empty vector or vectors of differing length M.
	ErrVectorLength = errors.New("eof: vector length mismatch")

	// ErrGridMismatch signals that two frames of one series carry different grid axes.
	ErrGridMismatch = errors.New("eof: grid axes differ between days")

	// ErrGridShape is returned when len(Lat)*len(Lon) != M on a reshape request.
	ErrGridShape = errors.New("eof: grid axes do not match vector length")

	// ErrZeroVector signals a zero-norm vector where a direction is required
	// (angle computation, normalization).
	ErrZeroVector = errors.New("eof: zero-length vector")

	// ErrNaNInf signals a NaN or ±Inf vector component.
	ErrNaNInf = errors.New("eof: NaN or Inf encountered")

	// ErrDayOutOfRange indicates a day-of-year outside [1, D].
	ErrDayOutOfRange = errors.New("eof: day-of-year out of range")
)

var validationSentinels = []error{
	ErrNilSeries,
	ErrCycleLength,
	ErrSeriesLength,
	ErrVectorLength,
	ErrGridMismatch,
	ErrGridShape,
	ErrZeroVector,
	ErrNaNInf,
	ErrDayOutOfRange,
}

// IsValidation reports whether err (or anything it wraps) is one of the
// ValidationError sentinels of this package.
func IsValidation(err error) bool {
	if err == nil {
		return false
	}
	for _, s := range validationSentinels {
		if errors.Is(err, s) {
			return true
		}
	}

	return false
}

// eofErrorf tags err with the operation name, preserving it for errors.Is.
func eofErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// DayError wraps err with the offending day-of-year.
// Exported so that processing packages report day context the same way.
func DayError(tag string, doy int, err error) error {
	return fmt.Errorf("%s: day %d: %w", tag, doy, err)
}
