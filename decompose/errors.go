// SPDX-License-Identifier: MIT

package decompose

import (
	"errors"
	"fmt"
)

var (
	// ErrNoWindows is returned when Compute receives no windows.
	ErrNoWindows = errors.New("decompose: no windows")

	// ErrTooFewSamples signals a window with fewer than two time steps.
	ErrTooFewSamples = errors.New("decompose: window needs at least two samples")

	// ErrSampleWidth signals a sample row whose length is not the grid size.
	ErrSampleWidth = errors.New("decompose: sample width does not match grid")

	// ErrDuplicateDay signals two windows for the same day-of-year.
	ErrDuplicateDay = errors.New("decompose: duplicate day-of-year")

	// ErrNotConverged is returned when an eigensolver gives up.
	ErrNotConverged = errors.New("decompose: eigensolver did not converge")

	// ErrNilBackend is returned when Compute receives a nil Backend.
	ErrNilBackend = errors.New("decompose: nil backend")

	// ErrUnknownBackend is returned by NewBackend for an unregistered name.
	ErrUnknownBackend = errors.New("decompose: unknown backend")

	// ErrNilPipeline is returned by ComputeRotated without a pipeline.
	ErrNilPipeline = errors.New("decompose: nil rotation pipeline")
)

const (
	opCompute        = "Compute"
	opComputeRotated = "ComputeRotated"
	opNewBackend     = "NewBackend"
	opGonum          = "GonumBackend"
	opJacobi         = "JacobiBackend"
)

func decomposeErrorf(tag string, err error) error {
	return fmt.Errorf("decompose: %s: %w", tag, err)
}
