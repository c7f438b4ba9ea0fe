// SPDX-License-Identifier: MIT

package rotation

import (
	"errors"
	"fmt"
)

// ErrNilAligner is returned by NewPipeline when no sign aligner is supplied.
// Input validation failures are reported with the eof sentinels
// (eof.ErrSeriesLength, eof.ErrZeroVector, ...); see eof.IsValidation.
var ErrNilAligner = errors.New("rotation: nil sign aligner")

// Operation tags used in error wrapping.
const (
	opAngle         = "Angle"
	opFrameAngles   = "FrameAngles"
	opDiscontinuity = "Discontinuity"
	opRotate        = "Rotate"
	opReproject     = "Reproject"
	opSeamResidual  = "SeamResidual"
	opNormalize     = "Normalize"
	opPipeline      = "Pipeline"
)

// rotationErrorf wraps err with an operation tag, preserving it for errors.Is.
func rotationErrorf(tag string, err error) error {
	return fmt.Errorf("rotation: %s: %w", tag, err)
}
