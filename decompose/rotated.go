// SPDX-License-Identifier: MIT

package decompose

import (
	"context"

	"github.com/sweidy/eof-rotation/eof"
	"github.com/sweidy/eof-rotation/rotation"
)

// ComputeRotated is the full processing chain: Compute with the given
// backend, then p.Run on the resulting series. It returns the raw series as
// decomposed and the pipeline outcome; the final series is outcome.Series.
//
// len(windows) must equal p.Days().
//
// Errors: ErrNilPipeline, any Compute error, any Pipeline.Run error
// (eof.ErrSeriesLength when the window count does not match the cycle).
func ComputeRotated(
	ctx context.Context,
	grid Grid,
	windows []Window,
	backend Backend,
	p *rotation.Pipeline,
	opts ...Option,
) (*eof.Series, *rotation.Outcome, error) {
	if p == nil {
		return nil, nil, decomposeErrorf(opComputeRotated, ErrNilPipeline)
	}

	raw, err := Compute(ctx, grid, windows, backend, opts...)
	if err != nil {
		return nil, nil, err
	}
	out, err := p.Run(raw)
	if err != nil {
		return nil, nil, decomposeErrorf(opComputeRotated, err)
	}

	return raw, out, nil
}
