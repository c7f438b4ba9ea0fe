// SPDX-License-Identifier: MIT

package rotation

import (
	"log/slog"

	"github.com/sweidy/eof-rotation/eof"
)

// SignAligner is the external sign-alignment step. Its output must be a
// series of the same length and grid whose signs are consistent from day to
// day (and, if the implementation supports one, with a day-1 reference).
type SignAligner interface {
	AlignSigns(s *eof.Series) (*eof.Series, error)
}

// Pipeline composes sign alignment → EstimateDelta → Rotate → Normalize.
// The cycle length and the sign aligner are explicit construction
// parameters; a Pipeline holds no mutable state and is safe for concurrent
// use on independent series.
type Pipeline struct {
	days    int
	aligner SignAligner
	logger  *slog.Logger
}

// Outcome carries every intermediate series of a run plus the scalars that
// drove it.
type Outcome struct {
	Aligned *eof.Series // sign-aligned input
	Rotated *eof.Series // after Rotate, before Normalize
	Series  *eof.Series // final, unit-length result

	Discontinuity float64 // seam angle measured on Aligned (radians)
	Delta         float64 // per-day rotation, −Discontinuity/D
	SeamResidual  float64 // SeamResidual(Series, Delta)
}

// NewPipeline returns a pipeline for a ring of `days` frames.
//
// Errors: eof.ErrCycleLength (days < 2), ErrNilAligner.
func NewPipeline(days int, aligner SignAligner, opts ...Option) (*Pipeline, error) {
	if err := eof.ValidateCycle(days); err != nil {
		return nil, rotationErrorf(opPipeline, err)
	}
	if aligner == nil {
		return nil, rotationErrorf(opPipeline, ErrNilAligner)
	}
	o := gatherOptions(opts...)

	return &Pipeline{days: days, aligner: aligner, logger: o.logger}, nil
}

// Days returns the cycle length the pipeline was configured for.
func (p *Pipeline) Days() int { return p.days }

// PostProcess aligns signs, rotates and renormalizes s, returning the final
// series. Any failure aborts the run; no partially processed series is
// returned.
func (p *Pipeline) PostProcess(s *eof.Series) (*eof.Series, error) {
	out, err := p.Run(s)
	if err != nil {
		return nil, err
	}

	return out.Series, nil
}

// Run is PostProcess returning the intermediate results as well.
func (p *Pipeline) Run(s *eof.Series) (*Outcome, error) {
	if err := eof.ValidateSeries(s, p.days); err != nil {
		return nil, rotationErrorf(opPipeline, err)
	}

	aligned, err := p.aligner.AlignSigns(s)
	if err != nil {
		return nil, rotationErrorf(opPipeline+": align signs", err)
	}
	if err = eof.ValidateSeries(aligned, p.days); err != nil {
		return nil, rotationErrorf(opPipeline+": align signs", err)
	}
	if aligned.GridSize() != s.GridSize() {
		return nil, rotationErrorf(opPipeline+": align signs", eof.ErrVectorLength)
	}

	disc, err := Discontinuity(aligned)
	if err != nil {
		return nil, err
	}
	delta := -disc / float64(p.days)
	p.logger.Debug("rotating frames",
		slog.Int("days", p.days),
		slog.Float64("discontinuity", disc),
		slog.Float64("delta", delta))

	rotated, err := Rotate(aligned, delta)
	if err != nil {
		return nil, err
	}
	final, err := Normalize(rotated)
	if err != nil {
		return nil, err
	}
	residual, err := SeamResidual(final, delta)
	if err != nil {
		return nil, err
	}
	p.logger.Debug("rotation finished", slog.Float64("seam_residual", residual))

	return &Outcome{
		Aligned:       aligned,
		Rotated:       rotated,
		Series:        final,
		Discontinuity: disc,
		Delta:         delta,
		SeamResidual:  residual,
	}, nil
}
