// SPDX-License-Identifier: MIT

package decompose

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"slices"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/sweidy/eof-rotation/eof"
)

// Compute decomposes every window and assembles the frames into a series of
// len(windows) days ordered by Window.Day.
//
// Per window: covariance C = stat.CovarianceMatrix(samples) (unbiased, columns
// centred), (λ1, v1), (λ2, v2) = backend.Leading(C), explained variance
// λi / trace(C) (0 when the trace is 0), observation count = number of rows.
// Eigenvector signs are canonicalized: the component of largest magnitude is
// made positive.
//
// Errors: ErrNoWindows, ErrNilBackend, eof.ErrGridShape (grid with fewer than
// two points), ErrDuplicateDay, ErrTooFewSamples, ErrSampleWidth, backend
// errors, ctx.Err() on cancellation, eof validation errors from NewSeries.
// Input validation happens before any decomposition starts.
//
// Concurrency: windows are decomposed in parallel, at most WithWorkers at a
// time; the first failure cancels the rest.
func Compute(ctx context.Context, grid Grid, windows []Window, backend Backend, opts ...Option) (*eof.Series, error) {
	if len(windows) == 0 {
		return nil, decomposeErrorf(opCompute, ErrNoWindows)
	}
	if backend == nil {
		return nil, decomposeErrorf(opCompute, ErrNilBackend)
	}
	m := grid.Size()
	if m < 2 {
		return nil, decomposeErrorf(opCompute, eof.ErrGridShape)
	}
	ordered := slices.Clone(windows)
	slices.SortFunc(ordered, func(a, b Window) int { return a.Day - b.Day })
	for i, w := range ordered {
		if i > 0 && ordered[i-1].Day == w.Day {
			return nil, decomposeErrorf(opCompute, fmt.Errorf("day %d: %w", w.Day, ErrDuplicateDay))
		}
		if err := validateWindow(w, m); err != nil {
			return nil, decomposeErrorf(opCompute, err)
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, decomposeErrorf(opCompute, err)
	}

	o := gatherOptions(opts...)
	frames := make([]eof.Frame, len(ordered))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.workers)
	for i, w := range ordered {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			f, err := decomposeDay(grid, w, backend)
			if err != nil {
				return fmt.Errorf("day %d: %w", w.Day, err)
			}
			o.logger.Debug("decomposed day",
				slog.Int("doy", w.Day),
				slog.Int("observations", f.Observations),
				slog.Float64("explained_variance_1", f.ExplainedVariance[0]))
			frames[i] = f

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, decomposeErrorf(opCompute, err)
	}

	s, err := eof.NewSeries(frames, len(frames))
	if err != nil {
		return nil, decomposeErrorf(opCompute, err)
	}

	return s, nil
}

func validateWindow(w Window, m int) error {
	if len(w.Samples) < 2 {
		return fmt.Errorf("day %d: %w", w.Day, ErrTooFewSamples)
	}
	for t, row := range w.Samples {
		if len(row) != m {
			return fmt.Errorf("day %d: sample %d: %w", w.Day, t, ErrSampleWidth)
		}
	}

	return nil
}

// decomposeDay builds one frame from one window.
func decomposeDay(grid Grid, w Window, backend Backend) (eof.Frame, error) {
	rows, m := len(w.Samples), grid.Size()
	x := mat.NewDense(rows, m, nil)
	for t, row := range w.Samples {
		x.SetRow(t, row)
	}
	cov := mat.NewSymDense(m, nil)
	stat.CovarianceMatrix(cov, x, nil)

	pair, err := backend.Leading(cov)
	if err != nil {
		return eof.Frame{}, err
	}

	f := eof.Frame{
		EOF1:         canonicalSign(pair.Vectors[0]),
		EOF2:         canonicalSign(pair.Vectors[1]),
		Lat:          slices.Clone(grid.Lat),
		Lon:          slices.Clone(grid.Lon),
		Eigenvalues:  pair.Values,
		Observations: rows,
	}
	if pair.Trace != 0 {
		f.ExplainedVariance = [2]float64{pair.Values[0] / pair.Trace, pair.Values[1] / pair.Trace}
	}

	return f, nil
}

// canonicalSign negates v in place if its largest-magnitude component is
// negative, and returns v.
func canonicalSign(v []float64) []float64 {
	if len(v) == 0 {
		return v
	}
	lo, hi := floats.Min(v), floats.Max(v)
	if math.Abs(lo) > math.Abs(hi) {
		floats.Scale(-1, v)
	}

	return v
}
