// SPDX-License-Identifier: MIT
// Package rotation_test contains synthetic rings with a known seam.
//
// Construction (M = 4): day d (k = d−1) spans
//
//	x_d = (c·cos kh, c·sin kh, s, 0)
//	y_d = (−c·sin kh, c·cos kh, 0, s),   h = 2π/D, c² + s² = 1.
//
// Consecutive overlaps are the constant scaled rotation O = ρ·R(−ψ) with
// tan ψ = c²·sin h / (c²·cos h + s²), the wrap D→1 included, so carrying day 1
// around the ring yields R(−Dψ): the seam angle is θ = 2π − Dψ. seamRing
// solves for c given θ. θ = 0 gives s = 0: every day spans the same plane and
// only the in-plane basis turns, the flat (already closed) case.

package rotation_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"

	"github.com/sweidy/eof-rotation/eof"
)

// seamRing builds a D-day ring (D >= 4) with an exact seam angle theta ∈ [0, π).
func seamRing(t testing.TB, days int, theta float64) *eof.Series {
	t.Helper()

	return buildSeamRing(t, days, theta, nil)
}

// seamPsi returns the per-step overlap angle ψ of seamRing(days, theta).
func seamPsi(days int, theta float64) float64 {
	return (2*math.Pi - theta) / float64(days)
}

// buildSeamRing is seamRing with an optional per-day sign pattern applied to
// (EOF1, EOF2); flip[d] = {true, false} negates day d+1's EOF1.
func buildSeamRing(t testing.TB, days int, theta float64, flip [][2]bool) *eof.Series {
	t.Helper()

	series, err := eof.NewSeries(seamFrames(days, theta, flip), days)
	require.NoError(t, err)

	return series
}

// seamFrames returns the raw frames of the ring; usable outside a test.
func seamFrames(days int, theta float64, flip [][2]bool) []eof.Frame {
	h := 2 * math.Pi / float64(days)
	tp := math.Tan(seamPsi(days, theta))
	c2 := tp / (math.Sin(h) + tp*(1-math.Cos(h)))
	if theta == 0 || c2 > 1 {
		c2 = 1
	}
	c, s := math.Sqrt(c2), math.Sqrt(1-c2)

	frames := make([]eof.Frame, days)
	for d := range frames {
		k := float64(d) * h
		x := []float64{c * math.Cos(k), c * math.Sin(k), s, 0}
		y := []float64{-c * math.Sin(k), c * math.Cos(k), 0, s}
		if flip != nil {
			if flip[d][0] {
				negate(x)
			}
			if flip[d][1] {
				negate(y)
			}
		}
		frames[d] = eof.Frame{
			EOF1:              x,
			EOF2:              y,
			Lat:               []float64{-5, 5},
			Lon:               []float64{0, 180},
			ExplainedVariance: [2]float64{0.12 + float64(d)*1e-3, 0.08},
			Eigenvalues:       [2]float64{30, 20},
			Observations:      1000 + d,
		}
	}

	return frames
}

func negate(v []float64) {
	for i := range v {
		v[i] = -v[i]
	}
}

// mustFrame returns day doy or fails the test.
func mustFrame(t testing.TB, s *eof.Series, doy int) eof.Frame {
	t.Helper()
	f, err := s.Day(doy)
	require.NoError(t, err)

	return f
}

// seriesDiff compares two series element-wise within an absolute margin.
func seriesDiff(a, b *eof.Series, margin float64) string {
	return cmp.Diff(a.Frames(), b.Frames(), cmpopts.EquateApprox(0, margin))
}

func norm(v []float64) float64 {
	var sum float64
	for _, x := range v {
		sum += x * x
	}

	return math.Sqrt(sum)
}
