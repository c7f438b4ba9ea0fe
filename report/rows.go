// SPDX-License-Identifier: MIT

package report

import (
	"errors"
	"fmt"

	"github.com/sweidy/eof-rotation/eof"
	"github.com/sweidy/eof-rotation/rotation"
)

// ErrNoRows is returned when asked to render an empty table.
var ErrNoRows = errors.New("report: no rows")

// Row describes one day-of-year. Angles are in radians.
type Row struct {
	Day               int
	Observations      int
	ExplainedVariance [2]float64

	// AngleEOF1 and AngleEOF2 measure how far processing moved the day's
	// vectors (before vs after).
	AngleEOF1 float64
	AngleEOF2 float64

	// Step is the EOF1 angle between this day and the previous one in the
	// processed series; day 1 is compared with day D, so it shows the seam.
	Step float64
}

// Rows compares before and after day by day. Provenance columns come from
// after.
//
// Errors: eof.ErrNilSeries, eof.ErrSeriesLength (different cycle lengths),
// angle errors from rotation.FrameAngles.
func Rows(before, after *eof.Series) ([]Row, error) {
	if before == nil || after == nil {
		return nil, fmt.Errorf("report: rows: %w", eof.ErrNilSeries)
	}
	if before.Days() != after.Days() {
		return nil, fmt.Errorf("report: rows: %d vs %d days: %w", before.Days(), after.Days(), eof.ErrSeriesLength)
	}

	rows := make([]Row, after.Days())
	for i := range rows {
		doy := i + 1
		b, err := before.Day(doy)
		if err != nil {
			return nil, fmt.Errorf("report: rows: %w", err)
		}
		a, err := after.Day(doy)
		if err != nil {
			return nil, fmt.Errorf("report: rows: %w", err)
		}
		a1, a2, err := rotation.FrameAngles(b, a)
		if err != nil {
			return nil, fmt.Errorf("report: rows: %w", eof.DayError("FrameAngles", doy, err))
		}
		prev, _ := after.Vectors(after.Prev(doy))
		cur, _ := after.Vectors(doy)
		step, err := rotation.Angle(prev, cur)
		if err != nil {
			return nil, fmt.Errorf("report: rows: %w", eof.DayError("Angle", doy, err))
		}
		rows[i] = Row{
			Day:               doy,
			Observations:      a.Observations,
			ExplainedVariance: a.ExplainedVariance,
			AngleEOF1:         a1,
			AngleEOF2:         a2,
			Step:              step,
		}
	}

	return rows, nil
}
