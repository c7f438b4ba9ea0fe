// SPDX-License-Identifier: MIT

package report_test

import (
	"math"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/sweidy/eof-rotation/eof"
	"github.com/sweidy/eof-rotation/report"
)

const days = 4

// turned returns the series whose day d pair is the (e1, e2) frame turned by
// 0.1·d·scale in the e1–e2 plane.
func turned(t *testing.T, scale float64) *eof.Series {
	t.Helper()
	frames := make([]eof.Frame, days)
	for i := range frames {
		a := 0.1 * float64(i+1) * scale
		frames[i] = eof.Frame{
			EOF1:              []float64{math.Cos(a), math.Sin(a), 0},
			EOF2:              []float64{-math.Sin(a), math.Cos(a), 0},
			ExplainedVariance: [2]float64{0.25, 0.125},
			Observations:      60 + i,
		}
	}
	s, err := eof.NewSeries(frames, days)
	require.NoError(t, err)

	return s
}

func TestRows(t *testing.T) {
	rows, err := report.Rows(turned(t, 0), turned(t, 1))
	require.NoError(t, err)
	require.Len(t, rows, days)

	for i, r := range rows {
		assert.Equal(t, i+1, r.Day)
		assert.Equal(t, 60+i, r.Observations)
		assert.Equal(t, [2]float64{0.25, 0.125}, r.ExplainedVariance)
		assert.InDelta(t, 0.1*float64(i+1), r.AngleEOF1, 1e-7)
		assert.InDelta(t, 0.1*float64(i+1), r.AngleEOF2, 1e-7)
	}
	assert.InDelta(t, 0.3, rows[0].Step, 1e-7, "day 1 is compared with day D")
	for _, r := range rows[1:] {
		assert.InDelta(t, 0.1, r.Step, 1e-7)
	}
}

func TestRows_Errors(t *testing.T) {
	_, err := report.Rows(nil, turned(t, 1))
	assert.ErrorIs(t, err, eof.ErrNilSeries)

	short, err := eof.NewSeries(turned(t, 1).Frames()[:2], 2)
	require.NoError(t, err)
	_, err = report.Rows(turned(t, 0), short)
	assert.ErrorIs(t, err, eof.ErrSeriesLength)
}

func TestWriteXLSX(t *testing.T) {
	rows, err := report.Rows(turned(t, 0), turned(t, 1))
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "rotation.xlsx")
	require.NoError(t, report.WriteXLSX(path, rows, nil))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	got, err := f.GetRows(report.SheetName)
	require.NoError(t, err)
	require.Len(t, got, days+1)
	assert.Equal(t, []string{
		"doy", "observations", "explained_variance_1", "explained_variance_2",
		"angle_eof1_rad", "angle_eof2_rad", "step_eof1_rad",
	}, got[0])
	for i, line := range got[1:] {
		require.Len(t, line, 7)
		assert.Equal(t, strconv.Itoa(i+1), line[0])
		assert.Equal(t, strconv.Itoa(60+i), line[1])
		assert.Equal(t, "0.25", line[2])
		a1, err := strconv.ParseFloat(line[4], 64)
		require.NoError(t, err)
		assert.InDelta(t, rows[i].AngleEOF1, a1, 1e-9)
	}

	assert.ErrorIs(t, report.WriteXLSX(path, nil, nil), report.ErrNoRows)

	sheets := f.GetSheetList()
	assert.Equal(t, []string{report.SheetName}, sheets, "no mean sheets without a mean map")
}

// gridded returns turned(t, 1) on a 1×3 grid.
func gridded(t *testing.T) *eof.Series {
	t.Helper()
	frames := turned(t, 1).Frames()
	for i := range frames {
		frames[i].Lat = []float64{0}
		frames[i].Lon = []float64{10, 20, 30}
	}
	s, err := eof.NewSeries(frames, days)
	require.NoError(t, err)

	return s
}

func TestMeanMaps(t *testing.T) {
	mm, err := report.MeanMaps(gridded(t), 1, 3)
	require.NoError(t, err)
	assert.Equal(t, 1, mm.From)
	assert.Equal(t, 3, mm.To)
	assert.Equal(t, []float64{0}, mm.Lat)
	assert.Equal(t, []float64{10, 20, 30}, mm.Lon)
	require.Len(t, mm.EOF1, 1)
	assert.InDeltaSlice(t, []float64{
		(math.Cos(0.1) + math.Cos(0.2)) / 2,
		(math.Sin(0.1) + math.Sin(0.2)) / 2,
		0,
	}, mm.EOF1[0], 1e-15)
	assert.InDeltaSlice(t, []float64{
		-(math.Sin(0.1) + math.Sin(0.2)) / 2,
		(math.Cos(0.1) + math.Cos(0.2)) / 2,
		0,
	}, mm.EOF2[0], 1e-15)

	_, err = report.MeanMaps(gridded(t), 3, 3)
	assert.ErrorIs(t, err, eof.ErrDayOutOfRange)
	_, err = report.MeanMaps(gridded(t), 1, days+2)
	assert.ErrorIs(t, err, eof.ErrDayOutOfRange)
	_, err = report.MeanMaps(turned(t, 1), 1, 2)
	assert.ErrorIs(t, err, eof.ErrGridShape, "frames without axes cannot be mapped")
}

func TestWriteXLSX_MeanSheets(t *testing.T) {
	s := gridded(t)
	rows, err := report.Rows(turned(t, 0), s)
	require.NoError(t, err)
	mm, err := report.MeanMaps(s, 2, 5)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "rotation.xlsx")
	require.NoError(t, report.WriteXLSX(path, rows, mm))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, []string{report.SheetName, report.MeanEOF1Sheet, report.MeanEOF2Sheet}, f.GetSheetList())

	got, err := f.GetRows(report.MeanEOF1Sheet)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, []string{"doy 2-4", "10", "20", "30"}, got[0])
	require.Len(t, got[1], 4)
	assert.Equal(t, "0", got[1][0])
	v, err := strconv.ParseFloat(got[1][1], 64)
	require.NoError(t, err)
	assert.InDelta(t, mm.EOF1[0][0], v, 1e-9)
}

func TestPlotAngles(t *testing.T) {
	rows, err := report.Rows(turned(t, 0), turned(t, 1))
	require.NoError(t, err)
	dir := t.TempDir()

	png := filepath.Join(dir, "angles.png")
	require.NoError(t, report.PlotAngles(png, rows))
	data, err := os.ReadFile(png)
	require.NoError(t, err)
	assert.Equal(t, []byte("\x89PNG"), data[:4])

	svg := filepath.Join(dir, "angles.svg")
	require.NoError(t, report.PlotAngles(svg, rows))
	data, err = os.ReadFile(svg)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<svg")

	assert.Error(t, report.PlotAngles(filepath.Join(dir, "angles.unknown"), rows))
	assert.ErrorIs(t, report.PlotAngles(png, nil), report.ErrNoRows)
}
