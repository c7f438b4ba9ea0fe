// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"context"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"gonum.org/v1/gonum/floats"

	"github.com/sweidy/eof-rotation/archive"
	"github.com/sweidy/eof-rotation/decompose"
	"github.com/sweidy/eof-rotation/eof"
	"github.com/sweidy/eof-rotation/ingest"
	"github.com/sweidy/eof-rotation/report"
	"github.com/sweidy/eof-rotation/rotation"
)

// ring returns a days-long series whose pairs span slowly tilting planes in
// R⁴, leaving a seam between day D and day 1.
func ring(t *testing.T, days int) *eof.Series {
	t.Helper()
	const c, s = 0.9, 0.4358898943540674 // c² + s² = 1
	frames := make([]eof.Frame, days)
	for d := range frames {
		k := 2 * math.Pi * float64(d) / float64(days)
		frames[d] = eof.Frame{
			EOF1:         []float64{c * math.Cos(k), c * math.Sin(k), s, 0},
			EOF2:         []float64{-c * math.Sin(k), c * math.Cos(k), 0, s},
			Lat:          []float64{-5, 5},
			Lon:          []float64{0, 180},
			Observations: 120,
		}
	}
	series, err := eof.NewSeries(frames, days)
	require.NoError(t, err)

	return series
}

type fixture struct {
	dir, db, cfg string
	rawID        string
}

func setup(t *testing.T, days int, extra string) fixture {
	t.Helper()
	dir := t.TempDir()
	f := fixture{dir: dir, db: filepath.Join(dir, "runs.db"), cfg: filepath.Join(dir, "eofrot.yaml")}

	st, err := archive.Open(f.db)
	require.NoError(t, err)
	f.rawID, err = st.Save(context.Background(), "raw", ring(t, days))
	require.NoError(t, err)
	require.NoError(t, st.Close())

	body := fmt.Sprintf("archive:\n  path: %s\ncalendar:\n  no_leap: true\nlog:\n  level: debug\n%s", f.db, extra)
	require.NoError(t, os.WriteFile(f.cfg, []byte(body), 0o600))

	return f
}

func TestRun_RotatesLatestRun(t *testing.T) {
	xlsx := filepath.Join(t.TempDir(), "rotation.xlsx")
	plot := filepath.Join(t.TempDir(), "angles.png")
	f := setup(t, eof.DaysNoLeap, fmt.Sprintf("report:\n  xlsx: %s\n  plot: %s\n", xlsx, plot))

	var logs bytes.Buffer
	require.NoError(t, run(context.Background(), []string{"-config", f.cfg}, &logs))
	assert.Contains(t, logs.String(), `msg="rotation stored"`)
	assert.Contains(t, logs.String(), "input_run="+f.rawID)
	assert.Contains(t, logs.String(), `msg="rotating frames"`, "pipeline debug output reaches the configured logger")

	st, err := archive.Open(f.db)
	require.NoError(t, err)
	defer st.Close()
	id, err := st.Latest(context.Background(), "rotated")
	require.NoError(t, err)
	out, err := st.Load(context.Background(), id)
	require.NoError(t, err)
	require.Equal(t, eof.DaysNoLeap, out.Days())

	raw, err := st.Load(context.Background(), f.rawID)
	require.NoError(t, err)
	delta, err := rotation.EstimateDelta(raw)
	require.NoError(t, err)
	res, err := rotation.SeamResidual(out, delta)
	require.NoError(t, err)
	assert.Less(t, res, 1e-6)

	for _, p := range []string{xlsx, plot} {
		info, err := os.Stat(p)
		require.NoError(t, err)
		assert.Positive(t, info.Size())
	}
}

func TestRun_ExplicitRunAndReference(t *testing.T) {
	f := setup(t, eof.DaysNoLeap, "")
	ref := fmt.Sprintf("sign:\n  reference_run: %s\n", f.rawID)
	cfg, err := os.ReadFile(f.cfg)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(f.cfg, append(cfg, ref...), 0o600))

	var logs bytes.Buffer
	err = run(context.Background(), []string{"-config", f.cfg, "-run", f.rawID, "-out-label", "closed"}, &logs)
	require.NoError(t, err)

	st, err := archive.Open(f.db)
	require.NoError(t, err)
	defer st.Close()
	_, err = st.Latest(context.Background(), "closed")
	assert.NoError(t, err)
}

func TestRun_Errors(t *testing.T) {
	var logs bytes.Buffer

	// 366-day calendar against a 365-day run
	f := setup(t, eof.DaysNoLeap, "")
	t.Setenv("EOFROT_CALENDAR_NO_LEAP", "false")
	err := run(context.Background(), []string{"-config", f.cfg}, &logs)
	assert.ErrorIs(t, err, eof.ErrSeriesLength)

	err = run(context.Background(), []string{"-config", f.cfg, "-label", "nothing"}, &logs)
	assert.ErrorIs(t, err, archive.ErrRunNotFound)

	err = run(context.Background(), []string{"-bogus"}, &logs)
	assert.Error(t, err)

	err = run(context.Background(), []string{"-config", f.cfg, "-run", f.rawID, "-samples", "obs.xlsx"}, &logs)
	assert.ErrorContains(t, err, "mutually exclusive")

	t.Setenv("EOFROT_CALENDAR_NO_LEAP", "true")
	err = run(context.Background(), []string{"-config", f.cfg, "-samples", filepath.Join(f.dir, "missing.xlsx")}, &logs)
	assert.Error(t, err)
}

// writeSamples writes an observation workbook whose day d window has the
// leading patterns of ring(t, days) day d.
func writeSamples(t *testing.T, path string, days int) {
	t.Helper()
	frames := ring(t, days).Frames()
	windows := make([]decompose.Window, days)
	for d, f := range frames {
		rows := make([][]float64, 8)
		for i := range rows {
			w := 2 * math.Pi * float64(i) / float64(len(rows))
			row := make([]float64, len(f.EOF1))
			floats.AddScaled(row, 3*math.Cos(w), f.EOF1)
			floats.AddScaled(row, math.Sin(w), f.EOF2)
			rows[i] = row
		}
		windows[d] = decompose.Window{Day: d + 1, Samples: rows}
	}
	grid := decompose.Grid{Lat: frames[0].Lat, Lon: frames[0].Lon}
	require.NoError(t, ingest.WriteXLSX(path, grid, windows))
}

func TestRun_DecomposesSamples(t *testing.T) {
	xlsx := filepath.Join(t.TempDir(), "rotation.xlsx")
	f := setup(t, eof.DaysNoLeap, fmt.Sprintf(
		"decompose:\n  backend: jacobi\n  workers: 2\nreport:\n  xlsx: %s\n  mean_from: 1\n  mean_to: 32\n", xlsx))
	obs := filepath.Join(f.dir, "obs.xlsx")
	writeSamples(t, obs, eof.DaysNoLeap)

	var logs bytes.Buffer
	err := run(context.Background(), []string{"-config", f.cfg, "-samples", obs, "-label", "decomposed"}, &logs)
	require.NoError(t, err)
	assert.Contains(t, logs.String(), `msg="decomposition stored"`)
	assert.Contains(t, logs.String(), "backend=jacobi")
	assert.Contains(t, logs.String(), `msg="decomposed day"`)

	st, err := archive.Open(f.db)
	require.NoError(t, err)
	defer st.Close()
	ctx := context.Background()

	rawID, err := st.Latest(ctx, "decomposed")
	require.NoError(t, err)
	assert.Contains(t, logs.String(), "input_run="+rawID)
	raw, err := st.Load(ctx, rawID)
	require.NoError(t, err)
	d1, err := raw.Day(1)
	require.NoError(t, err)
	assert.Equal(t, 8, d1.Observations)
	assert.InDelta(t, 0.9, d1.ExplainedVariance[0], 1e-9)

	outID, err := st.Latest(ctx, "rotated")
	require.NoError(t, err)
	out, err := st.Load(ctx, outID)
	require.NoError(t, err)
	delta, err := rotation.EstimateDelta(raw)
	require.NoError(t, err)
	res, err := rotation.SeamResidual(out, delta)
	require.NoError(t, err)
	assert.Less(t, res, 1e-6)

	wb, err := excelize.OpenFile(xlsx)
	require.NoError(t, err)
	defer wb.Close()
	assert.Equal(t, []string{report.SheetName, report.MeanEOF1Sheet, report.MeanEOF2Sheet}, wb.GetSheetList())
}
