// SPDX-License-Identifier: MIT

package report

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// PlotAngles draws the per-day angle columns against day-of-year and saves
// the figure to path; the format follows the extension (.png, .svg, .pdf, ...).
func PlotAngles(path string, rows []Row) error {
	if len(rows) == 0 {
		return ErrNoRows
	}

	p := plot.New()
	p.Title.Text = "EOF rotation by day-of-year"
	p.X.Label.Text = "Day of year"
	p.Y.Label.Text = "Angle (rad)"
	p.Add(plotter.NewGrid())

	series := []struct {
		name string
		y    func(Row) float64
	}{
		{"EOF1 before/after", func(r Row) float64 { return r.AngleEOF1 }},
		{"EOF2 before/after", func(r Row) float64 { return r.AngleEOF2 }},
		{"EOF1 day-to-day", func(r Row) float64 { return r.Step }},
	}
	for i, s := range series {
		pts := make(plotter.XYs, len(rows))
		for j, r := range rows {
			pts[j] = plotter.XY{X: float64(r.Day), Y: s.y(r)}
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return fmt.Errorf("report: plot %s: %w", s.name, err)
		}
		line.Color = plotutil.Color(i)
		line.Width = vg.Points(1)
		p.Add(line)
		p.Legend.Add(s.name, line)
	}
	p.Legend.Top = true

	if err := p.Save(14*vg.Inch, 6*vg.Inch, path); err != nil {
		return fmt.Errorf("report: plot: save %s: %w", path, err)
	}

	return nil
}
