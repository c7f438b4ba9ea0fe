// SPDX-License-Identifier: MIT

package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/sweidy/eof-rotation/eof"
)

// Mean-map worksheet names.
const (
	MeanEOF1Sheet = "mean_eof1"
	MeanEOF2Sheet = "mean_eof2"
)

// MeanMap is the seasonal mean of the EOF maps over days [From, To).
// Maps are indexed [lat][lon].
type MeanMap struct {
	From, To int
	Lat, Lon []float64
	EOF1     [][]float64
	EOF2     [][]float64
}

// MeanMaps averages the EOF1 and EOF2 maps of s over [from, to). The axes are
// taken from day from.
func MeanMaps(s *eof.Series, from, to int) (*MeanMap, error) {
	m1, m2, err := eof.MeanMaps(s, from, to)
	if err != nil {
		return nil, fmt.Errorf("report: mean maps: %w", err)
	}
	first, err := s.Day(from)
	if err != nil {
		return nil, fmt.Errorf("report: mean maps: %w", err)
	}

	return &MeanMap{From: from, To: to, Lat: first.Lat, Lon: first.Lon, EOF1: m1, EOF2: m2}, nil
}

// writeMeanSheets adds one sheet per mean map: longitudes across row 1,
// latitudes down column A.
func writeMeanSheets(f *excelize.File, mm *MeanMap) error {
	for _, sheet := range []struct {
		name string
		grid [][]float64
	}{{MeanEOF1Sheet, mm.EOF1}, {MeanEOF2Sheet, mm.EOF2}} {
		if _, err := f.NewSheet(sheet.name); err != nil {
			return err
		}
		top := []any{fmt.Sprintf("doy %d-%d", mm.From, mm.To-1)}
		for _, lon := range mm.Lon {
			top = append(top, lon)
		}
		if err := f.SetSheetRow(sheet.name, "A1", &top); err != nil {
			return err
		}
		for i, lat := range mm.Lat {
			row := []any{lat}
			for _, v := range sheet.grid[i] {
				row = append(row, v)
			}
			cell, err := excelize.CoordinatesToCellName(1, i+2)
			if err != nil {
				return err
			}
			if err := f.SetSheetRow(sheet.name, cell, &row); err != nil {
				return err
			}
		}
	}

	return nil
}
