// SPDX-License-Identifier: MIT

package ingest

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/sweidy/eof-rotation/decompose"
)

// Sheet names of the observation workbook.
const (
	GridSheet    = "grid"
	SamplesSheet = "samples"
)

var (
	// ErrLayout signals a workbook that does not follow the package layout.
	ErrLayout = errors.New("ingest: unexpected workbook layout")

	// ErrCell signals a cell that does not hold a number.
	ErrCell = errors.New("ingest: cell is not a number")
)

// ReadXLSX loads the grid and the day windows from the workbook at path.
// Windows are returned in ascending day order.
//
// Errors: ErrLayout (missing sheet or axis row, row width not 1+M),
// ErrCell (unparsable number, with its cell name), file errors.
func ReadXLSX(path string) (decompose.Grid, []decompose.Window, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return decompose.Grid{}, nil, fmt.Errorf("ingest: open %s: %w", path, err)
	}
	defer f.Close()

	grid, err := readGrid(f)
	if err != nil {
		return decompose.Grid{}, nil, err
	}

	rows, err := f.GetRows(SamplesSheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return decompose.Grid{}, nil, fmt.Errorf("ingest: sheet %q: %w", SamplesSheet, ErrLayout)
	}
	m := grid.Size()
	byDay := make(map[int]*decompose.Window)
	for i, row := range rows {
		if i == 0 || len(row) == 0 {
			continue // header, blank line
		}
		if len(row) != m+1 {
			return decompose.Grid{}, nil, fmt.Errorf("ingest: %s row %d has %d cells, want %d: %w",
				SamplesSheet, i+1, len(row), m+1, ErrLayout)
		}
		values, err := parseRow(SamplesSheet, i+1, row)
		if err != nil {
			return decompose.Grid{}, nil, err
		}
		doy := int(values[0])
		if float64(doy) != values[0] {
			return decompose.Grid{}, nil, fmt.Errorf("ingest: %s row %d: day %q: %w", SamplesSheet, i+1, row[0], ErrCell)
		}
		w, ok := byDay[doy]
		if !ok {
			w = &decompose.Window{Day: doy}
			byDay[doy] = w
		}
		w.Samples = append(w.Samples, values[1:])
	}

	windows := make([]decompose.Window, 0, len(byDay))
	for _, w := range byDay {
		windows = append(windows, *w)
	}
	slices.SortFunc(windows, func(a, b decompose.Window) int { return a.Day - b.Day })

	return grid, windows, nil
}

func readGrid(f *excelize.File) (decompose.Grid, error) {
	rows, err := f.GetRows(GridSheet, excelize.Options{RawCellValue: true})
	if err != nil || len(rows) < 2 {
		return decompose.Grid{}, fmt.Errorf("ingest: sheet %q: %w", GridSheet, ErrLayout)
	}

	var axes [2][]float64
	for i, name := range []string{"lat", "lon"} {
		row := rows[i]
		if len(row) < 2 || !strings.EqualFold(strings.TrimSpace(row[0]), name) {
			return decompose.Grid{}, fmt.Errorf("ingest: %s row %d: want %q axis: %w", GridSheet, i+1, name, ErrLayout)
		}
		values, err := parseRow(GridSheet, i+1, row[1:])
		if err != nil {
			return decompose.Grid{}, err
		}
		axes[i] = values
	}

	return decompose.Grid{Lat: axes[0], Lon: axes[1]}, nil
}

func parseRow(sheet string, rowNum int, cells []string) ([]float64, error) {
	out := make([]float64, len(cells))
	for j, c := range cells {
		v, err := strconv.ParseFloat(strings.TrimSpace(c), 64)
		if err != nil {
			name, _ := excelize.CoordinatesToCellName(j+1, rowNum)
			return nil, fmt.Errorf("ingest: %s!%s %q: %w", sheet, name, c, ErrCell)
		}
		out[j] = v
	}

	return out, nil
}

// WriteXLSX writes grid and windows to path in the layout ReadXLSX expects.
func WriteXLSX(path string, grid decompose.Grid, windows []decompose.Window) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", GridSheet); err != nil {
		return fmt.Errorf("ingest: xlsx: %w", err)
	}
	for i, axis := range []struct {
		name   string
		values []float64
	}{{"lat", grid.Lat}, {"lon", grid.Lon}} {
		row := append([]any{axis.name}, toAny(axis.values)...)
		if err := f.SetSheetRow(GridSheet, fmt.Sprintf("A%d", i+1), &row); err != nil {
			return fmt.Errorf("ingest: xlsx: grid: %w", err)
		}
	}

	if _, err := f.NewSheet(SamplesSheet); err != nil {
		return fmt.Errorf("ingest: xlsx: %w", err)
	}
	header := []any{"doy"}
	for j := range grid.Size() {
		header = append(header, fmt.Sprintf("x%d", j+1))
	}
	if err := f.SetSheetRow(SamplesSheet, "A1", &header); err != nil {
		return fmt.Errorf("ingest: xlsx: header: %w", err)
	}
	r := 2
	for _, w := range windows {
		for _, sample := range w.Samples {
			row := append([]any{w.Day}, toAny(sample)...)
			if err := f.SetSheetRow(SamplesSheet, fmt.Sprintf("A%d", r), &row); err != nil {
				return fmt.Errorf("ingest: xlsx: day %d: %w", w.Day, err)
			}
			r++
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("ingest: xlsx: save %s: %w", path, err)
	}

	return nil
}

func toAny(v []float64) []any {
	out := make([]any, len(v))
	for i, x := range v {
		out[i] = x
	}

	return out
}
