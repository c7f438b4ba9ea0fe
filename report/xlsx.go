// SPDX-License-Identifier: MIT

package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// SheetName is the worksheet WriteXLSX writes to.
const SheetName = "rotation"

var header = []any{
	"doy", "observations", "explained_variance_1", "explained_variance_2",
	"angle_eof1_rad", "angle_eof2_rad", "step_eof1_rad",
}

// WriteXLSX writes rows to the SheetName sheet of a workbook at path, one row
// per day under a header row. A non-nil mean adds the MeanEOF1Sheet and
// MeanEOF2Sheet map sheets.
func WriteXLSX(path string, rows []Row, mean *MeanMap) error {
	if len(rows) == 0 {
		return ErrNoRows
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("report: xlsx: %w", err)
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return fmt.Errorf("report: xlsx: header: %w", err)
	}
	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("report: xlsx: %w", err)
		}
		values := []any{
			r.Day, r.Observations, r.ExplainedVariance[0], r.ExplainedVariance[1],
			r.AngleEOF1, r.AngleEOF2, r.Step,
		}
		if err := f.SetSheetRow(SheetName, cell, &values); err != nil {
			return fmt.Errorf("report: xlsx: day %d: %w", r.Day, err)
		}
	}
	if err := f.SetPanes(SheetName, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return fmt.Errorf("report: xlsx: %w", err)
	}
	if mean != nil {
		if err := writeMeanSheets(f, mean); err != nil {
			return fmt.Errorf("report: xlsx: mean maps: %w", err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("report: xlsx: save %s: %w", path, err)
	}

	return nil
}
