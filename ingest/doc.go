// SPDX-License-Identifier: MIT

// Package ingest reads and writes observation workbooks: the grid axes and
// the per-day sample windows that decompose.Compute turns into EOF pairs.
//
// Workbook layout:
//
//	sheet "grid":    row 1 = "lat", lat values...; row 2 = "lon", lon values...
//	sheet "samples": header row, then one row per time step: doy, then
//	                 len(lat)·len(lon) values flattened with latitude as the row
//
// Rows of the same day-of-year form one window, in sheet order.
package ingest
