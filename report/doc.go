// SPDX-License-Identifier: MIT

// Package report tabulates what the rotation did to every day of a series
// and renders the table as an XLSX workbook (excelize) or a line plot
// (gonum/plot).
package report
