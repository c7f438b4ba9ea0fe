// SPDX-License-Identifier: MIT

// Package eofrotation makes a day-of-year series of empirical orthogonal
// function (EOF) pairs continuous from day to day and closed across the year
// boundary.
//
// EOFs computed independently for each day-of-year jitter between
// neighbouring days and do not join up from day D back to day 1. The
// rotation stage measures that seam once, by carrying day 1's pair around the
// whole ring, and removes it with a small uniform rotation per day.
//
// Layout:
//
//	eof/          Frame and Series data model, calendar helpers, validation
//	rotation/     angle utility, seam estimate, rotation, normalization, Pipeline
//	signalign/    sign-alignment steps plugged into the Pipeline
//	decompose/    per-day covariance and leading eigenpairs (gonum or Jacobi)
//	ingest/       observation workbooks (grid + per-day sample windows)
//	archive/      SQLite run archive
//	report/       per-day angle tables as XLSX and plots
//	config/       YAML + environment configuration and logger setup
//	cmd/eofrotate command-line driver
//
// Quick start:
//
//	p, _ := rotation.NewPipeline(eof.DaysInCycle(false), signalign.Consecutive{})
//	closed, err := p.PostProcess(series)
package eofrotation
