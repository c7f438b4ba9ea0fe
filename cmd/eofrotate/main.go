// SPDX-License-Identifier: MIT

// Command eofrotate post-processes a day-of-year EOF series: it aligns signs,
// closes the year-boundary seam by a uniform per-day rotation, renormalizes,
// stores the result as a new run and optionally writes reports.
//
// The input series is either an archived run, or is decomposed from an
// observation workbook (-samples) with the configured backend and archived
// under -label before rotation.
//
// Usage:
//
//	eofrotate [-config eofrot.yaml] [-run <id> | -label raw | -samples obs.xlsx] [-out-label rotated]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/sweidy/eof-rotation/archive"
	"github.com/sweidy/eof-rotation/config"
	"github.com/sweidy/eof-rotation/decompose"
	"github.com/sweidy/eof-rotation/eof"
	"github.com/sweidy/eof-rotation/ingest"
	"github.com/sweidy/eof-rotation/report"
	"github.com/sweidy/eof-rotation/rotation"
	"github.com/sweidy/eof-rotation/signalign"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(os.Stderr, "eofrotate:", err)
		}
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stderr io.Writer) error {
	fs := flag.NewFlagSet("eofrotate", flag.ContinueOnError)
	fs.SetOutput(stderr)
	cfgPath := fs.String("config", "", "YAML configuration file (optional)")
	runID := fs.String("run", "", "archive run id to process (default: latest run with -label)")
	label := fs.String("label", "raw", "label of the input run when -run is empty, or of the decomposed run with -samples")
	samples := fs.String("samples", "", "observation workbook to decompose instead of loading a run")
	outLabel := fs.String("out-label", "rotated", "label of the stored result")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *runID != "" && *samples != "" {
		return errors.New("-run and -samples are mutually exclusive")
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		return err
	}
	logger := config.NewLogger(cfg.Log, stderr)

	store, err := archive.Open(cfg.Archive.Path)
	if err != nil {
		return err
	}
	defer store.Close()

	aligner := signalign.Consecutive{}
	if ref := cfg.Sign.ReferenceRun; ref != "" {
		refSeries, err := store.Load(ctx, ref)
		if err != nil {
			return fmt.Errorf("reference run: %w", err)
		}
		day1, err := refSeries.Day(1)
		if err != nil {
			return fmt.Errorf("reference run: %w", err)
		}
		aligner.Reference = &day1
	}

	days := eof.DaysInCycle(cfg.Calendar.NoLeap)
	p, err := rotation.NewPipeline(days, aligner, rotation.WithLogger(logger))
	if err != nil {
		return err
	}

	var (
		id  string
		in  *eof.Series
		out *rotation.Outcome
	)
	if *samples != "" {
		in, out, err = decomposeSamples(ctx, cfg.Decompose, *samples, p, logger)
		if err != nil {
			return err
		}
		if id, err = store.Save(ctx, *label, in); err != nil {
			return err
		}
		logger.Info("decomposition stored",
			slog.String("run", id),
			slog.String("backend", cfg.Decompose.Backend),
			slog.String("samples", *samples))
	} else {
		if id = *runID; id == "" {
			if id, err = store.Latest(ctx, *label); err != nil {
				return err
			}
		}
		if in, err = store.Load(ctx, id); err != nil {
			return err
		}
		if out, err = p.Run(in); err != nil {
			return fmt.Errorf("run %s: %w", id, err)
		}
	}

	outID, err := store.Save(ctx, *outLabel, out.Series)
	if err != nil {
		return err
	}
	logger.Info("rotation stored",
		slog.String("input_run", id),
		slog.String("output_run", outID),
		slog.Int("days", days),
		slog.Float64("discontinuity", out.Discontinuity),
		slog.Float64("delta", out.Delta),
		slog.Float64("seam_residual", out.SeamResidual))

	return writeReports(cfg.Report, in, out.Series, logger)
}

// decomposeSamples reads the observation workbook and runs decomposition and
// rotation with the configured backend.
func decomposeSamples(
	ctx context.Context,
	c config.DecomposeConfig,
	path string,
	p *rotation.Pipeline,
	logger *slog.Logger,
) (*eof.Series, *rotation.Outcome, error) {
	backend, err := decompose.NewBackend(c.Backend)
	if err != nil {
		return nil, nil, err
	}
	grid, windows, err := ingest.ReadXLSX(path)
	if err != nil {
		return nil, nil, err
	}
	opts := []decompose.Option{decompose.WithLogger(logger)}
	if c.Workers > 0 {
		opts = append(opts, decompose.WithWorkers(c.Workers))
	}

	return decompose.ComputeRotated(ctx, grid, windows, backend, p, opts...)
}

func writeReports(c config.ReportConfig, before, after *eof.Series, logger *slog.Logger) error {
	if c.XLSX == "" && c.Plot == "" {
		return nil
	}
	rows, err := report.Rows(before, after)
	if err != nil {
		return err
	}
	if c.XLSX != "" {
		var mean *report.MeanMap
		if c.MeanFrom > 0 {
			if mean, err = report.MeanMaps(after, c.MeanFrom, c.MeanTo); err != nil {
				return err
			}
		}
		if err := report.WriteXLSX(c.XLSX, rows, mean); err != nil {
			return err
		}
		logger.Info("report written", slog.String("path", c.XLSX))
	}
	if c.Plot != "" {
		if err := report.PlotAngles(c.Plot, rows); err != nil {
			return err
		}
		logger.Info("plot written", slog.String("path", c.Plot))
	}

	return nil
}
