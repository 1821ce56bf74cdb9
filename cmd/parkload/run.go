// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/ManuGH/parkload/internal/config"
	"github.com/ManuGH/parkload/internal/ingest"
	xglog "github.com/ManuGH/parkload/internal/log"
	"github.com/ManuGH/parkload/internal/occupancy"
	"github.com/ManuGH/parkload/internal/report"
	"github.com/ManuGH/parkload/internal/validate"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

const stdinName = "-"

func validateRun(cfg config.AppConfig, files []string) error {
	if err := config.Validate(cfg); err != nil {
		return err
	}

	v := validate.New()
	stdinUsed := false
	for _, f := range files {
		if f == stdinName {
			if stdinUsed {
				v.AddError("input", "standard input can only be read once", f)
			}
			stdinUsed = true
			continue
		}
		v.InputFile("input", f)
	}
	return v.Err()
}

// analysis is the outcome of one input.
type analysis struct {
	report  report.Report
	records int
}

// run analyses every input concurrently and writes the combined output in
// argument order.
func run(ctx context.Context, cfg config.AppConfig, files []string, stdin io.Reader, stdout io.Writer) error {
	results := make([]analysis, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)
	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			a, err := analyse(gctx, ingest.Format(cfg.InputFormat), path, stdin)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			results[i] = a
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	reports := make([]report.Report, len(results))
	for i, a := range results {
		reports[i] = a.report
	}

	render, err := report.RendererFor(report.Format(cfg.OutputFormat))
	if err != nil {
		return err
	}
	if err := report.Write(ctx, stdout, cfg.OutputPath, render, reports); err != nil {
		return err
	}
	if cfg.OutputPath != "" {
		xglog.FromContext(ctx).Info().
			Str(xglog.FieldEvent, "report.written").
			Str(xglog.FieldPath, cfg.OutputPath).
			Str(xglog.FieldFormat, cfg.OutputFormat).
			Msg("report written")
	}

	if cfg.MetricsTextfile != "" {
		m := report.NewMetrics()
		for _, a := range results {
			m.Observe(a.report, a.records)
		}
		if err := m.WriteTextfile(cfg.MetricsTextfile); err != nil {
			return err
		}
		xglog.FromContext(ctx).Info().
			Str(xglog.FieldEvent, "metrics.written").
			Str(xglog.FieldPath, cfg.MetricsTextfile).
			Msg("metrics textfile written")
	}
	return nil
}

func analyse(ctx context.Context, format ingest.Format, path string, stdin io.Reader) (analysis, error) {
	logger := xglog.WithContext(ctx, xglog.Derive(func(c *zerolog.Context) {
		*c = c.Str(xglog.FieldComponent, "analyse").Str(xglog.FieldSource, path)
	}))
	started := time.Now()

	format = format.Resolve(path)
	intervals, err := readInput(format, path, stdin)
	if err != nil {
		return analysis{}, err
	}
	logger.Debug().
		Str(xglog.FieldEvent, "input.loaded").
		Str(xglog.FieldFormat, format.String()).
		Int(xglog.FieldRecords, len(intervals)).
		Msg("input loaded")

	res, err := occupancy.Process(intervals)
	if err != nil {
		var invalid *occupancy.InvalidIntervalError
		if errors.As(err, &invalid) {
			logger.Warn().
				Str(xglog.FieldEvent, "input.invalid_interval").
				Int("index", invalid.Index).
				Str("arrival", format.Timestamp(invalid.Interval.Arrival)).
				Str("departure", format.Timestamp(invalid.Interval.Departure)).
				Msg("record departs before it arrives")
		}
		return analysis{}, err
	}

	logger.Info().
		Str(xglog.FieldEvent, "sweep.completed").
		Int(xglog.FieldRecords, len(intervals)).
		Int(xglog.FieldSkipped, res.Skipped).
		Int(xglog.FieldMaxLoad, res.MaxLoad).
		Int(xglog.FieldBusiest, len(res.Busiest)).
		Int(xglog.FieldSamples, len(res.Trace)).
		Int64(xglog.FieldDurationMS, time.Since(started).Milliseconds()).
		Msg("occupancy computed")

	return analysis{
		report: report.Report{
			Source: path,
			Result: res,
			Clock:  format.Timestamp,
		},
		records: len(intervals),
	}, nil
}

func readInput(format ingest.Format, path string, stdin io.Reader) ([]occupancy.Interval, error) {
	if path == stdinName {
		return ingest.Read(format, stdin)
	}

	// #nosec G304 -- input paths are provided by the operator via CLI
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer func() { _ = f.Close() }()

	return ingest.Read(format, f)
}
