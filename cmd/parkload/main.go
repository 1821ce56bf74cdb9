// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

// parkload reports the busiest periods of a parking lot and its occupancy
// over time.
//
// Usage:
//
//	parkload [flags] FILE...
//
// FILE is either whitespace separated "HH:MM HH:MM" arrival/departure pairs or
// a JSON array of {"Id", "ArrivalTime", "LeaveTime"} records. "-" reads text
// from standard input.
//
// Exit codes:
//   - 0: Success
//   - 1: Usage or configuration error
//   - 2: Input or processing error
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/ManuGH/parkload/internal/config"
	xglog "github.com/ManuGH/parkload/internal/log"
	"github.com/ManuGH/parkload/internal/validate"
	"github.com/ManuGH/parkload/internal/version"
	"github.com/google/uuid"
)

const (
	exitOK      = 0
	exitUsage   = 1
	exitProcess = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := realMain(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// overrides holds command line values that take precedence over ENV and file.
type overrides struct {
	inputFormat     string
	outputFormat    string
	outputPath      string
	metricsTextfile string
	workers         int
	logLevel        string
}

func realMain(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("parkload", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage:")
		fmt.Fprintln(stderr, "  parkload [flags] FILE...")
		fmt.Fprintln(stderr, "")
		fs.PrintDefaults()
	}

	var (
		o           overrides
		configPath  string
		showVersion bool
	)
	fs.StringVar(&configPath, "config", "", "path to config file (YAML)")
	fs.StringVar(&o.inputFormat, "input-format", "", "input format: auto, text or json")
	fs.StringVar(&o.outputFormat, "format", "", "output format: text, json or series")
	fs.StringVar(&o.outputPath, "o", "", "write the report to this file instead of stdout")
	fs.StringVar(&o.metricsTextfile, "metrics-textfile", "", "write Prometheus metrics to this textfile")
	fs.IntVar(&o.workers, "workers", 0, "number of input files processed concurrently")
	fs.StringVar(&o.logLevel, "log-level", "", "log level ("+strings.Join(validate.LogLevels, ", ")+")")
	fs.BoolVar(&showVersion, "version", false, "print version and exit")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	if showVersion {
		fmt.Fprintln(stdout, version.String())
		return exitOK
	}

	// Configure logger with safe defaults until config is loaded
	xglog.Configure(xglog.Config{
		Level:   "info",
		Output:  stderr,
		Service: config.DefaultLogService,
		Version: version.Version,
	})
	logger := xglog.WithComponent("cli")

	files := fs.Args()
	if len(files) == 0 {
		fmt.Fprintln(stderr, "Error: at least one input FILE is required")
		fs.Usage()
		return exitUsage
	}

	loader := config.NewLoader(configPath, version.Version)
	cfg, err := loader.Load()
	if err != nil {
		logger.Error().
			Err(err).
			Str(xglog.FieldEvent, "config.load_failed").
			Str(xglog.FieldConfigPath, configPath).
			Msg("failed to load configuration")
		return exitUsage
	}
	applyOverrides(fs, &cfg, o)

	if err := validateRun(cfg, files); err != nil {
		logger.Error().
			Err(err).
			Str(xglog.FieldEvent, "config.invalid").
			Msg("invalid configuration")
		return exitUsage
	}

	// Re-configure logger with loaded configuration
	xglog.Configure(xglog.Config{
		Level:   cfg.LogLevel,
		Output:  stderr,
		Service: cfg.LogService,
		Version: cfg.Version,
	})

	runID := uuid.NewString()
	ctx = xglog.ContextWithRunID(ctx, runID)
	logger = xglog.WithComponentFromContext(ctx, "cli")
	ctx = logger.WithContext(ctx)

	logger.Info().
		Str(xglog.FieldEvent, "config.loaded").
		Str(xglog.FieldConfigPath, configPath).
		Str(xglog.FieldFormat, cfg.OutputFormat).
		Int(xglog.FieldWorkerLimit, cfg.Workers).
		Msg("configuration loaded")

	if err := run(ctx, cfg, files, stdin, stdout); err != nil {
		logger.Error().
			Err(err).
			Str(xglog.FieldEvent, "run.failed").
			Msg("processing failed")
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitProcess
	}
	return exitOK
}

// applyOverrides copies explicitly set flags over the loaded configuration.
func applyOverrides(fs *flag.FlagSet, cfg *config.AppConfig, o overrides) {
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "input-format":
			cfg.InputFormat = o.inputFormat
		case "format":
			cfg.OutputFormat = o.outputFormat
		case "o":
			cfg.OutputPath = o.outputPath
		case "metrics-textfile":
			cfg.MetricsTextfile = o.metricsTextfile
		case "workers":
			cfg.Workers = o.workers
		case "log-level":
			cfg.LogLevel = o.logLevel
		}
	})
}
