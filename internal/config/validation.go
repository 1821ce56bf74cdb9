// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package config

import (
	"github.com/ManuGH/parkload/internal/ingest"
	"github.com/ManuGH/parkload/internal/report"
	"github.com/ManuGH/parkload/internal/validate"
)

var inputFormats = []string{
	string(ingest.FormatAuto),
	string(ingest.FormatText),
	string(ingest.FormatJSON),
}

// Validate validates an AppConfig using the centralized validation package
func Validate(cfg AppConfig) error {
	v := validate.New()

	v.OneOf("input.format", cfg.InputFormat, inputFormats)
	v.OneOf("output.format", cfg.OutputFormat, report.Formats)
	v.OutputFile("output.path", cfg.OutputPath)
	v.OutputFile("metrics.textfile", cfg.MetricsTextfile)
	v.Range("workers", cfg.Workers, 1, MaxWorkers)
	v.LogLevel("log.level", cfg.LogLevel)
	v.NotEmpty("log.service", cfg.LogService)

	return v.Err()
}
