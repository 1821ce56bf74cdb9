// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package log

// Canonical field name constants for structured logging.
const (
	// Identity fields
	FieldService = "service"
	FieldVersion = "version"
	FieldRunID   = "run_id"

	// Process fields
	FieldEvent     = "event"
	FieldComponent = "component"

	// Input / output fields
	FieldSource      = "source"
	FieldFormat      = "format"
	FieldPath        = "path"
	FieldConfigPath  = "config_path"
	FieldRecords     = "records"
	FieldSkipped     = "skipped"
	FieldMaxLoad     = "max_load"
	FieldBusiest     = "busiest_intervals"
	FieldSamples     = "samples"
	FieldDurationMS  = "duration_ms"
	FieldWorkerLimit = "workers"
)
