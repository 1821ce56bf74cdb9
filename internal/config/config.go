// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

// Package config provides configuration management for parkload.
package config

// AppConfig is the effective configuration of one CLI run.
type AppConfig struct {
	Version string

	InputFormat     string
	OutputFormat    string
	OutputPath      string
	MetricsTextfile string
	Workers         int

	LogLevel   string
	LogService string
}

// FileConfig mirrors the YAML configuration file. Pointers distinguish an
// absent key from an explicit zero value.
type FileConfig struct {
	Input   InputConfig   `yaml:"input"`
	Output  OutputConfig  `yaml:"output"`
	Metrics MetricsConfig `yaml:"metrics"`
	Workers *int          `yaml:"workers"`
	Log     LogConfig     `yaml:"log"`
}

// InputConfig selects how input files are parsed.
type InputConfig struct {
	Format string `yaml:"format"`
}

// OutputConfig selects the renderer and destination.
type OutputConfig struct {
	Format string `yaml:"format"`
	Path   string `yaml:"path"`
}

// MetricsConfig controls the Prometheus textfile export.
type MetricsConfig struct {
	Textfile string `yaml:"textfile"`
}

// LogConfig controls structured logging.
type LogConfig struct {
	Level   string `yaml:"level"`
	Service string `yaml:"service"`
}

// Defaults.
const (
	DefaultInputFormat  = "auto"
	DefaultOutputFormat = "text"
	DefaultWorkers      = 4
	MaxWorkers          = 64
	DefaultLogLevel     = "info"
	DefaultLogService   = "parkload"
)

// Environment keys.
const (
	EnvInputFormat     = "PARKLOAD_INPUT_FORMAT"
	EnvOutputFormat    = "PARKLOAD_OUTPUT_FORMAT"
	EnvOutputPath      = "PARKLOAD_OUTPUT_PATH"
	EnvMetricsTextfile = "PARKLOAD_METRICS_TEXTFILE"
	EnvWorkers         = "PARKLOAD_WORKERS"
	EnvLogLevel        = "LOG_LEVEL"
	EnvLogService      = "LOG_SERVICE"
)
