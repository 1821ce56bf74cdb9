// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

// Package ingest turns parking records from text or JSON input into
// occupancy intervals, and renders timestamps back in the input's notation.
package ingest

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/ManuGH/parkload/internal/occupancy"
)

// Format identifies an input notation.
type Format string

const (
	// FormatAuto picks the format from the file extension.
	FormatAuto Format = "auto"
	// FormatText is whitespace separated HH:MM pairs, in minutes of day.
	FormatText Format = "text"
	// FormatJSON is an array of records with ISO 8601 times, in minutes since epoch.
	FormatJSON Format = "json"
)

// String implements fmt.Stringer.
func (f Format) String() string {
	return string(f)
}

// IsValid reports whether f is one of the defined formats.
func (f Format) IsValid() bool {
	switch f {
	case FormatAuto, FormatText, FormatJSON:
		return true
	default:
		return false
	}
}

// Resolve replaces FormatAuto with the format implied by path.
func (f Format) Resolve(path string) Format {
	if f != FormatAuto && f != "" {
		return f
	}
	return DetectFormat(path)
}

// Timestamp renders ts in the notation of f.
func (f Format) Timestamp(ts occupancy.Timestamp) string {
	if f == FormatJSON {
		return FormatISO(ts)
	}
	return FormatClock(ts)
}

// DetectFormat returns FormatJSON for .json files and FormatText otherwise.
func DetectFormat(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return FormatJSON
	}
	return FormatText
}

// Read parses r according to f, which must be resolved.
func Read(f Format, r io.Reader) ([]occupancy.Interval, error) {
	switch f {
	case FormatText:
		return ReadText(r)
	case FormatJSON:
		return ReadJSON(r)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
}
