// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

// Package report renders occupancy results as console text, JSON documents
// or chart series.
package report

import (
	"fmt"
	"io"

	"github.com/ManuGH/parkload/internal/occupancy"
)

// Report is the outcome of one input source.
type Report struct {
	Source string
	Result occupancy.Result
	// Clock renders timestamps in the notation of the source.
	Clock func(occupancy.Timestamp) string
}

func (r Report) clock(ts occupancy.Timestamp) string {
	if r.Clock == nil {
		return fmt.Sprintf("%d", ts)
	}
	return r.Clock(ts)
}

// Format identifies an output renderer.
type Format string

const (
	FormatText   Format = "text"
	FormatJSON   Format = "json"
	FormatSeries Format = "series"
)

// Formats lists the supported output formats.
var Formats = []string{string(FormatText), string(FormatJSON), string(FormatSeries)}

// Renderer writes reports to w.
type Renderer func(w io.Writer, reports []Report) error

// RendererFor returns the renderer for f.
func RendererFor(f Format) (Renderer, error) {
	switch f {
	case FormatText:
		return Text, nil
	case FormatJSON:
		return JSON, nil
	case FormatSeries:
		return Series, nil
	default:
		return nil, fmt.Errorf("unknown output format %q", f)
	}
}
