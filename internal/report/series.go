// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package report

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/ManuGH/parkload/internal/occupancy"
)

// Point is one vertex of a chart line.
type Point struct {
	At    occupancy.Timestamp
	Level int
}

// StepSeries expands a trace into line-chart vertices. Every sample yields
// two points at the same instant, the old level and the new one, so a plain
// line chart draws vertical steps.
func StepSeries(tr occupancy.Trace) []Point {
	out := make([]Point, 0, 2*len(tr))
	prev := 0
	for _, s := range tr {
		out = append(out, Point{At: s.At, Level: prev}, Point{At: s.At, Level: s.Level})
		prev = s.Level
	}
	return out
}

// Series writes the step series of every report as CSV with a
// source,at,level header.
func Series(w io.Writer, reports []Report) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"source", "at", "level"}); err != nil {
		return err
	}
	for _, r := range reports {
		for _, p := range StepSeries(r.Result.Trace) {
			if err := cw.Write([]string{r.Source, r.clock(p.At), strconv.Itoa(p.Level)}); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}
