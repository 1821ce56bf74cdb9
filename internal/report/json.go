// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package report

import (
	"encoding/json"
	"io"
)

type jsonDocument struct {
	Reports []jsonReport `json:"reports"`
}

type jsonReport struct {
	Source  string         `json:"source"`
	MaxLoad int            `json:"max_load"`
	Skipped int            `json:"skipped"`
	Busiest []jsonInterval `json:"busiest"`
	Trace   []jsonSample   `json:"trace"`
}

type jsonInterval struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type jsonSample struct {
	At    string `json:"at"`
	Level int    `json:"level"`
}

// JSON writes all reports as one indented document.
func JSON(w io.Writer, reports []Report) error {
	doc := jsonDocument{Reports: make([]jsonReport, 0, len(reports))}
	for _, r := range reports {
		jr := jsonReport{
			Source:  r.Source,
			MaxLoad: r.Result.MaxLoad,
			Skipped: r.Result.Skipped,
			Busiest: make([]jsonInterval, 0, len(r.Result.Busiest)),
			Trace:   make([]jsonSample, 0, len(r.Result.Trace)),
		}
		for _, b := range r.Result.Busiest {
			jr.Busiest = append(jr.Busiest, jsonInterval{Start: r.clock(b.Start), End: r.clock(b.End)})
		}
		for _, s := range r.Result.Trace {
			jr.Trace = append(jr.Trace, jsonSample{At: r.clock(s.At), Level: s.Level})
		}
		doc.Reports = append(doc.Reports, jr)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
