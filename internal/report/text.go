// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package report

import (
	"bufio"
	"fmt"
	"io"
)

// Text writes the console layout: a "Busiest time:" block followed by a
// "Plot data:" block per report. With several reports each block set is
// headed by the source name.
func Text(w io.Writer, reports []Report) error {
	bw := bufio.NewWriter(w)
	for i, r := range reports {
		if i > 0 {
			fmt.Fprintln(bw)
		}
		if len(reports) > 1 {
			fmt.Fprintf(bw, "== %s ==\n", r.Source)
		}

		fmt.Fprintln(bw, "Busiest time:")
		for _, b := range r.Result.Busiest {
			fmt.Fprintf(bw, "%s -\t%s\n", r.clock(b.Start), r.clock(b.End))
		}
		fmt.Fprintln(bw)
		fmt.Fprintln(bw, "Plot data:")
		for _, s := range r.Result.Trace {
			fmt.Fprintf(bw, "%s\t%d\n", r.clock(s.At), s.Level)
		}
	}
	return bw.Flush()
}
