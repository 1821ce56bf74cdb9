// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package ingest

import (
	"bufio"
	"fmt"
	"io"

	"github.com/ManuGH/parkload/internal/occupancy"
)

// ReadText reads whitespace separated "HH:MM" tokens, taken in arrival and
// departure pairs. Line breaks carry no meaning.
func ReadText(r io.Reader) ([]occupancy.Interval, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	var (
		out     []occupancy.Interval
		arrival occupancy.Timestamp
		pending bool
	)
	for sc.Scan() {
		ts, err := ParseClock(sc.Text())
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", len(out)+1, err)
		}
		if !pending {
			arrival = ts
			pending = true
			continue
		}
		out = append(out, occupancy.Interval{Arrival: arrival, Departure: ts})
		pending = false
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scan input: %w", err)
	}
	if pending {
		return nil, fmt.Errorf("record %d: %w", len(out)+1, ErrMissingDeparture)
	}
	return out, nil
}
