// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package occupancy

import (
	"cmp"
	"slices"
)

// Process computes the busiest intervals and the occupancy trace of the given
// parking records.
//
// Zero-duration records are skipped. A record departing before it arrives
// fails the whole call with *InvalidIntervalError before any work is done.
// The input slice is not modified.
func Process(intervals []Interval) (Result, error) {
	valid, skipped, err := filterIntervals(intervals)
	if err != nil {
		return Result{}, err
	}

	// arrival asc, departure desc
	slices.SortFunc(valid, func(a, b Interval) int {
		if c := cmp.Compare(a.Arrival, b.Arrival); c != 0 {
			return c
		}
		return cmp.Compare(b.Departure, a.Departure)
	})

	s := &sweep{pending: newPendingDepartures()}
	for _, iv := range valid {
		s.step(iv)
	}
	s.flush()

	return Result{
		Busiest: s.busiest,
		Trace:   s.trace.Samples(),
		MaxLoad: s.maxLoad,
		Skipped: skipped,
	}, nil
}

func filterIntervals(intervals []Interval) ([]Interval, int, error) {
	valid := make([]Interval, 0, len(intervals))
	skipped := 0
	for i, iv := range intervals {
		switch {
		case iv.Arrival > iv.Departure:
			return nil, 0, &InvalidIntervalError{Interval: iv, Index: i}
		case iv.Arrival == iv.Departure:
			skipped++
		default:
			valid = append(valid, iv)
		}
	}
	return valid, skipped, nil
}

// sweep is the running state of one Process call.
type sweep struct {
	counter int
	maxLoad int
	pending *pendingDepartures
	trace   Compactor

	// busiest holds closed intervals only; the one being extended lives in
	// openStart while open is set.
	busiest   []BusiestInterval
	openStart Timestamp
	open      bool
}

func (s *sweep) step(iv Interval) {
	for {
		d, ok := s.pending.min()
		if !ok || d > iv.Arrival {
			break
		}
		s.pending.popMin()
		// A departure at the instant of the next arrival is a handoff, not a gap.
		if s.open && s.counter == s.maxLoad && d != iv.Arrival {
			s.closeAt(d)
		}
		s.counter--
		s.trace.Record(d, s.counter)
	}

	s.counter++
	s.pending.push(iv.Departure)
	s.trace.Record(iv.Arrival, s.counter)

	switch {
	case s.counter > s.maxLoad:
		s.maxLoad = s.counter
		s.busiest = s.busiest[:0]
		s.openAt(iv.Arrival)
	case s.counter == s.maxLoad:
		if !s.open {
			s.openAt(iv.Arrival)
		}
	default:
		// Several departures at this instant took the load below the peak
		// and the arrival did not restore it.
		if s.open {
			s.closeAt(iv.Arrival)
		}
	}
}

// flush closes the open interval at the next departure and drains the
// remaining departures into the trace.
func (s *sweep) flush() {
	if s.open {
		if d, ok := s.pending.min(); ok {
			s.closeAt(d)
		}
	}
	for s.pending.len() > 0 {
		d, _ := s.pending.popMin()
		s.counter--
		s.trace.Record(d, s.counter)
	}
}

// openAt starts a peak interval at t, resuming the previous one if it was
// closed at that same instant.
func (s *sweep) openAt(t Timestamp) {
	s.open = true
	s.openStart = t
	if n := len(s.busiest); n > 0 && s.busiest[n-1].End == t {
		s.openStart = s.busiest[n-1].Start
		s.busiest = s.busiest[:n-1]
	}
}

func (s *sweep) closeAt(t Timestamp) {
	s.busiest = append(s.busiest, BusiestInterval{Start: s.openStart, End: t})
	s.open = false
}
