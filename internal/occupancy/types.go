// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

// Package occupancy computes parking-lot occupancy over time from arrival and
// departure records.
//
// Process sweeps the records once, left to right, and reports the busiest
// intervals (where occupancy equals its global peak) together with a minimal
// step-function trace of the occupancy level. Timestamps are opaque integers:
// callers pick the unit and normalise time zones before calling in.
package occupancy

// Timestamp is a point in time in a caller-chosen integer unit.
type Timestamp int64

// Interval is a single parking record: the vehicle occupies the lot during
// [Arrival, Departure).
type Interval struct {
	Arrival   Timestamp
	Departure Timestamp
}

// Sample is one step of an occupancy trace: the level becomes Level at At and
// holds until the next sample.
type Sample struct {
	At    Timestamp
	Level int
}

// BusiestInterval is a maximal half-open range [Start, End) during which the
// occupancy equals the peak of the whole data set.
type BusiestInterval struct {
	Start Timestamp
	End   Timestamp
}

// Contains reports whether t lies in [Start, End).
func (b BusiestInterval) Contains(t Timestamp) bool {
	return t >= b.Start && t < b.End
}

// Result is the output of Process.
type Result struct {
	// Busiest lists the peak-occupancy intervals ordered by Start. They are
	// pairwise disjoint and never adjacent.
	Busiest []BusiestInterval
	// Trace is the minimal occupancy step function.
	Trace Trace
	// MaxLoad is the peak occupancy, 0 when no interval had a positive duration.
	MaxLoad int
	// Skipped counts zero-duration intervals dropped before the sweep.
	Skipped int
}
