// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package occupancy

import "sort"

// Trace is a step function encoded as samples with strictly increasing At and
// no two adjacent samples at the same Level.
type Trace []Sample

// LevelAt returns the occupancy in effect at t. Before the first sample the
// level is 0.
func (t Trace) LevelAt(at Timestamp) int {
	// first sample strictly after at
	i := sort.Search(len(t), func(i int) bool { return t[i].At > at })
	if i == 0 {
		return 0
	}
	return t[i-1].Level
}

// Compactor builds a minimal Trace from (at, level) observations fed in
// non-decreasing at order. The zero value is ready to use.
type Compactor struct {
	samples Trace
}

// Record notes that the level becomes level at time at.
//
// Repeated levels are dropped. A second observation at the same instant
// replaces the first, and if that makes the last sample repeat its
// predecessor the last sample disappears altogether.
func (c *Compactor) Record(at Timestamp, level int) {
	n := len(c.samples)
	if n == 0 {
		c.samples = append(c.samples, Sample{At: at, Level: level})
		return
	}

	last := &c.samples[n-1]
	switch {
	case last.Level == level:
		return
	case last.At == at:
		last.Level = level
		if n >= 2 && c.samples[n-2].Level == level {
			c.samples = c.samples[:n-1]
		}
	default:
		c.samples = append(c.samples, Sample{At: at, Level: level})
	}
}

// Samples returns the trace built so far. The slice is owned by the
// Compactor until the caller stops recording.
func (c *Compactor) Samples() Trace {
	return c.samples
}

// Len returns the number of samples.
func (c *Compactor) Len() int {
	return len(c.samples)
}

// Reset empties the trace, keeping its capacity.
func (c *Compactor) Reset() {
	c.samples = c.samples[:0]
}
