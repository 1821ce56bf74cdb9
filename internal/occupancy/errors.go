// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package occupancy

import (
	"errors"
	"fmt"
)

// ErrInvalidInterval classifies intervals whose departure precedes the arrival.
// Use errors.Is(err, ErrInvalidInterval) instead of string matching.
var ErrInvalidInterval = errors.New("invalid parking interval")

// InvalidIntervalError reports the offending interval and its position in the
// caller's input.
type InvalidIntervalError struct {
	Interval Interval
	Index    int
}

func (e *InvalidIntervalError) Error() string {
	return fmt.Sprintf("%v: record %d departs at %d before arriving at %d",
		ErrInvalidInterval, e.Index, e.Interval.Departure, e.Interval.Arrival)
}

// Is makes errors.Is(err, ErrInvalidInterval) match.
func (e *InvalidIntervalError) Is(target error) bool {
	return target == ErrInvalidInterval
}
