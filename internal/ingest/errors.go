// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package ingest

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidTime classifies timestamps that cannot be parsed.
	ErrInvalidTime = errors.New("invalid time format")
	// ErrMissingDeparture is returned when the text input ends after an arrival.
	ErrMissingDeparture = errors.New("missing departure time")
	// ErrDuplicateID is returned when a JSON record reuses a vehicle id.
	ErrDuplicateID = errors.New("duplicate record id")
	// ErrUnknownFormat is returned for input formats other than text and json.
	ErrUnknownFormat = errors.New("unknown input format")
)

// TimeFormatError reports the offending timestamp text.
type TimeFormatError struct {
	Value string
}

func (e *TimeFormatError) Error() string {
	return fmt.Sprintf("%v: %q", ErrInvalidTime, e.Value)
}

// Is makes errors.Is(err, ErrInvalidTime) match.
func (e *TimeFormatError) Is(target error) bool {
	return target == ErrInvalidTime
}

// DuplicateIDError reports a vehicle id seen twice.
type DuplicateIDError struct {
	ID int
}

func (e *DuplicateIDError) Error() string {
	return fmt.Sprintf("%v: car id %d", ErrDuplicateID, e.ID)
}

// Is makes errors.Is(err, ErrDuplicateID) match.
func (e *DuplicateIDError) Is(target error) bool {
	return target == ErrDuplicateID
}
