// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package ingest

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/ManuGH/parkload/internal/occupancy"
)

// Record is one entry of the JSON input document.
type Record struct {
	ID          int    `json:"Id"`
	ArrivalTime string `json:"ArrivalTime"`
	LeaveTime   string `json:"LeaveTime"`
}

// ReadJSON decodes a JSON array of records. Timestamps are ISO 8601 and are
// converted to whole minutes since the Unix epoch.
func ReadJSON(r io.Reader) ([]occupancy.Interval, error) {
	var records []Record
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("decode records: %w", err)
	}

	seen := make(map[int]struct{}, len(records))
	out := make([]occupancy.Interval, 0, len(records))
	for _, rec := range records {
		if _, dup := seen[rec.ID]; dup {
			return nil, &DuplicateIDError{ID: rec.ID}
		}
		seen[rec.ID] = struct{}{}

		arrival, err := ParseISO(rec.ArrivalTime)
		if err != nil {
			return nil, fmt.Errorf("car id %d arrival: %w", rec.ID, err)
		}
		departure, err := ParseISO(rec.LeaveTime)
		if err != nil {
			return nil, fmt.Errorf("car id %d departure: %w", rec.ID, err)
		}
		out = append(out, occupancy.Interval{Arrival: arrival, Departure: departure})
	}
	return out, nil
}

// isoLayouts are tried in order; zone-less values are taken as UTC.
var isoLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// ParseISO parses an ISO 8601 date-time into minutes since the Unix epoch.
func ParseISO(s string) (occupancy.Timestamp, error) {
	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return occupancy.Timestamp(floorMinutes(t.Unix())), nil
		}
	}
	return 0, &TimeFormatError{Value: s}
}

// floorMinutes rounds seconds down to whole minutes, also before the epoch.
func floorMinutes(sec int64) int64 {
	m := sec / 60
	if sec%60 < 0 {
		m--
	}
	return m
}

// FormatISO renders minutes since the Unix epoch as RFC 3339 in UTC.
func FormatISO(ts occupancy.Timestamp) string {
	return time.Unix(int64(ts)*60, 0).UTC().Format(time.RFC3339)
}
