// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package ingest

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/ManuGH/parkload/internal/occupancy"
)

// maxClockHour keeps hour*60+59 within a Timestamp.
const maxClockHour = (math.MaxInt64 - 59) / 60

// ParseClock parses "HH:MM" into minutes. Hours are not capped at 23 so a
// record may run past midnight as 25:30.
func ParseClock(s string) (occupancy.Timestamp, error) {
	hh, mm, ok := strings.Cut(s, ":")
	if !ok || hh == "" || mm == "" {
		return 0, &TimeFormatError{Value: s}
	}
	hour, err := strconv.ParseInt(hh, 10, 64)
	if err != nil || hour < 0 || hour > maxClockHour {
		return 0, &TimeFormatError{Value: s}
	}
	minute, err := strconv.ParseInt(mm, 10, 64)
	if err != nil || minute < 0 || minute >= 60 {
		return 0, &TimeFormatError{Value: s}
	}
	return occupancy.Timestamp(hour*60 + minute), nil
}

// FormatClock renders minutes as zero-padded "HH:MM".
func FormatClock(ts occupancy.Timestamp) string {
	sign := ""
	if ts < 0 {
		sign = "-"
		ts = -ts
	}
	return fmt.Sprintf("%s%02d:%02d", sign, ts/60, ts%60)
}
