package schedule

import (
	"fmt"
	"time"
)

// The canonical time representation across the system is naive wall-clock:
// timestamps are stored and exchanged without a zone, and a trailing "Z" or
// offset left over from older records is ignored rather than converted.

const (
	wallClockLayout = "2006-01-02T15:04:05"
	dayLayout       = "2006-01-02"
)

// ParseWallClock parses a timestamp like "2026-01-30T12:05:00" as literal
// wall-clock time. Any zone suffix ("Z", "+03:00") is dropped, not applied.
func ParseWallClock(s string) (time.Time, error) {
	if len(s) > len(wallClockLayout) {
		s = s[:len(wallClockLayout)]
	}
	t, err := time.Parse(wallClockLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timestamp %q: %w", s, err)
	}
	return t, nil
}

// FormatWallClock serializes a timestamp without a zone suffix.
func FormatWallClock(t time.Time) string {
	return t.Format(wallClockLayout)
}

// ParseDay parses a calendar day in "YYYY-MM-DD" form. Longer inputs are
// truncated to their date prefix, so full timestamps are accepted too.
func ParseDay(s string) (time.Time, error) {
	if len(s) > len(dayLayout) {
		s = s[:len(dayLayout)]
	}
	t, err := time.Parse(dayLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}

// FormatDay serializes the calendar-day part of a timestamp.
func FormatDay(t time.Time) string {
	return t.Format(dayLayout)
}

// SameDay reports whether two timestamps fall on the same calendar day,
// ignoring their time-of-day entirely.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// MinutesOfDay converts an "HH:mm" wall-clock value to minutes since
// midnight. "24:00" means end of day and maps to 1440. ok is false when
// the value is malformed.
func MinutesOfDay(hhmm string) (int, bool) {
	if hhmm == "24:00" {
		return 24 * 60, true
	}
	t, err := time.Parse("15:04", hhmm)
	if err != nil {
		return 0, false
	}
	return t.Hour()*60 + t.Minute(), true
}
