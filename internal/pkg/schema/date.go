package schema

import (
	"fmt"
	"strings"
	"time"
)

// ParseDate parses a date-like string from a form or API payload.
// It accepts the plain date layout HTML date inputs submit and RFC 3339
// timestamps from API clients; either way the result is truncated to
// UTC midnight so date comparisons ignore the time of day.
func ParseDate(value string) (time.Time, error) {
	if t, err := time.ParseInLocation(DateLayout, value, time.UTC); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return DateOnly(t), nil
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", value)
}

// DateOnly truncates a timestamp to UTC midnight.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// NormalizeTimeOfDay zero-pads a matched HH:MM reading ("9:30" -> "09:30").
// Input must already match TimeOfDayPattern.
func NormalizeTimeOfDay(value string) string {
	if i := strings.IndexByte(value, ':'); i == 1 {
		return "0" + value
	}
	return value
}

// AgeAt computes age by calendar-year subtraction, matching the
// registration policy: the month and day of birth are ignored, so a
// student turning 16 in December is already 16 in January.
func AgeAt(birthDate, now time.Time) int {
	return now.Year() - birthDate.Year()
}
