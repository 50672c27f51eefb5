// Package datetime provides date and time utility functions.
package datetime

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/iwvelando/lease-fees/pkg/constants"
)

const (
	// DateLayout is the canonical output date format.
	DateLayout = constants.DateLayout
)

// ErrUnrecognizedDate is returned when no supported layout matches the input.
var ErrUnrecognizedDate = errors.New("unrecognized date")

// InputLayouts lists the layouts tried for user-entered dates, in priority
// order: day-first, month-first, ISO, then the dashed day-first and
// month-first variants. Single-digit days and months are accepted.
var InputLayouts = []string{
	"2/1/2006", // dd/MM/yyyy
	"1/2/2006", // MM/dd/yyyy
	"2006-1-2", // yyyy-MM-dd
	"2-1-2006", // dd-MM-yyyy
	"1-2-2006", // MM-dd-yyyy
}

// isoLayouts are the generic fallbacks tried after InputLayouts.
var isoLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// Normalize interprets raw user text as a calendar date. The first layout in
// InputLayouts that yields a valid date wins, so "03/04/2024" is 3 April. The
// result is midnight UTC on that date.
func Normalize(raw string) (time.Time, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return time.Time{}, fmt.Errorf("%w: empty input", ErrUnrecognizedDate)
	}

	for _, layout := range InputLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return CalendarDate(t), nil
		}
	}
	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return CalendarDate(t), nil
		}
	}

	return time.Time{}, fmt.Errorf("%w: %q", ErrUnrecognizedDate, value)
}

// CalendarDate drops the time-of-day and location from t, keeping the date as
// observed in t's own location.
func CalendarDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the number of whole calendar days from start to end.
// The result is negative when end is before start. Days are counted from Unix
// seconds since time.Duration saturates at roughly 292 years.
func DaysBetween(start, end time.Time) int {
	return int((CalendarDate(end).Unix() - CalendarDate(start).Unix()) / secondsPerDay)
}

const secondsPerDay = 24 * 60 * 60

// Format renders t in the canonical DateLayout.
func Format(t time.Time) string {
	return t.Format(DateLayout)
}

// MustParseTime parses a date string using the given layout and panics on error.
// This is intended for use in tests where the date string is known to be valid.
func MustParseTime(layout, dateStr string) time.Time {
	t, err := time.Parse(layout, dateStr)
	if err != nil {
		panic(err)
	}
	return t
}
