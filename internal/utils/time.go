package utils

import (
	"fmt"
	"time"

	"github.com/iksdev/habita/internal/constants"
)

// Today returns today's date string (YYYY-MM-DD) in the system timezone.
func Today() string {
	return time.Now().Format(constants.DateFormat)
}

// TodayInTimezone returns today's date string (YYYY-MM-DD) in the specified
// timezone. This ensures that "today" is determined by the user's configured
// timezone, not the system timezone.
func TodayInTimezone(timezone string) (string, error) {
	now, err := NowInTimezone(timezone)
	if err != nil {
		return "", err
	}
	return now.Format(constants.DateFormat), nil
}

// LoadLocation loads a timezone location from an IANA timezone name.
// If the timezone is "Local" or empty, it returns the system's local timezone.
func LoadLocation(timezone string) (*time.Location, error) {
	if timezone == "" || timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(timezone)
}

// NowInTimezone returns the current time in the specified timezone.
func NowInTimezone(timezone string) (time.Time, error) {
	loc, err := LoadLocation(timezone)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return time.Now().In(loc), nil
}

// ParseDate parses a date string in the standard format (YYYY-MM-DD).
func ParseDate(day string) (time.Time, error) {
	return time.Parse(constants.DateFormat, day)
}

// AddDays shifts a date string by n days (n may be negative). A malformed
// input is returned unchanged; day-string comparisons then degrade silently
// rather than failing, matching the rest of the date handling.
func AddDays(day string, n int) string {
	t, err := time.Parse(constants.DateFormat, day)
	if err != nil {
		return day
	}
	return t.AddDate(0, 0, n).Format(constants.DateFormat)
}

// DaysBetween returns the whole days from one date string to another.
// Negative when to precedes from. Returns 0 for malformed input.
func DaysBetween(from, to string) int {
	a, err := time.Parse(constants.DateFormat, from)
	if err != nil {
		return 0
	}
	b, err := time.Parse(constants.DateFormat, to)
	if err != nil {
		return 0
	}
	return int(b.Sub(a).Hours() / 24)
}
