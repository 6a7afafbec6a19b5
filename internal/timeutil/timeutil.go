package timeutil

import (
	"fmt"
	"time"
)

// DateLayout defines the canonical date format (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD date string.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

// ParseDateOrYear parses YYYY-MM-DD, falling back to treating the value as a
// bare YYYY year (January 1 of that year). Returns the normalized YYYY-MM-DD
// string alongside the parsed time.
func ParseDateOrYear(value string) (time.Time, string, error) {
	if t, err := ParseDate(value); err == nil {
		return t, value, nil
	}
	expanded := value + "-01-01"
	t, err := ParseDate(expanded)
	if err != nil {
		return time.Time{}, "", err
	}
	return t, expanded, nil
}

// FormatDate formats a time as YYYY-MM-DD in its current location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// SeasonOf returns the season (YYYY) a date string belongs to, or "" if the
// date does not parse.
func SeasonOf(date string) string {
	t, err := ParseDate(date)
	if err != nil {
		return ""
	}
	return fmt.Sprintf("%d", t.Year())
}

// EndOfSeason returns December 31 of the given date's year in YYYY-MM-DD form.
func EndOfSeason(date string) (string, error) {
	t, err := ParseDate(date)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%d-12-31", t.Year()), nil
}
