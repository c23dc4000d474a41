package utils

import (
	"time"

	"github.com/julianstephens/daybell/internal/constants"
)

// Today returns the given moment's date string (YYYY-MM-DD) on the local clock.
func Today(now time.Time) string {
	return now.Format(constants.DateFormat)
}

// ClockMinute returns the given moment's wall-clock minute as HH:MM.
func ClockMinute(now time.Time) string {
	return now.Format(constants.TimeFormat)
}

// ParseTime parses a time string in the standard format (HH:MM).
func ParseTime(timeStr string) (time.Time, error) {
	return time.Parse(constants.TimeFormat, timeStr)
}

// ParseTimeToMinutes parses a time string (HH:MM) and returns the number of minutes from midnight.
func ParseTimeToMinutes(timeStr string) (int, error) {
	t, err := ParseTime(timeStr)
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}

// ValidateTimeFormat checks that the string is a zero-padded HH:MM time.
func ValidateTimeFormat(timeStr string) bool {
	t, err := ParseTime(timeStr)
	return err == nil && t.Format(constants.TimeFormat) == timeStr
}

// AtOrPastThreshold reports whether now's wall-clock time is at or past the
// HH:MM threshold. A malformed threshold never matches.
func AtOrPastThreshold(now time.Time, threshold string) bool {
	limit, err := ParseTimeToMinutes(threshold)
	if err != nil {
		return false
	}
	return now.Hour()*60+now.Minute() >= limit
}
