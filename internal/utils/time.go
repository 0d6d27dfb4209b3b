package utils

import (
	"fmt"
	"time"

	"habitix/internal/constants"
)

// Today returns today's date string (YYYY-MM-DD) in local time.
func Today() string {
	return time.Now().Format(constants.DateFormat)
}

// ParseDate parses a date string (YYYY-MM-DD) into a midnight UTC time.Time.
func ParseDate(dateStr string) (time.Time, error) {
	t, err := time.Parse(constants.DateFormat, dateStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format: %s (expected YYYY-MM-DD)", dateStr)
	}
	return t, nil
}

// FormatDate formats a time as a date string (YYYY-MM-DD).
func FormatDate(t time.Time) string {
	return t.Format(constants.DateFormat)
}

// ValidDate reports whether the string is a well-formed YYYY-MM-DD date.
func ValidDate(dateStr string) bool {
	_, err := ParseDate(dateStr)
	return err == nil
}

// AddDays shifts a date string by n calendar days (n may be negative).
func AddDays(dateStr string, n int) (string, error) {
	t, err := ParseDate(dateStr)
	if err != nil {
		return "", err
	}
	return FormatDate(t.AddDate(0, 0, n)), nil
}

// LastNDays returns the n calendar days ending at today inclusive, oldest
// first.
func LastNDays(today string, n int) ([]string, error) {
	end, err := ParseDate(today)
	if err != nil {
		return nil, err
	}
	days := make([]string, 0, n)
	for i := n - 1; i >= 0; i-- {
		days = append(days, FormatDate(end.AddDate(0, 0, -i)))
	}
	return days, nil
}

// WeekdayName returns the long weekday name ("Monday") for a date string, or
// an empty string if the date is malformed.
func WeekdayName(dateStr string) string {
	t, err := ParseDate(dateStr)
	if err != nil {
		return ""
	}
	return t.Weekday().String()
}

// DaysApart returns the whole-day difference between two date strings
// (later minus earlier).
func DaysApart(later, earlier string) (int, error) {
	lt, err := ParseDate(later)
	if err != nil {
		return 0, err
	}
	et, err := ParseDate(earlier)
	if err != nil {
		return 0, err
	}
	return int(lt.Sub(et).Hours() / 24), nil
}

// ParseMonth parses a YYYY-MM string into its year and month parts.
func ParseMonth(monthStr string) (int, time.Month, error) {
	t, err := time.Parse(constants.MonthFormat, monthStr)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid month format: %s (expected YYYY-MM)", monthStr)
	}
	return t.Year(), t.Month(), nil
}
