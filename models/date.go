package models

import (
	"strings"
	"time"
)

// DateLayout is the dd/MM/yyyy format used for every persisted or exported date string.
const DateLayout = "02/01/2006"

// FormatDate renders t as dd/MM/yyyy.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// FormatDatePtr renders t as dd/MM/yyyy, or "" when t is nil.
func FormatDatePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return FormatDate(*t)
}

// ParseDate parses a dd/MM/yyyy string into a calendar date in the local zone.
func ParseDate(value string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, strings.TrimSpace(value), time.Local)
}

// Today truncates now to the calendar day.
func Today(now time.Time) time.Time {
	y, m, d := now.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, now.Location())
}
