// Package core holds the domain types and the pure calculation logic:
// expense and budget records, date handling, number normalization and
// monthly aggregation. Nothing in here performs I/O.
package core

import (
	"fmt"
	"regexp"
	"time"
)

var (
	dateRe  = regexp.MustCompile(`^(\d{2})/(\d{2})/(\d{4})$`)
	monthRe = regexp.MustCompile(`^\d{4}-\d{2}$`)
)

// IsValidDate reports whether s is a DD/MM/YYYY date string.
func IsValidDate(s string) bool {
	return dateRe.MatchString(s)
}

// IsValidMonth reports whether s is a YYYY-MM month key.
func IsValidMonth(s string) bool {
	return monthRe.MatchString(s)
}

// MonthFromDate derives the YYYY-MM month key from a DD/MM/YYYY date.
// The month key is always derived this way; the two fields of a stored
// expense must never disagree.
func MonthFromDate(date string) (string, error) {
	m := dateRe.FindStringSubmatch(date)
	if m == nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}
	return m[3] + "-" + m[2], nil
}

// ParseDate parses a date in either DD/MM/YYYY or D/M/YYYY form. The
// lenient variant shows up when rows were hand-edited in the sheet.
func ParseDate(s string) (time.Time, error) {
	for _, layout := range []string{"02/01/2006", "2/1/2006"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
}

// NowISO returns the current time as an RFC3339 UTC timestamp, the
// canonical form for createdAt and lastUpdated cells.
func NowISO() string {
	return time.Now().UTC().Format(time.RFC3339)
}
