package core

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseNumber converts a cell value from the backing store into a float.
// The store may return display-formatted strings ("৳ 50,000",
// "50,000.00") instead of plain numbers, so everything except digits,
// '.' and '-' is stripped before parsing. A value that still fails to
// parse resolves to 0: a single malformed cell must never fail a scan.
func ParseNumber(val any) float64 {
	switch v := val.(type) {
	case nil:
		return 0
	case float64:
		return v
	case int:
		return float64(v)
	case int64:
		return float64(v)
	}
	s := strings.TrimSpace(fmt.Sprint(val))
	if s == "" {
		return 0
	}
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			b.WriteRune(r)
		}
	}
	f, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return 0
	}
	return f
}

// FormatAmount renders an amount the way it is written back to the
// store: plain decimal, no grouping, trailing zeros trimmed.
func FormatAmount(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
