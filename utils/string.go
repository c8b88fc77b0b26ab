package utils

import (
	"strconv"
	"strings"
)

// ParseFloatOrZero parses a numeric string, returning 0 for anything unparsable.
func ParseFloatOrZero(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}

// Field returns row[i] or "" when the row is short.
func Field(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}
