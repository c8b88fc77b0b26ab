package utils

import (
	"fmt"
	"time"
)

var SeoulTZ = time.FixedZone("KST", 9*60*60)

const (
	DateLayout     = "2006-01-02"
	DateTimeLayout = "2006-01-02 15:04:05"
)

func SeoulNow() time.Time {
	return time.Now().In(SeoulTZ)
}

// ParseISOTime accepts RFC3339 and the local layouts; zone-less values are read in Seoul time.
func ParseISOTime(s string) (*time.Time, error) {
	if s == "" {
		return nil, fmt.Errorf("empty time string")
	}

	t, err := time.Parse(time.RFC3339, s)
	if err == nil {
		return &t, nil
	}

	t, err = time.Parse(time.RFC3339Nano, s)
	if err == nil {
		return &t, nil
	}

	layouts := []string{
		DateTimeLayout,
		"2006-01-02T15:04:05",
		DateLayout,
	}
	for _, layout := range layouts {
		if tt, e := time.ParseInLocation(layout, s, SeoulTZ); e == nil {
			return &tt, nil
		}
	}

	return nil, fmt.Errorf("failed to parse time: %v", s)
}

// DatePrefix returns the YYYY-MM-DD part of a date or timestamp string.
func DatePrefix(s string) string {
	if len(s) >= 10 {
		return s[:10]
	}
	return s
}
