package utils

import (
	"strings"
	"time"
)

const ISODateLayout = "2006-01-02"

var coerceLayouts = []string{
	"2006-01-02T15:04:05",
	ISODateLayout,
}

// CoerceDate parses an ISO date or timestamp into a calendar date (UTC midnight).
// Unparseable input falls back to the provided default, or today's date when the
// default is the zero time.
func CoerceDate(value string, fallback time.Time) time.Time {
	trimmed := strings.TrimSuffix(strings.TrimSpace(value), "Z")
	if trimmed != "" {
		for _, layout := range coerceLayouts {
			if parsed, err := time.Parse(layout, trimmed); err == nil {
				return dateOnly(parsed)
			}
		}
	}
	if !fallback.IsZero() {
		return dateOnly(fallback)
	}
	return dateOnly(time.Now().UTC())
}

// DateRange returns every calendar date between start and end inclusive.
func DateRange(start, end time.Time) []time.Time {
	var days []time.Time
	for current := dateOnly(start); !current.After(dateOnly(end)); current = current.AddDate(0, 0, 1) {
		days = append(days, current)
	}
	return days
}

func FormatISODate(t time.Time) string {
	return t.Format(ISODateLayout)
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
