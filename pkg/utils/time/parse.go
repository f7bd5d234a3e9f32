// ABOUTME: Time parsing utilities for feed timestamps
// ABOUTME: Falls back through the layouts Reddit and other feeds emit

package time

import (
	"strings"
	"time"
)

// Layouts tried in order by ParseFlexibleTime
var timeFormats = []string{
	time.RFC3339,
	time.RFC3339Nano,
	time.RFC1123Z,
	time.RFC1123,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"Mon, 2 Jan 2006 15:04:05 -0700",
	"Mon, 2 Jan 2006 15:04:05 MST",
}

// ParseFlexibleTime parses a timestamp in any known layout, or returns the zero time
func ParseFlexibleTime(timeStr string) time.Time {
	timeStr = strings.TrimSpace(timeStr)
	if timeStr == "" {
		return time.Time{}
	}

	for _, format := range timeFormats {
		if t, err := time.Parse(format, timeStr); err == nil {
			return t
		}
	}

	return time.Time{}
}

// FirstParsed returns the first value that parses, or the zero time
func FirstParsed(values ...string) time.Time {
	for _, v := range values {
		if t := ParseFlexibleTime(v); !t.IsZero() {
			return t
		}
	}
	return time.Time{}
}
