// Package timeutil provides mission-timestamp parsing and formatting helpers.
//
// Telemetry exports and CZML availability intervals both use second-resolution
// ISO-8601 UTC timestamps (2023-11-01T21:47:50Z); everything here works in
// that format.
package timeutil

import (
	"strings"
	"time"
)

// Layout is the timestamp format used by telemetry exports and CZML output.
const Layout = "2006-01-02T15:04:05Z"

// Parse parses a second-resolution ISO-8601 UTC timestamp.
func Parse(s string) (time.Time, error) {
	return time.Parse(Layout, strings.TrimSpace(s))
}

// Format renders t in the mission timestamp format (UTC, second resolution).
func Format(t time.Time) string {
	return t.UTC().Format(Layout)
}

// SecondsBetween returns the offset of t from epoch in seconds.
func SecondsBetween(epoch, t time.Time) float64 {
	return t.Sub(epoch).Seconds()
}

// Interval formats a CZML availability interval string "start/end".
func Interval(start, end time.Time) string {
	return Format(start) + "/" + Format(end)
}

// CompactID renders t with all separator characters stripped, for use inside
// packet ids: 2023-11-01T21:47:50Z becomes "20231101_214750".
func CompactID(t time.Time) string {
	return t.UTC().Format("20060102_150405")
}
