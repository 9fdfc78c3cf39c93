// Package dateutils provides the date parsing and calendar arithmetic used by
// the filter engine and the renderers.
package dateutils

import (
	"fmt"
	"strings"
	"time"
)

// Date layouts used throughout the application.
const (
	DateLayoutISO     = "2006-01-02"
	DateLayoutDisplay = "Jan 2, 2006"
	DateLayoutChart   = "Jan 02, 2006"
)

// zoned layouts carry their own offset and are parsed as absolute instants.
var zonedLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04Z07:00",
}

// localLayouts have no offset and are read as wall-clock time in the caller's
// location.
var localLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	DateLayoutISO,
}

// ParseTimestamp parses an ISO-8601 date or date-time. Values with an offset
// or a trailing Z are absolute; values without one, including bare dates, are
// interpreted in loc (time.Local when nil). Fractional seconds are accepted.
func ParseTimestamp(value string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	clean := strings.TrimSpace(value)
	if clean == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}

	for _, layout := range zonedLayouts {
		if t, err := time.Parse(layout, clean); err == nil {
			return t, nil
		}
	}
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, clean, loc); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unable to parse date: %s", value)
}

// IsDateOnly reports whether value is a bare YYYY-MM-DD date.
func IsDateOnly(value string) bool {
	_, err := time.Parse(DateLayoutISO, strings.TrimSpace(value))
	return err == nil
}

// StartOfDay returns midnight of t's calendar day in loc.
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	if loc != nil {
		t = t.In(loc)
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDay reports whether a and b fall on the same calendar day in loc.
func SameDay(a, b time.Time, loc *time.Location) bool {
	if loc != nil {
		a, b = a.In(loc), b.In(loc)
	}
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// SameMonth reports whether a and b fall in the same month of the same year
// in loc.
func SameMonth(a, b time.Time, loc *time.Location) bool {
	if loc != nil {
		a, b = a.In(loc), b.In(loc)
	}
	return a.Year() == b.Year() && a.Month() == b.Month()
}

// FormatDisplay formats t like "Apr 3, 2022". Zero times format as "".
func FormatDisplay(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateLayoutDisplay)
}

// FormatChart formats t like "Apr 03, 2022" for chart ticks and tooltips.
func FormatChart(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateLayoutChart)
}
