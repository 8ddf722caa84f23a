// Package tracking computes how many days an invoice or occurrence has been
// open. Results are whole days and never negative.
package tracking

import (
	"strconv"
	"time"
)

const dateLayout = "2006-01-02"

// Days returns end-start in whole days after truncating both to midnight in
// their own location. Negative differences are reported as 0.
func Days(start, end time.Time) int {
	s := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	e := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)
	n := int(e.Sub(s).Hours() / 24)
	if n < 0 {
		return 0
	}
	return n
}

// Since parses ISO dates and defaults an empty end to now. An unparseable
// start yields 0; an unparseable end also falls back to now.
func Since(startISO, endISO string, now time.Time) int {
	start, err := time.Parse(dateLayout, startISO)
	if err != nil {
		return 0
	}
	end := now
	if endISO != "" {
		if t, err := time.Parse(dateLayout, endISO); err == nil {
			end = t
		}
	}
	return Days(start, end)
}

// Format renders n for display. 0 means "not yet trackable" and renders empty.
func Format(n int) string {
	switch {
	case n <= 0:
		return ""
	case n == 1:
		return "1 dia"
	default:
		return strconv.Itoa(n) + " dias"
	}
}

// Persist renders n the way the tracking column stores it.
func Persist(n int) string {
	if n <= 0 {
		return ""
	}
	return strconv.Itoa(n)
}
