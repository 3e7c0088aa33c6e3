package order

import (
	"fmt"
	"time"
)

// FormatRelativeAge renders how long ago ts was, relative to now.
//
// Buckets:
//   - under an hour: "N minute(s) ago"
//   - under a day: "N hour(s) ago"
//   - under two days: "Yesterday"
//   - otherwise the calendar date, "Jan 2", with ", 2006" appended when the
//     year differs from now's
//
// Counts are floored; the unit is singular only when the count is exactly 1.
// Timestamps after now are treated as zero age. Dates are rendered in now's location.
func FormatRelativeAge(ts, now time.Time) string {
	age := max(now.Sub(ts), 0)

	switch {
	case age < time.Hour:
		return agoString(int(age/time.Minute), "minute")
	case age < 24*time.Hour:
		return agoString(int(age/time.Hour), "hour")
	case age < 48*time.Hour:
		return "Yesterday"
	}

	local := ts.In(now.Location())
	if local.Year() != now.Year() {
		return local.Format("Jan 2, 2006")
	}
	return local.Format("Jan 2")
}

// FormatFullDate renders the detail view timestamp, e.g. "March 4, 2026 at 3:07 PM".
func FormatFullDate(ts time.Time, loc *time.Location) string {
	if loc != nil {
		ts = ts.In(loc)
	}
	return ts.Format("January 2, 2006 at 3:04 PM")
}

func agoString(n int, unit string) string {
	if n != 1 {
		unit += "s"
	}
	return fmt.Sprintf("%d %s ago", n, unit)
}
