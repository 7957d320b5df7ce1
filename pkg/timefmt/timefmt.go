// Package timefmt renders event timestamps in the human-readable form shown
// on the dashboard, e.g. "1st April 2021 - 9:30 PM UTC".
package timefmt

import (
	"fmt"
	"time"
)

const layout = "January 2006 - 3:04 PM"

// Ordinal returns the English ordinal suffix for a day of the month.
// Values outside 1..31 get "th".
func Ordinal(day int) string {
	if day < 1 || day > 31 {
		return "th"
	}
	if (day >= 4 && day <= 20) || (day >= 24 && day <= 30) {
		return "th"
	}
	switch day % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	}
	return "th"
}

// Format renders t in UTC with an ordinal day.
func Format(t time.Time) string {
	t = t.UTC()
	return fmt.Sprintf("%d%s %s UTC", t.Day(), Ordinal(t.Day()), t.Format(layout))
}
