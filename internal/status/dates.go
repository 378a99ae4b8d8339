package status

import "time"

// StartOfDay strips the time-of-day component, keeping the location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DaysBetween returns the signed whole-day difference from one instant to
// another, truncating both to calendar dates first.
func DaysBetween(from, to time.Time) int {
	return int(StartOfDay(to).Sub(StartOfDay(from)).Hours() / 24)
}

// pastDue reports whether due falls strictly before today, calendar-wise.
func pastDue(due, today time.Time) bool {
	return DaysBetween(today, due) < 0
}
