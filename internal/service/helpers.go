package service

import "time"

// resolveNow returns the pinned evaluation time or the wall clock in UTC.
func resolveNow(pinned *time.Time) time.Time {
	if pinned != nil {
		return pinned.UTC()
	}
	return time.Now().UTC()
}
