package status

import (
	"time"

	"github.com/JPNeto01/okrplanner01-sub000/internal/domain"
)

// Classify assigns an urgency category from a task's due date and status.
// A done task is never urgent, regardless of date. The day thresholds are
// fixed: list colors and badges key off the exact counts.
func Classify(dueDate *time.Time, st domain.TaskStatus, today time.Time) domain.UrgencyCategory {
	if st == domain.TaskDone {
		return domain.UrgencyCompleted
	}
	if dueDate == nil {
		return domain.UrgencyNoDueDate
	}

	switch diff := DaysBetween(today, *dueDate); {
	case diff < 0:
		return domain.UrgencyOverdue
	case diff == 0:
		return domain.UrgencyDueToday
	case diff == 1:
		return domain.UrgencyDueIn1Day
	case diff == 2:
		return domain.UrgencyDueIn2Days
	case diff == 3:
		return domain.UrgencyDueIn3Days
	case diff <= 5:
		return domain.UrgencyAttention
	default:
		return domain.UrgencyOK
	}
}

// DaysRemaining returns the signed day count to the due date ("3 days left",
// "-2" = two days overdue), or nil when the task has no due date.
func DaysRemaining(dueDate *time.Time, today time.Time) *int {
	if dueDate == nil {
		return nil
	}
	d := DaysBetween(today, *dueDate)
	return &d
}
