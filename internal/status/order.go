package status

import (
	"sort"
	"time"

	"github.com/JPNeto01/okrplanner01-sub000/internal/domain"
)

// urgencyRank is the fixed category sort table: overdue first, completed last.
var urgencyRank = map[domain.UrgencyCategory]int{
	domain.UrgencyOverdue:    0,
	domain.UrgencyDueToday:   1,
	domain.UrgencyDueIn1Day:  2,
	domain.UrgencyDueIn2Days: 3,
	domain.UrgencyDueIn3Days: 4,
	domain.UrgencyAttention:  5,
	domain.UrgencyOK:         6,
	domain.UrgencyNoDueDate:  7,
	domain.UrgencyCompleted:  8,
}

// OrderByUrgency returns a new slice sorted by the deterministic rules:
// 1. Urgency category rank (overdue first, completed last)
// 2. Due date: earliest first, nil after any dated task in the same category
// 3. Title: case-sensitive lexical ascending
// The input slice is never modified, and the order is idempotent.
func OrderByUrgency(tasks []domain.Task, today time.Time) []domain.Task {
	out := make([]domain.Task, len(tasks))
	copy(out, tasks)

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]

		ra := urgencyRank[Classify(a.DueDate, a.Status, today)]
		rb := urgencyRank[Classify(b.DueDate, b.Status, today)]
		if ra != rb {
			return ra < rb
		}

		if (a.DueDate == nil) != (b.DueDate == nil) {
			return a.DueDate != nil // non-nil before nil
		}
		if a.DueDate != nil && b.DueDate != nil {
			da, db := StartOfDay(*a.DueDate), StartOfDay(*b.DueDate)
			if !da.Equal(db) {
				return da.Before(db)
			}
		}

		return a.Title < b.Title
	})

	return out
}
