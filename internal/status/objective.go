package status

import (
	"time"

	"github.com/JPNeto01/okrplanner01-sub000/internal/domain"
)

// ObjectiveDerivation holds the reporting fields computed fresh from an
// objective's live KR/task tree. Persisted status caches are never consulted.
type ObjectiveDerivation struct {
	// ProgressByTasks is the done percentage over all KR-attached tasks.
	ProgressByTasks float64

	// KRCompletionRate is the percentage of key results that are complete.
	// A KR counts as complete only with at least one task and all tasks done.
	KRCompletionRate float64

	// CalculatedStatus is the coarse two-state projection for reporting:
	// done at 100% task progress, in progress otherwise.
	CalculatedStatus domain.ObjectiveStatus

	OpenTasksCount    int
	OverdueTasksCount int

	// CompletedDate is the latest task completion timestamp, defined only
	// when every key result is non-empty and fully done. It is never
	// backfilled from a due date.
	CompletedDate *time.Time
}

// KRComplete reports whether a key result counts as completed: at least one
// task, and every task done.
func KRComplete(kr *domain.KeyResult) bool {
	if len(kr.Tasks) == 0 {
		return false
	}
	for i := range kr.Tasks {
		if !kr.Tasks[i].IsDone() {
			return false
		}
	}
	return true
}

// DeriveObjective computes the derived reporting fields for one objective.
// Backlog tasks (nil KRID) are excluded from every field here; they count
// only toward backlog views.
func DeriveObjective(o *domain.Objective, today time.Time) ObjectiveDerivation {
	tasks := o.AllTasks()

	d := ObjectiveDerivation{
		ProgressByTasks:  Progress(tasks),
		CalculatedStatus: domain.ObjectiveInProgress,
	}
	if d.ProgressByTasks == 100 {
		d.CalculatedStatus = domain.ObjectiveDone
	}

	if len(o.KeyResults) > 0 {
		completed := 0
		for i := range o.KeyResults {
			if KRComplete(&o.KeyResults[i]) {
				completed++
			}
		}
		d.KRCompletionRate = float64(completed) / float64(len(o.KeyResults)) * 100
	}

	for _, t := range tasks {
		if t.IsDone() {
			continue
		}
		d.OpenTasksCount++
		if t.DueDate != nil && pastDue(*t.DueDate, today) {
			d.OverdueTasksCount++
		}
	}

	// KRCompletionRate hits 100 only when there is at least one KR and each
	// one is non-empty and fully done, so the rate alone gates the stamp.
	if d.KRCompletionRate == 100 {
		var latest *time.Time
		for _, t := range tasks {
			if t.CompletedAt != nil && (latest == nil || t.CompletedAt.After(*latest)) {
				latest = t.CompletedAt
			}
		}
		d.CompletedDate = latest
	}

	return d
}

// ObjectiveOverdue reports whether the objective's due date has passed while
// its calculated status is still in progress. Critical ranking keys off this
// predicate; calculated status itself stays two-state.
func ObjectiveOverdue(o *domain.Objective, d ObjectiveDerivation, today time.Time) bool {
	return o.DueDate != nil &&
		d.CalculatedStatus != domain.ObjectiveDone &&
		pastDue(*o.DueDate, today)
}
