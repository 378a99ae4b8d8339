package status

import (
	"time"

	"github.com/JPNeto01/okrplanner01-sub000/internal/domain"
)

// KRDerivation is the status engine's verdict on a key result.
type KRDerivation struct {
	Status domain.KRStatus

	// StampCompletedAt signals the caller to record the completion time now:
	// the KR just became done and carries no prior timestamp.
	StampCompletedAt bool

	// ClearCompletedAt signals that status regressed away from done and the
	// stored timestamp no longer holds.
	ClearCompletedAt bool
}

// DeriveKR computes a key result's lifecycle status from its live task set.
// prevCompletedAt is the stored completion timestamp; it only decides whether
// a stamp or a clear should be signaled, never the status itself.
func DeriveKR(tasks []domain.Task, prevCompletedAt *time.Time, today time.Time) KRDerivation {
	st := deriveKRStatus(tasks, today)
	return KRDerivation{
		Status:           st,
		StampCompletedAt: st == domain.KRDone && prevCompletedAt == nil,
		ClearCompletedAt: st != domain.KRDone && prevCompletedAt != nil,
	}
}

func deriveKRStatus(tasks []domain.Task, today time.Time) domain.KRStatus {
	if len(tasks) == 0 {
		return domain.KRTodo
	}

	done := 0
	inProgress := false
	overdue := false
	for _, t := range tasks {
		if t.IsDone() {
			done++
			continue
		}
		if t.Status == domain.TaskInProgress {
			inProgress = true
		}
		if t.DueDate != nil && pastDue(*t.DueDate, today) {
			overdue = true
		}
	}

	if done == len(tasks) {
		return domain.KRDone
	}
	// Work that has started or slipped promotes the KR even when nobody
	// moved its tasks; a silently stale "to do" would hide the slippage.
	if inProgress || overdue || done > 0 {
		return domain.KRInProgress
	}
	return domain.KRTodo
}

// Progress is the done fraction of a task set as a percentage in [0,100].
// An empty set yields 0, never a division by zero.
func Progress(tasks []domain.Task) float64 {
	if len(tasks) == 0 {
		return 0
	}
	done := 0
	for _, t := range tasks {
		if t.IsDone() {
			done++
		}
	}
	return float64(done) / float64(len(tasks)) * 100
}
