package domain

import "time"

type Task struct {
	ID     string
	Title  string
	Status TaskStatus

	// DueDate is a calendar date; the time component is ignored everywhere.
	DueDate     *time.Time
	CreatedAt   time.Time
	CompletedAt *time.Time

	ResponsibleID *string
	ObjectiveID   string

	// KRID is nil for tasks sitting in the objective's backlog,
	// unattached to any key result.
	KRID *string
}

func (t *Task) IsDone() bool {
	return t.Status == TaskDone
}

// InBacklog reports whether the task is unattached to a key result.
func (t *Task) InBacklog() bool {
	return t.KRID == nil
}
