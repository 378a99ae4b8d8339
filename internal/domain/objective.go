package domain

import "time"

type Objective struct {
	ID            string
	Title         string
	Company       string
	DueDate       *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
	ResponsibleID string
	CoordinatorID *string

	KeyResults []KeyResult
}

// AllTasks returns the union of every key result's tasks. Backlog tasks
// (nil KRID) never appear here: they count only toward backlog views.
func (o *Objective) AllTasks() []Task {
	var tasks []Task
	for _, kr := range o.KeyResults {
		tasks = append(tasks, kr.Tasks...)
	}
	return tasks
}
