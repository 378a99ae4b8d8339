package domain

import "time"

// KeyResult owns a set of tasks. Status and CompletedAt are a persisted cache
// of the status engine's output; they may lag behind task changes until the
// next recompute and must never be trusted by analytics.
type KeyResult struct {
	ID          string
	ObjectiveID string
	Title       string
	Status      KRStatus
	DueDate     *time.Time
	CompletedAt *time.Time

	// ResponsibleID references the person accountable for this key result.
	ResponsibleID *string

	CreatedAt time.Time
	UpdatedAt time.Time

	Tasks []Task
}
