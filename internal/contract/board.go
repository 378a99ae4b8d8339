package contract

import (
	"time"

	"github.com/JPNeto01/okrplanner01-sub000/internal/domain"
)

// BoardRequest scopes a board listing. Now pins the evaluation date for
// reproducible output; nil means the wall clock.
type BoardRequest struct {
	Now           *time.Time
	ResponsibleID string
	ObjectiveID   string
}

// BoardTask is a task annotated with its derived urgency, ready for
// rendering without further date math.
type BoardTask struct {
	Task          domain.Task
	Urgency       domain.UrgencyCategory
	DaysRemaining *int
}

type BoardResponse struct {
	GeneratedAt time.Time
	Tasks       []BoardTask
}

type BacklogRequest struct {
	ObjectiveID string
}

type BacklogResponse struct {
	Tasks []domain.Task
}
