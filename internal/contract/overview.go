package contract

import (
	"time"

	"github.com/JPNeto01/okrplanner01-sub000/internal/domain"
	"github.com/JPNeto01/okrplanner01-sub000/internal/status"
)

// KeyResultView pairs a key result with the numbers derived from its
// current task set.
type KeyResultView struct {
	KeyResult domain.KeyResult
	Status    domain.KRStatus
	Progress  float64
	TaskCount int
	DoneCount int
}

// ObjectiveOverview is the full derived picture of one objective tree.
type ObjectiveOverview struct {
	Objective       *domain.Objective
	Derivation      status.ObjectiveDerivation
	Overdue         bool
	ResponsibleName string
	KeyResults      []KeyResultView
	Backlog         []domain.Task
}

// OverviewRequest asks for one objective's overview as of Now.
type OverviewRequest struct {
	ObjectiveID string
	Now         *time.Time
}
