package service

import (
	"context"

	"github.com/JPNeto01/okrplanner01-sub000/internal/contract"
	"github.com/JPNeto01/okrplanner01-sub000/internal/domain"
	"github.com/JPNeto01/okrplanner01-sub000/internal/importer"
)

type PersonService interface {
	Create(ctx context.Context, p *domain.Person) error
	GetByID(ctx context.Context, id string) (*domain.Person, error)
	ListByCompany(ctx context.Context, company string) ([]*domain.Person, error)
}

type ObjectiveService interface {
	Create(ctx context.Context, o *domain.Objective) error
	GetByID(ctx context.Context, id string) (*domain.Objective, error)
	ListByCompany(ctx context.Context, company string) ([]*domain.Objective, error)
	Update(ctx context.Context, o *domain.Objective) error
	Delete(ctx context.Context, id string) error

	// Overview derives the full status picture of one objective tree.
	Overview(ctx context.Context, req contract.OverviewRequest) (*contract.ObjectiveOverview, error)
}

type KeyResultService interface {
	Create(ctx context.Context, kr *domain.KeyResult) error
	GetByID(ctx context.Context, id string) (*domain.KeyResult, error)
	ListByObjective(ctx context.Context, objectiveID string) ([]*domain.KeyResult, error)
	Update(ctx context.Context, kr *domain.KeyResult) error
	Delete(ctx context.Context, id string) error

	// Recompute re-derives the key result's status from its current task
	// set and writes the result back to the cache columns.
	Recompute(ctx context.Context, id string) (domain.KRStatus, error)
}

type TaskService interface {
	Create(ctx context.Context, t *domain.Task) error
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	ListByKR(ctx context.Context, krID string) ([]*domain.Task, error)
	Update(ctx context.Context, t *domain.Task) error
	MarkDone(ctx context.Context, id string) error
	Reopen(ctx context.Context, id string) error
	// MoveToKR attaches a task to a key result; backlog tasks become todo.
	MoveToKR(ctx context.Context, id, krID string) error
	// MoveToBacklog detaches a task from its key result.
	MoveToBacklog(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

type BoardService interface {
	MyTasks(ctx context.Context, req contract.BoardRequest) (*contract.BoardResponse, error)
	Backlog(ctx context.Context, req contract.BacklogRequest) (*contract.BacklogResponse, error)
}

type DashboardService interface {
	BuildDashboard(ctx context.Context, req contract.DashboardRequest) (*contract.DashboardResponse, error)
}

// ImportResult holds the outcome of an objective import.
type ImportResult struct {
	Objective      *domain.Objective
	PersonCount    int
	KeyResultCount int
	TaskCount      int
}

type ImportService interface {
	ImportObjective(ctx context.Context, filePath string) (*ImportResult, error)
	ImportObjectiveFromSchema(ctx context.Context, schema *importer.ImportSchema) (*ImportResult, error)
}
