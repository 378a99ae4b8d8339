package repository

import (
	"context"
	"errors"
	"time"

	"github.com/JPNeto01/okrplanner01-sub000/internal/domain"
)

// ErrNotFound is returned when a requested entity does not exist.
var ErrNotFound = errors.New("not found")

type PersonRepo interface {
	Create(ctx context.Context, p *domain.Person) error
	GetByID(ctx context.Context, id string) (*domain.Person, error)
	ListByCompany(ctx context.Context, company string) ([]*domain.Person, error)
	// NamesByID returns the id→name map for one company, the shape the
	// analytics pipeline consumes.
	NamesByID(ctx context.Context, company string) (map[string]string, error)
}

type ObjectiveRepo interface {
	Create(ctx context.Context, o *domain.Objective) error
	GetByID(ctx context.Context, id string) (*domain.Objective, error)
	ListByCompany(ctx context.Context, company string) ([]*domain.Objective, error)
	Update(ctx context.Context, o *domain.Objective) error
	Delete(ctx context.Context, id string) error

	// LoadTree returns one objective with its key results and their tasks
	// nested, the snapshot shape the derivation engine consumes.
	LoadTree(ctx context.Context, id string) (*domain.Objective, error)
	// LoadForest returns every objective of a company as full trees.
	LoadForest(ctx context.Context, company string) ([]*domain.Objective, error)
}

type KeyResultRepo interface {
	Create(ctx context.Context, kr *domain.KeyResult) error
	GetByID(ctx context.Context, id string) (*domain.KeyResult, error)
	ListByObjective(ctx context.Context, objectiveID string) ([]*domain.KeyResult, error)
	Update(ctx context.Context, kr *domain.KeyResult) error
	// UpdateStatus writes the derived status snapshot back to the cache
	// columns. completedAt nil clears the stored timestamp.
	UpdateStatus(ctx context.Context, id string, status domain.KRStatus, completedAt *time.Time) error
	Delete(ctx context.Context, id string) error
}

type TaskRepo interface {
	Create(ctx context.Context, t *domain.Task) error
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	ListByKR(ctx context.Context, krID string) ([]*domain.Task, error)
	ListByObjective(ctx context.Context, objectiveID string) ([]*domain.Task, error)
	// ListBacklog returns the objective's tasks unattached to any KR.
	ListBacklog(ctx context.Context, objectiveID string) ([]*domain.Task, error)
	ListByResponsible(ctx context.Context, responsibleID string) ([]*domain.Task, error)
	Update(ctx context.Context, t *domain.Task) error
	Delete(ctx context.Context, id string) error
}
