package service

import (
	"context"
	"fmt"
	"time"

	"github.com/JPNeto01/okrplanner01-sub000/internal/contract"
	"github.com/JPNeto01/okrplanner01-sub000/internal/domain"
	"github.com/JPNeto01/okrplanner01-sub000/internal/repository"
	"github.com/JPNeto01/okrplanner01-sub000/internal/status"
	"github.com/google/uuid"
)

type objectiveService struct {
	objectives repository.ObjectiveRepo
	tasks      repository.TaskRepo
	people     repository.PersonRepo
	observer   UseCaseObserver
}

func NewObjectiveService(
	objectives repository.ObjectiveRepo,
	tasks repository.TaskRepo,
	people repository.PersonRepo,
	observers ...UseCaseObserver,
) ObjectiveService {
	return &objectiveService{
		objectives: objectives,
		tasks:      tasks,
		people:     people,
		observer:   useCaseObserverOrNoop(observers),
	}
}

func (s *objectiveService) Create(ctx context.Context, o *domain.Objective) error {
	if o.ID == "" {
		o.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	o.CreatedAt = now
	o.UpdatedAt = now
	return s.objectives.Create(ctx, o)
}

func (s *objectiveService) GetByID(ctx context.Context, id string) (*domain.Objective, error) {
	return s.objectives.GetByID(ctx, id)
}

func (s *objectiveService) ListByCompany(ctx context.Context, company string) ([]*domain.Objective, error) {
	return s.objectives.ListByCompany(ctx, company)
}

func (s *objectiveService) Update(ctx context.Context, o *domain.Objective) error {
	o.UpdatedAt = time.Now().UTC()
	return s.objectives.Update(ctx, o)
}

func (s *objectiveService) Delete(ctx context.Context, id string) error {
	return s.objectives.Delete(ctx, id)
}

func (s *objectiveService) Overview(ctx context.Context, req contract.OverviewRequest) (*contract.ObjectiveOverview, error) {
	start := time.Now()
	overview, err := s.buildOverview(ctx, req)
	observe(ctx, s.observer, "objective_overview", start, err, map[string]any{
		"objective_id": req.ObjectiveID,
	})
	return overview, err
}

func (s *objectiveService) buildOverview(ctx context.Context, req contract.OverviewRequest) (*contract.ObjectiveOverview, error) {
	now := resolveNow(req.Now)

	tree, err := s.objectives.LoadTree(ctx, req.ObjectiveID)
	if err != nil {
		return nil, err
	}
	backlog, err := s.tasks.ListBacklog(ctx, req.ObjectiveID)
	if err != nil {
		return nil, fmt.Errorf("loading backlog: %w", err)
	}

	d := status.DeriveObjective(tree, now)

	overview := &contract.ObjectiveOverview{
		Objective:  tree,
		Derivation: d,
		Overdue:    status.ObjectiveOverdue(tree, d, now),
	}
	for _, t := range backlog {
		overview.Backlog = append(overview.Backlog, *t)
	}
	for _, kr := range tree.KeyResults {
		done := 0
		for _, t := range kr.Tasks {
			if t.IsDone() {
				done++
			}
		}
		overview.KeyResults = append(overview.KeyResults, contract.KeyResultView{
			KeyResult: kr,
			Status:    status.DeriveKR(kr.Tasks, kr.CompletedAt, now).Status,
			Progress:  status.Progress(kr.Tasks),
			TaskCount: len(kr.Tasks),
			DoneCount: done,
		})
	}

	if p, err := s.people.GetByID(ctx, tree.ResponsibleID); err == nil {
		overview.ResponsibleName = p.Name
	}

	return overview, nil
}
