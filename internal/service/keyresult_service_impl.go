package service

import (
	"context"
	"fmt"
	"time"

	"github.com/JPNeto01/okrplanner01-sub000/internal/domain"
	"github.com/JPNeto01/okrplanner01-sub000/internal/repository"
	"github.com/JPNeto01/okrplanner01-sub000/internal/status"
	"github.com/google/uuid"
)

type keyResultService struct {
	krs   repository.KeyResultRepo
	tasks repository.TaskRepo
}

func NewKeyResultService(krs repository.KeyResultRepo, tasks repository.TaskRepo) KeyResultService {
	return &keyResultService{krs: krs, tasks: tasks}
}

func (s *keyResultService) Create(ctx context.Context, kr *domain.KeyResult) error {
	if kr.ID == "" {
		kr.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	kr.CreatedAt = now
	kr.UpdatedAt = now
	if kr.Status == "" {
		kr.Status = domain.KRTodo
	}
	return s.krs.Create(ctx, kr)
}

func (s *keyResultService) GetByID(ctx context.Context, id string) (*domain.KeyResult, error) {
	return s.krs.GetByID(ctx, id)
}

func (s *keyResultService) ListByObjective(ctx context.Context, objectiveID string) ([]*domain.KeyResult, error) {
	return s.krs.ListByObjective(ctx, objectiveID)
}

func (s *keyResultService) Update(ctx context.Context, kr *domain.KeyResult) error {
	kr.UpdatedAt = time.Now().UTC()
	return s.krs.Update(ctx, kr)
}

func (s *keyResultService) Delete(ctx context.Context, id string) error {
	return s.krs.Delete(ctx, id)
}

func (s *keyResultService) Recompute(ctx context.Context, id string) (domain.KRStatus, error) {
	kr, err := s.krs.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	taskPtrs, err := s.tasks.ListByKR(ctx, id)
	if err != nil {
		return "", fmt.Errorf("loading tasks for key result %s: %w", id, err)
	}
	tasks := make([]domain.Task, len(taskPtrs))
	for i, t := range taskPtrs {
		tasks[i] = *t
	}

	now := time.Now().UTC()
	d := status.DeriveKR(tasks, kr.CompletedAt, now)
	completedAt := kr.CompletedAt
	if d.StampCompletedAt {
		completedAt = completionTime(tasks, now)
	}
	if d.ClearCompletedAt {
		completedAt = nil
	}
	if err := s.krs.UpdateStatus(ctx, id, d.Status, completedAt); err != nil {
		return "", err
	}
	return d.Status, nil
}

// completionTime is the latest task completion, falling back to now when no
// task carries a timestamp.
func completionTime(tasks []domain.Task, now time.Time) *time.Time {
	var latest *time.Time
	for i := range tasks {
		at := tasks[i].CompletedAt
		if at != nil && (latest == nil || at.After(*latest)) {
			latest = at
		}
	}
	if latest == nil {
		return &now
	}
	return latest
}
