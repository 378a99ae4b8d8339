package service

import (
	"context"
	"fmt"
	"time"

	"github.com/JPNeto01/okrplanner01-sub000/internal/domain"
	"github.com/JPNeto01/okrplanner01-sub000/internal/repository"
	"github.com/google/uuid"
)

type taskService struct {
	tasks repository.TaskRepo
	krs   KeyResultService
}

// NewTaskService wires task writes to key-result recomputation: any change
// that can move a KR's derived status triggers a recompute of the affected
// key results.
func NewTaskService(tasks repository.TaskRepo, krs KeyResultService) TaskService {
	return &taskService{tasks: tasks, krs: krs}
}

func (s *taskService) Create(ctx context.Context, t *domain.Task) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	t.CreatedAt = time.Now().UTC()
	if t.Status == "" {
		if t.KRID == nil {
			t.Status = domain.TaskBacklog
		} else {
			t.Status = domain.TaskTodo
		}
	}
	if err := s.tasks.Create(ctx, t); err != nil {
		return err
	}
	return s.recompute(ctx, t.KRID)
}

func (s *taskService) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	return s.tasks.GetByID(ctx, id)
}

func (s *taskService) ListByKR(ctx context.Context, krID string) ([]*domain.Task, error) {
	return s.tasks.ListByKR(ctx, krID)
}

func (s *taskService) Update(ctx context.Context, t *domain.Task) error {
	if err := s.tasks.Update(ctx, t); err != nil {
		return err
	}
	return s.recompute(ctx, t.KRID)
}

func (s *taskService) MarkDone(ctx context.Context, id string) error {
	t, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if t.IsDone() {
		return nil
	}
	now := time.Now().UTC()
	t.Status = domain.TaskDone
	t.CompletedAt = &now
	return s.Update(ctx, t)
}

func (s *taskService) Reopen(ctx context.Context, id string) error {
	t, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !t.IsDone() {
		return nil
	}
	t.Status = domain.TaskTodo
	t.CompletedAt = nil
	return s.Update(ctx, t)
}

func (s *taskService) MoveToKR(ctx context.Context, id, krID string) error {
	t, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return err
	}
	prevKR := t.KRID
	wasBacklog := t.InBacklog()
	t.KRID = &krID
	if wasBacklog {
		t.Status = domain.TaskTodo
	}
	if err := s.tasks.Update(ctx, t); err != nil {
		return err
	}
	if err := s.recompute(ctx, prevKR); err != nil {
		return err
	}
	return s.recompute(ctx, t.KRID)
}

func (s *taskService) MoveToBacklog(ctx context.Context, id string) error {
	t, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return err
	}
	prevKR := t.KRID
	t.KRID = nil
	t.Status = domain.TaskBacklog
	t.CompletedAt = nil
	if err := s.tasks.Update(ctx, t); err != nil {
		return err
	}
	return s.recompute(ctx, prevKR)
}

func (s *taskService) Delete(ctx context.Context, id string) error {
	t, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.tasks.Delete(ctx, id); err != nil {
		return err
	}
	return s.recompute(ctx, t.KRID)
}

func (s *taskService) recompute(ctx context.Context, krID *string) error {
	if krID == nil {
		return nil
	}
	if _, err := s.krs.Recompute(ctx, *krID); err != nil {
		return fmt.Errorf("recomputing key result %s: %w", *krID, err)
	}
	return nil
}
