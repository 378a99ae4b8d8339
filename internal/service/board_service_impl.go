package service

import (
	"context"
	"errors"

	"github.com/JPNeto01/okrplanner01-sub000/internal/contract"
	"github.com/JPNeto01/okrplanner01-sub000/internal/domain"
	"github.com/JPNeto01/okrplanner01-sub000/internal/repository"
	"github.com/JPNeto01/okrplanner01-sub000/internal/status"
)

// ErrBoardScopeRequired is returned when a board request names neither a
// responsible nor an objective.
var ErrBoardScopeRequired = errors.New("board request needs a responsible or an objective")

type boardService struct {
	tasks repository.TaskRepo
}

func NewBoardService(tasks repository.TaskRepo) BoardService {
	return &boardService{tasks: tasks}
}

// MyTasks returns active tasks ordered most-urgent-first, annotated with
// their urgency category and days remaining. Backlog tasks never appear.
func (s *boardService) MyTasks(ctx context.Context, req contract.BoardRequest) (*contract.BoardResponse, error) {
	now := resolveNow(req.Now)

	var taskPtrs []*domain.Task
	var err error
	switch {
	case req.ResponsibleID != "":
		taskPtrs, err = s.tasks.ListByResponsible(ctx, req.ResponsibleID)
	case req.ObjectiveID != "":
		taskPtrs, err = s.tasks.ListByObjective(ctx, req.ObjectiveID)
	default:
		return nil, ErrBoardScopeRequired
	}
	if err != nil {
		return nil, err
	}

	var active []domain.Task
	for _, t := range taskPtrs {
		if t.InBacklog() {
			continue
		}
		if req.ObjectiveID != "" && t.ObjectiveID != req.ObjectiveID {
			continue
		}
		active = append(active, *t)
	}

	ordered := status.OrderByUrgency(active, now)
	resp := &contract.BoardResponse{GeneratedAt: now}
	for _, t := range ordered {
		resp.Tasks = append(resp.Tasks, contract.BoardTask{
			Task:          t,
			Urgency:       status.Classify(t.DueDate, t.Status, now),
			DaysRemaining: status.DaysRemaining(t.DueDate, now),
		})
	}
	return resp, nil
}

func (s *boardService) Backlog(ctx context.Context, req contract.BacklogRequest) (*contract.BacklogResponse, error) {
	taskPtrs, err := s.tasks.ListBacklog(ctx, req.ObjectiveID)
	if err != nil {
		return nil, err
	}
	resp := &contract.BacklogResponse{}
	for _, t := range taskPtrs {
		resp.Tasks = append(resp.Tasks, *t)
	}
	return resp, nil
}
