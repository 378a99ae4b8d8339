package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/JPNeto01/okrplanner01-sub000/internal/analytics"
	"github.com/JPNeto01/okrplanner01-sub000/internal/contract"
	"github.com/JPNeto01/okrplanner01-sub000/internal/repository"
)

// ErrCompanyRequired is returned when a dashboard request lacks a company.
var ErrCompanyRequired = errors.New("dashboard request needs a company")

type dashboardService struct {
	objectives repository.ObjectiveRepo
	people     repository.PersonRepo
	observer   UseCaseObserver
}

func NewDashboardService(
	objectives repository.ObjectiveRepo,
	people repository.PersonRepo,
	observers ...UseCaseObserver,
) DashboardService {
	return &dashboardService{
		objectives: objectives,
		people:     people,
		observer:   useCaseObserverOrNoop(observers),
	}
}

func (s *dashboardService) BuildDashboard(ctx context.Context, req contract.DashboardRequest) (*contract.DashboardResponse, error) {
	start := time.Now()
	resp, err := s.build(ctx, req)
	observe(ctx, s.observer, "build_dashboard", start, err, map[string]any{
		"company": req.Company,
	})
	return resp, err
}

func (s *dashboardService) build(ctx context.Context, req contract.DashboardRequest) (*contract.DashboardResponse, error) {
	if req.Company == "" {
		return nil, ErrCompanyRequired
	}
	now := resolveNow(req.Now)

	forest, err := s.objectives.LoadForest(ctx, req.Company)
	if err != nil {
		return nil, fmt.Errorf("loading objectives: %w", err)
	}
	names, err := s.people.NamesByID(ctx, req.Company)
	if err != nil {
		return nil, fmt.Errorf("loading people: %w", err)
	}

	dashboard := analytics.Build(forest, names, analytics.Filter{
		ResponsibleID: req.ResponsibleID,
	}, now)

	return &contract.DashboardResponse{
		GeneratedAt: now,
		Company:     req.Company,
		Dashboard:   dashboard,
	}, nil
}
