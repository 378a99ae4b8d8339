package service

import (
	"context"
	"time"

	"github.com/JPNeto01/okrplanner01-sub000/internal/domain"
	"github.com/JPNeto01/okrplanner01-sub000/internal/repository"
	"github.com/google/uuid"
)

type personService struct {
	people repository.PersonRepo
}

func NewPersonService(people repository.PersonRepo) PersonService {
	return &personService{people: people}
}

func (s *personService) Create(ctx context.Context, p *domain.Person) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	p.CreatedAt = time.Now().UTC()
	return s.people.Create(ctx, p)
}

func (s *personService) GetByID(ctx context.Context, id string) (*domain.Person, error) {
	return s.people.GetByID(ctx, id)
}

func (s *personService) ListByCompany(ctx context.Context, company string) ([]*domain.Person, error) {
	return s.people.ListByCompany(ctx, company)
}
