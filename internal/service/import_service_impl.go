package service

import (
	"context"
	"fmt"

	"github.com/JPNeto01/okrplanner01-sub000/internal/db"
	"github.com/JPNeto01/okrplanner01-sub000/internal/importer"
	"github.com/JPNeto01/okrplanner01-sub000/internal/repository"
)

type importService struct {
	uow db.UnitOfWork
}

// NewImportService builds an import service that persists each imported
// objective tree in a single transaction: a failed insert rolls back the
// whole file.
func NewImportService(uow db.UnitOfWork) ImportService {
	return &importService{uow: uow}
}

func (s *importService) ImportObjective(ctx context.Context, filePath string) (*ImportResult, error) {
	schema, err := importer.LoadImportSchema(filePath)
	if err != nil {
		return nil, fmt.Errorf("loading import file: %w", err)
	}
	return s.ImportObjectiveFromSchema(ctx, schema)
}

func (s *importService) ImportObjectiveFromSchema(ctx context.Context, schema *importer.ImportSchema) (*ImportResult, error) {
	if errs := importer.ValidateImportSchema(schema); len(errs) > 0 {
		return nil, formatValidationErrors(errs)
	}

	tree, err := importer.Convert(schema)
	if err != nil {
		return nil, fmt.Errorf("converting import schema: %w", err)
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		people := repository.NewSQLitePersonRepo(tx)
		objectives := repository.NewSQLiteObjectiveRepo(tx)
		krs := repository.NewSQLiteKeyResultRepo(tx)
		tasks := repository.NewSQLiteTaskRepo(tx)

		for _, p := range tree.People {
			if err := people.Create(ctx, p); err != nil {
				return fmt.Errorf("creating person %q: %w", p.Name, err)
			}
		}
		if err := objectives.Create(ctx, tree.Objective); err != nil {
			return fmt.Errorf("creating objective: %w", err)
		}
		for _, kr := range tree.KeyResults {
			if err := krs.Create(ctx, kr); err != nil {
				return fmt.Errorf("creating key result %q: %w", kr.Title, err)
			}
		}
		for _, t := range tree.Tasks {
			if err := tasks.Create(ctx, t); err != nil {
				return fmt.Errorf("creating task %q: %w", t.Title, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &ImportResult{
		Objective:      tree.Objective,
		PersonCount:    len(tree.People),
		KeyResultCount: len(tree.KeyResults),
		TaskCount:      len(tree.Tasks),
	}, nil
}

func formatValidationErrors(errs []error) error {
	msg := fmt.Sprintf("import validation failed (%d errors):", len(errs))
	for _, e := range errs {
		msg += "\n  - " + e.Error()
	}
	return fmt.Errorf("%s", msg)
}
