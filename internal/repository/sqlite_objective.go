package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/JPNeto01/okrplanner01-sub000/internal/db"
	"github.com/JPNeto01/okrplanner01-sub000/internal/domain"
)

const objectiveColumns = `id, title, company, due_date, responsible_id, coordinator_id, created_at, updated_at`

// SQLiteObjectiveRepo implements ObjectiveRepo over SQLite.
type SQLiteObjectiveRepo struct {
	db db.DBTX
}

func NewSQLiteObjectiveRepo(dbtx db.DBTX) *SQLiteObjectiveRepo {
	return &SQLiteObjectiveRepo{db: dbtx}
}

func (r *SQLiteObjectiveRepo) Create(ctx context.Context, o *domain.Objective) error {
	query := `INSERT INTO objectives (` + objectiveColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		o.ID,
		o.Title,
		o.Company,
		nullableTimeToString(o.DueDate, dateLayout),
		o.ResponsibleID,
		nullableStrToValue(o.CoordinatorID),
		o.CreatedAt.Format(time.RFC3339),
		o.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting objective: %w", err)
	}
	return nil
}

func (r *SQLiteObjectiveRepo) GetByID(ctx context.Context, id string) (*domain.Objective, error) {
	query := `SELECT ` + objectiveColumns + ` FROM objectives WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	o, err := scanObjectiveRow(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("objective: %w", ErrNotFound)
		}
		return nil, err
	}
	return o, nil
}

func (r *SQLiteObjectiveRepo) ListByCompany(ctx context.Context, company string) ([]*domain.Objective, error) {
	query := `SELECT ` + objectiveColumns + ` FROM objectives WHERE company = ? ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, query, company)
	if err != nil {
		return nil, fmt.Errorf("listing objectives: %w", err)
	}
	defer rows.Close()

	var objectives []*domain.Objective
	for rows.Next() {
		o, err := scanObjectiveRow(rows.Scan)
		if err != nil {
			return nil, err
		}
		objectives = append(objectives, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating objectives: %w", err)
	}
	return objectives, nil
}

func (r *SQLiteObjectiveRepo) Update(ctx context.Context, o *domain.Objective) error {
	query := `UPDATE objectives SET title = ?, due_date = ?, responsible_id = ?, coordinator_id = ?, updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		o.Title,
		nullableTimeToString(o.DueDate, dateLayout),
		o.ResponsibleID,
		nullableStrToValue(o.CoordinatorID),
		o.UpdatedAt.Format(time.RFC3339),
		o.ID,
	)
	if err != nil {
		return fmt.Errorf("updating objective: %w", err)
	}
	return requireAffected(res, "objective")
}

func (r *SQLiteObjectiveRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM objectives WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting objective: %w", err)
	}
	return requireAffected(res, "objective")
}

// LoadTree loads one objective with its key results and their tasks nested.
// Backlog tasks (nil kr_id) are not part of the tree.
func (r *SQLiteObjectiveRepo) LoadTree(ctx context.Context, id string) (*domain.Objective, error) {
	o, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := r.attachKeyResults(ctx, []*domain.Objective{o}); err != nil {
		return nil, err
	}
	return o, nil
}

// LoadForest loads every objective of a company as a full tree.
func (r *SQLiteObjectiveRepo) LoadForest(ctx context.Context, company string) ([]*domain.Objective, error) {
	objectives, err := r.ListByCompany(ctx, company)
	if err != nil {
		return nil, err
	}
	if err := r.attachKeyResults(ctx, objectives); err != nil {
		return nil, err
	}
	return objectives, nil
}

func (r *SQLiteObjectiveRepo) attachKeyResults(ctx context.Context, objectives []*domain.Objective) error {
	if len(objectives) == 0 {
		return nil
	}

	krRepo := NewSQLiteKeyResultRepo(r.db)
	taskRepo := NewSQLiteTaskRepo(r.db)

	for _, o := range objectives {
		krs, err := krRepo.ListByObjective(ctx, o.ID)
		if err != nil {
			return err
		}
		o.KeyResults = make([]domain.KeyResult, 0, len(krs))
		for _, kr := range krs {
			tasks, err := taskRepo.ListByKR(ctx, kr.ID)
			if err != nil {
				return err
			}
			kr.Tasks = make([]domain.Task, 0, len(tasks))
			for _, t := range tasks {
				kr.Tasks = append(kr.Tasks, *t)
			}
			o.KeyResults = append(o.KeyResults, *kr)
		}
	}
	return nil
}

func scanObjectiveRow(scan func(dest ...any) error) (*domain.Objective, error) {
	var o domain.Objective
	var createdAtStr, updatedAtStr string
	var dueDateStr, coordinatorStr sql.NullString

	err := scan(&o.ID, &o.Title, &o.Company, &dueDateStr,
		&o.ResponsibleID, &coordinatorStr, &createdAtStr, &updatedAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning objective: %w", err)
	}

	o.DueDate = parseNullableTime(dueDateStr, dateLayout)
	o.CoordinatorID = parseNullableStr(coordinatorStr)
	if o.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	if o.UpdatedAt, err = time.Parse(time.RFC3339, updatedAtStr); err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return &o, nil
}
