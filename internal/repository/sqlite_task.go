package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/JPNeto01/okrplanner01-sub000/internal/db"
	"github.com/JPNeto01/okrplanner01-sub000/internal/domain"
)

// taskColumns is the canonical SELECT column list for tasks.
const taskColumns = `id, objective_id, kr_id, title, status, due_date, completed_at, responsible_id, created_at`

// SQLiteTaskRepo implements TaskRepo over SQLite.
type SQLiteTaskRepo struct {
	db db.DBTX
}

func NewSQLiteTaskRepo(dbtx db.DBTX) *SQLiteTaskRepo {
	return &SQLiteTaskRepo{db: dbtx}
}

func (r *SQLiteTaskRepo) Create(ctx context.Context, t *domain.Task) error {
	query := `INSERT INTO tasks (` + taskColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		t.ID,
		t.ObjectiveID,
		nullableStrToValue(t.KRID),
		t.Title,
		string(t.Status),
		nullableTimeToString(t.DueDate, dateLayout),
		nullableTimeToString(t.CompletedAt, time.RFC3339),
		nullableStrToValue(t.ResponsibleID),
		t.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting task: %w", err)
	}
	return nil
}

func (r *SQLiteTaskRepo) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	var t domain.Task
	var statusStr, createdAtStr string
	var krIDStr, dueDateStr, completedAtStr, responsibleStr sql.NullString

	err := row.Scan(&t.ID, &t.ObjectiveID, &krIDStr, &t.Title, &statusStr,
		&dueDateStr, &completedAtStr, &responsibleStr, &createdAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("task: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning task: %w", err)
	}
	return populateTask(&t, statusStr, createdAtStr, krIDStr, dueDateStr, completedAtStr, responsibleStr)
}

func (r *SQLiteTaskRepo) ListByKR(ctx context.Context, krID string) ([]*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE kr_id = ? ORDER BY created_at`
	return r.list(ctx, query, krID)
}

func (r *SQLiteTaskRepo) ListByObjective(ctx context.Context, objectiveID string) ([]*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE objective_id = ? ORDER BY created_at`
	return r.list(ctx, query, objectiveID)
}

func (r *SQLiteTaskRepo) ListBacklog(ctx context.Context, objectiveID string) ([]*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE objective_id = ? AND kr_id IS NULL ORDER BY created_at`
	return r.list(ctx, query, objectiveID)
}

func (r *SQLiteTaskRepo) ListByResponsible(ctx context.Context, responsibleID string) ([]*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE responsible_id = ? ORDER BY created_at`
	return r.list(ctx, query, responsibleID)
}

func (r *SQLiteTaskRepo) Update(ctx context.Context, t *domain.Task) error {
	query := `UPDATE tasks SET kr_id = ?, title = ?, status = ?, due_date = ?,
		completed_at = ?, responsible_id = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		nullableStrToValue(t.KRID),
		t.Title,
		string(t.Status),
		nullableTimeToString(t.DueDate, dateLayout),
		nullableTimeToString(t.CompletedAt, time.RFC3339),
		nullableStrToValue(t.ResponsibleID),
		t.ID,
	)
	if err != nil {
		return fmt.Errorf("updating task: %w", err)
	}
	return requireAffected(res, "task")
}

func (r *SQLiteTaskRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting task: %w", err)
	}
	return requireAffected(res, "task")
}

func (r *SQLiteTaskRepo) list(ctx context.Context, query string, args ...any) ([]*domain.Task, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}
	defer rows.Close()
	return scanTasks(rows)
}

func scanTasks(rows *sql.Rows) ([]*domain.Task, error) {
	var tasks []*domain.Task
	for rows.Next() {
		var t domain.Task
		var statusStr, createdAtStr string
		var krIDStr, dueDateStr, completedAtStr, responsibleStr sql.NullString

		err := rows.Scan(&t.ID, &t.ObjectiveID, &krIDStr, &t.Title, &statusStr,
			&dueDateStr, &completedAtStr, &responsibleStr, &createdAtStr)
		if err != nil {
			return nil, fmt.Errorf("scanning task row: %w", err)
		}
		task, err := populateTask(&t, statusStr, createdAtStr, krIDStr, dueDateStr, completedAtStr, responsibleStr)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tasks: %w", err)
	}
	return tasks, nil
}

func populateTask(t *domain.Task, statusStr, createdAtStr string,
	krIDStr, dueDateStr, completedAtStr, responsibleStr sql.NullString) (*domain.Task, error) {

	t.Status = domain.TaskStatus(statusStr)
	t.KRID = parseNullableStr(krIDStr)
	t.DueDate = parseNullableTime(dueDateStr, dateLayout)
	t.CompletedAt = parseNullableTime(completedAtStr, time.RFC3339)
	t.ResponsibleID = parseNullableStr(responsibleStr)

	var err error
	if t.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	return t, nil
}

// requireAffected maps a zero-row write to ErrNotFound.
func requireAffected(res sql.Result, entity string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", entity, ErrNotFound)
	}
	return nil
}
