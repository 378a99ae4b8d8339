package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/JPNeto01/okrplanner01-sub000/internal/db"
	"github.com/JPNeto01/okrplanner01-sub000/internal/domain"
)

const keyResultColumns = `id, objective_id, title, status, due_date, completed_at, responsible_id, created_at, updated_at`

// SQLiteKeyResultRepo implements KeyResultRepo over SQLite. The status and
// completed_at columns are a cache of derived state; UpdateStatus is the only
// write path for them.
type SQLiteKeyResultRepo struct {
	db db.DBTX
}

func NewSQLiteKeyResultRepo(dbtx db.DBTX) *SQLiteKeyResultRepo {
	return &SQLiteKeyResultRepo{db: dbtx}
}

func (r *SQLiteKeyResultRepo) Create(ctx context.Context, kr *domain.KeyResult) error {
	query := `INSERT INTO key_results (` + keyResultColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		kr.ID,
		kr.ObjectiveID,
		kr.Title,
		string(kr.Status),
		nullableTimeToString(kr.DueDate, dateLayout),
		nullableTimeToString(kr.CompletedAt, time.RFC3339),
		nullableStrToValue(kr.ResponsibleID),
		kr.CreatedAt.Format(time.RFC3339),
		kr.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting key result: %w", err)
	}
	return nil
}

func (r *SQLiteKeyResultRepo) GetByID(ctx context.Context, id string) (*domain.KeyResult, error) {
	query := `SELECT ` + keyResultColumns + ` FROM key_results WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	kr, err := scanKeyResultRow(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("key result: %w", ErrNotFound)
		}
		return nil, err
	}
	return kr, nil
}

func (r *SQLiteKeyResultRepo) ListByObjective(ctx context.Context, objectiveID string) ([]*domain.KeyResult, error) {
	query := `SELECT ` + keyResultColumns + ` FROM key_results WHERE objective_id = ? ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, query, objectiveID)
	if err != nil {
		return nil, fmt.Errorf("listing key results: %w", err)
	}
	defer rows.Close()
	return scanKeyResults(rows)
}

func (r *SQLiteKeyResultRepo) Update(ctx context.Context, kr *domain.KeyResult) error {
	query := `UPDATE key_results SET title = ?, due_date = ?, responsible_id = ?, updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		kr.Title,
		nullableTimeToString(kr.DueDate, dateLayout),
		nullableStrToValue(kr.ResponsibleID),
		kr.UpdatedAt.Format(time.RFC3339),
		kr.ID,
	)
	if err != nil {
		return fmt.Errorf("updating key result: %w", err)
	}
	return requireAffected(res, "key result")
}

func (r *SQLiteKeyResultRepo) UpdateStatus(ctx context.Context, id string, status domain.KRStatus, completedAt *time.Time) error {
	query := `UPDATE key_results SET status = ?, completed_at = ?, updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		string(status),
		nullableTimeToString(completedAt, time.RFC3339),
		time.Now().UTC().Format(time.RFC3339),
		id,
	)
	if err != nil {
		return fmt.Errorf("updating key result status: %w", err)
	}
	return requireAffected(res, "key result")
}

func (r *SQLiteKeyResultRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM key_results WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting key result: %w", err)
	}
	return requireAffected(res, "key result")
}

func scanKeyResults(rows *sql.Rows) ([]*domain.KeyResult, error) {
	var krs []*domain.KeyResult
	for rows.Next() {
		kr, err := scanKeyResultRow(rows.Scan)
		if err != nil {
			return nil, err
		}
		krs = append(krs, kr)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating key results: %w", err)
	}
	return krs, nil
}

func scanKeyResultRow(scan func(dest ...any) error) (*domain.KeyResult, error) {
	var kr domain.KeyResult
	var statusStr, createdAtStr, updatedAtStr string
	var dueDateStr, completedAtStr, responsibleStr sql.NullString

	err := scan(&kr.ID, &kr.ObjectiveID, &kr.Title, &statusStr,
		&dueDateStr, &completedAtStr, &responsibleStr, &createdAtStr, &updatedAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning key result: %w", err)
	}

	kr.Status = domain.KRStatus(statusStr)
	kr.DueDate = parseNullableTime(dueDateStr, dateLayout)
	kr.CompletedAt = parseNullableTime(completedAtStr, time.RFC3339)
	kr.ResponsibleID = parseNullableStr(responsibleStr)
	if kr.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	if kr.UpdatedAt, err = time.Parse(time.RFC3339, updatedAtStr); err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return &kr, nil
}
