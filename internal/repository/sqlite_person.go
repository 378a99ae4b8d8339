package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/JPNeto01/okrplanner01-sub000/internal/db"
	"github.com/JPNeto01/okrplanner01-sub000/internal/domain"
)

const personColumns = `id, name, email, company, created_at`

// SQLitePersonRepo implements PersonRepo over SQLite.
type SQLitePersonRepo struct {
	db db.DBTX
}

func NewSQLitePersonRepo(dbtx db.DBTX) *SQLitePersonRepo {
	return &SQLitePersonRepo{db: dbtx}
}

func (r *SQLitePersonRepo) Create(ctx context.Context, p *domain.Person) error {
	query := `INSERT INTO people (` + personColumns + `) VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		p.ID,
		p.Name,
		p.Email,
		p.Company,
		p.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting person: %w", err)
	}
	return nil
}

func (r *SQLitePersonRepo) GetByID(ctx context.Context, id string) (*domain.Person, error) {
	query := `SELECT ` + personColumns + ` FROM people WHERE id = ?`
	return r.scanPerson(r.db.QueryRowContext(ctx, query, id))
}

func (r *SQLitePersonRepo) ListByCompany(ctx context.Context, company string) ([]*domain.Person, error) {
	query := `SELECT ` + personColumns + ` FROM people WHERE company = ? ORDER BY name`
	rows, err := r.db.QueryContext(ctx, query, company)
	if err != nil {
		return nil, fmt.Errorf("listing people: %w", err)
	}
	defer rows.Close()

	var people []*domain.Person
	for rows.Next() {
		var p domain.Person
		var createdAtStr string
		if err := rows.Scan(&p.ID, &p.Name, &p.Email, &p.Company, &createdAtStr); err != nil {
			return nil, fmt.Errorf("scanning person row: %w", err)
		}
		if p.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr); err != nil {
			return nil, fmt.Errorf("parsing created_at: %w", err)
		}
		people = append(people, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating people: %w", err)
	}
	return people, nil
}

func (r *SQLitePersonRepo) NamesByID(ctx context.Context, company string) (map[string]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name FROM people WHERE company = ?`, company)
	if err != nil {
		return nil, fmt.Errorf("listing person names: %w", err)
	}
	defer rows.Close()

	names := make(map[string]string)
	for rows.Next() {
		var id, name string
		if err := rows.Scan(&id, &name); err != nil {
			return nil, fmt.Errorf("scanning person name row: %w", err)
		}
		names[id] = name
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating person names: %w", err)
	}
	return names, nil
}

func (r *SQLitePersonRepo) scanPerson(row *sql.Row) (*domain.Person, error) {
	var p domain.Person
	var createdAtStr string
	err := row.Scan(&p.ID, &p.Name, &p.Email, &p.Company, &createdAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("person: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning person: %w", err)
	}
	if p.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	return &p, nil
}
