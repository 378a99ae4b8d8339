package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS people (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		email      TEXT NOT NULL DEFAULT '',
		company    TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS objectives (
		id             TEXT PRIMARY KEY,
		title          TEXT NOT NULL,
		company        TEXT NOT NULL DEFAULT '',
		due_date       TEXT,
		responsible_id TEXT NOT NULL REFERENCES people(id),
		coordinator_id TEXT REFERENCES people(id),
		created_at     TEXT NOT NULL,
		updated_at     TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_objectives_company ON objectives(company)`,

	`CREATE TABLE IF NOT EXISTS key_results (
		id             TEXT PRIMARY KEY,
		objective_id   TEXT NOT NULL REFERENCES objectives(id) ON DELETE CASCADE,
		title          TEXT NOT NULL,
		status         TEXT NOT NULL DEFAULT 'todo'
		               CHECK(status IN ('todo','in_progress','done')),
		due_date       TEXT,
		completed_at   TEXT,
		responsible_id TEXT REFERENCES people(id),
		created_at     TEXT NOT NULL,
		updated_at     TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_key_results_objective ON key_results(objective_id)`,

	`CREATE TABLE IF NOT EXISTS tasks (
		id             TEXT PRIMARY KEY,
		objective_id   TEXT NOT NULL REFERENCES objectives(id) ON DELETE CASCADE,
		kr_id          TEXT REFERENCES key_results(id) ON DELETE SET NULL,
		title          TEXT NOT NULL,
		status         TEXT NOT NULL DEFAULT 'todo'
		               CHECK(status IN ('backlog','todo','in_progress','done')),
		due_date       TEXT,
		completed_at   TEXT,
		responsible_id TEXT REFERENCES people(id),
		created_at     TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_tasks_objective ON tasks(objective_id)`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_kr ON tasks(kr_id)`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_responsible ON tasks(responsible_id)`,
}
