package db

import (
	"context"
	"database/sql"
)

// DBTX is the slice of database/sql shared by *sql.DB and *sql.Tx.
// Repositories take a DBTX so the same code runs standalone or inside a
// unit of work; the import pipeline relies on this to build tx-scoped
// repositories.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

var (
	_ DBTX = (*sql.DB)(nil)
	_ DBTX = (*sql.Tx)(nil)
)
