package testutil

import (
	"database/sql"
	"testing"

	"github.com/JPNeto01/okrplanner01-sub000/internal/db"
	"github.com/stretchr/testify/require"
)

// NewTestDB opens an in-memory SQLite database with migrations applied.
// The database is closed when the test finishes.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })
	return database
}

