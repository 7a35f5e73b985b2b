package testutil

import (
	"context"
	"database/sql"
	"testing"

	"github.com/alexanderramin/lessonsmith/internal/db"
	"github.com/stretchr/testify/require"
)

// NewTestDB opens a migrated in-memory lesson archive that is closed when
// the test completes.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(db.MemoryPath)
	require.NoError(t, err, "opening test archive")
	t.Cleanup(func() { database.Close() })
	return database
}

// NewTestUoW creates a UnitOfWork backed by the given test database.
func NewTestUoW(database *sql.DB) db.UnitOfWork {
	return db.NewSQLiteUnitOfWork(database)
}

// CountRows counts the rows of an archive table: lesson_archive or
// lesson_sequences.
func CountRows(t *testing.T, conn db.DBTX, table string) int {
	t.Helper()
	var query string
	switch table {
	case "lesson_archive", "lesson_sequences":
		query = "SELECT COUNT(*) FROM " + table
	default:
		t.Fatalf("unknown archive table %q", table)
	}
	var n int
	require.NoError(t, conn.QueryRowContext(context.Background(), query).Scan(&n))
	return n
}
