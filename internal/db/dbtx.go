package db

import (
	"context"
	"database/sql"
)

// DBTX is what archive repositories query through. Both the shared *sql.DB
// and a sequence-save *sql.Tx satisfy it, so the same repository code runs
// inside or outside a transaction.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

var (
	_ DBTX = (*sql.DB)(nil)
	_ DBTX = (*sql.Tx)(nil)
)
