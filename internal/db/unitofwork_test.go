package db_test

import (
	"context"
	"errors"
	"testing"

	"github.com/alexanderramin/lessonsmith/internal/db"
	"github.com/alexanderramin/lessonsmith/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const insertSequence = `INSERT INTO lesson_sequences (id, sport, grade, lesson_count, created_at)
	VALUES (?, '피구', '5학년', 3, '2026-03-02T09:00:00Z')`

const insertLesson = `INSERT INTO lesson_archive (id, title, sport, grade, sequence_id, lesson_number, created_at)
	VALUES (?, ?, '피구', '5학년', ?, ?, '2026-03-02T09:00:00Z')`

func openTestUoW(t *testing.T) *db.SQLiteUnitOfWork {
	t.Helper()
	database, err := db.OpenDB(db.MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return db.NewSQLiteUnitOfWork(database)
}

// countLessons reads outside the caller's transaction.
func countLessons(t *testing.T, uow *db.SQLiteUnitOfWork) int {
	t.Helper()
	var n int
	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		n = testutil.CountRows(t, tx, "lesson_archive")
		return nil
	})
	require.NoError(t, err)
	return n
}

func TestWithinTx_CommitsSequenceWithLessons(t *testing.T) {
	uow := openTestUoW(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		if _, err := tx.ExecContext(ctx, insertSequence, "seq1"); err != nil {
			return err
		}
		for i, title := range []string{"1차시", "2차시", "3차시"} {
			if _, err := tx.ExecContext(ctx, insertLesson, title, title, "seq1", i+1); err != nil {
				return err
			}
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 3, countLessons(t, uow))
}

func TestWithinTx_RollbackOnError(t *testing.T) {
	uow := openTestUoW(t)
	errStop := errors.New("deliberate failure")

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		if _, err := tx.ExecContext(ctx, insertSequence, "seq1"); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, insertLesson, "l1", "1차시", "seq1", 1); err != nil {
			return err
		}
		return errStop
	})
	require.ErrorIs(t, err, errStop)
	assert.Zero(t, countLessons(t, uow), "lesson should not exist after rollback")
}

func TestWithinTx_RollbackOnConstraintViolation(t *testing.T) {
	uow := openTestUoW(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		if _, err := tx.ExecContext(ctx, insertSequence, "seq1"); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, insertLesson, "l1", "1차시", "seq1", 1); err != nil {
			return err
		}
		// Same lesson number twice within one sequence.
		_, err := tx.ExecContext(ctx, insertLesson, "l2", "2차시", "seq1", 1)
		return err
	})
	require.Error(t, err)
	assert.Zero(t, countLessons(t, uow))
}

func TestWithinTx_RollbackOnPanic(t *testing.T) {
	uow := openTestUoW(t)

	assert.Panics(t, func() {
		_ = uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
			_, _ = tx.ExecContext(ctx, insertSequence, "seq1")
			_, _ = tx.ExecContext(ctx, insertLesson, "l1", "1차시", "seq1", 1)
			panic("boom")
		})
	})

	assert.Zero(t, countLessons(t, uow), "lesson should not exist after panic rollback")
}
