package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/lessonsmith/internal/db"
)

// SQLiteSequenceRepo stores sequence headers. Deleting one cascades to its
// archived lessons.
type SQLiteSequenceRepo struct {
	db db.DBTX
}

func NewSQLiteSequenceRepo(conn db.DBTX) *SQLiteSequenceRepo {
	return &SQLiteSequenceRepo{db: conn}
}

func (r *SQLiteSequenceRepo) Create(ctx context.Context, s *SequenceRecord) error {
	query := `INSERT INTO lesson_sequences (id, sport, grade, lesson_count, created_at)
		VALUES (?, ?, ?, ?, ?)`
	if _, err := r.db.ExecContext(ctx, query, s.ID, s.Sport, s.Grade, s.LessonCount, s.CreatedAt); err != nil {
		return fmt.Errorf("inserting lesson sequence: %w", err)
	}
	return nil
}

func (r *SQLiteSequenceRepo) GetByID(ctx context.Context, id string) (*SequenceRecord, error) {
	var s SequenceRecord
	err := r.db.QueryRowContext(ctx,
		`SELECT id, sport, grade, lesson_count, created_at FROM lesson_sequences WHERE id = ?`, id,
	).Scan(&s.ID, &s.Sport, &s.Grade, &s.LessonCount, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("lesson sequence %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning lesson sequence: %w", err)
	}
	return &s, nil
}

func (r *SQLiteSequenceRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM lesson_sequences WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting lesson sequence: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("lesson sequence %s: %w", id, ErrNotFound)
	}
	return nil
}
