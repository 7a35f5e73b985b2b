package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/lessonsmith/internal/db"
	"github.com/alexanderramin/lessonsmith/internal/domain"
)

const lessonColumns = `id, title, sport, grade, engine, structure_id, activity_id, score,
	sequence_id, lesson_number, body, created_at`

// SQLiteLessonArchiveRepo implements LessonArchiveRepo using a SQLite database.
type SQLiteLessonArchiveRepo struct {
	db db.DBTX
}

// NewSQLiteLessonArchiveRepo creates a repo over a *sql.DB or a transaction.
func NewSQLiteLessonArchiveRepo(conn db.DBTX) *SQLiteLessonArchiveRepo {
	return &SQLiteLessonArchiveRepo{db: conn}
}

func (r *SQLiteLessonArchiveRepo) Create(ctx context.Context, l *domain.ArchivedLesson) error {
	query := `INSERT INTO lesson_archive (` + lessonColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		l.ID,
		l.Title,
		l.Sport,
		l.Grade,
		domain.CoalesceStr(string(l.Engine), string(domain.EngineModular)),
		l.StructureID,
		l.ActivityID,
		l.Score,
		nullableStringToValue(l.SequenceID),
		nullableIntToValue(l.LessonNumber),
		l.Body,
		formatTime(l.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting archived lesson: %w", err)
	}
	return nil
}

func (r *SQLiteLessonArchiveRepo) GetByID(ctx context.Context, id string) (*domain.ArchivedLesson, error) {
	query := `SELECT ` + lessonColumns + ` FROM lesson_archive WHERE id = ?`
	l, err := scanLesson(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("archived lesson %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning archived lesson: %w", err)
	}
	return l, nil
}

func (r *SQLiteLessonArchiveRepo) List(ctx context.Context, limit int) ([]*domain.ArchivedLesson, error) {
	query := `SELECT ` + lessonColumns + ` FROM lesson_archive
		ORDER BY created_at DESC, rowid DESC LIMIT ?`
	rows, err := r.db.QueryContext(ctx, query, sqlLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("listing archived lessons: %w", err)
	}
	defer rows.Close()
	return scanLessons(rows)
}

func (r *SQLiteLessonArchiveRepo) ListBySequence(ctx context.Context, sequenceID string) ([]*domain.ArchivedLesson, error) {
	query := `SELECT ` + lessonColumns + ` FROM lesson_archive
		WHERE sequence_id = ? ORDER BY lesson_number`
	rows, err := r.db.QueryContext(ctx, query, sequenceID)
	if err != nil {
		return nil, fmt.Errorf("listing lessons by sequence: %w", err)
	}
	defer rows.Close()
	return scanLessons(rows)
}

func (r *SQLiteLessonArchiveRepo) RecentTitles(ctx context.Context, limit int) ([]string, error) {
	query := `SELECT title FROM lesson_archive
		GROUP BY title
		ORDER BY MAX(created_at) DESC, MAX(rowid) DESC
		LIMIT ?`
	rows, err := r.db.QueryContext(ctx, query, sqlLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("listing recent titles: %w", err)
	}
	defer rows.Close()

	var titles []string
	for rows.Next() {
		var title string
		if err := rows.Scan(&title); err != nil {
			return nil, fmt.Errorf("scanning title: %w", err)
		}
		titles = append(titles, title)
	}
	return titles, rows.Err()
}

func (r *SQLiteLessonArchiveRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM lesson_archive WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting archived lesson: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking deleted rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("archived lesson %s: %w", id, ErrNotFound)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanLesson(row rowScanner) (*domain.ArchivedLesson, error) {
	var l domain.ArchivedLesson
	var engine, createdAt string
	var seqID sql.NullString
	var lessonNumber sql.NullInt64

	err := row.Scan(
		&l.ID, &l.Title, &l.Sport, &l.Grade, &engine, &l.StructureID, &l.ActivityID, &l.Score,
		&seqID, &lessonNumber, &l.Body, &createdAt,
	)
	if err != nil {
		return nil, err
	}
	l.Engine = domain.Engine(engine)
	l.SequenceID = stringPtr(seqID)
	l.LessonNumber = intPtr(lessonNumber)
	if l.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	return &l, nil
}

func scanLessons(rows *sql.Rows) ([]*domain.ArchivedLesson, error) {
	var lessons []*domain.ArchivedLesson
	for rows.Next() {
		l, err := scanLesson(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning archived lesson: %w", err)
		}
		lessons = append(lessons, l)
	}
	return lessons, rows.Err()
}

// sqlLimit maps "no limit" to SQLite's LIMIT -1.
func sqlLimit(limit int) int {
	if limit <= 0 {
		return -1
	}
	return limit
}
