package repository

import (
	"context"
	"errors"

	"github.com/alexanderramin/lessonsmith/internal/domain"
)

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("not found")

// SequenceRecord is the header row of a saved multi-lesson sequence.
type SequenceRecord struct {
	ID          string
	Sport       string
	Grade       string
	LessonCount int
	CreatedAt   string
}

type LessonArchiveRepo interface {
	Create(ctx context.Context, l *domain.ArchivedLesson) error
	GetByID(ctx context.Context, id string) (*domain.ArchivedLesson, error)
	// List returns the newest lessons first; limit <= 0 means no limit.
	List(ctx context.Context, limit int) ([]*domain.ArchivedLesson, error)
	ListBySequence(ctx context.Context, sequenceID string) ([]*domain.ArchivedLesson, error)
	// RecentTitles returns distinct titles, newest first, for lesson history.
	RecentTitles(ctx context.Context, limit int) ([]string, error)
	Delete(ctx context.Context, id string) error
}

type SequenceRepo interface {
	Create(ctx context.Context, s *SequenceRecord) error
	GetByID(ctx context.Context, id string) (*SequenceRecord, error)
	Delete(ctx context.Context, id string) error
}
