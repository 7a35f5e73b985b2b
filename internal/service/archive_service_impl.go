package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/lessonsmith/internal/app"
	"github.com/alexanderramin/lessonsmith/internal/db"
	"github.com/alexanderramin/lessonsmith/internal/domain"
	"github.com/alexanderramin/lessonsmith/internal/repository"
	"github.com/google/uuid"
)

// ErrNothingToArchive is returned when a candidate or sequence has no
// lesson content to save.
var ErrNothingToArchive = errors.New("nothing to archive")

type archiveService struct {
	lessons  repository.LessonArchiveRepo
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewArchiveService(lessons repository.LessonArchiveRepo, uow db.UnitOfWork, observers ...UseCaseObserver) ArchiveService {
	return &archiveService{
		lessons:  lessons,
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *archiveService) Save(ctx context.Context, grade string, c *domain.Candidate) (lesson *domain.ArchivedLesson, err error) {
	startedAt := time.Now().UTC()
	defer func() {
		fields := map[string]any{"grade": grade}
		if lesson != nil {
			fields["lesson_id"] = lesson.ID
		}
		s.observe(ctx, "archive-lesson", startedAt, err, fields)
	}()

	if c == nil {
		return nil, ErrNothingToArchive
	}
	lesson = archivedFromCandidate(grade, c, startedAt)
	if err = s.lessons.Create(ctx, lesson); err != nil {
		return nil, fmt.Errorf("archiving lesson: %w", err)
	}
	return lesson, nil
}

// SaveSequence stores the sequence header and every filled lesson in one
// transaction. Lessons left empty by the sequencer are skipped.
func (s *archiveService) SaveSequence(ctx context.Context, grade string, seq *app.SequenceResponse) (saved []*domain.ArchivedLesson, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"grade": grade}
	defer func() {
		fields["saved"] = len(saved)
		s.observe(ctx, "archive-sequence", startedAt, err, fields)
	}()

	if seq == nil {
		return nil, ErrNothingToArchive
	}
	fields["sequence_id"] = seq.SequenceID

	var lessons []*domain.ArchivedLesson
	for _, l := range seq.Lessons {
		if l.Candidate == nil {
			continue
		}
		a := archivedFromCandidate(grade, l.Candidate, startedAt)
		seqID, number := seq.SequenceID, l.LessonNumber
		a.SequenceID = &seqID
		a.LessonNumber = &number
		lessons = append(lessons, a)
	}
	if len(lessons) == 0 {
		return nil, ErrNothingToArchive
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txSequences := repository.NewSQLiteSequenceRepo(tx)
		txLessons := repository.NewSQLiteLessonArchiveRepo(tx)

		if err := txSequences.Create(ctx, &repository.SequenceRecord{
			ID:          seq.SequenceID,
			Sport:       lessons[0].Sport,
			Grade:       grade,
			LessonCount: app.ClampLessonCount(len(seq.Lessons)),
			CreatedAt:   startedAt.Format(time.RFC3339),
		}); err != nil {
			return fmt.Errorf("creating sequence: %w", err)
		}
		for _, l := range lessons {
			if err := txLessons.Create(ctx, l); err != nil {
				return fmt.Errorf("archiving lesson %d: %w", *l.LessonNumber, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return lessons, nil
}

func (s *archiveService) GetByID(ctx context.Context, id string) (*domain.ArchivedLesson, error) {
	return s.lessons.GetByID(ctx, id)
}

func (s *archiveService) List(ctx context.Context, limit int) ([]*domain.ArchivedLesson, error) {
	return s.lessons.List(ctx, limit)
}

func (s *archiveService) ListSequence(ctx context.Context, sequenceID string) ([]*domain.ArchivedLesson, error) {
	return s.lessons.ListBySequence(ctx, sequenceID)
}

func (s *archiveService) Delete(ctx context.Context, id string) (err error) {
	startedAt := time.Now().UTC()
	defer func() {
		s.observe(ctx, "delete-lesson", startedAt, err, map[string]any{"lesson_id": id})
	}()
	return s.lessons.Delete(ctx, id)
}

func (s *archiveService) DeleteSequence(ctx context.Context, sequenceID string) (err error) {
	startedAt := time.Now().UTC()
	defer func() {
		s.observe(ctx, "delete-sequence", startedAt, err, map[string]any{"sequence_id": sequenceID})
	}()
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return repository.NewSQLiteSequenceRepo(tx).Delete(ctx, sequenceID)
	})
}

func (s *archiveService) observe(ctx context.Context, name string, startedAt time.Time, err error, fields map[string]any) {
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      name,
		StartedAt: startedAt,
		Duration:  time.Since(startedAt),
		Success:   err == nil,
		Err:       err,
		Fields:    fields,
	})
}

func archivedFromCandidate(grade string, c *domain.Candidate, now time.Time) *domain.ArchivedLesson {
	l := &domain.ArchivedLesson{
		ID:          uuid.New().String(),
		Title:       c.Title,
		Sport:       c.Sport,
		Grade:       grade,
		Engine:      c.Engine,
		StructureID: c.StructureID,
		ActivityID:  c.ActivityID,
		Score:       c.Score,
		CreatedAt:   now,
	}
	if c.Rendered != nil {
		l.Body = c.Rendered.Body
	}
	return l
}
