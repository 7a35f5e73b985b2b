package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/lessonsmith/internal/db"
	"github.com/alexanderramin/lessonsmith/internal/domain"
	"github.com/alexanderramin/lessonsmith/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var baseTime = time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

func TestLessonArchiveRepo_CreateAndGetByID(t *testing.T) {
	repo := NewSQLiteLessonArchiveRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	l := testutil.NewTestArchivedLesson("피구 콘 릴레이 던지기 (보너스 점수)")
	l.Body = "[활동 흐름]\n1. 모둠별로 출발선에 선다"
	require.NoError(t, repo.Create(ctx, l))

	got, err := repo.GetByID(ctx, l.ID)
	require.NoError(t, err)
	assert.Equal(t, l.Title, got.Title)
	assert.Equal(t, "피구", got.Sport)
	assert.Equal(t, domain.EngineModular, got.Engine)
	assert.Equal(t, testutil.StructureCone, got.StructureID)
	assert.Equal(t, 70, got.Score)
	assert.Equal(t, l.Body, got.Body)
	assert.Nil(t, got.SequenceID)
	assert.Nil(t, got.LessonNumber)
	assert.True(t, l.CreatedAt.Equal(got.CreatedAt))
}

func TestLessonArchiveRepo_GetByID_NotFound(t *testing.T) {
	repo := NewSQLiteLessonArchiveRepo(testutil.NewTestDB(t))

	_, err := repo.GetByID(context.Background(), "nonexistent")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLessonArchiveRepo_ListNewestFirst(t *testing.T) {
	repo := NewSQLiteLessonArchiveRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	for i, title := range []string{"첫 수업", "둘째 수업", "셋째 수업"} {
		l := testutil.NewTestArchivedLesson(title, testutil.WithLessonCreatedAt(baseTime.Add(time.Duration(i)*time.Hour)))
		require.NoError(t, repo.Create(ctx, l))
	}

	all, err := repo.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "셋째 수업", all[0].Title)
	assert.Equal(t, "첫 수업", all[2].Title)

	two, err := repo.List(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, two, 2)
}

func TestLessonArchiveRepo_RecentTitlesDistinct(t *testing.T) {
	repo := NewSQLiteLessonArchiveRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	titles := []string{"A", "B", "A", "C"}
	for i, title := range titles {
		l := testutil.NewTestArchivedLesson(title, testutil.WithLessonCreatedAt(baseTime.Add(time.Duration(i)*time.Minute)))
		require.NoError(t, repo.Create(ctx, l))
	}

	got, err := repo.RecentTitles(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"C", "A", "B"}, got)

	got, err = repo.RecentTitles(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"C"}, got)
}

func TestLessonArchiveRepo_Delete(t *testing.T) {
	repo := NewSQLiteLessonArchiveRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	l := testutil.NewTestArchivedLesson("지울 수업")
	require.NoError(t, repo.Create(ctx, l))
	require.NoError(t, repo.Delete(ctx, l.ID))

	_, err := repo.GetByID(ctx, l.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, l.ID), ErrNotFound)
}

func TestLessonArchiveRepo_EngineDefaultsToModular(t *testing.T) {
	repo := NewSQLiteLessonArchiveRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	l := testutil.NewTestArchivedLesson("엔진 없음")
	l.Engine = ""
	require.NoError(t, repo.Create(ctx, l))

	got, err := repo.GetByID(ctx, l.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.EngineModular, got.Engine)
}

func TestSequenceRepo_LessonsWithinTransaction(t *testing.T) {
	database := testutil.NewTestDB(t)
	uow := testutil.NewTestUoW(database)
	ctx := context.Background()

	err := uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		seqs := NewSQLiteSequenceRepo(tx)
		lessons := NewSQLiteLessonArchiveRepo(tx)
		if err := seqs.Create(ctx, &SequenceRecord{
			ID: "seq1", Sport: "피구", Grade: "5학년", LessonCount: 2, CreatedAt: baseTime.Format(time.RFC3339),
		}); err != nil {
			return err
		}
		for n := 2; n >= 1; n-- {
			l := testutil.NewTestArchivedLesson("차시", testutil.WithLessonSequence("seq1", n))
			if err := lessons.Create(ctx, l); err != nil {
				return err
			}
		}
		return nil
	})
	require.NoError(t, err)

	lessons := NewSQLiteLessonArchiveRepo(database)
	got, err := lessons.ListBySequence(ctx, "seq1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.NotNil(t, got[0].LessonNumber)
	assert.Equal(t, 1, *got[0].LessonNumber)
	assert.Equal(t, "seq1", *got[1].SequenceID)

	seqs := NewSQLiteSequenceRepo(database)
	rec, err := seqs.GetByID(ctx, "seq1")
	require.NoError(t, err)
	assert.Equal(t, 2, rec.LessonCount)

	require.NoError(t, seqs.Delete(ctx, "seq1"))
	got, err = lessons.ListBySequence(ctx, "seq1")
	require.NoError(t, err)
	assert.Empty(t, got, "deleting the sequence removes its lessons")

	_, err = seqs.GetByID(ctx, "seq1")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, seqs.Delete(ctx, "seq1"), ErrNotFound)
}

func TestSequenceRepo_DuplicateLessonNumberRejected(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()
	seqs := NewSQLiteSequenceRepo(database)
	lessons := NewSQLiteLessonArchiveRepo(database)

	require.NoError(t, seqs.Create(ctx, &SequenceRecord{
		ID: "seq1", Sport: "피구", Grade: "5학년", LessonCount: 2, CreatedAt: baseTime.Format(time.RFC3339),
	}))
	require.NoError(t, lessons.Create(ctx, testutil.NewTestArchivedLesson("1", testutil.WithLessonSequence("seq1", 1))))
	assert.Error(t, lessons.Create(ctx, testutil.NewTestArchivedLesson("2", testutil.WithLessonSequence("seq1", 1))))
}
