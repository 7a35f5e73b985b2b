package service

import (
	"context"
	"errors"
	"testing"

	"github.com/alexanderramin/lessonsmith/internal/app"
	"github.com/alexanderramin/lessonsmith/internal/domain"
	"github.com/alexanderramin/lessonsmith/internal/repository"
	"github.com/alexanderramin/lessonsmith/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerationService_GenerateModular(t *testing.T) {
	obs := &recordingObserver{}
	svc := NewGenerationService(testutil.NewTestCatalog(), nil, GenerationConfig{Seed: 42}, obs)

	resp, err := svc.GenerateModular(context.Background(), testutil.NewTestRequest())
	require.NoError(t, err)
	require.NotEmpty(t, resp.Candidates)
	assert.Equal(t, domain.EngineModular, resp.Meta.Engine)

	ev := obs.last()
	assert.Equal(t, "generate", ev.Name)
	assert.True(t, ev.Success)
	assert.Equal(t, "modular", ev.Fields["engine"])
	assert.Equal(t, len(resp.Candidates), ev.Fields["candidates"])
}

func TestGenerationService_FixedSeedIsDeterministic(t *testing.T) {
	svc := NewGenerationService(testutil.NewTestCatalog(), nil, GenerationConfig{Seed: 7})
	ctx := context.Background()

	a, err := svc.GenerateActivities(ctx, testutil.NewTestRequest())
	require.NoError(t, err)
	b, err := svc.GenerateActivities(ctx, testutil.NewTestRequest())
	require.NoError(t, err)

	require.Equal(t, len(a.Candidates), len(b.Candidates))
	for i := range a.Candidates {
		assert.Equal(t, a.Candidates[i].Title, b.Candidates[i].Title)
	}
}

func TestGenerationService_RejectsMalformedRequests(t *testing.T) {
	svc := NewGenerationService(testutil.NewTestCatalog(), nil, GenerationConfig{Seed: 1})
	ctx := context.Background()

	req := testutil.NewTestRequest()
	req.DurationMin = -5
	_, err := svc.GenerateModular(ctx, req)
	var genErr *app.GenerationError
	require.ErrorAs(t, err, &genErr)
	assert.Equal(t, app.ErrInvalidDuration, genErr.Code)

	_, err = svc.Generate(ctx, "llm", testutil.NewTestRequest())
	require.ErrorAs(t, err, &genErr)
	assert.Equal(t, app.ErrInvalidEngine, genErr.Code)

	_, err = svc.GenerateSequence(ctx, testutil.NewTestRequest(), 0)
	require.ErrorAs(t, err, &genErr)
	assert.Equal(t, app.ErrInvalidLessonCount, genErr.Code)

	_, err = NewGenerationService(nil, nil, GenerationConfig{}).GenerateModular(ctx, testutil.NewTestRequest())
	require.ErrorAs(t, err, &genErr)
	assert.Equal(t, app.ErrCatalogUnavailable, genErr.Code)
}

func TestGenerationService_CanceledContext(t *testing.T) {
	obs := &recordingObserver{}
	svc := NewGenerationService(testutil.NewTestCatalog(), nil, GenerationConfig{Seed: 1}, obs)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.GenerateModular(ctx, testutil.NewTestRequest())
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, obs.last().Success)
}

func TestGenerationService_UnsupportedSportIsNotAnError(t *testing.T) {
	svc := NewGenerationService(testutil.NewTestCatalog(), nil, GenerationConfig{Seed: 1})
	req := testutil.NewTestRequest()
	req.Sport = "컬링"

	resp, err := svc.GenerateModular(context.Background(), req)
	require.NoError(t, err)
	assert.Empty(t, resp.Candidates)
	assert.Equal(t, "지원하지 않는 종목: 컬링", resp.Meta.Reason)
}

func TestGenerationService_ArchiveFeedsHistory(t *testing.T) {
	database := testutil.NewTestDB(t)
	lessons := repository.NewSQLiteLessonArchiveRepo(database)
	ctx := context.Background()

	first, err := NewGenerationService(testutil.NewTestCatalog(), nil, GenerationConfig{Seed: 42}).
		GenerateModular(ctx, testutil.NewTestRequest())
	require.NoError(t, err)
	require.NotEmpty(t, first.Candidates)
	kept := first.Candidates[0]
	require.NoError(t, lessons.Create(ctx, testutil.NewTestArchivedLesson(kept.Title)))

	svc := NewGenerationService(testutil.NewTestCatalog(), lessons, GenerationConfig{Seed: 42, ArchiveHistory: 10})
	second, err := svc.GenerateModular(ctx, testutil.NewTestRequest())
	require.NoError(t, err)
	for _, c := range second.Candidates {
		if c.Title == kept.Title {
			assert.Positive(t, c.DuplicatePenalty, "archived title should be penalized")
		}
	}
}

type failingArchive struct {
	repository.LessonArchiveRepo
}

func (failingArchive) RecentTitles(context.Context, int) ([]string, error) {
	return nil, errors.New("disk gone")
}

func TestGenerationService_ArchiveErrorPropagates(t *testing.T) {
	svc := NewGenerationService(testutil.NewTestCatalog(), failingArchive{}, GenerationConfig{Seed: 1, ArchiveHistory: 5})

	_, err := svc.GenerateModular(context.Background(), testutil.NewTestRequest())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading lesson history")
}

func TestGenerationService_GenerateSequence(t *testing.T) {
	obs := &recordingObserver{}
	svc := NewGenerationService(testutil.NewTestCatalog(), nil, GenerationConfig{Seed: 42}, obs)

	resp, err := svc.GenerateSequence(context.Background(), testutil.NewTestRequest(), 3)
	require.NoError(t, err)
	require.Len(t, resp.Lessons, 3)
	assert.NotEmpty(t, resp.SequenceID)

	ev := obs.last()
	assert.Equal(t, "generate-sequence", ev.Name)
	assert.Equal(t, resp.SequenceID, ev.Fields["sequence_id"])
}
