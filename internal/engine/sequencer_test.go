package engine

import (
	"testing"

	"github.com/alexanderramin/lessonsmith/internal/app"
	"github.com/alexanderramin/lessonsmith/internal/catalog"
	"github.com/alexanderramin/lessonsmith/internal/domain"
	"github.com/alexanderramin/lessonsmith/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSequence_ThreeLessons(t *testing.T) {
	resp := newTestGenerator(42, calm).GenerateSequence(testutil.NewTestRequest(), 3)

	require.Len(t, resp.Lessons, 3)
	assert.NotEmpty(t, resp.SequenceID)
	assert.Equal(t, 3, resp.Meta.RequestedLessons)
	assert.Equal(t, 3, resp.Meta.FilledLessons)
	assert.Zero(t, resp.Meta.ReusedFallbacks)

	wantPhases := []domain.Phase{domain.PhaseBasic, domain.PhaseBasic, domain.PhaseApplied}
	titles := make(map[string]bool)
	bases := make(map[string]bool)
	for i, l := range resp.Lessons {
		assert.Equal(t, i+1, l.LessonNumber)
		assert.Equal(t, wantPhases[i], l.Phase)
		require.NotNil(t, l.Candidate, "lesson %d: %s", l.LessonNumber, l.FailureReason)
		assert.False(t, titles[l.Candidate.Title], "repeated title %s", l.Candidate.Title)
		assert.False(t, bases[l.Candidate.BaseID()], "repeated base %s", l.Candidate.BaseID())
		titles[l.Candidate.Title] = true
		bases[l.Candidate.BaseID()] = true
	}
	assert.Equal(t, testutil.StructurePair, resp.Lessons[2].Candidate.StructureID,
		"the applied lesson uses the applied structure")
}

func TestGenerateSequence_ClampsLessonCount(t *testing.T) {
	g := newTestGenerator(42, calm)
	req := testutil.NewTestRequest()

	assert.Len(t, g.GenerateSequence(req, 1).Lessons, app.MinSequenceLessons)
	long := g.GenerateSequence(req, 9)
	require.Len(t, long.Lessons, app.MaxSequenceLessons)
	assert.Equal(t, domain.PhaseChallenge, long.Lessons[3].Phase)
	assert.Equal(t, domain.PhaseChallenge, long.Lessons[4].Phase)
}

func TestGenerateSequence_ReusesWhenPoolIsExhausted(t *testing.T) {
	g := newTestGenerator(42, calm, func(b *catalog.Bundle) {
		b.Structures = b.Structures[:1]
		b.Activities = nil
	})

	resp := g.GenerateSequence(testutil.NewTestRequest(), 2)

	require.Len(t, resp.Lessons, 2)
	assert.Equal(t, 2, resp.Meta.FilledLessons)
	assert.Equal(t, 1, resp.Meta.ReusedFallbacks)
	for _, l := range resp.Lessons {
		require.NotNil(t, l.Candidate)
		assert.Equal(t, testutil.StructureCone, l.Candidate.StructureID)
		assert.Equal(t, domain.EngineModular, l.Engine)
	}
}

func TestGenerateSequence_UnsupportedSport(t *testing.T) {
	req := testutil.NewTestRequest()
	req.Sport = "컬링"

	resp := newTestGenerator(42).GenerateSequence(req, 2)

	assert.Zero(t, resp.Meta.FilledLessons)
	for _, l := range resp.Lessons {
		assert.Nil(t, l.Candidate)
		assert.Equal(t, "지원하지 않는 종목: 컬링", l.FailureReason)
	}
}

func TestGenerateSequence_DoesNotMutateRequest(t *testing.T) {
	req := testutil.NewTestRequest()
	req.LessonHistory = make([]string, 1, 8)
	req.LessonHistory[0] = "지난 수업"

	newTestGenerator(42, calm).GenerateSequence(req, 3)

	assert.Equal(t, []string{"지난 수업"}, req.LessonHistory)
	assert.Empty(t, req.ExcludedStructureIDs)
	assert.Empty(t, req.PreferredPhase)
}
