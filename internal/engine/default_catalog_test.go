package engine

import (
	"math/rand"
	"testing"

	"github.com/alexanderramin/lessonsmith/internal/app"
	"github.com/alexanderramin/lessonsmith/internal/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultGenerator(t *testing.T, seed int64) *Generator {
	t.Helper()
	c, err := catalog.Default()
	require.NoError(t, err)
	return NewGenerator(c, rand.New(rand.NewSource(seed)))
}

func TestDefaultCatalog_ModularCandidatesForEveryGradeSportAndSpace(t *testing.T) {
	c, err := catalog.Default()
	require.NoError(t, err)
	g := defaultGenerator(t, 42)

	for _, grade := range c.Grades() {
		for _, sport := range c.Sports() {
			for _, space := range []string{"체육관", "운동장"} {
				req := app.NewGenerateRequest(grade.Grade, sport.Name, space)
				resp := g.GenerateModular(req)
				assert.NotEmpty(t, resp.Candidates, "%s %s %s: %s", grade.Grade, sport.Name, space, resp.Meta.Reason)
			}
		}
	}
}

func TestDefaultCatalog_FirstGradeSequenceDoesNotReuse(t *testing.T) {
	for seed := int64(1); seed <= 3; seed++ {
		resp := defaultGenerator(t, seed).GenerateSequence(app.NewGenerateRequest("1학년", "피구", "체육관"), 5)

		require.Len(t, resp.Lessons, 5)
		assert.Equal(t, 5, resp.Meta.FilledLessons, "seed %d", seed)
		assert.Zero(t, resp.Meta.ReusedFallbacks, "seed %d", seed)

		bases := make(map[string]bool)
		for _, l := range resp.Lessons {
			require.NotNil(t, l.Candidate)
			assert.False(t, bases[l.Candidate.BaseID()], "seed %d: %s repeated", seed, l.Candidate.BaseID())
			bases[l.Candidate.BaseID()] = true
		}
	}
}
