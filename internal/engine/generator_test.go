package engine

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/alexanderramin/lessonsmith/internal/app"
	"github.com/alexanderramin/lessonsmith/internal/catalog"
	"github.com/alexanderramin/lessonsmith/internal/domain"
	"github.com/alexanderramin/lessonsmith/internal/testutil"
	"github.com/alexanderramin/lessonsmith/internal/textmatch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGenerator(seed int64, edits ...func(*catalog.Bundle)) *Generator {
	return NewGenerator(testutil.NewTestCatalog(edits...), rand.New(rand.NewSource(seed)))
}

// withoutModifiers drops modifiers from the test bundle.
func withoutModifiers(ids ...string) func(*catalog.Bundle) {
	return func(b *catalog.Bundle) {
		var kept []domain.Modifier
		for _, m := range b.Modifiers {
			if !containsID(ids, m.ID) {
				kept = append(kept, m)
			}
		}
		b.Modifiers = kept
	}
}

// calm removes the modifier that always fails validation, so every sampled
// candidate under the default request is valid.
var calm = withoutModifiers(testutil.ModTagged)

func TestGenerateModular_BasicRequest(t *testing.T) {
	g := newTestGenerator(42)
	req := testutil.NewTestRequest()

	resp := g.GenerateModular(req)

	require.NotEmpty(t, resp.Candidates)
	assert.Empty(t, resp.Meta.Reason)
	assert.Equal(t, domain.EngineModular, resp.Meta.Engine)
	assert.Greater(t, resp.Meta.Attempts, 0)
	assert.Equal(t, 3, resp.Meta.Pool.Structures)
	for _, c := range resp.Candidates {
		assert.LessOrEqual(t, c.EstimatedDurationMin, 40)
		assert.True(t, c.Validation.Valid)
		require.NotNil(t, c.Rendered)
		assert.Equal(t, c.Title, c.Rendered.Title)
	}
}

func TestGenerateModular_EquipmentFiltersCandidates(t *testing.T) {
	req := testutil.NewTestRequest()
	req.AvailableEquipment = []string{"콘"}

	found := 0
	for seed := int64(1); seed <= 5; seed++ {
		resp := newTestGenerator(seed, calm).GenerateModular(req)
		found += len(resp.Candidates)
		for _, c := range resp.Candidates {
			assert.Equal(t, testutil.StructureCone, c.StructureID, "only cone-only structures can pass")
			assert.Empty(t, c.Validation.MissingEquipment)
			assert.NotContains(t, c.ModifierIDs(), testutil.ModWhistle)
		}
		for _, f := range resp.Meta.TopFailureReasons {
			assert.True(t, strings.HasPrefix(f.Reason, "준비물 부족"), "unexpected failure %q", f.Reason)
		}
	}
	assert.Greater(t, found, 0)
}

func TestGenerate_UnsupportedSport(t *testing.T) {
	g := newTestGenerator(42)
	req := testutil.NewTestRequest()
	req.Sport = "컬링"

	for _, resp := range []app.GenerateResponse{g.GenerateModular(req), g.GenerateActivities(req)} {
		assert.Empty(t, resp.Candidates)
		assert.NotNil(t, resp.Candidates)
		assert.Equal(t, "지원하지 않는 종목: 컬링", resp.Meta.Reason)
	}
}

func TestGenerate_UnsupportedGrade(t *testing.T) {
	g := newTestGenerator(42)
	req := testutil.NewTestRequest()
	req.Grade = "7학년"

	resp := g.GenerateModular(req)
	assert.Empty(t, resp.Candidates)
	assert.Equal(t, "지원하지 않는 학년: 7학년", resp.Meta.Reason)
}

func TestGenerateModular_NoPairs(t *testing.T) {
	g := newTestGenerator(42, func(b *catalog.Bundle) {
		for i := range b.Structures {
			b.Structures[i].SlotKeys.Required = []string{"전술"}
		}
	})

	resp := g.GenerateModular(testutil.NewTestRequest())
	assert.Empty(t, resp.Candidates)
	assert.Equal(t, app.ReasonNoModularPairs, resp.Meta.Reason)
	assert.Equal(t, 0, resp.Meta.Pool.Drafts)
}

func TestGenerateModular_NothingValid(t *testing.T) {
	req := testutil.NewTestRequest()
	req.DurationMin = 10

	resp := newTestGenerator(42, calm).GenerateModular(req)

	assert.Empty(t, resp.Candidates)
	assert.Equal(t, app.ReasonNoValidCandidate, resp.Meta.Reason)
	require.NotEmpty(t, resp.Meta.TopFailureReasons)
	assert.LessOrEqual(t, len(resp.Meta.TopFailureReasons), 3)
	for i, f := range resp.Meta.TopFailureReasons {
		assert.True(t, strings.HasPrefix(f.Reason, "수업 시간 초과"), f.Reason)
		if i > 0 {
			assert.LessOrEqual(t, f.Count, resp.Meta.TopFailureReasons[i-1].Count)
		}
	}
	assert.Equal(t, resp.Meta.Attempts, attemptsPerDraft*resp.Meta.Pool.Drafts)
}

func TestGenerateModular_SortedAndCapped(t *testing.T) {
	req := testutil.NewTestRequest()
	req.MaxCandidates = 3

	resp := newTestGenerator(42).GenerateModular(req)

	require.LessOrEqual(t, len(resp.Candidates), 3)
	for i := 1; i < len(resp.Candidates); i++ {
		assert.GreaterOrEqual(t, resp.Candidates[i-1].Score, resp.Candidates[i].Score)
	}
	titles := make(map[string]bool)
	for _, c := range resp.Candidates {
		assert.False(t, titles[c.Title], "duplicate title %s", c.Title)
		titles[c.Title] = true
	}
}

func TestGenerateModular_PreferredAndExcludedStructures(t *testing.T) {
	req := testutil.NewTestRequest()
	req.PreferredStructureIDs = []string{testutil.StructurePair}
	resp := newTestGenerator(42, calm).GenerateModular(req)
	require.NotEmpty(t, resp.Candidates)
	for _, c := range resp.Candidates {
		assert.Equal(t, testutil.StructurePair, c.StructureID)
	}

	req = testutil.NewTestRequest()
	req.ExcludedStructureIDs = []string{testutil.StructureCone, testutil.StructurePair}
	resp = newTestGenerator(42, calm).GenerateModular(req)
	require.NotEmpty(t, resp.Candidates)
	for _, c := range resp.Candidates {
		assert.Equal(t, testutil.StructureBall, c.StructureID)
	}
}

func TestGenerateModular_SportSkillNarrowing(t *testing.T) {
	req := testutil.NewTestRequest()
	req.SportSkills = []string{"피하기"}

	resp := newTestGenerator(42, calm).GenerateModular(req)
	require.NotEmpty(t, resp.Candidates)
	for _, c := range resp.Candidates {
		assert.Equal(t, testutil.SkillStep, c.SkillID)
	}
}

func TestGenerateModular_SameSeedSameResult(t *testing.T) {
	req := testutil.NewTestRequest()
	a := newTestGenerator(7).GenerateModular(req)
	b := newTestGenerator(7).GenerateModular(req)

	require.Equal(t, len(a.Candidates), len(b.Candidates))
	for i := range a.Candidates {
		assert.Equal(t, a.Candidates[i].Title, b.Candidates[i].Title)
		assert.Equal(t, a.Candidates[i].Score, b.Candidates[i].Score)
	}
}

func TestGenerateModular_HistoryLowersDuplicateScore(t *testing.T) {
	req := testutil.NewTestRequest()
	first := newTestGenerator(42).GenerateModular(req)
	require.NotEmpty(t, first.Candidates)
	repeated := first.Candidates[0].Title

	req.LessonHistory = []string{repeated}
	second := newTestGenerator(42).GenerateModular(req)
	for _, c := range second.Candidates {
		if c.Title == repeated {
			assert.Equal(t, titleRepeatPenalty, c.DuplicatePenalty)
		}
	}
}

func TestGenerateActivities(t *testing.T) {
	resp := newTestGenerator(42, calm).GenerateActivities(testutil.NewTestRequest())

	require.NotEmpty(t, resp.Candidates)
	assert.Equal(t, domain.EngineActivity, resp.Meta.Engine)
	assert.Equal(t, 2, resp.Meta.Pool.Drafts)
	for _, c := range resp.Candidates {
		assert.Contains(t, []string{testutil.ActivityKing, testutil.ActivityLegacy}, c.ActivityID)
		assert.Equal(t, domain.EngineActivity, c.Engine)
		assert.Empty(t, c.StructureID)
	}
}

func TestGenerateActivities_NoneForSpace(t *testing.T) {
	req := testutil.NewTestRequest()
	req.Space = "운동장"

	resp := newTestGenerator(42).GenerateActivities(req)
	assert.Empty(t, resp.Candidates)
	assert.Equal(t, app.ReasonNoActivities, resp.Meta.Reason)
}

func TestSourceFor(t *testing.T) {
	src, ok := SourceFor(domain.EngineActivity)
	require.True(t, ok)
	assert.Equal(t, domain.EngineActivity, src.Engine())

	_, ok = SourceFor("llm")
	assert.False(t, ok)
}

func TestDiversity_DefersOverRepresentedBases(t *testing.T) {
	drafts := []Draft{{BaseID: "a"}, {BaseID: "b"}, {BaseID: "c"}}
	d := newDiversity(drafts, 6)
	require.Equal(t, 2, d.perBaseCap)

	for i := 0; i < 4; i++ {
		d.offer(&domain.Candidate{Title: "a" + string(rune('0'+i)), StructureID: "a", Score: 90 - i})
	}
	d.offer(&domain.Candidate{Title: "b0", StructureID: "b", Score: 50})

	assert.Equal(t, 3, d.keptCount())
	out := d.result(4)
	require.Len(t, out, 4)
	assert.Equal(t, []string{"a0", "a1", "a2", "b0"}, titlesOf(out))
}

func TestDiversity_DisabledForSmallPools(t *testing.T) {
	d := newDiversity([]Draft{{BaseID: "a"}, {BaseID: "b"}}, 20)
	for i := 0; i < 5; i++ {
		d.offer(&domain.Candidate{Title: string(rune('a' + i)), StructureID: "a"})
	}
	assert.Equal(t, 5, d.keptCount())
}

// TestGenerate_Invariants property-tests the guarantees every returned
// candidate must satisfy across seeds, grades, durations, and engines.
func TestGenerate_Invariants(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	grades := []string{"5학년", "3학년"}
	c := testutil.NewTestCatalog()
	sport, ok := c.Sport("피구")
	require.True(t, ok)

	for trial := 0; trial < 60; trial++ {
		g := NewGenerator(c, rand.New(rand.NewSource(rng.Int63())))
		req := testutil.NewTestRequest()
		req.Grade = grades[rng.Intn(len(grades))]
		req.DurationMin = 20 + rng.Intn(40)
		if rng.Intn(2) == 0 {
			req.FMSFocus = []string{"던지기"}
		}

		var resp app.GenerateResponse
		if rng.Intn(2) == 0 {
			resp = g.GenerateModular(req)
		} else {
			resp = g.GenerateActivities(req)
		}

		limit := min(req.DurationMin, 50)
		for _, cand := range resp.Candidates {
			assert.LessOrEqual(t, cand.EstimatedDurationMin, limit, "trial %d", trial)

			for _, section := range [][]string{cand.BasicRules, cand.PenaltiesMissions, cand.OperationTips, cand.EducationEffects, cand.Equipment} {
				assert.NotEmpty(t, section, "trial %d: %s", trial, cand.Title)
			}

			ids := make(map[string]bool)
			for _, m := range cand.Modifiers {
				ids[m.ID] = true
				assert.NotContains(t, sport.ForbiddenModifierIDs, m.ID, "trial %d", trial)
				for _, tag := range m.ConstraintTags {
					assert.NotContains(t, sport.ForbiddenTags, tag, "trial %d", trial)
				}
			}
			assert.False(t, ids[testutil.ModA] && ids[testutil.ModB], "trial %d: incompatible pair in %s", trial, cand.Title)
			for _, m := range cand.Modifiers {
				for _, other := range m.IncompatibleWith {
					assert.False(t, ids[other], "trial %d: %s with %s", trial, m.ID, other)
				}
			}

			body := strings.Join(append(append(append([]string(nil), cand.OperationTips...), cand.PenaltiesMissions...), cand.ModifierDetails...), "\n")
			for _, name := range cand.TitleModifierNames {
				var rule string
				for _, m := range cand.Modifiers {
					if m.Name == name {
						rule = m.RuleText
					}
				}
				require.NotEmpty(t, rule, "trial %d: %s has no narrative", trial, name)
				assert.True(t, textmatch.Contains(body, rule), "trial %d: %s not explained", trial, name)
			}

			b := cand.ScoreBreakdown
			assert.GreaterOrEqual(t, cand.Score, 0)
			assert.LessOrEqual(t, cand.Score, 100)
			assert.LessOrEqual(t, b.FMS, MaxFMSScore)
			assert.LessOrEqual(t, b.Strategic, MaxStrategicScore)
			assert.LessOrEqual(t, b.Operability, MaxOperabilityScore)
			assert.LessOrEqual(t, b.Novelty, MaxNoveltyScore)
			assert.LessOrEqual(t, b.DuplicateAvoidance, MaxDuplicateScore)

			grade, _ := c.Grade(req.Grade)
			assert.LessOrEqual(t, len(cand.Modifiers), grade.MaxModifierCount)
		}
	}
}

// TestGenerate_IncompatiblePairNeverCoOccurs repeats generation over a pool
// where only the incompatible pair is available.
func TestGenerate_IncompatiblePairNeverCoOccurs(t *testing.T) {
	c := testutil.NewTestCatalog(withoutModifiers(testutil.ModPenalty, testutil.ModForbidden, testutil.ModTagged, testutil.ModWhistle))

	for seed := int64(0); seed < 30; seed++ {
		resp := NewGenerator(c, rand.New(rand.NewSource(seed))).GenerateModular(testutil.NewTestRequest())
		for _, cand := range resp.Candidates {
			ids := cand.ModifierIDs()
			assert.False(t, containsID(ids, testutil.ModA) && containsID(ids, testutil.ModB), "seed %d: %v", seed, ids)
		}
	}
}

func titlesOf(cs []*domain.Candidate) []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = c.Title
	}
	return out
}

func TestGenerateModular_StrategicScoreIgnoresModifierRules(t *testing.T) {
	strategic := make(map[string]int)
	sawOverride := false

	for seed := int64(1); seed <= 10; seed++ {
		resp := newTestGenerator(seed, calm).GenerateModular(testutil.NewTestRequest())
		for _, c := range resp.Candidates {
			for _, m := range c.Modifiers {
				if m.ID == testutil.ModWhistle {
					sawOverride = true
				}
			}
			base := c.StructureID + "/" + c.SkillID
			if prev, ok := strategic[base]; ok {
				assert.Equal(t, prev, c.ScoreBreakdown.Strategic, "%s: %s", base, c.Title)
				continue
			}
			strategic[base] = c.ScoreBreakdown.Strategic
		}
	}
	assert.True(t, sawOverride, "some candidate should carry the rule override modifier")
}
