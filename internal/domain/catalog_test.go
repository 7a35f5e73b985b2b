package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDifficultyForLevel(t *testing.T) {
	assert.Equal(t, DifficultyEasy, DifficultyForLevel(0))
	assert.Equal(t, DifficultyEasy, DifficultyForLevel(1))
	assert.Equal(t, DifficultyMedium, DifficultyForLevel(2))
	assert.Equal(t, DifficultyChallenge, DifficultyForLevel(3))
	assert.Equal(t, DifficultyChallenge, DifficultyForLevel(7))
}

func TestHazardRule_MatchesRequiresBothIDs(t *testing.T) {
	h := HazardRule{StructureIDs: []string{"st-relay"}, SkillIDs: []string{"sk-throw"}}
	assert.True(t, h.Matches("st-relay", "sk-throw"))
	assert.False(t, h.Matches("st-relay", "sk-catch"))
	assert.False(t, h.Matches("st-tag", "sk-throw"))
}

func TestGradeConfig_AllowsPhase(t *testing.T) {
	g := GradeConfig{Grade: "3학년", AllowedPhases: []Phase{PhaseBasic, PhaseApplied}}
	assert.True(t, g.AllowsPhase(PhaseBasic))
	assert.False(t, g.AllowsPhase(PhaseChallenge))
}

func TestModifier_EffectiveRuleTextFallsBack(t *testing.T) {
	assert.Equal(t, "a", Modifier{RuleText: "a", RuleOverride: "b"}.EffectiveRuleText())
	assert.Equal(t, "b", Modifier{RuleOverride: "b"}.EffectiveRuleText())
	assert.Equal(t, "", Modifier{}.EffectiveRuleText())
}

func TestScoreBreakdown_Total(t *testing.T) {
	b := ScoreBreakdown{FMS: 35, Strategic: 25, Operability: 20, Novelty: 10, DuplicateAvoidance: 10}
	assert.Equal(t, 100, b.Total())
}
