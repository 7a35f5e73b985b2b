// Package compiler turns catalog modules into fully specified lesson
// candidates: slots resolved, title built, and equipment, time, and
// difficulty computed.
package compiler

import (
	"fmt"
	"math"
	"strings"

	"github.com/alexanderramin/lessonsmith/internal/domain"
	"github.com/alexanderramin/lessonsmith/internal/template"
	"github.com/alexanderramin/lessonsmith/internal/textmatch"
)

// SetupOverheadMin is added to every candidate for setup and transitions.
const SetupOverheadMin = 8

// FallbackPenalty is used when no penalty-type modifier was selected so the
// penalties section is never empty.
const FallbackPenalty = "라운드에서 진 팀은 제자리에서 스쿼트 5회 후 복귀한다"

// CompileModular builds a candidate from a structure, a skill, and the
// selected modifiers. Later modifiers win when slot overrides conflict.
func CompileModular(sport *domain.Sport, st domain.Structure, sk domain.Skill, mods []domain.Modifier) *domain.Candidate {
	lookup := make(map[string]string, len(sk.SlotMapping))
	for k, v := range sk.SlotMapping {
		lookup[k] = v
	}
	for _, m := range mods {
		for k, v := range m.SlotOverride {
			lookup[k] = v
		}
	}
	var fallbacks map[string]string
	if st.SlotKeys != nil {
		fallbacks = st.SlotKeys.Fallbacks
	}

	basicRules := textmatch.Unique(sport.CoreRules, modifierRuleOverrides(mods))
	if st.SuitablePhase == domain.PhaseChallenge {
		basicRules = textmatch.Unique(basicRules, sk.ChallengeRules)
	}

	c := &domain.Candidate{
		Title:       buildTitle([]string{sport.Name, st.Name, sk.Name}, mods),
		Sport:       sport.Name,
		Engine:      domain.EngineModular,
		StructureID: st.ID,
		SkillID:     sk.ID,
		BaseName:    st.Name,
		Phase:       st.SuitablePhase,

		CompiledFlow:  template.ResolveFlow(st.Flow, lookup, fallbacks),
		BasicRules:    basicRules,
		OperationTips: textmatch.Unique(st.TeachingTips, operationLines(mods)),
		EducationEffects: []string{
			fmt.Sprintf("%s 활동 속에서 %s 기능을 반복해 익힌다", st.Name, sk.Name),
			fmt.Sprintf("%s 움직임 능력을 기르고 규칙을 지키며 협력하는 태도를 기른다", domain.CoalesceStr(sk.FMSCategory, "기본")),
		},
		Equipment:   mergeEquipment(sport.DefaultEquipment, st.Equipment, sk.Equipment, mods),
		SafetyRules: textmatch.Unique(sport.SafetyRules, hazardRules(sport, st.ID, sk.ID)),
		Location:    st.Space,

		EstimatedDurationMin: estimateDuration(st.BaseDurationMin, mods),
		FMSTags:              textmatch.Unique(sk.FMS, st.CompatibleFMSCategories),
		SportSkillTags:       []string{sk.Name},
		TacticalTags:         textmatch.Unique(st.TacticalTags, sk.TacticalTags),
		SlotCoverage:         CheckSlotCompatibility(st, sk).Coverage,
	}
	attachModifiers(c, mods)
	c.DifficultyLevel = difficultyLevel(st.DifficultyBase, mods)
	c.Difficulty = domain.DifficultyForLevel(c.DifficultyLevel)
	return c
}

// CompileActivity builds a candidate from a pre-authored activity. Steps are
// used as written; no slot substitution happens.
func CompileActivity(sport *domain.Sport, a domain.Activity, mods []domain.Modifier) *domain.Candidate {
	c := &domain.Candidate{
		Title:      buildTitle([]string{sport.Name, a.Name}, mods),
		Sport:      sport.Name,
		Engine:     domain.EngineActivity,
		ActivityID: a.ID,
		BaseName:   a.Name,
		Phase:      a.SuitablePhase,

		CompiledFlow:  append([]string(nil), a.Steps...),
		BasicRules:    textmatch.Unique(sport.CoreRules, modifierRuleOverrides(mods)),
		OperationTips: textmatch.Unique(a.TeachingTips, operationLines(mods)),
		EducationEffects: []string{
			fmt.Sprintf("%s 경기를 통해 %s 기능을 실제 상황에 적용한다", a.Name, domain.CoalesceStr(strings.Join(a.SportSkills, ", "), strings.Join(a.FMS, ", "), sport.Name)),
			fmt.Sprintf("%s 움직임 능력을 기르고 규칙을 지키며 협력하는 태도를 기른다", domain.CoalesceStr(a.FMSCategory, "기본")),
		},
		Equipment:   mergeEquipment(sport.DefaultEquipment, a.Equipment, nil, mods),
		SafetyRules: textmatch.Unique(sport.SafetyRules),
		Location:    a.Space,

		EstimatedDurationMin: estimateDuration(a.BaseDurationMin, mods),
		FMSTags:              textmatch.Unique(a.FMS, []string{a.FMSCategory}),
		SportSkillTags:       textmatch.Unique(a.SportSkills),
		TacticalTags:         textmatch.Unique(a.TacticalTags),
		SlotCoverage:         1,
	}
	attachModifiers(c, mods)
	c.DifficultyLevel = difficultyLevel(a.DifficultyBase, mods)
	c.Difficulty = domain.DifficultyForLevel(c.DifficultyLevel)
	return c
}

// TitleSuffix formats the modifier part of a title. Only the first two
// names appear; the rest are counted.
func TitleSuffix(names []string) string {
	switch len(names) {
	case 0:
		return ""
	case 1:
		return fmt.Sprintf(" (%s)", names[0])
	case 2:
		return fmt.Sprintf(" (%s + %s)", names[0], names[1])
	default:
		return fmt.Sprintf(" (%s + %s +%d)", names[0], names[1], len(names)-2)
	}
}

func buildTitle(parts []string, mods []domain.Modifier) string {
	var words []string
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			words = append(words, p)
		}
	}
	names := make([]string, len(mods))
	for i, m := range mods {
		names[i] = m.Name
	}
	return strings.Join(words, " ") + TitleSuffix(names)
}

// attachModifiers fills the modifier narrative, title names, penalties, and
// detail lines.
func attachModifiers(c *domain.Candidate, mods []domain.Modifier) {
	c.Modifiers = make([]domain.ModifierNarrative, 0, len(mods))
	c.ModifierDetails = make([]string, 0, len(mods))
	for i, m := range mods {
		rule := m.EffectiveRuleText()
		c.Modifiers = append(c.Modifiers, domain.ModifierNarrative{
			ID:               m.ID,
			Name:             m.Name,
			Type:             m.Type,
			RuleText:         rule,
			Equipment:        m.EquipmentNeeded,
			ConstraintTags:   m.ConstraintTags,
			IncompatibleWith: m.IncompatibleWith,
			Novelty:          m.Novelty,
			TeacherMeaning:   m.TeacherMeaning,
			SetupExample:     m.SetupExample,
			ScoringExample:   m.ScoringExample,
		})
		if i < 2 {
			c.TitleModifierNames = append(c.TitleModifierNames, m.Name)
		}
		c.ModifierDetails = append(c.ModifierDetails, fmt.Sprintf("%s: %s", m.Name, rule))
		if textmatch.IsPenaltyType(m.Type) {
			c.PenaltiesMissions = append(c.PenaltiesMissions, fmt.Sprintf("%s: %s", m.Name, rule))
		}
	}
	if len(c.PenaltiesMissions) == 0 {
		c.PenaltiesMissions = []string{FallbackPenalty}
	}
}

func operationLines(mods []domain.Modifier) []string {
	var lines []string
	for _, m := range mods {
		if textmatch.IsPenaltyType(m.Type) {
			continue
		}
		lines = append(lines, fmt.Sprintf("%s: %s", m.Type, m.EffectiveRuleText()))
	}
	return lines
}

func modifierRuleOverrides(mods []domain.Modifier) []string {
	var rules []string
	for _, m := range mods {
		if strings.TrimSpace(m.RuleOverride) != "" {
			rules = append(rules, m.RuleOverride)
		}
	}
	return rules
}

func mergeEquipment(sportDefaults, base, skill []string, mods []domain.Modifier) []string {
	lists := [][]string{sportDefaults, base, skill}
	for _, m := range mods {
		lists = append(lists, m.EquipmentNeeded)
	}
	return textmatch.Unique(lists...)
}

func hazardRules(sport *domain.Sport, structureID, skillID string) []string {
	var rules []string
	for _, h := range sport.HazardRules {
		if h.Matches(structureID, skillID) {
			rules = append(rules, h.Rules...)
		}
	}
	return rules
}

func estimateDuration(base int, mods []domain.Modifier) int {
	total := base + SetupOverheadMin
	for _, m := range mods {
		total += m.TimeDelta
	}
	return total
}

func difficultyLevel(base int, mods []domain.Modifier) int {
	sum := 0
	for _, m := range mods {
		sum += m.DifficultyDelta
	}
	level := int(math.Round(float64(base) + float64(sum)/2))
	return min(max(level, 1), 3)
}
