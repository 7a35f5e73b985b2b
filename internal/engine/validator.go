package engine

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/lessonsmith/internal/app"
	"github.com/alexanderramin/lessonsmith/internal/domain"
	"github.com/alexanderramin/lessonsmith/internal/template"
	"github.com/alexanderramin/lessonsmith/internal/textmatch"
)

// Operation score deductions.
const (
	durationPenalty      = 25
	locationPenalty      = 25
	equipmentItemPenalty = 5
	equipmentPenaltyCap  = 20
	forbiddenPenalty     = 30
)

// conceptTokenMinRunes is the shortest concept token tried when the whole
// concept phrase does not match.
const conceptTokenMinRunes = 2

// Validate checks a compiled candidate against the hard rules of the request
// and sport. Every failing check adds a reason; none short-circuits.
func Validate(c *domain.Candidate, req app.GenerateRequest, sport *domain.Sport) domain.ValidationResult {
	v := &validation{op: 100}

	for _, label := range template.MissingSections(c) {
		v.fail("필수 섹션 누락: " + label)
	}

	if limit := req.DurationLimit(); c.EstimatedDurationMin > limit {
		v.fail(fmt.Sprintf("수업 시간 초과: %d분 > %d분", c.EstimatedDurationMin, limit))
		v.op -= durationPenalty
	}

	if loc := req.Location(); loc != "" && !textmatch.ContainsEqual(c.Location, loc) {
		v.fail("장소 불일치: " + loc)
		v.op -= locationPenalty
	}

	if len(nonBlank(c.SafetyRules)) == 0 {
		v.fail("안전 규칙 누락")
	}

	checkModifierNarratives(v, c)

	forbidden := checkForbidden(v, c, sport)
	if checkCoreRules(v, c, sport) || forbidden {
		v.op -= forbiddenPenalty
	}

	v.missingEquipment = textmatch.MissingEquipment(c.Equipment, req.AvailableEquipment, sport.Name)
	if n := len(v.missingEquipment); n > 0 {
		v.fail("준비물 부족: " + strings.Join(v.missingEquipment, ", "))
		v.op -= min(equipmentPenaltyCap, equipmentItemPenalty*n)
	}

	checkRequiredConcepts(v, c, sport)

	return domain.ValidationResult{
		Valid:            len(v.reasons) == 0,
		Reasons:          v.reasons,
		MissingEquipment: v.missingEquipment,
		OperationScore:   max(v.op, 0),
	}
}

type validation struct {
	reasons          []string
	missingEquipment []string
	op               int
}

func (v *validation) fail(reason string) {
	v.reasons = append(v.reasons, reason)
}

// checkModifierNarratives enforces that everything named in the title is
// explained in the body.
func checkModifierNarratives(v *validation, c *domain.Candidate) {
	if len(c.Modifiers) == 0 && len(c.TitleModifierNames) == 0 {
		return
	}

	byName := make(map[string]domain.ModifierNarrative, len(c.Modifiers))
	for _, m := range c.Modifiers {
		if strings.TrimSpace(m.ID) == "" || strings.TrimSpace(m.Name) == "" || strings.TrimSpace(m.RuleText) == "" {
			v.fail("변형 규칙 설명 누락: " + domain.CoalesceStr(m.Name, m.ID, "?"))
			continue
		}
		byName[m.Name] = m
	}

	body := strings.Join(append(append(append([]string(nil), c.OperationTips...), c.PenaltiesMissions...), c.ModifierDetails...), "\n")
	for _, name := range c.TitleModifierNames {
		m, ok := byName[name]
		if !ok {
			v.fail("제목의 변형 규칙이 본문에 없음: " + name)
			continue
		}
		if !textmatch.Contains(body, m.RuleText) {
			v.fail("변형 규칙 설명 불일치: " + name)
		}
	}
}

func checkForbidden(v *validation, c *domain.Candidate, sport *domain.Sport) bool {
	found := false
	for _, m := range c.Modifiers {
		if textmatch.ContainsEqual(sport.ForbiddenModifierIDs, m.ID) {
			v.fail("금지된 변형 규칙: " + m.ID)
			found = true
		}
		for _, tag := range m.ConstraintTags {
			if textmatch.ContainsEqual(sport.ForbiddenTags, tag) {
				v.fail(fmt.Sprintf("금지된 제약 태그: %s (%s)", tag, m.Name))
				found = true
			}
		}
	}
	return found
}

func checkCoreRules(v *validation, c *domain.Candidate, sport *domain.Sport) bool {
	found := false
	for _, rule := range sport.CoreRules {
		if !textmatch.ContainsEqual(c.BasicRules, rule) {
			v.fail("핵심 규칙 누락: " + rule)
			found = true
		}
	}
	return found
}

// checkRequiredConcepts looks for every required concept across the
// candidate's tags and narrative. When the whole phrase is absent any
// single token of two or more runes is accepted.
func checkRequiredConcepts(v *validation, c *domain.Candidate, sport *domain.Sport) {
	if len(sport.RequiredConcepts) == 0 {
		return
	}
	haystack := textmatch.Unique(c.FMSTags, c.SportSkillTags, c.TacticalTags, c.BasicRules, c.OperationTips, c.EducationEffects)
	for _, concept := range sport.RequiredConcepts {
		if !conceptPresent(haystack, concept) {
			v.fail("핵심 개념 누락: " + concept)
		}
	}
}

func conceptPresent(haystack []string, concept string) bool {
	if containsInAny(haystack, concept) {
		return true
	}
	for _, tok := range textmatch.Tokens(concept, conceptTokenMinRunes) {
		if containsInAny(haystack, tok) {
			return true
		}
	}
	return false
}

func containsInAny(haystack []string, needle string) bool {
	for _, h := range haystack {
		if textmatch.Contains(h, needle) {
			return true
		}
	}
	return false
}

func nonBlank(items []string) []string {
	var out []string
	for _, it := range items {
		if strings.TrimSpace(it) != "" {
			out = append(out, it)
		}
	}
	return out
}
