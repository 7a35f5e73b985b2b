package testutil

import (
	"time"

	"github.com/alexanderramin/lessonsmith/internal/domain"
	"github.com/google/uuid"
)

// Sport options
type SportOption func(*domain.Sport)

func WithForbiddenModifiers(ids ...string) SportOption {
	return func(s *domain.Sport) {
		s.ForbiddenModifierIDs = ids
	}
}

func WithForbiddenTags(tags ...string) SportOption {
	return func(s *domain.Sport) {
		s.ForbiddenTags = tags
	}
}

func WithDefaultEquipment(items ...string) SportOption {
	return func(s *domain.Sport) {
		s.DefaultEquipment = items
	}
}

func WithRequiredConcepts(concepts ...string) SportOption {
	return func(s *domain.Sport) {
		s.RequiredConcepts = concepts
	}
}

func WithCoreRules(rules ...string) SportOption {
	return func(s *domain.Sport) {
		s.CoreRules = rules
	}
}

func WithAllowedSkills(ids ...string) SportOption {
	return func(s *domain.Sport) {
		s.Skills = ids
	}
}

func WithHazardRule(structureID, skillID string, rules ...string) SportOption {
	return func(s *domain.Sport) {
		s.HazardRules = append(s.HazardRules, domain.HazardRule{
			StructureIDs: []string{structureID},
			SkillIDs:     []string{skillID},
			Rules:        rules,
		})
	}
}

func NewTestSport(id, name string, opts ...SportOption) domain.Sport {
	s := domain.Sport{
		ID:          id,
		Name:        name,
		Domain:      "경쟁",
		CoreRules:   []string{name + " 기본 규칙을 지킨다"},
		SafetyRules: []string{"활동 전 준비 운동을 한다"},
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// Skill options
type SkillOption func(*domain.Skill)

func WithSlot(name, phrase string) SkillOption {
	return func(s *domain.Skill) {
		if s.SlotMapping == nil {
			s.SlotMapping = make(map[string]string)
		}
		s.SlotMapping[name] = phrase
	}
}

func WithoutSlots() SkillOption {
	return func(s *domain.Skill) {
		s.SlotMapping = map[string]string{}
	}
}

func WithFMS(category string, fms ...string) SkillOption {
	return func(s *domain.Skill) {
		s.FMSCategory = category
		s.FMS = fms
	}
}

func WithGradeRange(grades ...string) SkillOption {
	return func(s *domain.Skill) {
		s.GradeRange = grades
	}
}

func WithSkillSpace(spaces ...string) SkillOption {
	return func(s *domain.Skill) {
		s.SpaceNeeded = spaces
	}
}

func WithSkillEquipment(items ...string) SkillOption {
	return func(s *domain.Skill) {
		s.Equipment = items
	}
}

func WithSkillTactics(tags ...string) SkillOption {
	return func(s *domain.Skill) {
		s.TacticalTags = tags
	}
}

func NewTestSkill(id, name, sport string, opts ...SkillOption) domain.Skill {
	s := domain.Skill{
		ID:          id,
		Name:        name,
		Sport:       sport,
		FMS:         []string{"던지기"},
		FMSCategory: "조작",
		GradeRange:  []string{"3학년", "5학년"},
		SpaceNeeded: []string{"체육관", "운동장"},
		SlotMapping: map[string]string{
			"기술": name,
			"동작": name + " 동작",
		},
		TeachingCues: []string{"시선은 목표를 본다"},
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// Structure options
type StructureOption func(*domain.Structure)

func WithStructurePhase(p domain.Phase) StructureOption {
	return func(st *domain.Structure) {
		st.SuitablePhase = p
	}
}

func WithStructureSpace(spaces ...string) StructureOption {
	return func(st *domain.Structure) {
		st.Space = spaces
	}
}

func WithStructureEquipment(items ...string) StructureOption {
	return func(st *domain.Structure) {
		st.Equipment = items
	}
}

func WithFlow(steps ...string) StructureOption {
	return func(st *domain.Structure) {
		st.Flow = steps
	}
}

func WithRequiredSlots(slots ...string) StructureOption {
	return func(st *domain.Structure) {
		if st.SlotKeys == nil {
			st.SlotKeys = &domain.SlotKeys{}
		}
		st.SlotKeys.Required = slots
	}
}

func WithOptionalSlot(slot, fallback string) StructureOption {
	return func(st *domain.Structure) {
		if st.SlotKeys == nil {
			st.SlotKeys = &domain.SlotKeys{}
		}
		st.SlotKeys.Optional = append(st.SlotKeys.Optional, slot)
		if fallback != "" {
			if st.SlotKeys.Fallbacks == nil {
				st.SlotKeys.Fallbacks = make(map[string]string)
			}
			st.SlotKeys.Fallbacks[slot] = fallback
		}
	}
}

// WithLegacySlots drops SlotKeys so every flow slot counts as required.
func WithLegacySlots() StructureOption {
	return func(st *domain.Structure) {
		st.SlotKeys = nil
	}
}

func WithFMSCategories(categories ...string) StructureOption {
	return func(st *domain.Structure) {
		st.CompatibleFMSCategories = categories
	}
}

func WithDifficultyBase(level int) StructureOption {
	return func(st *domain.Structure) {
		st.DifficultyBase = level
	}
}

func WithBaseDuration(min int) StructureOption {
	return func(st *domain.Structure) {
		st.BaseDurationMin = min
	}
}

func WithTeachingTips(tips ...string) StructureOption {
	return func(st *domain.Structure) {
		st.TeachingTips = tips
	}
}

func WithStructureTactics(tags ...string) StructureOption {
	return func(st *domain.Structure) {
		st.TacticalTags = tags
	}
}

func NewTestStructure(id, name string, opts ...StructureOption) domain.Structure {
	st := domain.Structure{
		ID:            id,
		Name:          name,
		Space:         []string{"체육관", "운동장"},
		SuitablePhase: domain.PhaseBasic,
		Flow: []string{
			"모둠별로 출발선에 선다",
			"[동작]으로 반환점까지 이동한다",
		},
		SlotKeys:        &domain.SlotKeys{Required: []string{"동작"}},
		DifficultyBase:  1,
		BaseDurationMin: 15,
		Equipment:       []string{"콘"},
		TeachingTips:    []string{"출발 신호를 하나로 통일한다"},
	}
	for _, opt := range opts {
		opt(&st)
	}
	return st
}

// Modifier options
type ModifierOption func(*domain.Modifier)

func WithModifierType(t string) ModifierOption {
	return func(m *domain.Modifier) {
		m.Type = t
	}
}

func WithIncompatible(ids ...string) ModifierOption {
	return func(m *domain.Modifier) {
		m.IncompatibleWith = ids
	}
}

func WithConstraintTags(tags ...string) ModifierOption {
	return func(m *domain.Modifier) {
		m.ConstraintTags = tags
	}
}

func WithEquipmentNeeded(items ...string) ModifierOption {
	return func(m *domain.Modifier) {
		m.EquipmentNeeded = items
	}
}

func WithModifierPhase(p domain.Phase) ModifierOption {
	return func(m *domain.Modifier) {
		m.SuitablePhase = p
	}
}

func WithModifierSpace(spaces ...string) ModifierOption {
	return func(m *domain.Modifier) {
		m.Space = spaces
	}
}

func WithSportAllow(sports ...string) ModifierOption {
	return func(m *domain.Modifier) {
		m.SportAllow = sports
	}
}

func WithDeltas(difficulty, minutes int) ModifierOption {
	return func(m *domain.Modifier) {
		m.DifficultyDelta = difficulty
		m.TimeDelta = minutes
	}
}

func WithRuleText(text string) ModifierOption {
	return func(m *domain.Modifier) {
		m.RuleText = text
	}
}

func WithRuleOverride(text string) ModifierOption {
	return func(m *domain.Modifier) {
		m.RuleOverride = text
	}
}

func WithSlotOverride(slot, phrase string) ModifierOption {
	return func(m *domain.Modifier) {
		if m.SlotOverride == nil {
			m.SlotOverride = make(map[string]string)
		}
		m.SlotOverride[slot] = phrase
	}
}

func WithNovelty(n float64) ModifierOption {
	return func(m *domain.Modifier) {
		m.Novelty = n
	}
}

func NewTestModifier(id, name string, opts ...ModifierOption) domain.Modifier {
	m := domain.Modifier{
		ID:            id,
		Name:          name,
		Type:          "규칙 변형",
		SportAllow:    []string{"전체"},
		SuitablePhase: domain.PhaseBasic,
		TimeDelta:     2,
		RuleText:      name + " 규칙을 적용한다",
		Novelty:       2,
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Activity options
type ActivityOption func(*domain.Activity)

func WithActivityPhase(p domain.Phase) ActivityOption {
	return func(a *domain.Activity) {
		a.SuitablePhase = p
	}
}

func WithActivityEquipment(items ...string) ActivityOption {
	return func(a *domain.Activity) {
		a.Equipment = items
	}
}

func WithActivityDuration(min int) ActivityOption {
	return func(a *domain.Activity) {
		a.BaseDurationMin = min
	}
}

func NewTestActivity(id, name, sportID string, opts ...ActivityOption) domain.Activity {
	a := domain.Activity{
		ID:            id,
		Name:          name,
		SportID:       sportID,
		Space:         []string{"체육관"},
		SuitablePhase: domain.PhaseBasic,
		Steps: []string{
			"두 팀으로 나누어 경기장에 선다",
			name + " 규칙으로 경기를 진행한다",
		},
		FMS:             []string{"던지기", "피하기"},
		FMSCategory:     "조작",
		DifficultyBase:  1,
		BaseDurationMin: 15,
		Equipment:       []string{"콘"},
		TeachingTips:    []string{"경기 시작 전 규칙을 함께 확인한다"},
	}
	for _, opt := range opts {
		opt(&a)
	}
	return a
}

// ArchivedLesson options
type LessonOption func(*domain.ArchivedLesson)

func WithLessonSequence(sequenceID string, lessonNumber int) LessonOption {
	return func(l *domain.ArchivedLesson) {
		l.SequenceID = &sequenceID
		l.LessonNumber = &lessonNumber
	}
}

func WithLessonCreatedAt(t time.Time) LessonOption {
	return func(l *domain.ArchivedLesson) {
		l.CreatedAt = t
	}
}

func WithLessonSport(sport string) LessonOption {
	return func(l *domain.ArchivedLesson) {
		l.Sport = sport
	}
}

func NewTestArchivedLesson(title string, opts ...LessonOption) *domain.ArchivedLesson {
	l := &domain.ArchivedLesson{
		ID:          uuid.New().String(),
		Title:       title,
		Sport:       "피구",
		Grade:       "5학년",
		Engine:      domain.EngineModular,
		StructureID: "st_cone",
		Score:       70,
		CreatedAt:   time.Now().UTC().Truncate(time.Second),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}
