package domain

// Sport is immutable reference data describing one sport and the rules every
// candidate for it must honor.
type Sport struct {
	ID                   string       `json:"id" yaml:"id"`
	Name                 string       `json:"name" yaml:"name"`
	Domain               string       `json:"domain,omitempty" yaml:"domain,omitempty"`
	SubDomain            string       `json:"subDomain,omitempty" yaml:"subDomain,omitempty"`
	CoreRules            []string     `json:"coreRules" yaml:"coreRules"`
	RequiredConcepts     []string     `json:"requiredConcepts,omitempty" yaml:"requiredConcepts,omitempty"`
	SafetyRules          []string     `json:"safetyRules" yaml:"safetyRules"`
	DefaultEquipment     []string     `json:"defaultEquipment,omitempty" yaml:"defaultEquipment,omitempty"`
	ForbiddenModifierIDs []string     `json:"forbiddenModifierIds,omitempty" yaml:"forbiddenModifierIds,omitempty"`
	ForbiddenTags        []string     `json:"forbiddenTags,omitempty" yaml:"forbiddenTags,omitempty"`
	Skills               []string     `json:"skills,omitempty" yaml:"skills,omitempty"`
	HazardRules          []HazardRule `json:"hazardRules,omitempty" yaml:"hazardRules,omitempty"`
}

// HazardRule adds situational safety notes when a structure and a skill from
// the listed ids are compiled together.
type HazardRule struct {
	StructureIDs []string `json:"structureIds" yaml:"structureIds"`
	SkillIDs     []string `json:"skillIds" yaml:"skillIds"`
	Rules        []string `json:"rules" yaml:"rules"`
}

// Matches reports whether the rule applies to the structure/skill pairing.
func (h HazardRule) Matches(structureID, skillID string) bool {
	return containsID(h.StructureIDs, structureID) && containsID(h.SkillIDs, skillID)
}

// Skill is a sport-specific technique supplying phrases for structure slots.
type Skill struct {
	ID               string            `json:"id" yaml:"id"`
	Name             string            `json:"name" yaml:"name"`
	Sport            string            `json:"sport" yaml:"sport"`
	FMS              []string          `json:"fms" yaml:"fms"`
	FMSCategory      string            `json:"fmsCategory" yaml:"fmsCategory"`
	GradeRange       []string          `json:"gradeRange" yaml:"gradeRange"`
	SpaceNeeded      []string          `json:"spaceNeeded" yaml:"spaceNeeded"`
	Equipment        []string          `json:"equipment,omitempty" yaml:"equipment,omitempty"`
	SlotMapping      map[string]string `json:"slotMapping" yaml:"slotMapping"`
	TeachingCues     []string          `json:"teachingCues,omitempty" yaml:"teachingCues,omitempty"`
	CommonErrors     []string          `json:"commonErrors,omitempty" yaml:"commonErrors,omitempty"`
	QuickFixes       []string          `json:"quickFixes,omitempty" yaml:"quickFixes,omitempty"`
	ChallengeRules   []string          `json:"challengeRules,omitempty" yaml:"challengeRules,omitempty"`
	ClosureGameRules []string          `json:"closureGameRules,omitempty" yaml:"closureGameRules,omitempty"`
	GradeLevelHint   string            `json:"gradeLevelHint,omitempty" yaml:"gradeLevelHint,omitempty"`
	TacticalTags     []string          `json:"tacticalTags,omitempty" yaml:"tacticalTags,omitempty"`
}

// SlotKeys declares which flow slots a structure needs filled. Fallbacks
// supply default text for optional slots a skill does not map.
type SlotKeys struct {
	Required  []string          `json:"required" yaml:"required"`
	Optional  []string          `json:"optional,omitempty" yaml:"optional,omitempty"`
	Fallbacks map[string]string `json:"fallbacks,omitempty" yaml:"fallbacks,omitempty"`
}

// Structure is a reusable activity template ("activity atom") whose flow
// steps carry [slotName] placeholders.
type Structure struct {
	ID                      string    `json:"id" yaml:"id"`
	Name                    string    `json:"name" yaml:"name"`
	Space                   []string  `json:"space" yaml:"space"`
	SuitablePhase           Phase     `json:"suitablePhase" yaml:"suitablePhase"`
	Flow                    []string  `json:"flow" yaml:"flow"`
	SlotKeys                *SlotKeys `json:"slotKeys,omitempty" yaml:"slotKeys,omitempty"`
	CompatibleFMSCategories []string  `json:"compatibleFmsCategories,omitempty" yaml:"compatibleFmsCategories,omitempty"`
	DifficultyBase          int       `json:"difficultyBase" yaml:"difficultyBase"`
	BaseDurationMin         int       `json:"baseDurationMin" yaml:"baseDurationMin"`
	Equipment               []string  `json:"equipment,omitempty" yaml:"equipment,omitempty"`
	TeachingTips            []string  `json:"teachingTips,omitempty" yaml:"teachingTips,omitempty"`
	TacticalTags            []string  `json:"tacticalTags,omitempty" yaml:"tacticalTags,omitempty"`
	EditableFields          []string  `json:"editableFields,omitempty" yaml:"editableFields,omitempty"`
}

// Activity is a pre-authored whole activity compiled without slot
// substitution. Older activities predate SportID and are matched by id.
type Activity struct {
	ID              string   `json:"id" yaml:"id"`
	Name            string   `json:"name" yaml:"name"`
	SportID         string   `json:"sportId,omitempty" yaml:"sportId,omitempty"`
	Space           []string `json:"space" yaml:"space"`
	SuitablePhase   Phase    `json:"suitablePhase" yaml:"suitablePhase"`
	Steps           []string `json:"steps" yaml:"steps"`
	FMS             []string `json:"fms,omitempty" yaml:"fms,omitempty"`
	FMSCategory     string   `json:"fmsCategory,omitempty" yaml:"fmsCategory,omitempty"`
	SportSkills     []string `json:"sportSkills,omitempty" yaml:"sportSkills,omitempty"`
	DifficultyBase  int      `json:"difficultyBase" yaml:"difficultyBase"`
	BaseDurationMin int      `json:"baseDurationMin" yaml:"baseDurationMin"`
	Equipment       []string `json:"equipment,omitempty" yaml:"equipment,omitempty"`
	TeachingTips    []string `json:"teachingTips,omitempty" yaml:"teachingTips,omitempty"`
	TacticalTags    []string `json:"tacticalTags,omitempty" yaml:"tacticalTags,omitempty"`
}

// Modifier is a composable rule variant layered onto a compiled activity.
type Modifier struct {
	ID               string            `json:"id" yaml:"id"`
	Name             string            `json:"name" yaml:"name"`
	Type             string            `json:"type" yaml:"type"`
	SportAllow       []string          `json:"sportAllow" yaml:"sportAllow"`
	Space            []string          `json:"space" yaml:"space"`
	SuitablePhase    Phase             `json:"suitablePhase" yaml:"suitablePhase"`
	EquipmentNeeded  []string          `json:"equipmentNeeded,omitempty" yaml:"equipmentNeeded,omitempty"`
	DifficultyDelta  int               `json:"difficultyDelta" yaml:"difficultyDelta"`
	TimeDelta        int               `json:"timeDelta" yaml:"timeDelta"`
	RuleOverride     string            `json:"ruleOverride,omitempty" yaml:"ruleOverride,omitempty"`
	RuleText         string            `json:"ruleText,omitempty" yaml:"ruleText,omitempty"`
	SlotOverride     map[string]string `json:"slotOverride,omitempty" yaml:"slotOverride,omitempty"`
	IncompatibleWith []string          `json:"incompatibleWith,omitempty" yaml:"incompatibleWith,omitempty"`
	ConstraintTags   []string          `json:"constraintTags,omitempty" yaml:"constraintTags,omitempty"`
	Novelty          float64           `json:"novelty" yaml:"novelty"`
	TeacherMeaning   string            `json:"teacherMeaning,omitempty" yaml:"teacherMeaning,omitempty"`
	SetupExample     string            `json:"setupExample,omitempty" yaml:"setupExample,omitempty"`
	ScoringExample   string            `json:"scoringExample,omitempty" yaml:"scoringExample,omitempty"`
}

// EffectiveRuleText is the explanation shown for the modifier in the body
// of a candidate.
func (m Modifier) EffectiveRuleText() string {
	return CoalesceStr(m.RuleText, m.RuleOverride, m.TeacherMeaning)
}

// GradeConfig is the per-grade curriculum progression.
type GradeConfig struct {
	Grade            string  `json:"grade" yaml:"grade"`
	AllowedPhases    []Phase `json:"allowedPhases" yaml:"allowedPhases"`
	MaxModifierCount int     `json:"maxModifierCount" yaml:"maxModifierCount"`
}

// AllowsPhase reports whether the grade admits the phase.
func (g GradeConfig) AllowsPhase(p Phase) bool {
	for _, allowed := range g.AllowedPhases {
		if allowed == p {
			return true
		}
	}
	return false
}

func containsID(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
