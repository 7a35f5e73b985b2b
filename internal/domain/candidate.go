package domain

// ModifierNarrative is the full body entry for a modifier selected into a
// candidate. Every modifier named in a title must have one.
type ModifierNarrative struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Type             string   `json:"type"`
	RuleText         string   `json:"ruleText"`
	Equipment        []string `json:"equipment,omitempty"`
	ConstraintTags   []string `json:"constraintTags,omitempty"`
	IncompatibleWith []string `json:"incompatibleWith,omitempty"`
	Novelty          float64  `json:"novelty"`
	TeacherMeaning   string   `json:"teacherMeaning,omitempty"`
	SetupExample     string   `json:"setupExample,omitempty"`
	ScoringExample   string   `json:"scoringExample,omitempty"`
}

// ScoreBreakdown holds the five weighted score components.
type ScoreBreakdown struct {
	FMS                int `json:"fms"`
	Strategic          int `json:"strategic"`
	Operability        int `json:"operability"`
	Novelty            int `json:"novelty"`
	DuplicateAvoidance int `json:"duplicateAvoidance"`
}

// Total sums the components.
func (b ScoreBreakdown) Total() int {
	return b.FMS + b.Strategic + b.Operability + b.Novelty + b.DuplicateAvoidance
}

// ValidationResult is the outcome of checking a candidate against hard rules.
// OperationScore feeds scoring only and does not decide validity.
type ValidationResult struct {
	Valid            bool     `json:"valid"`
	Reasons          []string `json:"reasons,omitempty"`
	MissingEquipment []string `json:"missingEquipment,omitempty"`
	OperationScore   int      `json:"operationScore"`
}

// RenderedTemplate is the card form of a candidate shown to teachers.
type RenderedTemplate struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// Candidate is one compiled lesson-activity proposal.
type Candidate struct {
	Title       string `json:"title"`
	Sport       string `json:"sport"`
	Engine      Engine `json:"engine"`
	StructureID string `json:"structureId,omitempty"`
	SkillID     string `json:"skillId,omitempty"`
	ActivityID  string `json:"activityId,omitempty"`
	// BaseName is the bare structure or activity name, used for history matching.
	BaseName string `json:"baseName"`
	Phase    Phase  `json:"phase"`

	Modifiers          []ModifierNarrative `json:"modifiers"`
	TitleModifierNames []string            `json:"titleModifierNames"`
	ModifierDetails    []string            `json:"modifierDetails"`

	CompiledFlow      []string `json:"compiledFlow"`
	BasicRules        []string `json:"basicRules"`
	PenaltiesMissions []string `json:"penaltiesMissions"`
	OperationTips     []string `json:"operationTips"`
	EducationEffects  []string `json:"educationEffects"`
	Equipment         []string `json:"equipment"`
	SafetyRules       []string `json:"safetyRules"`
	Location          []string `json:"location"`

	EstimatedDurationMin int             `json:"estimatedDurationMin"`
	Difficulty           DifficultyLabel `json:"difficulty"`
	DifficultyLevel      int             `json:"difficultyLevel"`
	FMSTags              []string        `json:"fmsTags"`
	SportSkillTags       []string        `json:"sportSkillTags"`
	TacticalTags         []string        `json:"tacticalTags"`
	SlotCoverage         float64         `json:"slotCoverage"`

	Score            int               `json:"score"`
	ScoreBreakdown   ScoreBreakdown    `json:"scoreBreakdown"`
	DuplicatePenalty int               `json:"duplicatePenalty"`
	Validation       ValidationResult  `json:"validation"`
	Rendered         *RenderedTemplate `json:"rendered,omitempty"`
}

// ModifierIDs returns the ids of the selected modifiers in selection order.
func (c *Candidate) ModifierIDs() []string {
	ids := make([]string, len(c.Modifiers))
	for i, m := range c.Modifiers {
		ids[i] = m.ID
	}
	return ids
}

// BaseID returns the structure id for modular candidates and the activity id
// for flat ones.
func (c *Candidate) BaseID() string {
	return CoalesceStr(c.StructureID, c.ActivityID)
}
