package catalog

import (
	"fmt"

	"github.com/alexanderramin/lessonsmith/internal/domain"
)

// Validate checks catalog integrity and returns every problem found. It also
// reports data gaps that would otherwise surface only as persistently empty
// generation results, such as a required slot no skill ever supplies.
func Validate(c *Catalog) []error {
	var errs []error

	errs = append(errs, validateGrades(c.grades)...)
	errs = append(errs, validateSports(c)...)
	errs = append(errs, validateSkills(c)...)
	errs = append(errs, validateStructures(c)...)
	errs = append(errs, validateActivities(c)...)
	errs = append(errs, validateModifiers(c)...)

	return errs
}

func validateGrades(grades []domain.GradeConfig) []error {
	var errs []error
	seen := make(map[string]bool)
	for i, g := range grades {
		prefix := fmt.Sprintf("grades[%d]", i)
		if g.Grade == "" {
			errs = append(errs, fmt.Errorf("%s.grade is required", prefix))
		} else if seen[g.Grade] {
			errs = append(errs, fmt.Errorf("%s: duplicate grade %q", prefix, g.Grade))
		}
		seen[g.Grade] = true
		if len(g.AllowedPhases) == 0 {
			errs = append(errs, fmt.Errorf("%s.allowedPhases must not be empty", prefix))
		}
		for _, p := range g.AllowedPhases {
			if !domain.ValidPhases[p] {
				errs = append(errs, fmt.Errorf("%s.allowedPhases: invalid phase %q", prefix, p))
			}
		}
		if g.MaxModifierCount < 0 {
			errs = append(errs, fmt.Errorf("%s.maxModifierCount must be >= 0", prefix))
		}
	}
	return errs
}

func validateSports(c *Catalog) []error {
	var errs []error
	seen := make(map[string]bool)
	for i, s := range c.sports {
		prefix := fmt.Sprintf("sports[%d]", i)
		if s.ID == "" {
			errs = append(errs, fmt.Errorf("%s.id is required", prefix))
		} else if seen[s.ID] {
			errs = append(errs, fmt.Errorf("%s: duplicate sport id %q", prefix, s.ID))
		}
		seen[s.ID] = true
		if s.Name == "" {
			errs = append(errs, fmt.Errorf("%s.name is required", prefix))
		}
		if len(s.CoreRules) == 0 {
			errs = append(errs, fmt.Errorf("%s (%s): coreRules must not be empty", prefix, s.Name))
		}
		if len(s.SafetyRules) == 0 {
			errs = append(errs, fmt.Errorf("%s (%s): safetyRules must not be empty", prefix, s.Name))
		}
		for _, id := range s.Skills {
			if _, ok := c.Skill(id); !ok {
				errs = append(errs, fmt.Errorf("%s (%s): unknown skill id %q", prefix, s.Name, id))
			}
		}
		for _, id := range s.ForbiddenModifierIDs {
			if _, ok := c.Modifier(id); !ok {
				errs = append(errs, fmt.Errorf("%s (%s): unknown forbidden modifier id %q", prefix, s.Name, id))
			}
		}
		for j, h := range s.HazardRules {
			if len(h.Rules) == 0 {
				errs = append(errs, fmt.Errorf("%s.hazardRules[%d]: rules must not be empty", prefix, j))
			}
		}
	}
	return errs
}

func validateSkills(c *Catalog) []error {
	var errs []error
	for i, sk := range c.skills {
		prefix := fmt.Sprintf("skills[%d] (%s)", i, sk.ID)
		if sk.ID == "" || sk.Name == "" {
			errs = append(errs, fmt.Errorf("skills[%d]: id and name are required", i))
		}
		if _, ok := c.Sport(sk.Sport); !ok {
			errs = append(errs, fmt.Errorf("%s: unknown sport %q", prefix, sk.Sport))
		}
		if len(sk.GradeRange) == 0 {
			errs = append(errs, fmt.Errorf("%s: gradeRange must not be empty", prefix))
		}
		for _, g := range sk.GradeRange {
			if _, ok := c.Grade(g); !ok {
				errs = append(errs, fmt.Errorf("%s: gradeRange references unknown grade %q", prefix, g))
			}
		}
		if len(sk.SlotMapping) == 0 {
			errs = append(errs, fmt.Errorf("%s: slotMapping must not be empty", prefix))
		}
	}
	return errs
}

func validateStructures(c *Catalog) []error {
	var errs []error
	supplied := make(map[string]bool)
	for _, sk := range c.skills {
		for k := range sk.SlotMapping {
			supplied[k] = true
		}
	}
	for _, m := range c.modifiers {
		for k := range m.SlotOverride {
			supplied[k] = true
		}
	}

	for i, st := range c.structures {
		prefix := fmt.Sprintf("structures[%d] (%s)", i, st.ID)
		if st.ID == "" || st.Name == "" {
			errs = append(errs, fmt.Errorf("structures[%d]: id and name are required", i))
		}
		if !domain.ValidPhases[st.SuitablePhase] {
			errs = append(errs, fmt.Errorf("%s: invalid suitablePhase %q", prefix, st.SuitablePhase))
		}
		if st.DifficultyBase < 1 || st.DifficultyBase > 3 {
			errs = append(errs, fmt.Errorf("%s: difficultyBase %d must be in 1..3", prefix, st.DifficultyBase))
		}
		if st.BaseDurationMin <= 0 {
			errs = append(errs, fmt.Errorf("%s: baseDurationMin must be positive", prefix))
		}
		if len(st.Flow) == 0 {
			errs = append(errs, fmt.Errorf("%s: flow must not be empty", prefix))
		}
		if st.SlotKeys != nil {
			for _, slot := range st.SlotKeys.Required {
				if !supplied[slot] {
					errs = append(errs, fmt.Errorf("%s: required slot [%s] is supplied by no skill", prefix, slot))
				}
			}
		}
	}
	return errs
}

func validateActivities(c *Catalog) []error {
	var errs []error
	for i, a := range c.activities {
		prefix := fmt.Sprintf("activities[%d] (%s)", i, a.ID)
		if a.ID == "" || a.Name == "" {
			errs = append(errs, fmt.Errorf("activities[%d]: id and name are required", i))
		}
		if !domain.ValidPhases[a.SuitablePhase] {
			errs = append(errs, fmt.Errorf("%s: invalid suitablePhase %q", prefix, a.SuitablePhase))
		}
		if a.DifficultyBase < 1 || a.DifficultyBase > 3 {
			errs = append(errs, fmt.Errorf("%s: difficultyBase %d must be in 1..3", prefix, a.DifficultyBase))
		}
		if len(a.Steps) == 0 {
			errs = append(errs, fmt.Errorf("%s: steps must not be empty", prefix))
		}
		if ActivitySportID(a) == "" {
			errs = append(errs, fmt.Errorf("%s: no sportId and no legacy id prefix", prefix))
		} else if _, ok := c.Sport(ActivitySportID(a)); !ok {
			errs = append(errs, fmt.Errorf("%s: unknown sport %q", prefix, ActivitySportID(a)))
		}
	}
	return errs
}

func validateModifiers(c *Catalog) []error {
	var errs []error
	seen := make(map[string]bool)
	for i, m := range c.modifiers {
		prefix := fmt.Sprintf("modifiers[%d] (%s)", i, m.ID)
		if m.ID == "" {
			errs = append(errs, fmt.Errorf("modifiers[%d].id is required", i))
		} else if seen[m.ID] {
			errs = append(errs, fmt.Errorf("%s: duplicate modifier id", prefix))
		}
		seen[m.ID] = true
		if m.Name == "" || m.Type == "" {
			errs = append(errs, fmt.Errorf("%s: name and type are required", prefix))
		}
		if m.EffectiveRuleText() == "" {
			errs = append(errs, fmt.Errorf("%s: ruleText or ruleOverride is required", prefix))
		}
		if !domain.ValidPhases[m.SuitablePhase] {
			errs = append(errs, fmt.Errorf("%s: invalid suitablePhase %q", prefix, m.SuitablePhase))
		}
		if len(m.SportAllow) == 0 {
			errs = append(errs, fmt.Errorf("%s: sportAllow must not be empty", prefix))
		}
		for _, id := range m.IncompatibleWith {
			if id == m.ID {
				errs = append(errs, fmt.Errorf("%s: incompatible with itself", prefix))
			} else if _, ok := c.Modifier(id); !ok {
				errs = append(errs, fmt.Errorf("%s: incompatibleWith references unknown modifier %q", prefix, id))
			}
		}
		if m.Novelty < 0 {
			errs = append(errs, fmt.Errorf("%s: novelty must be >= 0", prefix))
		}
	}
	return errs
}
