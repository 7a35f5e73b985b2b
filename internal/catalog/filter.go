package catalog

import (
	"strings"

	"github.com/alexanderramin/lessonsmith/internal/app"
	"github.com/alexanderramin/lessonsmith/internal/domain"
	"github.com/alexanderramin/lessonsmith/internal/textmatch"
)

// legacyActivityPrefixes maps id prefixes of activities authored before
// SportID existed to their sport id. Checked in order.
var legacyActivityPrefixes = []struct {
	prefix  string
	sportID string
}{
	{"dodge_", "dodgeball"},
	{"pigu_", "dodgeball"},
	{"soccer_", "soccer"},
	{"foot_", "soccer"},
	{"basket_", "basketball"},
	{"bball_", "basketball"},
}

// ActivitySportID returns the activity's sport id, falling back to the
// legacy id-prefix map.
func ActivitySportID(a domain.Activity) string {
	if a.SportID != "" {
		return a.SportID
	}
	for _, l := range legacyActivityPrefixes {
		if strings.HasPrefix(a.ID, l.prefix) {
			return l.sportID
		}
	}
	return ""
}

// Compatible is the slice of the catalog usable for one request. Sport and
// Grade are nil when the request names an unknown sport or grade.
type Compatible struct {
	Sport      *domain.Sport
	Grade      *domain.GradeConfig
	Structures []domain.Structure
	Skills     []domain.Skill
	Modifiers  []domain.Modifier
	Activities []domain.Activity
}

// Filter narrows the catalog to the items matching the request's sport,
// space, grade, and phase.
func (c *Catalog) Filter(req app.GenerateRequest) Compatible {
	var out Compatible
	sport, ok := c.Sport(req.Sport)
	if !ok {
		return out
	}
	out.Sport = sport
	grade, ok := c.Grade(req.Grade)
	if !ok {
		return out
	}
	out.Grade = grade

	out.Structures = c.filterStructures(req, grade)
	out.Skills = c.filterSkills(req, sport)
	out.Modifiers = c.filterModifiers(req, sport, grade)
	out.Activities = c.filterActivities(req, sport, grade)
	return out
}

func (c *Catalog) filterStructures(req app.GenerateRequest, grade *domain.GradeConfig) []domain.Structure {
	var matched []domain.Structure
	for _, st := range c.structures {
		if !supportsSpace(st.Space, req.Space) || !grade.AllowsPhase(st.SuitablePhase) {
			continue
		}
		matched = append(matched, st)
	}
	return preferPhase(matched, req.PreferredPhase, func(st domain.Structure) domain.Phase { return st.SuitablePhase })
}

func (c *Catalog) filterSkills(req app.GenerateRequest, sport *domain.Sport) []domain.Skill {
	allowed := make(map[string]bool, len(sport.Skills))
	for _, id := range sport.Skills {
		allowed[id] = true
	}

	var matched []domain.Skill
	for _, sk := range c.skills {
		if !sameSport(sk.Sport, sport) {
			continue
		}
		// An empty allow-list means the sport has not restricted its skills.
		if len(allowed) > 0 && !allowed[sk.ID] {
			continue
		}
		if !textmatch.ContainsEqual(sk.GradeRange, req.Grade) {
			continue
		}
		if !supportsSpace(sk.SpaceNeeded, req.Space) {
			continue
		}
		matched = append(matched, sk)
	}
	return matched
}

func (c *Catalog) filterModifiers(req app.GenerateRequest, sport *domain.Sport, grade *domain.GradeConfig) []domain.Modifier {
	forbidden := make(map[string]bool, len(sport.ForbiddenModifierIDs))
	for _, id := range sport.ForbiddenModifierIDs {
		forbidden[id] = true
	}

	var matched []domain.Modifier
	for _, m := range c.modifiers {
		if forbidden[m.ID] {
			continue
		}
		if !textmatch.SportAllowed(m.SportAllow, sport.ID, sport.Name) {
			continue
		}
		// Modifiers without a space list work anywhere.
		if len(m.Space) > 0 && !supportsSpace(m.Space, req.Space) {
			continue
		}
		if !grade.AllowsPhase(m.SuitablePhase) {
			continue
		}
		matched = append(matched, m)
	}
	return matched
}

func (c *Catalog) filterActivities(req app.GenerateRequest, sport *domain.Sport, grade *domain.GradeConfig) []domain.Activity {
	var matched []domain.Activity
	for _, a := range c.activities {
		if ActivitySportID(a) != sport.ID {
			continue
		}
		if !supportsSpace(a.Space, req.Space) || !grade.AllowsPhase(a.SuitablePhase) {
			continue
		}
		matched = append(matched, a)
	}
	return preferPhase(matched, req.PreferredPhase, func(a domain.Activity) domain.Phase { return a.SuitablePhase })
}

// preferPhase narrows items to the preferred phase when at least one item
// has it; otherwise it returns items unchanged.
func preferPhase[T any](items []T, preferred domain.Phase, phaseOf func(T) domain.Phase) []T {
	if preferred == "" {
		return items
	}
	var narrowed []T
	for _, it := range items {
		if phaseOf(it) == preferred {
			narrowed = append(narrowed, it)
		}
	}
	if len(narrowed) == 0 {
		return items
	}
	return narrowed
}

func supportsSpace(spaces []string, space string) bool {
	if space == "" {
		return true
	}
	return textmatch.ContainsEqual(spaces, space)
}

func sameSport(ref string, sport *domain.Sport) bool {
	return textmatch.Equal(ref, sport.ID) || textmatch.Equal(ref, sport.Name)
}
