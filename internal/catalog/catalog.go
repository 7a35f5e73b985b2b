// Package catalog holds the read-only module catalog (sports, skills,
// structures, activities, modifiers, grade progression) and the
// compatibility filter that narrows it to one request.
package catalog

import (
	"github.com/alexanderramin/lessonsmith/internal/domain"
	"github.com/alexanderramin/lessonsmith/internal/textmatch"
)

// Bundle is the on-disk shape of a catalog file. Several bundles may be
// merged into one catalog.
type Bundle struct {
	Grades     []domain.GradeConfig `json:"grades" yaml:"grades"`
	Sports     []domain.Sport       `json:"sports" yaml:"sports"`
	Skills     []domain.Skill       `json:"skills" yaml:"skills"`
	Structures []domain.Structure   `json:"structures" yaml:"structures"`
	Activities []domain.Activity    `json:"activities" yaml:"activities"`
	Modifiers  []domain.Modifier    `json:"modifiers" yaml:"modifiers"`
}

// Catalog is an immutable, indexed view over a bundle. The engine never
// mutates it; callers must not either.
type Catalog struct {
	grades     []domain.GradeConfig
	sports     []domain.Sport
	skills     []domain.Skill
	structures []domain.Structure
	activities []domain.Activity
	modifiers  []domain.Modifier

	sportIdx    map[string]int
	gradeIdx    map[string]int
	modifierIdx map[string]int
	skillIdx    map[string]int
}

// New indexes a bundle. Later entries with a duplicate id replace earlier
// ones in lookups; Validate reports duplicates.
func New(b Bundle) *Catalog {
	c := &Catalog{
		grades:      b.Grades,
		sports:      b.Sports,
		skills:      b.Skills,
		structures:  b.Structures,
		activities:  b.Activities,
		modifiers:   b.Modifiers,
		sportIdx:    make(map[string]int),
		gradeIdx:    make(map[string]int),
		modifierIdx: make(map[string]int),
		skillIdx:    make(map[string]int),
	}
	for i, s := range c.sports {
		c.sportIdx[textmatch.Normalize(s.ID)] = i
		c.sportIdx[textmatch.Normalize(s.Name)] = i
	}
	for i, g := range c.grades {
		c.gradeIdx[textmatch.Normalize(g.Grade)] = i
	}
	for i, m := range c.modifiers {
		c.modifierIdx[m.ID] = i
	}
	for i, s := range c.skills {
		c.skillIdx[s.ID] = i
	}
	return c
}

// Sport resolves a sport by id or name.
func (c *Catalog) Sport(idOrName string) (*domain.Sport, bool) {
	i, ok := c.sportIdx[textmatch.Normalize(idOrName)]
	if !ok || idOrName == "" {
		return nil, false
	}
	return &c.sports[i], true
}

// Grade resolves a grade's progression config.
func (c *Catalog) Grade(grade string) (*domain.GradeConfig, bool) {
	i, ok := c.gradeIdx[textmatch.Normalize(grade)]
	if !ok || grade == "" {
		return nil, false
	}
	return &c.grades[i], true
}

func (c *Catalog) Modifier(id string) (*domain.Modifier, bool) {
	i, ok := c.modifierIdx[id]
	if !ok {
		return nil, false
	}
	return &c.modifiers[i], true
}

func (c *Catalog) Skill(id string) (*domain.Skill, bool) {
	i, ok := c.skillIdx[id]
	if !ok {
		return nil, false
	}
	return &c.skills[i], true
}

func (c *Catalog) Sports() []domain.Sport { return c.sports }
func (c *Catalog) Grades() []domain.GradeConfig { return c.grades }
func (c *Catalog) Skills() []domain.Skill { return c.skills }
func (c *Catalog) Structures() []domain.Structure { return c.structures }
func (c *Catalog) Activities() []domain.Activity { return c.activities }
func (c *Catalog) Modifiers() []domain.Modifier { return c.modifiers }

// Bundle returns the catalog contents in their on-disk shape.
func (c *Catalog) Bundle() Bundle {
	return Bundle{
		Grades:     c.grades,
		Sports:     c.sports,
		Skills:     c.skills,
		Structures: c.structures,
		Activities: c.activities,
		Modifiers:  c.modifiers,
	}
}

// Merge appends the entries of other bundles onto b.
func (b Bundle) Merge(others ...Bundle) Bundle {
	out := b
	for _, o := range others {
		out.Grades = append(out.Grades, o.Grades...)
		out.Sports = append(out.Sports, o.Sports...)
		out.Skills = append(out.Skills, o.Skills...)
		out.Structures = append(out.Structures, o.Structures...)
		out.Activities = append(out.Activities, o.Activities...)
		out.Modifiers = append(out.Modifiers, o.Modifiers...)
	}
	return out
}
