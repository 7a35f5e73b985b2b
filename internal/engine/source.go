package engine

import (
	"github.com/alexanderramin/lessonsmith/internal/app"
	"github.com/alexanderramin/lessonsmith/internal/catalog"
	"github.com/alexanderramin/lessonsmith/internal/compiler"
	"github.com/alexanderramin/lessonsmith/internal/domain"
	"github.com/alexanderramin/lessonsmith/internal/textmatch"
)

// Draft is one base unit a source can compile repeatedly with different
// modifier selections.
type Draft struct {
	BaseID  string
	Compile func(mods []domain.Modifier) *domain.Candidate
}

// CandidateSource yields the drafts the generator samples from.
type CandidateSource interface {
	Engine() domain.Engine
	Drafts(pool catalog.Compatible, req app.GenerateRequest) []Draft
	// EmptyReason is reported when Drafts returns nothing.
	EmptyReason() string
}

// modularSource pairs every compatible structure with every skill that can
// fill its slots.
type modularSource struct{}

func (modularSource) Engine() domain.Engine { return domain.EngineModular }

func (modularSource) EmptyReason() string { return app.ReasonNoModularPairs }

func (modularSource) Drafts(pool catalog.Compatible, req app.GenerateRequest) []Draft {
	skills := softNarrow(pool.Skills, func(sk domain.Skill) bool {
		return matchesAnySkill(req.SportSkills, sk.ID, sk.Name)
	}, len(req.SportSkills) > 0)

	structures := softNarrow(pool.Structures, func(st domain.Structure) bool {
		return containsID(req.PreferredStructureIDs, st.ID)
	}, len(req.PreferredStructureIDs) > 0)
	structures = softNarrow(structures, func(st domain.Structure) bool {
		return !containsID(req.ExcludedStructureIDs, st.ID)
	}, len(req.ExcludedStructureIDs) > 0)

	sport := pool.Sport
	var drafts []Draft
	for _, st := range structures {
		for _, sk := range skills {
			if !compiler.FMSCompatible(st, sk) {
				continue
			}
			if !compiler.CheckSlotCompatibility(st, sk).Compatible {
				continue
			}
			drafts = append(drafts, Draft{
				BaseID: st.ID,
				Compile: func(mods []domain.Modifier) *domain.Candidate {
					return compiler.CompileModular(sport, st, sk, mods)
				},
			})
		}
	}
	return drafts
}

// activitySource offers each pre-authored activity as a single draft.
type activitySource struct{}

func (activitySource) Engine() domain.Engine { return domain.EngineActivity }

func (activitySource) EmptyReason() string { return app.ReasonNoActivities }

func (activitySource) Drafts(pool catalog.Compatible, req app.GenerateRequest) []Draft {
	activities := softNarrow(pool.Activities, func(a domain.Activity) bool {
		for _, s := range a.SportSkills {
			if matchesAnySkill(req.SportSkills, s, s) {
				return true
			}
		}
		return matchesAnySkill(req.SportSkills, a.ID, a.Name)
	}, len(req.SportSkills) > 0)
	activities = softNarrow(activities, func(a domain.Activity) bool {
		return !containsID(req.ExcludedStructureIDs, a.ID)
	}, len(req.ExcludedStructureIDs) > 0)

	sport := pool.Sport
	drafts := make([]Draft, 0, len(activities))
	for _, a := range activities {
		drafts = append(drafts, Draft{
			BaseID: a.ID,
			Compile: func(mods []domain.Modifier) *domain.Candidate {
				return compiler.CompileActivity(sport, a, mods)
			},
		})
	}
	return drafts
}

// softNarrow keeps the items matching keep, unless that would leave none.
func softNarrow[T any](items []T, keep func(T) bool, enabled bool) []T {
	if !enabled {
		return items
	}
	var narrowed []T
	for _, it := range items {
		if keep(it) {
			narrowed = append(narrowed, it)
		}
	}
	if len(narrowed) == 0 {
		return items
	}
	return narrowed
}

func matchesAnySkill(requested []string, id, name string) bool {
	for _, r := range requested {
		if textmatch.Equal(r, id) || textmatch.SoftContains(r, name) {
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
