package engine

import (
	"github.com/alexanderramin/lessonsmith/internal/app"
	"github.com/alexanderramin/lessonsmith/internal/domain"
	"github.com/google/uuid"
)

// GenerateSequence plans lessonCount lessons (clamped to [2, 5]) with phase
// progression. Titles and base structures used by earlier lessons are fed
// back as history and exclusions, and each lesson takes the best candidate
// not yet used. When every candidate repeats, the top one is reused rather
// than leaving the lesson empty.
func (g *Generator) GenerateSequence(req app.GenerateRequest, lessonCount int) app.SequenceResponse {
	n := app.ClampLessonCount(lessonCount)
	resp := app.SequenceResponse{
		SequenceID: uuid.NewString(),
		Meta:       app.SequenceMeta{RequestedLessons: n},
	}

	usedTitles := make(map[string]bool)
	usedBases := make(map[string]bool)
	var titles, bases []string

	for i := 1; i <= n; i++ {
		phase := app.PhaseForLesson(i)
		lessonReq := req
		lessonReq.PreferredPhase = phase
		lessonReq.LessonHistory = append(append([]string(nil), req.LessonHistory...), titles...)
		lessonReq.ExcludedStructureIDs = append(append([]string(nil), req.ExcludedStructureIDs...), bases...)

		lesson := app.SequenceLesson{LessonNumber: i, Phase: phase}
		pick, engine, reused, reason := g.pickLesson(lessonReq, usedTitles, usedBases)
		if pick == nil {
			lesson.FailureReason = reason
			resp.Lessons = append(resp.Lessons, lesson)
			continue
		}

		lesson.Candidate = pick
		lesson.Engine = engine
		if reused {
			resp.Meta.ReusedFallbacks++
		}
		resp.Meta.FilledLessons++
		usedTitles[pick.Title] = true
		usedBases[pick.BaseID()] = true
		titles = append(titles, pick.Title)
		bases = append(bases, pick.BaseID())
		resp.Lessons = append(resp.Lessons, lesson)
	}
	return resp
}

// pickLesson tries the modular engine, then the activity engine, for an
// unused candidate. Failing that it falls back to the first engine's top
// candidate.
func (g *Generator) pickLesson(req app.GenerateRequest, usedTitles, usedBases map[string]bool) (*domain.Candidate, domain.Engine, bool, string) {
	var fallback *domain.Candidate
	var fallbackEngine domain.Engine
	var reason string

	for _, src := range []CandidateSource{modularSource{}, activitySource{}} {
		res := g.Generate(req, src)
		if len(res.Candidates) == 0 {
			if reason == "" {
				reason = res.Meta.Reason
			}
			continue
		}
		for _, c := range res.Candidates {
			if !usedTitles[c.Title] && !usedBases[c.BaseID()] {
				return c, src.Engine(), false, ""
			}
		}
		if fallback == nil {
			fallback = res.Candidates[0]
			fallbackEngine = src.Engine()
		}
	}
	if fallback != nil {
		return fallback, fallbackEngine, true, ""
	}
	return nil, "", false, reason
}
