// Package engine samples catalog modules into lesson candidates, validates
// and scores them, and sequences multi-lesson plans.
package engine

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/alexanderramin/lessonsmith/internal/app"
	"github.com/alexanderramin/lessonsmith/internal/catalog"
	"github.com/alexanderramin/lessonsmith/internal/domain"
	"github.com/alexanderramin/lessonsmith/internal/template"
)

const (
	// attemptsPerDraft bounds sampling so generation always terminates.
	attemptsPerDraft = 4
	// minDistinctBasesForDiversity is the smallest pool where repeated bases
	// get deferred.
	minDistinctBasesForDiversity = 3
	topFailureCount              = 3
)

// Generator produces candidates from a catalog. It owns its random source
// and is not safe for concurrent use.
type Generator struct {
	catalog *catalog.Catalog
	rng     *rand.Rand
}

// NewGenerator returns a generator over c. A nil rng is replaced by a
// time-seeded one.
func NewGenerator(c *catalog.Catalog, rng *rand.Rand) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Generator{catalog: c, rng: rng}
}

// GenerateModular samples structure x skill pairs.
func (g *Generator) GenerateModular(req app.GenerateRequest) app.GenerateResponse {
	return g.Generate(req, modularSource{})
}

// GenerateActivities samples pre-authored activities.
func (g *Generator) GenerateActivities(req app.GenerateRequest) app.GenerateResponse {
	return g.Generate(req, activitySource{})
}

// SourceFor returns the candidate source of an engine name.
func SourceFor(e domain.Engine) (CandidateSource, bool) {
	switch e {
	case domain.EngineModular:
		return modularSource{}, true
	case domain.EngineActivity:
		return activitySource{}, true
	}
	return nil, false
}

// Generate runs the shared sample, compile, validate, score loop over src.
// It never fails: empty results carry a reason in the meta.
func (g *Generator) Generate(req app.GenerateRequest, src CandidateSource) app.GenerateResponse {
	resp := app.GenerateResponse{
		Candidates: []*domain.Candidate{},
		Meta:       app.GenerationMeta{Engine: src.Engine(), TopFailureReasons: []app.FailureCount{}},
	}

	pool := g.catalog.Filter(req)
	if pool.Sport == nil {
		resp.Meta.Reason = fmt.Sprintf(app.ReasonUnsupportedSport, req.Sport)
		return resp
	}
	if pool.Grade == nil {
		resp.Meta.Reason = fmt.Sprintf(app.ReasonUnsupportedGrade, req.Grade)
		return resp
	}

	drafts := src.Drafts(pool, req)
	resp.Meta.Pool = app.PoolSizes{
		Structures: len(pool.Structures),
		Skills:     len(pool.Skills),
		Modifiers:  len(pool.Modifiers),
		Activities: len(pool.Activities),
		Drafts:     len(drafts),
	}
	if len(drafts) == 0 {
		resp.Meta.Reason = src.EmptyReason()
		return resp
	}
	g.rng.Shuffle(len(drafts), func(i, j int) { drafts[i], drafts[j] = drafts[j], drafts[i] })

	maxCandidates := domain.IntOrDefault(req.MaxCandidates, app.DefaultMaxCandidates)
	div := newDiversity(drafts, maxCandidates)
	failures := make(map[string]int)
	seenTitles := make(map[string]bool)

	budget := attemptsPerDraft * len(drafts)
	attempts := 0
	for attempts < budget && div.keptCount() < maxCandidates {
		d := drafts[attempts%len(drafts)]
		attempts++

		mods := SelectModifiers(pool.Modifiers, pool.Grade.MaxModifierCount, g.rng)
		c := d.Compile(mods)
		c.Validation = Validate(c, req, pool.Sport)
		if !c.Validation.Valid {
			for _, r := range c.Validation.Reasons {
				failures[r]++
			}
			continue
		}
		if seenTitles[c.Title] {
			continue
		}
		seenTitles[c.Title] = true

		score := ScoreCandidate(ScoringInput{
			Candidate:     c,
			CoreRules:     pool.Sport.CoreRules,
			FMSFocus:      req.FMSFocus,
			Validation:    c.Validation,
			LessonHistory: req.LessonHistory,
		})
		c.Score = score.Total
		c.ScoreBreakdown = score.Breakdown
		c.DuplicatePenalty = score.DuplicatePenalty
		div.offer(c)
	}
	resp.Meta.Attempts = attempts

	kept := div.result(maxCandidates)
	for _, c := range kept {
		c.Rendered = template.Render(c)
		if c.Rendered == nil {
			failures[app.ReasonRenderFailed]++
			continue
		}
		resp.Candidates = append(resp.Candidates, c)
	}

	resp.Meta.TopFailureReasons = topFailures(failures, topFailureCount)
	if len(resp.Candidates) == 0 {
		resp.Meta.Reason = app.ReasonNoValidCandidate
	}
	return resp
}

// diversity keeps candidates while deferring ones whose base already has
// its share of kept candidates. Deferred candidates fill remaining places
// at the end.
type diversity struct {
	perBaseCap int
	kept       []*domain.Candidate
	deferred   []*domain.Candidate
	perBase    map[string]int
}

func newDiversity(drafts []Draft, maxCandidates int) *diversity {
	bases := make(map[string]bool)
	for _, d := range drafts {
		bases[d.BaseID] = true
	}
	d := &diversity{perBase: make(map[string]int)}
	if len(bases) >= minDistinctBasesForDiversity {
		d.perBaseCap = max(2, (maxCandidates+len(bases)-1)/len(bases))
	}
	return d
}

func (d *diversity) offer(c *domain.Candidate) {
	base := c.BaseID()
	if d.perBaseCap > 0 && d.perBase[base] >= d.perBaseCap {
		d.deferred = append(d.deferred, c)
		return
	}
	d.perBase[base]++
	d.kept = append(d.kept, c)
}

func (d *diversity) keptCount() int {
	return len(d.kept)
}

// result returns kept candidates topped up from the deferred ones, sorted
// and capped.
func (d *diversity) result(maxCandidates int) []*domain.Candidate {
	out := append([]*domain.Candidate(nil), d.kept...)
	if len(out) < maxCandidates && len(d.deferred) > 0 {
		CanonicalSort(d.deferred)
		for _, c := range d.deferred {
			if len(out) >= maxCandidates {
				break
			}
			out = append(out, c)
		}
	}
	CanonicalSort(out)
	if len(out) > maxCandidates {
		out = out[:maxCandidates]
	}
	return out
}
