package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/lessonsmith/internal/app"
	"github.com/alexanderramin/lessonsmith/internal/domain"
)

// FormatCandidates renders a generation response as numbered cards followed
// by the generation summary. Empty responses explain why nothing was found.
func FormatCandidates(resp *app.GenerateResponse, limit int) string {
	var b strings.Builder
	shown := resp.Candidates
	if limit > 0 && len(shown) > limit {
		shown = shown[:limit]
	}
	for i, c := range shown {
		b.WriteString(FormatCandidateCard(i+1, c))
		b.WriteString("\n")
	}
	b.WriteString(FormatMeta(resp.Meta, len(resp.Candidates)))
	return b.String()
}

// FormatCandidateCard renders one candidate: a headline with score and
// difficulty, then its rendered card body.
func FormatCandidateCard(n int, c *domain.Candidate) string {
	score := ScoreStyle(c.Score).Render(fmt.Sprintf("%d점", c.Score))
	head := fmt.Sprintf("%s %s  %s  %s  %s",
		StyleDim.Render(fmt.Sprintf("#%d", n)),
		Bold(c.Title),
		score,
		DifficultyDots(c.DifficultyLevel),
		Dim(fmt.Sprintf("%d분", c.EstimatedDurationMin)),
	)

	var body strings.Builder
	if c.Rendered != nil {
		body.WriteString(strings.TrimSpace(c.Rendered.Body))
	}
	body.WriteString("\n\n")
	body.WriteString(Dim(FormatBreakdown(c.ScoreBreakdown, c.DuplicatePenalty)))
	return head + "\n" + RenderBox("", body.String()) + "\n"
}

// FormatBreakdown is the one-line score composition.
func FormatBreakdown(b domain.ScoreBreakdown, duplicatePenalty int) string {
	line := fmt.Sprintf("FMS %d · 전략 %d · 운영 %d · 새로움 %d · 중복 회피 %d",
		b.FMS, b.Strategic, b.Operability, b.Novelty, b.DuplicateAvoidance)
	if duplicatePenalty > 0 {
		line += fmt.Sprintf(" (중복 -%d)", duplicatePenalty)
	}
	return line
}

// FormatMeta summarizes attempts, pool sizes, and the most common failures.
func FormatMeta(meta app.GenerationMeta, candidates int) string {
	var b strings.Builder
	b.WriteString(Header("Generation"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "engine %s · %d candidates · %d attempts · pool %d structures, %d skills, %d modifiers, %d activities\n",
		meta.Engine, candidates, meta.Attempts,
		meta.Pool.Structures, meta.Pool.Skills, meta.Pool.Modifiers, meta.Pool.Activities)
	if meta.Reason != "" {
		b.WriteString(StyleRed.Render(meta.Reason))
		b.WriteString("\n")
	}
	for _, f := range meta.TopFailureReasons {
		fmt.Fprintf(&b, "  %s %s\n", StyleYellow.Render(fmt.Sprintf("%3d×", f.Count)), f.Reason)
	}
	return b.String()
}

// FormatSequence renders each lesson of a sequence with its phase, or the
// reason it could not be filled.
func FormatSequence(resp *app.SequenceResponse) string {
	var b strings.Builder
	b.WriteString(Header(fmt.Sprintf("Sequence %s", ShortID(resp.SequenceID))))
	b.WriteString("\n")
	for _, l := range resp.Lessons {
		label := StyleBlue.Render(fmt.Sprintf("%d차시 · %s", l.LessonNumber, l.Phase))
		if l.Candidate == nil {
			fmt.Fprintf(&b, "%s  %s\n\n", label, StyleRed.Render(CoalesceReason(l.FailureReason)))
			continue
		}
		fmt.Fprintf(&b, "%s  %s\n", label, Dim(string(l.Engine)))
		b.WriteString(FormatCandidateCard(l.LessonNumber, l.Candidate))
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "%d/%d lessons filled", resp.Meta.FilledLessons, resp.Meta.RequestedLessons)
	if resp.Meta.ReusedFallbacks > 0 {
		b.WriteString(StyleYellow.Render(fmt.Sprintf(" · %d reused", resp.Meta.ReusedFallbacks)))
	}
	b.WriteString("\n")
	return b.String()
}

// CoalesceReason substitutes a generic message for an empty failure reason.
func CoalesceReason(reason string) string {
	return domain.CoalesceStr(reason, app.ReasonNoValidCandidate)
}
