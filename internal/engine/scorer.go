package engine

import (
	"fmt"
	"math"
	"regexp"

	"github.com/alexanderramin/lessonsmith/internal/domain"
	"github.com/alexanderramin/lessonsmith/internal/textmatch"
)

// Component caps.
const (
	MaxFMSScore         = 35
	MaxStrategicScore   = 25
	MaxOperabilityScore = 20
	MaxNoveltyScore     = 10
	MaxDuplicateScore   = 10
)

const (
	noFocusFMSScore        = 20
	titleRepeatPenalty     = 7
	baseNameRepeatPenalty  = 4
	transitionBonus        = 7
	noTransitionBonus      = 3
	defaultModifierNovelty = 1.0
)

var transitionPattern = regexp.MustCompile(`전환|침투|지원`)

type ScoreReasonCode string

const (
	ReasonFMSFocus    ScoreReasonCode = "FMS_FOCUS"
	ReasonStrategic   ScoreReasonCode = "STRATEGIC"
	ReasonOperability ScoreReasonCode = "OPERABILITY"
	ReasonNovelty     ScoreReasonCode = "NOVELTY"
	ReasonDuplicate   ScoreReasonCode = "DUPLICATE_AVOIDANCE"
)

// ScoreReason explains one score component.
type ScoreReason struct {
	Code    ScoreReasonCode
	Points  int
	Message string
}

// ScoringInput carries a candidate and the request context it is scored
// against. CoreRules are the sport's core rules; only those present in the
// candidate's basic rules earn coverage points.
type ScoringInput struct {
	Candidate     *domain.Candidate
	CoreRules     []string
	FMSFocus      []string
	Validation    domain.ValidationResult
	LessonHistory []string
}

type ScoreResult struct {
	Total            int
	Breakdown        domain.ScoreBreakdown
	DuplicatePenalty int
	Reasons          []ScoreReason
}

// ScoreCandidate computes the weighted quality score of a validated
// candidate. The total is clamped to [0, 100].
func ScoreCandidate(input ScoringInput) ScoreResult {
	var result ScoreResult

	factors := []func(ScoringInput) ScoreReason{
		scoreFMSFocus,
		scoreStrategic,
		scoreOperability,
		scoreNovelty,
		scoreDuplicateAvoidance,
	}
	for _, f := range factors {
		reason := f(input)
		result.Reasons = append(result.Reasons, reason)
		switch reason.Code {
		case ReasonFMSFocus:
			result.Breakdown.FMS = reason.Points
		case ReasonStrategic:
			result.Breakdown.Strategic = reason.Points
		case ReasonOperability:
			result.Breakdown.Operability = reason.Points
		case ReasonNovelty:
			result.Breakdown.Novelty = reason.Points
		case ReasonDuplicate:
			result.Breakdown.DuplicateAvoidance = reason.Points
			result.DuplicatePenalty = MaxDuplicateScore - reason.Points
		}
	}

	result.Total = min(max(result.Breakdown.Total(), 0), 100)
	return result
}

func scoreFMSFocus(input ScoringInput) ScoreReason {
	if len(input.FMSFocus) == 0 {
		return ScoreReason{Code: ReasonFMSFocus, Points: noFocusFMSScore, Message: "FMS 초점 미지정"}
	}
	matched := 0
	for _, focus := range input.FMSFocus {
		for _, tag := range input.Candidate.FMSTags {
			if textmatch.FMSMatches(focus, tag) {
				matched++
				break
			}
		}
	}
	points := roundInt(MaxFMSScore * float64(matched) / float64(len(input.FMSFocus)))
	return ScoreReason{
		Code:    ReasonFMSFocus,
		Points:  points,
		Message: fmt.Sprintf("FMS 초점 %d/%d 일치", matched, len(input.FMSFocus)),
	}
}

func scoreStrategic(input ScoringInput) ScoreReason {
	c := input.Candidate
	tactical := min(10, 2*len(c.TacticalTags))
	core := coreRuleCount(c.BasicRules, input.CoreRules)
	coverage := min(8, 2*core)
	transition := noTransitionBonus
	for _, rule := range c.BasicRules {
		if transitionPattern.MatchString(rule) {
			transition = transitionBonus
			break
		}
	}
	return ScoreReason{
		Code:    ReasonStrategic,
		Points:  min(MaxStrategicScore, tactical+coverage+transition),
		Message: fmt.Sprintf("전술 태그 %d개, 핵심 규칙 %d개", len(c.TacticalTags), core),
	}
}

// coreRuleCount counts the core rules present in the basic rules. Modifier
// overrides and challenge rules add basic rules but no coverage.
func coreRuleCount(basicRules, coreRules []string) int {
	n := 0
	for _, core := range coreRules {
		for _, rule := range basicRules {
			if textmatch.Contains(rule, core) {
				n++
				break
			}
		}
	}
	return n
}

func scoreOperability(input ScoringInput) ScoreReason {
	op := input.Validation.OperationScore
	return ScoreReason{
		Code:    ReasonOperability,
		Points:  min(MaxOperabilityScore, max(0, roundInt(float64(op)/100*MaxOperabilityScore))),
		Message: fmt.Sprintf("운영 점수 %d", op),
	}
}

func scoreNovelty(input ScoringInput) ScoreReason {
	mods := input.Candidate.Modifiers
	avg := defaultModifierNovelty
	if len(mods) > 0 {
		sum := 0.0
		for _, m := range mods {
			sum += m.Novelty
		}
		avg = sum / float64(len(mods))
	}
	types := make(map[string]bool)
	for _, m := range mods {
		types[m.Type] = true
	}
	points := roundInt(avg + float64(min(4, len(types))))
	return ScoreReason{
		Code:    ReasonNovelty,
		Points:  min(MaxNoveltyScore, max(0, points)),
		Message: fmt.Sprintf("변형 규칙 유형 %d개", len(types)),
	}
}

func scoreDuplicateAvoidance(input ScoringInput) ScoreReason {
	c := input.Candidate
	penalty := 0
	message := "최근 수업과 겹치지 않음"
	switch {
	case textmatch.AnySoftContains(input.LessonHistory, c.Title):
		penalty += titleRepeatPenalty
		message = "최근 수업과 같은 제목"
	case anyContains(input.LessonHistory, c.BaseName):
		penalty += baseNameRepeatPenalty
		message = "최근 수업과 같은 활동 구조"
	}
	penalty = min(penalty, MaxDuplicateScore)
	return ScoreReason{Code: ReasonDuplicate, Points: MaxDuplicateScore - penalty, Message: message}
}

func anyContains(history []string, name string) bool {
	for _, h := range history {
		if textmatch.Contains(h, name) {
			return true
		}
	}
	return false
}

// roundInt rounds halves up.
func roundInt(x float64) int {
	return int(math.Floor(x + 0.5))
}
