package testutil

import (
	"github.com/alexanderramin/lessonsmith/internal/app"
	"github.com/alexanderramin/lessonsmith/internal/catalog"
	"github.com/alexanderramin/lessonsmith/internal/domain"
)

// Ids of the synthetic dodgeball catalog returned by NewTestBundle.
const (
	SportDodgeball = "dodgeball"
	SportSoccer    = "soccer"

	StructureCone = "st_cone"
	StructureBall = "st_ball"
	StructurePair = "st_pair"

	SkillThrow = "sk_throw"
	SkillStep  = "sk_step"
	SkillKick  = "sk_kick"

	ModA         = "mod_a"
	ModB         = "mod_b"
	ModPenalty   = "mod_penalty"
	ModForbidden = "mod_forbidden"
	ModTagged    = "mod_tagged"
	ModWhistle   = "mod_whistle"

	ActivityKing   = "act_king"
	ActivityLegacy = "dodge_circle"
)

// NewTestBundle returns a small dodgeball-centred catalog. Every structure
// requires only slots both dodgeball skills supply, except st_ball which
// needs [기술] and a ball.
func NewTestBundle() catalog.Bundle {
	return catalog.Bundle{
		Grades: []domain.GradeConfig{
			{Grade: "5학년", AllowedPhases: []domain.Phase{domain.PhaseBasic, domain.PhaseApplied, domain.PhaseChallenge}, MaxModifierCount: 3},
			{Grade: "3학년", AllowedPhases: []domain.Phase{domain.PhaseBasic, domain.PhaseApplied}, MaxModifierCount: 2},
		},
		Sports: []domain.Sport{
			NewTestSport(SportDodgeball, "피구",
				WithCoreRules("공에 맞으면 외야로 나간다"),
				WithRequiredConcepts("외야"),
				WithForbiddenModifiers(ModForbidden),
				WithForbiddenTags("고강도 충돌"),
				WithAllowedSkills(SkillThrow, SkillStep),
				WithHazardRule(StructureBall, SkillThrow, "던지는 방향에 사람이 없는지 확인한다"),
			),
			NewTestSport(SportSoccer, "축구",
				WithCoreRules("손을 사용하지 않는다"),
				WithDefaultEquipment("축구공"),
			),
		},
		Skills: []domain.Skill{
			NewTestSkill(SkillThrow, "던지기", "피구",
				WithSlot("기술", "피구공 던지기"),
				WithSlot("동작", "한 손 던지기 자세"),
				WithSkillTactics("공격 전환"),
			),
			NewTestSkill(SkillStep, "피하기", SportDodgeball,
				WithoutSlots(),
				WithSlot("동작", "사이드 스텝"),
				WithFMS("이동", "피하기", "달리기"),
			),
			NewTestSkill(SkillKick, "차기", "축구",
				WithFMS("조작", "차기"),
			),
		},
		Structures: []domain.Structure{
			NewTestStructure(StructureCone, "콘 릴레이"),
			NewTestStructure(StructureBall, "패스 게임",
				WithRequiredSlots("기술"),
				WithFlow("두 줄로 마주 선다", "[기술]로 짝에게 공을 보낸다"),
				WithStructureEquipment("피구공 또는 공"),
				WithBaseDuration(16),
			),
			NewTestStructure(StructurePair, "짝 대결",
				WithStructurePhase(domain.PhaseApplied),
				WithFlow("짝과 마주 선다", "[동작]으로 [목표]"),
				WithOptionalSlot("목표", "상대보다 먼저 도착한다"),
				WithStructureEquipment("콘", "조끼"),
				WithDifficultyBase(2),
				WithBaseDuration(18),
				WithStructureTactics("역할 분담"),
			),
		},
		Activities: []domain.Activity{
			NewTestActivity(ActivityKing, "왕 피구", SportDodgeball, WithActivityPhase(domain.PhaseApplied)),
			NewTestActivity(ActivityLegacy, "원형 피구", ""),
		},
		Modifiers: []domain.Modifier{
			NewTestModifier(ModA, "보너스 점수", WithModifierType("점수"), WithIncompatible(ModB)),
			NewTestModifier(ModB, "두 배 점수", WithModifierType("시간"), WithIncompatible(ModA)),
			NewTestModifier(ModPenalty, "스쿼트 벌칙",
				WithModifierType("벌칙"),
				WithRuleText("진 팀은 스쿼트 5회를 한다"),
				WithNovelty(1),
			),
			NewTestModifier(ModForbidden, "위험 규칙", WithModifierType("위험")),
			NewTestModifier(ModTagged, "몸싸움 허용",
				WithModifierType("접촉"),
				WithConstraintTags("고강도 충돌"),
			),
			NewTestModifier(ModWhistle, "휘슬 신호",
				WithModifierType("신호"),
				WithEquipmentNeeded("호루라기"),
				WithRuleOverride("휘슬이 울리면 공격과 수비를 바꾼다"),
			),
		},
	}
}

// NewTestCatalog indexes NewTestBundle after applying edits.
func NewTestCatalog(edits ...func(*catalog.Bundle)) *catalog.Catalog {
	b := NewTestBundle()
	for _, edit := range edits {
		edit(&b)
	}
	return catalog.New(b)
}

// NewTestRequest returns the 5th-grade dodgeball gym request the fixtures
// are built around.
func NewTestRequest() app.GenerateRequest {
	return app.NewGenerateRequest("5학년", "피구", "체육관")
}
