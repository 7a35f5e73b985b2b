package template

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/lessonsmith/internal/domain"
)

// Section is one titled list in a candidate card.
type Section struct {
	Label    string
	Items    []string
	Required bool
	Numbered bool
}

// Sections returns the card sections of c in display order.
func Sections(c *domain.Candidate) []Section {
	return []Section{
		{Label: "활동 흐름", Items: c.CompiledFlow, Numbered: true},
		{Label: "기본 규칙", Items: c.BasicRules, Required: true},
		{Label: "벌칙/미션", Items: c.PenaltiesMissions, Required: true},
		{Label: "변형 규칙", Items: c.ModifierDetails},
		{Label: "운영 팁", Items: c.OperationTips, Required: true},
		{Label: "교육 효과", Items: c.EducationEffects, Required: true},
		{Label: "준비물", Items: c.Equipment, Required: true},
		{Label: "안전 수칙", Items: c.SafetyRules},
	}
}

// MissingSections lists the labels of required sections that are empty.
func MissingSections(c *domain.Candidate) []string {
	var missing []string
	for _, s := range Sections(c) {
		if s.Required && len(nonBlank(s.Items)) == 0 {
			missing = append(missing, s.Label)
		}
	}
	return missing
}

// Render formats c as a card. It returns nil when any required section is
// empty.
func Render(c *domain.Candidate) *domain.RenderedTemplate {
	if c == nil || len(MissingSections(c)) > 0 {
		return nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s | %s | %d분 | 난이도 %s\n", c.Sport, c.Phase, c.EstimatedDurationMin, c.Difficulty)
	for _, s := range Sections(c) {
		items := nonBlank(s.Items)
		if len(items) == 0 {
			continue
		}
		fmt.Fprintf(&b, "\n[%s]\n", s.Label)
		for i, item := range items {
			if s.Numbered {
				fmt.Fprintf(&b, "%d. %s\n", i+1, item)
			} else {
				fmt.Fprintf(&b, "- %s\n", item)
			}
		}
	}

	return &domain.RenderedTemplate{
		Title: c.Title,
		Body:  strings.TrimRight(b.String(), "\n"),
	}
}

func nonBlank(items []string) []string {
	var out []string
	for _, it := range items {
		if strings.TrimSpace(it) != "" {
			out = append(out, it)
		}
	}
	return out
}
