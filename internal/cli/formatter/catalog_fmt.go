package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/lessonsmith/internal/domain"
)

func FormatSports(sports []domain.Sport) string {
	rows := make([][]string, 0, len(sports))
	for _, s := range sports {
		rows = append(rows, []string{
			s.ID,
			Bold(s.Name),
			domain.CoalesceStr(s.Domain, "-"),
			fmt.Sprintf("%d", len(s.CoreRules)),
			fmt.Sprintf("%d", len(s.Skills)),
		})
	}
	return RenderTable([]string{"ID", "NAME", "DOMAIN", "CORE RULES", "SKILLS"}, rows)
}

func FormatStructures(structures []domain.Structure) string {
	rows := make([][]string, 0, len(structures))
	for _, st := range structures {
		slots := "-"
		if st.SlotKeys != nil {
			slots = joinOrDash(st.SlotKeys.Required)
		}
		rows = append(rows, []string{
			st.ID,
			Bold(st.Name),
			string(st.SuitablePhase),
			joinOrDash(st.Space),
			fmt.Sprintf("%d분", st.BaseDurationMin),
			slots,
		})
	}
	return RenderTable([]string{"ID", "NAME", "PHASE", "SPACE", "BASE", "REQUIRED SLOTS"}, rows)
}

func FormatModifiers(mods []domain.Modifier) string {
	rows := make([][]string, 0, len(mods))
	for _, m := range mods {
		rows = append(rows, []string{
			m.ID,
			Bold(m.Name),
			m.Type,
			joinOrDash(m.SportAllow),
			fmt.Sprintf("%+d분", m.TimeDelta),
			Truncate(m.EffectiveRuleText(), 36),
		})
	}
	return RenderTable([]string{"ID", "NAME", "TYPE", "SPORTS", "TIME", "RULE"}, rows)
}

// FormatValidation lists catalog problems, or confirms there are none.
func FormatValidation(errs []error) string {
	if len(errs) == 0 {
		return StyleGreen.Render("✓ catalog is valid") + "\n"
	}
	var b strings.Builder
	b.WriteString(StyleRed.Render(fmt.Sprintf("✗ %d problems", len(errs))))
	b.WriteString("\n")
	for _, err := range errs {
		fmt.Fprintf(&b, "  - %s\n", err)
	}
	return b.String()
}
