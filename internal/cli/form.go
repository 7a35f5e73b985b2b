package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/alexanderramin/lessonsmith/internal/cli/formatter"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

// lessonsmithHuhTheme matches huh forms to the formatter palette.
func lessonsmithHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// promptIfNeeded opens the request form when --sport is missing on a
// terminal and JSON output was not requested.
func (a *App) promptIfNeeded(cmd *cobra.Command, rf *requestFlags) error {
	if cmd.Flags().Changed("sport") || rf.jsonOut || !a.interactive() {
		return nil
	}
	run := a.RunForm
	if run == nil {
		run = runRequestForm
	}
	return run(a, rf)
}

func runRequestForm(a *App, rf *requestFlags) error {
	ctx := context.Background()

	sportOpts := make([]huh.Option[string], 0)
	for _, s := range a.Catalog.Sports(ctx) {
		sportOpts = append(sportOpts, huh.NewOption(s.Name, s.ID))
	}
	gradeOpts := make([]huh.Option[string], 0)
	for _, g := range a.Catalog.Grades(ctx) {
		gradeOpts = append(gradeOpts, huh.NewOption(g.Grade, g.Grade))
	}
	if len(sportOpts) == 0 || len(gradeOpts) == 0 {
		return fmt.Errorf("catalog has no sports or grades to choose from")
	}

	if rf.grade == "" {
		rf.grade = a.Defaults.Grade
	}
	if rf.space == "" {
		rf.space = a.Defaults.Space
	}
	duration := formDuration(rf, a)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().Title("Sport").Options(sportOpts...).Value(&rf.sport),
			huh.NewSelect[string]().Title("Grade").Options(gradeOpts...).Value(&rf.grade),
			huh.NewInput().Title("Space").Placeholder("체육관").Value(&rf.space),
			huh.NewInput().Title("Lesson Minutes").Placeholder("40").Value(&duration).Validate(validatePositiveInt),
		),
	).WithTheme(lessonsmithHuhTheme()).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return err
	}
	if duration != "" {
		rf.duration, _ = strconv.Atoi(duration)
	}
	return nil
}

// formDuration pre-fills the minutes input: --duration when given, else the
// configured default.
func formDuration(rf *requestFlags, a *App) string {
	if rf.duration > 0 {
		return strconv.Itoa(rf.duration)
	}
	if a.Defaults.DurationMin > 0 {
		return strconv.Itoa(a.Defaults.DurationMin)
	}
	return ""
}

// validatePositiveInt accepts empty or a positive integer.
func validatePositiveInt(s string) error {
	if s == "" {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil || v <= 0 {
		return fmt.Errorf("enter a positive number")
	}
	return nil
}
