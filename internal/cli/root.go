package cli

import (
	"github.com/alexanderramin/lessonsmith/internal/config"
	"github.com/alexanderramin/lessonsmith/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Generation service.GenerationService
	// ArchiveGeneration adds archived titles to lesson history. Nil when no
	// archive is open.
	ArchiveGeneration service.GenerationService
	Archive           service.ArchiveService
	Catalog           service.CatalogService

	Defaults      config.RequestDefaults
	MaxCandidates int

	// IsInteractive reports whether stdin is a terminal. Nil means never.
	IsInteractive func() bool
	// RunForm fills request flags interactively. Defaults to the huh form.
	RunForm func(app *App, rf *requestFlags) error
}

// NewRootCmd creates the top-level "lessonsmith" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "lessonsmith",
		Short:         "PE lesson activity generator",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newGenerateCmd(app),
		newSequenceCmd(app),
		newCatalogCmd(app),
		newHistoryCmd(app),
	)

	return root
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) generation(useArchive bool) service.GenerationService {
	if useArchive && a.ArchiveGeneration != nil {
		return a.ArchiveGeneration
	}
	return a.Generation
}
