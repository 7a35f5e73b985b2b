package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/lessonsmith/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newCatalogCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect the loaded catalog",
	}

	list := func(use, short string, render func(ctx context.Context) string) *cobra.Command {
		return &cobra.Command{
			Use:   use,
			Short: short,
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				fmt.Fprint(cmd.OutOrStdout(), render(context.Background()))
				return nil
			},
		}
	}

	cmd.AddCommand(
		list("sports", "List sports", func(ctx context.Context) string {
			return formatter.FormatSports(a.Catalog.Sports(ctx))
		}),
		list("structures", "List activity structures", func(ctx context.Context) string {
			return formatter.FormatStructures(a.Catalog.Structures(ctx))
		}),
		list("modifiers", "List rule modifiers", func(ctx context.Context) string {
			return formatter.FormatModifiers(a.Catalog.Modifiers(ctx))
		}),
		newCatalogValidateCmd(a),
	)

	return cmd
}

func newCatalogValidateCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check catalog references and data gaps",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			errs := a.Catalog.Validate(context.Background())
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatValidation(errs))
			if len(errs) > 0 {
				return fmt.Errorf("catalog has %d problems", len(errs))
			}
			return nil
		},
	}
}
