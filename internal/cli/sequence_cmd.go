package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/lessonsmith/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newSequenceCmd(a *App) *cobra.Command {
	var rf requestFlags
	var lessons int
	var save bool

	cmd := &cobra.Command{
		Use:   "sequence",
		Short: "Plan a multi-lesson sequence",
		Long: `Plan 2 to 5 lessons that progress from basic to applied to challenge
phases without repeating a title or structure where the catalog allows.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.promptIfNeeded(cmd, &rf); err != nil {
				return err
			}
			req, err := rf.request(a)
			if err != nil {
				return err
			}

			ctx := context.Background()
			resp, err := a.generation(rf.useArchive).GenerateSequence(ctx, req, lessons)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if rf.jsonOut {
				if err := writeJSON(out, resp); err != nil {
					return err
				}
			} else {
				fmt.Fprint(out, formatter.FormatSequence(resp))
			}

			if !save {
				return nil
			}
			if a.Archive == nil {
				return fmt.Errorf("no lesson archive is open")
			}
			saved, err := a.Archive.SaveSequence(ctx, req.Grade, resp)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Saved %d lessons in sequence [%s]\n", len(saved), formatter.ShortID(resp.SequenceID))
			return nil
		},
	}

	rf.bind(cmd.Flags())
	cmd.Flags().IntVar(&lessons, "lessons", 3, "Number of lessons (2-5)")
	cmd.Flags().BoolVar(&save, "save", false, "Archive the filled lessons")

	return cmd
}
