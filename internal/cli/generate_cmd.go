package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/alexanderramin/lessonsmith/internal/app"
	"github.com/alexanderramin/lessonsmith/internal/cli/formatter"
	"github.com/alexanderramin/lessonsmith/internal/domain"
	"github.com/spf13/cobra"
)

func newGenerateCmd(a *App) *cobra.Command {
	var rf requestFlags
	var engineName string
	var save, show int

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate lesson activity candidates",
		Long: `Generate validated, scored lesson activity candidates for a grade,
sport, and space. Run without --sport on a terminal to fill the request
in a form.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.promptIfNeeded(cmd, &rf); err != nil {
				return err
			}
			req, err := rf.request(a)
			if err != nil {
				return err
			}

			ctx := context.Background()
			resp, err := a.generation(rf.useArchive).Generate(ctx, domain.Engine(engineName), req)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if rf.jsonOut {
				if err := writeJSON(out, resp); err != nil {
					return err
				}
			} else {
				fmt.Fprint(out, formatter.FormatCandidates(resp, show))
			}

			if save > 0 {
				return a.saveCandidate(ctx, out, req.Grade, resp, save)
			}
			return nil
		},
	}

	rf.bind(cmd.Flags())
	cmd.Flags().StringVar(&engineName, "engine", string(domain.EngineModular), "Candidate source: modular or activity")
	cmd.Flags().IntVar(&save, "save", 0, "Archive the Nth candidate (1-based)")
	cmd.Flags().IntVar(&show, "show", 5, "Cards to print; 0 prints all")

	return cmd
}

func (a *App) saveCandidate(ctx context.Context, out io.Writer, grade string, resp *app.GenerateResponse, n int) error {
	if a.Archive == nil {
		return fmt.Errorf("no lesson archive is open")
	}
	if n > len(resp.Candidates) {
		return fmt.Errorf("cannot save candidate %d: only %d generated", n, len(resp.Candidates))
	}
	saved, err := a.Archive.Save(ctx, grade, resp.Candidates[n-1])
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Saved %s [%s]\n", saved.Title, formatter.ShortID(saved.ID))
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	return nil
}
