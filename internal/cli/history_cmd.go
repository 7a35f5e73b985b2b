package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/lessonsmith/internal/cli/formatter"
	"github.com/spf13/cobra"
)

// resolveLessonID accepts a full archive id or an unambiguous prefix.
func resolveLessonID(ctx context.Context, a *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("lesson ID is required")
	}

	lessons, err := a.Archive.List(ctx, 0)
	if err != nil {
		return "", err
	}

	for _, l := range lessons {
		if l.ID == input {
			return l.ID, nil
		}
	}

	var matches []string
	for _, l := range lessons {
		if strings.HasPrefix(l.ID, input) {
			matches = append(matches, l.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("lesson not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("lesson ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}

func newHistoryCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Browse archived lessons",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if a.Archive == nil {
				return fmt.Errorf("no lesson archive is open")
			}
			return nil
		},
	}

	cmd.AddCommand(
		newHistoryListCmd(a),
		newHistoryShowCmd(a),
		newHistoryDeleteCmd(a),
	)

	return cmd
}

func newHistoryListCmd(a *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List archived lessons, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			lessons, err := a.Archive.List(context.Background(), limit)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(lessons) == 0 {
				fmt.Fprintln(out, "No archived lessons.")
				return nil
			}
			fmt.Fprint(out, formatter.FormatHistory(lessons, time.Now()))
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum lessons to list; 0 lists all")

	return cmd
}

func newHistoryShowCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show an archived lesson",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveLessonID(ctx, a, args[0])
			if err != nil {
				return err
			}
			l, err := a.Archive.GetByID(ctx, id)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatArchivedLesson(l))
			return nil
		},
	}
}

func newHistoryDeleteCmd(a *App) *cobra.Command {
	var sequence bool

	cmd := &cobra.Command{
		Use:   "delete ID",
		Short: "Delete an archived lesson, or a whole sequence with --sequence",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			out := cmd.OutOrStdout()

			if sequence {
				if err := a.Archive.DeleteSequence(ctx, args[0]); err != nil {
					return err
				}
				fmt.Fprintf(out, "Deleted sequence %s\n", args[0])
				return nil
			}

			id, err := resolveLessonID(ctx, a, args[0])
			if err != nil {
				return err
			}
			if err := a.Archive.Delete(ctx, id); err != nil {
				return err
			}
			fmt.Fprintf(out, "Deleted lesson %s\n", formatter.ShortID(id))
			return nil
		},
	}

	cmd.Flags().BoolVar(&sequence, "sequence", false, "Treat ID as a sequence id and delete all its lessons")

	return cmd
}
