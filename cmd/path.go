package cmd

import (
	"context"
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/abhisek/devpath/internal/app"
	"github.com/abhisek/devpath/internal/curriculum"
	"github.com/abhisek/devpath/internal/ui/components"
)

var pathCmd = &cobra.Command{
	Use:   "path",
	Short: "Browse learning paths",
}

var pathListCmd = &cobra.Command{
	Use:   "list",
	Short: "List every learning path",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(ctx context.Context, a *app.App) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%-12s  %-13s  %8s  %9s  %7s  %-11s  %s\n",
				"Language", "Level", "Concepts", "Exercises", "Minutes", "Duration", "Difficulty")
			fmt.Fprintln(out, strings.Repeat("─", 84))
			for _, p := range a.Catalog.Paths() {
				fmt.Fprintf(out, "%-12s  %-13s  %8d  %9d  %7d  %-11s  %s\n",
					p.Language, p.Level, len(p.Concepts), p.Requirements.ExercisesCompleted,
					p.Requirements.TotalTimeMins, p.EstimatedDuration, p.Difficulty)
			}
			return nil
		})
	},
}

var pathShowCmd = &cobra.Command{
	Use:   "show <language> <level>",
	Short: "Show the concepts and graduation requirements of a path",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		lang, level, err := pathArgs(args)
		if err != nil {
			return err
		}
		return withApp(cmd, func(ctx context.Context, a *app.App) error {
			p, ok := a.Catalog.Path(lang, level)
			if !ok {
				return fmt.Errorf("learning path not found: %s/%s", lang, level)
			}
			lipgloss.Fprintln(cmd.OutOrStdout(), components.PathView(p))
			return nil
		})
	},
}

func init() {
	pathCmd.AddCommand(pathListCmd)
	pathCmd.AddCommand(pathShowCmd)
}

// languageList is used in help text.
func languageList() string {
	return strings.Join(curriculum.Languages(), ", ")
}
