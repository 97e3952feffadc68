package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/abhisek/devpath/internal/app"
	"github.com/abhisek/devpath/internal/progression"
	"github.com/abhisek/devpath/internal/ui/components"
)

var statusCmd = &cobra.Command{
	Use:   "status <learner> <language> <level>",
	Short: "Show a learner's progression on a path",
	Long:  "Show a learner's progression on a path. Built-in languages: " + languageList() + ".",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		lang, level, err := pathArgs(args[1:])
		if err != nil {
			return err
		}
		return withApp(cmd, func(ctx context.Context, a *app.App) error {
			st, err := a.Tracker.Status(ctx, args[0], lang, level)
			if err != nil {
				return err
			}
			return printStatus(cmd, a, st)
		})
	},
}

var completeCmd = &cobra.Command{
	Use:   "complete <learner> <language> <level> <concept>",
	Short: "Mark a concept as completed",
	Args:  cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		lang, level, err := pathArgs(args[1:3])
		if err != nil {
			return err
		}
		return withApp(cmd, func(ctx context.Context, a *app.App) error {
			st, err := a.Tracker.CompleteConcept(ctx, args[0], lang, level, args[3])
			if err != nil {
				return err
			}
			return printStatus(cmd, a, st)
		})
	},
}

var exerciseCmd = &cobra.Command{
	Use:   "exercise <learner> <language> <level>",
	Short: "Record completed exercises",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		count, _ := cmd.Flags().GetInt("count")
		lang, level, err := pathArgs(args[1:])
		if err != nil {
			return err
		}
		return withApp(cmd, func(ctx context.Context, a *app.App) error {
			st, err := a.Tracker.RecordExercises(ctx, args[0], lang, level, count)
			if err != nil {
				return err
			}
			return printStatus(cmd, a, st)
		})
	},
}

var timeCmd = &cobra.Command{
	Use:   "time <learner> <language> <level> <minutes>",
	Short: "Record study time in minutes",
	Args:  cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		lang, level, err := pathArgs(args[1:3])
		if err != nil {
			return err
		}
		minutes, err := strconv.Atoi(args[3])
		if err != nil {
			return fmt.Errorf("invalid minutes %q: %w", args[3], err)
		}
		return withApp(cmd, func(ctx context.Context, a *app.App) error {
			st, err := a.Tracker.RecordTime(ctx, args[0], lang, level, minutes)
			if err != nil {
				return err
			}
			return printStatus(cmd, a, st)
		})
	},
}

var projectCmd = &cobra.Command{
	Use:   "project <learner> <language> <level>",
	Short: "Mark the final project as submitted",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		lang, level, err := pathArgs(args[1:])
		if err != nil {
			return err
		}
		return withApp(cmd, func(ctx context.Context, a *app.App) error {
			st, err := a.Tracker.CompleteProject(ctx, args[0], lang, level)
			if err != nil {
				return err
			}
			return printStatus(cmd, a, st)
		})
	},
}

func printStatus(cmd *cobra.Command, a *app.App, st progression.Status) error {
	out := cmd.OutOrStdout()
	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(st)
	}
	path, _ := a.Catalog.Path(st.Language, st.Level)
	lipgloss.Fprintln(out, components.StatusView(st, path, components.DefaultWidth))
	return nil
}

func init() {
	for _, c := range []*cobra.Command{statusCmd, completeCmd, exerciseCmd, timeCmd, projectCmd} {
		c.Flags().Bool("json", false, "Print the status as JSON")
	}
	exerciseCmd.Flags().IntP("count", "c", 1, "Number of exercises completed")
}
