package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/devpath/internal/app"
	"github.com/abhisek/devpath/internal/curriculum"
)

var tutorCmd = &cobra.Command{
	Use:   "tutor",
	Short: "Ask the AI tutor",
}

var tutorAskCmd = &cobra.Command{
	Use:   "ask <learner> <language> <level> <question...>",
	Short: "Ask a question about the current learning path",
	Args:  cobra.MinimumNArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		lang, level, err := pathArgs(args[1:3])
		if err != nil {
			return err
		}
		question := strings.Join(args[3:], " ")

		return withApp(cmd, func(ctx context.Context, a *app.App) error {
			tu, err := a.Tutor(ctx)
			if err != nil {
				return err
			}
			st, err := a.Tracker.Status(ctx, args[0], lang, level)
			if err != nil {
				return err
			}
			reply, err := tu.Ask(ctx, st, question)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, reply.Answer)
			if len(reply.Hints) > 0 {
				fmt.Fprintln(out, "\nHints:")
				for _, h := range reply.Hints {
					fmt.Fprintf(out, "  • %s\n", h)
				}
			}
			if reply.SuggestedConcept != "" {
				if c, err := a.Catalog.Concept(lang, level, reply.SuggestedConcept); err == nil {
					fmt.Fprintf(out, "\nReview: %s\n", c.Title)
				}
			}
			if reply.Encouragement != "" {
				fmt.Fprintf(out, "\n%s\n", reply.Encouragement)
			}
			return nil
		})
	},
}

var lessonsCmd = &cobra.Command{
	Use:   "lessons",
	Short: "Manage generated lesson text",
}

var lessonsSeedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Generate lesson text for concepts that have none",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		language, _ := cmd.Flags().GetString("language")
		return withApp(cmd, func(ctx context.Context, a *app.App) error {
			tu, err := a.Tutor(ctx)
			if err != nil {
				return err
			}
			res, err := tu.SeedLessons(ctx, a.Store.LessonRepo(), language)
			fmt.Fprintf(cmd.OutOrStdout(), "Written: %d  Skipped: %d  Failed: %d\n", res.Written, res.Skipped, res.Failed)
			return err
		})
	},
}

var lessonsShowCmd = &cobra.Command{
	Use:   "show <language> <level> <concept>",
	Short: "Print the stored lesson for a concept",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		lang, level, err := pathArgs(args[:2])
		if err != nil {
			return err
		}
		return withApp(cmd, func(ctx context.Context, a *app.App) error {
			rec, err := a.Store.LessonRepo().Get(ctx, lang, string(level), args[2])
			if err != nil {
				return err
			}
			if rec == nil {
				return fmt.Errorf("no lesson for %s; run `devpath lessons seed --language %s`", args[2], lang)
			}
			fmt.Fprintln(cmd.OutOrStdout(), rec.Body)
			return nil
		})
	},
}

var lessonsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored lessons",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		language, _ := cmd.Flags().GetString("language")
		return withApp(cmd, func(ctx context.Context, a *app.App) error {
			recs, err := a.Store.LessonRepo().List(ctx, curriculum.NormalizeLanguage(language))
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(recs) == 0 {
				fmt.Fprintln(out, "No lessons stored.")
				return nil
			}
			for _, r := range recs {
				fmt.Fprintf(out, "%-12s  %-13s  %-22s  %-34s  %s\n",
					r.Language, r.Level, r.ConceptID, truncate(r.Title, 34), r.Source)
			}
			return nil
		})
	},
}

func init() {
	tutorCmd.AddCommand(tutorAskCmd)

	lessonsSeedCmd.Flags().StringP("language", "l", "", "Only seed this language")
	lessonsListCmd.Flags().StringP("language", "l", "", "Only list this language")
	lessonsCmd.AddCommand(lessonsSeedCmd)
	lessonsCmd.AddCommand(lessonsShowCmd)
	lessonsCmd.AddCommand(lessonsListCmd)
}
