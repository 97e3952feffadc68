package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/abhisek/devpath/internal/app"
	"github.com/abhisek/devpath/internal/tracker"
	"github.com/abhisek/devpath/internal/ui/components"
)

var graduateCmd = &cobra.Command{
	Use:   "graduate <learner> <language> <level>",
	Short: "Issue a certificate when the learner is ready to graduate",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		lang, level, err := pathArgs(args[1:])
		if err != nil {
			return err
		}
		return withApp(cmd, func(ctx context.Context, a *app.App) error {
			g, err := a.Tracker.Graduate(ctx, args[0], lang, level)
			if errors.Is(err, tracker.ErrNotReady) {
				fmt.Fprintln(cmd.OutOrStdout(), "Not ready to graduate yet.")
				return err
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(g.Ceremony)
			}
			lipgloss.Fprintln(out, components.CertificateView(g.Ceremony))
			if len(g.Awards) > 0 {
				fmt.Fprintln(out)
				lipgloss.Fprintln(out, components.AchievementList(g.Awards))
			}
			return nil
		})
	},
}

var certificatesCmd = &cobra.Command{
	Use:   "certificates <learner>",
	Short: "List a learner's certificates",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(ctx context.Context, a *app.App) error {
			certs, err := a.Tracker.Certificates(ctx, args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(certs) == 0 {
				fmt.Fprintln(out, "No certificates yet.")
				return nil
			}
			for _, c := range certs {
				lipgloss.Fprintln(out, components.CertificateView(c))
			}
			return nil
		})
	},
}

var achievementsCmd = &cobra.Command{
	Use:   "achievements <learner>",
	Short: "List a learner's achievements",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(ctx context.Context, a *app.App) error {
			awards, err := a.Tracker.Achievements(ctx, args[0])
			if err != nil {
				return err
			}
			lipgloss.Fprintln(cmd.OutOrStdout(), components.AchievementList(awards))
			return nil
		})
	},
}

func init() {
	graduateCmd.Flags().Bool("json", false, "Print the ceremony as JSON")
}
