package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/abhisek/devpath/internal/app"
	"github.com/abhisek/devpath/internal/scheduler"
)

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Periodically recompute statuses and log learners ready to graduate",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		once, _ := cmd.Flags().GetBool("once")
		return withApp(cmd, func(ctx context.Context, a *app.App) error {
			interval := a.Config.SweepInterval
			if cmd.Flags().Changed("interval") {
				interval, _ = cmd.Flags().GetDuration("interval")
			}
			sw := scheduler.NewSweeper(a.Tracker, interval, scheduler.WithLogger(a.Logger))

			if once {
				res, err := sw.RunOnce(ctx)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Checked %d paths, %d ready to graduate.\n", res.Checked, res.Ready)
				for _, st := range res.NewlyReady {
					fmt.Fprintf(cmd.OutOrStdout(), "  %s  %s/%s  score %d\n", st.LearnerID, st.Language, st.Level, st.GraduationScore)
				}
				return nil
			}

			ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			if err := sw.Start(ctx); err != nil {
				return err
			}
			<-ctx.Done()
			sw.Stop()
			return nil
		})
	},
}

func init() {
	sweepCmd.Flags().Duration("interval", 0, "Sweep interval (default DEVPATH_SWEEP_INTERVAL)")
	sweepCmd.Flags().Bool("once", false, "Run a single sweep and exit")
}
