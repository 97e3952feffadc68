package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/devpath/internal/app"
	"github.com/abhisek/devpath/internal/report"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Export every learner's progress to an XLSX workbook",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		outPath, _ := cmd.Flags().GetString("out")
		return withApp(cmd, func(ctx context.Context, a *app.App) error {
			rows, err := a.Tracker.AllStatuses(ctx)
			if err != nil {
				return err
			}

			f, err := os.Create(outPath)
			if err != nil {
				return fmt.Errorf("create %s: %w", outPath, err)
			}
			if err := report.WriteXLSX(f, rows); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d rows to %s\n", len(rows), outPath)
			return nil
		})
	},
}

func init() {
	reportCmd.Flags().StringP("out", "o", "progress.xlsx", "Output file")
}
