package main

import (
	"fmt"

	"github.com/2beens/trainingload/pkg"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newRebuildCmd(a *app) *cobra.Command {
	var endDate string

	cmd := &cobra.Command{
		Use:   "rebuild START_DATE",
		Short: "Recompute daily muscle loads from the stored activities",
		Long: `Deletes and replays the daily muscle loads of every date in
[START_DATE, --end-date]. Each date is rebuilt in its own transaction, so an
interrupted run leaves the dates already done consistent.

EXAMPLES:

  trainingloadctl rebuild 2024-03-04
  trainingloadctl rebuild 2024-03-01 --end-date 2024-03-31`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := pkg.ParseDate(args[0])
			if err != nil {
				return fmt.Errorf("invalid start date: %w", err)
			}
			end := start
			if endDate != "" {
				if end, err = pkg.ParseDate(endDate); err != nil {
					return fmt.Errorf("invalid end date: %w", err)
				}
			}

			replayed, err := a.service.RebuildDailyLoads(cmd.Context(), a.userID, start, &end)
			if err != nil {
				return err
			}

			green := color.New(color.FgGreen)
			fmt.Fprintf(cmd.OutOrStdout(), "%s %d activities replayed for %s..%s\n",
				green.Sprint("rebuilt:"), replayed, pkg.FormatDate(start), pkg.FormatDate(end))
			return nil
		},
	}

	cmd.Flags().StringVar(&endDate, "end-date", "", "last date to rebuild, inclusive (default: START_DATE)")
	return cmd
}
