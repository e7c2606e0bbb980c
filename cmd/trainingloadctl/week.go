package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/2beens/trainingload/pkg"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newWeekCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "week DATE",
		Short: "Show the activities and stats of the week containing DATE",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := pkg.ParseDate(args[0])
			if err != nil {
				return fmt.Errorf("invalid date: %w", err)
			}

			summary, err := a.service.GetWeekSummary(cmd.Context(), a.userID, date)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			bold := color.New(color.Bold)
			faint := color.New(color.Faint)

			title := fmt.Sprintf("week %s..%s", pkg.FormatDate(summary.Week.StartDate), pkg.FormatDate(summary.Week.EndDate()))
			if summary.Week.Label != nil {
				title += " " + *summary.Week.Label
			}
			fmt.Fprintln(out, bold.Sprint(title))
			fmt.Fprintf(out, "sessions: %d  duration: %d min  avg rpe: %.1f\n",
				summary.Stats.SessionCount, summary.Stats.TotalDurationMinutes, summary.Stats.AverageRPE)

			tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			for _, s := range summary.Stats.SportBreakdown {
				fmt.Fprintf(tw, "  %s\t%d sessions\t%d min\n", s.SportName, s.Sessions, s.TotalDuration)
			}
			if err := tw.Flush(); err != nil {
				return err
			}

			for _, s := range summary.Activities {
				category := ""
				if s.Category != "" {
					category = " " + s.Category
				}
				fmt.Fprintf(out, "%s sport %d%s %d min rpe %d\n",
					faint.Sprintf("#%d %s", s.ID, pkg.FormatDate(s.Date)),
					s.SportID, category, s.DurationMinutes, s.IntensityRPE)
			}
			return nil
		},
	}
}
