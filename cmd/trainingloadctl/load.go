package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/2beens/trainingload/internal/trainingload/muscles"
	"github.com/2beens/trainingload/pkg"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var bucketColors = map[muscles.Color]*color.Color{
	muscles.White:  color.New(color.FgWhite),
	muscles.Blue:   color.New(color.FgBlue),
	muscles.Green:  color.New(color.FgGreen),
	muscles.Yellow: color.New(color.FgYellow),
	muscles.Orange: color.New(color.FgHiRed),
	muscles.Red:    color.New(color.FgRed, color.Bold),
}

func paint(bucket muscles.Color, format string, v ...any) string {
	c, ok := bucketColors[bucket]
	if !ok {
		return fmt.Sprintf(format, v...)
	}
	return c.Sprintf(format, v...)
}

func newLoadCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "load DATE",
		Short: "Show ACWR and fatigue per muscle for the week containing DATE",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := pkg.ParseDate(args[0])
			if err != nil {
				return fmt.Errorf("invalid date: %w", err)
			}

			report, err := a.service.GetMuscleLoad(cmd.Context(), a.userID, date)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			faint := color.New(color.Faint)
			fmt.Fprintf(out, "week %s..%s\n", pkg.FormatDate(report.WeekStart), pkg.FormatDate(report.WeekEnd))
			if len(report.Muscles) == 0 {
				fmt.Fprintln(out, "No muscles loaded this week.")
				return nil
			}

			tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, faint.Sprint("MUSCLE\tTIER\tACUTE\tCHRONIC AVG\tACWR\tFATIGUE"))
			for _, m := range report.Muscles {
				fmt.Fprintf(tw, "%s\t%s\t%.1f\t%.1f\t%s\t%s\n",
					m.MuscleName,
					m.Tier,
					m.AcuteLoad,
					m.ChronicAverage,
					paint(m.ACWRCategory, "%.2f (%s)", m.ACWR, m.ACWRCategory),
					paint(m.FatigueCategory, "%.1f (%s)", m.FatigueScore, m.FatigueCategory),
				)
			}
			return tw.Flush()
		},
	}
}
