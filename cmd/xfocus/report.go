package main

import (
	"bufio"
	"fmt"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/xfocus/xfocus/internal/database"
	"github.com/xfocus/xfocus/internal/reporter"
)

func newReportCmd(a *app) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:       "report [period]",
		Short:     "Print a focus time report (period: day, today, week, month)",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"day", "today", "week", "month"},
		RunE: func(cmd *cobra.Command, args []string) error {
			period := "day"
			if len(args) > 0 {
				period = args[0]
			}

			db, err := database.Connect(a.cfg.Database.Path)
			if err != nil {
				return err
			}
			defer db.Close()

			if err := db.Initialize(); err != nil {
				return err
			}

			rep := reporter.New(a.cfg, database.NewRepository(db))
			report, err := rep.GenerateReport(period)
			if err != nil {
				return errors.Wrap(err, "failed to generate report")
			}

			out := cmd.OutOrStdout()
			if jsonOutput {
				s, err := rep.FormatReportJSON(report)
				if err != nil {
					return errors.Wrap(err, "failed to format report")
				}
				fmt.Fprintln(out, s)
				return nil
			}
			fmt.Fprintln(out, rep.FormatReportText(report))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the report as JSON")
	return cmd
}

func newClearCmd(a *app) *cobra.Command {
	var (
		yes    bool
		before time.Duration
	)

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete recorded samples (all, or those older than --before)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			if before < 0 {
				return errors.Errorf("--before must not be negative, got %v", before)
			}

			if !yes {
				if before > 0 {
					fmt.Fprintf(out, "This will delete tracking data older than %v. Are you sure? (yes/no): ", before)
				} else {
					fmt.Fprint(out, "This will delete all tracking data. Are you sure? (yes/no): ")
				}
				response, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				response = strings.ToLower(strings.TrimSpace(response))
				if response != "yes" && response != "y" {
					fmt.Fprintln(out, "Operation cancelled")
					return nil
				}
			}

			db, err := database.Connect(a.cfg.Database.Path)
			if err != nil {
				return err
			}
			defer db.Close()

			if err := db.Initialize(); err != nil {
				return err
			}

			repo := database.NewRepository(db)
			if before > 0 {
				n, err := repo.DeleteOldEvents(time.Now().Add(-before))
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "Deleted %d samples older than %v\n", n, before)
				return nil
			}

			if err := repo.Clear(); err != nil {
				return err
			}

			fmt.Fprintln(out, "Database cleared")
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
	cmd.Flags().DurationVar(&before, "before", 0, "Only delete samples older than this age, e.g. 720h")
	return cmd
}
