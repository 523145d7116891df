package cli

import (
	"fmt"

	"github.com/alexanderramin/neurosprint/internal/cli/formatter"
	"github.com/alexanderramin/neurosprint/internal/domain"
	"github.com/alexanderramin/neurosprint/internal/sprint"
	"github.com/spf13/cobra"
)

func newMonthCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "month",
		Aliases: []string{"m"},
		Short:   "Sprint and integration weeks by month",
	}

	cmd.AddCommand(
		newMonthShowCmd(app),
		newMonthSetCmd(app),
		newMonthOverviewCmd(app),
	)

	return cmd
}

func newMonthShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show [YYYY-MM]",
		Short: "Classify every week of a month",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := monthArg(app.Store, args)
			if err != nil {
				return err
			}
			settings, err := app.Store.MonthSettings(key)
			if err != nil {
				return err
			}
			rows, err := sprint.ProjectMonth(key, app.Store)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatMonth(key, settings, rows, app.Store.CurrentWeek().WeekStart))
			return nil
		},
	}
}

func newMonthSetCmd(app *App) *cobra.Command {
	var sprintWeeks, integrationEvery int

	cmd := &cobra.Command{
		Use:   "set [YYYY-MM]",
		Short: "Change a month's sprint length or integration cadence",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := monthArg(app.Store, args)
			if err != nil {
				return err
			}
			var patch domain.MonthSettingsPatch
			if cmd.Flags().Changed("sprint-weeks") {
				patch.SprintWeeks = &sprintWeeks
			}
			if cmd.Flags().Changed("integration-every") {
				patch.IntegrationEvery = &integrationEvery
			}
			if patch.SprintWeeks == nil && patch.IntegrationEvery == nil {
				return fmt.Errorf("nothing to change: pass --sprint-weeks or --integration-every")
			}
			ms, err := app.Store.SetMonthSettings(key, patch)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Month %s: %d-week sprints, integration after every %d\n",
				key, ms.SprintWeeks, ms.IntegrationEvery)
			return nil
		},
	}

	cmd.Flags().IntVar(&sprintWeeks, "sprint-weeks", 0, "Weeks per sprint")
	cmd.Flags().IntVar(&integrationEvery, "integration-every", 0, "Sprints before each integration week")

	return cmd
}

func newMonthOverviewCmd(app *App) *cobra.Command {
	var before, after int

	cmd := &cobra.Command{
		Use:   "overview",
		Short: "Show the weeks around the current one",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if before < 0 || after < 0 {
				return fmt.Errorf("--before and --after must not be negative")
			}
			current := app.Store.CurrentWeek().WeekStart
			rows, err := sprint.Overview(current, before, after, app.Store)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatOverview(rows, current))
			return nil
		},
	}

	cmd.Flags().IntVar(&before, "before", 2, "Weeks to show before the current one")
	cmd.Flags().IntVar(&after, "after", 5, "Weeks to show after the current one")

	return cmd
}
