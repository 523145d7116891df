package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/neurosprint/internal/cli/formatter"
	"github.com/alexanderramin/neurosprint/internal/domain"
	"github.com/alexanderramin/neurosprint/internal/planner"
	"github.com/spf13/cobra"
)

func showWeek(cmd *cobra.Command, app *App) error {
	week := app.Store.CurrentWeek()
	c, err := classifyWeek(app.Store, week.WeekStart)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), formatter.FormatWeek(week, c))
	return nil
}

func newWeekCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "week",
		Aliases: []string{"w"},
		Short:   "Show and navigate weeks",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showWeek(cmd, app)
		},
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Show the current week",
			RunE: func(cmd *cobra.Command, args []string) error {
				return showWeek(cmd, app)
			},
		},
		newWeekGotoCmd(app),
		newWeekStepCmd(app, "next", "Go to the following week", 1),
		newWeekStepCmd(app, "prev", "Go to the previous week", -1),
		newWeekTodayCmd(app),
		newWeekNewCmd(app),
		newWeekClearCmd(app),
		newWeekOptionCmd(app),
		newWeekBudgetCmd(app),
		newWeekStatsCmd(app),
	)

	return cmd
}

func newWeekGotoCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "goto <YYYY-MM-DD>",
		Short: "Make the week containing a date current",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := app.Store.GoToWeek(args[0]); err != nil {
				return err
			}
			return showWeek(cmd, app)
		},
	}
}

func newWeekStepCmd(app *App, use, short string, step int) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := domain.AddWeeks(app.Store.CurrentWeek().WeekStart, step)
			if err != nil {
				return err
			}
			if _, err := app.Store.GoToWeek(target); err != nil {
				return err
			}
			return showWeek(cmd, app)
		},
	}
}

func newWeekTodayCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "today",
		Short: "Go back to this calendar week",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := app.Store.GoToToday(); err != nil {
				return err
			}
			return showWeek(cmd, app)
		},
	}
}

func newWeekNewCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "new",
		Short: "Start the next week, keeping the structure option",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			week, err := app.Store.CreateNewWeek()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Started week %s (option %d)\n", week.WeekStart, week.StructureOption)
			return nil
		},
	}
}

func newWeekClearCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove every task and the reflection from the current week",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			week := app.Store.CurrentWeek()
			ok, err := confirm(app, fmt.Sprintf("Clear %d tasks from week %s?", len(week.Tasks), week.WeekStart), yes)
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
				return nil
			}
			if err := app.Store.ClearCurrentWeek(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Cleared week %s\n", week.WeekStart)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation")

	return cmd
}

func newWeekOptionCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "option [1-5]",
		Short: "Show the structure presets or pick one for the current week",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				current := app.Store.CurrentWeek().StructureOption
				rows := make([][]string, 0, domain.MaxStructureOption)
				for opt := domain.MinStructureOption; opt <= domain.MaxStructureOption; opt++ {
					s := domain.StructureFor(opt)
					marker := " "
					if opt == current {
						marker = formatter.StyleHeader.Render("▶")
					}
					rows = append(rows, []string{
						marker + " " + strconv.Itoa(opt),
						s.Description,
						formatter.FormatMinutes(s.TotalMinutes()),
					})
				}
				fmt.Fprint(out, formatter.RenderTable([]string{"OPTION", "STRUCTURE", "WEEKLY"}, rows))
				return nil
			}

			opt, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid option %q", args[0])
			}
			if err := app.Store.SetStructureOption(opt); err != nil {
				return err
			}
			fmt.Fprintf(out, "Week %s uses option %d: %s\n",
				app.Store.CurrentWeek().WeekStart, opt, domain.StructureFor(opt).Description)
			return nil
		},
	}
}

func newWeekBudgetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "budget <hours>",
		Short: "Set the current week's time budget",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validatePositiveInt(args[0]); err != nil {
				return fmt.Errorf("invalid hours %q: %w", args[0], err)
			}
			hours, _ := strconv.Atoi(strings.TrimSpace(args[0]))
			if err := app.Store.SetBudgetHours(hours); err != nil {
				return err
			}
			stats := app.Store.Stats()
			fmt.Fprintf(cmd.OutOrStdout(), "Budget %s\n",
				formatter.RenderBudget(stats.PlannedMinutes, stats.BudgetMinutes, 16))
			return nil
		},
	}
}

func newWeekStatsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "stats [YYYY-MM-DD]",
		Short: "Show time per category and per day",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			week := app.Store.CurrentWeek()
			if len(args) == 1 {
				ws, err := domain.NormalizeWeekStart(args[0])
				if err != nil {
					return fmt.Errorf("%w: %v", planner.ErrInvalidWeekStart, err)
				}
				found, ok := app.Store.FindWeek(ws)
				if !ok {
					return fmt.Errorf("no plan for week %s", ws)
				}
				week = found
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatStats(planner.Stats(week)))
			return nil
		},
	}
}
