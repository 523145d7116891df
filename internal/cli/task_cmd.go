package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/neurosprint/internal/cli/formatter"
	"github.com/alexanderramin/neurosprint/internal/domain"
	"github.com/spf13/cobra"
)

func newTaskCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "task",
		Aliases: []string{"t"},
		Short:   "Manage tasks in the current week",
	}

	cmd.AddCommand(
		newTaskAddCmd(app),
		newTaskEditCmd(app),
		newTaskRemoveCmd(app),
		newTaskMoveCmd(app),
		newTaskDoneCmd(app),
		newTaskReorderCmd(app),
		newTaskDupCmd(app),
		newTaskListCmd(app),
	)

	return cmd
}

func newTaskAddCmd(app *App) *cobra.Command {
	var dayStr, project, start string
	var duration int
	var interactive bool

	cmd := &cobra.Command{
		Use:   "add [title...]",
		Short: "Add a task to a day of the current week",
		Example: `  neurosprint task add "Write chapter outline" --day MON --project D --duration 45
  neurosprint task add "Stretch" --day SAT --project F --duration 20 --start 08:30
  neurosprint task add -i`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var data domain.NewTaskData
			if interactive {
				if !app.interactive() {
					return errNotInteractive
				}
				v := taskFormValues{Category: domain.CategoryDrive, Day: domain.Monday, Duration: "30"}
				if err := taskForm(&v).Run(); err != nil {
					return err
				}
				d, err := v.toNewTask()
				if err != nil {
					return err
				}
				data = d
			} else {
				title := strings.TrimSpace(strings.Join(args, " "))
				if title == "" {
					return fmt.Errorf("title is required")
				}
				if err := validatePositiveMinutes(duration); err != nil {
					return err
				}
				day, err := domain.ParseDay(dayStr)
				if err != nil {
					return err
				}
				cat, err := domain.ParseCategory(project)
				if err != nil {
					return err
				}
				data = domain.NewTaskData{Category: cat, Title: title, Duration: duration, Day: day}
				if start != "" {
					data.StartTime = &start
				}
			}

			task, err := app.Store.AddTask(data)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s on %s\n", formatter.FormatTaskLine(task), task.Day.Name())
			return nil
		},
	}

	cmd.Flags().StringVarP(&dayStr, "day", "d", "", "Day (MON..SUN)")
	cmd.Flags().StringVarP(&project, "project", "p", "", "Project category (F, D, J, R)")
	cmd.Flags().IntVarP(&duration, "duration", "m", 30, "Duration in minutes")
	cmd.Flags().StringVar(&start, "start", "", "Start time (HH:MM)")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Fill in the task with a form")

	return cmd
}

func newTaskEditCmd(app *App) *cobra.Command {
	var title, project, start string
	var duration int
	var clearStart bool

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change a task's fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveTaskID(app.Store, args[0])
			if err != nil {
				return err
			}

			var patch domain.TaskPatch
			flags := cmd.Flags()
			if flags.Changed("title") {
				if err := validateRequired(title); err != nil {
					return fmt.Errorf("title is required")
				}
				title = strings.TrimSpace(title)
				patch.Title = &title
			}
			if flags.Changed("project") {
				cat, err := domain.ParseCategory(project)
				if err != nil {
					return err
				}
				patch.Category = &cat
			}
			if flags.Changed("duration") {
				if err := validatePositiveMinutes(duration); err != nil {
					return err
				}
				patch.Duration = &duration
			}
			if flags.Changed("start") {
				patch.StartTime = &start
			}
			if clearStart {
				empty := ""
				patch.StartTime = &empty
			}
			if patch.IsEmpty() {
				return fmt.Errorf("nothing to change: pass at least one of --title, --project, --duration, --start or --clear-start")
			}

			task, err := app.Store.UpdateTask(id, patch)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated %s\n", formatter.FormatTaskLine(task))
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "New title")
	cmd.Flags().StringVarP(&project, "project", "p", "", "New project category")
	cmd.Flags().IntVarP(&duration, "duration", "m", 0, "New duration in minutes")
	cmd.Flags().StringVar(&start, "start", "", "New start time (HH:MM)")
	cmd.Flags().BoolVar(&clearStart, "clear-start", false, "Remove the start time")
	cmd.MarkFlagsMutuallyExclusive("start", "clear-start")

	return cmd
}

func newTaskRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"remove", "delete"},
		Short:   "Delete a task",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveTaskID(app.Store, args[0])
			if err != nil {
				return err
			}
			if err := app.Store.DeleteTask(id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted task %s\n", id)
			return nil
		},
	}
}

func newTaskMoveCmd(app *App) *cobra.Command {
	var dayStr string
	var order int

	cmd := &cobra.Command{
		Use:   "move <id>",
		Short: "Move a task to another day or position",
		Long: `Move a task to a day at a position. Without --order the task goes to the
end of the day. Tasks at or after the position shift down by one.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveTaskID(app.Store, args[0])
			if err != nil {
				return err
			}
			week := app.Store.CurrentWeek()
			task := week.Tasks[week.TaskIndex(id)]

			day := task.Day
			if dayStr != "" {
				if day, err = domain.ParseDay(dayStr); err != nil {
					return err
				}
			}
			if !cmd.Flags().Changed("order") {
				order = endOrder(week, day)
				if day == task.Day {
					order--
				}
			}

			if err := app.Store.MoveTask(id, day, order); err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatDay(app.Store.CurrentWeek(), day))
			return nil
		},
	}

	cmd.Flags().StringVarP(&dayStr, "day", "d", "", "Destination day (MON..SUN), default the task's day")
	cmd.Flags().IntVarP(&order, "order", "o", 0, "Position in the destination day (0 is first)")

	return cmd
}

func newTaskDoneCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "done <id>",
		Aliases: []string{"toggle"},
		Short:   "Toggle a task's completion",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveTaskID(app.Store, args[0])
			if err != nil {
				return err
			}
			done, err := app.Store.ToggleTaskComplete(id)
			if err != nil {
				return err
			}
			state := "not done"
			if done {
				state = "done"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Marked %s %s\n", id, state)
			return nil
		},
	}
}

func newTaskReorderCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "reorder <day> <id>...",
		Short: "Set the order of a day's tasks",
		Long: `Renumber a day's tasks in the given order. Ids from other days are ignored;
tasks left out keep their relative order after the listed ones.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := domain.ParseDay(args[0])
			if err != nil {
				return err
			}
			ids := make([]string, 0, len(args)-1)
			for _, in := range args[1:] {
				id, err := resolveTaskID(app.Store, in)
				if err != nil {
					return err
				}
				ids = append(ids, id)
			}
			if err := app.Store.ReorderTasksInDay(day, ids); err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatDay(app.Store.CurrentWeek(), day))
			return nil
		},
	}
}

func newTaskDupCmd(app *App) *cobra.Command {
	var dayStr string

	cmd := &cobra.Command{
		Use:     "dup <id>",
		Aliases: []string{"copy"},
		Short:   "Copy a task to the end of a day",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveTaskID(app.Store, args[0])
			if err != nil {
				return err
			}
			week := app.Store.CurrentWeek()
			day := week.Tasks[week.TaskIndex(id)].Day
			if dayStr != "" {
				if day, err = domain.ParseDay(dayStr); err != nil {
					return err
				}
			}
			task, err := app.Store.DuplicateTask(id, day)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Copied to %s: %s\n", task.Day.Name(), formatter.FormatTaskLine(task))
			return nil
		},
	}

	cmd.Flags().StringVarP(&dayStr, "day", "d", "", "Destination day, default the source task's day")

	return cmd
}

func newTaskListCmd(app *App) *cobra.Command {
	var dayStr string

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List the current week's tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			week := app.Store.CurrentWeek()
			out := cmd.OutOrStdout()
			if dayStr != "" {
				day, err := domain.ParseDay(dayStr)
				if err != nil {
					return err
				}
				fmt.Fprint(out, formatter.FormatDay(week, day))
				return nil
			}
			if len(week.Tasks) == 0 {
				fmt.Fprintln(out, formatter.Dim("No tasks this week."))
				return nil
			}
			for _, day := range domain.Days {
				if week.CountInDay(day) == 0 {
					continue
				}
				fmt.Fprint(out, formatter.FormatDay(week, day))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&dayStr, "day", "d", "", "Only this day")

	return cmd
}
