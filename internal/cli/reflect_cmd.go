package cli

import (
	"fmt"

	"github.com/alexanderramin/neurosprint/internal/cli/formatter"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func newReflectCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reflect",
		Short: "Write the weekly reflection",
		RunE: func(cmd *cobra.Command, args []string) error {
			week := app.Store.CurrentWeek()
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatReflection(week.WeekStart, week.Reflection))
			return nil
		},
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Show the current week's reflection",
			RunE: func(cmd *cobra.Command, args []string) error {
				week := app.Store.CurrentWeek()
				fmt.Fprint(cmd.OutOrStdout(), formatter.FormatReflection(week.WeekStart, week.Reflection))
				return nil
			},
		},
		newReflectSaveCmd(app),
		newReflectEditCmd(app),
	)

	return cmd
}

func newReflectSaveCmd(app *App) *cobra.Command {
	var (
		doneF, doneD, doneJ string
		notF, notD, notJ    string
		adjustments         string
		draft               bool
	)

	cmd := &cobra.Command{
		Use:   "save",
		Short: "Update reflection fields from flags",
		Long: `Update the reflection. Only the fields passed are changed; the rest keep
their current text. The reflection is marked saved unless --draft is given.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			r := app.Store.CurrentWeek().Reflection
			flags := cmd.Flags()
			set := func(flag string, dst *string, val string) {
				setIfChanged(flags, flag, dst, val)
			}
			set("done-foundation", &r.Done.Foundation, doneF)
			set("done-drive", &r.Done.Drive, doneD)
			set("done-joy", &r.Done.Joy, doneJ)
			set("not-done-foundation", &r.NotDone.Foundation, notF)
			set("not-done-drive", &r.NotDone.Drive, notD)
			set("not-done-joy", &r.NotDone.Joy, notJ)
			set("adjustments", &r.Adjustments, adjustments)
			r.Saved = !draft

			if err := app.Store.SaveReflection(r); err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatReflection(app.Store.CurrentWeek().WeekStart, r))
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&doneF, "done-foundation", "", "What got done for Foundation")
	f.StringVar(&doneD, "done-drive", "", "What got done for Drive")
	f.StringVar(&doneJ, "done-joy", "", "What got done for Joy")
	f.StringVar(&notF, "not-done-foundation", "", "What did not get done for Foundation")
	f.StringVar(&notD, "not-done-drive", "", "What did not get done for Drive")
	f.StringVar(&notJ, "not-done-joy", "", "What did not get done for Joy")
	f.StringVar(&adjustments, "adjustments", "", "Adjustments for next week")
	f.BoolVar(&draft, "draft", false, "Keep the reflection as a draft")

	return cmd
}

func newReflectEditCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "edit",
		Short: "Edit the reflection in a form",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return errNotInteractive
			}
			r := app.Store.CurrentWeek().Reflection
			if err := reflectionForm(&r).Run(); err != nil {
				return err
			}
			r.Saved = true
			if err := app.Store.SaveReflection(r); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Reflection saved.")
			return nil
		},
	}
}

// setIfChanged copies val into dst only when the flag was given.
func setIfChanged(flags *pflag.FlagSet, name string, dst *string, val string) {
	if flags.Changed(name) {
		*dst = val
	}
}
