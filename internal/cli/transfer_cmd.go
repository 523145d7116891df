package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

func newExportCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the current week or all data as JSON",
	}

	cmd.AddCommand(newExportWeekCmd(app), newExportAllCmd(app))

	return cmd
}

func newExportWeekCmd(app *App) *cobra.Command {
	var dir string
	var stdout bool

	cmd := &cobra.Command{
		Use:   "week",
		Short: "Write the current week as an importable task list",
		Long: `Write the current week as neurosprint-<weekStart>.json. The file has no ids
or completion state and can be edited and imported again.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if stdout {
				data, err := app.Store.ExportCurrentWeek()
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return err
			}
			if dir == "" {
				dir = app.ExportDir
			}
			path, err := app.Backups.ExportWeek(context.Background(), app.Store.CurrentWeek(), dir)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported week to %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "", "Directory to write to (default the configured export dir)")
	cmd.Flags().BoolVar(&stdout, "stdout", false, "Print the JSON instead of writing a file")

	return cmd
}

func newExportAllCmd(app *App) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "all",
		Short: "Write a full backup of every week and month setting",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := app.Store.ExportAllData()
			if err != nil {
				return err
			}
			if out == "" {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return err
			}
			if err := os.WriteFile(out, data, 0o600); err != nil {
				return fmt.Errorf("writing %s: %w", out, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported all data to %s\n", out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "File to write (default stdout)")

	return cmd
}

func newImportCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import tasks or a full backup from JSON",
	}

	cmd.AddCommand(newImportWeekCmd(app), newImportAllCmd(app))

	return cmd
}

// readInput reads a file, or stdin when path is "-".
func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return data, nil
}

func newImportWeekCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "week <file|->",
		Short: "Append tasks from a week document to the current week",
		Long: `Append the tasks of a week document to the current week. The document is
checked in full first; on any error nothing is imported. A "weekStart" or
"option" field in the document replaces the current week's value.

Document shape:
  {
    "weekStart": "2026-10-19",
    "option": 2,
    "tasks": [
      {"day": "MON", "project": "D", "title": "Outline", "duration": 45, "startTime": "09:00"}
    ]
  }`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}
			res, err := app.Store.ImportFromJSON(data)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d tasks into week %s (option %d)\n",
				res.Imported, res.WeekStart, res.Option)
			return nil
		},
	}
}

func newImportAllCmd(app *App) *cobra.Command {
	var yes, noBackup bool

	cmd := &cobra.Command{
		Use:   "all <file|->",
		Short: "Replace all data with a full backup",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}
			ok, err := confirm(app, "Replace every week and month setting with this backup?", yes)
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
				return nil
			}
			if !noBackup && app.Backups != nil {
				path, err := app.Backups.CreateBackup(context.Background(), app.Store)
				if err != nil {
					return fmt.Errorf("backing up before import: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Saved previous data to %s\n", path)
			}
			if err := app.Store.ImportAllData(data); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported all data; current week is %s\n", app.Store.CurrentWeek().WeekStart)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation")
	cmd.Flags().BoolVar(&noBackup, "no-backup", false, "Do not back up the current data first")

	return cmd
}
