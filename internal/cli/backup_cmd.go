package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/alexanderramin/neurosprint/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newBackupCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Create, list and restore backup files",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "create",
			Short: "Write a backup of all data",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				path, err := app.Backups.CreateBackup(context.Background(), app.Store)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Backup written to %s\n", path)
				return nil
			},
		},
		&cobra.Command{
			Use:     "list",
			Aliases: []string{"ls"},
			Short:   "List backups, newest first",
			Args:    cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				backups, err := app.Backups.ListBackups()
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), formatter.FormatBackups(backups, app.now()))
				return nil
			},
		},
		newBackupRestoreCmd(app),
	)

	return cmd
}

func newBackupRestoreCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "restore <number|path>",
		Short: "Replace all data with a backup",
		Long:  `Restore a backup by its number in "backup list" or by file path.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			if n, err := strconv.Atoi(args[0]); err == nil {
				backups, err := app.Backups.ListBackups()
				if err != nil {
					return err
				}
				if n < 1 || n > len(backups) {
					return fmt.Errorf("no backup #%d (%d available)", n, len(backups))
				}
				path = backups[n-1].Path
			}
			ok, err := confirm(app, "Replace all data with "+path+"?", yes)
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
				return nil
			}
			if err := app.Backups.RestoreBackup(context.Background(), app.Store, path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Restored %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation")

	return cmd
}

func newHistoryCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Browse and restore earlier saved revisions",
	}

	var limit int
	list := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List earlier revisions, newest first",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := app.State.History(context.Background(), limit)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatHistory(entries, app.now()))
			return nil
		},
	}
	list.Flags().IntVarP(&limit, "limit", "n", 20, "How many revisions to show (0 for all)")

	var yes bool
	restore := &cobra.Command{
		Use:   "restore <revision>",
		Short: "Bring back the data as it was at a revision",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rev, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid revision %q", args[0])
			}
			ok, err := confirm(app, fmt.Sprintf("Restore revision %d?", rev), yes)
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
				return nil
			}
			if err := app.State.RestoreRevision(context.Background(), app.Store, rev); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Restored revision %d; current week is %s\n", rev, app.Store.CurrentWeek().WeekStart)
			return nil
		},
	}
	restore.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation")

	cmd.AddCommand(list, restore)
	return cmd
}
