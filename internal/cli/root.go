package cli

import (
	"time"

	"github.com/alexanderramin/neurosprint/internal/planner"
	"github.com/alexanderramin/neurosprint/internal/service"
	"github.com/spf13/cobra"
)

// App holds the store and services used by CLI commands.
type App struct {
	Store   *planner.Store
	State   service.StateService
	Backups service.BackupService

	// ExportDir is where week exports are written when no --dir is given.
	ExportDir string

	// IsInteractive reports whether stdin is a terminal; forms and the
	// board refuse to start otherwise. Nil means non-interactive.
	IsInteractive func() bool

	Now func() time.Time
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

// NewRootCmd creates the top-level "neurosprint" command and registers all
// subcommands against the provided App. Without a subcommand it shows the
// current week.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "neurosprint",
		Short:         "Weekly planner with sprint and integration weeks",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return showWeek(cmd, app)
		},
	}

	root.AddCommand(
		newTaskCmd(app),
		newWeekCmd(app),
		newReflectCmd(app),
		newMonthCmd(app),
		newExportCmd(app),
		newImportCmd(app),
		newBackupCmd(app),
		newHistoryCmd(app),
		newBoardCmd(app),
	)

	return root
}
