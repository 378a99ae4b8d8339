package cli

import (
	"fmt"
	"time"

	"github.com/JPNeto01/okrplanner01-sub000/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	People     service.PersonService
	Objectives service.ObjectiveService
	KeyResults service.KeyResultService
	Tasks      service.TaskService
	Board      service.BoardService
	Dashboard  service.DashboardService
	Import     service.ImportService

	// Interactive reports true when stdout is a terminal; the board
	// command uses it to pick the TUI over plain tables.
	Interactive bool
}

// NewRootCmd creates the top-level "okr" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "okr",
		Short: "Objective tracker with derived statuses and reporting",
	}

	root.AddCommand(
		newPersonCmd(app),
		newObjectiveCmd(app),
		newKRCmd(app),
		newTaskCmd(app),
		newBoardCmd(app),
		newBacklogCmd(app),
		newDashboardCmd(app),
	)

	return root
}

// parseOnFlag turns a --on value into a pinned evaluation date. An empty
// value means the wall clock.
func parseOnFlag(on string) (*time.Time, error) {
	if on == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", on)
	if err != nil {
		return nil, fmt.Errorf("invalid --on date %q (expected YYYY-MM-DD): %w", on, err)
	}
	return &t, nil
}

// parseDateFlag parses an optional YYYY-MM-DD flag value.
func parseDateFlag(name, value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, fmt.Errorf("invalid --%s date %q: %w", name, value, err)
	}
	return &t, nil
}
