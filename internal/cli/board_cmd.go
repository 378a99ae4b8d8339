package cli

import (
	"context"
	"fmt"

	"github.com/JPNeto01/okrplanner01-sub000/internal/cli/formatter"
	"github.com/JPNeto01/okrplanner01-sub000/internal/contract"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newBoardCmd(app *App) *cobra.Command {
	var company, responsible, objective, on string
	var plain bool

	cmd := &cobra.Command{
		Use:   "board",
		Short: "Show a task board ordered by urgency",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			now, err := parseOnFlag(on)
			if err != nil {
				return err
			}

			req := contract.BoardRequest{Now: now, ResponsibleID: responsible}
			if objective != "" {
				id, err := resolveObjectiveID(ctx, app, company, objective)
				if err != nil {
					return err
				}
				req.ObjectiveID = id
			}

			resp, err := app.Board.MyTasks(ctx, req)
			if err != nil {
				return err
			}

			if app.Interactive && !plain {
				program := tea.NewProgram(newBoardModel(resp), tea.WithAltScreen())
				_, err := program.Run()
				return err
			}

			fmt.Println(formatter.FormatBoard(resp))
			return nil
		},
	}

	cmd.Flags().StringVar(&company, "company", "", "Company, required with --objective")
	cmd.Flags().StringVar(&responsible, "responsible", "", "Scope to one responsible's tasks")
	cmd.Flags().StringVar(&objective, "objective", "", "Scope to one objective (ID, prefix or title)")
	cmd.Flags().StringVar(&on, "on", "", "Evaluate urgencies as of this date (YYYY-MM-DD)")
	cmd.Flags().BoolVar(&plain, "plain", false, "Force plain table output")

	return cmd
}

func newBacklogCmd(app *App) *cobra.Command {
	var company, objective string

	cmd := &cobra.Command{
		Use:   "backlog",
		Short: "Show an objective's backlog",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveObjectiveID(ctx, app, company, objective)
			if err != nil {
				return err
			}
			resp, err := app.Board.Backlog(ctx, contract.BacklogRequest{ObjectiveID: id})
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatBacklog(resp.Tasks))
			return nil
		},
	}

	cmd.Flags().StringVar(&company, "company", "", "Company the objective belongs to")
	cmd.Flags().StringVar(&objective, "objective", "", "Objective (ID, prefix or title)")
	_ = cmd.MarkFlagRequired("company")
	_ = cmd.MarkFlagRequired("objective")

	return cmd
}
