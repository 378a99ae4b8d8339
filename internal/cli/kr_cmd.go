package cli

import (
	"context"
	"fmt"

	"github.com/JPNeto01/okrplanner01-sub000/internal/cli/formatter"
	"github.com/JPNeto01/okrplanner01-sub000/internal/domain"
	"github.com/spf13/cobra"
)

func newKRCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "kr",
		Short: "Manage key results",
	}

	cmd.AddCommand(
		newKRAddCmd(app),
		newKRListCmd(app),
		newKRRemoveCmd(app),
		newKRRecomputeCmd(app),
	)

	return cmd
}

func newKRAddCmd(app *App) *cobra.Command {
	var company, objective, title, due, responsible string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a key result under an objective",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			objectiveID, err := resolveObjectiveID(ctx, app, company, objective)
			if err != nil {
				return err
			}
			dueDate, err := parseDateFlag("due", due)
			if err != nil {
				return err
			}

			kr := &domain.KeyResult{
				ObjectiveID: objectiveID,
				Title:       title,
				DueDate:     dueDate,
			}
			if responsible != "" {
				kr.ResponsibleID = &responsible
			}

			if err := app.KeyResults.Create(ctx, kr); err != nil {
				return err
			}
			fmt.Printf("Created key result %s (%s)\n", kr.Title, shortID(kr.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&company, "company", "", "Company the objective belongs to")
	cmd.Flags().StringVar(&objective, "objective", "", "Parent objective (ID, prefix or title)")
	cmd.Flags().StringVar(&title, "title", "", "Key result title")
	cmd.Flags().StringVar(&due, "due", "", "Due date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&responsible, "responsible", "", "Responsible person ID")
	_ = cmd.MarkFlagRequired("company")
	_ = cmd.MarkFlagRequired("objective")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}

func newKRListCmd(app *App) *cobra.Command {
	var company, objective string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List an objective's key results",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			objectiveID, err := resolveObjectiveID(ctx, app, company, objective)
			if err != nil {
				return err
			}
			krs, err := app.KeyResults.ListByObjective(ctx, objectiveID)
			if err != nil {
				return err
			}
			if len(krs) == 0 {
				fmt.Println("No key results found.")
				return nil
			}

			rows := make([][]string, 0, len(krs))
			for _, kr := range krs {
				rows = append(rows, []string{
					formatter.Bold(kr.Title),
					formatter.KRStatusPill(kr.Status),
					formatter.FormatDate(kr.DueDate),
					formatter.Dim(shortID(kr.ID)),
				})
			}
			fmt.Println(formatter.RenderTable([]string{"KEY RESULT", "STATUS", "DUE", "ID"}, rows))
			return nil
		},
	}

	cmd.Flags().StringVar(&company, "company", "", "Company the objective belongs to")
	cmd.Flags().StringVar(&objective, "objective", "", "Parent objective (ID, prefix or title)")
	_ = cmd.MarkFlagRequired("company")
	_ = cmd.MarkFlagRequired("objective")

	return cmd
}

func newKRRemoveCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove <kr-id>",
		Short: "Delete a key result (its tasks drop to the backlog)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.KeyResults.Delete(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Println("Key result removed; its tasks moved to the backlog.")
			return nil
		},
	}
	return cmd
}

func newKRRecomputeCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recompute <kr-id>",
		Short: "Re-derive a key result's status from its tasks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := app.KeyResults.Recompute(context.Background(), args[0])
			if err != nil {
				return err
			}
			fmt.Printf("Key result status: %s\n", st)
			return nil
		},
	}
	return cmd
}
