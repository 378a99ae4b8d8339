package cli

import (
	"context"
	"fmt"

	"github.com/JPNeto01/okrplanner01-sub000/internal/cli/formatter"
	"github.com/JPNeto01/okrplanner01-sub000/internal/contract"
	"github.com/JPNeto01/okrplanner01-sub000/internal/domain"
	"github.com/spf13/cobra"
)

func newObjectiveCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "objective",
		Aliases: []string{"obj"},
		Short:   "Manage objectives",
	}

	cmd.AddCommand(
		newObjectiveAddCmd(app),
		newObjectiveListCmd(app),
		newObjectiveInspectCmd(app),
		newObjectiveUpdateCmd(app),
		newObjectiveRemoveCmd(app),
		newObjectiveImportCmd(app),
	)

	return cmd
}

func newObjectiveAddCmd(app *App) *cobra.Command {
	var title, company, due, responsible, coordinator string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new objective",
		RunE: func(cmd *cobra.Command, args []string) error {
			dueDate, err := parseDateFlag("due", due)
			if err != nil {
				return err
			}

			o := &domain.Objective{
				Title:         title,
				Company:       company,
				DueDate:       dueDate,
				ResponsibleID: responsible,
			}
			if coordinator != "" {
				o.CoordinatorID = &coordinator
			}

			if err := app.Objectives.Create(context.Background(), o); err != nil {
				return err
			}
			fmt.Printf("Created objective %s (%s)\n", o.Title, shortID(o.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Objective title")
	cmd.Flags().StringVar(&company, "company", "", "Owning company")
	cmd.Flags().StringVar(&due, "due", "", "Due date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&responsible, "responsible", "", "Responsible person ID")
	cmd.Flags().StringVar(&coordinator, "coordinator", "", "Coordinator person ID")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("company")
	_ = cmd.MarkFlagRequired("responsible")

	return cmd
}

func newObjectiveListCmd(app *App) *cobra.Command {
	var company, on string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List a company's objectives with derived status",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			now, err := parseOnFlag(on)
			if err != nil {
				return err
			}

			objectives, err := app.Objectives.ListByCompany(ctx, company)
			if err != nil {
				return err
			}
			if len(objectives) == 0 {
				fmt.Println("No objectives found.")
				return nil
			}

			rows := make([][]string, 0, len(objectives))
			for _, o := range objectives {
				overview, err := app.Objectives.Overview(ctx, contract.OverviewRequest{ObjectiveID: o.ID, Now: now})
				if err != nil {
					return err
				}
				st := formatter.StyleYellow.Render("in progress")
				if overview.Derivation.CalculatedStatus == domain.ObjectiveDone {
					st = formatter.StyleGreen.Render("done")
				}
				if overview.Overdue {
					st += " " + formatter.StyleRed.Render("● OVERDUE")
				}
				rows = append(rows, []string{
					formatter.Bold(o.Title),
					st,
					formatter.RenderProgress(overview.Derivation.ProgressByTasks, 10),
					formatter.FormatDate(o.DueDate),
					formatter.Dim(shortID(o.ID)),
				})
			}
			fmt.Println(formatter.RenderTable([]string{"OBJECTIVE", "STATUS", "PROGRESS", "DUE", "ID"}, rows))
			return nil
		},
	}

	cmd.Flags().StringVar(&company, "company", "", "Company to list")
	cmd.Flags().StringVar(&on, "on", "", "Evaluate statuses as of this date (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("company")

	return cmd
}

func newObjectiveInspectCmd(app *App) *cobra.Command {
	var company, on string

	cmd := &cobra.Command{
		Use:   "inspect <objective>",
		Short: "Show one objective's derived overview",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			now, err := parseOnFlag(on)
			if err != nil {
				return err
			}

			id, err := resolveObjectiveID(ctx, app, company, args[0])
			if err != nil {
				return err
			}
			overview, err := app.Objectives.Overview(ctx, contract.OverviewRequest{ObjectiveID: id, Now: now})
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatObjectiveOverview(overview))
			return nil
		},
	}

	cmd.Flags().StringVar(&company, "company", "", "Company the objective belongs to")
	cmd.Flags().StringVar(&on, "on", "", "Evaluate statuses as of this date (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("company")

	return cmd
}

func newObjectiveUpdateCmd(app *App) *cobra.Command {
	var company, title, due string

	cmd := &cobra.Command{
		Use:   "update <objective>",
		Short: "Update an objective's title or due date",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveObjectiveID(ctx, app, company, args[0])
			if err != nil {
				return err
			}
			o, err := app.Objectives.GetByID(ctx, id)
			if err != nil {
				return err
			}

			if title != "" {
				o.Title = title
			}
			if due != "" {
				dueDate, err := parseDateFlag("due", due)
				if err != nil {
					return err
				}
				o.DueDate = dueDate
			}

			if err := app.Objectives.Update(ctx, o); err != nil {
				return err
			}
			fmt.Printf("Updated objective %s\n", o.Title)
			return nil
		},
	}

	cmd.Flags().StringVar(&company, "company", "", "Company the objective belongs to")
	cmd.Flags().StringVar(&title, "title", "", "New title")
	cmd.Flags().StringVar(&due, "due", "", "New due date (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("company")

	return cmd
}

func newObjectiveRemoveCmd(app *App) *cobra.Command {
	var company string

	cmd := &cobra.Command{
		Use:   "remove <objective>",
		Short: "Delete an objective and its key results",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveObjectiveID(ctx, app, company, args[0])
			if err != nil {
				return err
			}
			if err := app.Objectives.Delete(ctx, id); err != nil {
				return err
			}
			fmt.Println("Objective removed.")
			return nil
		},
	}

	cmd.Flags().StringVar(&company, "company", "", "Company the objective belongs to")
	_ = cmd.MarkFlagRequired("company")

	return cmd
}

func newObjectiveImportCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file.json>",
		Short: "Import an objective tree from a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.Import.ImportObjective(context.Background(), args[0])
			if err != nil {
				return err
			}
			fmt.Printf("Imported objective %s: %d people, %d key results, %d tasks\n",
				result.Objective.Title, result.PersonCount, result.KeyResultCount, result.TaskCount)
			return nil
		},
	}
	return cmd
}
