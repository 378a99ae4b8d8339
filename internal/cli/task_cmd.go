package cli

import (
	"context"
	"fmt"

	"github.com/JPNeto01/okrplanner01-sub000/internal/cli/formatter"
	"github.com/JPNeto01/okrplanner01-sub000/internal/domain"
	"github.com/spf13/cobra"
)

func newTaskCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks",
	}

	cmd.AddCommand(
		newTaskAddCmd(app),
		newTaskListCmd(app),
		newTaskDoneCmd(app),
		newTaskReopenCmd(app),
		newTaskMoveCmd(app),
		newTaskRemoveCmd(app),
	)

	return cmd
}

func newTaskAddCmd(app *App) *cobra.Command {
	var company, objective, krID, title, due, responsible string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a task (without --kr it lands in the backlog)",
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

			t := &domain.Task{
				ObjectiveID: objectiveID,
				Title:       title,
				DueDate:     dueDate,
			}
			if krID != "" {
				t.KRID = &krID
			}
			if responsible != "" {
				t.ResponsibleID = &responsible
			}

			if err := app.Tasks.Create(ctx, t); err != nil {
				return err
			}
			where := "backlog"
			if krID != "" {
				where = "key result " + shortID(krID)
			}
			fmt.Printf("Created task %s (%s) in %s\n", t.Title, shortID(t.ID), where)
			return nil
		},
	}

	cmd.Flags().StringVar(&company, "company", "", "Company the objective belongs to")
	cmd.Flags().StringVar(&objective, "objective", "", "Parent objective (ID, prefix or title)")
	cmd.Flags().StringVar(&krID, "kr", "", "Key result to attach the task to")
	cmd.Flags().StringVar(&title, "title", "", "Task title")
	cmd.Flags().StringVar(&due, "due", "", "Due date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&responsible, "responsible", "", "Responsible person ID")
	_ = cmd.MarkFlagRequired("company")
	_ = cmd.MarkFlagRequired("objective")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}

func newTaskListCmd(app *App) *cobra.Command {
	var krID string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List a key result's tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			tasks, err := app.Tasks.ListByKR(context.Background(), krID)
			if err != nil {
				return err
			}
			if len(tasks) == 0 {
				fmt.Println("No tasks found.")
				return nil
			}

			rows := make([][]string, 0, len(tasks))
			for _, t := range tasks {
				rows = append(rows, []string{
					formatter.Bold(t.Title),
					formatter.StatusPill(t.Status),
					formatter.FormatDate(t.DueDate),
					formatter.Dim(shortID(t.ID)),
				})
			}
			fmt.Println(formatter.RenderTable([]string{"TASK", "STATUS", "DUE", "ID"}, rows))
			return nil
		},
	}

	cmd.Flags().StringVar(&krID, "kr", "", "Key result to list")
	_ = cmd.MarkFlagRequired("kr")

	return cmd
}

func newTaskDoneCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "done <task-id>",
		Short: "Complete a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Tasks.MarkDone(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Println("Task completed.")
			return nil
		},
	}
	return cmd
}

func newTaskReopenCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reopen <task-id>",
		Short: "Reopen a completed task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Tasks.Reopen(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Println("Task reopened.")
			return nil
		},
	}
	return cmd
}

func newTaskMoveCmd(app *App) *cobra.Command {
	var krID string
	var toBacklog bool

	cmd := &cobra.Command{
		Use:   "move <task-id>",
		Short: "Move a task to a key result or back to the backlog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			switch {
			case toBacklog:
				if err := app.Tasks.MoveToBacklog(ctx, args[0]); err != nil {
					return err
				}
				fmt.Println("Task moved to the backlog.")
			case krID != "":
				if err := app.Tasks.MoveToKR(ctx, args[0], krID); err != nil {
					return err
				}
				fmt.Printf("Task moved to key result %s.\n", shortID(krID))
			default:
				return fmt.Errorf("pass --kr or --backlog")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&krID, "kr", "", "Target key result")
	cmd.Flags().BoolVar(&toBacklog, "backlog", false, "Move to the backlog")

	return cmd
}

func newTaskRemoveCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove <task-id>",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Tasks.Delete(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Println("Task removed.")
			return nil
		},
	}
	return cmd
}
