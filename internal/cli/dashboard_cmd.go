package cli

import (
	"context"
	"fmt"

	"github.com/JPNeto01/okrplanner01-sub000/internal/cli/formatter"
	"github.com/JPNeto01/okrplanner01-sub000/internal/contract"
	"github.com/spf13/cobra"
)

func newDashboardCmd(app *App) *cobra.Command {
	var company, responsible, on string

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show the company analytics dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			now, err := parseOnFlag(on)
			if err != nil {
				return err
			}

			resp, err := app.Dashboard.BuildDashboard(context.Background(), contract.DashboardRequest{
				Now:           now,
				Company:       company,
				ResponsibleID: responsible,
			})
			if err != nil {
				return err
			}

			fmt.Println(formatter.FormatDashboard(resp))
			return nil
		},
	}

	cmd.Flags().StringVar(&company, "company", "", "Company to report on")
	cmd.Flags().StringVar(&responsible, "responsible", "", "Narrow every slice to one responsible")
	cmd.Flags().StringVar(&on, "on", "", "Evaluate the report as of this date (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("company")

	return cmd
}
