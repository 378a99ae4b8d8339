package cli

import (
	"context"
	"fmt"

	"github.com/JPNeto01/okrplanner01-sub000/internal/cli/formatter"
	"github.com/JPNeto01/okrplanner01-sub000/internal/domain"
	"github.com/spf13/cobra"
)

func newPersonCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "person",
		Short: "Manage people",
	}
	cmd.AddCommand(newPersonAddCmd(app), newPersonListCmd(app))
	return cmd
}

func newPersonAddCmd(app *App) *cobra.Command {
	var name, email, company string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Register a person",
		RunE: func(cmd *cobra.Command, args []string) error {
			p := &domain.Person{Name: name, Email: email, Company: company}
			if err := app.People.Create(context.Background(), p); err != nil {
				return err
			}
			fmt.Printf("Created person %s (%s)\n", p.Name, p.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Person name")
	cmd.Flags().StringVar(&email, "email", "", "E-mail address")
	cmd.Flags().StringVar(&company, "company", "", "Company the person belongs to")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("company")

	return cmd
}

func newPersonListCmd(app *App) *cobra.Command {
	var company string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List a company's people",
		RunE: func(cmd *cobra.Command, args []string) error {
			people, err := app.People.ListByCompany(context.Background(), company)
			if err != nil {
				return err
			}
			if len(people) == 0 {
				fmt.Println("No people found.")
				return nil
			}

			rows := make([][]string, 0, len(people))
			for _, p := range people {
				rows = append(rows, []string{
					formatter.Bold(p.Name),
					formatter.Dim(p.Email),
					formatter.Dim(shortID(p.ID)),
				})
			}
			fmt.Println(formatter.RenderTable([]string{"NAME", "EMAIL", "ID"}, rows))
			return nil
		},
	}

	cmd.Flags().StringVar(&company, "company", "", "Company to list")
	_ = cmd.MarkFlagRequired("company")

	return cmd
}
