package main

import (
	"fmt"

	"github.com/ajju-1209/hostel-management/internal/domain/models"
	Logger "github.com/ajju-1209/hostel-management/pkg/logger"

	"github.com/spf13/cobra"
)

func newAddUserCmd(app *adminApp) *cobra.Command {
	return &cobra.Command{
		Use:   "add-user <email> <password> <role> [firstName] [lastName]",
		Short: "Create a resident, staff or admin account",
		Args:  cobra.RangeArgs(3, 5),
		RunE: func(cmd *cobra.Command, args []string) error {
			user := &models.User{Email: args[0], UserRole: args[2]}
			if len(args) > 3 {
				user.FirstName = args[3]
			}
			if len(args) > 4 {
				user.LastName = args[4]
			}

			if err := app.users.CreateUser(cmd.Context(), user, args[1]); err != nil {
				return fmt.Errorf("create user %s: %w", args[0], err)
			}
			Logger.Info("user %s created with role %s", user.Email, user.UserRole)
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "User %s (%s) has been created.\n", user.Email, user.UserRole)
			return err
		},
	}
}

func newAddDescriptionCmd(app *adminApp) *cobra.Command {
	return &cobra.Command{
		Use:   "add-description <issueType> <description>",
		Short: "Add a predefined complaint description",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := app.complaints.CreateStandardDescription(cmd.Context(), args[0], args[1])
			if err != nil {
				return fmt.Errorf("create description: %w", err)
			}
			Logger.Info("standard description %d created for %s", d.ID, d.IssueType)
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Description %d has been created for %s.\n", d.ID, d.IssueType)
			return err
		},
	}
}

func newListDescriptionsCmd(app *adminApp) *cobra.Command {
	return &cobra.Command{
		Use:   "list-descriptions [issueType]",
		Short: "List predefined complaint descriptions",
		Args:  cobra.RangeArgs(0, 1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var issueType string
			if len(args) == 1 {
				issueType = args[0]
			}

			descriptions, err := app.complaints.ListStandardDescriptions(cmd.Context(), issueType)
			if err != nil {
				return fmt.Errorf("list descriptions: %w", err)
			}
			for _, d := range descriptions {
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\n", d.ID, d.IssueType, d.Description); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
