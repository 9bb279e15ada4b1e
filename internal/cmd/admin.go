package cmd

import (
	"github.com/spf13/cobra"

	"github.com/neofinance/neofin/pkg/service"
)

var adminYes bool

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Admin commands",
	Long:  "Administrative commands (staff only)",
}

var adminUsersCmd = &cobra.Command{
	Use:   "users",
	Short: "Manage user accounts",
}

var adminUsersListCmd = &cobra.Command{
	Use:     "list",
	Short:   "List all user accounts",
	PreRunE: requireStaff,
	RunE: func(cmd *cobra.Command, args []string) error {
		adminSvc := service.NewAdminService(sessions)
		return adminSvc.ListUsers()
	},
}

var adminUsersDeleteCmd = &cobra.Command{
	Use:     "delete <user-id>",
	Short:   "Delete a user account",
	Args:    cobra.ExactArgs(1),
	PreRunE: requireStaff,
	RunE: func(cmd *cobra.Command, args []string) error {
		adminSvc := service.NewAdminService(sessions)
		return adminSvc.DeleteUser(args[0], adminYes)
	},
}

func init() {
	adminUsersDeleteCmd.Flags().BoolVarP(&adminYes, "yes", "y", false, "Skip confirmation")

	adminUsersCmd.AddCommand(adminUsersListCmd)
	adminUsersCmd.AddCommand(adminUsersDeleteCmd)
	adminCmd.AddCommand(adminUsersCmd)
}
