package cmd

import (
	"github.com/spf13/cobra"

	"github.com/neofinance/neofin/pkg/service"
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Authentication commands",
	Long:  "Manage authentication with NeoFinance",
}

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a new NeoFinance account",
	Long:  "Register a new user account with NeoFinance",
	RunE: func(cmd *cobra.Command, args []string) error {
		authSvc := service.NewAuthService(sessions)
		return authSvc.Register()
	},
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Login to NeoFinance",
	Long:  "Authenticate with NeoFinance using email and password",
	RunE: func(cmd *cobra.Command, args []string) error {
		authSvc := service.NewAuthService(sessions)
		return authSvc.Login()
	},
}

var guestCmd = &cobra.Command{
	Use:   "guest",
	Short: "Continue as guest",
	Long:  "Sign in with a server-issued ephemeral guest identity",
	RunE: func(cmd *cobra.Command, args []string) error {
		authSvc := service.NewAuthService(sessions)
		return authSvc.Guest()
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Logout from NeoFinance",
	RunE: func(cmd *cobra.Command, args []string) error {
		authSvc := service.NewAuthService(sessions)
		return authSvc.Logout()
	},
}

var meCmd = &cobra.Command{
	Use:   "me",
	Short: "Display current authenticated user",
	RunE: func(cmd *cobra.Command, args []string) error {
		authSvc := service.NewAuthService(sessions)
		return authSvc.Me()
	},
}

var refreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Refresh authentication token",
	RunE: func(cmd *cobra.Command, args []string) error {
		authSvc := service.NewAuthService(sessions)
		return authSvc.Refresh()
	},
}

func init() {
	authCmd.AddCommand(registerCmd)
	authCmd.AddCommand(loginCmd)
	authCmd.AddCommand(guestCmd)
	authCmd.AddCommand(logoutCmd)
	authCmd.AddCommand(meCmd)
	authCmd.AddCommand(refreshCmd)
}
