package cmd

import (
	"github.com/spf13/cobra"

	"github.com/neofinance/neofin/pkg/service"
)

var dashboardCmd = &cobra.Command{
	Use:     "dashboard",
	Short:   "Account overview",
	Long:    "Balance, recent transactions and finance headlines at a glance",
	PreRunE: requireAuth,
	RunE: func(cmd *cobra.Command, args []string) error {
		dashSvc := service.NewDashboardService(sessions)
		return dashSvc.Show()
	},
}
