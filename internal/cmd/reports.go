package cmd

import (
	"github.com/spf13/cobra"

	"github.com/neofinance/neofin/pkg/service"
)

var reportsCmd = &cobra.Command{
	Use:   "reports",
	Short: "Spending and income reports",
	Long:  "Aggregated year/month/week totals and per-category breakdowns",
}

var reportsIncomeCmd = &cobra.Command{
	Use:     "income",
	Short:   "Income report",
	PreRunE: requireAuth,
	RunE: func(cmd *cobra.Command, args []string) error {
		reportSvc := service.NewReportService(sessions)
		return reportSvc.Income()
	},
}

var reportsExpensesCmd = &cobra.Command{
	Use:     "expenses",
	Short:   "Expenses report",
	PreRunE: requireAuth,
	RunE: func(cmd *cobra.Command, args []string) error {
		reportSvc := service.NewReportService(sessions)
		return reportSvc.Expenses()
	},
}

var reportsSummaryCmd = &cobra.Command{
	Use:     "summary",
	Short:   "Income and expenses side by side",
	PreRunE: requireAuth,
	RunE: func(cmd *cobra.Command, args []string) error {
		reportSvc := service.NewReportService(sessions)
		return reportSvc.Summary()
	},
}

func init() {
	reportsCmd.AddCommand(reportsIncomeCmd)
	reportsCmd.AddCommand(reportsExpensesCmd)
	reportsCmd.AddCommand(reportsSummaryCmd)
}
