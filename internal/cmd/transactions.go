package cmd

import (
	"github.com/spf13/cobra"

	"github.com/neofinance/neofin/pkg/api"
	"github.com/neofinance/neofin/pkg/export"
	"github.com/neofinance/neofin/pkg/service"
)

var (
	txSortBy      string
	txOrder       string
	txAmount      float64
	txType        string
	txCategory    string
	txDate        string
	txDescription string
	txRecurrence  string
	txYes         bool
	txExportPath  string
	txExportType  string
)

var txCmd = &cobra.Command{
	Use:     "tx",
	Aliases: []string{"transactions"},
	Short:   "Manage transactions",
	Long:    "Record, list, update, delete and export income/expense transactions",
}

var txListCmd = &cobra.Command{
	Use:     "list",
	Short:   "List transactions",
	PreRunE: requireAuth,
	RunE: func(cmd *cobra.Command, args []string) error {
		txSvc := service.NewTransactionService(sessions)
		return txSvc.List(txSortBy, txOrder)
	},
}

var txAddCmd = &cobra.Command{
	Use:     "add",
	Short:   "Record a new transaction",
	PreRunE: requireAuth,
	RunE: func(cmd *cobra.Command, args []string) error {
		txSvc := service.NewTransactionService(sessions)
		return txSvc.Add(transactionRequestFromFlags())
	},
}

var txUpdateCmd = &cobra.Command{
	Use:     "update <id>",
	Short:   "Update a transaction",
	Args:    cobra.ExactArgs(1),
	PreRunE: requireAuth,
	RunE: func(cmd *cobra.Command, args []string) error {
		txSvc := service.NewTransactionService(sessions)
		return txSvc.Update(args[0], transactionRequestFromFlags())
	},
}

var txDeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Short:   "Delete a transaction",
	Args:    cobra.ExactArgs(1),
	PreRunE: requireAuth,
	RunE: func(cmd *cobra.Command, args []string) error {
		txSvc := service.NewTransactionService(sessions)
		return txSvc.Delete(args[0], txYes)
	},
}

var txExportCmd = &cobra.Command{
	Use:     "export",
	Short:   "Export transactions as CSV",
	Long:    "Export transactions as CSV to a file, or stdout when no file is given",
	PreRunE: requireAuth,
	RunE: func(cmd *cobra.Command, args []string) error {
		txSvc := service.NewTransactionService(sessions)
		return txSvc.Export(txExportPath, export.Filter(txExportType))
	},
}

func transactionRequestFromFlags() *api.TransactionRequest {
	return &api.TransactionRequest{
		Amount:      api.Amount(txAmount),
		Type:        api.TransactionType(txType),
		Category:    txCategory,
		Date:        txDate,
		Description: txDescription,
		Recurrence:  api.Recurrence(txRecurrence),
	}
}

func init() {
	txListCmd.Flags().StringVar(&txSortBy, "sort", "date", "Sort by: date, amount")
	txListCmd.Flags().StringVar(&txOrder, "order", "desc", "Sort order: asc, desc")

	for _, c := range []*cobra.Command{txAddCmd, txUpdateCmd} {
		c.Flags().Float64Var(&txAmount, "amount", 0, "Transaction amount")
		c.Flags().StringVar(&txType, "type", "expense", "Transaction type: income, expense")
		c.Flags().StringVar(&txCategory, "category", "", "Transaction category")
		c.Flags().StringVar(&txDate, "date", "", "Transaction date (RFC3339 or YYYY-MM-DD, default now)")
		c.Flags().StringVar(&txDescription, "description", "", "Transaction description")
		c.Flags().StringVar(&txRecurrence, "recurrence", "none", "Recurrence: none, daily, weekly, monthly")
	}

	txDeleteCmd.Flags().BoolVarP(&txYes, "yes", "y", false, "Skip confirmation")

	txExportCmd.Flags().StringVarP(&txExportPath, "file", "f", "", "Output file (default stdout)")
	txExportCmd.Flags().StringVar(&txExportType, "filter", "all", "Filter: all, income, expense")

	txCmd.AddCommand(txListCmd)
	txCmd.AddCommand(txAddCmd)
	txCmd.AddCommand(txUpdateCmd)
	txCmd.AddCommand(txDeleteCmd)
	txCmd.AddCommand(txExportCmd)
}
