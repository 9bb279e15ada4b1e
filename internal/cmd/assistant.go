package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/neofinance/neofin/pkg/service"
)

var assistantMessage string

var assistantCmd = &cobra.Command{
	Use:   "assistant",
	Short: "Budgeting assistant",
	Long:  "Chat with the NeoFinance budgeting assistant",
}

var assistantChatCmd = &cobra.Command{
	Use:     "chat [message]",
	Short:   "Send a message to the assistant",
	PreRunE: requireAuth,
	RunE: func(cmd *cobra.Command, args []string) error {
		assistantSvc := service.NewAssistantService(sessions)
		return assistantSvc.Chat(strings.Join(args, " "))
	},
}

var assistantCSVCmd = &cobra.Command{
	Use:     "csv <file>",
	Short:   "Ask the assistant about a CSV of transactions",
	Args:    cobra.ExactArgs(1),
	PreRunE: requireAuth,
	RunE: func(cmd *cobra.Command, args []string) error {
		assistantSvc := service.NewAssistantService(sessions)
		return assistantSvc.ChatCSV(args[0], assistantMessage)
	},
}

func init() {
	assistantCSVCmd.Flags().StringVarP(&assistantMessage, "message", "m", "", "Optional follow-up question about the CSV")

	assistantCmd.AddCommand(assistantChatCmd)
	assistantCmd.AddCommand(assistantCSVCmd)
}
