package cmd

import (
	"github.com/spf13/cobra"

	"github.com/neofinance/neofin/pkg/service"
)

var newsCmd = &cobra.Command{
	Use:   "news",
	Short: "Latest finance news",
	RunE: func(cmd *cobra.Command, args []string) error {
		newsSvc := service.NewNewsService()
		return newsSvc.Show()
	},
}
