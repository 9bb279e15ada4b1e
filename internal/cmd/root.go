package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/neofinance/neofin/pkg/client"
	"github.com/neofinance/neofin/pkg/config"
	"github.com/neofinance/neofin/pkg/errors"
	"github.com/neofinance/neofin/pkg/guard"
	"github.com/neofinance/neofin/pkg/logger"
	"github.com/neofinance/neofin/pkg/output"
	"github.com/neofinance/neofin/pkg/session"
)

var (
	verbose    bool
	configPath string
	outputFmt  string

	sessions *session.Manager
)

var rootCmd = &cobra.Command{
	Use:   "neofin",
	Short: "NeoFinance CLI - Personal finance from the terminal",
	Long: `neofin is a command-line client for the NeoFinance personal
finance platform. Record income and expenses, review spending
reports, read finance news, and chat with the budgeting
assistant directly from the terminal.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Initialize config and logger
		if err := config.Init(configPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error initializing config: %v\n", err)
			os.Exit(1)
		}

		logger.Init(verbose)

		if !output.ValidateOutputFormat(outputFmt) {
			fmt.Fprintf(os.Stderr, "Unknown output format %q, using text\n", outputFmt)
			outputFmt = "text"
		}
		config.SetString("output.format", outputFmt)

		// Build the session manager and hand it to the HTTP client
		sessions = session.NewManager(session.NewStore(config.GetStateDir()))
		sessions.Init()
		client.Init(sessions)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s", errors.FormatError(err))
		os.Exit(1)
	}
}

// requireAuth gates a command on a logged-in session
func requireAuth(cmd *cobra.Command, args []string) error {
	return guard.RequireAuth(sessions)
}

// requireStaff gates a command on a logged-in staff session
func requireStaff(cmd *cobra.Command, args []string) error {
	return guard.RequireStaff(sessions)
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (default: ~/.config/neofin/config.toml)")
	rootCmd.PersistentFlags().StringVar(&outputFmt, "output", "text", "Output format: text, json, table")

	// Add subcommands
	rootCmd.AddCommand(authCmd)
	rootCmd.AddCommand(dashboardCmd)
	rootCmd.AddCommand(txCmd)
	rootCmd.AddCommand(reportsCmd)
	rootCmd.AddCommand(assistantCmd)
	rootCmd.AddCommand(newsCmd)
	rootCmd.AddCommand(adminCmd)
	rootCmd.AddCommand(versionCmd)
}
