package service

import (
	"fmt"

	"github.com/neofinance/neofin/pkg/api"
	"github.com/neofinance/neofin/pkg/formatter"
	"github.com/neofinance/neofin/pkg/report"
	"github.com/neofinance/neofin/pkg/session"
)

type DashboardService struct {
	sessions *session.Manager
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(sessions *session.Manager) *DashboardService {
	return &DashboardService{sessions: sessions}
}

// Show renders the dashboard: balance, recent transactions, headlines
func (s *DashboardService) Show() error {
	sess, _ := s.sessions.Current()
	formatter.PrintInfo("Welcome back, %s", formatter.Bold.Sprint(sess.Username))
	fmt.Printf("\n")

	transactions, err := api.GetTransactions()
	if err != nil {
		formatter.PrintError("Failed to load transactions: %v", err)
		return err
	}

	income, expense := report.Totals(transactions)
	formatter.PrintKeyValue(map[string]interface{}{
		"Income":   money(income),
		"Expenses": money(expense),
		"Balance":  money(income - expense),
	})

	if len(transactions) > 0 {
		sortTransactions(transactions, "date", "desc")
		recent := transactions
		if len(recent) > 5 {
			recent = recent[:5]
		}

		fmt.Printf("\n")
		formatter.PrintInfo("Recent transactions")
		rows := make([][]string, 0, len(recent))
		for _, txn := range recent {
			date := txn.Date
			if ts, err := txn.Time(); err == nil {
				date = ts.Format("2006-01-02")
			}
			rows = append(rows, []string{date, string(txn.Type), txn.Category, txn.Amount.String()})
		}
		formatter.PrintTable([]string{"Date", "Type", "Category", "Amount"}, rows)
	}

	// Headlines are a nicety; keep the dashboard usable when news is down
	headlines, err := NewNewsService().Fetch()
	if err == nil && len(headlines) > 0 {
		if len(headlines) > 3 {
			headlines = headlines[:3]
		}
		fmt.Printf("\n")
		formatter.PrintInfo("Finance news")
		for _, art := range headlines {
			fmt.Printf("  • %s (%s)\n", art.Title, art.Source)
		}
	}

	return nil
}
