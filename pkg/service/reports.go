package service

import (
	"fmt"
	"time"

	"github.com/neofinance/neofin/pkg/api"
	"github.com/neofinance/neofin/pkg/formatter"
	"github.com/neofinance/neofin/pkg/report"
	"github.com/neofinance/neofin/pkg/session"
)

type ReportService struct {
	sessions *session.Manager
}

// NewReportService creates a new report service
func NewReportService(sessions *session.Manager) *ReportService {
	return &ReportService{sessions: sessions}
}

// Income shows the income report
func (s *ReportService) Income() error {
	return s.show(api.TypeIncome, "Income")
}

// Expenses shows the expenses report
func (s *ReportService) Expenses() error {
	return s.show(api.TypeExpense, "Expenses")
}

// Summary shows income and expenses side by side with the running balance
func (s *ReportService) Summary() error {
	transactions, err := api.GetTransactions()
	if err != nil {
		formatter.PrintError("Failed to load transactions: %v", err)
		return err
	}

	now := time.Now()
	income := report.Aggregate(transactions, report.Options{Type: api.TypeIncome, Now: now})
	expenses := report.Aggregate(transactions, report.Options{Type: api.TypeExpense, Now: now})

	formatter.PrintInfo("Summary for %s", now.Format("January 2006"))
	formatter.PrintTable(
		[]string{"Period", "Income", "Expenses", "Net"},
		[][]string{
			{"This week", money(income.WeekTotal), money(expenses.WeekTotal), money(income.WeekTotal - expenses.WeekTotal)},
			{"This month", money(income.MonthTotal), money(expenses.MonthTotal), money(income.MonthTotal - expenses.MonthTotal)},
			{"This year", money(income.YearTotal), money(expenses.YearTotal), money(income.YearTotal - expenses.YearTotal)},
		},
	)

	totalIncome, totalExpense := report.Totals(transactions)
	fmt.Printf("\n")
	formatter.PrintInfo("Balance: %s", formatter.Bold.Sprint(money(totalIncome-totalExpense)))
	return nil
}

func (s *ReportService) show(txnType api.TransactionType, title string) error {
	transactions, err := api.GetTransactions()
	if err != nil {
		formatter.PrintError("Failed to load transactions: %v", err)
		return err
	}

	now := time.Now()
	summary := report.Aggregate(transactions, report.Options{Type: txnType, Now: now})

	formatter.PrintInfo("%s for %s", title, now.Format("January 2006"))
	formatter.PrintTable(
		[]string{"Period", "Current", "Previous", "Change"},
		[][]string{
			{"Week", money(summary.WeekTotal), money(summary.PrevWeekTotal), delta(summary.WeekTotal, summary.PrevWeekTotal)},
			{"Month", money(summary.MonthTotal), money(summary.PrevMonthTotal), delta(summary.MonthTotal, summary.PrevMonthTotal)},
			{"Year", money(summary.YearTotal), money(summary.PrevYearTotal), delta(summary.YearTotal, summary.PrevYearTotal)},
		},
	)

	fmt.Printf("\n")
	formatter.PrintInfo("By month (%d)", now.Year())
	monthRows := make([][]string, 0, 12)
	for m := time.January; m <= time.December; m++ {
		monthRows = append(monthRows, []string{
			m.String()[:3],
			money(summary.MonthlyTotals[m-1]),
			money(summary.PrevMonthlyTotals[m-1]),
		})
	}
	formatter.PrintTable(
		[]string{"Month", fmt.Sprintf("%d", now.Year()), fmt.Sprintf("%d", now.Year()-1)},
		monthRows,
	)

	fmt.Printf("\n")
	formatter.PrintInfo("By category")
	catRows := make([][]string, 0, len(summary.CategoryTotals))
	for _, cat := range api.CategoriesForType(txnType) {
		catRows = append(catRows, []string{cat, money(summary.CategoryTotals[cat])})
	}
	formatter.PrintTable([]string{"Category", "Total"}, catRows)

	return nil
}

func money(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

// delta renders the change against the previous period
func delta(current, previous float64) string {
	diff := current - previous
	switch {
	case diff > 0:
		return fmt.Sprintf("↑ %.2f", diff)
	case diff < 0:
		return fmt.Sprintf("↓ %.2f", -diff)
	default:
		return "="
	}
}
