// Package report reduces transaction lists into period and category totals.
// One aggregation serves every report, parameterized by type filter and
// category list, independent of any rendering.
package report

import (
	"strings"
	"time"

	"github.com/neofinance/neofin/pkg/api"
)

// Options parameterizes an aggregation pass
type Options struct {
	// Type restricts the reduction to one transaction type; empty means both
	Type api.TransactionType
	// Categories is the closed list keyed in CategoryTotals. Defaults to the
	// closed set for Type.
	Categories []string
	// Now anchors the year/month/week windows
	Now time.Time
}

// Summary holds the reduced totals for one aggregation pass
type Summary struct {
	YearTotal  float64
	MonthTotal float64
	WeekTotal  float64

	PrevYearTotal  float64
	PrevMonthTotal float64
	PrevWeekTotal  float64

	// Per-month sums for the current and previous calendar year
	MonthlyTotals     [12]float64
	PrevMonthlyTotals [12]float64

	CategoryTotals map[string]float64
}

// Aggregate reduces txns into period and per-category totals. Transactions
// with unparseable dates are skipped. The week starts on Sunday.
func Aggregate(txns []api.Transaction, opts Options) Summary {
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}

	categories := opts.Categories
	if categories == nil && opts.Type != "" {
		categories = api.CategoriesForType(opts.Type)
	}

	summary := Summary{CategoryTotals: make(map[string]float64, len(categories))}
	for _, cat := range categories {
		summary.CategoryTotals[cat] = 0
	}

	year := now.Year()
	startOfMonth := time.Date(year, now.Month(), 1, 0, 0, 0, 0, now.Location())
	startOfPrevMonth := startOfMonth.AddDate(0, -1, 0)
	startOfNextMonth := startOfMonth.AddDate(0, 1, 0)
	startOfWeek := startOfDay(now).AddDate(0, 0, -int(now.Weekday()))
	startOfPrevWeek := startOfWeek.AddDate(0, 0, -7)
	startOfNextWeek := startOfWeek.AddDate(0, 0, 7)

	// Category keys are canonical; totals fold legacy casing into them
	canonical := make(map[string]string, len(categories))
	for _, cat := range categories {
		canonical[strings.ToLower(cat)] = cat
	}

	for _, txn := range txns {
		if opts.Type != "" && txn.Type != opts.Type {
			continue
		}

		date, err := txn.Time()
		if err != nil {
			continue
		}
		amount := float64(txn.Amount)

		switch date.Year() {
		case year:
			summary.YearTotal += amount
			summary.MonthlyTotals[date.Month()-1] += amount
		case year - 1:
			summary.PrevYearTotal += amount
			summary.PrevMonthlyTotals[date.Month()-1] += amount
		}

		// Both window pairs are bounded above so future-dated entries
		// (scheduled or recurring) never inflate the current totals
		switch {
		case !date.Before(startOfNextMonth):
		case !date.Before(startOfMonth):
			summary.MonthTotal += amount
		case !date.Before(startOfPrevMonth):
			summary.PrevMonthTotal += amount
		}

		switch {
		case !date.Before(startOfNextWeek):
		case !date.Before(startOfWeek):
			summary.WeekTotal += amount
		case !date.Before(startOfPrevWeek):
			summary.PrevWeekTotal += amount
		}

		if cat, ok := canonical[strings.ToLower(txn.Category)]; ok {
			summary.CategoryTotals[cat] += amount
		}
	}

	return summary
}

// Totals sums the full list into income and expense grand totals
func Totals(txns []api.Transaction) (income, expense float64) {
	for _, txn := range txns {
		switch txn.Type {
		case api.TypeIncome:
			income += float64(txn.Amount)
		case api.TypeExpense:
			expense += float64(txn.Amount)
		}
	}
	return income, expense
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
