package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/neofinance/neofin/pkg/api"
)

// Anchored mid-month on a Wednesday so every window has room on both sides
var testNow = time.Date(2025, time.June, 18, 12, 0, 0, 0, time.UTC)

func expense(date string, amount float64, category string) api.Transaction {
	return api.Transaction{
		Amount:   api.Amount(amount),
		Type:     api.TypeExpense,
		Category: category,
		Date:     date,
	}
}

func income(date string, amount float64, category string) api.Transaction {
	return api.Transaction{
		Amount:   api.Amount(amount),
		Type:     api.TypeIncome,
		Category: category,
		Date:     date,
	}
}

func TestAggregatePeriodWindows(t *testing.T) {
	txns := []api.Transaction{
		expense("2025-06-18", 10, "Food"),      // today: week, month, year
		expense("2025-06-16", 20, "Transport"), // Monday this week
		expense("2025-06-10", 40, "Food"),      // this month, previous week
		expense("2025-05-20", 80, "Food"),      // previous month
		expense("2025-01-05", 160, "Shopping"), // this year only
		expense("2024-06-18", 320, "Food"),     // previous year
		expense("2023-12-31", 640, "Food"),     // outside both years
	}

	sum := Aggregate(txns, Options{Type: api.TypeExpense, Now: testNow})

	assert.Equal(t, 310.0, sum.YearTotal)
	assert.Equal(t, 70.0, sum.MonthTotal)
	assert.Equal(t, 30.0, sum.WeekTotal)

	assert.Equal(t, 320.0, sum.PrevYearTotal)
	assert.Equal(t, 80.0, sum.PrevMonthTotal)
	assert.Equal(t, 40.0, sum.PrevWeekTotal)
}

func TestAggregateMonthlyTotals(t *testing.T) {
	txns := []api.Transaction{
		expense("2025-01-10", 5, "Food"),
		expense("2025-01-20", 10, "Food"),
		expense("2025-06-01", 20, "Food"),
		expense("2024-03-15", 40, "Food"),
	}

	sum := Aggregate(txns, Options{Type: api.TypeExpense, Now: testNow})

	assert.Equal(t, 15.0, sum.MonthlyTotals[0])
	assert.Equal(t, 20.0, sum.MonthlyTotals[5])
	assert.Equal(t, 40.0, sum.PrevMonthlyTotals[2])
	assert.Zero(t, sum.MonthlyTotals[2])
}

func TestAggregateCategoryTotals(t *testing.T) {
	txns := []api.Transaction{
		expense("2025-06-01", 10, "Food"),
		expense("2025-06-02", 20, "Food"),
		expense("2025-06-03", 30, "Transport"),
		expense("2025-06-04", 40, "NotACategory"),
	}

	sum := Aggregate(txns, Options{Type: api.TypeExpense, Now: testNow})

	assert.Equal(t, 30.0, sum.CategoryTotals["Food"])
	assert.Equal(t, 30.0, sum.CategoryTotals["Transport"])
	assert.NotContains(t, sum.CategoryTotals, "NotACategory")

	// Every expense category is keyed even with no transactions
	for _, cat := range api.ExpenseCategories {
		assert.Contains(t, sum.CategoryTotals, cat)
	}
}

func TestAggregateFiltersByType(t *testing.T) {
	txns := []api.Transaction{
		expense("2025-06-01", 10, "Food"),
		income("2025-06-01", 1000, "Salary"),
	}

	sum := Aggregate(txns, Options{Type: api.TypeIncome, Now: testNow})

	assert.Equal(t, 1000.0, sum.YearTotal)
	assert.Equal(t, 1000.0, sum.CategoryTotals["Salary"])
	assert.NotContains(t, sum.CategoryTotals, "Food")
}

func TestAggregateSkipsBadDates(t *testing.T) {
	txns := []api.Transaction{
		expense("2025-06-01", 10, "Food"),
		expense("not-a-date", 999, "Food"),
		expense("", 999, "Food"),
	}

	sum := Aggregate(txns, Options{Type: api.TypeExpense, Now: testNow})

	assert.Equal(t, 10.0, sum.YearTotal)
	assert.Equal(t, 10.0, sum.CategoryTotals["Food"])
}

func TestAggregateWeekStartsSunday(t *testing.T) {
	// June 15 2025 is a Sunday, June 14 a Saturday
	txns := []api.Transaction{
		expense("2025-06-15", 10, "Food"),
		expense("2025-06-14", 20, "Food"),
	}

	sum := Aggregate(txns, Options{Type: api.TypeExpense, Now: testNow})

	assert.Equal(t, 10.0, sum.WeekTotal)
	assert.Equal(t, 20.0, sum.PrevWeekTotal)
}

func TestAggregateExcludesFutureDates(t *testing.T) {
	txns := []api.Transaction{
		expense("2026-03-01", 100, "Food"), // scheduled next year
		expense("2025-07-02", 50, "Food"),  // next month
		expense("2025-06-22", 25, "Food"),  // next week (Sunday after testNow)
	}

	sum := Aggregate(txns, Options{Type: api.TypeExpense, Now: testNow})

	// Later this month still counts toward the month; nothing else does
	assert.Equal(t, 25.0, sum.MonthTotal)
	assert.Zero(t, sum.WeekTotal)
	assert.Zero(t, sum.PrevMonthTotal)
	assert.Zero(t, sum.PrevWeekTotal)

	// Calendar-year breakdowns still count same-year entries
	assert.Equal(t, 75.0, sum.YearTotal)
	assert.Equal(t, 25.0, sum.MonthlyTotals[5])
	assert.Equal(t, 50.0, sum.MonthlyTotals[6])
}

func TestAggregateCategoryCaseFolding(t *testing.T) {
	txns := []api.Transaction{
		expense("2025-06-01", 10, "Healthcare"),
		expense("2025-06-02", 20, "HealthCare"), // legacy casing
		expense("2025-06-03", 40, "HEALTHCARE"),
	}

	sum := Aggregate(txns, Options{Type: api.TypeExpense, Now: testNow})

	assert.Equal(t, 70.0, sum.CategoryTotals["Healthcare"])
	assert.NotContains(t, sum.CategoryTotals, "HealthCare")
}

func TestAggregateRFC3339Dates(t *testing.T) {
	txns := []api.Transaction{
		expense("2025-06-18T09:30:00Z", 10, "Food"),
	}

	sum := Aggregate(txns, Options{Type: api.TypeExpense, Now: testNow})

	assert.Equal(t, 10.0, sum.WeekTotal)
	assert.Equal(t, 10.0, sum.MonthTotal)
}

func TestTotals(t *testing.T) {
	txns := []api.Transaction{
		income("2025-06-01", 1000, "Salary"),
		income("2025-06-15", 250, "Freelance"),
		expense("2025-06-02", 300, "Food"),
	}

	in, out := Totals(txns)
	assert.Equal(t, 1250.0, in)
	assert.Equal(t, 300.0, out)
}

func TestTotalsEmpty(t *testing.T) {
	in, out := Totals(nil)
	assert.Zero(t, in)
	assert.Zero(t, out)
}
