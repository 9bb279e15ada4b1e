package export

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neofinance/neofin/pkg/api"
)

var exportTxns = []api.Transaction{
	{
		ID:          "a1b2c3d4",
		Amount:      api.Amount(1500),
		Type:        api.TypeIncome,
		Category:    "Salary",
		Date:        "2025-06-01T09:00:00Z",
		Description: "June salary",
	},
	{
		ID:          "e5f6a7b8",
		Amount:      api.Amount(42.5),
		Type:        api.TypeExpense,
		Category:    "Food",
		Date:        "2025-06-03",
		Description: "Groceries",
	},
}

func parseCSV(t *testing.T, data []byte) [][]string {
	t.Helper()

	rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestWriteCSVHeader(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil, FilterAll))

	rows := parseCSV(t, buf.Bytes())
	require.Len(t, rows, 1)
	assert.Equal(t, []string{"Date", "Time", "Transaction ID", "Description", "Amount", "Type", "Category"}, rows[0])
}

func TestWriteCSVAll(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, exportTxns, FilterAll))

	rows := parseCSV(t, buf.Bytes())
	require.Len(t, rows, 3)

	assert.Equal(t, []string{"2025-06-01", "09:00:00", "a1b2c3d4", "June salary", "1500.00", "income", "Salary"}, rows[1])
	// Date-only timestamps export a midnight clock
	assert.Equal(t, []string{"2025-06-03", "00:00:00", "e5f6a7b8", "Groceries", "42.50", "expense", "Food"}, rows[2])
}

func TestWriteCSVFilters(t *testing.T) {
	tests := []struct {
		filter Filter
		wantID string
	}{
		{FilterIncome, "a1b2c3d4"},
		{FilterExpense, "e5f6a7b8"},
	}

	for _, tt := range tests {
		t.Run(string(tt.filter), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, WriteCSV(&buf, exportTxns, tt.filter))

			rows := parseCSV(t, buf.Bytes())
			require.Len(t, rows, 2)
			assert.Equal(t, tt.wantID, rows[1][2])
		})
	}
}

func TestWriteCSVUnknownFilter(t *testing.T) {
	var buf bytes.Buffer
	err := WriteCSV(&buf, exportTxns, Filter("bogus"))

	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "bogus"))
	assert.Zero(t, buf.Len())
}

func TestValidFilter(t *testing.T) {
	assert.True(t, ValidFilter(FilterAll))
	assert.True(t, ValidFilter(FilterIncome))
	assert.True(t, ValidFilter(FilterExpense))
	assert.False(t, ValidFilter(Filter("weekly")))
	assert.False(t, ValidFilter(Filter("")))
}
