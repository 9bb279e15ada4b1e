// Package export writes transaction lists as CSV.
package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/neofinance/neofin/pkg/api"
)

// Filter selects which transactions get exported
type Filter string

const (
	FilterAll     Filter = "all"
	FilterIncome  Filter = "income"
	FilterExpense Filter = "expense"
)

// ValidFilter reports whether f is a known export filter
func ValidFilter(f Filter) bool {
	switch f {
	case FilterAll, FilterIncome, FilterExpense:
		return true
	}
	return false
}

var csvHeaders = []string{"Date", "Time", "Transaction ID", "Description", "Amount", "Type", "Category"}

// WriteCSV writes the filtered transactions to w with a header row
func WriteCSV(w io.Writer, txns []api.Transaction, filter Filter) error {
	if !ValidFilter(filter) {
		return fmt.Errorf("unknown export filter: %s", filter)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeaders); err != nil {
		return err
	}

	for _, txn := range txns {
		if filter != FilterAll && string(txn.Type) != string(filter) {
			continue
		}

		date, clock := txn.Date, ""
		if ts, err := txn.Time(); err == nil {
			date = ts.Format("2006-01-02")
			clock = ts.Format("15:04:05")
		}

		row := []string{
			date,
			clock,
			txn.ID,
			txn.Description,
			txn.Amount.String(),
			string(txn.Type),
			txn.Category,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
