package service

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/neofinance/neofin/pkg/api"
	"github.com/neofinance/neofin/pkg/errors"
	"github.com/neofinance/neofin/pkg/export"
	"github.com/neofinance/neofin/pkg/formatter"
	"github.com/neofinance/neofin/pkg/prompter"
	"github.com/neofinance/neofin/pkg/session"
)

type TransactionService struct {
	sessions *session.Manager
}

// NewTransactionService creates a new transaction service
func NewTransactionService(sessions *session.Manager) *TransactionService {
	return &TransactionService{sessions: sessions}
}

// List fetches and displays transactions, sorted by date or amount
func (s *TransactionService) List(sortBy, order string) error {
	transactions, err := api.GetTransactions()
	if err != nil {
		formatter.PrintError("Failed to load transactions: %v", err)
		return err
	}

	if len(transactions) == 0 {
		fmt.Println("No transactions yet.")
		return nil
	}

	sortTransactions(transactions, sortBy, order)

	rows := make([][]string, 0, len(transactions))
	for _, txn := range transactions {
		date := txn.Date
		if ts, err := txn.Time(); err == nil {
			date = ts.Format("2006-01-02 15:04")
		}
		rows = append(rows, []string{
			date,
			shortID(txn.ID),
			string(txn.Type),
			txn.Category,
			txn.Amount.String(),
			string(txn.Recurrence),
			txn.Description,
		})
	}

	formatter.PrintTable(
		[]string{"Date", "ID", "Type", "Category", "Amount", "Recurrence", "Description"},
		rows,
	)
	return nil
}

// Add validates and records a new transaction
func (s *TransactionService) Add(req *api.TransactionRequest) error {
	if err := validateTransaction(req); err != nil {
		formatter.PrintError("%v", err)
		return err
	}

	created, err := api.CreateTransaction(req)
	if err != nil {
		formatter.PrintError("Failed to add transaction: %v", err)
		return err
	}

	formatter.PrintSuccess("✓ Transaction recorded (%s %s, %s)", created.Amount.String(), created.Type, created.Category)
	return nil
}

// Update validates and applies changes to an existing transaction
func (s *TransactionService) Update(id string, req *api.TransactionRequest) error {
	if err := validateTransaction(req); err != nil {
		formatter.PrintError("%v", err)
		return err
	}

	updated, err := api.UpdateTransaction(id, req)
	if err != nil {
		if api.IsNotFound(err) {
			formatter.PrintError("Transaction not found: %s", id)
			return err
		}
		formatter.PrintError("Failed to update transaction: %v", err)
		return err
	}

	formatter.PrintSuccess("✓ Transaction %s updated", shortID(updated.ID))
	return nil
}

// Delete removes a transaction after confirmation
func (s *TransactionService) Delete(id string, skipConfirm bool) error {
	if !skipConfirm {
		confirm, err := prompter.PromptConfirm(fmt.Sprintf("Delete transaction %s?", shortID(id)))
		if err != nil {
			return err
		}
		if !confirm {
			return nil
		}
	}

	if err := api.DeleteTransaction(id); err != nil {
		if api.IsNotFound(err) {
			formatter.PrintError("Transaction not found: %s", id)
			return err
		}
		formatter.PrintError("Failed to delete transaction: %v", err)
		return err
	}

	formatter.PrintSuccess("✓ Transaction deleted")
	return nil
}

// Export writes transactions as CSV to path, or stdout when path is empty
func (s *TransactionService) Export(path string, filter export.Filter) error {
	if !export.ValidFilter(filter) {
		return errors.ValidationError("filter", "must be all, income or expense")
	}

	transactions, err := api.GetTransactions()
	if err != nil {
		formatter.PrintError("Failed to load transactions: %v", err)
		return err
	}

	if path == "" {
		return export.WriteCSV(os.Stdout, transactions, filter)
	}

	f, err := os.Create(path)
	if err != nil {
		formatter.PrintError("Failed to create %s: %v", path, err)
		return err
	}
	defer f.Close()

	if err := export.WriteCSV(f, transactions, filter); err != nil {
		formatter.PrintError("Failed to write CSV: %v", err)
		return err
	}

	formatter.PrintSuccess("✓ Exported %s transactions to %s", filter, path)
	return nil
}

func validateTransaction(req *api.TransactionRequest) error {
	if req.Amount == 0 {
		return errors.ValidationError("amount", "is required")
	}
	if req.Type != api.TypeIncome && req.Type != api.TypeExpense {
		return errors.ValidationError("type", "must be income or expense")
	}
	if req.Category == "" {
		return errors.ValidationError("category", "is required")
	}
	if !api.ValidCategory(req.Type, req.Category) {
		return errors.ValidationError("category",
			fmt.Sprintf("%q is not a %s category (choose from: %s)",
				req.Category, req.Type, strings.Join(api.CategoriesForType(req.Type), ", ")))
	}
	if req.Recurrence == "" {
		req.Recurrence = api.RecurrenceNone
	}
	if !api.ValidRecurrence(req.Recurrence) {
		return errors.ValidationError("recurrence", "must be none, daily, weekly or monthly")
	}
	return nil
}

func sortTransactions(txns []api.Transaction, sortBy, order string) {
	ascending := order == "asc"

	switch sortBy {
	case "amount":
		sort.SliceStable(txns, func(i, j int) bool {
			if ascending {
				return txns[i].Amount < txns[j].Amount
			}
			return txns[i].Amount > txns[j].Amount
		})
	default: // date
		sort.SliceStable(txns, func(i, j int) bool {
			ti, erri := txns[i].Time()
			tj, errj := txns[j].Time()
			if erri != nil || errj != nil {
				return false
			}
			if ascending {
				return ti.Before(tj)
			}
			return ti.After(tj)
		})
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
