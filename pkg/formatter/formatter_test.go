package formatter

import (
	"testing"
)

func TestMessageHelpers(t *testing.T) {
	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Message helper panicked: %v", r)
		}
	}()

	PrintSuccess("✓ Transaction recorded")
	PrintError("Failed to load transactions: %v", "timeout")
	PrintInfo("Authenticating...")
	PrintWarning("Already logged in as %s", "alice")
}

func TestPrintKeyValue(t *testing.T) {
	defer func() {
		if r := recover(); r != nil {
			t.Errorf("PrintKeyValue panicked: %v", r)
		}
	}()

	PrintKeyValue(map[string]interface{}{
		"Income":   "1250.00",
		"Expenses": "300.00",
		"Balance":  "950.00",
	})
}

func TestPrintTable(t *testing.T) {
	defer func() {
		if r := recover(); r != nil {
			t.Errorf("PrintTable panicked: %v", r)
		}
	}()

	headers := []string{"Date", "Type", "Category", "Amount"}
	rows := [][]string{
		{"2025-06-18", "expense", "Food", "42.50"},
		{"2025-06-01", "income", "Salary", "1500.00"},
	}
	PrintTable(headers, rows)
}

func TestPrintTable_Empty(t *testing.T) {
	defer func() {
		if r := recover(); r != nil {
			t.Errorf("PrintTable with empty rows panicked: %v", r)
		}
	}()

	PrintTable([]string{"Date", "Amount"}, [][]string{})
}

func TestPrintTable_Mismatched(t *testing.T) {
	defer func() {
		if r := recover(); r != nil {
			t.Errorf("PrintTable with mismatched columns panicked: %v", r)
		}
	}()

	PrintTable([]string{"Date", "Amount"}, [][]string{
		{"2025-06-18", "42.50", "extra"},
	})
}

func TestPrintJSON(t *testing.T) {
	defer func() {
		if r := recover(); r != nil {
			t.Errorf("PrintJSON panicked: %v", r)
		}
	}()

	PrintJSON(map[string]interface{}{"response": "Spend less on Shopping this month."})
}

func TestPrintObject(t *testing.T) {
	defer func() {
		if r := recover(); r != nil {
			t.Errorf("PrintObject panicked: %v", r)
		}
	}()

	PrintObject(map[string]interface{}{"username": "alice", "is_staff": false}, "User")
}
