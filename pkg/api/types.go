package api

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Auth Request/Response Types
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Access   string `json:"access"`
	Refresh  string `json:"refresh"`
	Username string `json:"username"`
	IsStaff  bool   `json:"is_staff"`
}

type RegisterRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

type RegisterResponse struct {
	Access   string `json:"access"`
	Refresh  string `json:"refresh"`
	Username string `json:"username"`
}

type GuestSignupResponse struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
	User    struct {
		Username string `json:"username"`
	} `json:"user"`
}

type RefreshRequest struct {
	Refresh string `json:"refresh"`
}

type RefreshResponse struct {
	Access string `json:"access"`
}

// User is the identity record returned by /users/me/ and the admin list
type User struct {
	ID         string `json:"id"`
	Email      string `json:"email"`
	Username   string `json:"username"`
	IsStaff    bool   `json:"is_staff"`
	IsGuest    bool   `json:"is_guest"`
	DateJoined string `json:"date_joined,omitempty"`
}

// Transaction Types

type TransactionType string

const (
	TypeIncome  TransactionType = "income"
	TypeExpense TransactionType = "expense"
)

type Recurrence string

const (
	RecurrenceNone    Recurrence = "none"
	RecurrenceDaily   Recurrence = "daily"
	RecurrenceWeekly  Recurrence = "weekly"
	RecurrenceMonthly Recurrence = "monthly"
)

// Category sets are closed per transaction type
var (
	ExpenseCategories = []string{"Food", "Transport", "Utilities", "Shopping", "Entertainment", "Healthcare"}
	IncomeCategories  = []string{"Salary", "Freelance"}
)

// CategoriesForType returns the closed category set for a transaction type
func CategoriesForType(t TransactionType) []string {
	if t == TypeIncome {
		return IncomeCategories
	}
	return ExpenseCategories
}

// ValidCategory reports whether category belongs to the type's closed set
func ValidCategory(t TransactionType, category string) bool {
	for _, c := range CategoriesForType(t) {
		if strings.EqualFold(c, category) {
			return true
		}
	}
	return false
}

// ValidRecurrence reports whether r is a known recurrence value
func ValidRecurrence(r Recurrence) bool {
	switch r {
	case RecurrenceNone, RecurrenceDaily, RecurrenceWeekly, RecurrenceMonthly:
		return true
	}
	return false
}

// Amount is a signed decimal. The API serializes decimals as JSON strings,
// older revisions as bare numbers; both unmarshal.
type Amount float64

func (a *Amount) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" || s == `""` {
		*a = 0
		return nil
	}
	s = strings.Trim(s, `"`)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", s, err)
	}
	*a = Amount(v)
	return nil
}

func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatFloat(float64(a), 'f', 2, 64)), nil
}

func (a Amount) String() string {
	return strconv.FormatFloat(float64(a), 'f', 2, 64)
}

type Transaction struct {
	ID          string          `json:"id"`
	Amount      Amount          `json:"amount"`
	Type        TransactionType `json:"type"`
	Category    string          `json:"category"`
	Date        string          `json:"date"`
	Description string          `json:"description"`
	Recurrence  Recurrence      `json:"recurrence"`
}

// Time parses the transaction timestamp. RFC3339 with a date-only fallback.
func (t Transaction) Time() (time.Time, error) {
	if ts, err := time.Parse(time.RFC3339, t.Date); err == nil {
		return ts, nil
	}
	return time.Parse("2006-01-02", t.Date)
}

// TransactionRequest is the create/update payload
type TransactionRequest struct {
	Amount      Amount          `json:"amount"`
	Type        TransactionType `json:"type"`
	Category    string          `json:"category"`
	Date        string          `json:"date,omitempty"`
	Description string          `json:"description"`
	Recurrence  Recurrence      `json:"recurrence"`
}

// Assistant Types
type ChatRequest struct {
	Message string `json:"message"`
}

type ChatResponse struct {
	Response string `json:"response"`
}

// News Types
type Article struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	Image       string `json:"image"`
	Source      string `json:"source"`
	PublishedAt string `json:"publishedAt"`
}

type NewsResponse struct {
	Articles []Article `json:"articles"`
}

// ErrorResponse is the API's error envelope
type ErrorResponse struct {
	Detail string `json:"detail"`
	Error  string `json:"error"`
}
