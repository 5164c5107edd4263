package models

import "time"

// Transaction categories
const (
	CategoryPersonal = "Personal"
	CategoryBusiness = "Business"
	CategoryExpense  = "Expense"
	CategoryIncome   = "Income"

	// CategoryAll is the sentinel that disables category filtering
	CategoryAll = "all"
)

// IsValidCategory reports whether category is one of the known categories
func IsValidCategory(category string) bool {
	return category == CategoryPersonal || category == CategoryBusiness ||
		category == CategoryExpense || category == CategoryIncome
}

// Transaction is a single debit/credit row in a ledger. Dates are stored
// as YYYY-MM-DD strings so lexical comparison matches calendar order.
type Transaction struct {
	ID          int       `json:"id"`
	LedgerID    int       `json:"ledger_id"`
	Date        string    `json:"date"` // YYYY-MM-DD
	Particulars string    `json:"particulars"`
	Debit       float64   `json:"debit"`
	Credit      float64   `json:"credit"`
	Category    string    `json:"category"` // Personal, Business, Expense or Income
	CreatedBy   int       `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreateTransactionRequest represents the request body for adding a transaction
type CreateTransactionRequest struct {
	Date        string  `json:"date"`
	Particulars string  `json:"particulars"`
	Debit       float64 `json:"debit"`
	Credit      float64 `json:"credit"`
	Category    string  `json:"category"`
}

// TransactionFilter selects a subset of a ledger's transactions. All
// active criteria must match (logical AND). Empty fields disable their
// constraint; Category "all" matches every category.
type TransactionFilter struct {
	Search    string `json:"search"`
	Category  string `json:"category"`
	StartDate string `json:"start_date"` // inclusive, YYYY-MM-DD
	EndDate   string `json:"end_date"`   // inclusive, YYYY-MM-DD
}

// TransactionSummary holds the aggregate figures for a transaction set
type TransactionSummary struct {
	TotalDebit  float64 `json:"total_debit"`
	TotalCredit float64 `json:"total_credit"`
	Balance     float64 `json:"balance"` // TotalCredit - TotalDebit
}

// TransactionPage is the list response: the filtered rows plus their summary
type TransactionPage struct {
	Transactions []Transaction      `json:"transactions"`
	Summary      TransactionSummary `json:"summary"`
}
