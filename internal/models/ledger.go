package models

import "time"

// Ledger is a named book of transactions owned by exactly one user
type Ledger struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedBy   int       `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreateLedgerRequest represents the request body for creating a ledger
type CreateLedgerRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// UpdateLedgerRequest is a partial-field ledger update
type UpdateLedgerRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// DeleteRequest carries the typed confirmation literal required before
// a ledger or transaction delete is issued
type DeleteRequest struct {
	Confirmation string `json:"confirmation"`
}
