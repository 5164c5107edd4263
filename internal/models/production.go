package models

import "time"

// Production record statuses
const (
	ProductionStatusCompleted  = "completed"
	ProductionStatusInProgress = "in_progress"
	ProductionStatusPlanned    = "planned"
)

// IsValidProductionStatus reports whether status is one of the known statuses
func IsValidProductionStatus(status string) bool {
	return status == ProductionStatusCompleted || status == ProductionStatusInProgress || status == ProductionStatusPlanned
}

// ProductionRecord tracks output produced at a factory. The factory
// reference is a denormalized foreign key with no cascade semantics.
type ProductionRecord struct {
	ID          int       `json:"id"`
	FactoryID   int       `json:"factory_id"`
	ProductName string    `json:"product_name"`
	Quantity    int       `json:"quantity"`
	Unit        string    `json:"unit"`
	Date        string    `json:"date"` // YYYY-MM-DD
	Status      string    `json:"status"` // completed, in_progress or planned
	Notes       string    `json:"notes,omitempty"`
	CreatedBy   int       `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreateProductionRequest represents the request body for creating a production record
type CreateProductionRequest struct {
	FactoryID   int    `json:"factory_id"`
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
	Unit        string `json:"unit"`
	Date        string `json:"date"`
	Status      string `json:"status"`
	Notes       string `json:"notes"`
}

// UpdateProductionRequest is a partial-field production record update
type UpdateProductionRequest struct {
	ProductName *string `json:"product_name"`
	Quantity    *int    `json:"quantity"`
	Unit        *string `json:"unit"`
	Date        *string `json:"date"`
	Status      *string `json:"status"`
	Notes       *string `json:"notes"`
}
