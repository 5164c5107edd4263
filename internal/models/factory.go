package models

import "time"

// Factory statuses
const (
	FactoryStatusActive      = "active"
	FactoryStatusInactive    = "inactive"
	FactoryStatusMaintenance = "maintenance"
)

// IsValidFactoryStatus reports whether status is one of the known statuses
func IsValidFactoryStatus(status string) bool {
	return status == FactoryStatusActive || status == FactoryStatusInactive || status == FactoryStatusMaintenance
}

// Factory is a boutique/production site record
type Factory struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Location  string    `json:"location"`
	Capacity  int       `json:"capacity"`
	Status    string    `json:"status"` // active, inactive or maintenance
	ManagerID int       `json:"manager_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateFactoryRequest represents the request body for creating a factory
type CreateFactoryRequest struct {
	Name     string `json:"name"`
	Location string `json:"location"`
	Capacity int    `json:"capacity"`
	Status   string `json:"status"`
}

// UpdateFactoryRequest is a partial-field factory update
type UpdateFactoryRequest struct {
	Name     *string `json:"name"`
	Location *string `json:"location"`
	Capacity *int    `json:"capacity"`
	Status   *string `json:"status"`
}
