package services

import (
	"testing"

	"parlad-backend/internal/models"
)

func TestSortProductionByDateDesc(t *testing.T) {
	records := []models.ProductionRecord{
		{ID: 1, Date: "2024-03-01"},
		{ID: 2, Date: "2024-03-15"},
		{ID: 3, Date: "2024-03-01"},
	}

	sortProductionByDateDesc(records)

	wantIDs := []int{2, 1, 3}
	for i, want := range wantIDs {
		if records[i].ID != want {
			t.Fatalf("position %d has ID %d, want %d", i, records[i].ID, want)
		}
	}
}
