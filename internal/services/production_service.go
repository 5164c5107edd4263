package services

import (
	"context"
	"errors"
	"sort"

	"parlad-backend/internal/models"
	"parlad-backend/internal/repositories"
	"parlad-backend/internal/validate"
)

type ProductionService struct {
	Repo        *repositories.ProductionRepository
	FactoryRepo *repositories.FactoryRepository
}

func NewProductionService(repo *repositories.ProductionRepository, factoryRepo *repositories.FactoryRepository) *ProductionService {
	return &ProductionService{Repo: repo, FactoryRepo: factoryRepo}
}

// CreateRecord registers a production record against an existing factory
func (s *ProductionService) CreateRecord(ctx context.Context, userID int, req *models.CreateProductionRequest) (*models.ProductionRecord, error) {
	if err := validate.Required("product_name", req.ProductName); err != nil {
		return nil, err
	}
	if err := validate.Date(req.Date); err != nil {
		return nil, err
	}
	if req.Quantity <= 0 {
		return nil, errors.New("quantity must be positive")
	}

	status := req.Status
	if status == "" {
		status = models.ProductionStatusCompleted
	}
	if !models.IsValidProductionStatus(status) {
		return nil, errors.New("invalid status")
	}

	// The factory must exist at creation time even though the reference
	// is not enforced after that
	if _, err := s.FactoryRepo.Get(ctx, req.FactoryID); err != nil {
		return nil, errors.New("factory not found")
	}

	record := &models.ProductionRecord{
		FactoryID:   req.FactoryID,
		ProductName: req.ProductName,
		Quantity:    req.Quantity,
		Unit:        req.Unit,
		Date:        req.Date,
		Status:      status,
		Notes:       req.Notes,
		CreatedBy:   userID,
	}
	if err := s.Repo.Create(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

func (s *ProductionService) GetRecord(ctx context.Context, id int) (*models.ProductionRecord, error) {
	return s.Repo.Get(ctx, id)
}

// ListRecords returns all production records, newest date first
func (s *ProductionService) ListRecords(ctx context.Context) ([]models.ProductionRecord, error) {
	records, err := s.Repo.List(ctx)
	if err != nil {
		return nil, err
	}
	sortProductionByDateDesc(records)
	return records, nil
}

// ListByFactory returns one factory's records, newest date first
func (s *ProductionService) ListByFactory(ctx context.Context, factoryID int) ([]models.ProductionRecord, error) {
	records, err := s.Repo.ListByFactory(ctx, factoryID)
	if err != nil {
		return nil, err
	}
	sortProductionByDateDesc(records)
	return records, nil
}

// UpdateRecord merges the provided fields into the stored record
func (s *ProductionService) UpdateRecord(ctx context.Context, id int, req *models.UpdateProductionRequest) (*models.ProductionRecord, error) {
	if req.Date != nil {
		if err := validate.Date(*req.Date); err != nil {
			return nil, err
		}
	}
	if req.Quantity != nil && *req.Quantity <= 0 {
		return nil, errors.New("quantity must be positive")
	}
	if req.Status != nil && !models.IsValidProductionStatus(*req.Status) {
		return nil, errors.New("invalid status")
	}
	return s.Repo.Update(ctx, id, req)
}

func (s *ProductionService) DeleteRecord(ctx context.Context, id int) error {
	return s.Repo.Delete(ctx, id)
}

// sortProductionByDateDesc orders records newest first. Dates are
// YYYY-MM-DD strings, so string comparison is calendar comparison.
func sortProductionByDateDesc(records []models.ProductionRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Date > records[j].Date
	})
}
