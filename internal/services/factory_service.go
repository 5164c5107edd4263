package services

import (
	"context"
	"errors"

	"parlad-backend/internal/models"
	"parlad-backend/internal/repositories"
	"parlad-backend/internal/validate"
)

type FactoryService struct {
	Repo *repositories.FactoryRepository
}

func NewFactoryService(repo *repositories.FactoryRepository) *FactoryService {
	return &FactoryService{Repo: repo}
}

// CreateFactory registers a production site, owned by its creating manager
func (s *FactoryService) CreateFactory(ctx context.Context, managerID int, req *models.CreateFactoryRequest) (*models.Factory, error) {
	if err := validate.Required("name", req.Name); err != nil {
		return nil, err
	}
	if err := validate.Required("location", req.Location); err != nil {
		return nil, err
	}
	if req.Capacity <= 0 {
		return nil, errors.New("capacity must be positive")
	}

	status := req.Status
	if status == "" {
		status = models.FactoryStatusActive
	}
	if !models.IsValidFactoryStatus(status) {
		return nil, errors.New("invalid status")
	}

	factory := &models.Factory{
		Name:      req.Name,
		Location:  req.Location,
		Capacity:  req.Capacity,
		Status:    status,
		ManagerID: managerID,
	}
	if err := s.Repo.Create(ctx, factory); err != nil {
		return nil, err
	}
	return factory, nil
}

func (s *FactoryService) GetFactory(ctx context.Context, id int) (*models.Factory, error) {
	return s.Repo.Get(ctx, id)
}

func (s *FactoryService) ListFactories(ctx context.Context) ([]models.Factory, error) {
	return s.Repo.List(ctx)
}

// UpdateFactory merges the provided fields into the stored factory
func (s *FactoryService) UpdateFactory(ctx context.Context, id int, req *models.UpdateFactoryRequest) (*models.Factory, error) {
	if req.Name != nil {
		if err := validate.Required("name", *req.Name); err != nil {
			return nil, err
		}
	}
	if req.Capacity != nil && *req.Capacity <= 0 {
		return nil, errors.New("capacity must be positive")
	}
	if req.Status != nil && !models.IsValidFactoryStatus(*req.Status) {
		return nil, errors.New("invalid status")
	}
	return s.Repo.Update(ctx, id, req)
}

func (s *FactoryService) DeleteFactory(ctx context.Context, id int) error {
	return s.Repo.Delete(ctx, id)
}
