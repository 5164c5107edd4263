package repositories

import (
	"context"

	"parlad-backend/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type FactoryRepository struct {
	DB *pgxpool.Pool
}

func NewFactoryRepository(db *pgxpool.Pool) *FactoryRepository {
	return &FactoryRepository{DB: db}
}

func (r *FactoryRepository) Create(ctx context.Context, f *models.Factory) error {
	return r.DB.QueryRow(ctx,
		`INSERT INTO factories(name, location, capacity, status, manager_id)
         VALUES($1, $2, $3, $4, $5)
         RETURNING id, created_at, updated_at`,
		f.Name, f.Location, f.Capacity, f.Status, f.ManagerID,
	).Scan(&f.ID, &f.CreatedAt, &f.UpdatedAt)
}

func (r *FactoryRepository) Get(ctx context.Context, id int) (*models.Factory, error) {
	row := r.DB.QueryRow(ctx,
		`SELECT id, name, location, capacity, status, manager_id, created_at, updated_at
         FROM factories WHERE id=$1`, id)

	var f models.Factory
	err := row.Scan(&f.ID, &f.Name, &f.Location, &f.Capacity, &f.Status, &f.ManagerID, &f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *FactoryRepository) List(ctx context.Context) ([]models.Factory, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT id, name, location, capacity, status, manager_id, created_at, updated_at
         FROM factories ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	factories := []models.Factory{}
	for rows.Next() {
		var f models.Factory
		if err := rows.Scan(&f.ID, &f.Name, &f.Location, &f.Capacity, &f.Status, &f.ManagerID, &f.CreatedAt, &f.UpdatedAt); err != nil {
			return nil, err
		}
		factories = append(factories, f)
	}
	return factories, rows.Err()
}

// Update merges non-nil request fields into the stored row
func (r *FactoryRepository) Update(ctx context.Context, id int, req *models.UpdateFactoryRequest) (*models.Factory, error) {
	row := r.DB.QueryRow(ctx,
		`UPDATE factories SET
            name=COALESCE($1, name),
            location=COALESCE($2, location),
            capacity=COALESCE($3, capacity),
            status=COALESCE($4, status),
            updated_at=NOW()
         WHERE id=$5
         RETURNING id, name, location, capacity, status, manager_id, created_at, updated_at`,
		req.Name, req.Location, req.Capacity, req.Status, id)

	var f models.Factory
	err := row.Scan(&f.ID, &f.Name, &f.Location, &f.Capacity, &f.Status, &f.ManagerID, &f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *FactoryRepository) Delete(ctx context.Context, id int) error {
	_, err := r.DB.Exec(ctx, `DELETE FROM factories WHERE id=$1`, id)
	return err
}
