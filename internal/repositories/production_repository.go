package repositories

import (
	"context"

	"parlad-backend/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ProductionRepository struct {
	DB *pgxpool.Pool
}

func NewProductionRepository(db *pgxpool.Pool) *ProductionRepository {
	return &ProductionRepository{DB: db}
}

func (r *ProductionRepository) Create(ctx context.Context, p *models.ProductionRecord) error {
	return r.DB.QueryRow(ctx,
		`INSERT INTO production(factory_id, product_name, quantity, unit, date, status, notes, created_by)
         VALUES($1, $2, $3, $4, $5, $6, $7, $8)
         RETURNING id, created_at, updated_at`,
		p.FactoryID, p.ProductName, p.Quantity, p.Unit, p.Date, p.Status, p.Notes, p.CreatedBy,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
}

func (r *ProductionRepository) Get(ctx context.Context, id int) (*models.ProductionRecord, error) {
	row := r.DB.QueryRow(ctx,
		`SELECT id, factory_id, product_name, quantity, unit, date, status, notes, created_by, created_at, updated_at
         FROM production WHERE id=$1`, id)

	var p models.ProductionRecord
	err := row.Scan(&p.ID, &p.FactoryID, &p.ProductName, &p.Quantity, &p.Unit, &p.Date, &p.Status, &p.Notes, &p.CreatedBy, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// List fetches all production records. Ordering by date is applied in
// the service layer alongside the other in-memory sorts.
func (r *ProductionRepository) List(ctx context.Context) ([]models.ProductionRecord, error) {
	return r.scanRows(r.DB.Query(ctx,
		`SELECT id, factory_id, product_name, quantity, unit, date, status, notes, created_by, created_at, updated_at
         FROM production`))
}

// ListByFactory fetches records for one factory
func (r *ProductionRepository) ListByFactory(ctx context.Context, factoryID int) ([]models.ProductionRecord, error) {
	return r.scanRows(r.DB.Query(ctx,
		`SELECT id, factory_id, product_name, quantity, unit, date, status, notes, created_by, created_at, updated_at
         FROM production WHERE factory_id=$1`, factoryID))
}

func (r *ProductionRepository) scanRows(rows pgx.Rows, err error) ([]models.ProductionRecord, error) {
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []models.ProductionRecord{}
	for rows.Next() {
		var p models.ProductionRecord
		if err := rows.Scan(&p.ID, &p.FactoryID, &p.ProductName, &p.Quantity, &p.Unit, &p.Date, &p.Status, &p.Notes, &p.CreatedBy, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		records = append(records, p)
	}
	return records, rows.Err()
}

// Update merges non-nil request fields into the stored row
func (r *ProductionRepository) Update(ctx context.Context, id int, req *models.UpdateProductionRequest) (*models.ProductionRecord, error) {
	row := r.DB.QueryRow(ctx,
		`UPDATE production SET
            product_name=COALESCE($1, product_name),
            quantity=COALESCE($2, quantity),
            unit=COALESCE($3, unit),
            date=COALESCE($4, date),
            status=COALESCE($5, status),
            notes=COALESCE($6, notes),
            updated_at=NOW()
         WHERE id=$7
         RETURNING id, factory_id, product_name, quantity, unit, date, status, notes, created_by, created_at, updated_at`,
		req.ProductName, req.Quantity, req.Unit, req.Date, req.Status, req.Notes, id)

	var p models.ProductionRecord
	err := row.Scan(&p.ID, &p.FactoryID, &p.ProductName, &p.Quantity, &p.Unit, &p.Date, &p.Status, &p.Notes, &p.CreatedBy, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProductionRepository) Delete(ctx context.Context, id int) error {
	_, err := r.DB.Exec(ctx, `DELETE FROM production WHERE id=$1`, id)
	return err
}
