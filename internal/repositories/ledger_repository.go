package repositories

import (
	"context"

	"parlad-backend/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type LedgerRepository struct {
	DB *pgxpool.Pool
}

func NewLedgerRepository(db *pgxpool.Pool) *LedgerRepository {
	return &LedgerRepository{DB: db}
}

func (r *LedgerRepository) Create(ctx context.Context, l *models.Ledger) error {
	return r.DB.QueryRow(ctx,
		`INSERT INTO ledgers(name, description, created_by)
         VALUES($1, $2, $3)
         RETURNING id, created_at, updated_at`,
		l.Name, l.Description, l.CreatedBy,
	).Scan(&l.ID, &l.CreatedAt, &l.UpdatedAt)
}

func (r *LedgerRepository) Get(ctx context.Context, id int) (*models.Ledger, error) {
	row := r.DB.QueryRow(ctx,
		`SELECT id, name, description, created_by, created_at, updated_at
         FROM ledgers WHERE id=$1`, id)

	var l models.Ledger
	err := row.Scan(&l.ID, &l.Name, &l.Description, &l.CreatedBy, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

// ListByOwner fetches every ledger created by one user. Ordered by id
// only; the service applies the created-at sort so insertion order is
// the tiebreak.
func (r *LedgerRepository) ListByOwner(ctx context.Context, userID int) ([]models.Ledger, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT id, name, description, created_by, created_at, updated_at
         FROM ledgers WHERE created_by=$1 ORDER BY id`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ledgers := []models.Ledger{}
	for rows.Next() {
		var l models.Ledger
		if err := rows.Scan(&l.ID, &l.Name, &l.Description, &l.CreatedBy, &l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, err
		}
		ledgers = append(ledgers, l)
	}
	return ledgers, rows.Err()
}

// Update merges non-nil request fields into the stored row
func (r *LedgerRepository) Update(ctx context.Context, id int, req *models.UpdateLedgerRequest) (*models.Ledger, error) {
	row := r.DB.QueryRow(ctx,
		`UPDATE ledgers SET
            name=COALESCE($1, name),
            description=COALESCE($2, description),
            updated_at=NOW()
         WHERE id=$3
         RETURNING id, name, description, created_by, created_at, updated_at`,
		req.Name, req.Description, id)

	var l models.Ledger
	err := row.Scan(&l.ID, &l.Name, &l.Description, &l.CreatedBy, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

// Delete removes a ledger. Its transactions go with it via the cascade
// on transactions.ledger_id.
func (r *LedgerRepository) Delete(ctx context.Context, id int) error {
	_, err := r.DB.Exec(ctx, `DELETE FROM ledgers WHERE id=$1`, id)
	return err
}
