package repositories

import (
	"context"

	"parlad-backend/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type TransactionRepository struct {
	DB *pgxpool.Pool
}

func NewTransactionRepository(db *pgxpool.Pool) *TransactionRepository {
	return &TransactionRepository{DB: db}
}

func (r *TransactionRepository) Create(ctx context.Context, t *models.Transaction) error {
	return r.DB.QueryRow(ctx,
		`INSERT INTO transactions(ledger_id, date, particulars, debit, credit, category, created_by)
         VALUES($1, $2, $3, $4, $5, $6, $7)
         RETURNING id, created_at, updated_at`,
		t.LedgerID, t.Date, t.Particulars, t.Debit, t.Credit, t.Category, t.CreatedBy,
	).Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
}

func (r *TransactionRepository) Get(ctx context.Context, id int) (*models.Transaction, error) {
	row := r.DB.QueryRow(ctx,
		`SELECT id, ledger_id, date, particulars, debit, credit, category, created_by, created_at, updated_at
         FROM transactions WHERE id=$1`, id)

	var t models.Transaction
	err := row.Scan(&t.ID, &t.LedgerID, &t.Date, &t.Particulars, &t.Debit, &t.Credit, &t.Category, &t.CreatedBy, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// ListByLedger fetches every transaction in a ledger. No ORDER BY here:
// the service applies the stable date sort after filtering, so insertion
// order from the database is the tiebreaker for equal dates.
func (r *TransactionRepository) ListByLedger(ctx context.Context, ledgerID int) ([]models.Transaction, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT id, ledger_id, date, particulars, debit, credit, category, created_by, created_at, updated_at
         FROM transactions WHERE ledger_id=$1 ORDER BY id`, ledgerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	txns := []models.Transaction{}
	for rows.Next() {
		var t models.Transaction
		if err := rows.Scan(&t.ID, &t.LedgerID, &t.Date, &t.Particulars, &t.Debit, &t.Credit, &t.Category, &t.CreatedBy, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		txns = append(txns, t)
	}
	return txns, rows.Err()
}

func (r *TransactionRepository) Delete(ctx context.Context, id int) error {
	_, err := r.DB.Exec(ctx, `DELETE FROM transactions WHERE id=$1`, id)
	return err
}
