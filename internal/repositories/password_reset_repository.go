package repositories

import (
	"context"
	"time"

	"parlad-backend/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PasswordResetRepository struct {
	DB *pgxpool.Pool
}

func NewPasswordResetRepository(db *pgxpool.Pool) *PasswordResetRepository {
	return &PasswordResetRepository{DB: db}
}

// Create records an issued reset token (stored hashed)
func (r *PasswordResetRepository) Create(ctx context.Context, t *models.PasswordResetToken) error {
	return r.DB.QueryRow(ctx,
		`INSERT INTO password_reset_tokens(user_id, token_hash, expires_at)
         VALUES($1, $2, $3)
         RETURNING id, created_at`,
		t.UserID, t.TokenHash, t.ExpiresAt,
	).Scan(&t.ID, &t.CreatedAt)
}

// GetByHash returns the token record for a hash, used or not
func (r *PasswordResetRepository) GetByHash(ctx context.Context, tokenHash string) (*models.PasswordResetToken, error) {
	row := r.DB.QueryRow(ctx,
		`SELECT id, user_id, token_hash, expires_at, used_at, created_at
         FROM password_reset_tokens WHERE token_hash=$1`, tokenHash)

	var t models.PasswordResetToken
	err := row.Scan(&t.ID, &t.UserID, &t.TokenHash, &t.ExpiresAt, &t.UsedAt, &t.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// MarkUsed stamps the token so it cannot be replayed
func (r *PasswordResetRepository) MarkUsed(ctx context.Context, id int, usedAt time.Time) error {
	_, err := r.DB.Exec(ctx,
		`UPDATE password_reset_tokens SET used_at=$1 WHERE id=$2`, usedAt, id)
	return err
}
