package repositories

import (
	"context"

	"parlad-backend/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepository struct {
	DB *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) Create(ctx context.Context, u *models.User) error {
	if u.Role == "" {
		u.Role = models.RoleWorker // Default role
	}
	return r.DB.QueryRow(ctx,
		`INSERT INTO users(email, first_name, last_name, password_hash, role, department, phone)
         VALUES($1, $2, $3, $4, $5, $6, $7)
         RETURNING id, created_at, updated_at`,
		u.Email, u.FirstName, u.LastName, u.PasswordHash, u.Role, u.Department, u.Phone,
	).Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt)
}

func (r *UserRepository) Get(ctx context.Context, id int) (*models.User, error) {
	row := r.DB.QueryRow(ctx,
		`SELECT id, email, first_name, last_name, password_hash, role, department, phone, created_at, updated_at
         FROM users WHERE id=$1`, id)

	var user models.User
	err := row.Scan(&user.ID, &user.Email, &user.FirstName, &user.LastName, &user.PasswordHash,
		&user.Role, &user.Department, &user.Phone, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	row := r.DB.QueryRow(ctx,
		`SELECT id, email, first_name, last_name, password_hash, role, department, phone, created_at, updated_at
         FROM users WHERE email=$1`, email)

	var user models.User
	err := row.Scan(&user.ID, &user.Email, &user.FirstName, &user.LastName, &user.PasswordHash,
		&user.Role, &user.Department, &user.Phone, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// List returns all users, newest first
func (r *UserRepository) List(ctx context.Context) ([]*models.User, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT id, email, first_name, last_name, role, department, phone, created_at, updated_at
         FROM users ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		var user models.User
		err := rows.Scan(&user.ID, &user.Email, &user.FirstName, &user.LastName,
			&user.Role, &user.Department, &user.Phone, &user.CreatedAt, &user.UpdatedAt)
		if err != nil {
			return nil, err
		}
		users = append(users, &user)
	}
	return users, rows.Err()
}

// UpdateProfile applies a partial-field merge of the editable profile
// fields. Absent (nil) fields keep their stored value; updated_at is
// always refreshed.
func (r *UserRepository) UpdateProfile(ctx context.Context, id int, req *models.UpdateProfileRequest) (*models.User, error) {
	row := r.DB.QueryRow(ctx,
		`UPDATE users SET
            first_name = COALESCE($1, first_name),
            last_name  = COALESCE($2, last_name),
            department = COALESCE($3, department),
            phone      = COALESCE($4, phone),
            updated_at = CURRENT_TIMESTAMP
         WHERE id=$5
         RETURNING id, email, first_name, last_name, role, department, phone, created_at, updated_at`,
		req.FirstName, req.LastName, req.Department, req.Phone, id)

	var user models.User
	err := row.Scan(&user.ID, &user.Email, &user.FirstName, &user.LastName,
		&user.Role, &user.Department, &user.Phone, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdatePassword replaces the stored password hash
func (r *UserRepository) UpdatePassword(ctx context.Context, id int, passwordHash string) error {
	_, err := r.DB.Exec(ctx,
		`UPDATE users SET password_hash=$1, updated_at=CURRENT_TIMESTAMP WHERE id=$2`,
		passwordHash, id)
	return err
}

// UpdateRole changes a user's role (admin operation)
func (r *UserRepository) UpdateRole(ctx context.Context, id int, role string) error {
	_, err := r.DB.Exec(ctx,
		`UPDATE users SET role=$1, updated_at=CURRENT_TIMESTAMP WHERE id=$2`,
		role, id)
	return err
}

// Delete deletes a user
func (r *UserRepository) Delete(ctx context.Context, id int) error {
	_, err := r.DB.Exec(ctx, `DELETE FROM users WHERE id=$1`, id)
	return err
}
