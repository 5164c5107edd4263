package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"log"
	"time"

	"parlad-backend/internal/auth"
	"parlad-backend/internal/cache"
	"parlad-backend/internal/mail"
	"parlad-backend/internal/models"
	"parlad-backend/internal/repositories"
	"parlad-backend/internal/timeutil"
	"parlad-backend/internal/validate"
)

type UserService struct {
	Repo       *repositories.UserRepository
	ResetRepo  *repositories.PasswordResetRepository
	JWTManager *auth.JWTManager
	Mailer     mail.Provider
}

func NewUserService(repo *repositories.UserRepository, resetRepo *repositories.PasswordResetRepository, jwtManager *auth.JWTManager, mailer mail.Provider) *UserService {
	return &UserService{
		Repo:       repo,
		ResetRepo:  resetRepo,
		JWTManager: jwtManager,
		Mailer:     mailer,
	}
}

// Signup creates a new user with hashed password
func (s *UserService) Signup(ctx context.Context, req *models.SignupRequest) (*models.AuthResponse, error) {
	if err := validate.Email(req.Email); err != nil {
		return nil, err
	}
	if req.Password == "" || req.FirstName == "" || req.LastName == "" {
		return nil, errors.New("first name, last name, email, and password are required")
	}
	if len(req.Password) < 8 {
		return nil, errors.New("password must be at least 8 characters")
	}
	if err := validate.Phone(req.Phone); err != nil {
		return nil, err
	}
	if req.Role != "" && !models.IsValidRole(req.Role) {
		return nil, errors.New("invalid role")
	}

	// Check if user already exists
	existingUser, _ := s.Repo.GetByEmail(ctx, req.Email)
	if existingUser != nil {
		return nil, errors.New("user with this email already exists")
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:        req.Email,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		PasswordHash: hashedPassword,
		Role:         req.Role,
		Department:   req.Department,
		Phone:        req.Phone,
	}

	if err := s.Repo.Create(ctx, user); err != nil {
		return nil, err
	}

	token, err := s.JWTManager.GenerateToken(user)
	if err != nil {
		return nil, err
	}

	return &models.AuthResponse{
		Token: token,
		User:  user,
	}, nil
}

// Login authenticates a user and returns a JWT token
func (s *UserService) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	if req.Email == "" || req.Password == "" {
		return nil, errors.New("email and password are required")
	}

	// Fast path: the bcrypt compare is the expensive part, skip it for
	// recently verified credentials
	if userID, ok := cache.GetCachedAuth(ctx, req.Email, req.Password); ok {
		user, err := s.Repo.Get(ctx, userID)
		if err == nil {
			return s.issueToken(user)
		}
	}

	user, err := s.Repo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, errors.New("invalid email or password")
	}

	if !auth.VerifyPassword(user.PasswordHash, req.Password) {
		return nil, errors.New("invalid email or password")
	}

	cache.CacheAuth(ctx, req.Email, req.Password, user.ID)

	return s.issueToken(user)
}

func (s *UserService) issueToken(user *models.User) (*models.AuthResponse, error) {
	token, err := s.JWTManager.GenerateToken(user)
	if err != nil {
		return nil, err
	}
	return &models.AuthResponse{Token: token, User: user}, nil
}

// Logout revokes the presented token until its natural expiry
func (s *UserService) Logout(ctx context.Context, token string) {
	claims, err := s.JWTManager.ValidateToken(token)
	if err != nil {
		// Already expired or malformed, nothing to revoke
		return
	}
	ttl := time.Until(claims.ExpiresAt.Time)
	cache.DenylistToken(ctx, token, ttl)
	cache.InvalidateAuth(ctx, claims.Email)
}

// ForgotPassword issues a reset token and mails it. The response never
// reveals whether the email exists.
func (s *UserService) ForgotPassword(ctx context.Context, req *models.ForgotPasswordRequest) error {
	if err := validate.Email(req.Email); err != nil {
		return err
	}

	user, err := s.Repo.GetByEmail(ctx, req.Email)
	if err != nil {
		// Unknown email gets the same outward behaviour as a known one
		log.Printf("[Auth] password reset requested for unknown email")
		return nil
	}

	token, err := s.JWTManager.GenerateResetToken(user)
	if err != nil {
		return err
	}

	record := &models.PasswordResetToken{
		UserID:    user.ID,
		TokenHash: hashToken(token),
		ExpiresAt: timeutil.Now().Add(30 * time.Minute),
	}
	if err := s.ResetRepo.Create(ctx, record); err != nil {
		return err
	}

	if err := s.Mailer.SendPasswordReset(user.Email, token); err != nil {
		log.Printf("[Auth] reset mail failed: %v", err)
		return errors.New("could not send reset mail")
	}
	return nil
}

// ResetPassword completes a reset: the token must be valid, unexpired,
// and never used before.
func (s *UserService) ResetPassword(ctx context.Context, req *models.ResetPasswordRequest) error {
	if req.Token == "" {
		return errors.New("reset token is required")
	}
	if len(req.NewPassword) < 8 {
		return errors.New("password must be at least 8 characters")
	}

	claims, err := s.JWTManager.ValidateResetToken(req.Token)
	if err != nil {
		return errors.New("invalid or expired reset token")
	}

	record, err := s.ResetRepo.GetByHash(ctx, hashToken(req.Token))
	if err != nil {
		return errors.New("invalid or expired reset token")
	}
	if record.UsedAt != nil {
		return errors.New("reset token already used")
	}
	if timeutil.Now().After(record.ExpiresAt) {
		return errors.New("invalid or expired reset token")
	}

	hashedPassword, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return err
	}
	if err := s.Repo.UpdatePassword(ctx, claims.UserID, hashedPassword); err != nil {
		return err
	}
	// The old password may still be in the login cache; drop it.
	cache.InvalidateAuth(ctx, claims.Email)

	return s.ResetRepo.MarkUsed(ctx, record.ID, timeutil.Now())
}

// GetProfile returns a user by id
func (s *UserService) GetProfile(ctx context.Context, id int) (*models.User, error) {
	return s.Repo.Get(ctx, id)
}

// UpdateProfile merges the provided fields into the user's profile
func (s *UserService) UpdateProfile(ctx context.Context, id int, req *models.UpdateProfileRequest) (*models.User, error) {
	if req.FirstName != nil && *req.FirstName == "" {
		return nil, errors.New("first name must not be empty")
	}
	if req.LastName != nil && *req.LastName == "" {
		return nil, errors.New("last name must not be empty")
	}
	if req.Phone != nil {
		if err := validate.Phone(*req.Phone); err != nil {
			return nil, err
		}
	}
	return s.Repo.UpdateProfile(ctx, id, req)
}

// ListUsers returns all users (admin only, enforced at the router)
func (s *UserService) ListUsers(ctx context.Context) ([]*models.User, error) {
	return s.Repo.List(ctx)
}

// UpdateRole changes a user's role (admin only, enforced at the router)
func (s *UserService) UpdateRole(ctx context.Context, id int, role string) error {
	if !models.IsValidRole(role) {
		return errors.New("invalid role")
	}
	return s.Repo.UpdateRole(ctx, id, role)
}

// DeleteUser removes a user account
func (s *UserService) DeleteUser(ctx context.Context, id int) error {
	user, err := s.Repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.Repo.Delete(ctx, id); err != nil {
		return err
	}
	cache.InvalidateAuth(ctx, user.Email)
	return nil
}

// hashToken gives the storage form of a reset token. Only the hash is
// persisted, so a database leak does not leak usable tokens.
func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
