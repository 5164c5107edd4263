package auth

import (
	"testing"

	"parlad-backend/internal/config"
	"parlad-backend/internal/models"
)

func testManager(secret string) *JWTManager {
	cfg := &config.Config{}
	cfg.JWT.Secret = secret
	cfg.JWT.ExpirationHours = 1
	cfg.JWT.Issuer = "parlad-backend"
	return NewJWTManager(cfg)
}

func testUser() *models.User {
	return &models.User{
		ID:    42,
		Email: "sita@example.com",
		Role:  models.RoleManager,
	}
}

func TestGenerateAndValidateToken(t *testing.T) {
	m := testManager("test-secret")

	token, err := m.GenerateToken(testUser())
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	claims, err := m.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("UserID = %d, want 42", claims.UserID)
	}
	if claims.Email != "sita@example.com" {
		t.Errorf("Email = %q", claims.Email)
	}
	if claims.Role != models.RoleManager {
		t.Errorf("Role = %q, want manager", claims.Role)
	}
}

func TestValidateTokenWrongSecret(t *testing.T) {
	token, err := testManager("secret-a").GenerateToken(testUser())
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	if _, err := testManager("secret-b").ValidateToken(token); err == nil {
		t.Error("token signed with another secret validated")
	}
}

func TestValidateTokenGarbage(t *testing.T) {
	if _, err := testManager("s").ValidateToken("not.a.token"); err == nil {
		t.Error("garbage token validated")
	}
}

func TestResetTokenRoundTrip(t *testing.T) {
	m := testManager("test-secret")

	token, err := m.GenerateResetToken(testUser())
	if err != nil {
		t.Fatalf("GenerateResetToken: %v", err)
	}

	claims, err := m.ValidateResetToken(token)
	if err != nil {
		t.Fatalf("ValidateResetToken: %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("UserID = %d, want 42", claims.UserID)
	}
	if claims.Type != "password_reset" {
		t.Errorf("Type = %q", claims.Type)
	}
}

func TestSessionTokenRejectedAsResetToken(t *testing.T) {
	m := testManager("test-secret")

	token, err := m.GenerateToken(testUser())
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	if _, err := m.ValidateResetToken(token); err == nil {
		t.Error("session token accepted as reset token")
	}
}
