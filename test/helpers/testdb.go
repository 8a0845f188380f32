package helpers

import (
	"encoding/json"
	"net/http"
	"testing"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/whvsdan/theboardroom/internal/models"
	"github.com/whvsdan/theboardroom/internal/services/dto"
)

// CreateAdmin inserts a back-office account with a bcrypt-hashed password.
func CreateAdmin(t *testing.T, db *gorm.DB, email, password string) *models.AdminUser {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("Failed to hash password: %v", err)
	}

	admin := &models.AdminUser{
		Email:        email,
		PasswordHash: string(hash),
		Role:         models.AdminRoleAdmin,
	}
	if err := db.Create(admin).Error; err != nil {
		t.Fatalf("Failed to create admin user: %v", err)
	}
	return admin
}

// LoginAdmin logs in through the API and returns the access token.
func LoginAdmin(t *testing.T, ts *TestServer, email, password string) string {
	t.Helper()

	res, body := ts.SendRequest(t, "POST", "/api/v1/auth/login", "", map[string]string{
		"email":    email,
		"password": password,
	})
	if res.StatusCode != http.StatusOK {
		t.Fatalf("Login failed with status %d: %s", res.StatusCode, body)
	}

	var loginRes dto.LoginResponse
	if err := json.Unmarshal([]byte(body), &loginRes); err != nil {
		t.Fatalf("Failed to parse login response: %v", err)
	}
	if loginRes.AccessToken == "" {
		t.Fatal("Login response has no access token")
	}
	return loginRes.AccessToken
}

// SeedAndLoginAdmin is the common admin-test preamble.
func SeedAndLoginAdmin(t *testing.T, ts *TestServer) string {
	t.Helper()
	CreateAdmin(t, ts.DB, "admin@theboardroom.events", "test-password-123")
	return LoginAdmin(t, ts, "admin@theboardroom.events", "test-password-123")
}
