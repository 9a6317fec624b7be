package services

import (
	"testing"

	"rhea-feedback-api/config"

	"golang.org/x/crypto/bcrypt"
)

func newTestAuthService(t *testing.T, password string) *AuthService {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash test password: %v", err)
	}
	return NewAuthService(
		config.AuthConfig{Username: "agronomist", PasswordHash: string(hash)},
		config.JWTConfig{Secret: "test-secret-key", ExpiryHours: 24},
	)
}

func TestAuthenticate(t *testing.T) {
	svc := newTestAuthService(t, "mypassword123")

	if !svc.Authenticate("agronomist", "mypassword123") {
		t.Error("Authenticate should accept the configured credentials")
	}
	if svc.Authenticate("agronomist", "wrongpassword") {
		t.Error("Authenticate should reject a wrong password")
	}
	if svc.Authenticate("someone-else", "mypassword123") {
		t.Error("Authenticate should reject an unknown username")
	}
	if svc.Authenticate("", "") {
		t.Error("Authenticate should reject empty credentials")
	}
}

func TestHashPassword(t *testing.T) {
	svc := newTestAuthService(t, "irrelevant")

	hash, err := svc.HashPassword("mypassword123")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	if hash == "" {
		t.Fatal("hash should not be empty")
	}
	if hash == "mypassword123" {
		t.Fatal("hash should not equal plaintext")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte("mypassword123")); err != nil {
		t.Errorf("generated hash should validate: %v", err)
	}
}

func TestHashPasswordDifferentEachTime(t *testing.T) {
	svc := newTestAuthService(t, "irrelevant")

	hash1, _ := svc.HashPassword("same-password")
	hash2, _ := svc.HashPassword("same-password")

	if hash1 == hash2 {
		t.Error("bcrypt hashes should differ due to random salt")
	}
}

func TestGenerateAndValidateToken(t *testing.T) {
	svc := newTestAuthService(t, "mypassword123")

	token, err := svc.GenerateToken("agronomist")
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}
	if token == "" {
		t.Fatal("token should not be empty")
	}

	claims, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken failed: %v", err)
	}
	if claims.Username != "agronomist" {
		t.Errorf("Username = %q, want %q", claims.Username, "agronomist")
	}
	if claims.ExpiresAt == nil {
		t.Error("ExpiresAt should be set")
	}
	if claims.IssuedAt == nil {
		t.Error("IssuedAt should be set")
	}
}

func TestValidateTokenInvalid(t *testing.T) {
	svc := newTestAuthService(t, "mypassword123")

	_, err := svc.ValidateToken("invalid.token.string")
	if err == nil {
		t.Error("expected error for invalid token")
	}
}

func TestValidateTokenWrongSecret(t *testing.T) {
	svc1 := NewAuthService(
		config.AuthConfig{Username: "agronomist", PasswordHash: "x"},
		config.JWTConfig{Secret: "secret-1", ExpiryHours: 24},
	)
	svc2 := NewAuthService(
		config.AuthConfig{Username: "agronomist", PasswordHash: "x"},
		config.JWTConfig{Secret: "secret-2", ExpiryHours: 24},
	)

	token, _ := svc1.GenerateToken("agronomist")

	_, err := svc2.ValidateToken(token)
	if err == nil {
		t.Error("expected error when validating with wrong secret")
	}
}
