package auth

import (
	"errors"
	"testing"
	"time"
)

func createTestJWTService(t *testing.T) JWTService {
	t.Helper()

	cfg := JWTConfig{
		Secret:             "test-secret",
		AccessTokenExpiry:  1 * time.Hour,
		RefreshTokenExpiry: 24 * time.Hour * 30,
		Issuer:             "test-issuer",
	}

	svc, err := NewJWTService(cfg)
	if err != nil {
		t.Fatalf("Failed to create JWT service: %v", err)
	}
	return svc
}

func TestNewJWTService(t *testing.T) {
	tests := []struct {
		name        string
		cfg         JWTConfig
		expectError bool
	}{
		{
			name: "Valid config",
			cfg: JWTConfig{
				Secret:             "secret",
				AccessTokenExpiry:  1 * time.Hour,
				RefreshTokenExpiry: 24 * time.Hour,
				Issuer:             "test",
			},
			expectError: false,
		},
		{
			name: "Empty secret",
			cfg: JWTConfig{
				AccessTokenExpiry:  1 * time.Hour,
				RefreshTokenExpiry: 24 * time.Hour,
				Issuer:             "test",
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewJWTService(tt.cfg)
			if (err != nil) != tt.expectError {
				t.Errorf("NewJWTService() error = %v, expectError %v", err, tt.expectError)
			}
		})
	}
}

func TestJWTService_GenerateAccessToken(t *testing.T) {
	svc := createTestJWTService(t)

	token, expiresAt, err := svc.GenerateAccessToken(42, "userA")
	if err != nil {
		t.Fatalf("GenerateAccessToken() error = %v", err)
	}

	if token == "" {
		t.Error("GenerateAccessToken() returned empty token")
	}

	if expiresAt.Before(time.Now()) {
		t.Error("GenerateAccessToken() returned past expiration time")
	}

	// Verify token is valid
	claims, err := svc.ValidateAccessToken(token)
	if err != nil {
		t.Fatalf("ValidateAccessToken() error = %v", err)
	}

	if claims.MemberID != 42 {
		t.Errorf("Claims.MemberID = %v, want 42", claims.MemberID)
	}
	if claims.Name != "userA" {
		t.Errorf("Claims.Name = %v, want userA", claims.Name)
	}
}

func TestJWTService_GenerateRefreshToken(t *testing.T) {
	svc := createTestJWTService(t)

	token, err := svc.GenerateRefreshToken(42)
	if err != nil {
		t.Fatalf("GenerateRefreshToken() error = %v", err)
	}

	if token == "" {
		t.Error("GenerateRefreshToken() returned empty token")
	}

	// Verify token is valid
	claims, err := svc.ValidateRefreshToken(token)
	if err != nil {
		t.Fatalf("ValidateRefreshToken() error = %v", err)
	}

	if claims.MemberID != 42 {
		t.Errorf("Claims.MemberID = %v, want 42", claims.MemberID)
	}
	if claims.TokenType != "refresh" {
		t.Errorf("Claims.TokenType = %v, want refresh", claims.TokenType)
	}
}

func TestJWTService_GenerateTokenPair(t *testing.T) {
	svc := createTestJWTService(t)

	pair, err := svc.GenerateTokenPair(42, "userA")
	if err != nil {
		t.Fatalf("GenerateTokenPair() error = %v", err)
	}

	if pair.AccessToken == "" {
		t.Error("TokenPair.AccessToken is empty")
	}
	if pair.RefreshToken == "" {
		t.Error("TokenPair.RefreshToken is empty")
	}
	if pair.ExpiresAt.Before(time.Now()) {
		t.Error("TokenPair.ExpiresAt is in the past")
	}
	if pair.ExpiresIn <= 0 {
		t.Error("TokenPair.ExpiresIn should be positive")
	}

	// Verify both tokens work
	if _, err := svc.ValidateAccessToken(pair.AccessToken); err != nil {
		t.Errorf("AccessToken validation failed: %v", err)
	}
	if _, err := svc.ValidateRefreshToken(pair.RefreshToken); err != nil {
		t.Errorf("RefreshToken validation failed: %v", err)
	}
}

func TestJWTService_ValidateAccessToken_Invalid(t *testing.T) {
	svc := createTestJWTService(t)

	tests := []struct {
		name  string
		token string
	}{
		{"Empty token", ""},
		{"Malformed token", "not.a.valid.token"},
		{"Invalid signature", "eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9.eyJzdWIiOiIxMjM0NTY3ODkwIiwibmFtZSI6IkpvaG4gRG9lIiwiaWF0IjoxNTE2MjM5MDIyfQ.invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ValidateAccessToken(tt.token)
			if err == nil {
				t.Error("ValidateAccessToken() should return error for invalid token")
			}
		})
	}
}

func TestJWTService_ValidateAccessToken_WrongSecret(t *testing.T) {
	svc := createTestJWTService(t)

	other, err := NewJWTService(JWTConfig{
		Secret:             "different-secret",
		AccessTokenExpiry:  1 * time.Hour,
		RefreshTokenExpiry: 24 * time.Hour,
		Issuer:             "test-issuer",
	})
	if err != nil {
		t.Fatalf("NewJWTService() error = %v", err)
	}

	token, _, err := other.GenerateAccessToken(42, "userA")
	if err != nil {
		t.Fatalf("GenerateAccessToken() error = %v", err)
	}

	if _, err := svc.ValidateAccessToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("ValidateAccessToken() error = %v, want ErrInvalidToken", err)
	}
}

func TestJWTService_ValidateAccessToken_Expired(t *testing.T) {
	svc, err := NewJWTService(JWTConfig{
		Secret:             "test-secret",
		AccessTokenExpiry:  -1 * time.Minute,
		RefreshTokenExpiry: 24 * time.Hour,
		Issuer:             "test-issuer",
	})
	if err != nil {
		t.Fatalf("NewJWTService() error = %v", err)
	}

	token, _, err := svc.GenerateAccessToken(42, "userA")
	if err != nil {
		t.Fatalf("GenerateAccessToken() error = %v", err)
	}

	if _, err := svc.ValidateAccessToken(token); !errors.Is(err, ErrTokenExpired) {
		t.Errorf("ValidateAccessToken() error = %v, want ErrTokenExpired", err)
	}
}

func TestJWTService_ValidateRefreshToken_WrongType(t *testing.T) {
	svc := createTestJWTService(t)

	// Generate an access token and try to use it as a refresh token
	accessToken, _, err := svc.GenerateAccessToken(42, "userA")
	if err != nil {
		t.Fatalf("GenerateAccessToken() error = %v", err)
	}

	if _, err := svc.ValidateRefreshToken(accessToken); err == nil {
		t.Error("ValidateRefreshToken() should reject access tokens")
	}
}
