package auth

import (
	"testing"
	"time"
)

func TestTokenRoundTrip(t *testing.T) {
	tok, err := GenerateToken("user-1", "secret", time.Hour)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	claims, err := ValidateToken(tok, "secret")
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if claims.UserID != "user-1" {
		t.Fatalf("user id = %q", claims.UserID)
	}
}

func TestTokenWrongSecret(t *testing.T) {
	tok, _ := GenerateToken("user-1", "secret", time.Hour)
	if _, err := ValidateToken(tok, "other"); err == nil {
		t.Fatalf("token accepted with wrong secret")
	}
}

func TestTokenExpired(t *testing.T) {
	tok, _ := GenerateToken("user-1", "secret", -time.Minute)
	if _, err := ValidateToken(tok, "secret"); err == nil {
		t.Fatalf("expired token accepted")
	}
}

func TestTokenGarbage(t *testing.T) {
	if _, err := ValidateToken("not-a-token", "secret"); err == nil {
		t.Fatalf("garbage accepted")
	}
}
