package util

import (
	"micro_learning_backend/internal/model"
	"testing"
	"time"
)

func TestGenerateAndParseJWT(t *testing.T) {
	user := &model.User{Name: "Ada", Email: "ada@x.com"}
	user.ID = 42

	token, err := GenerateJWT(user, "test-secret", time.Hour)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty token")
	}

	claims, err := ParseJWT(token, "test-secret")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.UserID != 42 {
		t.Fatalf("expected user id 42, got %d", claims.UserID)
	}
	if claims.Email != "ada@x.com" {
		t.Fatalf("expected email ada@x.com, got %q", claims.Email)
	}
}

func TestParseJWTWrongSecret(t *testing.T) {
	user := &model.User{Email: "ada@x.com"}
	user.ID = 1

	token, err := GenerateJWT(user, "secret-a", time.Hour)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if _, err := ParseJWT(token, "secret-b"); err == nil {
		t.Fatal("expected error for wrong secret")
	}
}

func TestParseJWTExpired(t *testing.T) {
	user := &model.User{Email: "ada@x.com"}
	user.ID = 1

	token, err := GenerateJWT(user, "test-secret", -time.Minute)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if _, err := ParseJWT(token, "test-secret"); err == nil {
		t.Fatal("expected error for expired token")
	}
}

func TestParseJWTGarbage(t *testing.T) {
	if _, err := ParseJWT("not-a-token", "test-secret"); err == nil {
		t.Fatal("expected error for malformed token")
	}
}
