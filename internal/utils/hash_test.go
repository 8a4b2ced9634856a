package utils

import (
	"errors"
	"strings"
	"testing"
)

func TestHashPassword_CheckPassword(t *testing.T) {
	hash, err := HashPassword("admin123")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if hash == "admin123" || !strings.HasPrefix(hash, "$2") {
		t.Fatalf("expected a bcrypt hash, got %q", hash)
	}

	if err := CheckPassword(hash, "admin123"); err != nil {
		t.Errorf("expected match, got: %v", err)
	}
	if err := CheckPassword(hash, "wrong"); !errors.Is(err, ErrPasswordMismatch) {
		t.Errorf("expected ErrPasswordMismatch, got: %v", err)
	}
}

func TestCheckPassword_EmptyHash(t *testing.T) {
	if err := CheckPassword("", "anything"); !errors.Is(err, ErrPasswordMismatch) {
		t.Errorf("expected ErrPasswordMismatch, got: %v", err)
	}
}

func TestCheckPassword_MalformedHash(t *testing.T) {
	err := CheckPassword("plain-text", "plain-text")
	if err == nil || errors.Is(err, ErrPasswordMismatch) {
		t.Errorf("expected a comparison error, got: %v", err)
	}
}
