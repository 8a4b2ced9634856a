package utils

import (
	"testing"
	"time"

	"github.com/MKhiriev/beichen-observer/models"
	"github.com/golang-jwt/jwt/v5"
)

func TestGenerateJWTToken_Success(t *testing.T) {
	issuer := "test-issuer"
	userID := models.ID("0190c8a4-9d4e-7c1a-b5f1-3c2d1e0f9a8b")

	token, err := GenerateJWTToken(issuer, userID, time.Hour, "secret-key")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if token.SignedString == "" {
		t.Error("expected non-empty SignedString")
	}

	claims, ok := token.Token.Claims.(*jwt.RegisteredClaims)
	if !ok {
		t.Fatal("could not cast claims to RegisteredClaims")
	}
	if claims.Issuer != issuer {
		t.Errorf("expected issuer %s, got %s", issuer, claims.Issuer)
	}
	if claims.Subject != userID.String() {
		t.Errorf("expected subject %s, got %s", userID, claims.Subject)
	}
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		userID   models.ID
		duration time.Duration
		key      string
	}{
		{"empty issuer", "", "u1", time.Hour, "key"},
		{"empty user", "iss", "", time.Hour, "key"},
		{"zero duration", "iss", "u1", 0, "key"},
		{"empty key", "iss", "u1", time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := GenerateJWTToken(tt.issuer, tt.userID, tt.duration, tt.key); err == nil {
				t.Error("expected error for invalid parameters, got nil")
			}
		})
	}
}

func TestValidateAndParseJWTToken_RoundTrip(t *testing.T) {
	token, err := GenerateJWTToken("beichen", "u-42", time.Hour, "key")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	parsed, err := ValidateAndParseJWTToken(token.SignedString, "key", "beichen")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if parsed.UserID != "u-42" {
		t.Errorf("expected user u-42, got %s", parsed.UserID)
	}
}

func TestValidateAndParseJWTToken_Rejects(t *testing.T) {
	valid, _ := GenerateJWTToken("beichen", "u-42", time.Hour, "key")
	expired, _ := GenerateJWTToken("beichen", "u-42", -time.Minute, "key")

	tests := []struct {
		name   string
		token  string
		key    string
		issuer string
	}{
		{"wrong key", valid.SignedString, "other", "beichen"},
		{"wrong issuer", valid.SignedString, "key", "someone-else"},
		{"expired", expired.SignedString, "key", "beichen"},
		{"garbage", "not.a.token", "key", "beichen"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ValidateAndParseJWTToken(tt.token, tt.key, tt.issuer); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		header  string
		want    string
		wantErr bool
	}{
		{header: "Bearer abc", want: "abc"},
		{header: "bearer abc", want: "abc"},
		{header: "  Bearer   abc  ", want: "abc"},
		{header: "Basic abc", wantErr: true},
		{header: "Bearer", wantErr: true},
		{header: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			got, err := ParseBearerToken(tt.header)
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error for %q", tt.header)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Errorf("expected %q, got %q (%v)", tt.want, got, err)
			}
		})
	}
}
