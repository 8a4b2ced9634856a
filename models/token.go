package models

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a signed access token issued by the login endpoint.
//
// It embeds [jwt.Token] for signing and parsing and [jwt.RegisteredClaims]
// for standard claim access. UserID is the parsed "sub" claim.
type Token struct {
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// UserID is the owner identifier taken from the "sub" claim.
	UserID ID `json:"-"`
}

// GetUserID extracts the user identifier from the token's "sub" claim.
func (t *Token) GetUserID() (ID, error) {
	subject, err := t.GetSubject()
	if err != nil {
		return "", fmt.Errorf("error extracting UserID from token: %w", err)
	}
	if subject == "" {
		return "", fmt.Errorf("error extracting UserID from token: empty subject")
	}

	return ID(subject), nil
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}
