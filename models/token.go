package models

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Token wraps a signed bearer token issued to an authenticated user.
//
// It embeds [jwt.Token] for low-level access and [jwt.RegisteredClaims] for the
// standard claim set. The subject claim holds the user's UUID.
type Token struct {
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	// SignedString is the compact JWS form ready for the Authorization header.
	SignedString string `json:"-"`

	// UserID is the parsed "sub" claim.
	UserID uuid.UUID `json:"-"`
}

// GetUserID parses the "sub" claim as a UUID.
func (t *Token) GetUserID() (uuid.UUID, error) {
	subject, err := t.GetSubject()
	if err != nil {
		return uuid.Nil, fmt.Errorf("error extracting UserID from token: %w", err)
	}

	userID, err := uuid.Parse(subject)
	if err != nil {
		return uuid.Nil, fmt.Errorf("error converting UserID from token to uuid: %w", err)
	}

	return userID, nil
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}
