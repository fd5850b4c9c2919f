package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Token wraps an issued or parsed JWT for authentication flows.
//
// SignedString holds the compact serialized form (header.payload.signature)
// ready to be sent in an Authorization header. UserID is the hex document id
// extracted from the "sub" claim, cached so downstream code does not need to
// re-parse the claims.
type Token struct {
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	SignedString string `json:"-"`

	UserID string `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements [fmt.Stringer].
func (t *Token) String() string {
	return t.SignedString
}
