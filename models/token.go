package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the payload of a session token. UserId and RoleId keep the
// casing of the original wire format so that existing clients can decode
// the token body without changes.
type Claims struct {
	// UserID identifies the authenticated user.
	UserID int64 `json:"UserId"`

	// RoleID identifies the role of the authenticated user at the moment the
	// token was issued.
	RoleID int64 `json:"RoleId"`

	// RegisteredClaims carries iss, sub, iat and exp.
	jwt.RegisteredClaims
}

// Token wraps a signed JWT together with the claims it was built from.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	*jwt.Token `json:"-"`

	// Claims are the decoded session claims.
	Claims Claims `json:"-"`

	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature).
	SignedString string `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t Token) String() string {
	return t.SignedString
}
