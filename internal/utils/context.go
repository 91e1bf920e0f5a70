// Package utils holds small helpers shared by the handlers, services and
// client: context claims, JSON responses, password hashing, JWT and the
// resty client.
package utils

import (
	"context"

	"github.com/MKhiriev/go-doc-keeper/models"
)

type contextKey string

func (c contextKey) String() string {
	return string(c)
}

// ClaimsCtxKey is the key used to store the session claims of the
// authenticated caller in the context.
var ClaimsCtxKey = contextKey("claims")

// WithClaims returns a copy of ctx carrying claims.
func WithClaims(ctx context.Context, claims models.Claims) context.Context {
	return context.WithValue(ctx, ClaimsCtxKey, claims)
}

// GetClaimsFromContext returns the claims set by WithClaims. ok is false
// when ctx carries none.
func GetClaimsFromContext(ctx context.Context) (models.Claims, bool) {
	claims, ok := ctx.Value(ClaimsCtxKey).(models.Claims)
	return claims, ok
}
