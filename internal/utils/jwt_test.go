package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var fixedNow = time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

func TestGenerateJWTToken_Success(t *testing.T) {
	token, err := GenerateJWTToken("test-issuer", 123, 2, time.Hour, "secret-key", fixedNow)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if token.SignedString == "" {
		t.Error("expected non-empty SignedString")
	}
	if token.Token == nil {
		t.Error("expected non-nil jwt.Token object")
	}
	if token.Claims.Issuer != "test-issuer" {
		t.Errorf("expected issuer test-issuer, got %s", token.Claims.Issuer)
	}
	if token.Claims.Subject != "123" {
		t.Errorf("expected subject '123', got %s", token.Claims.Subject)
	}
	if token.Claims.UserID != 123 || token.Claims.RoleID != 2 {
		t.Errorf("unexpected claims: %+v", token.Claims)
	}
	if !token.Claims.ExpiresAt.Equal(fixedNow.Add(time.Hour)) {
		t.Errorf("unexpected expiry %v", token.Claims.ExpiresAt)
	}
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		duration time.Duration
		key      string
	}{
		{"empty issuer", "", time.Hour, "key"},
		{"zero duration", "iss", 0, "key"},
		{"negative duration", "iss", -time.Hour, "key"},
		{"empty key", "iss", time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, 1, 2, tt.duration, tt.key, fixedNow)
			if err == nil {
				t.Error("expected error for invalid parameters, got nil")
			}
		})
	}
}

func TestValidateAndParseJWTToken_RoundTrip(t *testing.T) {
	token, err := GenerateJWTToken("iss", 5, 1, time.Hour, "key", fixedNow)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	parsed, err := ValidateAndParseJWTToken(token.SignedString, "key", "iss", func() time.Time { return fixedNow.Add(time.Minute) })

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if parsed.Claims.UserID != 5 || parsed.Claims.RoleID != 1 {
		t.Errorf("unexpected claims: %+v", parsed.Claims)
	}
}

func TestValidateAndParseJWTToken_Expired(t *testing.T) {
	token, _ := GenerateJWTToken("iss", 5, 1, time.Hour, "key", fixedNow)

	_, err := ValidateAndParseJWTToken(token.SignedString, "key", "iss", func() time.Time { return fixedNow.Add(2 * time.Hour) })

	if !errors.Is(err, jwt.ErrTokenExpired) {
		t.Fatalf("expected jwt.ErrTokenExpired, got: %v", err)
	}
}

func TestValidateAndParseJWTToken_Rejected(t *testing.T) {
	token, _ := GenerateJWTToken("iss", 5, 1, time.Hour, "key", fixedNow)
	now := func() time.Time { return fixedNow }

	tests := []struct {
		name   string
		token  string
		key    string
		issuer string
	}{
		{"wrong key", token.SignedString, "other-key", "iss"},
		{"wrong issuer", token.SignedString, "key", "other-iss"},
		{"garbage", "not.a.token", "key", "iss"},
		{"empty", "", "key", "iss"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ValidateAndParseJWTToken(tt.token, tt.key, tt.issuer, now); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestParseAuthorizationHeader(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{name: "bare token", header: "abc.def.ghi", want: "abc.def.ghi"},
		{name: "bearer token", header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "lowercase scheme", header: "bearer abc", want: "abc"},
		{name: "surrounding spaces", header: "  abc  ", want: "abc"},
		{name: "empty", header: "", wantErr: true},
		{name: "other scheme", header: "Basic dXNlcjpwYXNz", wantErr: true},
		{name: "too many parts", header: "Bearer a b", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAuthorizationHeader(tt.header)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidAuthorizationHeader) {
					t.Fatalf("expected ErrInvalidAuthorizationHeader, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
