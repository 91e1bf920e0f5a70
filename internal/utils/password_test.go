package utils

import (
	"errors"
	"strings"
	"testing"
)

func TestHashPassword_VerifiesAndSalts(t *testing.T) {
	h1, err := HashPassword("s3cret")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	h2, _ := HashPassword("s3cret")

	if h1 == "s3cret" {
		t.Fatal("hash must differ from the plain password")
	}
	if h1 == h2 {
		t.Error("expected different hashes for the same password")
	}
	if err := CheckPassword(h1, "s3cret"); err != nil {
		t.Errorf("expected password to match, got: %v", err)
	}
}

func TestCheckPassword_Mismatch(t *testing.T) {
	h, _ := HashPassword("s3cret")

	if err := CheckPassword(h, "wrong"); !errors.Is(err, ErrPasswordMismatch) {
		t.Errorf("expected ErrPasswordMismatch, got: %v", err)
	}
}

func TestCheckPassword_MalformedHash(t *testing.T) {
	err := CheckPassword("not-a-bcrypt-hash", "s3cret")

	if err == nil || errors.Is(err, ErrPasswordMismatch) {
		t.Errorf("expected a non-mismatch error, got: %v", err)
	}
}

func TestCheckPassword_LongerThanBcryptLimit(t *testing.T) {
	stored := strings.Repeat("a", maxPasswordBytes)
	h, err := HashPassword(stored)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if err := CheckPassword(h, stored+"b"); !errors.Is(err, ErrPasswordMismatch) {
		t.Errorf("expected ErrPasswordMismatch for a 73-byte password, got: %v", err)
	}
}
