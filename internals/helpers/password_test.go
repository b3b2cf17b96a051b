package helper

import (
	"errors"
	"strings"
	"testing"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("s3cret-pw")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if !strings.HasPrefix(hash, "$argon2id$") {
		t.Fatalf("unexpected hash format: %s", hash)
	}
	if err := CheckPasswordHash(hash, "s3cret-pw"); err != nil {
		t.Fatalf("CheckPasswordHash: %v", err)
	}
	if err := CheckPasswordHash(hash, "wrong"); !errors.Is(err, ErrHashMismatch) {
		t.Fatalf("expected ErrHashMismatch, got %v", err)
	}
}

func TestHashPasswordSaltsDiffer(t *testing.T) {
	a, err := HashPassword("same")
	if err != nil {
		t.Fatal(err)
	}
	b, err := HashPassword("same")
	if err != nil {
		t.Fatal(err)
	}
	if a == b {
		t.Fatal("two hashes of the same password must not be equal")
	}
}

func TestCheckPasswordHashRejectsGarbage(t *testing.T) {
	if err := CheckPasswordHash("not-a-phc-string", "pw"); err == nil {
		t.Fatal("expected malformed hash to fail")
	}
}

func TestGenerateRandomPassword(t *testing.T) {
	pw, err := GenerateRandomPassword(12)
	if err != nil {
		t.Fatalf("GenerateRandomPassword: %v", err)
	}
	if len(pw) != 12 {
		t.Fatalf("expected length 12, got %d", len(pw))
	}

	var lower, upper, digit, special bool
	for _, ch := range pw {
		switch {
		case ch >= 'a' && ch <= 'z':
			lower = true
		case ch >= 'A' && ch <= 'Z':
			upper = true
		case ch >= '0' && ch <= '9':
			digit = true
		default:
			special = true
		}
	}
	if !lower || !upper || !digit || !special {
		t.Fatalf("password %q missing a character class", pw)
	}
}
