package service

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

func TestTokenRoundTrip(t *testing.T) {
	svc := NewTokenServiceWith("test-secret", time.Hour)
	in := Identity{ID: "2-SCH", Email: "s@example.com", FirstName: "Green", LastName: "Hill", Role: "School"}

	token, err := svc.Issue(in)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	out, err := svc.Parse(token)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if *out != in {
		t.Fatalf("round trip mismatch: got %+v want %+v", *out, in)
	}
}

func TestTokenExpiry(t *testing.T) {
	svc := NewTokenServiceWith("test-secret", -time.Minute)
	token, err := svc.Issue(Identity{ID: "u1", Role: "Staff"})
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	_, err = svc.Parse(token)
	if err == nil {
		t.Fatal("expected expired token to fail")
	}
	var ve *jwt.ValidationError
	if !errors.As(err, &ve) || ve.Errors&jwt.ValidationErrorExpired == 0 {
		t.Fatalf("expected expiry validation error, got %v", err)
	}
}

func TestTokenWrongSecret(t *testing.T) {
	issuer := NewTokenServiceWith("secret-a", time.Hour)
	verifier := NewTokenServiceWith("secret-b", time.Hour)

	token, err := issuer.Issue(Identity{ID: "u1", Role: "Staff"})
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if _, err := verifier.Parse(token); err == nil {
		t.Fatal("expected signature verification to fail")
	}
}
