package token

import (
	"errors"
	"testing"
	"time"
)

func TestIssueAndVerify_Roundtrip(t *testing.T) {
	codec := NewCodec("secret", "venue-services")

	raw, err := codec.Issue("user-42", TypeAccess, time.Minute)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	claims, err := codec.Verify(raw, TypeAccess)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if claims.Subject != "user-42" {
		t.Fatalf("expected subject user-42, got %q", claims.Subject)
	}
	if claims.TokenType != TypeAccess {
		t.Fatalf("expected access type, got %q", claims.TokenType)
	}
}

func TestVerify_TypeMismatch(t *testing.T) {
	codec := NewCodec("secret", "venue-services")

	access, err := codec.Issue("user-42", TypeAccess, time.Minute)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := codec.Verify(access, TypeRefresh); !errors.Is(err, ErrTypeMismatch) {
		t.Fatalf("expected ErrTypeMismatch, got %v", err)
	}

	refresh, err := codec.Issue("user-42", TypeRefresh, time.Hour)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := codec.Verify(refresh, TypeAccess); !errors.Is(err, ErrTypeMismatch) {
		t.Fatalf("expected ErrTypeMismatch, got %v", err)
	}
}

func TestVerify_Expired(t *testing.T) {
	codec := NewCodec("secret", "venue-services")

	raw, err := codec.Issue("user-42", TypeAccess, -time.Second)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := codec.Verify(raw, TypeAccess); !errors.Is(err, ErrExpired) {
		t.Fatalf("expected ErrExpired, got %v", err)
	}
}

func TestVerify_ExpiryBoundaryIsExclusive(t *testing.T) {
	codec := NewCodec("secret", "venue-services")

	// A token whose expiry equals the verification instant is already
	// expired; zero TTL therefore never yields a valid token.
	raw, err := codec.Issue("user-42", TypeAccess, 0)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := codec.Verify(raw, TypeAccess); !errors.Is(err, ErrExpired) {
		t.Fatalf("expected ErrExpired at the boundary, got %v", err)
	}
}

func TestVerify_Garbage(t *testing.T) {
	codec := NewCodec("secret", "venue-services")

	_, err := codec.Verify("not-a-real-token", TypeAccess)
	if !errors.Is(err, ErrMalformed) && !errors.Is(err, ErrInvalidSignature) {
		t.Fatalf("expected ErrMalformed or ErrInvalidSignature, got %v", err)
	}

	if _, err := codec.Verify("", TypeAccess); err == nil {
		t.Fatalf("expected error for empty token")
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	issuer := NewCodec("secret-a", "venue-services")
	verifier := NewCodec("secret-b", "venue-services")

	raw, err := issuer.Issue("user-42", TypeAccess, time.Minute)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := verifier.Verify(raw, TypeAccess); !errors.Is(err, ErrInvalidSignature) {
		t.Fatalf("expected ErrInvalidSignature, got %v", err)
	}
}
