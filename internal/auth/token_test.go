package auth

import (
	"errors"
	"testing"
)

func TestToken_RoundTrip(t *testing.T) {
	svc := NewTokenService("test-secret")

	const userID = "5f1d7f3b9c8a4e2d1b0a9f8e"
	token, err := svc.Generate(userID)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	got, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if got != userID {
		t.Fatalf("subject = %q, want %q", got, userID)
	}
}

func TestToken_WrongSecretRejected(t *testing.T) {
	token, err := NewTokenService("secret-a").Generate("5f1d7f3b9c8a4e2d1b0a9f8e")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if _, err := NewTokenService("secret-b").Verify(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("err = %v, want ErrInvalidToken", err)
	}
}

func TestToken_MalformedRejected(t *testing.T) {
	svc := NewTokenService("test-secret")
	for _, tok := range []string{"", "garbage", "a.b.c"} {
		if _, err := svc.Verify(tok); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("Verify(%q) err = %v, want ErrInvalidToken", tok, err)
		}
	}
}
