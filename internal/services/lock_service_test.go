package services

import (
	"errors"
	"testing"
	"time"
)

func TestLockService_DisabledWithoutPassphrase(t *testing.T) {
	t.Parallel()

	lock, err := NewLockService("", "test-secret")
	if err != nil {
		t.Fatalf("new lock service: %v", err)
	}

	if lock.Enabled() {
		t.Fatal("expected lock disabled for empty passphrase")
	}
	if _, err := lock.Unlock("anything", time.Now()); !errors.Is(err, ErrLockPassphraseInvalid) {
		t.Fatalf("expected unlock rejected while disabled, got %v", err)
	}
}

func TestLockService_UnlockRoundtrip(t *testing.T) {
	t.Parallel()

	lock, err := NewLockService("hunter2", "test-secret")
	if err != nil {
		t.Fatalf("new lock service: %v", err)
	}
	if !lock.Enabled() {
		t.Fatal("expected lock enabled")
	}

	token, err := lock.Unlock("hunter2", time.Now())
	if err != nil {
		t.Fatalf("unlock: %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty token")
	}

	if err := lock.VerifyToken(token); err != nil {
		t.Fatalf("verify freshly issued token: %v", err)
	}
}

func TestLockService_WrongPassphraseRejected(t *testing.T) {
	t.Parallel()

	lock, err := NewLockService("hunter2", "test-secret")
	if err != nil {
		t.Fatalf("new lock service: %v", err)
	}

	if _, err := lock.Unlock("hunter3", time.Now()); !errors.Is(err, ErrLockPassphraseInvalid) {
		t.Fatalf("expected passphrase rejection, got %v", err)
	}
}

func TestLockService_VerifyRejectsGarbageAndForeignTokens(t *testing.T) {
	t.Parallel()

	lock, err := NewLockService("hunter2", "test-secret")
	if err != nil {
		t.Fatalf("new lock service: %v", err)
	}

	if err := lock.VerifyToken("not-a-token"); !errors.Is(err, ErrLockTokenInvalid) {
		t.Fatalf("expected garbage token rejected, got %v", err)
	}

	other, err := NewLockService("hunter2", "different-secret")
	if err != nil {
		t.Fatalf("new lock service: %v", err)
	}
	foreign, err := other.Unlock("hunter2", time.Now())
	if err != nil {
		t.Fatalf("unlock with other secret: %v", err)
	}
	if err := lock.VerifyToken(foreign); !errors.Is(err, ErrLockTokenInvalid) {
		t.Fatalf("expected token signed with another secret rejected, got %v", err)
	}
}

func TestLockService_VerifyRejectsExpiredToken(t *testing.T) {
	t.Parallel()

	lock, err := NewLockService("hunter2", "test-secret")
	if err != nil {
		t.Fatalf("new lock service: %v", err)
	}

	issuedLongAgo := time.Now().Add(-8 * 24 * time.Hour)
	token, err := lock.Unlock("hunter2", issuedLongAgo)
	if err != nil {
		t.Fatalf("unlock: %v", err)
	}
	if err := lock.VerifyToken(token); !errors.Is(err, ErrLockTokenInvalid) {
		t.Fatalf("expected expired token rejected, got %v", err)
	}
}
