package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrLockPassphraseInvalid = errors.New("invalid passphrase")
	ErrLockTokenInvalid      = errors.New("invalid unlock token")
)

const unlockTokenTTL = 7 * 24 * time.Hour

// LockService gates the API behind a single optional passphrase. This is
// an app lock for a single-user installation, not an account system:
// unlocking issues a short-lived JWT that later requests present as a
// bearer token.
type LockService struct {
	passphraseHash []byte
	secretKey      []byte
}

// NewLockService hashes the configured passphrase up front. An empty
// passphrase disables the lock entirely.
func NewLockService(passphrase string, secretKey string) (*LockService, error) {
	service := &LockService{secretKey: []byte(secretKey)}

	passphrase = strings.TrimSpace(passphrase)
	if passphrase == "" {
		return service, nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(passphrase), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash lock passphrase: %w", err)
	}
	service.passphraseHash = hash
	return service, nil
}

func (service *LockService) Enabled() bool {
	return len(service.passphraseHash) > 0
}

// Unlock verifies the passphrase and issues a bearer token.
func (service *LockService) Unlock(passphrase string, now time.Time) (string, error) {
	if !service.Enabled() {
		return "", ErrLockPassphraseInvalid
	}
	if bcrypt.CompareHashAndPassword(service.passphraseHash, []byte(strings.TrimSpace(passphrase))) != nil {
		return "", ErrLockPassphraseInvalid
	}

	claims := jwt.RegisteredClaims{
		Subject:   "selene",
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(unlockTokenTTL)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(service.secretKey)
	if err != nil {
		return "", fmt.Errorf("sign unlock token: %w", err)
	}
	return signed, nil
}

// VerifyToken checks a bearer token produced by Unlock.
func (service *LockService) VerifyToken(rawToken string) error {
	token, err := jwt.ParseWithClaims(rawToken, &jwt.RegisteredClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return service.secretKey, nil
	})
	if err != nil || !token.Valid {
		return ErrLockTokenInvalid
	}
	return nil
}
