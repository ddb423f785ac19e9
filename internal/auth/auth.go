// Package auth decides who may use the admin endpoints.
package auth

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrInvalidCredentials is returned when the provided credentials are invalid.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUnknownMode is returned for an admin mode other than open or credentials.
	ErrUnknownMode = errors.New("unknown admin mode")
)

const (
	ModeOpen        = "open"
	ModeCredentials = "credentials"
)

// Authenticator verifies an admin username/password pair.
type Authenticator interface {
	Authenticate(username, password string) error
}

// Open accepts every pair. It stands in for a login backend and provides no
// security at all.
type Open struct{}

func (Open) Authenticate(string, string) error { return nil }

// Credentials checks a single admin account against a bcrypt hash.
type Credentials struct {
	Username     string
	PasswordHash []byte
}

func (c Credentials) Authenticate(username, password string) error {
	if username != c.Username {
		return ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(c.PasswordHash, []byte(password)); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}

// New picks the authenticator for mode.
func New(mode, username, passwordHash string) (Authenticator, error) {
	switch mode {
	case ModeOpen, "":
		return Open{}, nil
	case ModeCredentials:
		if _, err := bcrypt.Cost([]byte(passwordHash)); err != nil {
			return nil, fmt.Errorf("admin password hash: %w", err)
		}
		return Credentials{Username: username, PasswordHash: []byte(passwordHash)}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMode, mode)
	}
}

// HashPassword hashes the password
func HashPassword(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(b), err
}
