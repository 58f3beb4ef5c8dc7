// Package auth checks the fixed administrator credentials.
//
// There is a single admin account and it is not a managed record: the
// username and password come from configuration. The password is kept only
// as a bcrypt hash in memory.
package auth

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("incorrect admin credentials")
	ErrMissingPassword    = errors.New("admin password or password hash required")
)

// AdminAuthenticator compares supplied credentials against the admin pair.
type AdminAuthenticator struct {
	username     string
	passwordHash []byte
}

// NewAdminAuthenticator creates an authenticator for username. When
// passwordHash is set it must be a bcrypt hash and password is ignored;
// otherwise password is hashed here.
func NewAdminAuthenticator(username, password, passwordHash string) (*AdminAuthenticator, error) {
	if passwordHash != "" {
		if _, err := bcrypt.Cost([]byte(passwordHash)); err != nil {
			return nil, fmt.Errorf("invalid admin password hash: %w", err)
		}
		return &AdminAuthenticator{username: username, passwordHash: []byte(passwordHash)}, nil
	}
	if password == "" {
		return nil, ErrMissingPassword
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash admin password: %w", err)
	}
	return &AdminAuthenticator{username: username, passwordHash: hashed}, nil
}

// Authenticate succeeds only when both username and password match.
func (a *AdminAuthenticator) Authenticate(username, password string) error {
	// The hash comparison runs whatever the username.
	pwErr := bcrypt.CompareHashAndPassword(a.passwordHash, []byte(password))
	if username != a.username || pwErr != nil {
		return ErrInvalidCredentials
	}
	return nil
}
