package auth

import (
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestAdminAuthenticator(t *testing.T) {
	a, err := NewAdminAuthenticator("admin", "admin123", "")
	if err != nil {
		t.Fatalf("NewAdminAuthenticator failed: %v", err)
	}

	tests := []struct {
		name     string
		username string
		password string
		wantErr  bool
	}{
		{"correct credentials", "admin", "admin123", false},
		{"wrong password", "admin", "admin", true},
		{"wrong username", "root", "admin123", true},
		{"username is case sensitive", "Admin", "admin123", true},
		{"empty input", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := a.Authenticate(tt.username, tt.password)
			if tt.wantErr && !errors.Is(err, ErrInvalidCredentials) {
				t.Errorf("error = %v, want ErrInvalidCredentials", err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestAdminAuthenticatorWithHash(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash: %v", err)
	}

	a, err := NewAdminAuthenticator("boss", "ignored", string(hash))
	if err != nil {
		t.Fatalf("NewAdminAuthenticator failed: %v", err)
	}
	if err := a.Authenticate("boss", "s3cret"); err != nil {
		t.Errorf("Authenticate with hashed password failed: %v", err)
	}
	if err := a.Authenticate("boss", "ignored"); err == nil {
		t.Error("plain password should be ignored when a hash is configured")
	}
}

func TestNewAdminAuthenticatorErrors(t *testing.T) {
	if _, err := NewAdminAuthenticator("admin", "", ""); !errors.Is(err, ErrMissingPassword) {
		t.Errorf("error = %v, want ErrMissingPassword", err)
	}
	if _, err := NewAdminAuthenticator("admin", "", "not-a-hash"); err == nil {
		t.Error("expected error for malformed hash")
	}
}
