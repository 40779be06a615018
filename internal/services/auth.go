// Package services contains the application services sitting between the
// shell and the repositories: authentication and bulk import.
package services

import (
	"context"
	"crypto/subtle"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrijs2005/studentdesk/internal/common"
	"github.com/dmitrijs2005/studentdesk/internal/models"
	"github.com/dmitrijs2005/studentdesk/internal/repositories/users"
)

// CredentialVerifier compares a stored credential against a supplied
// password. The store keeps passwords verbatim today; this interface is the
// seam for swapping in a salted-hash comparison without touching callers.
type CredentialVerifier interface {
	Verify(stored, supplied string) bool
}

// PlaintextVerifier matches the stored credential exactly. This is the
// scheme the application ships with.
type PlaintextVerifier struct{}

func (PlaintextVerifier) Verify(stored, supplied string) bool {
	return subtle.ConstantTimeCompare([]byte(stored), []byte(supplied)) == 1
}

// BcryptVerifier verifies credentials stored as bcrypt hashes produced by
// HashPassword. It satisfies the same interface so a future migration only
// changes the verifier handed to NewAuthService.
type BcryptVerifier struct{}

func (BcryptVerifier) Verify(stored, supplied string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(supplied)) == nil
}

// HashPassword produces a bcrypt hash suitable for BcryptVerifier.
func HashPassword(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// AuthService answers the single authentication question of the login gate.
type AuthService struct {
	users    users.Repository
	verifier CredentialVerifier
}

// NewAuthService builds an AuthService. A nil verifier selects the plaintext
// scheme.
func NewAuthService(repo users.Repository, v CredentialVerifier) *AuthService {
	if v == nil {
		v = PlaintextVerifier{}
	}
	return &AuthService{users: repo, verifier: v}
}

// Authenticate reports whether the supplied credentials match a stored user.
// An unknown username is a plain false, not an error.
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (bool, error) {
	u, err := s.users.GetByUsername(ctx, username)
	if errors.Is(err, common.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return s.verifier.Verify(u.Password, password), nil
}

// Register validates and stores a new login credential, returning its id.
func (s *AuthService) Register(ctx context.Context, username, password string) (int64, error) {
	u, err := models.NewUser(username, password)
	if err != nil {
		return 0, err
	}
	return s.users.Add(ctx, u)
}

// UserCount returns the number of stored credentials.
func (s *AuthService) UserCount(ctx context.Context) (int, error) {
	return s.users.Count(ctx)
}
