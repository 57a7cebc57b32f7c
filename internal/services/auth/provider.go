package auth

import (
	"errors"
	"fmt"

	"business-dashboard-backend/internal/models"
	"business-dashboard-backend/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

// Error kinds the provider categorizes. Anything it does not wrap in an
// *Error propagates untouched.
const (
	KindInvalidCredentials = "CredentialsSignin"
	KindProviderFault      = "CallbackRouteError"
)

// Error is a categorized authentication failure.
type Error struct {
	Kind string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("auth: %s: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("auth: %s", e.Kind)
}

func (e *Error) Unwrap() error { return e.Err }

type UserStore interface {
	GetByEmail(email string) (*models.User, error)
}

// CredentialsProvider verifies an email/password pair against the users
// table. It is the "credentials" identity provider the login form talks to.
type CredentialsProvider struct {
	users UserStore
}

func NewCredentialsProvider(users UserStore) *CredentialsProvider {
	return &CredentialsProvider{users: users}
}

// Authenticate returns the matching user, an *Error for every failure it
// can categorize, and wraps store faults as provider faults.
func (p *CredentialsProvider) Authenticate(email, password string) (*models.User, error) {
	user, err := p.users.GetByEmail(email)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, &Error{Kind: KindInvalidCredentials}
	}
	if err != nil {
		return nil, &Error{Kind: KindProviderFault, Err: err}
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, &Error{Kind: KindInvalidCredentials}
	}

	return user, nil
}

// HashPassword is used by the seed path when creating logins.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}
