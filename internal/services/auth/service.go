// Package auth verifies dashboard logins and issues session tokens.
package auth

import (
	"errors"
	"time"

	"business-dashboard-backend/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

const tokenTTL = 24 * time.Hour

// Claims are the session claims carried in the signed token.
type Claims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

type Provider interface {
	Authenticate(email, password string) (*models.User, error)
}

type Service struct {
	provider Provider
	secret   []byte
	now      func() time.Time
}

func NewService(provider Provider, secret []byte) *Service {
	return &Service{provider: provider, secret: secret, now: time.Now}
}

// Login delegates to the credentials provider and translates its
// categorized failures into fixed user-facing messages. A non-empty message
// means the login form re-renders with it; a non-nil error is one the
// provider did not categorize and propagates to the outer error boundary.
func (s *Service) Login(email, password string) (token, message string, err error) {
	user, err := s.provider.Authenticate(email, password)
	if err != nil {
		var aerr *Error
		if !errors.As(err, &aerr) {
			return "", "", err
		}
		if aerr.Kind == KindInvalidCredentials {
			return "", "Invalid credentials.", nil
		}
		return "", "Something went wrong.", nil
	}

	token, err = s.issueToken(user)
	if err != nil {
		return "", "", err
	}
	return token, "", nil
}

func (s *Service) issueToken(user *models.User) (string, error) {
	now := s.now()
	claims := Claims{
		UserID: user.ID.String(),
		Email:  user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}
