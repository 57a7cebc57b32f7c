package auth

import (
	"errors"
	"testing"
	"time"

	"business-dashboard-backend/internal/models"
	"business-dashboard-backend/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeUserStore struct {
	users           map[string]*models.User
	ErrorOnNextCall error
}

func (f *fakeUserStore) GetByEmail(email string) (*models.User, error) {
	if f.ErrorOnNextCall != nil {
		err := f.ErrorOnNextCall
		f.ErrorOnNextCall = nil
		return nil, err
	}
	u, ok := f.users[email]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return u, nil
}

var testSecret = []byte("test-secret")

func newTestService(t *testing.T) (*Service, *fakeUserStore) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)

	store := &fakeUserStore{users: map[string]*models.User{
		"admin@example.com": {
			ID:           uuid.New(),
			Email:        "admin@example.com",
			PasswordHash: string(hash),
		},
	}}
	return NewService(NewCredentialsProvider(store), testSecret), store
}

func TestLogin_IssuesToken(t *testing.T) {
	svc, store := newTestService(t)

	token, message, err := svc.Login("admin@example.com", "password123")
	require.NoError(t, err)
	assert.Empty(t, message)
	require.NotEmpty(t, token)

	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return testSecret, nil
	})
	require.NoError(t, err)
	assert.True(t, parsed.Valid)
	assert.Equal(t, store.users["admin@example.com"].ID.String(), claims.UserID)
	assert.Equal(t, "admin@example.com", claims.Email)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, _ := newTestService(t)

	token, message, err := svc.Login("admin@example.com", "wrong")
	require.NoError(t, err)
	assert.Empty(t, token)
	assert.Equal(t, "Invalid credentials.", message)
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc, _ := newTestService(t)

	_, message, err := svc.Login("nobody@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, "Invalid credentials.", message)
}

func TestLogin_ProviderFaultIsGenericMessage(t *testing.T) {
	svc, store := newTestService(t)
	store.ErrorOnNextCall = errors.New("connection reset")

	_, message, err := svc.Login("admin@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, "Something went wrong.", message)
}

// uncategorizedProvider fails with a plain error the service must not
// translate.
type uncategorizedProvider struct{}

func (uncategorizedProvider) Authenticate(email, password string) (*models.User, error) {
	return nil, errors.New("boom")
}

func TestLogin_UncategorizedErrorPropagates(t *testing.T) {
	svc := NewService(uncategorizedProvider{}, testSecret)

	_, message, err := svc.Login("admin@example.com", "password123")
	assert.Empty(t, message)
	require.Error(t, err)
	assert.Equal(t, "boom", err.Error())
}
