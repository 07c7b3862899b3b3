package auth

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"osisweb/internal/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeUserStore struct {
	users map[string]database.User
}

func (s *fakeUserStore) GetUserByUsername(_ context.Context, username string) (database.User, error) {
	user, ok := s.users[username]
	if !ok {
		return database.User{}, database.ErrUserNotFound
	}
	return user, nil
}

func newTestAuthenticator(t *testing.T) Authenticator {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("rahasia123"), bcrypt.MinCost)
	require.NoError(t, err)

	store := &fakeUserStore{users: map[string]database.User{
		"admin_osis": {
			ID:           1,
			Username:     "admin_osis",
			PasswordHash: string(hash),
			Role:         database.RoleOSIS,
		},
	}}

	return NewAuthenticator(slog.New(slog.DiscardHandler), store, "test-secret", time.Hour)
}

func TestLoginSuccess(t *testing.T) {
	authenticator := newTestAuthenticator(t)

	token, role, err := authenticator.Login(context.Background(), "admin_osis", "rahasia123")
	require.NoError(t, err)
	assert.Equal(t, database.RoleOSIS, role)

	actor, err := authenticator.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, database.RoleOSIS, actor.Role)
	assert.Equal(t, "admin_osis", actor.Username)
}

// Unknown username and wrong password must be indistinguishable so the
// login endpoint cannot be used to enumerate accounts.
func TestLoginFailuresIndistinguishable(t *testing.T) {
	authenticator := newTestAuthenticator(t)
	ctx := context.Background()

	_, _, unknownUserErr := authenticator.Login(ctx, "nobody", "rahasia123")
	_, _, wrongPasswordErr := authenticator.Login(ctx, "admin_osis", "salah")

	assert.ErrorIs(t, unknownUserErr, ErrInvalidCredentials)
	assert.ErrorIs(t, wrongPasswordErr, ErrInvalidCredentials)
	assert.Equal(t, unknownUserErr.Error(), wrongPasswordErr.Error())
}
