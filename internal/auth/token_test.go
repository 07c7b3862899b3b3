package auth

import (
	"testing"
	"time"

	"osisweb/internal/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testUser = database.User{
	ID:       42,
	Username: "admin_osis",
	Role:     database.RoleOSIS,
}

func TestTokenRoundTrip(t *testing.T) {
	secret := []byte("test-secret")

	token, err := IssueToken(secret, testUser, time.Hour)
	require.NoError(t, err)

	actor, err := VerifyToken(secret, token)
	require.NoError(t, err)

	assert.Equal(t, int64(42), actor.UserID)
	assert.Equal(t, "admin_osis", actor.Username)
	assert.Equal(t, database.RoleOSIS, actor.Role)
}

func TestVerifyTokenRejectsWrongSecret(t *testing.T) {
	token, err := IssueToken([]byte("secret-a"), testUser, time.Hour)
	require.NoError(t, err)

	_, err = VerifyToken([]byte("secret-b"), token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestVerifyTokenRejectsExpired(t *testing.T) {
	secret := []byte("test-secret")

	token, err := IssueToken(secret, testUser, -time.Minute)
	require.NoError(t, err)

	_, err = VerifyToken(secret, token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestVerifyTokenRejectsGarbage(t *testing.T) {
	_, err := VerifyToken([]byte("test-secret"), "not.a.token")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestVerifyTokenRejectsUnknownRole(t *testing.T) {
	secret := []byte("test-secret")

	bad := testUser
	bad.Role = "SUPERADMIN"
	token, err := IssueToken(secret, bad, time.Hour)
	require.NoError(t, err)

	_, err = VerifyToken(secret, token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
