package middleware

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"
	"time"

	"osisweb/internal/auth"
	"osisweb/internal/database"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type singleUserStore struct {
	user database.User
}

func (s *singleUserStore) GetUserByUsername(_ context.Context, username string) (database.User, error) {
	if username != s.user.Username {
		return database.User{}, database.ErrUserNotFound
	}
	return s.user, nil
}

func newTestApp(t *testing.T) (*fiber.App, string) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("rahasia123"), bcrypt.MinCost)
	require.NoError(t, err)

	store := &singleUserStore{user: database.User{
		ID:           1,
		Username:     "admin_mpk",
		PasswordHash: string(hash),
		Role:         database.RoleMPK,
	}}
	authenticator := auth.NewAuthenticator(slog.New(slog.DiscardHandler), store, "test-secret", time.Hour)

	token, _, err := authenticator.Login(context.Background(), "admin_mpk", "rahasia123")
	require.NoError(t, err)

	app := fiber.New()
	app.Get("/private", RequireAuth(&authenticator), func(c *fiber.Ctx) error {
		actor, ok := ActorFromCtx(c)
		if !ok {
			return c.SendStatus(fiber.StatusInternalServerError)
		}
		return c.JSON(fiber.Map{"username": actor.Username, "role": actor.Role})
	})

	return app, token
}

func TestRequireAuthMissingHeader(t *testing.T) {
	app, _ := newTestApp(t)

	req := httptest.NewRequest("GET", "/private", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"error": "Otorisasi ditolak, token tidak ada"}`, string(body))
}

func TestRequireAuthBadHeaderFormat(t *testing.T) {
	app, token := newTestApp(t)

	req := httptest.NewRequest("GET", "/private", nil)
	req.Header.Set("Authorization", token)
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestRequireAuthInvalidToken(t *testing.T) {
	app, _ := newTestApp(t)

	req := httptest.NewRequest("GET", "/private", nil)
	req.Header.Set("Authorization", "Bearer not.a.token")
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestRequireAuthSetsActor(t *testing.T) {
	app, token := newTestApp(t)

	req := httptest.NewRequest("GET", "/private", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Username string `json:"username"`
		Role     string `json:"role"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "admin_mpk", body.Username)
	assert.Equal(t, "MPK", body.Role)
}
