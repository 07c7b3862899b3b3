package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"osisweb/internal/database"

	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials covers both unknown username and wrong password.
// The two must stay indistinguishable to the caller so usernames cannot be
// enumerated through the login endpoint.
var ErrInvalidCredentials = errors.New("auth: invalid credentials")

type Store interface {
	GetUserByUsername(ctx context.Context, username string) (database.User, error)
}

type Authenticator struct {
	logger *slog.Logger
	store  Store
	secret []byte
	ttl    time.Duration
}

func NewAuthenticator(logger *slog.Logger, store Store, secret string, ttl time.Duration) Authenticator {
	return Authenticator{
		logger: logger,
		store:  store,
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// Login verifies the credentials and issues a signed token carrying the
// account's identity and role. No server-side state is created.
func (a *Authenticator) Login(ctx context.Context, username, password string) (string, database.Role, error) {
	user, err := a.store.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, database.ErrUserNotFound) {
			return "", "", ErrInvalidCredentials
		}
		return "", "", fmt.Errorf("auth: failed to get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", "", ErrInvalidCredentials
	}

	token, err := IssueToken(a.secret, user, a.ttl)
	if err != nil {
		return "", "", err
	}

	a.logger.Info("user logged in", "username", user.Username, "role", user.Role)

	return token, user.Role, nil
}

// Verify checks a bearer token string.
func (a *Authenticator) Verify(tokenString string) (Actor, error) {
	return VerifyToken(a.secret, tokenString)
}
