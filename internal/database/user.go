package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
)

// User is an administrator account. Accounts are provisioned out of band
// (cmd/createuser); there is no self-registration flow.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
}

func (db *Database) GetUserByUsername(ctx context.Context, username string) (User, error) {
	var user User

	err := db.Pool.QueryRow(ctx, `SELECT id, username, password_hash, role, created_at FROM tbl_user WHERE username = $1`, username).
		Scan(&user.ID, &user.Username, &user.PasswordHash, &user.Role, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user, ErrUserNotFound
		}
		return user, fmt.Errorf("database: failed to scan user: %w", err)
	}
	return user, nil
}

type CreateUserParams struct {
	Username     string
	PasswordHash string
	Role         Role
}

func (db *Database) CreateUser(ctx context.Context, params CreateUserParams) (User, error) {
	user := User{
		Username:     params.Username,
		PasswordHash: params.PasswordHash,
		Role:         params.Role,
		CreatedAt:    time.Now().UTC(),
	}

	err := db.Pool.QueryRow(ctx, `INSERT INTO tbl_user (username, password_hash, role, created_at) VALUES ($1, $2, $3, $4) RETURNING id`,
		user.Username, user.PasswordHash, user.Role, user.CreatedAt).Scan(&user.ID)
	if err != nil {
		return user, fmt.Errorf("database: failed to insert user (username=%s): %w", user.Username, err)
	}
	return user, nil
}
