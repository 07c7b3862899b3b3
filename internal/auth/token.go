package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"osisweb/internal/database"

	"github.com/golang-jwt/jwt/v5"
)

// ErrTokenInvalid covers every verification failure: bad signature, wrong
// algorithm, malformed token, expiry. Callers treat it as "discard the
// token and log in again".
var ErrTokenInvalid = errors.New("auth: token invalid")

// Claims is the self-contained identity carried by a bearer token. No
// session state exists server-side.
type Claims struct {
	Username string        `json:"username"`
	Role     database.Role `json:"role"`
	jwt.RegisteredClaims
}

// Actor is the authenticated identity attached to a request. Its Role is
// the only scoping predicate private operations may use.
type Actor struct {
	UserID   int64
	Username string
	Role     database.Role
}

// IssueToken signs a token for the user, valid for ttl from now.
func IssueToken(secret []byte, user database.User, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		Username: user.Username,
		Role:     user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(user.ID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("auth: failed to sign token: %w", err)
	}
	return signed, nil
}

// VerifyToken checks signature and expiry and returns the actor the token
// identifies.
func VerifyToken(secret []byte, tokenString string) (Actor, error) {
	var claims Claims

	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return Actor{}, ErrTokenInvalid
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return Actor{}, ErrTokenInvalid
	}

	if _, err := database.ParseRole(string(claims.Role)); err != nil {
		return Actor{}, ErrTokenInvalid
	}

	return Actor{
		UserID:   userID,
		Username: claims.Username,
		Role:     claims.Role,
	}, nil
}
