package middleware

import (
	"strings"

	"osisweb/internal/auth"

	"github.com/gofiber/fiber/v2"
)

const actorLocalKey = "actor"

// RequireAuth guards every private route. It is the only place a request's
// role is established: handlers must read the role from the verified actor
// in locals, never from a client-supplied field.
func RequireAuth(authenticator *auth.Authenticator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" {
			return unauthenticated(c, "Otorisasi ditolak, token tidak ada")
		}

		tokenString := strings.TrimPrefix(header, "Bearer ")
		if tokenString == header {
			return unauthenticated(c, "Format header Authorization tidak valid")
		}

		actor, err := authenticator.Verify(tokenString)
		if err != nil {
			return unauthenticated(c, "Token tidak valid atau kedaluwarsa")
		}

		c.Locals(actorLocalKey, actor)
		return c.Next()
	}
}

// ActorFromCtx returns the actor set by RequireAuth.
func ActorFromCtx(c *fiber.Ctx) (auth.Actor, bool) {
	actor, ok := c.Locals(actorLocalKey).(auth.Actor)
	return actor, ok
}

func unauthenticated(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": message})
}
