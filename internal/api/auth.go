package api

import (
	"errors"

	"osisweb/internal/auth"
	"osisweb/internal/ratelimit"

	"github.com/gofiber/fiber/v2"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login exchanges credentials for a signed token. Unknown username and
// wrong password answer with the same body.
func (h *Handler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Username dan password tidak boleh kosong")
	}

	if req.Username == "" || req.Password == "" {
		return badRequest(c, "Username dan password tidak boleh kosong")
	}

	if err := h.limiter.CheckLogin(c.Context(), req.Username); err != nil {
		if errors.Is(err, ratelimit.ErrTooManyAttempts) {
			return errorResponse(c, fiber.StatusTooManyRequests, "Terlalu banyak percobaan login, coba lagi nanti")
		}
		return h.serverError(c, "Terjadi kesalahan pada server", err)
	}

	token, role, err := h.authenticator.Login(c.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			return errorResponse(c, fiber.StatusUnauthorized, "Username atau password salah")
		}
		return h.serverError(c, "Terjadi kesalahan pada server", err)
	}

	return c.JSON(fiber.Map{
		"token": token,
		"role":  role,
	})
}
