package api

import (
	"github.com/gofiber/fiber/v2"
)

// Healthy reports service health, which for this service means the
// database answers a ping.
func (h *Handler) Healthy(c *fiber.Ctx) error {
	if err := h.db.Ping(c.Context()); err != nil {
		h.logger.ErrorContext(c.Context(), "database connection failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status":  "unhealthy",
			"message": "Database connection failed",
		})
	}

	return c.JSON(fiber.Map{
		"status":  "healthy",
		"message": "Service is healthy",
	})
}
