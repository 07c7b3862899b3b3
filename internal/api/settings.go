package api

import (
	"errors"

	"osisweb/internal/database"

	"github.com/gofiber/fiber/v2"
)

// GetTahunKepengurusan returns the caller's active period setting.
func (h *Handler) GetTahunKepengurusan(c *fiber.Ctx) error {
	actor, ok := h.actor(c)
	if !ok {
		return errorResponse(c, fiber.StatusUnauthorized, "Otorisasi ditolak, token tidak ada")
	}

	setting, err := h.settings.GetTahun(c.Context(), actor.Role)
	if err != nil {
		if errors.Is(err, database.ErrSettingNotFound) {
			return notFound(c, "Pengaturan tahun kepengurusan tidak ditemukan")
		}
		return h.serverError(c, "Terjadi kesalahan pada server", err)
	}

	return c.JSON(newSettingResponse(setting))
}

type updateTahunRequest struct {
	Nilai string `json:"nilai"`
}

// UpdateTahunKepengurusan sets the caller's active period. A missing row
// is a 404, never an insert.
func (h *Handler) UpdateTahunKepengurusan(c *fiber.Ctx) error {
	actor, ok := h.actor(c)
	if !ok {
		return errorResponse(c, fiber.StatusUnauthorized, "Otorisasi ditolak, token tidak ada")
	}

	var req updateTahunRequest
	if err := c.BodyParser(&req); err != nil || req.Nilai == "" {
		return badRequest(c, "Nilai tahun kepengurusan tidak boleh kosong")
	}

	setting, err := h.settings.UpdateTahun(c.Context(), actor.Role, req.Nilai)
	if err != nil {
		if errors.Is(err, database.ErrSettingNotFound) {
			return notFound(c, "Pengaturan untuk diperbarui tidak ditemukan")
		}
		return h.serverError(c, "Gagal memperbarui pengaturan", err)
	}

	return c.JSON(newSettingResponse(setting))
}
