package api

import (
	"errors"

	"osisweb/internal/database"
	"osisweb/internal/news"
	"osisweb/internal/util"

	"github.com/gofiber/fiber/v2"
)

const beritaNotFoundMessage = "Berita tidak ditemukan atau akses ditolak"

// GetAllBerita lists the caller's news posts, newest publication first.
func (h *Handler) GetAllBerita(c *fiber.Ctx) error {
	actor, ok := h.actor(c)
	if !ok {
		return errorResponse(c, fiber.StatusUnauthorized, "Otorisasi ditolak, token tidak ada")
	}

	beritas, err := h.news.List(c.Context(), actor.Role)
	if err != nil {
		return h.serverError(c, "Terjadi kesalahan pada server", err)
	}

	return c.JSON(newBeritaListResponse(beritas))
}

// CreateBerita publishes a news post immediately; images arrive as
// multipart files under "gambar".
func (h *Handler) CreateBerita(c *fiber.Ctx) error {
	actor, ok := h.actor(c)
	if !ok {
		return errorResponse(c, fiber.StatusUnauthorized, "Otorisasi ditolak, token tidak ada")
	}

	judul := c.FormValue("judul")
	konten := c.FormValue("konten")
	if judul == "" || konten == "" {
		return badRequest(c, "Judul dan konten tidak boleh kosong")
	}

	gambar, _, err := h.uploadImages(c, "berita")
	if err != nil {
		if errors.Is(err, errTooManyImages) {
			return badRequest(c, "Maksimal 10 gambar per unggahan")
		}
		return h.serverError(c, "Gagal membuat berita", err)
	}

	berita, err := h.news.Create(c.Context(), actor.Role, news.CreateParams{
		Judul:  judul,
		Konten: konten,
		Gambar: gambar,
	})
	if err != nil {
		return h.serverError(c, "Gagal membuat berita", err)
	}

	return c.Status(fiber.StatusCreated).JSON(newBeritaResponse(berita))
}

// UpdateBerita partially updates one of the caller's posts; the image list
// is replaced only when the request carries new files.
func (h *Handler) UpdateBerita(c *fiber.Ctx) error {
	actor, ok := h.actor(c)
	if !ok {
		return errorResponse(c, fiber.StatusUnauthorized, "Otorisasi ditolak, token tidak ada")
	}

	id, err := paramID(c)
	if err != nil {
		return notFound(c, beritaNotFoundMessage)
	}

	form, err := c.MultipartForm()
	if err != nil {
		return badRequest(c, "Format permintaan tidak valid")
	}

	params := news.UpdateParams{
		Judul:  formField(form, "judul"),
		Konten: formField(form, "konten"),
	}

	gambar, uploaded, err := h.uploadImages(c, "berita")
	if err != nil {
		if errors.Is(err, errTooManyImages) {
			return badRequest(c, "Maksimal 10 gambar per unggahan")
		}
		return h.serverError(c, "Gagal memperbarui berita", err)
	}
	if uploaded {
		params.Gambar = util.Some(gambar)
	}

	berita, err := h.news.Update(c.Context(), actor.Role, id, params)
	if err != nil {
		if errors.Is(err, database.ErrBeritaNotFound) {
			return notFound(c, beritaNotFoundMessage)
		}
		return h.serverError(c, "Gagal memperbarui berita", err)
	}

	return c.JSON(newBeritaResponse(berita))
}

// DeleteBerita removes one of the caller's posts.
func (h *Handler) DeleteBerita(c *fiber.Ctx) error {
	actor, ok := h.actor(c)
	if !ok {
		return errorResponse(c, fiber.StatusUnauthorized, "Otorisasi ditolak, token tidak ada")
	}

	id, err := paramID(c)
	if err != nil {
		return notFound(c, beritaNotFoundMessage)
	}

	if err := h.news.Delete(c.Context(), actor.Role, id); err != nil {
		if errors.Is(err, database.ErrBeritaNotFound) {
			return notFound(c, beritaNotFoundMessage)
		}
		return h.serverError(c, "Gagal menghapus berita", err)
	}

	return c.JSON(fiber.Map{"message": "Berita berhasil dihapus"})
}
