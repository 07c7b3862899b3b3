package api

import (
	"errors"
	"time"

	"osisweb/internal/database"
	"osisweb/internal/program"
	"osisweb/internal/util"

	"github.com/gofiber/fiber/v2"
)

const prokerNotFoundMessage = "Proker tidak ditemukan atau akses ditolak"

// parseTanggal accepts the two timestamp shapes the frontend sends: a bare
// date from the form picker or a full RFC 3339 timestamp.
func parseTanggal(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}

// GetAllProker lists the caller's work programs, newest start date first.
func (h *Handler) GetAllProker(c *fiber.Ctx) error {
	actor, ok := h.actor(c)
	if !ok {
		return errorResponse(c, fiber.StatusUnauthorized, "Otorisasi ditolak, token tidak ada")
	}

	prokers, err := h.programs.List(c.Context(), actor.Role)
	if err != nil {
		return h.serverError(c, "Terjadi kesalahan pada server", err)
	}

	return c.JSON(newProkerListResponse(prokers))
}

type createProkerForm struct {
	Nama         string `validate:"required"`
	Deskripsi    string `validate:"required"`
	TanggalMulai string `validate:"required"`
	Divisi       string `validate:"required"`
	Status       string `validate:"omitempty,oneof=Berlangsung Direncanakan Selesai"`
}

// CreateProker adds a work program from a multipart form with up to ten
// image files under the field "gambar".
func (h *Handler) CreateProker(c *fiber.Ctx) error {
	actor, ok := h.actor(c)
	if !ok {
		return errorResponse(c, fiber.StatusUnauthorized, "Otorisasi ditolak, token tidak ada")
	}

	form := createProkerForm{
		Nama:         c.FormValue("nama"),
		Deskripsi:    c.FormValue("deskripsi"),
		TanggalMulai: c.FormValue("tanggal_mulai"),
		Divisi:       c.FormValue("divisi"),
		Status:       c.FormValue("status"),
	}
	if err := h.validator.Validate(form); err != nil {
		return badRequest(c, "Semua field wajib diisi")
	}

	tanggalMulai, err := parseTanggal(form.TanggalMulai)
	if err != nil {
		return badRequest(c, "Format tanggal mulai tidak valid")
	}

	gambar, _, err := h.uploadImages(c, "proker")
	if err != nil {
		if errors.Is(err, errTooManyImages) {
			return badRequest(c, "Maksimal 10 gambar per unggahan")
		}
		return h.serverError(c, "Gagal membuat proker", err)
	}

	proker, err := h.programs.Create(c.Context(), actor.Role, program.CreateParams{
		Nama:         form.Nama,
		Deskripsi:    form.Deskripsi,
		TanggalMulai: tanggalMulai,
		Gambar:       gambar,
		Divisi:       form.Divisi,
		Status:       database.ProkerStatus(form.Status),
	})
	if err != nil {
		return h.serverError(c, "Gagal membuat proker", err)
	}

	return c.Status(fiber.StatusCreated).JSON(newProkerResponse(proker))
}

// UpdateProker partially updates one of the caller's programs. The image
// list is replaced only when the request carries new files.
func (h *Handler) UpdateProker(c *fiber.Ctx) error {
	actor, ok := h.actor(c)
	if !ok {
		return errorResponse(c, fiber.StatusUnauthorized, "Otorisasi ditolak, token tidak ada")
	}

	id, err := paramID(c)
	if err != nil {
		return notFound(c, prokerNotFoundMessage)
	}

	form, err := c.MultipartForm()
	if err != nil {
		return badRequest(c, "Format permintaan tidak valid")
	}

	params := program.UpdateParams{
		Nama:      formField(form, "nama"),
		Deskripsi: formField(form, "deskripsi"),
		Divisi:    formField(form, "divisi"),
	}

	if raw := formField(form, "tanggal_mulai"); raw.IsSet {
		tanggalMulai, err := parseTanggal(raw.Val)
		if err != nil {
			return badRequest(c, "Format tanggal mulai tidak valid")
		}
		params.TanggalMulai = util.Some(tanggalMulai)
	}

	if raw := formField(form, "status"); raw.IsSet {
		switch status := database.ProkerStatus(raw.Val); status {
		case database.ProkerStatusBerlangsung, database.ProkerStatusDirencanakan, database.ProkerStatusSelesai:
			params.Status = util.Some(status)
		default:
			return badRequest(c, "Status proker tidak valid")
		}
	}

	gambar, uploaded, err := h.uploadImages(c, "proker")
	if err != nil {
		if errors.Is(err, errTooManyImages) {
			return badRequest(c, "Maksimal 10 gambar per unggahan")
		}
		return h.serverError(c, "Gagal memperbarui proker", err)
	}
	if uploaded {
		params.Gambar = util.Some(gambar)
	}

	proker, err := h.programs.Update(c.Context(), actor.Role, id, params)
	if err != nil {
		if errors.Is(err, database.ErrProkerNotFound) {
			return notFound(c, prokerNotFoundMessage)
		}
		return h.serverError(c, "Gagal memperbarui proker", err)
	}

	return c.JSON(newProkerResponse(proker))
}

// DeleteProker removes one of the caller's programs.
func (h *Handler) DeleteProker(c *fiber.Ctx) error {
	actor, ok := h.actor(c)
	if !ok {
		return errorResponse(c, fiber.StatusUnauthorized, "Otorisasi ditolak, token tidak ada")
	}

	id, err := paramID(c)
	if err != nil {
		return notFound(c, prokerNotFoundMessage)
	}

	if err := h.programs.Delete(c.Context(), actor.Role, id); err != nil {
		if errors.Is(err, database.ErrProkerNotFound) {
			return notFound(c, prokerNotFoundMessage)
		}
		return h.serverError(c, "Gagal menghapus proker", err)
	}

	return c.JSON(fiber.Map{"message": "Proker berhasil dihapus"})
}
