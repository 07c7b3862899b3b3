package api

import (
	"errors"

	"osisweb/internal/database"
	"osisweb/internal/member"
	"osisweb/internal/util"

	"github.com/gofiber/fiber/v2"
)

const memberNotFoundMessage = "Anggota tidak ditemukan atau akses ditolak"

// GetAllMembers lists the caller's members in ranked order. With
// ?grouped=1 the leadership and general groups come back separately.
func (h *Handler) GetAllMembers(c *fiber.Ctx) error {
	actor, ok := h.actor(c)
	if !ok {
		return errorResponse(c, fiber.StatusUnauthorized, "Otorisasi ditolak, token tidak ada")
	}

	members, err := h.members.List(c.Context(), actor.Role)
	if err != nil {
		return h.serverError(c, "Terjadi kesalahan pada server", err)
	}

	if c.Query("grouped") == "1" {
		return c.JSON(groupedResponse(members))
	}
	return c.JSON(newMemberListResponse(members))
}

func groupedResponse(members []database.Member) groupedMemberResponse {
	buckets := member.Bucketize(members)
	return groupedMemberResponse{
		PengurusInti: newMemberListResponse(buckets.Leadership),
		Anggota:      newMemberListResponse(buckets.General),
	}
}

// CreateMember adds a member; the photo arrives as a single multipart file
// under "url_foto" and falls back to a placeholder.
func (h *Handler) CreateMember(c *fiber.Ctx) error {
	actor, ok := h.actor(c)
	if !ok {
		return errorResponse(c, fiber.StatusUnauthorized, "Otorisasi ditolak, token tidak ada")
	}

	nama := c.FormValue("nama")
	nisn := c.FormValue("nisn")
	jabatan := c.FormValue("jabatan")
	if nama == "" || nisn == "" || jabatan == "" {
		return badRequest(c, "Nama, NISN, dan Jabatan wajib diisi")
	}

	urlFoto, _, err := h.uploadPhoto(c, "members")
	if err != nil {
		return h.serverError(c, "Gagal menambahkan anggota", err)
	}

	created, err := h.members.Create(c.Context(), actor.Role, member.CreateParams{
		Nama:    nama,
		NISN:    nisn,
		Jabatan: jabatan,
		URLFoto: urlFoto,
	})
	if err != nil {
		if errors.Is(err, database.ErrDuplicateNISN) {
			return badRequest(c, "NISN sudah terdaftar")
		}
		return h.serverError(c, "Gagal menambahkan anggota", err)
	}

	return c.Status(fiber.StatusCreated).JSON(newMemberResponse(created))
}

// UpdateMember partially updates one of the caller's members; the photo is
// replaced only when a new file is uploaded.
func (h *Handler) UpdateMember(c *fiber.Ctx) error {
	actor, ok := h.actor(c)
	if !ok {
		return errorResponse(c, fiber.StatusUnauthorized, "Otorisasi ditolak, token tidak ada")
	}

	id, err := paramID(c)
	if err != nil {
		return notFound(c, memberNotFoundMessage)
	}

	form, err := c.MultipartForm()
	if err != nil {
		return badRequest(c, "Format permintaan tidak valid")
	}

	params := member.UpdateParams{
		Nama:    formField(form, "nama"),
		NISN:    formField(form, "nisn"),
		Jabatan: formField(form, "jabatan"),
	}

	if urlFoto, uploaded, err := h.uploadPhoto(c, "members"); err != nil {
		return h.serverError(c, "Gagal memperbarui data anggota", err)
	} else if uploaded {
		params.URLFoto = util.Some(urlFoto)
	}

	updated, err := h.members.Update(c.Context(), actor.Role, id, params)
	if err != nil {
		if errors.Is(err, database.ErrMemberNotFound) {
			return notFound(c, memberNotFoundMessage)
		}
		if errors.Is(err, database.ErrDuplicateNISN) {
			return badRequest(c, "NISN sudah terdaftar")
		}
		return h.serverError(c, "Gagal memperbarui data anggota", err)
	}

	return c.JSON(newMemberResponse(updated))
}

// DeleteMember removes one of the caller's members.
func (h *Handler) DeleteMember(c *fiber.Ctx) error {
	actor, ok := h.actor(c)
	if !ok {
		return errorResponse(c, fiber.StatusUnauthorized, "Otorisasi ditolak, token tidak ada")
	}

	id, err := paramID(c)
	if err != nil {
		return notFound(c, memberNotFoundMessage)
	}

	if err := h.members.Delete(c.Context(), actor.Role, id); err != nil {
		if errors.Is(err, database.ErrMemberNotFound) {
			return notFound(c, memberNotFoundMessage)
		}
		return h.serverError(c, "Gagal menghapus anggota", err)
	}

	return c.JSON(fiber.Map{"message": "Anggota berhasil dihapus"})
}
