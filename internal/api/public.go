package api

import (
	"errors"
	"strconv"

	"osisweb/internal/database"
	"osisweb/internal/qna"
	"osisweb/internal/ratelimit"

	"github.com/gofiber/fiber/v2"
)

// The public surface is unauthenticated and, except for question
// submission, read-only. Lists span both organizations; the frontend
// filters per organization itself.

func (h *Handler) GetPublicProker(c *fiber.Ctx) error {
	prokers, err := h.programs.ListPublic(c.Context())
	if err != nil {
		return h.serverError(c, "Terjadi kesalahan pada server", err)
	}
	return c.JSON(newProkerListResponse(prokers))
}

// GetPublicProkerByID fetches one program by raw id, no role filter.
func (h *Handler) GetPublicProkerByID(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return notFound(c, "Proker tidak ditemukan")
	}

	proker, err := h.db.GetProkerByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, database.ErrProkerNotFound) {
			return notFound(c, "Proker tidak ditemukan")
		}
		return h.serverError(c, "Terjadi kesalahan pada server", err)
	}

	return c.JSON(newProkerResponse(proker))
}

func (h *Handler) GetPublicBerita(c *fiber.Ctx) error {
	beritas, err := h.news.ListPublic(c.Context())
	if err != nil {
		return h.serverError(c, "Terjadi kesalahan pada server", err)
	}
	return c.JSON(newBeritaListResponse(beritas))
}

func (h *Handler) GetPublicBeritaByID(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return notFound(c, "Berita tidak ditemukan")
	}

	berita, err := h.db.GetBeritaByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, database.ErrBeritaNotFound) {
			return notFound(c, "Berita tidak ditemukan")
		}
		return h.serverError(c, "Terjadi kesalahan pada server", err)
	}

	return c.JSON(newBeritaResponse(berita))
}

// GetPublicMembers returns both organizations' members unfiltered; with
// ?grouped=1 they come back bucketed in display order.
func (h *Handler) GetPublicMembers(c *fiber.Ctx) error {
	members, err := h.members.ListPublic(c.Context())
	if err != nil {
		return h.serverError(c, "Terjadi kesalahan pada server", err)
	}

	if c.Query("grouped") == "1" {
		return c.JSON(groupedResponse(members))
	}
	return c.JSON(newMemberListResponse(members))
}

func (h *Handler) GetPublicSettings(c *fiber.Ctx) error {
	rows, err := h.settings.ListPublic(c.Context())
	if err != nil {
		return h.serverError(c, "Terjadi kesalahan pada server", err)
	}
	return c.JSON(newSettingListResponse(rows))
}

type submitQuestionRequest struct {
	ItemID      int64  `json:"item_id" validate:"required"`
	ItemType    string `json:"item_type" validate:"required,oneof=proker berita"`
	NamaPenanya string `json:"nama_penanya" validate:"required"`
	Pertanyaan  string `json:"pertanyaan" validate:"required"`
	// The one client-supplied role in the system: the visitor says which
	// organization the question targets. Arbitrary strings are rejected.
	Role string `json:"role" validate:"required,orgrole"`
}

// SubmitQuestion files a visitor question from the public site.
func (h *Handler) SubmitQuestion(c *fiber.Ctx) error {
	var req submitQuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Semua field wajib diisi")
	}
	if err := h.validator.Validate(req); err != nil {
		return badRequest(c, "Semua field wajib diisi")
	}

	if err := h.limiter.CheckAsk(c.Context(), c.IP()); err != nil {
		if errors.Is(err, ratelimit.ErrTooManyAttempts) {
			return errorResponse(c, fiber.StatusTooManyRequests, "Terlalu banyak pertanyaan, coba lagi nanti")
		}
		return h.serverError(c, "Gagal mengirim pertanyaan", err)
	}

	role, err := database.ParseRole(req.Role)
	if err != nil {
		return badRequest(c, "Semua field wajib diisi")
	}
	itemType, err := database.ParseQnaItemType(req.ItemType)
	if err != nil {
		return badRequest(c, "Semua field wajib diisi")
	}

	question, err := h.qna.Submit(c.Context(), qna.SubmitParams{
		ItemID:      req.ItemID,
		ItemType:    itemType,
		NamaPenanya: req.NamaPenanya,
		Pertanyaan:  req.Pertanyaan,
		Role:        role,
	})
	if err != nil {
		return h.serverError(c, "Gagal mengirim pertanyaan", err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Pertanyaan berhasil dikirim!",
		"data":    newQnaResponse(question),
	})
}

// GetPublicQnaByItem returns the thread for one proker/berita item, oldest
// first, replies reconstructed in order.
func (h *Handler) GetPublicQnaByItem(c *fiber.Ctx) error {
	itemType, err := database.ParseQnaItemType(c.Params("item_type"))
	if err != nil {
		return badRequest(c, "Tipe item tidak valid")
	}

	itemID, err := strconv.ParseInt(c.Params("item_id"), 10, 64)
	if err != nil {
		return badRequest(c, "ID item tidak valid")
	}

	questions, err := h.qna.ListByItem(c.Context(), itemType, itemID)
	if err != nil {
		return h.serverError(c, "Gagal mengambil data Q&A", err)
	}

	return c.JSON(newQnaListResponse(questions))
}
