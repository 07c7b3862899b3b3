package api

import (
	"errors"

	"osisweb/internal/database"

	"github.com/gofiber/fiber/v2"
)

const qnaNotFoundMessage = "Pertanyaan tidak ditemukan atau akses ditolak"

// GetUnansweredQuestions lists the caller's questions that have no reply
// yet, oldest first.
func (h *Handler) GetUnansweredQuestions(c *fiber.Ctx) error {
	actor, ok := h.actor(c)
	if !ok {
		return errorResponse(c, fiber.StatusUnauthorized, "Otorisasi ditolak, token tidak ada")
	}

	questions, err := h.qna.Unanswered(c.Context(), actor.Role)
	if err != nil {
		return h.serverError(c, "Terjadi kesalahan pada server", err)
	}

	return c.JSON(newQnaListResponse(questions))
}

type answerRequest struct {
	Jawaban string `json:"jawaban"`
}

// AnswerQuestion appends a reply to one of the caller's questions.
// Answering twice keeps both replies in order; the combined jawaban field
// in the response joins them for older clients.
func (h *Handler) AnswerQuestion(c *fiber.Ctx) error {
	actor, ok := h.actor(c)
	if !ok {
		return errorResponse(c, fiber.StatusUnauthorized, "Otorisasi ditolak, token tidak ada")
	}

	id, err := paramID(c)
	if err != nil {
		return notFound(c, qnaNotFoundMessage)
	}

	var req answerRequest
	if err := c.BodyParser(&req); err != nil || req.Jawaban == "" {
		return badRequest(c, "Jawaban tidak boleh kosong")
	}

	question, err := h.qna.Answer(c.Context(), actor.Role, id, req.Jawaban)
	if err != nil {
		if errors.Is(err, database.ErrQnaNotFound) {
			return notFound(c, qnaNotFoundMessage)
		}
		return h.serverError(c, "Gagal menjawab pertanyaan", err)
	}

	return c.JSON(newQnaResponse(question))
}

// DeleteQuestion removes one of the caller's questions and its replies.
func (h *Handler) DeleteQuestion(c *fiber.Ctx) error {
	actor, ok := h.actor(c)
	if !ok {
		return errorResponse(c, fiber.StatusUnauthorized, "Otorisasi ditolak, token tidak ada")
	}

	id, err := paramID(c)
	if err != nil {
		return notFound(c, qnaNotFoundMessage)
	}

	if err := h.qna.Delete(c.Context(), actor.Role, id); err != nil {
		if errors.Is(err, database.ErrQnaNotFound) {
			return notFound(c, qnaNotFoundMessage)
		}
		return h.serverError(c, "Gagal menghapus pertanyaan", err)
	}

	return c.JSON(fiber.Map{"message": "Pertanyaan berhasil dihapus"})
}
