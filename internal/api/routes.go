package api

import (
	"osisweb/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes mounts the whole HTTP surface under /api. The public
// group carries no auth; everything else requires a bearer token.
func (h *Handler) RegisterRoutes(app *fiber.App) {
	api := app.Group("/api")

	api.Get("/health", h.Healthy)
	api.Post("/auth/login", h.Login)

	public := api.Group("/public")
	public.Get("/proker", h.GetPublicProker)
	public.Get("/proker/:id", h.GetPublicProkerByID)
	public.Get("/berita", h.GetPublicBerita)
	public.Get("/berita/:id", h.GetPublicBeritaByID)
	public.Get("/members", h.GetPublicMembers)
	public.Get("/settings", h.GetPublicSettings)
	public.Post("/qna", h.SubmitQuestion)
	public.Get("/qna/:item_type/:item_id", h.GetPublicQnaByItem)

	private := api.Group("", middleware.RequireAuth(h.authenticator))

	private.Get("/proker", h.GetAllProker)
	private.Post("/proker", h.CreateProker)
	private.Put("/proker/:id", h.UpdateProker)
	private.Delete("/proker/:id", h.DeleteProker)

	private.Get("/berita", h.GetAllBerita)
	private.Post("/berita", h.CreateBerita)
	private.Put("/berita/:id", h.UpdateBerita)
	private.Delete("/berita/:id", h.DeleteBerita)

	private.Get("/members", h.GetAllMembers)
	private.Post("/members", h.CreateMember)
	private.Put("/members/:id", h.UpdateMember)
	private.Delete("/members/:id", h.DeleteMember)

	private.Get("/qna/unanswered", h.GetUnansweredQuestions)
	private.Put("/qna/:id", h.AnswerQuestion)
	private.Delete("/qna/:id", h.DeleteQuestion)

	private.Get("/settings/tahun", h.GetTahunKepengurusan)
	private.Put("/settings/tahun", h.UpdateTahunKepengurusan)
}
