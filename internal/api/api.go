package api

import (
	"log/slog"
	"strconv"

	"osisweb/internal/auth"
	"osisweb/internal/database"
	"osisweb/internal/member"
	"osisweb/internal/middleware"
	"osisweb/internal/news"
	"osisweb/internal/program"
	"osisweb/internal/qna"
	"osisweb/internal/ratelimit"
	"osisweb/internal/settings"
	"osisweb/internal/storage"
	"osisweb/internal/validator"

	"github.com/gofiber/fiber/v2"
)

// Handler carries every dependency the HTTP surface needs. Handlers stay
// thin: parse, call a manager, translate the error.
type Handler struct {
	logger        *slog.Logger
	db            *database.Database
	storage       storage.Storage
	validator     *validator.Validator
	limiter       *ratelimit.Limiter
	authenticator *auth.Authenticator

	members  member.Manager
	programs program.Manager
	news     news.Manager
	qna      qna.Manager
	settings settings.Manager
}

func NewHandler(
	logger *slog.Logger,
	db *database.Database,
	storageBackend storage.Storage,
	v *validator.Validator,
	limiter *ratelimit.Limiter,
	authenticator *auth.Authenticator,
) Handler {
	return Handler{
		logger:        logger,
		db:            db,
		storage:       storageBackend,
		validator:     v,
		limiter:       limiter,
		authenticator: authenticator,
		members:       member.NewManager(logger, db),
		programs:      program.NewManager(logger, db),
		news:          news.NewManager(logger, db),
		qna:           qna.NewManager(logger, db),
		settings:      settings.NewManager(logger, db),
	}
}

// actor returns the verified identity placed in locals by RequireAuth. The
// bool is false only when a private handler is reached without the
// middleware, which is a wiring mistake rather than a client error.
func (h *Handler) actor(c *fiber.Ctx) (auth.Actor, bool) {
	return middleware.ActorFromCtx(c)
}

func paramID(c *fiber.Ctx) (int64, error) {
	return strconv.ParseInt(c.Params("id"), 10, 64)
}

func errorResponse(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

func badRequest(c *fiber.Ctx, message string) error {
	return errorResponse(c, fiber.StatusBadRequest, message)
}

func notFound(c *fiber.Ctx, message string) error {
	return errorResponse(c, fiber.StatusNotFound, message)
}

func (h *Handler) serverError(c *fiber.Ctx, message string, err error) error {
	h.logger.ErrorContext(c.Context(), message, "error", err, "path", c.Path())
	return errorResponse(c, fiber.StatusInternalServerError, message)
}
