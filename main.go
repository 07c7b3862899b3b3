package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"osisweb/internal/api"
	"osisweb/internal/auth"
	"osisweb/internal/config"
	"osisweb/internal/database"
	"osisweb/internal/ratelimit"
	"osisweb/internal/storage"
	"osisweb/internal/validator"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/redis/go-redis/v9"
)

func main() {
	if err := run(context.Background()); err != nil {
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	cfg := config.NewConfig()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	if cfg.Auth.JWTSecret == "" {
		logger.Error("JWT_SECRET is not set")
		return os.ErrInvalid
	}

	db := database.NewDatabase()
	if err := db.Connect(ctx, cfg.Database.DSN()); err != nil {
		logger.Error("failed to connect to database", "error", err)
		return err
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		logger.Error("failed to migrate database", "error", err)
		return err
	}

	storageBackend, err := storage.New(cfg.Storage)
	if err != nil {
		logger.Error("failed to initialize storage", "error", err)
		return err
	}

	var limiter *ratelimit.Limiter
	if cfg.Redis.Addr != "" {
		limiter = ratelimit.NewLimiter(redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		}))
	}

	authenticator := auth.NewAuthenticator(logger, &db, cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)

	handler := api.NewHandler(logger, &db, storageBackend, validator.New(), limiter, &authenticator)

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		BodyLimit:    cfg.Server.BodyLimit,
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	handler.RegisterRoutes(app)

	// Static frontend; API routes are registered first and take precedence.
	app.Static("/", cfg.Server.StaticDir)

	go func() {
		sig := <-sigChan
		logger.Info("received shutdown signal", "signal", sig.String())
		if err := app.Shutdown(); err != nil {
			logger.Error("failed to shut down server", "error", err)
		}
		cancel()
	}()

	addr := cfg.Server.Host + ":" + cfg.Server.Port
	logger.Info("starting server", "addr", addr, "environment", cfg.Server.Environment)
	if err := app.Listen(addr); err != nil {
		logger.Error("server stopped", "error", err)
		return err
	}

	return nil
}
