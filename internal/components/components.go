package components

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"emergencyAPI/internal/api"
	"emergencyAPI/internal/api/handlers/http/system"
	"emergencyAPI/internal/auth"
	"emergencyAPI/internal/config"
	"emergencyAPI/internal/quorum"
	"emergencyAPI/internal/redis"
	"emergencyAPI/internal/service"
	"emergencyAPI/internal/storage/postgres"
	"emergencyAPI/internal/upload"
	"emergencyAPI/internal/workers"
)

type Components struct {
	logger     *slog.Logger
	HttpServer *api.Server
	Postgres   *postgres.Postgres
	Redis      *redis.Redis
	Workers    *workers.Pool
}

func InitComponents(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Components, error) {
	logger.Info("Initializing Postgres")

	storage, err := postgres.NewPostgres(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to init postgres", slog.Any("error", err))
		return nil, fmt.Errorf("failed to init postgres: %w", err)
	}

	logger.Info("Initializing Redis")
	redisClient, err := redis.NewRedis(ctx, cfg, logger)
	if err != nil {
		storage.Close()
		return nil, fmt.Errorf("failed to init redis: %w", err)
	}

	eventQueue := redis.NewEventQueue(redisClient.Client, cfg.Webhook.QueueKey)
	directoryCache := redis.NewDirectoryCache(redisClient)

	var events service.EventQueue
	if cfg.WebhookEnabled() {
		events = eventQueue
	}

	reportSvc := service.NewReportService(
		storage.Reports,
		storage.Categories,
		quorum.NewTracker(cfg.Reports.QuorumThreshold),
		events,
		logger,
	)
	directorySvc := service.NewDirectoryService(storage.Facilities, directoryCache, cfg.Directory.CacheTTL, logger)
	adminSvc := service.NewFacilityAdminService(storage.Facilities, directorySvc, logger)
	statsSvc := service.NewStatsService(storage.Stats, logger)

	var uploads service.UploadUseCases
	cld, err := upload.NewCloudinary(cfg.Cloudinary, logger)
	switch {
	case err == nil:
		uploads = service.NewUploadService(cld, logger)
	case errors.Is(err, upload.ErrDisabled):
		logger.Warn("image uploads disabled: cloudinary credentials not set")
	default:
		storage.Close()
		_ = redisClient.Close()
		return nil, fmt.Errorf("failed to init cloudinary: %w", err)
	}

	srv := service.NewService(reportSvc, directorySvc, adminSvc, statsSvc, uploads)

	httpServer := api.NewServer(ctx, cfg, logger, srv, api.Deps{
		Verifier: auth.NewVerifier(cfg.Auth.JWTSecret, cfg.Auth.Issuer),
		Checks: map[string]system.Pinger{
			"postgres": storage,
			"redis":    redisClient,
		},
	})
	logger.Info("Initialized server")

	var senders []workers.EventRunner
	if cfg.WebhookEnabled() {
		senders = append(senders, service.NewEventSender(logger, cfg.Webhook, eventQueue))
	}
	pool := workers.NewPool(
		workers.NewDirectoryRefresher(directorySvc, cfg.Directory.RefreshInterval, logger),
		senders...,
	)

	return &Components{
		logger:     logger,
		HttpServer: httpServer,
		Postgres:   storage,
		Redis:      redisClient,
		Workers:    pool,
	}, nil
}

func SetupLogger(env string) *slog.Logger {
	switch env {
	case "local":
		return slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
				Level:     slog.LevelDebug,
				AddSource: true,
			}),
		)
	case "dev":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	case "prod":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	default:
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	}
}

func (c *Components) ShutdownAll() {
	start := time.Now()
	c.logger.Info("component shutdown started")

	c.Postgres.Close()
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.logger.Error("Redis close failed", slog.String("err", err.Error()))
		}
	}

	c.logger.Info("all components stopped",
		slog.Duration("latency", time.Since(start)))
}
